package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-backend/internal/domains/author"
)

type authorService struct {
	repository author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{
		repository: repo,
	}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	created, err := s.repository.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context, filter author.Filter) ([]author.Author, error) {
	return s.repository.List(ctx, filter)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repository.Delete(ctx, id)
}
