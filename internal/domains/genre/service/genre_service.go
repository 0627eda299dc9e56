package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-backend/internal/domains/genre"
)

type genreService struct {
	repository genre.Repository
}

func NewGenreService(repo genre.Repository) genre.Service {
	return &genreService{
		repository: repo,
	}
}

func (s *genreService) Create(ctx context.Context, req *genre.CreateGenreRequest) (*genre.Genre, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}

	exists, err := s.repository.ExistsSimilarName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}
	if exists {
		return nil, genre.ErrGenreExists
	}

	created, err := s.repository.Create(ctx, &genre.Genre{Name: req.Name})
	if err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}

	return created, nil
}

func (s *genreService) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *genreService) List(ctx context.Context, filter genre.Filter) ([]genre.Genre, error) {
	return s.repository.List(ctx, filter)
}

func (s *genreService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repository.Delete(ctx, id)
}
