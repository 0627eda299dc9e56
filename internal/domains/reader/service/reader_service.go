package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"library-backend/internal/domains/reader"
)

type readerService struct {
	readers reader.Repository
}

// NewReaderService creates the reader service.
func NewReaderService(readers reader.Repository) reader.Service {
	return &readerService{readers: readers}
}

func (s *readerService) Create(ctx context.Context, req *reader.CreateReaderRequest) (*reader.Reader, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.readers.ExistsByPhone(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("create reader: %w", err)
	}
	if taken {
		return nil, reader.ErrPhoneExists
	}

	rd := &reader.Reader{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Patronymic: req.Patronymic,
		Phone:      req.Phone,
	}

	created, err := s.readers.Create(ctx, rd)
	if err != nil {
		return nil, fmt.Errorf("create reader: %w", err)
	}

	return created, nil
}

func (s *readerService) GetByID(ctx context.Context, id uuid.UUID) (*reader.Reader, error) {
	return s.readers.GetByID(ctx, id)
}

func (s *readerService) List(ctx context.Context, filter reader.Filter) ([]reader.Reader, error) {
	// A search term that is itself a uuid selects exactly that reader.
	if id, parseErr := uuid.Parse(filter.Search); parseErr == nil {
		rd, err := s.readers.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, reader.ErrReaderNotFound) {
				return []reader.Reader{}, nil
			}
			return nil, fmt.Errorf("list readers: %w", err)
		}
		return []reader.Reader{*rd}, nil
	}

	readers, err := s.readers.List(ctx, filter.Search)
	if err != nil {
		return nil, fmt.Errorf("list readers: %w", err)
	}

	return readers, nil
}
