package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/genre"
)

type bookService struct {
	repository book.Repository
	authors    author.Repository
	genres     genre.Repository
}

func NewBookService(repo book.Repository, authors author.Repository, genres genre.Repository) book.Service {
	return &bookService{
		repository: repo,
		authors:    authors,
		genres:     genres,
	}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	exists, err := s.authors.ExistsByID(ctx, req.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	if !exists {
		return nil, book.ErrAuthorNotFound
	}

	entity := &book.Book{
		Title:          req.Title,
		Description:    req.Description,
		ISBN:           req.ISBN,
		YearPublished:  req.YearPublished,
		AvailableCount: req.AvailableCount,
		AuthorID:       req.AuthorID,
	}

	created, err := s.repository.Create(ctx, entity, req.Genres)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	// An unknown genre id drops the genre filter instead of failing the
	// whole request.
	if filter.GenreID != nil {
		if _, err := s.genres.GetByID(ctx, *filter.GenreID); err != nil {
			if errors.Is(err, genre.ErrGenreNotFound) {
				filter.GenreID = nil
			} else {
				return nil, fmt.Errorf("list books: %w", err)
			}
		}
	}

	return s.repository.List(ctx, filter)
}

func (s *bookService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	exists, err := s.authors.ExistsByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("list author books: %w", err)
	}
	if !exists {
		return nil, author.ErrAuthorNotFound
	}

	return s.repository.List(ctx, book.Filter{AuthorID: &authorID})
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repository.Delete(ctx, id)
}

func (s *bookService) Replenish(ctx context.Context, id uuid.UUID, qty int) (int, error) {
	return s.repository.Replenish(ctx, id, qty)
}
