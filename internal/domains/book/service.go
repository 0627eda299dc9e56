package book

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business operations for the book domain.
type Service interface {
	// Create resolves the author (missing author fails with
	// ErrAuthorNotFound) and links resolvable genres, dropping the rest.
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)

	// GetByID returns the fully expanded book; ErrBookNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// List returns books matching the filter; an unknown genre filter is
	// ignored rather than failing the request.
	List(ctx context.Context, filter Filter) ([]Book, error)

	// ListByAuthor returns the author's books; author.ErrAuthorNotFound
	// when the author itself is absent.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]Book, error)

	// Delete removes the book by id; ErrBookNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// Replenish adds qty units of stock and returns the new count.
	Replenish(ctx context.Context, id uuid.UUID, qty int) (int, error)
}
