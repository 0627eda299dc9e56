package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for books.
type Repository interface {
	// Create inserts the book and links the given genres; genre ids that
	// do not resolve are silently dropped. Returns the created book with
	// author and genres populated.
	Create(ctx context.Context, book *Book, genreIDs []uuid.UUID) (*Book, error)

	// GetByID returns the book with author, genres and the open-borrowing
	// count populated; ErrBookNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// List returns books with author and genres populated, narrowed by
	// the filter. An empty result is a nil/empty slice, never an error.
	List(ctx context.Context, filter Filter) ([]Book, error)

	// Delete removes the book; ErrBookNotFound when zero rows affected.
	Delete(ctx context.Context, id uuid.UUID) error

	// Replenish atomically adds qty to available_count at the store and
	// returns the new count; ErrBookNotFound when the book is absent.
	// Never a read-then-write: concurrent replenishments must not lose
	// updates.
	Replenish(ctx context.Context, id uuid.UUID, qty int) (int, error)

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
