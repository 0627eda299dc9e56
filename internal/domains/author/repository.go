package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for authors.
type Repository interface {
	// Create inserts a new author and returns it with its assigned id.
	Create(ctx context.Context, author *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound if the author does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// List returns all authors, optionally narrowed by the filter's
	// substring search on first/last name. No match yields an empty slice.
	List(ctx context.Context, filter Filter) ([]Author, error)

	// Delete removes the author; ErrAuthorNotFound when zero rows affected.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
