package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business operations for the author domain.
type Service interface {
	// Create adds a new author. There is no uniqueness constraint on names.
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID returns ErrAuthorNotFound if the author does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// List returns all authors matching the filter.
	List(ctx context.Context, filter Filter) ([]Author, error)

	// Delete removes the author by id; ErrAuthorNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
