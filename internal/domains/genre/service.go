package genre

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business operations for the genre domain.
type Service interface {
	// Create adds a new genre. Fails with ErrGenreExists when an existing
	// name and the requested name overlap as substrings.
	Create(ctx context.Context, req *CreateGenreRequest) (*Genre, error)

	// GetByID returns ErrGenreNotFound if the genre does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)

	// List returns all genres matching the filter.
	List(ctx context.Context, filter Filter) ([]Genre, error)

	// Delete removes the genre by id; ErrGenreNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
