package genre

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for genres.
type Repository interface {
	// Create inserts a new genre and returns it with its assigned id.
	Create(ctx context.Context, genre *Genre) (*Genre, error)

	// GetByID returns ErrGenreNotFound if the genre does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)

	// List returns all genres, optionally narrowed by a case-sensitive
	// substring match on the name.
	List(ctx context.Context, filter Filter) ([]Genre, error)

	// Delete removes the genre; ErrGenreNotFound when zero rows affected.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsSimilarName reports whether any existing genre name contains
	// name as a substring, or vice versa. The match is case-sensitive.
	ExistsSimilarName(ctx context.Context, name string) (bool, error)
}
