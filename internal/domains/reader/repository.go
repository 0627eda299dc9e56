package reader

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for readers.
type Repository interface {
	// Create inserts a new reader; join_date is assigned by the store.
	Create(ctx context.Context, reader *Reader) (*Reader, error)

	// GetByID returns ErrReaderNotFound if the reader does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Reader, error)

	// List returns all readers, optionally narrowed by a case-sensitive
	// substring match on first/last name.
	List(ctx context.Context, search string) ([]Reader, error)

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByPhone reports whether any reader already uses the phone.
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}
