package reader

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business operations for the reader domain.
type Service interface {
	// Create adds a new reader; ErrPhoneExists when the phone is taken.
	Create(ctx context.Context, req *CreateReaderRequest) (*Reader, error)

	// GetByID returns ErrReaderNotFound if the reader does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Reader, error)

	// List returns readers matching the filter: an identity match when the
	// search term parses as a uuid, a name substring match otherwise.
	List(ctx context.Context, filter Filter) ([]Reader, error)
}
