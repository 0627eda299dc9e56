package borrowing

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business operations for the borrowing domain.
type Service interface {
	// Create validates the reader, the book, its stock and the deadline,
	// then records the loan.
	Create(ctx context.Context, req *CreateBorrowingRequest) (*Borrowing, error)

	// GetByID returns ErrBorrowingNotFound if the loan does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Borrowing, error)

	// List returns loans matching the filter.
	List(ctx context.Context, filter Filter) ([]Borrowing, error)

	// ListByReader returns the reader's loans; reader.ErrReaderNotFound
	// when the reader does not exist.
	ListByReader(ctx context.Context, readerID uuid.UUID) ([]Borrowing, error)

	// Return closes an open loan as of today.
	Return(ctx context.Context, id uuid.UUID) error

	// Edit rewrites the loan's date fields.
	Edit(ctx context.Context, id uuid.UUID, req *EditBorrowingRequest) error

	// Delete removes the loan.
	Delete(ctx context.Context, id uuid.UUID) error
}
