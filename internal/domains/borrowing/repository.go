package borrowing

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/shared"
)

// Repository defines data access for borrowings. Every mutation that
// touches book stock runs in a single transaction with the loan row.
type Repository interface {
	// Create decrements the book's available copies and inserts the loan
	// atomically. Returns ErrNoCopiesAvailable when the stock guard loses
	// the race.
	Create(ctx context.Context, b *Borrowing) (*Borrowing, error)

	// GetByID returns ErrBorrowingNotFound if the loan does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Borrowing, error)

	// List returns loans matching the filter, newest first.
	List(ctx context.Context, filter Filter) ([]Borrowing, error)

	// Return closes an open loan and restores one copy to stock. Returns
	// ErrAlreadyReturned when the loan is already closed.
	Return(ctx context.Context, id uuid.UUID, returnedDate shared.DateOnly) error

	// Update rewrites the provided date fields without touching stock.
	Update(ctx context.Context, id uuid.UUID, req *EditBorrowingRequest) error

	// Delete removes the loan; deleting an open loan restores one copy.
	Delete(ctx context.Context, id uuid.UUID) error
}
