package borrowing

import (
	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/reader"
	"library-backend/internal/shared"
)

// Borrowing is the domain model for a loan record. Reader and Book are
// populated eagerly on every read.
type Borrowing struct {
	ID           uuid.UUID        `json:"id" db:"id"`
	BorrowedDate shared.DateOnly  `json:"borrowedDate" db:"borrowed_date"`
	Deadline     shared.DateOnly  `json:"deadline" db:"deadline"`
	ReturnedDate *shared.DateOnly `json:"returnedDate" db:"returned_date"`
	ReaderID     uuid.UUID        `json:"-" db:"reader_id"`
	BookID       uuid.UUID        `json:"-" db:"book_id"`
	Reader       reader.Reader    `json:"reader"`
	Book         book.Book        `json:"book"`
}

// IsOpen reports whether the loan has not been returned yet.
func (b Borrowing) IsOpen() bool {
	return b.ReturnedDate == nil
}

// IsOverdue reports whether the loan is open and its deadline has passed.
func (b Borrowing) IsOverdue(today shared.DateOnly) bool {
	return b.IsOpen() && b.Deadline.Before(today)
}
