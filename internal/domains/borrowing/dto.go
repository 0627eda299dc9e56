package borrowing

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/reader"
	"library-backend/internal/shared"
)

// Borrowing list filter types.
const (
	TypeAll     = "all"
	TypeOpen    = "open"
	TypeClosed  = "close"
	TypeOverdue = "overdue"
)

// CreateBorrowingRequest - POST /api/borrowings. Deadline stays a raw
// string so a malformed date surfaces as a domain error, not a bind error.
type CreateBorrowingRequest struct {
	ReaderID uuid.UUID `json:"readerId"`
	BookID   uuid.UUID `json:"bookId"`
	Deadline string    `json:"deadline"`
}

func (r CreateBorrowingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ReaderID, validation.Required),
		validation.Field(&r.BookID, validation.Required),
		validation.Field(&r.Deadline, validation.Required),
	)
}

// EditBorrowingRequest - PATCH /api/borrowings/:id. Absent fields keep
// their stored values; editing dates never touches book stock.
type EditBorrowingRequest struct {
	Deadline     *shared.DateOnly `json:"deadline"`
	ReturnedDate *shared.DateOnly `json:"returnedDate"`
}

// BorrowingResponse - loan record as returned over the wire.
type BorrowingResponse struct {
	ID           uuid.UUID             `json:"id"`
	BorrowedDate shared.DateOnly       `json:"borrowedDate"`
	Deadline     shared.DateOnly       `json:"deadline"`
	ReturnedDate *shared.DateOnly      `json:"returnedDate"`
	Reader       reader.ReaderResponse `json:"reader"`
	Book         book.BookResponse     `json:"book"`
}

// Filter - query parameters for listing borrowings.
type Filter struct {
	// ReaderID narrows to one reader's loans.
	ReaderID *uuid.UUID `form:"readerId"`
	// Type is one of all/open/close/overdue; empty means all.
	Type string `form:"type"`
}

func (b Borrowing) ToResponse() *BorrowingResponse {
	return &BorrowingResponse{
		ID:           b.ID,
		BorrowedDate: b.BorrowedDate,
		Deadline:     b.Deadline,
		ReturnedDate: b.ReturnedDate,
		Reader:       *b.Reader.ToResponse(),
		Book:         *b.Book.ToResponse(),
	}
}

func ToResponseList(borrowings []Borrowing) []BorrowingResponse {
	out := make([]BorrowingResponse, 0, len(borrowings))
	for _, b := range borrowings {
		out = append(out, *b.ToResponse())
	}
	return out
}
