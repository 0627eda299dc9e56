package borrowing

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/reader"
)

var (
	// ErrReaderNotFound rejects a loan for an unknown reader. The loan
	// listing route maps the reader-domain sentinel separately.
	ErrReaderNotFound = errors.New("reader not found")
	// ErrBookNotFound rejects a loan for an unknown book.
	ErrBookNotFound = errors.New("book not found")

	ErrNoCopiesAvailable     = errors.New("no copies of the book are available")
	ErrInvalidDeadlineFormat = errors.New("deadline must be a yyyy-mm-dd date")
	ErrDeadlineInPast        = errors.New("deadline cannot be in the past")
	ErrBorrowingNotFound     = errors.New("borrowing not found")
	ErrAlreadyReturned       = errors.New("borrowing is already returned")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return "VALIDATION_ERROR"
	}

	switch {
	case errors.Is(err, ErrReaderNotFound):
		return "READER_NOT_FOUND"
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrNoCopiesAvailable):
		return "NO_COPIES_AVAILABLE"
	case errors.Is(err, ErrInvalidDeadlineFormat):
		return "INVALID_DEADLINE"
	case errors.Is(err, ErrDeadlineInPast):
		return "DEADLINE_IN_PAST"
	case errors.Is(err, ErrBorrowingNotFound):
		return "BORROWING_NOT_FOUND"
	case errors.Is(err, reader.ErrReaderNotFound):
		return "READER_NOT_FOUND"
	case errors.Is(err, ErrAlreadyReturned):
		return "ALREADY_RETURNED"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code. The create path
// treats a missing reader or book as a bad request; the per-reader listing
// path reports a missing reader as 404 through the reader-domain sentinel.
func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return 400
	}

	switch {
	case errors.Is(err, ErrReaderNotFound),
		errors.Is(err, ErrBookNotFound),
		errors.Is(err, ErrNoCopiesAvailable),
		errors.Is(err, ErrInvalidDeadlineFormat),
		errors.Is(err, ErrDeadlineInPast):
		return 400
	case errors.Is(err, ErrBorrowingNotFound),
		errors.Is(err, reader.ErrReaderNotFound):
		return 404
	case errors.Is(err, ErrAlreadyReturned):
		return 409
	default:
		return 500
	}
}
