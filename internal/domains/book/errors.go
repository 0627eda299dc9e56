package book

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/author"
)

var (
	ErrBookNotFound = errors.New("book not found")

	// ErrAuthorNotFound signals a create request referencing a missing
	// author; a business-rule violation, not a missing resource.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrStockUnderflow signals a stock change that would drive the
	// available count below zero.
	ErrStockUnderflow = errors.New("available count cannot drop below zero")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return "VALIDATION_ERROR"
	}

	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, author.ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrStockUnderflow):
		return "STOCK_UNDERFLOW"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code. A missing author
// referenced by a create request is a 400; a missing author addressed
// directly (listing its books) is a 404.
func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return 400
	}

	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrAuthorNotFound):
		return 400
	case errors.Is(err, author.ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrStockUnderflow):
		return 400
	default:
		return 500
	}
}
