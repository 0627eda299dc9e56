package author

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrAuthorNotFound = errors.New("author not found")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return "VALIDATION_ERROR"
	}

	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return 400
	}

	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	default:
		return 500
	}
}
