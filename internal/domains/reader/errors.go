package reader

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrReaderNotFound = errors.New("reader not found")
	ErrPhoneExists    = errors.New("a reader with this phone already exists")
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
	case errors.Is(err, ErrPhoneExists):
		return "PHONE_EXISTS"
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
	case errors.Is(err, ErrReaderNotFound):
		return 404
	case errors.Is(err, ErrPhoneExists):
		return 409
	default:
		return 500
	}
}
