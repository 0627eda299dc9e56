package genre

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrGenreNotFound = errors.New("genre not found")
	ErrGenreExists   = errors.New("a similar genre already exists")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return "VALIDATION_ERROR"
	}

	switch {
	case errors.Is(err, ErrGenreNotFound):
		return "GENRE_NOT_FOUND"
	case errors.Is(err, ErrGenreExists):
		return "GENRE_EXISTS"
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
	case errors.Is(err, ErrGenreNotFound):
		return 404
	case errors.Is(err, ErrGenreExists):
		return 409
	default:
		return 500
	}
}
