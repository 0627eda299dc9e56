package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/author"
)

// CreateBookRequest - POST /api/books
type CreateBookRequest struct {
	Title          string      `json:"title"`
	Description    *string     `json:"description,omitempty"`
	Genres         []uuid.UUID `json:"genres"`
	AuthorID       uuid.UUID   `json:"authorId"`
	AvailableCount int         `json:"availableCount"`
	ISBN           string      `json:"isbn"`
	YearPublished  int         `json:"yearPublished"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.AuthorID, validation.Required),
		validation.Field(&r.ISBN, validation.Required, validation.Length(1, 32)),
		validation.Field(&r.AvailableCount, validation.Min(0)),
	)
}

// BookResponse - book as returned over the wire. Genres collapse to their
// names, matching the catalog read shape.
type BookResponse struct {
	ID             uuid.UUID             `json:"id"`
	Title          string                `json:"title"`
	Description    *string               `json:"description,omitempty"`
	Genres         []string              `json:"genres"`
	Author         author.AuthorResponse `json:"author"`
	AvailableCount int                   `json:"availableCount"`
	ISBN           string                `json:"isbn"`
	YearPublished  int                   `json:"yearPublished"`
	BorrowedBooks  int                   `json:"borrowedBooks"`
}

// ReplenishResponse - POST /api/books/:id/replenish
type ReplenishResponse struct {
	AvailableCount int `json:"availableCount"`
}

// Filter - query parameters for listing books.
type Filter struct {
	// Search matches as a case-sensitive substring of the title.
	Search string `form:"search"`
	// AuthorID narrows to an exact author.
	AuthorID *uuid.UUID `form:"authorId"`
	// GenreID narrows to books carrying the genre; an unknown genre id
	// is silently ignored.
	GenreID *uuid.UUID `form:"genreId"`
}

func (b Book) ToResponse() *BookResponse {
	names := make([]string, 0, len(b.Genres))
	for _, g := range b.Genres {
		names = append(names, g.Name)
	}

	return &BookResponse{
		ID:             b.ID,
		Title:          b.Title,
		Description:    b.Description,
		Genres:         names,
		Author:         *b.Author.ToResponse(),
		AvailableCount: b.AvailableCount,
		ISBN:           b.ISBN,
		YearPublished:  b.YearPublished,
		BorrowedBooks:  b.BorrowedBooks,
	}
}

func ToResponseList(books []Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, *b.ToResponse())
	}
	return out
}
