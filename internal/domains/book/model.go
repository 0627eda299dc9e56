package book

import (
	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/genre"
)

// Book is the domain model for a catalog book. Author and Genres are
// populated eagerly on every read; BorrowedBooks (the number of currently
// open borrowings) only on detail reads.
type Book struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	Title          string        `json:"title" db:"title"`
	Description    *string       `json:"description" db:"description"`
	ISBN           string        `json:"isbn" db:"isbn"`
	YearPublished  int           `json:"yearPublished" db:"year_published"`
	AvailableCount int           `json:"availableCount" db:"available_count"`
	AuthorID       uuid.UUID     `json:"-" db:"author_id"`
	Author         author.Author `json:"author"`
	Genres         []genre.Genre `json:"genres"`
	BorrowedBooks  int           `json:"borrowedBooks"`
}
