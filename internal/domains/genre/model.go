package genre

import (
	"github.com/google/uuid"
)

// Genre is the domain model for a book genre.
type Genre struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}
