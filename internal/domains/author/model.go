package author

import (
	"github.com/google/uuid"
)

// Author is the domain model for a book author.
type Author struct {
	ID         uuid.UUID `json:"id" db:"id"`
	FirstName  string    `json:"firstName" db:"first_name"`
	LastName   string    `json:"lastName" db:"last_name"`
	Patronymic *string   `json:"patronymic" db:"patronymic"`
}
