package reader

import (
	"time"

	"github.com/google/uuid"
)

// Reader is the domain model for a library reader.
type Reader struct {
	ID         uuid.UUID `json:"id" db:"id"`
	FirstName  string    `json:"firstName" db:"first_name"`
	LastName   string    `json:"lastName" db:"last_name"`
	Patronymic *string   `json:"patronymic" db:"patronymic"`
	Phone      string    `json:"phone" db:"phone"`
	JoinDate   time.Time `json:"joinDate" db:"join_date"`
}
