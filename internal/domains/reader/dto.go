package reader

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateReaderRequest - POST /api/readers
type CreateReaderRequest struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Patronymic *string `json:"patronymic,omitempty"`
	Phone      string  `json:"phone"`
}

func (r CreateReaderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Patronymic, validation.Length(0, 255)),
		validation.Field(&r.Phone, validation.Required, validation.Length(3, 32)),
	)
}

// ReaderResponse - reader as returned over the wire.
type ReaderResponse struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Patronymic *string   `json:"patronymic,omitempty"`
	Phone      string    `json:"phone"`
	JoinDate   time.Time `json:"joinDate"`
}

// Filter - query parameters for listing readers. A search term that
// parses as a uuid matches by identity; anything else matches first/last
// name as a case-sensitive substring.
type Filter struct {
	Search string `form:"search"`
}

func (r Reader) ToResponse() *ReaderResponse {
	return &ReaderResponse{
		ID:         r.ID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Patronymic: r.Patronymic,
		Phone:      r.Phone,
		JoinDate:   r.JoinDate,
	}
}

func ToResponseList(readers []Reader) []ReaderResponse {
	out := make([]ReaderResponse, 0, len(readers))
	for _, r := range readers {
		out = append(out, *r.ToResponse())
	}
	return out
}
