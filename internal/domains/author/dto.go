package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateAuthorRequest - POST /api/authors
type CreateAuthorRequest struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Patronymic *string `json:"patronymic,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Patronymic, validation.Length(0, 255)),
	)
}

// AuthorResponse - author as returned over the wire.
type AuthorResponse struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Patronymic *string   `json:"patronymic,omitempty"`
}

// Filter - query parameters for listing authors.
type Filter struct {
	// Search matches as a case-sensitive substring of the first OR last name.
	Search string `form:"search"`
}

// ToResponse converts an Author entity to its response DTO.
func (a Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:         a.ID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Patronymic: a.Patronymic,
	}
}

// ToEntity converts CreateAuthorRequest to an Author entity.
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Patronymic: r.Patronymic,
	}
}

// ToResponseList converts a slice of entities; always returns a non-nil
// slice so empty results serialize as [].
func ToResponseList(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, *a.ToResponse())
	}
	return out
}
