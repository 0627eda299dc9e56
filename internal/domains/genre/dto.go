package genre

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateGenreRequest - POST /api/genres
type CreateGenreRequest struct {
	Name string `json:"name"`
}

func (r CreateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
	)
}

// GenreResponse - genre as returned over the wire.
type GenreResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Filter - query parameters for listing genres.
type Filter struct {
	Search string `form:"search"`
}

func (g Genre) ToResponse() *GenreResponse {
	return &GenreResponse{
		ID:   g.ID,
		Name: g.Name,
	}
}

func ToResponseList(genres []Genre) []GenreResponse {
	out := make([]GenreResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, *g.ToResponse())
	}
	return out
}
