package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/genre"
	"library-backend/internal/shared/response"
)

type GenreHandler struct {
	service genre.Service
}

func NewGenreHandler(svc genre.Service) *GenreHandler {
	return &GenreHandler{
		service: svc,
	}
}

// List - GET /api/genres?search=
func (h *GenreHandler) List(c *gin.Context) {
	filter := genre.Filter{Search: c.Query("search")}

	genres, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ErrorResponse(c, genre.ToHTTPStatus(err), genre.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, genre.ToResponseList(genres))
}

// Create - POST /api/genres
func (h *GenreHandler) Create(c *gin.Context) {
	var req genre.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, genre.ToHTTPStatus(err), genre.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// GetByID - GET /api/genres/:id
func (h *GenreHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid genre id")
		return
	}

	g, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, genre.ToHTTPStatus(err), genre.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, g.ToResponse())
}

// Delete - DELETE /api/genres/:id
func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid genre id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, genre.ToHTTPStatus(err), genre.ToErrorCode(err), err.Error())
		return
	}

	response.NoContent(c)
}
