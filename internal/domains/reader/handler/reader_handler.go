package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/reader"
	"library-backend/internal/shared/response"
)

type ReaderHandler struct {
	service reader.Service
}

// NewReaderHandler creates the reader HTTP handler.
func NewReaderHandler(service reader.Service) *ReaderHandler {
	return &ReaderHandler{service: service}
}

// List handles GET /api/readers
func (h *ReaderHandler) List(c *gin.Context) {
	var filter reader.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	readers, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ErrorResponse(c, reader.ToHTTPStatus(err), reader.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, reader.ToResponseList(readers))
}

// GetByID handles GET /api/readers/:id
func (h *ReaderHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid reader id")
		return
	}

	rd, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, reader.ToHTTPStatus(err), reader.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, rd.ToResponse())
}

// Create handles POST /api/readers
func (h *ReaderHandler) Create(c *gin.Context) {
	var req reader.CreateReaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	rd, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, reader.ToHTTPStatus(err), reader.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, rd.ToResponse())
}
