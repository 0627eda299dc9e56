package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/borrowing"
	"library-backend/internal/shared/response"
)

type BorrowingHandler struct {
	service borrowing.Service
}

// NewBorrowingHandler creates the borrowing HTTP handler.
func NewBorrowingHandler(service borrowing.Service) *BorrowingHandler {
	return &BorrowingHandler{service: service}
}

// List handles GET /api/borrowings?readerId=&type=
func (h *BorrowingHandler) List(c *gin.Context) {
	filter := borrowing.Filter{Type: c.Query("type")}

	if s := c.Query("readerId"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			response.BadRequest(c, "invalid readerId")
			return
		}
		filter.ReaderID = &id
	}

	borrowings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ErrorResponse(c, borrowing.ToHTTPStatus(err), borrowing.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, borrowing.ToResponseList(borrowings))
}

// GetByID handles GET /api/borrowings/:id
func (h *BorrowingHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid borrowing id")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, borrowing.ToHTTPStatus(err), borrowing.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, b.ToResponse())
}

// Create handles POST /api/borrowings
func (h *BorrowingHandler) Create(c *gin.Context) {
	var req borrowing.CreateBorrowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, borrowing.ToHTTPStatus(err), borrowing.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, b.ToResponse())
}

// Return handles POST /api/borrowings/:id/return
func (h *BorrowingHandler) Return(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid borrowing id")
		return
	}

	if err := h.service.Return(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, borrowing.ToHTTPStatus(err), borrowing.ToErrorCode(err), err.Error())
		return
	}

	response.NoContent(c)
}

// Edit handles PATCH /api/borrowings/:id
func (h *BorrowingHandler) Edit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid borrowing id")
		return
	}

	var req borrowing.EditBorrowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.Edit(c.Request.Context(), id, &req); err != nil {
		response.ErrorResponse(c, borrowing.ToHTTPStatus(err), borrowing.ToErrorCode(err), err.Error())
		return
	}

	response.NoContent(c)
}

// Delete handles DELETE /api/borrowings/:id
func (h *BorrowingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid borrowing id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, borrowing.ToHTTPStatus(err), borrowing.ToErrorCode(err), err.Error())
		return
	}

	response.NoContent(c)
}

// ListByReader handles GET /api/readers/:id/borrowings
func (h *BorrowingHandler) ListByReader(c *gin.Context) {
	readerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid reader id")
		return
	}

	borrowings, err := h.service.ListByReader(c.Request.Context(), readerID)
	if err != nil {
		response.ErrorResponse(c, borrowing.ToHTTPStatus(err), borrowing.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, borrowing.ToResponseList(borrowings))
}
