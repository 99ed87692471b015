package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/edukit/classroom-backend/internal/middleware"
	"github.com/edukit/classroom-backend/internal/model"
	"github.com/edukit/classroom-backend/internal/response"
	"github.com/edukit/classroom-backend/internal/service"
	"github.com/edukit/classroom-backend/internal/validator"
)

// MarkHandler handles grading endpoints. A submission carries at most
// one mark; marks are also addressable top-level for the comment feed.
type MarkHandler struct {
	markService *service.MarkService
}

// NewMarkHandler creates a new MarkHandler.
func NewMarkHandler(markService *service.MarkService) *MarkHandler {
	return &MarkHandler{markService: markService}
}

// ListByHomework godoc
// GET /.../completed_homeworks/:homework_id/marks
func (h *MarkHandler) ListByHomework(c *gin.Context) {
	homeworkID, ok := pathID(c, "homework_id")
	if !ok {
		return
	}

	marks, err := h.markService.ListByHomework(c.Request.Context(), middleware.CurrentUser(c), homeworkID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"marks": marks})
}

// Create godoc
// POST /.../completed_homeworks/:homework_id/marks
// Grading an already-marked submission responds 409.
func (h *MarkHandler) Create(c *gin.Context) {
	homeworkID, ok := pathID(c, "homework_id")
	if !ok {
		return
	}

	var req model.CreateMarkRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	mark, err := h.markService.Create(c.Request.Context(), middleware.CurrentUser(c), homeworkID, &req)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrAlreadyMarked)
			return
		}
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"mark": mark})
}

// Get godoc
// GET /api/v1/marks/:mark_id
// Returns the mark with its comment thread.
func (h *MarkHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "mark_id")
	if !ok {
		return
	}

	mark, err := h.markService.Get(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"mark": mark})
}

// Update godoc
// PUT /api/v1/marks/:mark_id
func (h *MarkHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "mark_id")
	if !ok {
		return
	}

	var req model.CreateMarkRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	mark, err := h.markService.Update(c.Request.Context(), middleware.CurrentUser(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"mark": mark})
}
