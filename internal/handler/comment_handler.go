package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukit/classroom-backend/internal/middleware"
	"github.com/edukit/classroom-backend/internal/model"
	"github.com/edukit/classroom-backend/internal/response"
	"github.com/edukit/classroom-backend/internal/service"
	"github.com/edukit/classroom-backend/internal/validator"
)

// CommentHandler handles the comment thread under a mark. The thread is
// append-only: comments can be listed, created and read, never edited
// or removed.
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List godoc
// GET /api/v1/marks/:mark_id/comments
func (h *CommentHandler) List(c *gin.Context) {
	markID, ok := pathID(c, "mark_id")
	if !ok {
		return
	}

	comments, err := h.commentService.List(c.Request.Context(), middleware.CurrentUser(c), markID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"comments": comments})
}

// Create godoc
// POST /api/v1/marks/:mark_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	markID, ok := pathID(c, "mark_id")
	if !ok {
		return
	}

	var req model.CreateCommentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), middleware.CurrentUser(c), markID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"comment": comment})
}

// Get godoc
// GET /api/v1/marks/:mark_id/comments/:comment_id
func (h *CommentHandler) Get(c *gin.Context) {
	markID, ok := pathID(c, "mark_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	comment, err := h.commentService.Get(c.Request.Context(), middleware.CurrentUser(c), markID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"comment": comment})
}

// RejectMutation godoc
// PUT|DELETE /api/v1/marks/:mark_id/comments/:comment_id
// Registered explicitly so mutation attempts get a 405 instead of Gin's
// default 404, regardless of who asks.
func (h *CommentHandler) RejectMutation(c *gin.Context) {
	response.Fail(c, http.StatusMethodNotAllowed, response.ErrMethodNotAllowed)
}
