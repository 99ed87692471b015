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

// HometaskHandler handles hometask endpoints nested under a lecture.
type HometaskHandler struct {
	hometaskService *service.HometaskService
}

// NewHometaskHandler creates a new HometaskHandler.
func NewHometaskHandler(hometaskService *service.HometaskService) *HometaskHandler {
	return &HometaskHandler{hometaskService: hometaskService}
}

// List godoc
// GET /api/v1/courses/:course_id/lectures/:lecture_id/hometasks
func (h *HometaskHandler) List(c *gin.Context) {
	lectureID, ok := pathID(c, "lecture_id")
	if !ok {
		return
	}

	tasks, err := h.hometaskService.List(c.Request.Context(), middleware.CurrentUser(c), lectureID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hometasks": tasks})
}

// Create godoc
// POST /api/v1/courses/:course_id/lectures/:lecture_id/hometasks
func (h *HometaskHandler) Create(c *gin.Context) {
	lectureID, ok := pathID(c, "lecture_id")
	if !ok {
		return
	}

	var req model.CreateHometaskRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	task, err := h.hometaskService.Create(c.Request.Context(), middleware.CurrentUser(c), lectureID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"hometask": task})
}

// Get godoc
// GET /api/v1/courses/:course_id/lectures/:lecture_id/hometasks/:hometask_id
func (h *HometaskHandler) Get(c *gin.Context) {
	lectureID, ok := pathID(c, "lecture_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "hometask_id")
	if !ok {
		return
	}

	task, err := h.hometaskService.Get(c.Request.Context(), middleware.CurrentUser(c), lectureID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hometask": task})
}

// Update godoc
// PUT /api/v1/courses/:course_id/lectures/:lecture_id/hometasks/:hometask_id
func (h *HometaskHandler) Update(c *gin.Context) {
	lectureID, ok := pathID(c, "lecture_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "hometask_id")
	if !ok {
		return
	}

	var req model.CreateHometaskRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	task, err := h.hometaskService.Update(c.Request.Context(), middleware.CurrentUser(c), lectureID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hometask": task})
}

// Delete godoc
// DELETE /api/v1/courses/:course_id/lectures/:lecture_id/hometasks/:hometask_id
func (h *HometaskHandler) Delete(c *gin.Context) {
	lectureID, ok := pathID(c, "lecture_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "hometask_id")
	if !ok {
		return
	}

	if err := h.hometaskService.Delete(c.Request.Context(), middleware.CurrentUser(c), lectureID, id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "hometask deleted"})
}
