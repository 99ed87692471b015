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

// HomeworkHandler handles submission endpoints nested under a hometask.
type HomeworkHandler struct {
	homeworkService *service.HomeworkService
}

// NewHomeworkHandler creates a new HomeworkHandler.
func NewHomeworkHandler(homeworkService *service.HomeworkService) *HomeworkHandler {
	return &HomeworkHandler{homeworkService: homeworkService}
}

// List godoc
// GET /.../hometasks/:hometask_id/completed_homeworks
// Teachers see every submission, students only their own.
func (h *HomeworkHandler) List(c *gin.Context) {
	hometaskID, ok := pathID(c, "hometask_id")
	if !ok {
		return
	}

	records, err := h.homeworkService.List(c.Request.Context(), middleware.CurrentUser(c), hometaskID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"completed_homeworks": records})
}

// Submit godoc
// POST /.../hometasks/:hometask_id/completed_homeworks
func (h *HomeworkHandler) Submit(c *gin.Context) {
	hometaskID, ok := pathID(c, "hometask_id")
	if !ok {
		return
	}

	var req model.SubmitHomeworkRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	hw, err := h.homeworkService.Submit(c.Request.Context(), middleware.CurrentUser(c), hometaskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"completed_homework": hw})
}

// Get godoc
// GET /.../completed_homeworks/:homework_id
func (h *HomeworkHandler) Get(c *gin.Context) {
	hometaskID, ok := pathID(c, "hometask_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "homework_id")
	if !ok {
		return
	}

	hw, err := h.homeworkService.Get(c.Request.Context(), middleware.CurrentUser(c), hometaskID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"completed_homework": hw})
}

// Update godoc
// PUT /.../completed_homeworks/:homework_id
func (h *HomeworkHandler) Update(c *gin.Context) {
	hometaskID, ok := pathID(c, "hometask_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "homework_id")
	if !ok {
		return
	}

	var req model.SubmitHomeworkRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	hw, err := h.homeworkService.Update(c.Request.Context(), middleware.CurrentUser(c), hometaskID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"completed_homework": hw})
}

// Delete godoc
// DELETE /.../completed_homeworks/:homework_id
func (h *HomeworkHandler) Delete(c *gin.Context) {
	hometaskID, ok := pathID(c, "hometask_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "homework_id")
	if !ok {
		return
	}

	if err := h.homeworkService.Delete(c.Request.Context(), middleware.CurrentUser(c), hometaskID, id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "submission deleted"})
}
