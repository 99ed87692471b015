package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukit/classroom-backend/internal/middleware"
	"github.com/edukit/classroom-backend/internal/model"
	"github.com/edukit/classroom-backend/internal/response"
	"github.com/edukit/classroom-backend/internal/service"
	"github.com/edukit/classroom-backend/internal/validator"
)

// LectureHandler handles lecture endpoints nested under a course.
type LectureHandler struct {
	lectureService *service.LectureService
	mediaService   *service.MediaService
}

// NewLectureHandler creates a new LectureHandler.
func NewLectureHandler(lectureService *service.LectureService, mediaService *service.MediaService) *LectureHandler {
	return &LectureHandler{lectureService: lectureService, mediaService: mediaService}
}

// List godoc
// GET /api/v1/courses/:course_id/lectures
func (h *LectureHandler) List(c *gin.Context) {
	courseID, ok := pathID(c, "course_id")
	if !ok {
		return
	}

	lectures, err := h.lectureService.List(c.Request.Context(), middleware.CurrentUser(c), courseID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lectures": lectures})
}

// Create godoc
// POST /api/v1/courses/:course_id/lectures
func (h *LectureHandler) Create(c *gin.Context) {
	courseID, ok := pathID(c, "course_id")
	if !ok {
		return
	}

	var req model.CreateLectureRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lecture, err := h.lectureService.Create(c.Request.Context(), middleware.CurrentUser(c), courseID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"lecture": lecture})
}

// Get godoc
// GET /api/v1/courses/:course_id/lectures/:lecture_id
func (h *LectureHandler) Get(c *gin.Context) {
	courseID, ok := pathID(c, "course_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "lecture_id")
	if !ok {
		return
	}

	lecture, err := h.lectureService.Get(c.Request.Context(), middleware.CurrentUser(c), courseID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lecture": lecture})
}

// Update godoc
// PUT /api/v1/courses/:course_id/lectures/:lecture_id
func (h *LectureHandler) Update(c *gin.Context) {
	courseID, ok := pathID(c, "course_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "lecture_id")
	if !ok {
		return
	}

	var req model.CreateLectureRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lecture, err := h.lectureService.Update(c.Request.Context(), middleware.CurrentUser(c), courseID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lecture": lecture})
}

// UploadPresentation godoc
// POST /api/v1/courses/:course_id/lectures/:lecture_id/presentation
// Multipart upload; the stored path lands on the lecture record.
func (h *LectureHandler) UploadPresentation(c *gin.Context) {
	courseID, ok := pathID(c, "course_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "lecture_id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("presentation")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	path, err := h.mediaService.SaveUpload(file, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusUnsupportedMediaType, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	lecture, err := h.lectureService.AttachPresentation(c.Request.Context(), middleware.CurrentUser(c), courseID, id, path)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lecture": lecture})
}

// Delete godoc
// DELETE /api/v1/courses/:course_id/lectures/:lecture_id
func (h *LectureHandler) Delete(c *gin.Context) {
	courseID, ok := pathID(c, "course_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "lecture_id")
	if !ok {
		return
	}

	if err := h.lectureService.Delete(c.Request.Context(), middleware.CurrentUser(c), courseID, id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "lecture deleted"})
}
