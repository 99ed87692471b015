package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edukit/classroom-backend/internal/authz"
	"github.com/edukit/classroom-backend/internal/middleware"
	"github.com/edukit/classroom-backend/internal/model"
	"github.com/edukit/classroom-backend/internal/response"
	"github.com/edukit/classroom-backend/internal/service"
	"github.com/edukit/classroom-backend/internal/validator"
)

// CourseHandler handles course CRUD endpoints.
type CourseHandler struct {
	courseService *service.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List godoc
// GET /api/v1/courses?page=&per_page=
func (h *CourseHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)

	courses, total, err := h.courseService.List(c.Request.Context(), middleware.CurrentUser(c), page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"courses": courses}, &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	})
}

// pageParams parses the page/per_page query params with defaults and a
// per-page cap.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if err != nil || perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}

// Create godoc
// POST /api/v1/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req model.CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		// The only denial on the collection is a non-teacher
		// registration role; name it for the client.
		if errors.Is(err, authz.ErrDenied) {
			response.Fail(c, http.StatusForbidden, response.ErrTeacherRoleOnly)
			return
		}
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"course": course})
}

// Get godoc
// GET /api/v1/courses/:course_id
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "course_id")
	if !ok {
		return
	}

	course, err := h.courseService.Get(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// Update godoc
// PUT /api/v1/courses/:course_id
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "course_id")
	if !ok {
		return
	}

	var req model.UpdateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), middleware.CurrentUser(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// Delete godoc
// DELETE /api/v1/courses/:course_id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "course_id")
	if !ok {
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "course deleted"})
}
