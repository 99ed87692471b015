package service

import (
	"context"

	"github.com/edukit/classroom-backend/internal/authz"
	"github.com/edukit/classroom-backend/internal/model"
	"github.com/edukit/classroom-backend/internal/repository"
)

// CourseService handles course business logic behind the authorization
// engine.
type CourseService struct {
	courseRepo *repository.CourseRepository
	engine     *authz.Engine
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repository.CourseRepository, engine *authz.Engine) *CourseService {
	return &CourseService{courseRepo: courseRepo, engine: engine}
}

// List retrieves one page of courses plus the total count. Open to
// every authenticated user.
func (s *CourseService) List(ctx context.Context, user *model.User, page, perPage int) ([]model.Course, int, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionRead, authz.KindCourse, authz.Ref{Kind: authz.KindCourse}); err != nil {
		return nil, 0, err
	}

	total, err := s.courseRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	courses, err := s.courseRepo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// Create creates a new course. Only teacher-registered users may do
// this; the creator automatically joins the teacher set.
func (s *CourseService) Create(ctx context.Context, user *model.User, req *model.CreateCourseRequest) (*model.Course, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionCreate, authz.KindCourse, authz.Ref{Kind: authz.KindCourse}); err != nil {
		return nil, err
	}

	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		CreatorID:   user.ID,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Get retrieves a course with its membership sets and lecture titles.
func (s *CourseService) Get(ctx context.Context, user *model.User, id int) (*model.CourseDetail, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionRead, authz.KindCourse, authz.Ref{Kind: authz.KindCourse, ID: id}); err != nil {
		return nil, err
	}
	return s.detail(ctx, id)
}

// Update edits the course fields and appends any supplied members.
func (s *CourseService) Update(ctx context.Context, user *model.User, id int, req *model.UpdateCourseRequest) (*model.CourseDetail, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionUpdate, authz.KindCourse, authz.Ref{Kind: authz.KindCourse, ID: id}); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	if err := s.courseRepo.AddStudents(ctx, id, req.Students); err != nil {
		return nil, err
	}
	if err := s.courseRepo.AddTeachers(ctx, id, req.Teachers); err != nil {
		return nil, err
	}

	return s.detail(ctx, id)
}

// Delete removes a course and everything under it.
func (s *CourseService) Delete(ctx context.Context, user *model.User, id int) error {
	if err := s.engine.Authorize(ctx, user, authz.ActionDelete, authz.KindCourse, authz.Ref{Kind: authz.KindCourse, ID: id}); err != nil {
		return err
	}
	return s.courseRepo.Delete(ctx, id)
}

func (s *CourseService) detail(ctx context.Context, id int) (*model.CourseDetail, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	teachers, err := s.courseRepo.Teachers(ctx, id)
	if err != nil {
		return nil, err
	}
	students, err := s.courseRepo.Students(ctx, id)
	if err != nil {
		return nil, err
	}
	lectures, err := s.courseRepo.LectureTitles(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.CourseDetail{
		Course:   *course,
		Teachers: teachers,
		Students: students,
		Lectures: lectures,
	}, nil
}
