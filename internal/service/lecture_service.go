package service

import (
	"context"

	"github.com/edukit/classroom-backend/internal/authz"
	"github.com/edukit/classroom-backend/internal/model"
	"github.com/edukit/classroom-backend/internal/repository"
)

// LectureService handles lecture business logic.
type LectureService struct {
	lectureRepo *repository.LectureRepository
	engine      *authz.Engine
}

// NewLectureService creates a new LectureService.
func NewLectureService(lectureRepo *repository.LectureRepository, engine *authz.Engine) *LectureService {
	return &LectureService{lectureRepo: lectureRepo, engine: engine}
}

// List retrieves a course's lectures for any course member.
func (s *LectureService) List(ctx context.Context, user *model.User, courseID int) ([]model.Lecture, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionRead, authz.KindLecture, authz.Ref{Kind: authz.KindCourse, ID: courseID}); err != nil {
		return nil, err
	}
	return s.lectureRepo.ListByCourse(ctx, courseID)
}

// Create adds a lecture to a course. Course teachers only.
func (s *LectureService) Create(ctx context.Context, user *model.User, courseID int, req *model.CreateLectureRequest) (*model.Lecture, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionCreate, authz.KindLecture, authz.Ref{Kind: authz.KindCourse, ID: courseID}); err != nil {
		return nil, err
	}

	lecture := &model.Lecture{
		Title:     req.Title,
		CourseID:  courseID,
		CreatorID: user.ID,
	}
	if err := s.lectureRepo.Create(ctx, lecture); err != nil {
		return nil, err
	}
	return lecture, nil
}

// Get retrieves one lecture for any course member.
func (s *LectureService) Get(ctx context.Context, user *model.User, courseID, id int) (*model.Lecture, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionRead, authz.KindLecture, authz.Ref{Kind: authz.KindLecture, ID: id}); err != nil {
		return nil, err
	}
	return s.lectureRepo.GetByID(ctx, courseID, id)
}

// Update modifies a lecture. Course teachers only.
func (s *LectureService) Update(ctx context.Context, user *model.User, courseID, id int, req *model.CreateLectureRequest) (*model.Lecture, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionUpdate, authz.KindLecture, authz.Ref{Kind: authz.KindLecture, ID: id}); err != nil {
		return nil, err
	}

	lecture, err := s.lectureRepo.GetByID(ctx, courseID, id)
	if err != nil {
		return nil, err
	}
	lecture.Title = req.Title
	if err := s.lectureRepo.Update(ctx, lecture); err != nil {
		return nil, err
	}
	return lecture, nil
}

// AttachPresentation stores the uploaded presentation path on the
// lecture. Course teachers only.
func (s *LectureService) AttachPresentation(ctx context.Context, user *model.User, courseID, id int, path string) (*model.Lecture, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionUpdate, authz.KindLecture, authz.Ref{Kind: authz.KindLecture, ID: id}); err != nil {
		return nil, err
	}

	if _, err := s.lectureRepo.GetByID(ctx, courseID, id); err != nil {
		return nil, err
	}
	if err := s.lectureRepo.SetPresentation(ctx, id, path); err != nil {
		return nil, err
	}
	return s.lectureRepo.GetByID(ctx, courseID, id)
}

// Delete removes a lecture. Course teachers only.
func (s *LectureService) Delete(ctx context.Context, user *model.User, courseID, id int) error {
	if err := s.engine.Authorize(ctx, user, authz.ActionDelete, authz.KindLecture, authz.Ref{Kind: authz.KindLecture, ID: id}); err != nil {
		return err
	}
	if _, err := s.lectureRepo.GetByID(ctx, courseID, id); err != nil {
		return err
	}
	return s.lectureRepo.Delete(ctx, id)
}
