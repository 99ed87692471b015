package service

import (
	"context"

	"github.com/edukit/classroom-backend/internal/authz"
	"github.com/edukit/classroom-backend/internal/model"
	"github.com/edukit/classroom-backend/internal/repository"
)

// HometaskService handles hometask business logic.
type HometaskService struct {
	hometaskRepo *repository.HometaskRepository
	engine       *authz.Engine
}

// NewHometaskService creates a new HometaskService.
func NewHometaskService(hometaskRepo *repository.HometaskRepository, engine *authz.Engine) *HometaskService {
	return &HometaskService{hometaskRepo: hometaskRepo, engine: engine}
}

// List retrieves a lecture's hometasks for any course member.
func (s *HometaskService) List(ctx context.Context, user *model.User, lectureID int) ([]model.Hometask, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionRead, authz.KindHometask, authz.Ref{Kind: authz.KindLecture, ID: lectureID}); err != nil {
		return nil, err
	}
	return s.hometaskRepo.ListByLecture(ctx, lectureID)
}

// Create adds a hometask to a lecture. Course teachers only.
func (s *HometaskService) Create(ctx context.Context, user *model.User, lectureID int, req *model.CreateHometaskRequest) (*model.Hometask, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionCreate, authz.KindHometask, authz.Ref{Kind: authz.KindLecture, ID: lectureID}); err != nil {
		return nil, err
	}

	task := &model.Hometask{
		Title:       req.Title,
		Description: req.Description,
		LectureID:   lectureID,
		CreatorID:   user.ID,
	}
	if err := s.hometaskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Get retrieves one hometask for any course member.
func (s *HometaskService) Get(ctx context.Context, user *model.User, lectureID, id int) (*model.Hometask, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionRead, authz.KindHometask, authz.Ref{Kind: authz.KindHometask, ID: id}); err != nil {
		return nil, err
	}
	return s.hometaskRepo.GetByID(ctx, lectureID, id)
}

// Update modifies a hometask. Course teachers only.
func (s *HometaskService) Update(ctx context.Context, user *model.User, lectureID, id int, req *model.CreateHometaskRequest) (*model.Hometask, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionUpdate, authz.KindHometask, authz.Ref{Kind: authz.KindHometask, ID: id}); err != nil {
		return nil, err
	}

	task, err := s.hometaskRepo.GetByID(ctx, lectureID, id)
	if err != nil {
		return nil, err
	}
	task.Title = req.Title
	task.Description = req.Description
	if err := s.hometaskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a hometask. Course teachers only.
func (s *HometaskService) Delete(ctx context.Context, user *model.User, lectureID, id int) error {
	if err := s.engine.Authorize(ctx, user, authz.ActionDelete, authz.KindHometask, authz.Ref{Kind: authz.KindHometask, ID: id}); err != nil {
		return err
	}
	if _, err := s.hometaskRepo.GetByID(ctx, lectureID, id); err != nil {
		return err
	}
	return s.hometaskRepo.Delete(ctx, id)
}
