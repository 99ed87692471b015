package service

import (
	"context"

	"github.com/edukit/classroom-backend/internal/authz"
	"github.com/edukit/classroom-backend/internal/model"
	"github.com/edukit/classroom-backend/internal/repository"
)

// HomeworkService handles homework submissions. A submission is
// private between its student and the course teachers until graded.
type HomeworkService struct {
	homeworkRepo *repository.HomeworkRepository
	engine       *authz.Engine
}

// NewHomeworkService creates a new HomeworkService.
func NewHomeworkService(homeworkRepo *repository.HomeworkRepository, engine *authz.Engine) *HomeworkService {
	return &HomeworkService{homeworkRepo: homeworkRepo, engine: engine}
}

// List retrieves the submissions of a hometask, narrowed by role:
// teachers see every record, each student only their own.
func (s *HomeworkService) List(ctx context.Context, user *model.User, hometaskID int) ([]model.CompletedHomework, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionRead, authz.KindCompletedHomework, authz.Ref{Kind: authz.KindHometask, ID: hometaskID}); err != nil {
		return nil, err
	}

	lin, err := s.engine.Resolver().ResolveCourse(ctx, authz.KindHometask, hometaskID)
	if err != nil {
		return nil, err
	}
	role, err := s.engine.Classify(ctx, lin.CourseID, user.ID)
	if err != nil {
		return nil, err
	}

	records, err := s.homeworkRepo.ListByHometask(ctx, hometaskID)
	if err != nil {
		return nil, err
	}
	return authz.FilterHomework(role, user.ID, records), nil
}

// Submit creates a submission for the acting student.
func (s *HomeworkService) Submit(ctx context.Context, user *model.User, hometaskID int, req *model.SubmitHomeworkRequest) (*model.CompletedHomework, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionCreate, authz.KindCompletedHomework, authz.Ref{Kind: authz.KindHometask, ID: hometaskID}); err != nil {
		return nil, err
	}

	hw := &model.CompletedHomework{
		HometaskID: hometaskID,
		CreatorID:  user.ID,
		Link:       req.Link,
	}
	if err := s.homeworkRepo.Create(ctx, hw); err != nil {
		return nil, err
	}
	return hw, nil
}

// Get retrieves one submission for any course member.
func (s *HomeworkService) Get(ctx context.Context, user *model.User, hometaskID, id int) (*model.CompletedHomework, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionRead, authz.KindCompletedHomework, authz.Ref{Kind: authz.KindCompletedHomework, ID: id}); err != nil {
		return nil, err
	}
	return s.homeworkRepo.GetByID(ctx, hometaskID, id)
}

// Update replaces a submission's link. Enrolled students only.
func (s *HomeworkService) Update(ctx context.Context, user *model.User, hometaskID, id int, req *model.SubmitHomeworkRequest) (*model.CompletedHomework, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionUpdate, authz.KindCompletedHomework, authz.Ref{Kind: authz.KindCompletedHomework, ID: id}); err != nil {
		return nil, err
	}

	hw, err := s.homeworkRepo.GetByID(ctx, hometaskID, id)
	if err != nil {
		return nil, err
	}
	hw.Link = req.Link
	if err := s.homeworkRepo.Update(ctx, hw); err != nil {
		return nil, err
	}
	return hw, nil
}

// Delete removes a submission. Enrolled students only.
func (s *HomeworkService) Delete(ctx context.Context, user *model.User, hometaskID, id int) error {
	if err := s.engine.Authorize(ctx, user, authz.ActionDelete, authz.KindCompletedHomework, authz.Ref{Kind: authz.KindCompletedHomework, ID: id}); err != nil {
		return err
	}
	if _, err := s.homeworkRepo.GetByID(ctx, hometaskID, id); err != nil {
		return err
	}
	return s.homeworkRepo.Delete(ctx, id)
}
