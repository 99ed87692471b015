package service

import (
	"context"

	"github.com/edukit/classroom-backend/internal/authz"
	"github.com/edukit/classroom-backend/internal/model"
)

// MarkStore is the persistence dependency of MarkService. Satisfied by
// repository.MarkRepository.
type MarkStore interface {
	ListByHomework(ctx context.Context, homeworkID int) ([]model.Mark, error)
	Create(ctx context.Context, m *model.Mark) error
	GetByID(ctx context.Context, id int) (*model.Mark, error)
	Update(ctx context.Context, m *model.Mark) error
}

// CommentLister retrieves a mark's comment thread. Satisfied by
// repository.CommentRepository.
type CommentLister interface {
	ListByMark(ctx context.Context, markID int) ([]model.Comment, error)
}

// MarkService handles grading. Any teacher of the course may grade,
// not only the teacher who authored the hometask.
type MarkService struct {
	markRepo    MarkStore
	commentRepo CommentLister
	engine      *authz.Engine
}

// NewMarkService creates a new MarkService.
func NewMarkService(markRepo MarkStore, commentRepo CommentLister, engine *authz.Engine) *MarkService {
	return &MarkService{markRepo: markRepo, commentRepo: commentRepo, engine: engine}
}

// ListByHomework retrieves a submission's mark (at most one) for the
// course teachers and the submitting student.
func (s *MarkService) ListByHomework(ctx context.Context, user *model.User, homeworkID int) ([]model.Mark, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionRead, authz.KindMark, authz.Ref{Kind: authz.KindCompletedHomework, ID: homeworkID}); err != nil {
		return nil, err
	}
	return s.markRepo.ListByHomework(ctx, homeworkID)
}

// Create grades a submission. The unique constraint on the submission
// id makes concurrent duplicate grading lose with a conflict.
func (s *MarkService) Create(ctx context.Context, user *model.User, homeworkID int, req *model.CreateMarkRequest) (*model.Mark, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionCreate, authz.KindMark, authz.Ref{Kind: authz.KindCompletedHomework, ID: homeworkID}); err != nil {
		return nil, err
	}

	mark := &model.Mark{
		CompletedHomeworkID: homeworkID,
		CreatorID:           user.ID,
		Value:               req.Value,
	}
	if err := s.markRepo.Create(ctx, mark); err != nil {
		return nil, err
	}
	return mark, nil
}

// Get retrieves a mark with its comment thread.
func (s *MarkService) Get(ctx context.Context, user *model.User, id int) (*model.MarkDetail, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionRead, authz.KindMark, authz.Ref{Kind: authz.KindMark, ID: id}); err != nil {
		return nil, err
	}

	mark, err := s.markRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByMark(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.MarkDetail{Mark: *mark, Comments: comments}, nil
}

// Update changes a mark's value. Course teachers only.
func (s *MarkService) Update(ctx context.Context, user *model.User, id int, req *model.CreateMarkRequest) (*model.Mark, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionUpdate, authz.KindMark, authz.Ref{Kind: authz.KindMark, ID: id}); err != nil {
		return nil, err
	}

	mark, err := s.markRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	mark.Value = req.Value
	if err := s.markRepo.Update(ctx, mark); err != nil {
		return nil, err
	}
	return mark, nil
}
