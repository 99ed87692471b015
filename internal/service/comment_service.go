package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/edukit/classroom-backend/internal/authz"
	"github.com/edukit/classroom-backend/internal/config"
	"github.com/edukit/classroom-backend/internal/model"
	"github.com/edukit/classroom-backend/internal/repository"
)

// CommentService handles the grading conversation under a mark.
// Comments are append-only; mutation never reaches this service — the
// engine and the router both reject it.
type CommentService struct {
	commentRepo *repository.CommentRepository
	engine      *authz.Engine
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo *repository.CommentRepository, engine *authz.Engine, rdb *redis.Client, log zerolog.Logger) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		engine:      engine,
		rdb:         rdb,
		log:         log.With().Str("component", "comment_service").Logger(),
	}
}

// List retrieves a mark's full comment thread for the course teachers
// and the submitting student. No per-record filtering: once graded,
// the conversation is visible in full to both sides.
func (s *CommentService) List(ctx context.Context, user *model.User, markID int) ([]model.Comment, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionRead, authz.KindComment, authz.Ref{Kind: authz.KindMark, ID: markID}); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByMark(ctx, markID)
}

// Create appends a comment to a mark's thread and publishes it to the
// mark's live feed channel.
func (s *CommentService) Create(ctx context.Context, user *model.User, markID int, req *model.CreateCommentRequest) (*model.Comment, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionCreate, authz.KindComment, authz.Ref{Kind: authz.KindMark, ID: markID}); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		MarkID:    markID,
		CreatorID: user.ID,
		Text:      req.Text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.publish(ctx, comment)
	return comment, nil
}

// Get retrieves one comment.
func (s *CommentService) Get(ctx context.Context, user *model.User, markID, id int) (*model.Comment, error) {
	if err := s.engine.Authorize(ctx, user, authz.ActionRead, authz.KindComment, authz.Ref{Kind: authz.KindComment, ID: id}); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, markID, id)
}

// publish pushes the new comment onto the mark's pub/sub channel.
// Failures are logged, not surfaced — the comment is already stored.
func (s *CommentService) publish(ctx context.Context, comment *model.Comment) {
	payload, err := json.Marshal(comment)
	if err != nil {
		s.log.Error().Err(err).Int("comment_id", comment.ID).Msg("Marshal comment event")
		return
	}
	channel := config.CacheKey.MarkCommentsChannel(comment.MarkID)
	if err := s.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		s.log.Warn().Err(err).Str("channel", channel).Msg("Publish comment event")
	}
}
