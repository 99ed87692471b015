package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukit/classroom-backend/internal/model"
)

// CommentRepository handles comment data access. Comments are
// append-only; there are no update or delete statements on purpose.
type CommentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

const commentColumns = `id, mark_id, creator_id, comment_text, created_at`

func scanComment(row pgx.Row) (*model.Comment, error) {
	c := &model.Comment{}
	err := row.Scan(&c.ID, &c.MarkID, &c.CreatorID, &c.Text, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID retrieves a comment scoped to its mark.
func (r *CommentRepository) GetByID(ctx context.Context, markID, id int) (*model.Comment, error) {
	return scanComment(r.pool.QueryRow(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = $1 AND mark_id = $2`, id, markID))
}

// ListByMark retrieves a mark's comment thread, oldest first.
func (r *CommentRepository) ListByMark(ctx context.Context, markID int) ([]model.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE mark_id = $1 ORDER BY id`, markID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}

// Create inserts a new comment.
func (r *CommentRepository) Create(ctx context.Context, c *model.Comment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO comments (mark_id, creator_id, comment_text)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		c.MarkID, c.CreatorID, c.Text,
	).Scan(&c.ID, &c.CreatedAt)
}
