package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukit/classroom-backend/internal/model"
)

// HomeworkRepository handles completed homework (submission) data access.
type HomeworkRepository struct {
	pool *pgxpool.Pool
}

// NewHomeworkRepository creates a new HomeworkRepository.
func NewHomeworkRepository(pool *pgxpool.Pool) *HomeworkRepository {
	return &HomeworkRepository{pool: pool}
}

const homeworkColumns = `id, hometask_id, creator_id, link, created_at, updated_at`

func scanHomework(row pgx.Row) (*model.CompletedHomework, error) {
	hw := &model.CompletedHomework{}
	err := row.Scan(&hw.ID, &hw.HometaskID, &hw.CreatorID, &hw.Link, &hw.CreatedAt, &hw.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return hw, nil
}

// GetByID retrieves a submission scoped to its hometask.
func (r *HomeworkRepository) GetByID(ctx context.Context, hometaskID, id int) (*model.CompletedHomework, error) {
	return scanHomework(r.pool.QueryRow(ctx,
		`SELECT `+homeworkColumns+` FROM completed_homeworks
		 WHERE id = $1 AND hometask_id = $2`, id, hometaskID))
}

// ListByHometask retrieves every submission for a hometask. Per-student
// visibility narrowing happens in the authorization layer, not here.
func (r *HomeworkRepository) ListByHometask(ctx context.Context, hometaskID int) ([]model.CompletedHomework, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+homeworkColumns+` FROM completed_homeworks
		 WHERE hometask_id = $1 ORDER BY id`, hometaskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.CompletedHomework
	for rows.Next() {
		hw, err := scanHomework(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *hw)
	}
	return records, rows.Err()
}

// Create inserts a new submission.
func (r *HomeworkRepository) Create(ctx context.Context, hw *model.CompletedHomework) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO completed_homeworks (hometask_id, creator_id, link)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		hw.HometaskID, hw.CreatorID, hw.Link,
	).Scan(&hw.ID, &hw.CreatedAt, &hw.UpdatedAt)
}

// Update modifies a submission's link.
func (r *HomeworkRepository) Update(ctx context.Context, hw *model.CompletedHomework) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE completed_homeworks SET link = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		hw.Link, hw.ID,
	)
	return err
}

// Delete removes a submission by its ID.
func (r *HomeworkRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM completed_homeworks WHERE id = $1`, id)
	return err
}
