package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukit/classroom-backend/internal/model"
)

// MarkRepository handles mark data access. The marks table carries a
// unique constraint on completed_homework_id; a concurrent duplicate
// grade attempt loses with a uniqueness violation rather than
// overwriting the winner.
type MarkRepository struct {
	pool *pgxpool.Pool
}

// NewMarkRepository creates a new MarkRepository.
func NewMarkRepository(pool *pgxpool.Pool) *MarkRepository {
	return &MarkRepository{pool: pool}
}

const markColumns = `id, completed_homework_id, creator_id, mark, created_at, updated_at`

func scanMark(row pgx.Row) (*model.Mark, error) {
	m := &model.Mark{}
	err := row.Scan(&m.ID, &m.CompletedHomeworkID, &m.CreatorID, &m.Value, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// GetByID retrieves a mark by its ID.
func (r *MarkRepository) GetByID(ctx context.Context, id int) (*model.Mark, error) {
	return scanMark(r.pool.QueryRow(ctx,
		`SELECT `+markColumns+` FROM marks WHERE id = $1`, id))
}

// ListByHomework retrieves the mark of a submission as a list; the 1:1
// relation means it holds at most one element.
func (r *MarkRepository) ListByHomework(ctx context.Context, homeworkID int) ([]model.Mark, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+markColumns+` FROM marks WHERE completed_homework_id = $1`, homeworkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []model.Mark
	for rows.Next() {
		m, err := scanMark(rows)
		if err != nil {
			return nil, err
		}
		marks = append(marks, *m)
	}
	return marks, rows.Err()
}

// Create inserts a new mark.
func (r *MarkRepository) Create(ctx context.Context, m *model.Mark) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO marks (completed_homework_id, creator_id, mark)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		m.CompletedHomeworkID, m.CreatorID, m.Value,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

// Update modifies a mark's value.
func (r *MarkRepository) Update(ctx context.Context, m *model.Mark) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE marks SET mark = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		m.Value, m.ID,
	)
	return err
}
