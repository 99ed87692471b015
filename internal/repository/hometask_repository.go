package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukit/classroom-backend/internal/model"
)

// HometaskRepository handles hometask data access.
type HometaskRepository struct {
	pool *pgxpool.Pool
}

// NewHometaskRepository creates a new HometaskRepository.
func NewHometaskRepository(pool *pgxpool.Pool) *HometaskRepository {
	return &HometaskRepository{pool: pool}
}

const hometaskColumns = `id, title, description, lecture_id, creator_id, created_at, updated_at`

func scanHometask(row pgx.Row) (*model.Hometask, error) {
	h := &model.Hometask{}
	err := row.Scan(&h.ID, &h.Title, &h.Description, &h.LectureID, &h.CreatorID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// GetByID retrieves a hometask scoped to its lecture.
func (r *HometaskRepository) GetByID(ctx context.Context, lectureID, id int) (*model.Hometask, error) {
	return scanHometask(r.pool.QueryRow(ctx,
		`SELECT `+hometaskColumns+` FROM hometasks WHERE id = $1 AND lecture_id = $2`, id, lectureID))
}

// ListByLecture retrieves all hometasks of a lecture ordered by title.
func (r *HometaskRepository) ListByLecture(ctx context.Context, lectureID int) ([]model.Hometask, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+hometaskColumns+` FROM hometasks WHERE lecture_id = $1 ORDER BY title`, lectureID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Hometask
	for rows.Next() {
		h, err := scanHometask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *h)
	}
	return tasks, rows.Err()
}

// Create inserts a new hometask.
func (r *HometaskRepository) Create(ctx context.Context, h *model.Hometask) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO hometasks (title, description, lecture_id, creator_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		h.Title, h.Description, h.LectureID, h.CreatorID,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

// Update modifies a hometask's title and description.
func (r *HometaskRepository) Update(ctx context.Context, h *model.Hometask) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE hometasks SET title = $1, description = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		h.Title, h.Description, h.ID,
	)
	return err
}

// Delete removes a hometask by its ID.
func (r *HometaskRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM hometasks WHERE id = $1`, id)
	return err
}
