package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukit/classroom-backend/internal/model"
)

// LectureRepository handles lecture data access.
type LectureRepository struct {
	pool *pgxpool.Pool
}

// NewLectureRepository creates a new LectureRepository.
func NewLectureRepository(pool *pgxpool.Pool) *LectureRepository {
	return &LectureRepository{pool: pool}
}

const lectureColumns = `id, title, course_id, creator_id, presentation, created_at, updated_at`

func scanLecture(row pgx.Row) (*model.Lecture, error) {
	l := &model.Lecture{}
	err := row.Scan(&l.ID, &l.Title, &l.CourseID, &l.CreatorID, &l.Presentation, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// GetByID retrieves a lecture scoped to its course.
func (r *LectureRepository) GetByID(ctx context.Context, courseID, id int) (*model.Lecture, error) {
	return scanLecture(r.pool.QueryRow(ctx,
		`SELECT `+lectureColumns+` FROM lectures WHERE id = $1 AND course_id = $2`, id, courseID))
}

// ListByCourse retrieves all lectures of a course, newest first.
func (r *LectureRepository) ListByCourse(ctx context.Context, courseID int) ([]model.Lecture, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+lectureColumns+` FROM lectures WHERE course_id = $1 ORDER BY id DESC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lectures []model.Lecture
	for rows.Next() {
		l, err := scanLecture(rows)
		if err != nil {
			return nil, err
		}
		lectures = append(lectures, *l)
	}
	return lectures, rows.Err()
}

// Create inserts a new lecture.
func (r *LectureRepository) Create(ctx context.Context, l *model.Lecture) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO lectures (title, course_id, creator_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		l.Title, l.CourseID, l.CreatorID,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// Update modifies a lecture's title.
func (r *LectureRepository) Update(ctx context.Context, l *model.Lecture) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE lectures SET title = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		l.Title, l.ID,
	)
	return err
}

// SetPresentation stores the uploaded presentation's URL path.
func (r *LectureRepository) SetPresentation(ctx context.Context, id int, path string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE lectures SET presentation = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		path, id,
	)
	return err
}

// Delete removes a lecture by its ID.
func (r *LectureRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM lectures WHERE id = $1`, id)
	return err
}
