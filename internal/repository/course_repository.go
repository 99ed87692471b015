package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukit/classroom-backend/internal/model"
)

// CourseRepository handles course data access, including the teacher
// and student membership sets.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

const courseColumns = `id, title, description, creator_id, created_at, updated_at`

func scanCourse(row pgx.Row) (*model.Course, error) {
	c := &model.Course{}
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.CreatorID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID retrieves a course by its ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return scanCourse(r.pool.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
}

// List retrieves one page of courses ordered by title.
func (r *CourseRepository) List(ctx context.Context, limit, offset int) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+courseColumns+` FROM courses ORDER BY title LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}

// Count returns the total number of courses.
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&total)
	return total, err
}

// Create inserts a new course and adds the creator to the teacher set
// in the same transaction, keeping the creator-in-teachers invariant.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO courses (title, description, creator_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		c.Title, c.Description, c.CreatorID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO course_teachers (course_id, user_id) VALUES ($1, $2)`,
		c.ID, c.CreatorID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update modifies a course's title and description.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE courses SET title = $1, description = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		c.Title, c.Description, c.ID,
	)
	return err
}

// Delete removes a course; descendants go with it via FK cascades.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}

// AddStudents appends users to the course's student set. Existing
// memberships are left untouched — enrollment is append-only.
func (r *CourseRepository) AddStudents(ctx context.Context, courseID int, userIDs []int) error {
	return r.addMembers(ctx, "course_students", courseID, userIDs)
}

// AddTeachers appends users to the course's teacher set.
func (r *CourseRepository) AddTeachers(ctx context.Context, courseID int, userIDs []int) error {
	return r.addMembers(ctx, "course_teachers", courseID, userIDs)
}

func (r *CourseRepository) addMembers(ctx context.Context, table string, courseID int, userIDs []int) error {
	if len(userIDs) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, userID := range userIDs {
		batch.Queue(fmt.Sprintf(
			`INSERT INTO %s (course_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, table),
			courseID, userID)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

// Teachers lists the users in the course's teacher set.
func (r *CourseRepository) Teachers(ctx context.Context, courseID int) ([]model.User, error) {
	return r.members(ctx, "course_teachers", courseID)
}

// Students lists the users in the course's student set.
func (r *CourseRepository) Students(ctx context.Context, courseID int) ([]model.User, error) {
	return r.members(ctx, "course_students", courseID)
}

func (r *CourseRepository) members(ctx context.Context, table string, courseID int) ([]model.User, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(
		`SELECT u.id, u.username, u.first_name, u.last_name, u.email,
		        u.registration_role, u.password_hash, u.created_at, u.updated_at
		 FROM users u
		 JOIN %s m ON m.user_id = u.id
		 WHERE m.course_id = $1
		 ORDER BY u.username`, table), courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// LectureTitles lists the titles of the course's lectures, newest first.
func (r *CourseRepository) LectureTitles(ctx context.Context, courseID int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT title FROM lectures WHERE course_id = $1 ORDER BY id DESC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}
