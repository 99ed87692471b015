package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukit/classroom-backend/internal/authz"
)

// AuthzStore implements authz.Store over PostgreSQL. Every call is a
// point-in-time query; nothing is cached between decisions.
type AuthzStore struct {
	pool *pgxpool.Pool
}

// NewAuthzStore creates a new AuthzStore.
func NewAuthzStore(pool *pgxpool.Pool) *AuthzStore {
	return &AuthzStore{pool: pool}
}

// parentQuery maps each child kind to the lookup of its owning entity id.
var parentQuery = map[authz.Kind]string{
	authz.KindLecture:           `SELECT course_id FROM lectures WHERE id = $1`,
	authz.KindHometask:          `SELECT lecture_id FROM hometasks WHERE id = $1`,
	authz.KindCompletedHomework: `SELECT hometask_id FROM completed_homeworks WHERE id = $1`,
	authz.KindMark:              `SELECT completed_homework_id FROM marks WHERE id = $1`,
	authz.KindComment:           `SELECT mark_id FROM comments WHERE id = $1`,
}

// CourseExists reports whether a course row exists for the id.
func (s *AuthzStore) CourseExists(ctx context.Context, courseID int) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, courseID,
	).Scan(&exists)
	return exists, err
}

// ParentID returns the id of the entity one step up the ownership
// chain, or authz.ErrNotFound when the row or the link is missing.
func (s *AuthzStore) ParentID(ctx context.Context, kind authz.Kind, id int) (int, error) {
	query, ok := parentQuery[kind]
	if !ok {
		return 0, authz.ErrNotFound
	}

	var parentID int
	err := s.pool.QueryRow(ctx, query, id).Scan(&parentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, authz.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("parent of %s %d: %w", kind, id, err)
	}
	return parentID, nil
}

// IsCourseTeacher reports membership in the course's teacher set.
func (s *AuthzStore) IsCourseTeacher(ctx context.Context, courseID, userID int) (bool, error) {
	return s.isMember(ctx, "course_teachers", courseID, userID)
}

// IsCourseStudent reports membership in the course's student set.
func (s *AuthzStore) IsCourseStudent(ctx context.Context, courseID, userID int) (bool, error) {
	return s.isMember(ctx, "course_students", courseID, userID)
}

func (s *AuthzStore) isMember(ctx context.Context, table string, courseID, userID int) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, fmt.Sprintf(
		`SELECT EXISTS(SELECT 1 FROM %s WHERE course_id = $1 AND user_id = $2)`, table),
		courseID, userID,
	).Scan(&exists)
	return exists, err
}

// HomeworkCreatorID returns the submitting student of a completed homework.
func (s *AuthzStore) HomeworkCreatorID(ctx context.Context, homeworkID int) (int, error) {
	var creatorID int
	err := s.pool.QueryRow(ctx,
		`SELECT creator_id FROM completed_homeworks WHERE id = $1`, homeworkID,
	).Scan(&creatorID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, authz.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("homework %d creator: %w", homeworkID, err)
	}
	return creatorID, nil
}
