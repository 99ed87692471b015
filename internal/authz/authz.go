package authz

import (
	"context"
	"errors"
)

// Sentinel results of an authorization decision. Handlers translate
// these to 403, 404 and 405; they are terminal and never retried.
var (
	// ErrDenied is a role-based rejection.
	ErrDenied = errors.New("authz: denied")
	// ErrNotFound signals a missing or broken link in the ownership chain.
	// It is never masked as a denial: callers depend on the distinction.
	ErrNotFound = errors.New("authz: not found")
	// ErrMethodNotAllowed signals an operation the protocol forbids for
	// every role, such as mutating a comment.
	ErrMethodNotAllowed = errors.New("authz: method not allowed")
)

// Kind identifies an entity kind in the ownership chain.
type Kind int

const (
	KindCourse Kind = iota
	KindLecture
	KindHometask
	KindCompletedHomework
	KindMark
	KindComment
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindCourse:
		return "course"
	case KindLecture:
		return "lecture"
	case KindHometask:
		return "hometask"
	case KindCompletedHomework:
		return "completed_homework"
	case KindMark:
		return "mark"
	case KindComment:
		return "comment"
	}
	return "unknown"
}

// Action is the kind of access being attempted.
type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
)

func (a Action) isWrite() bool { return a != ActionRead }

// Role is a user's relationship to one course. It is computed per
// decision and is distinct from the registration role.
type Role int

const (
	RoleUnrelated Role = iota
	RoleStudent
	RoleTeacher
)

// Ref identifies the subject of a decision: the entity itself for
// read, update and delete, or the parent entity a create is nested
// under (e.g. the course a new lecture is added to).
type Ref struct {
	Kind Kind
	ID   int
}

// Store is the entity-store collaborator the engine reads from. Every
// call is a point-in-time query; no membership set is cached across a
// decision. Implementations return ErrNotFound for missing rows.
type Store interface {
	// CourseExists reports whether the course id resolves to a course.
	CourseExists(ctx context.Context, courseID int) (bool, error)
	// ParentID returns the id of the entity owning the given one,
	// one step up the chain. Asking for the parent of a course is a
	// programming error and must return ErrNotFound.
	ParentID(ctx context.Context, kind Kind, id int) (int, error)
	// IsCourseTeacher reports membership in the course's teacher set.
	IsCourseTeacher(ctx context.Context, courseID, userID int) (bool, error)
	// IsCourseStudent reports membership in the course's student set.
	IsCourseStudent(ctx context.Context, courseID, userID int) (bool, error)
	// HomeworkCreatorID returns the submitting student of a completed homework.
	HomeworkCreatorID(ctx context.Context, homeworkID int) (int, error)
}
