package authz

import (
	"context"
	"fmt"

	"github.com/edukit/classroom-backend/internal/model"
)

// Engine evaluates the fixed classroom rule table:
//
//	resource              read                          write
//	course (collection)   any authenticated             registration-role teacher (create)
//	course (detail)       course teacher or student     course teacher
//	lecture, hometask     course teacher or student     course teacher
//	completed homework    course teacher or student     enrolled student
//	mark                  course teacher or submitter   course teacher
//	comment               course teacher or submitter   create only, same pair
//
// Unrelated users are denied everything. An unresolved ownership chain
// is ErrNotFound, never an allow.
type Engine struct {
	store    Store
	resolver *Resolver
}

// NewEngine creates an Engine backed by the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store, resolver: NewResolver(store)}
}

// Resolver exposes the engine's hierarchy resolver.
func (e *Engine) Resolver() *Resolver {
	return e.resolver
}

// Classify determines the user's relationship to a course. Teacher
// membership is checked first and wins when a user appears in both sets.
func (e *Engine) Classify(ctx context.Context, courseID, userID int) (Role, error) {
	isTeacher, err := e.store.IsCourseTeacher(ctx, courseID, userID)
	if err != nil {
		return RoleUnrelated, fmt.Errorf("classify teacher: %w", err)
	}
	if isTeacher {
		return RoleTeacher, nil
	}

	isStudent, err := e.store.IsCourseStudent(ctx, courseID, userID)
	if err != nil {
		return RoleUnrelated, fmt.Errorf("classify student: %w", err)
	}
	if isStudent {
		return RoleStudent, nil
	}

	return RoleUnrelated, nil
}

// Authorize decides whether user may perform action on an entity of
// the given kind. target is the entity itself, or the parent it is
// created under for ActionCreate. A nil user is always denied.
func (e *Engine) Authorize(ctx context.Context, user *model.User, action Action, kind Kind, target Ref) error {
	if user == nil {
		return ErrDenied
	}

	// Comments are append-only. This is rejected before any role or
	// hierarchy lookup: the operation does not exist for anyone.
	if kind == KindComment && (action == ActionUpdate || action == ActionDelete) {
		return ErrMethodNotAllowed
	}

	// The course collection is not scoped to an existing course.
	// Listing is open to every authenticated user; creating requires a
	// teacher registration role.
	if kind == KindCourse && target.ID == 0 {
		if action == ActionCreate && user.RegistrationRole != model.RoleTeacher {
			return ErrDenied
		}
		return nil
	}

	lin, err := e.resolver.ResolveCourse(ctx, target.Kind, target.ID)
	if err != nil {
		return err
	}

	role, err := e.Classify(ctx, lin.CourseID, user.ID)
	if err != nil {
		return err
	}
	if role == RoleUnrelated {
		return ErrDenied
	}

	switch kind {
	case KindCourse, KindLecture, KindHometask:
		if action.isWrite() && role != RoleTeacher {
			return ErrDenied
		}
		return nil

	case KindCompletedHomework:
		// Submissions are written by students only; teachers grade,
		// they do not submit.
		if action.isWrite() && role != RoleStudent {
			return ErrDenied
		}
		return nil

	case KindMark:
		if action.isWrite() {
			if role != RoleTeacher {
				return ErrDenied
			}
			return nil
		}
		return e.allowTeacherOrSubmitter(ctx, user, role, lin)

	case KindComment:
		// Read and create share one rule: any teacher of the course,
		// or the student whose submission is under grading.
		return e.allowTeacherOrSubmitter(ctx, user, role, lin)
	}

	return ErrDenied
}

// allowTeacherOrSubmitter applies the mark/comment visibility rule:
// every course teacher, plus the creator of the underlying completed
// homework.
func (e *Engine) allowTeacherOrSubmitter(ctx context.Context, user *model.User, role Role, lin Lineage) error {
	if role == RoleTeacher {
		return nil
	}

	creatorID, err := e.store.HomeworkCreatorID(ctx, lin.HomeworkID)
	if err != nil {
		return fmt.Errorf("homework creator: %w", err)
	}
	if user.ID != creatorID {
		return ErrDenied
	}
	return nil
}
