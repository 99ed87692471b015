package authz

import (
	"context"
	"fmt"
)

// parentKind is the ownership chain, one step per entity kind:
// Comment → Mark → CompletedHomework → Hometask → Lecture → Course.
var parentKind = map[Kind]Kind{
	KindLecture:           KindCourse,
	KindHometask:          KindLecture,
	KindCompletedHomework: KindHometask,
	KindMark:              KindCompletedHomework,
	KindComment:           KindMark,
}

// Lineage is the result of walking an entity up to its owning course.
type Lineage struct {
	CourseID int
	// HomeworkID is the completed homework the walk passed through, or
	// zero when the starting point sits above that level. Mark and
	// comment rules need it to apply the creator-scoped read rule.
	HomeworkID int
}

// Resolver maps any entity in the hierarchy to its owning course by
// bounded upward traversal of foreign-key links.
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver backed by the given store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// ResolveCourse walks from (kind, id) up to the owning course. Any
// dangling link along the way yields ErrNotFound, including a course
// id that does not resolve to a course.
func (r *Resolver) ResolveCourse(ctx context.Context, kind Kind, id int) (Lineage, error) {
	var lin Lineage

	for kind != KindCourse {
		if kind == KindCompletedHomework {
			lin.HomeworkID = id
		}

		next, ok := parentKind[kind]
		if !ok {
			return Lineage{}, fmt.Errorf("resolve %s %d: %w", kind, id, ErrNotFound)
		}

		parentID, err := r.store.ParentID(ctx, kind, id)
		if err != nil {
			return Lineage{}, fmt.Errorf("resolve %s %d: %w", kind, id, err)
		}

		kind, id = next, parentID
	}

	exists, err := r.store.CourseExists(ctx, id)
	if err != nil {
		return Lineage{}, fmt.Errorf("resolve course %d: %w", id, err)
	}
	if !exists {
		return Lineage{}, fmt.Errorf("resolve course %d: %w", id, ErrNotFound)
	}

	lin.CourseID = id
	return lin, nil
}
