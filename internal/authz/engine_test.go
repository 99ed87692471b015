package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edukit/classroom-backend/internal/model"
)

// fakeStore is an in-memory Store for engine tests.
type fakeStore struct {
	courses          map[int]bool
	teachers         map[int]map[int]bool // courseID → set of userIDs
	students         map[int]map[int]bool
	parents          map[Kind]map[int]int
	homeworkCreators map[int]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		courses:          map[int]bool{},
		teachers:         map[int]map[int]bool{},
		students:         map[int]map[int]bool{},
		parents:          map[Kind]map[int]int{},
		homeworkCreators: map[int]int{},
	}
}

func (s *fakeStore) addCourse(id int) {
	s.courses[id] = true
	s.teachers[id] = map[int]bool{}
	s.students[id] = map[int]bool{}
}

func (s *fakeStore) link(kind Kind, id, parentID int) {
	if s.parents[kind] == nil {
		s.parents[kind] = map[int]int{}
	}
	s.parents[kind][id] = parentID
}

func (s *fakeStore) CourseExists(_ context.Context, courseID int) (bool, error) {
	return s.courses[courseID], nil
}

func (s *fakeStore) ParentID(_ context.Context, kind Kind, id int) (int, error) {
	parentID, ok := s.parents[kind][id]
	if !ok {
		return 0, ErrNotFound
	}
	return parentID, nil
}

func (s *fakeStore) IsCourseTeacher(_ context.Context, courseID, userID int) (bool, error) {
	return s.teachers[courseID][userID], nil
}

func (s *fakeStore) IsCourseStudent(_ context.Context, courseID, userID int) (bool, error) {
	return s.students[courseID][userID], nil
}

func (s *fakeStore) HomeworkCreatorID(_ context.Context, homeworkID int) (int, error) {
	creatorID, ok := s.homeworkCreators[homeworkID]
	if !ok {
		return 0, ErrNotFound
	}
	return creatorID, nil
}

// Shared fixture ids. One course with a full chain below it:
// course 1 → lecture 10 → hometask 20 → homework 30 (by student 3)
// → mark 40 → comment 50. A second submission 31 by student 4.
const (
	courseID   = 1
	lectureID  = 10
	hometaskID = 20
	homeworkID = 30
	homework2  = 31
	markID     = 40
	commentID  = 50
)

var (
	teacher  = &model.User{ID: 2, RegistrationRole: model.RoleTeacher}
	student  = &model.User{ID: 3, RegistrationRole: model.RoleStudent}
	student2 = &model.User{ID: 4, RegistrationRole: model.RoleStudent}
	outsider = &model.User{ID: 5, RegistrationRole: model.RoleStudent}
)

func classroomFixture() *fakeStore {
	s := newFakeStore()
	s.addCourse(courseID)
	s.teachers[courseID][teacher.ID] = true
	s.students[courseID][student.ID] = true
	s.students[courseID][student2.ID] = true

	s.link(KindLecture, lectureID, courseID)
	s.link(KindHometask, hometaskID, lectureID)
	s.link(KindCompletedHomework, homeworkID, hometaskID)
	s.link(KindCompletedHomework, homework2, hometaskID)
	s.link(KindMark, markID, homeworkID)
	s.link(KindComment, commentID, markID)
	s.homeworkCreators[homeworkID] = student.ID
	s.homeworkCreators[homework2] = student2.ID
	return s
}

func TestClassifyTeacherPrecedence(t *testing.T) {
	s := classroomFixture()
	e := NewEngine(s)
	ctx := context.Background()

	role, err := e.Classify(ctx, courseID, teacher.ID)
	require.NoError(t, err)
	require.Equal(t, RoleTeacher, role)

	role, err = e.Classify(ctx, courseID, student.ID)
	require.NoError(t, err)
	require.Equal(t, RoleStudent, role)

	role, err = e.Classify(ctx, courseID, outsider.ID)
	require.NoError(t, err)
	require.Equal(t, RoleUnrelated, role)

	// A user present in both sets classifies as teacher.
	s.students[courseID][teacher.ID] = true
	role, err = e.Classify(ctx, courseID, teacher.ID)
	require.NoError(t, err)
	require.Equal(t, RoleTeacher, role)
}

func TestAuthorizeCourseCollection(t *testing.T) {
	e := NewEngine(classroomFixture())
	ctx := context.Background()
	collection := Ref{Kind: KindCourse}

	// Any authenticated user may list courses.
	require.NoError(t, e.Authorize(ctx, student, ActionRead, KindCourse, collection))
	require.NoError(t, e.Authorize(ctx, outsider, ActionRead, KindCourse, collection))

	// Only teacher-registered users may create one, regardless of any
	// course membership.
	require.NoError(t, e.Authorize(ctx, teacher, ActionCreate, KindCourse, collection))
	require.ErrorIs(t, e.Authorize(ctx, student, ActionCreate, KindCourse, collection), ErrDenied)

	// Anonymous requests are denied outright.
	require.ErrorIs(t, e.Authorize(ctx, nil, ActionRead, KindCourse, collection), ErrDenied)
}

func TestAuthorizeCourseScopedResources(t *testing.T) {
	e := NewEngine(classroomFixture())
	ctx := context.Background()

	cases := []struct {
		kind Kind
		ref  Ref
	}{
		{KindCourse, Ref{KindCourse, courseID}},
		{KindLecture, Ref{KindLecture, lectureID}},
		{KindHometask, Ref{KindHometask, hometaskID}},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			require.NoError(t, e.Authorize(ctx, teacher, ActionRead, tc.kind, tc.ref))
			require.NoError(t, e.Authorize(ctx, student, ActionRead, tc.kind, tc.ref))
			require.ErrorIs(t, e.Authorize(ctx, outsider, ActionRead, tc.kind, tc.ref), ErrDenied)

			require.NoError(t, e.Authorize(ctx, teacher, ActionUpdate, tc.kind, tc.ref))
			require.ErrorIs(t, e.Authorize(ctx, student, ActionUpdate, tc.kind, tc.ref), ErrDenied)
			require.ErrorIs(t, e.Authorize(ctx, outsider, ActionDelete, tc.kind, tc.ref), ErrDenied)
		})
	}
}

func TestAuthorizeHomeworkSubmission(t *testing.T) {
	e := NewEngine(classroomFixture())
	ctx := context.Background()
	taskRef := Ref{KindHometask, hometaskID}
	hwRef := Ref{KindCompletedHomework, homeworkID}

	// Submission is student-only; teachers grade, they do not submit.
	require.NoError(t, e.Authorize(ctx, student, ActionCreate, KindCompletedHomework, taskRef))
	require.ErrorIs(t, e.Authorize(ctx, teacher, ActionCreate, KindCompletedHomework, taskRef), ErrDenied)
	require.ErrorIs(t, e.Authorize(ctx, outsider, ActionCreate, KindCompletedHomework, taskRef), ErrDenied)

	// Detail reads are open to every course member.
	require.NoError(t, e.Authorize(ctx, teacher, ActionRead, KindCompletedHomework, hwRef))
	require.NoError(t, e.Authorize(ctx, student2, ActionRead, KindCompletedHomework, hwRef))
	require.ErrorIs(t, e.Authorize(ctx, outsider, ActionRead, KindCompletedHomework, hwRef), ErrDenied)
}

func TestAuthorizeMark(t *testing.T) {
	e := NewEngine(classroomFixture())
	ctx := context.Background()
	markRef := Ref{KindMark, markID}
	gradeRef := Ref{KindCompletedHomework, homeworkID}

	// Grading is reserved to course teachers, not only the grader.
	require.NoError(t, e.Authorize(ctx, teacher, ActionCreate, KindMark, gradeRef))
	require.ErrorIs(t, e.Authorize(ctx, student, ActionCreate, KindMark, gradeRef), ErrDenied)

	// The submitting student may read their mark; an enrolled classmate
	// who did not create the submission may not.
	require.NoError(t, e.Authorize(ctx, teacher, ActionRead, KindMark, markRef))
	require.NoError(t, e.Authorize(ctx, student, ActionRead, KindMark, markRef))
	require.ErrorIs(t, e.Authorize(ctx, student2, ActionRead, KindMark, markRef), ErrDenied)
	require.ErrorIs(t, e.Authorize(ctx, outsider, ActionRead, KindMark, markRef), ErrDenied)

	require.NoError(t, e.Authorize(ctx, teacher, ActionUpdate, KindMark, markRef))
	require.ErrorIs(t, e.Authorize(ctx, student, ActionUpdate, KindMark, markRef), ErrDenied)
}

func TestAuthorizeComment(t *testing.T) {
	e := NewEngine(classroomFixture())
	ctx := context.Background()
	threadRef := Ref{KindMark, markID}
	commentRef := Ref{KindComment, commentID}

	// Teacher and the submitting student may read and append.
	require.NoError(t, e.Authorize(ctx, teacher, ActionCreate, KindComment, threadRef))
	require.NoError(t, e.Authorize(ctx, student, ActionCreate, KindComment, threadRef))
	require.ErrorIs(t, e.Authorize(ctx, student2, ActionCreate, KindComment, threadRef), ErrDenied)

	require.NoError(t, e.Authorize(ctx, teacher, ActionRead, KindComment, commentRef))
	require.NoError(t, e.Authorize(ctx, student, ActionRead, KindComment, commentRef))
	require.ErrorIs(t, e.Authorize(ctx, student2, ActionRead, KindComment, commentRef), ErrDenied)
}

func TestCommentMutationRejectedForEveryRole(t *testing.T) {
	e := NewEngine(classroomFixture())
	ctx := context.Background()
	commentRef := Ref{KindComment, commentID}

	// Rejected before any role check: even the comment's own creator
	// and the course teacher get method-not-allowed, and no hierarchy
	// lookup happens (an unresolvable ref still yields 405).
	for _, u := range []*model.User{teacher, student, student2, outsider} {
		require.ErrorIs(t, e.Authorize(ctx, u, ActionUpdate, KindComment, commentRef), ErrMethodNotAllowed)
		require.ErrorIs(t, e.Authorize(ctx, u, ActionDelete, KindComment, commentRef), ErrMethodNotAllowed)
	}
	require.ErrorIs(t,
		e.Authorize(ctx, teacher, ActionDelete, KindComment, Ref{KindComment, 99999}),
		ErrMethodNotAllowed)
}

func TestBrokenChainIsNotFoundNotDenied(t *testing.T) {
	s := classroomFixture()
	e := NewEngine(s)
	ctx := context.Background()

	// Nonexistent leaf.
	err := e.Authorize(ctx, teacher, ActionRead, KindMark, Ref{KindMark, 404})
	require.ErrorIs(t, err, ErrNotFound)
	require.NotErrorIs(t, err, ErrDenied)

	// Dangling middle link: the hometask's lecture is gone.
	delete(s.parents[KindHometask], hometaskID)
	err = e.Authorize(ctx, teacher, ActionRead, KindCompletedHomework, Ref{KindCompletedHomework, homeworkID})
	require.ErrorIs(t, err, ErrNotFound)

	// Course id that resolves to nothing.
	err = e.Authorize(ctx, teacher, ActionRead, KindCourse, Ref{KindCourse, 404})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUnrelatedUserDeniedOnEveryDescendant(t *testing.T) {
	e := NewEngine(classroomFixture())
	ctx := context.Background()

	refs := []Ref{
		{KindCourse, courseID},
		{KindLecture, lectureID},
		{KindHometask, hometaskID},
		{KindCompletedHomework, homeworkID},
		{KindMark, markID},
		{KindComment, commentID},
	}
	for _, ref := range refs {
		require.ErrorIs(t, e.Authorize(ctx, outsider, ActionRead, ref.Kind, ref), ErrDenied,
			"read %s", ref.Kind)
	}
}
