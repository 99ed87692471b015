package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCourseFromEveryKind(t *testing.T) {
	r := NewResolver(classroomFixture())
	ctx := context.Background()

	cases := []struct {
		kind Kind
		id   int
	}{
		{KindCourse, courseID},
		{KindLecture, lectureID},
		{KindHometask, hometaskID},
		{KindCompletedHomework, homeworkID},
		{KindMark, markID},
		{KindComment, commentID},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			lin, err := r.ResolveCourse(ctx, tc.kind, tc.id)
			require.NoError(t, err)
			require.Equal(t, courseID, lin.CourseID)
		})
	}
}

func TestResolveCourseCapturesHomework(t *testing.T) {
	r := NewResolver(classroomFixture())
	ctx := context.Background()

	// Walks starting at or below the completed homework record its id.
	for _, tc := range []struct {
		kind Kind
		id   int
	}{
		{KindCompletedHomework, homeworkID},
		{KindMark, markID},
		{KindComment, commentID},
	} {
		lin, err := r.ResolveCourse(ctx, tc.kind, tc.id)
		require.NoError(t, err)
		require.Equal(t, homeworkID, lin.HomeworkID, "from %s", tc.kind)
	}

	// Walks starting above it do not.
	lin, err := r.ResolveCourse(ctx, KindHometask, hometaskID)
	require.NoError(t, err)
	require.Zero(t, lin.HomeworkID)
}

func TestResolveCourseBrokenLinks(t *testing.T) {
	ctx := context.Background()

	t.Run("missing leaf", func(t *testing.T) {
		r := NewResolver(classroomFixture())
		_, err := r.ResolveCourse(ctx, KindComment, 999)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("dangling middle link", func(t *testing.T) {
		s := classroomFixture()
		delete(s.parents[KindLecture], lectureID)
		r := NewResolver(s)
		_, err := r.ResolveCourse(ctx, KindComment, commentID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing course", func(t *testing.T) {
		s := classroomFixture()
		s.courses[courseID] = false
		r := NewResolver(s)
		_, err := r.ResolveCourse(ctx, KindLecture, lectureID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}
