package authz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edukit/classroom-backend/internal/model"
)

func TestFilterHomework(t *testing.T) {
	records := []model.CompletedHomework{
		{ID: 30, CreatorID: 3},
		{ID: 31, CreatorID: 4},
		{ID: 32, CreatorID: 3},
	}

	t.Run("teacher sees all", func(t *testing.T) {
		got := FilterHomework(RoleTeacher, 2, records)
		require.Len(t, got, 3)
	})

	t.Run("student sees only own", func(t *testing.T) {
		got := FilterHomework(RoleStudent, 3, records)
		require.Len(t, got, 2)
		for _, r := range got {
			require.Equal(t, 3, r.CreatorID)
		}

		other := FilterHomework(RoleStudent, 4, records)
		require.Len(t, other, 1)
		require.Equal(t, 31, other[0].ID)
	})

	t.Run("student with no submissions sees empty list", func(t *testing.T) {
		got := FilterHomework(RoleStudent, 9, records)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("unrelated sees nothing", func(t *testing.T) {
		require.Nil(t, FilterHomework(RoleUnrelated, 5, records))
	})
}
