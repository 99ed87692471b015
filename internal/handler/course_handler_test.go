package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edukit/classroom-backend/internal/authz"
	"github.com/edukit/classroom-backend/internal/model"
	"github.com/edukit/classroom-backend/internal/response"
	"github.com/edukit/classroom-backend/internal/service"
)

func TestCreateCourseRequiresTeacherRegistration(t *testing.T) {
	engine := authz.NewEngine(classroomStore{})
	// The repository is never reached: the collection rule rejects
	// before any persistence call.
	h := NewCourseHandler(service.NewCourseService(nil, engine))

	studentClaims := &service.Claims{UserID: 3, Username: "student", RegistrationRole: model.RoleStudent}
	c, w := postJSON(t, `{"title":"Algebra","description":"intro"}`, nil, studentClaims)
	h.Create(c)

	require.Equal(t, http.StatusForbidden, w.Code)
	envelope := decodeEnvelope(t, w)
	require.NotNil(t, envelope.Error)
	require.Equal(t, response.ErrTeacherRoleOnly, envelope.Error.Code)
}

func TestPageParams(t *testing.T) {
	cases := []struct {
		query   string
		page    int
		perPage int
	}{
		{"", 1, 20},
		{"page=3&per_page=50", 3, 50},
		{"page=0&per_page=0", 1, 20},
		{"page=-2&per_page=1000", 1, 20},
		{"page=x&per_page=y", 1, 20},
	}

	for _, tc := range cases {
		c, _ := testContext(t)
		c.Request.URL.RawQuery = tc.query
		page, perPage := pageParams(c)
		require.Equal(t, tc.page, page, "query %q", tc.query)
		require.Equal(t, tc.perPage, perPage, "query %q", tc.query)
	}
}
