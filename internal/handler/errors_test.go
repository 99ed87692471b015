package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/edukit/classroom-backend/internal/authz"
	"github.com/edukit/classroom-backend/internal/response"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   response.ErrCode
	}{
		{"comment mutation", authz.ErrMethodNotAllowed, http.StatusMethodNotAllowed, response.ErrMethodNotAllowed},
		{"broken chain", authz.ErrNotFound, http.StatusNotFound, response.ErrNotFound},
		{"wrapped broken chain", fmt.Errorf("resolve mark 4: %w", authz.ErrNotFound), http.StatusNotFound, response.ErrNotFound},
		{"missing row", pgx.ErrNoRows, http.StatusNotFound, response.ErrNotFound},
		{"denied", authz.ErrDenied, http.StatusForbidden, response.ErrForbidden},
		{"unique violation", &pgconn.PgError{Code: "23505"}, http.StatusConflict, response.ErrConflict},
		{"fk violation", &pgconn.PgError{Code: "23503"}, http.StatusConflict, response.ErrDependencyExists},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, response.ErrInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := testContext(t)
			respondError(c, tc.err)

			require.Equal(t, tc.status, w.Code)
			envelope := decodeEnvelope(t, w)
			require.NotNil(t, envelope.Error)
			require.Equal(t, tc.code, envelope.Error.Code)
		})
	}
}

func TestPathID(t *testing.T) {
	c, _ := testContext(t)
	c.Params = gin.Params{{Key: "course_id", Value: "12"}}
	id, ok := pathID(c, "course_id")
	require.True(t, ok)
	require.Equal(t, 12, id)

	for _, bad := range []string{"abc", "0", "-3", ""} {
		c, w := testContext(t)
		c.Params = gin.Params{{Key: "course_id", Value: bad}}
		_, ok := pathID(c, "course_id")
		require.False(t, ok, "value %q", bad)
		require.Equal(t, http.StatusBadRequest, w.Code)
	}
}
