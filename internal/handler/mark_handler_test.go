package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/edukit/classroom-backend/internal/authz"
	"github.com/edukit/classroom-backend/internal/middleware"
	"github.com/edukit/classroom-backend/internal/model"
	"github.com/edukit/classroom-backend/internal/response"
	"github.com/edukit/classroom-backend/internal/service"
)

// classroomStore is an in-memory authz.Store with one course (id 1)
// and the chain lecture 10 → hometask 20 → homework 30, submitted by
// user 3 and taught by user 2.
type classroomStore struct{}

func (classroomStore) CourseExists(_ context.Context, courseID int) (bool, error) {
	return courseID == 1, nil
}

func (classroomStore) ParentID(_ context.Context, kind authz.Kind, id int) (int, error) {
	switch {
	case kind == authz.KindLecture && id == 10:
		return 1, nil
	case kind == authz.KindHometask && id == 20:
		return 10, nil
	case kind == authz.KindCompletedHomework && id == 30:
		return 20, nil
	case kind == authz.KindMark && id == 40:
		return 30, nil
	}
	return 0, authz.ErrNotFound
}

func (classroomStore) IsCourseTeacher(_ context.Context, courseID, userID int) (bool, error) {
	return courseID == 1 && userID == 2, nil
}

func (classroomStore) IsCourseStudent(_ context.Context, courseID, userID int) (bool, error) {
	return courseID == 1 && userID == 3, nil
}

func (classroomStore) HomeworkCreatorID(_ context.Context, homeworkID int) (int, error) {
	if homeworkID == 30 {
		return 3, nil
	}
	return 0, authz.ErrNotFound
}

// uniqueMarkStore accepts the first mark and answers every further
// insert with the unique violation the database raises for a second
// mark on the same submission.
type uniqueMarkStore struct {
	created int
}

func (s *uniqueMarkStore) Create(_ context.Context, m *model.Mark) error {
	s.created++
	if s.created > 1 {
		return &pgconn.PgError{Code: "23505", ConstraintName: "marks_completed_homework_id_key"}
	}
	m.ID = 40
	return nil
}

func (s *uniqueMarkStore) ListByHomework(context.Context, int) ([]model.Mark, error) {
	return nil, nil
}

func (s *uniqueMarkStore) GetByID(context.Context, int) (*model.Mark, error) {
	return nil, authz.ErrNotFound
}

func (s *uniqueMarkStore) Update(context.Context, *model.Mark) error { return nil }

func postJSON(t *testing.T, body string, params gin.Params, claims *service.Claims) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	c.Set(middleware.ContextKeyClaims, claims)
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

var teacherClaims = &service.Claims{UserID: 2, Username: "teacher", RegistrationRole: model.RoleTeacher}

func TestGradeTwiceSecondGetsConflict(t *testing.T) {
	engine := authz.NewEngine(classroomStore{})
	markService := service.NewMarkService(&uniqueMarkStore{}, nil, engine)
	h := NewMarkHandler(markService)

	params := gin.Params{{Key: "homework_id", Value: "30"}}

	c, w := postJSON(t, `{"mark": 90}`, params, teacherClaims)
	h.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	c, w = postJSON(t, `{"mark": 75}`, params, teacherClaims)
	h.Create(c)
	require.Equal(t, http.StatusConflict, w.Code)

	envelope := decodeEnvelope(t, w)
	require.NotNil(t, envelope.Error)
	require.Equal(t, response.ErrAlreadyMarked, envelope.Error.Code)
}

func TestGradeByStudentForbidden(t *testing.T) {
	engine := authz.NewEngine(classroomStore{})
	store := &uniqueMarkStore{}
	h := NewMarkHandler(service.NewMarkService(store, nil, engine))

	studentClaims := &service.Claims{UserID: 3, Username: "student", RegistrationRole: model.RoleStudent}
	c, w := postJSON(t, `{"mark": 90}`, gin.Params{{Key: "homework_id", Value: "30"}}, studentClaims)
	h.Create(c)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Zero(t, store.created)
}

func TestGradeMissingHomeworkNotFound(t *testing.T) {
	engine := authz.NewEngine(classroomStore{})
	h := NewMarkHandler(service.NewMarkService(&uniqueMarkStore{}, nil, engine))

	c, w := postJSON(t, `{"mark": 90}`, gin.Params{{Key: "homework_id", Value: "99"}}, teacherClaims)
	h.Create(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}
