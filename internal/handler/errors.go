package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/edukit/classroom-backend/internal/authz"
	"github.com/edukit/classroom-backend/internal/response"
)

// respondError maps core and storage errors onto HTTP responses:
// denial → 403, broken hierarchy or missing row → 404, forbidden
// protocol operation → 405, uniqueness violation → 409. The deny vs
// not-found distinction is preserved end to end; the engine never
// conflates them and neither does this mapping.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authz.ErrMethodNotAllowed):
		response.Fail(c, http.StatusMethodNotAllowed, response.ErrMethodNotAllowed)
	case errors.Is(err, authz.ErrNotFound), errors.Is(err, pgx.ErrNoRows):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, authz.ErrDenied):
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				response.Fail(c, http.StatusConflict, response.ErrConflict)
				return
			case "23503": // foreign_key_violation
				response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
				return
			}
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// pathID parses a positive integer path parameter. Responds 400 and
// returns false when the value is malformed.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}
