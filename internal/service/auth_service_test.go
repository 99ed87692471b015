package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/edukit/classroom-backend/internal/config"
	"github.com/edukit/classroom-backend/internal/model"
)

func newTestAuthService(t *testing.T) (*AuthService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: 4,
	}
	return NewAuthService(cfg, rdb), mr
}

func testUser() *model.User {
	return &model.User{
		ID:               7,
		Username:         "nikolai",
		RegistrationRole: model.RoleTeacher,
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)

	hash, err := svc.HashPassword("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", hash)

	require.NoError(t, svc.CheckPassword(hash, "correct horse"))
	require.ErrorIs(t, svc.CheckPassword(hash, "wrong horse"), ErrInvalidCredentials)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()
	user := testUser()

	token, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.Username, claims.Username)
	require.Equal(t, model.RoleTeacher, claims.RegistrationRole)
	require.NotEmpty(t, claims.ID)

	require.NoError(t, svc.ValidateSession(ctx, user.ID, claims.ID))
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	require.Error(t, err)
}

func TestSecondLoginRejectedWhileSessionActive(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()
	user := testUser()

	_, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)

	_, err = svc.GenerateToken(ctx, user)
	require.ErrorIs(t, err, ErrSessionAlreadyActive)
}

func TestLogoutFreesSession(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()
	user := testUser()

	first, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, user.ID))

	// Old token is still a valid JWT but no longer a valid session.
	oldClaims, err := svc.ValidateToken(first)
	require.NoError(t, err)
	require.ErrorIs(t, svc.ValidateSession(ctx, user.ID, oldClaims.ID), ErrNoActiveSession)

	second, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)

	newClaims, err := svc.ValidateToken(second)
	require.NoError(t, err)
	require.NoError(t, svc.ValidateSession(ctx, user.ID, newClaims.ID))
}

func TestSessionExpiryAllowsRelogin(t *testing.T) {
	svc, mr := newTestAuthService(t)
	ctx := context.Background()
	user := testUser()

	_, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = svc.GenerateToken(ctx, user)
	require.NoError(t, err)
}

func TestStaleJTIIsInvalidated(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()
	user := testUser()

	_, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)

	require.ErrorIs(t, svc.ValidateSession(ctx, user.ID, "some-old-jti"), ErrSessionInvalidated)
}
