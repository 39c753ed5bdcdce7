package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-cms-backend/internal/models"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(testDB(t), testLogger(), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register(ctx(), "owner@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)

	token, logged, err := svc.Login(ctx(), "owner@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(ctx(), "owner@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx(), "owner@example.com", "otherpassword")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(ctx(), "owner@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx(), "owner@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmailSameFailure(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login(ctx(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyTokenRoundTrip(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register(ctx(), "owner@example.com", "password123")
	require.NoError(t, err)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	ident, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, ident.ID)
	assert.Equal(t, "owner@example.com", ident.Email)
	assert.Equal(t, models.RoleAdmin, ident.Role)
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register(ctx(), "owner@example.com", "password123")
	require.NoError(t, err)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.VerifyToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	svc := newAuthService(t)
	other := NewAuthService(testDB(t), testLogger(), "different-secret", time.Hour)

	user, err := svc.Register(ctx(), "owner@example.com", "password123")
	require.NoError(t, err)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	svc := NewAuthService(testDB(t), testLogger(), "test-secret", -time.Hour)

	user, err := svc.Register(ctx(), "owner@example.com", "password123")
	require.NoError(t, err)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService(t)

	for _, token := range []string{"", "not-a-token", strings.Repeat("a.", 3)} {
		_, err := svc.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestGetUserByIDUnknown(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.GetUserByID(ctx(), uuid.New())
	assert.ErrorIs(t, err, ErrUnauthorized)
}
