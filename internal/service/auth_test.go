package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() *AuthService {
	return NewAuthService(newFakeUserRepo(), "test-secret", false, time.Hour)
}

func TestRegister(t *testing.T) {
	svc := newAuthService()

	t.Run("valid registration", func(t *testing.T) {
		user, err := svc.Register("Jane Doe", "Jane@Example.com", "Sup3rSecret")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "jane@example.com", user.Email, "email is normalized")
		assert.NotEqual(t, "Sup3rSecret", user.PasswordHash)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register("Jane Clone", "jane@example.com", "Sup3rSecret")
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := svc.Register("John Doe", "john@example.com", "weak")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("bad email", func(t *testing.T) {
		_, err := svc.Register("John Doe", "not-an-email", "Sup3rSecret")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("bad name", func(t *testing.T) {
		_, err := svc.Register("J", "john@example.com", "Sup3rSecret")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestLogin(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Register("Jane Doe", "jane@example.com", "Sup3rSecret")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login("jane@example.com", "Sup3rSecret")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("jane@example.com", "WrongPass1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login("nobody@example.com", "Sup3rSecret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newAuthService()

	user, err := svc.Register("Jane Doe", "jane@example.com", "Sup3rSecret")
	require.NoError(t, err)

	token, err := svc.GenerateJWT(user)
	require.NoError(t, err)

	claims, err := svc.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims["user_id"])

	_, err = svc.VerifyJWT(token + "tampered")
	assert.Error(t, err)

	other := NewAuthService(newFakeUserRepo(), "other-secret", false, time.Hour)
	_, err = other.VerifyJWT(token)
	assert.Error(t, err, "token signed with a different secret is rejected")
}
