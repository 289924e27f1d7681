package services_test

import (
	"context"
	"testing"
	"time"

	"charchat-backend/internal/config"
	"charchat-backend/internal/services"
	"charchat-backend/internal/store/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		TokenExpiration: time.Hour,
	}
}

func TestSignupAndLogin(t *testing.T) {
	svc := services.NewAuthService(memory.NewMemoryStore(), newTestConfig())
	ctx := context.Background()

	profile, err := svc.Signup(ctx, "alice@example.com", "s3cret-pass", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, "Alice", profile.FullName)
	assert.NotEmpty(t, profile.HashedPassword)
	assert.NotEqual(t, "s3cret-pass", profile.HashedPassword)

	token, got, err := svc.Login(ctx, "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, profile.UserID, got.UserID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := services.NewAuthService(memory.NewMemoryStore(), newTestConfig())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "bob@example.com", "password1", "")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Bob@Example.com", "password2", "")
	assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
}

func TestSignupDefaultsFullNameFromEmail(t *testing.T) {
	svc := services.NewAuthService(memory.NewMemoryStore(), newTestConfig())

	profile, err := svc.Signup(context.Background(), "carol@example.com", "password", "")
	require.NoError(t, err)
	assert.Equal(t, "carol", profile.FullName)
}

func TestSignupValidation(t *testing.T) {
	svc := services.NewAuthService(memory.NewMemoryStore(), newTestConfig())

	_, err := svc.Signup(context.Background(), "", "password", "")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.Signup(context.Background(), "dave@example.com", "", "")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := services.NewAuthService(memory.NewMemoryStore(), newTestConfig())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "erin@example.com", "right-password", "")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "erin@example.com", "wrong-password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := services.NewAuthService(memory.NewMemoryStore(), newTestConfig())

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLoginDemoSeedCredentials(t *testing.T) {
	svc := services.NewAuthService(memory.NewSeededStore(), newTestConfig())

	token, profile, err := svc.Login(context.Background(), memory.DemoEmail, memory.DemoPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, memory.DemoUserID, profile.UserID)
}
