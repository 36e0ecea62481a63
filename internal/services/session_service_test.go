package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vivek9939947227/Asprints-Aada/internal/auth"
	"github.com/Vivek9939947227/Asprints-Aada/internal/config"
	"github.com/Vivek9939947227/Asprints-Aada/internal/models"
	"github.com/Vivek9939947227/Asprints-Aada/internal/store"
)

func newSessionTestConfig() *config.Config {
	return &config.Config{
		JwtSecret:     "test-secret",
		JwtTTL:        time.Hour,
		PlatformEmail: "owner@asprintsaada.example.com",
	}
}

func TestSessionService_LoginIssuesValidToken(t *testing.T) {
	cfg := newSessionTestConfig()
	svc := NewSessionService(store.NewMemory(), cfg)

	user, token, err := svc.Login(context.Background(), "Ravi", "Ravi@Example.com", models.RoleOwner)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ravi@example.com", user.Email)
	assert.Equal(t, models.RoleOwner, user.Role)

	claims, err := auth.ValidateJWT(token, cfg.JwtSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleOwner, claims.Role)
}

func TestSessionService_AdminGrantedOnlyForPlatformEmail(t *testing.T) {
	cfg := newSessionTestConfig()
	svc := NewSessionService(store.NewMemory(), cfg)

	user, _, err := svc.Login(context.Background(), "Admin", cfg.PlatformEmail, models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	// A stranger asking for the admin role gets demoted to a regular user
	user, _, err = svc.Login(context.Background(), "Mallory", "mallory@example.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestSessionService_LoginValidation(t *testing.T) {
	svc := NewSessionService(store.NewMemory(), newSessionTestConfig())

	_, _, err := svc.Login(context.Background(), "", "a@b.com", models.RoleUser)
	assert.Error(t, err)

	_, _, err = svc.Login(context.Background(), "Name", "   ", models.RoleUser)
	assert.Error(t, err)
}

func TestSessionService_CurrentAndLogout(t *testing.T) {
	svc := NewSessionService(store.NewMemory(), newSessionTestConfig())
	ctx := context.Background()

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	user, _, err := svc.Login(ctx, "Asha", "asha@example.com", models.RoleOwner)
	require.NoError(t, err)

	current, err = svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	require.NoError(t, svc.Logout(ctx))
	current, err = svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}
