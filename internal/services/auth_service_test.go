// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamart/storefront-api/internal/models"
	"github.com/novamart/storefront-api/internal/store"
	"github.com/novamart/storefront-api/internal/utils"
)

func testSessions(t *testing.T, dir string) *store.SessionStore {
	t.Helper()
	local, err := store.NewLocalStore(dir)
	require.NoError(t, err)
	sessions, err := store.NewSessionStore(local)
	require.NoError(t, err)
	return sessions
}

func TestLoginAcceptsAnyPassword(t *testing.T) {
	sessions := testSessions(t, t.TempDir())
	svc := NewAuthService(sessions, testConfig())

	resp, err := svc.Login(&LoginRequest{Email: "shopper@example.com", Password: "whatever"})
	require.NoError(t, err)

	assert.Equal(t, "shopper@example.com", resp.User.Email)
	assert.Equal(t, "shopper", resp.User.Name)
	assert.False(t, resp.User.IsAdmin)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
}

func TestLoginGrantsAdminByEmailOnly(t *testing.T) {
	sessions := testSessions(t, t.TempDir())
	svc := NewAuthService(sessions, testConfig())

	resp, err := svc.Login(&LoginRequest{Email: models.AdminEmail, Password: "anything"})
	require.NoError(t, err)
	assert.True(t, resp.User.IsAdmin)

	claims, err := utils.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestLoginRejectsInvalidInput(t *testing.T) {
	sessions := testSessions(t, t.TempDir())
	svc := NewAuthService(sessions, testConfig())

	_, err := svc.Login(&LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)

	_, err = svc.Login(&LoginRequest{Email: "shopper@example.com"})
	assert.Error(t, err)
}

func TestRegisterNeverGrantsAdmin(t *testing.T) {
	sessions := testSessions(t, t.TempDir())
	svc := NewAuthService(sessions, testConfig())

	resp, err := svc.Register(&RegisterRequest{
		Name:     "Admin Wannabe",
		Email:    models.AdminEmail,
		Password: "secret",
	})
	require.NoError(t, err)

	assert.False(t, resp.User.IsAdmin)
	assert.Equal(t, "Admin Wannabe", resp.User.Name)
}

func TestSessionSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	sessions := testSessions(t, dir)
	svc := NewAuthService(sessions, testConfig())
	resp, err := svc.Login(&LoginRequest{Email: "shopper@example.com", Password: "pw"})
	require.NoError(t, err)

	// A fresh store over the same directory restores the user without
	// re-validation.
	restored := testSessions(t, dir)
	user := restored.Current()
	require.NotNil(t, user)
	assert.Equal(t, resp.User.ID, user.ID)
	assert.Equal(t, "shopper@example.com", user.Email)
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	dir := t.TempDir()

	sessions := testSessions(t, dir)
	svc := NewAuthService(sessions, testConfig())
	_, err := svc.Login(&LoginRequest{Email: "shopper@example.com", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout())
	assert.Nil(t, svc.CurrentUser())

	restored := testSessions(t, dir)
	assert.Nil(t, restored.Current())
}
