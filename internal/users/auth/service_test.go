// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora/sellora/internal/platform/apperr"
	"github.com/sellora/sellora/internal/platform/dberr"
	"github.com/sellora/sellora/internal/platform/sec"
	"github.com/sellora/sellora/internal/users/auth"
)

// # In-Memory Fakes

type fakeUserRepository struct {
	users map[string]*auth.User // keyed by ID
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*auth.User{}}
}

func (repo *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := repo.users[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (repo *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range repo.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	clone := *user
	repo.users[user.ID] = &clone
	return nil
}

func (repo *fakeUserRepository) UpdatePassword(_ context.Context, userID, newRecord string) error {
	user, ok := repo.users[userID]
	if !ok {
		return dberr.ErrNotFound
	}
	user.Password = newRecord
	return nil
}

func (repo *fakeUserRepository) TouchLogin(_ context.Context, userID string) error {
	user, ok := repo.users[userID]
	if !ok {
		return dberr.ErrNotFound
	}
	now := time.Now()
	user.LastLoginAt = &now
	return nil
}

type fakeSessionRepository struct {
	sessions map[string]*auth.Session // keyed by ID
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: map[string]*auth.Session{}}
}

func (repo *fakeSessionRepository) Create(_ context.Context, session *auth.Session) error {
	clone := *session
	repo.sessions[session.ID] = &clone
	return nil
}

func (repo *fakeSessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	for _, session := range repo.sessions {
		if session.TokenHash == tokenHash && !session.IsRevoked && session.ExpiresAt.After(time.Now()) {
			clone := *session
			return &clone, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeSessionRepository) Revoke(_ context.Context, sessionID string) error {
	session, ok := repo.sessions[sessionID]
	if !ok {
		return dberr.ErrNotFound
	}
	session.IsRevoked = true
	return nil
}

func (repo *fakeSessionRepository) RevokeAll(_ context.Context, userID string) error {
	for _, session := range repo.sessions {
		if session.UserID == userID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (repo *fakeSessionRepository) RevokeOthers(_ context.Context, userID, currentSessionID string) error {
	for _, session := range repo.sessions {
		if session.UserID == userID && session.ID != currentSessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (repo *fakeSessionRepository) DeleteExpired(_ context.Context) error {
	for id, session := range repo.sessions {
		if session.ExpiresAt.Before(time.Now()) {
			delete(repo.sessions, id)
		}
	}
	return nil
}

func (repo *fakeSessionRepository) activeCount(userID string) int {
	count := 0
	for _, session := range repo.sessions {
		if session.UserID == userID && !session.IsRevoked {
			count++
		}
	}
	return count
}

type fakeResetTokenRepository struct {
	tokens map[string]string // token -> userID
}

func newFakeResetTokenRepository() *fakeResetTokenRepository {
	return &fakeResetTokenRepository{tokens: map[string]string{}}
}

func (repo *fakeResetTokenRepository) Set(_ context.Context, token, userID string, _ time.Duration) error {
	repo.tokens[token] = userID
	return nil
}

func (repo *fakeResetTokenRepository) Get(_ context.Context, token string) (string, error) {
	userID, ok := repo.tokens[token]
	if !ok {
		return "", apperr.Unauthorized("Invalid or expired reset token")
	}
	return userID, nil
}

func (repo *fakeResetTokenRepository) Delete(_ context.Context, token string) error {
	delete(repo.tokens, token)
	return nil
}

type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "access-token-" + userID, nil
}

// # Harness

type authHarness struct {
	service  *auth.Service
	users    *fakeUserRepository
	sessions *fakeSessionRepository
	resets   *fakeResetTokenRepository
}

func newAuthHarness(t *testing.T) *authHarness {
	t.Helper()

	cipher, err := sec.NewCipher("unit-test-secret-keep-it-long-enough")
	require.NoError(t, err)

	users := newFakeUserRepository()
	sessions := newFakeSessionRepository()
	resets := newFakeResetTokenRepository()

	return &authHarness{
		service:  auth.NewService(users, sessions, resets, cipher, fakeTokenProvider{}, time.Hour),
		users:    users,
		sessions: sessions,
		resets:   resets,
	}
}

func (h *authHarness) register(t *testing.T, email, password string) *auth.User {
	t.Helper()
	user, err := h.service.Register(context.Background(), auth.RegisterInput{
		FullName: "Test Operator",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

// # Tests

func TestRegister(t *testing.T) {
	h := newAuthHarness(t)

	user := h.register(t, "op@sellora.app", "s3cret-pass")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, sec.RoleStaff, user.Role)
	assert.True(t, user.IsActive)
	// The stored record must be an opaque ciphertext, never the plaintext
	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.NotContains(t, user.Password, "s3cret-pass")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := newAuthHarness(t)
	h.register(t, "op@sellora.app", "s3cret-pass")

	_, err := h.service.Register(context.Background(), auth.RegisterInput{
		FullName: "Impostor",
		Email:    "op@sellora.app",
		Password: "another-pass",
	})

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.HTTPStatus)
}

func TestLogin(t *testing.T) {
	h := newAuthHarness(t)
	registered := h.register(t, "op@sellora.app", "s3cret-pass")

	session, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "op@sellora.app",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.True(t, session.RefreshTokenExpiresAt.After(time.Now()))
	assert.Equal(t, registered.ID, session.User.ID)

	// Side effects: a tracked session exists and the login time is stamped
	assert.Equal(t, 1, h.sessions.activeCount(registered.ID))
	assert.NotNil(t, h.users.users[registered.ID].LastLoginAt)
}

/*
TestLoginRejectionsAreIndistinguishable verifies that an unknown email, a
wrong password, and a corrupt stored credential record all produce the exact
same rejection, so a probing client cannot tell accounts apart.
*/
func TestLoginRejectionsAreIndistinguishable(t *testing.T) {
	h := newAuthHarness(t)
	h.register(t, "op@sellora.app", "s3cret-pass")

	// Corrupt the stored record of a second account
	corrupted := h.register(t, "corrupt@sellora.app", "whatever")
	h.users.users[corrupted.ID].Password = "not-a-valid-record"

	attempts := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown_email", "ghost@sellora.app", "s3cret-pass"},
		{"wrong_password", "op@sellora.app", "wrong-pass"},
		{"corrupt_stored_record", "corrupt@sellora.app", "whatever"},
	}

	for _, attempt := range attempts {
		t.Run(attempt.name, func(t *testing.T) {
			_, err := h.service.Login(context.Background(), auth.LoginInput{
				Email:    attempt.email,
				Password: attempt.password,
			})
			require.Error(t, err)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 401, appErr.HTTPStatus)
			assert.Equal(t, "Invalid login credentials", appErr.Message)
		})
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	h := newAuthHarness(t)
	registered := h.register(t, "op@sellora.app", "s3cret-pass")
	h.users.users[registered.ID].IsActive = false

	_, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "op@sellora.app",
		Password: "s3cret-pass",
	})

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Account is disabled", appErr.Message)
}

func TestLogoutIsIdempotent(t *testing.T) {
	h := newAuthHarness(t)
	registered := h.register(t, "op@sellora.app", "s3cret-pass")

	session, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "op@sellora.app",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	require.NoError(t, h.service.Logout(context.Background(), session.RefreshToken))
	assert.Equal(t, 0, h.sessions.activeCount(registered.ID))

	// Second logout with the same token silently succeeds
	require.NoError(t, h.service.Logout(context.Background(), session.RefreshToken))

	// Unknown tokens are also a no-op
	require.NoError(t, h.service.Logout(context.Background(), "never-issued"))
}

func TestRefreshSessionRotation(t *testing.T) {
	h := newAuthHarness(t)
	registered := h.register(t, "op@sellora.app", "s3cret-pass")

	session, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "op@sellora.app",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	rotated, err := h.service.RefreshSession(context.Background(), session.RefreshToken, "ua", "127.0.0.1")
	require.NoError(t, err)

	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)
	assert.Equal(t, 1, h.sessions.activeCount(registered.ID))

	// Replaying the rotated-out token must fail
	_, err = h.service.RefreshSession(context.Background(), session.RefreshToken, "ua", "127.0.0.1")
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.HTTPStatus)
}

func TestPasswordResetFlow(t *testing.T) {
	h := newAuthHarness(t)
	h.register(t, "op@sellora.app", "old-pass")

	// Establish a session that the reset must revoke
	_, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "op@sellora.app",
		Password: "old-pass",
	})
	require.NoError(t, err)

	token, err := h.service.RequestPasswordReset(context.Background(), "op@sellora.app")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, h.service.ResetPassword(context.Background(), token, "new-pass"))

	// Old password is dead, new one works, all sessions are revoked
	_, err = h.service.Login(context.Background(), auth.LoginInput{Email: "op@sellora.app", Password: "old-pass"})
	assert.Error(t, err)

	_, err = h.service.Login(context.Background(), auth.LoginInput{Email: "op@sellora.app", Password: "new-pass"})
	assert.NoError(t, err)

	// The used token is single-shot
	assert.Error(t, h.service.ResetPassword(context.Background(), token, "again"))
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	h := newAuthHarness(t)

	// Unknown emails yield no token and no error, preventing enumeration
	token, err := h.service.RequestPasswordReset(context.Background(), "ghost@sellora.app")
	assert.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, h.resets.tokens)
}

func TestChangePassword(t *testing.T) {
	h := newAuthHarness(t)
	registered := h.register(t, "op@sellora.app", "old-pass")

	current, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "op@sellora.app",
		Password: "old-pass",
	})
	require.NoError(t, err)

	other, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "op@sellora.app",
		Password: "old-pass",
	})
	require.NoError(t, err)

	// Wrong current password is rejected up front
	err = h.service.ChangePassword(context.Background(), registered.ID, "wrong", "new-pass", current.RefreshToken)
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.HTTPStatus)

	// Successful change keeps the current session and revokes the other one
	require.NoError(t, h.service.ChangePassword(context.Background(), registered.ID, "old-pass", "new-pass", current.RefreshToken))
	assert.Equal(t, 1, h.sessions.activeCount(registered.ID))

	_, err = h.service.RefreshSession(context.Background(), other.RefreshToken, "ua", "127.0.0.1")
	assert.Error(t, err)

	_, err = h.service.Login(context.Background(), auth.LoginInput{Email: "op@sellora.app", Password: "new-pass"})
	assert.NoError(t, err)
}
