// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora/sellora/internal/platform/sec"
)

/*
TestTokenService_Roundtrip verifies that a generated token carries the full
payload {userId, email, role} back through verification.
*/
func TestTokenService_Roundtrip(t *testing.T) {
	service, err := sec.NewTokenService("signing-secret", "sellora.test")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("user-1", "jo@sellora.app", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jo@sellora.app", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "sellora.test", claims.Issuer)
}

/*
TestTokenService_WrongSecret verifies a token signed with a different secret
is rejected with ErrInvalidToken.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	signer, err := sec.NewTokenService("secret-a", "sellora.test")
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("secret-b", "sellora.test")
	require.NoError(t, err)

	token, err := signer.GenerateAccessToken("user-1", "jo@sellora.app", "staff", time.Hour)
	require.NoError(t, err)

	claims, err := verifier.VerifyToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
	assert.Nil(t, claims)
}

/*
TestTokenService_Expired verifies an expired token is rejected.
*/
func TestTokenService_Expired(t *testing.T) {
	service, err := sec.NewTokenService("signing-secret", "sellora.test")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("user-1", "jo@sellora.app", "staff", -time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
	assert.Nil(t, claims)
}

/*
TestTokenService_Malformed verifies structurally invalid tokens are rejected.
*/
func TestTokenService_Malformed(t *testing.T) {
	service, err := sec.NewTokenService("signing-secret", "sellora.test")
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		claims, err := service.VerifyToken(token)
		require.Error(t, err)
		assert.ErrorIs(t, err, sec.ErrInvalidToken)
		assert.Nil(t, claims)
	}
}

/*
TestNewTokenService_EmptySecret verifies construction fails without a secret.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "sellora.test")
	assert.Error(t, err)
}

/*
TestHashToken verifies deterministic hashing of refresh tokens.
*/
func TestHashToken(t *testing.T) {
	first := sec.HashToken("refresh-token")
	second := sec.HashToken("refresh-token")
	other := sec.HashToken("different")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, first, 64) // sha256 hex
}

/*
TestGenerateSecureToken verifies token length and uniqueness.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	assert.Len(t, first, 64) // 32 bytes hex encoded
	assert.NotEqual(t, first, second)
}
