package security

import (
	"testing"

	"Lumina/internal/api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	require.NoError(t, InitJWT(config.JWTConfig{
		Secret:      "unit-test-secret-do-not-use",
		Algorithm:   "HS256",
		ExpireHours: 1,
	}))
}

func TestInitJWT_EmptySecret(t *testing.T) {
	err := InitJWT(config.JWTConfig{Secret: ""})
	assert.Error(t, err)
}

func TestInitJWT_UnsupportedAlgorithm(t *testing.T) {
	err := InitJWT(config.JWTConfig{Secret: "s", Algorithm: "RS256"})
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "Lumina", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestValidateToken_Tampered(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateToken(42)
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	initTestJWT(t)
	token, err := GenerateToken(7)
	require.NoError(t, err)

	require.NoError(t, InitJWT(config.JWTConfig{Secret: "another-secret", Algorithm: "HS256", ExpireHours: 1}))
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
