package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("demo123")
	require.NoError(t, err)
	assert.NotEqual(t, "demo123", hash)

	_, err = HashPassword("")
	assert.Error(t, err)

	assert.NoError(t, CheckPasswordHash("demo123", hash))
	assert.Error(t, CheckPasswordHash("wrong", hash))
	assert.Error(t, CheckPasswordHash("demo123", "not-a-hash"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
