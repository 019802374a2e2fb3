package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GargManasvini/mini-healthcare-platform/internal/auth"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	// Per-call salt: two hashes of the same password differ.
	other, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)

	assert.True(t, auth.CheckPassword("s3cret-password", hash))
	assert.False(t, auth.CheckPassword("wrong-password", hash))
}

func TestCheckPasswordMalformedDigest(t *testing.T) {
	assert.False(t, auth.CheckPassword("anything", "not-a-bcrypt-digest"))
	assert.False(t, auth.CheckPassword("anything", ""))
}
