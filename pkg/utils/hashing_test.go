package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NoError(t, ComparePasswords(hash, "secret123"))
	assert.Error(t, ComparePasswords(hash, "nope"))
}

func TestGenerateOtpCode(t *testing.T) {
	code, err := GenerateOtpCode(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}

	_, err = GenerateOtpCode(0)
	assert.Error(t, err)
}

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken(16)
	require.NoError(t, err)
	b, err := GenerateSecureToken(16)
	require.NoError(t, err)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestRemaining(t *testing.T) {
	now := mustTime("2024-01-01T00:00:00Z")
	assert.Equal(t, "2d 5h", Remaining(now, mustTime("2024-01-03T05:30:00Z")))
	assert.Equal(t, "0d 0h", Remaining(now, mustTime("2023-12-31T00:00:00Z")))
}
