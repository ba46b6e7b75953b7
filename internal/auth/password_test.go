package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrongpassword", hash))
	assert.False(t, CheckPasswordHash("password123", "not-a-hash"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("password123"))
	assert.NoError(t, ValidatePassword("abcdefgh"))

	// Короткие
	assert.Error(t, ValidatePassword("short1"))
	assert.Error(t, ValidatePassword(""))

	// Только цифры
	assert.Error(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword("123456789012"))
}

func TestGenerateTokenKey(t *testing.T) {
	key1, err := GenerateTokenKey()
	require.NoError(t, err)
	assert.Len(t, key1, 40)

	key2, err := GenerateTokenKey()
	require.NoError(t, err)
	assert.NotEqual(t, key1, key2)
}
