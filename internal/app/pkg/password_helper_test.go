package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, ComparePassword("secret123", hash))
	assert.False(t, ComparePassword("secret124", hash))
}

func TestComparePasswordMissingInput(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.False(t, ComparePassword("", hash))
	assert.False(t, ComparePassword("secret123", ""))
	assert.False(t, ComparePassword("", ""))
	assert.False(t, ComparePassword("secret123", "not-a-bcrypt-hash"))
}
