package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPasswordPlain(t *testing.T) {
	assert.True(t, CheckPassword("secret", "secret"))
	assert.False(t, CheckPassword("secret", "Secret"))
	assert.False(t, CheckPassword("secret", ""))
}

func TestCheckPasswordHashed(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, CheckPassword(hash, "secret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword(hash, hash), "the hash itself is not a valid password")
}
