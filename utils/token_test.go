package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenBlacklistKey(t *testing.T) {
	key := TokenBlacklistKey("some.jwt.token")

	assert.True(t, strings.HasPrefix(key, "token:blacklist:"))
	// The raw token never appears in the key.
	assert.NotContains(t, key, "some.jwt.token")
	// Same token, same key; different token, different key.
	assert.Equal(t, key, TokenBlacklistKey("some.jwt.token"))
	assert.NotEqual(t, key, TokenBlacklistKey("other.jwt.token"))
}
