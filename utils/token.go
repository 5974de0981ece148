package utils

import (
	"crypto/sha256"
	"fmt"
)

// TokenBlacklistKey is the redis key under which a revoked token is stored.
// The token is hashed so raw credentials never land in redis.
func TokenBlacklistKey(rawToken string) string {
	return fmt.Sprintf("token:blacklist:%x", sha256.Sum256([]byte(rawToken)))
}
