package cache

import (
	"crypto/sha512"
	"encoding/hex"
)

// Digest returns the hex SHA-512 of content. Used as a change-detection
// fingerprint, not for security.
func Digest(content []byte) string {
	sum := sha512.Sum512(content)
	return hex.EncodeToString(sum[:])
}
