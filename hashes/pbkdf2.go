package hashes

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2SHA256 derives an outLen-byte key from password and salt using
// PBKDF2-HMAC-SHA256 with the given iteration count.
func PBKDF2SHA256(password, salt []byte, iterations, outLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, outLen, sha256.New)
}
