package hashes

import "golang.org/x/crypto/scrypt"

// Scrypt derives an outLen-byte key from password and salt using the
// scrypt memory-hard KDF with CPU/memory cost N, block size r and
// parallelism p.
func Scrypt(password, salt []byte, n, r, p, outLen int) ([]byte, error) {
	return scrypt.Key(password, salt, n, r, p, outLen)
}
