package hashes

import "golang.org/x/crypto/sha3"

// SHA3_256 returns the SHA3-256 digest of data.
func SHA3_256(data []byte) [32]byte {
	return sha3.Sum256(data)
}

// Shake256 produces an outLen-byte extendable-output digest of data
// using SHAKE-256.
func Shake256(data []byte, outLen int) []byte {
	out := make([]byte, outLen)
	sha3.ShakeSum256(out, data)
	return out
}
