// Package hashes wraps the other hash/KDF primitives the repository
// ships alongside the Argon2 core (SHA-2/3, BLAKE2, HMAC, HKDF, PBKDF2
// and scrypt), each a thin pass-through to its real library
// implementation rather than a reimplementation.
package hashes

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Blake2b256 returns the 32-byte BLAKE2b digest of data.
func Blake2b256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// NewBlake2b returns an incremental BLAKE2b hasher with the given output
// size (1-64 bytes) and optional key, for callers that need streaming
// input or a MAC rather than a one-shot digest.
func NewBlake2b(size int, key []byte) (hash.Hash, error) {
	return blake2b.New(size, key)
}
