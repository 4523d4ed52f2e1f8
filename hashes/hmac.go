package hashes

import (
	"crypto/hmac"
	"crypto/sha256"
)

// HMACSHA256 computes HMAC-SHA256(key, data).
func HMACSHA256(key, data []byte) []byte {
	m := hmac.New(sha256.New, key)
	m.Write(data)
	return m.Sum(nil)
}

// VerifyHMACSHA256 reports whether mac is the correct HMAC-SHA256 for
// key and data, compared in constant time.
func VerifyHMACSHA256(key, data, mac []byte) bool {
	return hmac.Equal(HMACSHA256(key, data), mac)
}
