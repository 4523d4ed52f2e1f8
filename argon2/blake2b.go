package argon2

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// blake2bSum runs one-shot BLAKE2b over in with output length len(out).
// hPrime and initialHash do not go through it; they use
// golang.org/x/crypto/blake2b directly.
func blake2bSum(out, in []byte) {
	h, err := blake2b.New(len(out), nil)
	if err != nil {
		panic("argon2: " + err.Error())
	}
	h.Write(in)
	h.Sum(out[:0])
}

// hPrime is Argon2's variable-length hash, RFC 9106 section 3.4: produces
// exactly len(out) bytes from in, built out of chained 64-byte BLAKE2b
// digests once the request exceeds BLAKE2b's native output size.
func hPrime(out, in []byte) {
	outLen := len(out)

	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(outLen))

	if outLen <= blake2b.Size {
		h, err := blake2b.New(outLen, nil)
		if err != nil {
			panic("argon2: " + err.Error())
		}
		h.Write(lenPrefix[:])
		h.Write(in)
		h.Sum(out[:0])
		return
	}

	var v [blake2b.Size]byte
	h, _ := blake2b.New512(nil)
	h.Write(lenPrefix[:])
	h.Write(in)
	h.Sum(v[:0])

	pos := copy(out, v[:32])
	for outLen-pos > blake2b.Size {
		h.Reset()
		h.Write(v[:])
		h.Sum(v[:0])
		pos += copy(out[pos:], v[:32])
	}

	last := outLen - pos
	h2, err := blake2b.New(last, nil)
	if err != nil {
		panic("argon2: " + err.Error())
	}
	h2.Write(v[:])
	tail := h2.Sum(nil)
	copy(out[pos:], tail)
}
