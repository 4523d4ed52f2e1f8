package argon2

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

const h0Size = blake2b.Size + 8 // 64-byte digest plus an 8-byte (blockIdx, lane) suffix

// initialHash computes H0 (RFC 9106 section 3.2) and reserves 8 trailing
// bytes for the per-lane (block-in-lane index, lane index) suffix used
// when deriving each lane's first two blocks via H'.
func initialHash(password, salt, secret, ad []byte, o *normalizedOptions, variant Variant) *[h0Size]byte {
	var h0 [h0Size]byte

	h, _ := blake2b.New512(nil)

	var u32 [4]byte
	writeU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(u32[:], v)
		h.Write(u32[:])
	}
	writeField := func(b []byte) {
		writeU32(uint32(len(b)))
		h.Write(b)
	}

	writeU32(o.parallelism)
	writeU32(o.keyLen)
	writeU32(o.memory)
	writeU32(o.time)
	writeU32(uint32(o.version))
	writeU32(uint32(variant))
	writeField(password)
	writeField(salt)
	writeField(secret)
	writeField(ad)

	h.Sum(h0[:0])
	return &h0
}

// seedLanes derives the first two blocks of every lane from H0, per
// RFC 9106 section 3.3: B[l][0] = H'(H0 || LE32(0) || LE32(l), 1024) and
// B[l][1] = H'(H0 || LE32(1) || LE32(l), 1024).
func seedLanes(mem []block, h0 *[h0Size]byte, laneLen, parallelism uint32) {
	var buf [blockSize]byte
	for lane := uint32(0); lane < parallelism; lane++ {
		binary.LittleEndian.PutUint32(h0[blake2b.Size:], 0)
		binary.LittleEndian.PutUint32(h0[blake2b.Size+4:], lane)
		hPrime(buf[:], h0[:])
		mem[lane*laneLen+0].fromBytes(buf[:])

		binary.LittleEndian.PutUint32(h0[blake2b.Size:], 1)
		hPrime(buf[:], h0[:])
		mem[lane*laneLen+1].fromBytes(buf[:])
	}
}
