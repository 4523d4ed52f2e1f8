package argon2

// finalize implements component C8: XOR-accumulate the last block of
// every lane's column, then run H' over the accumulator to produce the
// dkLen-byte tag. The accumulator is zeroed before returning per the
// zeroization invariant in the data model.
func finalize(mem []block, laneLen, parallelism, keyLen uint32) []byte {
	var acc block
	acc = mem[laneLen-1]
	for lane := uint32(1); lane < parallelism; lane++ {
		acc.xorInto(&mem[lane*laneLen+laneLen-1])
	}

	var accBytes [blockSize]byte
	acc.toBytes(accBytes[:])

	out := make([]byte, keyLen)
	hPrime(out, accBytes[:])

	acc.zero()
	for i := range accBytes {
		accBytes[i] = 0
	}
	return out
}
