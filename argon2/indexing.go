package argon2

// addressGen holds the three-block state used for data-independent
// addressing: [address, input, zero] (RFC 9106 section 3.3.1). Running
// the block function twice over (zero, input) refreshes address with 128
// fresh (J1, J2) pairs, one per produced block in the next stretch of
// blockWords (=128) blocks.
type addressGen struct {
	address, input, zero block
}

// reset primes the input block's fixed counters for a (pass, lane,
// slice) triple. The running counter at input[6] is bumped by
// regenerate before each batch of 128 blocks.
func (a *addressGen) reset(pass, lane, slice, totalBlocks, iterations uint32, variant Variant) {
	a.address.zero()
	a.input.zero()
	a.zero.zero()
	a.input[0] = uint64(pass)
	a.input[1] = uint64(lane)
	a.input[2] = uint64(slice)
	a.input[3] = uint64(totalBlocks)
	a.input[4] = uint64(iterations)
	a.input[5] = uint64(variant)
	a.input[6] = 0
}

// regenerate produces a fresh address block: bump the counter, then run
// G(zero, input, address) followed by G(zero, address, address), both
// without XOR-accumulation.
func (a *addressGen) regenerate() {
	a.input[6]++
	compressBlock(&a.address, &a.zero, &a.input, false)
	compressBlock(&a.address, &a.zero, &a.address, false)
}

// wipe clears the address triple. Called once fillMemory is done with
// it, on every exit path, per the address-triple zeroization invariant.
func (a *addressGen) wipe() {
	a.address.zero()
	a.input.zero()
	a.zero.zero()
}

// dataIndependent reports whether the block at (pass, slice) for variant
// uses address-block-derived (J1, J2) pairs rather than the previous
// block's contents: Argon2i always does, Argon2id only for the first two
// slices of the first pass.
func dataIndependent(variant Variant, pass, slice uint32) bool {
	switch variant {
	case Argon2i:
		return true
	case Argon2id:
		return pass == 0 && slice < 2
	default:
		return false
	}
}

// indexAlpha computes the absolute block index in B chosen as the
// reference block for the block being produced at (pass, slice, lane,
// index), given the 64-bit pseudorandom word rnd = (J2:J1). This folds
// the spec's area/startPos table (section 4.4) into the same closed-form
// reduction the reference implementation uses.
func indexAlpha(rnd uint64, laneLen, segmentLen, parallelism, pass, slice, lane, index uint32) uint32 {
	refLane := uint32(rnd>>32) % parallelism
	if pass == 0 && slice == 0 {
		refLane = lane
	}

	var area, start uint32
	if pass == 0 {
		area, start = slice*segmentLen, 0
		if slice == 0 || lane == refLane {
			area += index
		}
	} else {
		area, start = 3*segmentLen, ((slice+1)%syncPoints)*segmentLen
		if lane == refLane {
			area += index
		}
	}
	if index == 0 || lane == refLane {
		area--
	}

	return phi(rnd, area, start, refLane, laneLen)
}

// phi maps the 64-bit pseudorandom word to a position within [start,
// start+area) of the reference lane, favoring more recently written
// blocks via the quadratic relative-position mapping of section 4.4.
func phi(rnd uint64, area, start, refLane, laneLen uint32) uint32 {
	j1 := rnd & 0xffffffff
	rel := (j1 * j1) >> 32
	rel = (rel * uint64(area)) >> 32
	pos := (uint64(start) + uint64(area) - (rel + 1)) % uint64(laneLen)
	return refLane*laneLen + uint32(pos)
}
