package argon2

// ARGON2_SYNC_POINTS: each lane is split into 4 equal segments, the
// synchronization unit between lanes within a pass.
const syncPoints = 4

// fillMemory runs the pass/segment/lane driver (component C7): t passes
// over m' blocks, four synchronization segments per pass, lanes iterated
// serially within each segment per the spec's single-thread schedule
// (section 4.6). yield is invoked after every produced block and may
// return an error to abort the fill early; the blocking entry point
// passes a yield that always returns nil, the cooperative entry point's
// yield is described in async.go.
func fillMemory(mem []block, o *normalizedOptions, variant Variant, laneLen, segmentLen uint32, yield func() error, onBlock func()) error {
	var addr addressGen
	defer addr.wipe()
	totalBlocks := uint32(len(mem))

	for pass := uint32(0); pass < o.time; pass++ {
		needXor := pass != 0 && o.version == version13
		for slice := uint32(0); slice < syncPoints; slice++ {
			independent := dataIndependent(variant, pass, slice)
			for lane := uint32(0); lane < o.parallelism; lane++ {
				start := uint32(0)
				if pass == 0 && slice == 0 {
					start = 2
				}
				if independent {
					addr.reset(pass, lane, slice, totalBlocks, o.time, variant)
					if start != 0 {
						// First segment of the first pass begins at
						// index 2; prime the address block once up
						// front so it already covers [0, 128).
						addr.regenerate()
					}
				}

				for index := start; index < segmentLen; index++ {
					offset := lane*laneLen + slice*segmentLen + index
					prev := offset - 1
					if slice == 0 && index == 0 {
						prev = lane*laneLen + laneLen - 1
					}

					var rnd uint64
					if independent {
						if index%blockWords == 0 {
							addr.regenerate()
						}
						rnd = addr.address[index%blockWords]
					} else {
						rnd = mem[prev][0]
					}

					ref := indexAlpha(rnd, laneLen, segmentLen, o.parallelism, pass, slice, lane, index)
					compressBlock(&mem[offset], &mem[prev], &mem[ref], needXor)

					if onBlock != nil {
						onBlock()
					}
					if err := yield(); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
