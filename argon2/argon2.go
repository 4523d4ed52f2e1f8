// Package argon2 implements the Argon2 password-hashing and key-derivation
// function (RFC 9106): Argon2d, Argon2i and Argon2id, versions 0x10 and
// 0x13. Argon2 derives a key by filling a large working matrix of 1024-byte
// blocks with a pseudorandom access pattern and compressing it down with a
// BLAKE2b-derived permutation, making the cost dominated by memory
// bandwidth rather than raw CPU cycles.
//
// Use Key for a one-shot blocking derivation, or HashAsync when the call
// needs to share a single goroutine with other work without blocking it
// for the whole run.
package argon2

import (
	"fmt"
)

// Variant selects which of the three Argon2 addressing modes to run.
type Variant uint8

const (
	Argon2d Variant = iota
	Argon2i
	Argon2id
)

func (v Variant) String() string {
	switch v {
	case Argon2d:
		return "argon2d"
	case Argon2i:
		return "argon2i"
	case Argon2id:
		return "argon2id"
	default:
		return fmt.Sprintf("argon2(%d)", uint8(v))
	}
}

const (
	version10 uint8 = 0x10
	version13 uint8 = 0x13

	// DefaultVersion is the version new callers should use unless they
	// need to reproduce an older hash.
	DefaultVersion = version13
)

// Options carries the Argon2 cost parameters and optional extras. Time,
// Memory and Parallelism are required; the rest have RFC-sane defaults
// applied by normalize when left at their zero value.
type Options struct {
	Time        uint32 // iteration count, t >= 1
	Memory      uint32 // memory cost in KiB, m >= 8*Parallelism
	Parallelism uint32 // lane count, p in [1, 2^24)

	KeyLen          uint32 // output length in bytes, default 32, minimum 4
	Version         uint8  // 0x10 or 0x13, default 0x13
	Secret          []byte // optional secret key ("pepper")
	Personalization []byte // optional associated data
	MaxMemory       uint64 // upper bound on m'*1024 bytes, default 2^32-1

	// OnProgress, if non-nil, is called with a fraction in [0,1]
	// roughly every ceil(totalBlocks/10000) produced blocks, with a
	// final call at exactly 1.0. It does not affect the derived key.
	OnProgress func(float64)
}

const (
	defaultKeyLen    = 32
	defaultMaxMemory = uint64(1)<<32 - 1
)

// normalizedOptions is Options after defaulting and validation, with
// fields renamed to match the spec's component descriptions.
type normalizedOptions struct {
	time, memory, parallelism, keyLen uint32
	version                           uint8
	maxMemory                         uint64
	onProgress                        func(float64)
}

// normalize applies defaults and runs the full set of C9 precondition
// checks, returning a distinct error type per violated precondition and
// never allocating the working matrix on failure.
func normalize(variant Variant, password, salt []byte, opts Options) (*normalizedOptions, error) {
	if variant != Argon2d && variant != Argon2i && variant != Argon2id {
		return nil, &InvalidTypeError{Got: variant}
	}

	o := &normalizedOptions{
		time:        opts.Time,
		memory:      opts.Memory,
		parallelism: opts.Parallelism,
		keyLen:      opts.KeyLen,
		version:     opts.Version,
		maxMemory:   opts.MaxMemory,
		onProgress:  opts.OnProgress,
	}
	if o.keyLen == 0 {
		o.keyLen = defaultKeyLen
	}
	if o.version == 0 {
		o.version = version13
	}
	if o.maxMemory == 0 {
		o.maxMemory = defaultMaxMemory
	}

	if o.parallelism < 1 || o.parallelism >= 1<<24 {
		return nil, &InvalidParallelismError{Got: o.parallelism}
	}
	if o.time < 1 {
		return nil, &InvalidIterationsError{Got: o.time}
	}
	minMemory := 8 * o.parallelism
	if o.memory < minMemory {
		return nil, &InvalidMemoryError{Got: o.memory, MinimumFor: minMemory}
	}
	if o.keyLen < 4 {
		return nil, &InvalidDkLenError{Got: o.keyLen}
	}
	if o.version != version10 && o.version != version13 {
		return nil, &InvalidVersionError{Got: o.version}
	}
	if len(salt) < 8 {
		return nil, &InvalidSaltError{Got: len(salt)}
	}

	const maxInputLen = 1<<32 - 1
	switch {
	case len(password) > maxInputLen:
		return nil, &InputTooLargeError{Field: "password", Got: len(password)}
	case len(salt) > maxInputLen:
		return nil, &InputTooLargeError{Field: "salt", Got: len(salt)}
	case len(opts.Secret) > maxInputLen:
		return nil, &InputTooLargeError{Field: "secret", Got: len(opts.Secret)}
	case len(opts.Personalization) > maxInputLen:
		return nil, &InputTooLargeError{Field: "personalization", Got: len(opts.Personalization)}
	}

	return o, nil
}

// matrixSize rounds m down to a multiple of 4*p (section 3, m' formula)
// and returns the usable block count m' along with the per-lane length q.
func matrixSize(memory, parallelism uint32) (mPrime, laneLen uint32) {
	mPrime = memory / (syncPoints * parallelism) * (syncPoints * parallelism)
	laneLen = mPrime / parallelism
	return
}

// Key runs the blocking Argon2 entry point: it never suspends and
// returns the derived key (or the first validation error) directly.
func Key(variant Variant, password, salt []byte, opts Options) ([]byte, error) {
	return derive(variant, password, salt, opts, noopYield)
}

func noopYield() error { return nil }

// derive is shared by the blocking and cooperative entry points; yield
// is invoked after every produced block (see fill.go).
func derive(variant Variant, password, salt []byte, opts Options, yield func() error) ([]byte, error) {
	o, err := normalize(variant, password, salt, opts)
	if err != nil {
		return nil, err
	}

	mPrime, laneLen := matrixSize(o.memory, o.parallelism)
	segmentLen := laneLen / syncPoints

	want := uint64(mPrime) * blockSize
	if want > o.maxMemory {
		return nil, &MemoryBudgetExceededError{Want: want, Max: o.maxMemory}
	}

	h0 := initialHash(password, salt, opts.Secret, opts.Personalization, o, variant)
	mem := make([]block, mPrime)
	seedLanes(mem, h0, laneLen, o.parallelism)
	for i := range h0 {
		h0[i] = 0
	}

	totalBlocks := o.time*mPrime - 2*o.parallelism
	progress := newProgressReporter(o.onProgress, totalBlocks)

	if err := fillMemory(mem, o, variant, laneLen, segmentLen, yield, progress.tick); err != nil {
		zeroMatrix(mem)
		return nil, err
	}

	out := finalize(mem, laneLen, o.parallelism, o.keyLen)
	zeroMatrix(mem)
	progress.done()
	return out, nil
}

func zeroMatrix(mem []block) {
	for i := range mem {
		mem[i].zero()
	}
}

// progressReporter throttles OnProgress to roughly every
// ceil(total/10000) blocks, per section 4.8, with a guaranteed final
// call at 1.0 regardless of how the count divides.
type progressReporter struct {
	cb       func(float64)
	total    uint32
	step     uint32
	produced uint32
	reported bool
}

func newProgressReporter(cb func(float64), total uint32) *progressReporter {
	if cb == nil || total == 0 {
		return &progressReporter{cb: cb, total: total}
	}
	step := (total + 9999) / 10000
	if step == 0 {
		step = 1
	}
	return &progressReporter{cb: cb, total: total, step: step}
}

func (p *progressReporter) tick() {
	if p.cb == nil {
		return
	}
	p.produced++
	if p.produced%p.step == 0 {
		p.cb(float64(p.produced) / float64(p.total))
		if p.produced == p.total {
			p.reported = true
		}
	}
}

func (p *progressReporter) done() {
	if p.cb == nil || p.reported {
		return
	}
	p.reported = true
	p.cb(1.0)
}

// DefaultOptions returns RFC 9106 section 4's non-interactive
// recommendation for variant. Argon2id and Argon2d get the first
// recommended option, t=1 against a large memory budget; Argon2i, which
// is weaker per pass, gets the second recommended option, t=3, since it
// has no data-dependent lanes to fall back on for side-channel
// resistance. Callers still size Memory to their own memory budget.
func DefaultOptions(variant Variant) Options {
	time := uint32(1)
	if variant == Argon2i {
		time = 3
	}
	return Options{
		Time:        time,
		Memory:      2 * 1024 * 1024,
		Parallelism: 4,
		KeyLen:      defaultKeyLen,
		Version:     version13,
	}
}
