package argon2

import "fmt"

// Each precondition in the option-validation stage (C9) reports a
// distinct error type so callers can branch on the failure with
// errors.As instead of string-matching a message.

type InvalidDkLenError struct{ Got uint32 }

func (e *InvalidDkLenError) Error() string {
	return fmt.Sprintf("argon2: invalid key length %d, must be >= 4", e.Got)
}

type InvalidParallelismError struct{ Got uint32 }

func (e *InvalidParallelismError) Error() string {
	return fmt.Sprintf("argon2: invalid parallelism %d, must be in [1, 2^24)", e.Got)
}

type InvalidMemoryError struct {
	Got     uint32
	MinimumFor uint32 // minimum required for the given parallelism
}

func (e *InvalidMemoryError) Error() string {
	return fmt.Sprintf("argon2: invalid memory %d KiB, must be >= 8*parallelism (%d)", e.Got, e.MinimumFor)
}

type InvalidIterationsError struct{ Got uint32 }

func (e *InvalidIterationsError) Error() string {
	return fmt.Sprintf("argon2: invalid iteration count %d, must be >= 1", e.Got)
}

type InvalidVersionError struct{ Got uint8 }

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("argon2: invalid version 0x%02x, must be 0x10 or 0x13", e.Got)
}

type InvalidTypeError struct{ Got Variant }

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("argon2: invalid variant tag %d", e.Got)
}

type InvalidSaltError struct{ Got int }

func (e *InvalidSaltError) Error() string {
	return fmt.Sprintf("argon2: salt too short, got %d bytes, want >= 8", e.Got)
}

type InputTooLargeError struct {
	Field string
	Got   int
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("argon2: %s is too large, got %d bytes, want < 2^32", e.Field, e.Got)
}

type MemoryBudgetExceededError struct {
	Want uint64
	Max  uint64
}

func (e *MemoryBudgetExceededError) Error() string {
	return fmt.Sprintf("argon2: working matrix needs %d bytes, exceeds maxmem %d", e.Want, e.Max)
}

type InvalidProgressCallbackError struct{}

func (e *InvalidProgressCallbackError) Error() string {
	return "argon2: onProgress was supplied but is not callable"
}
