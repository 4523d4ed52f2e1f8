package argon2

import (
	"errors"
	"testing"
)

// Boundary behaviors from the testable-properties list, #9-13.
func TestBoundaries(t *testing.T) {
	salt8 := []byte{6, 7, 8, 9, 10, 11, 12, 13}

	t.Run("minimum viable parameters succeed", func(t *testing.T) {
		_, err := Key(Argon2id, nil, salt8, Options{Time: 1, Memory: 8, Parallelism: 1, KeyLen: 4})
		if err != nil {
			t.Fatalf("Key: %v", err)
		}
	})

	t.Run("salt too short", func(t *testing.T) {
		_, err := Key(Argon2id, nil, salt8[:7], Options{Time: 1, Memory: 8, Parallelism: 1, KeyLen: 32})
		var target *InvalidSaltError
		if !errors.As(err, &target) {
			t.Fatalf("got %v, want *InvalidSaltError", err)
		}
	})

	t.Run("memory one below minimum fails", func(t *testing.T) {
		_, err := Key(Argon2id, nil, salt8, Options{Time: 1, Memory: 7, Parallelism: 1, KeyLen: 32})
		var target *InvalidMemoryError
		if !errors.As(err, &target) {
			t.Fatalf("got %v, want *InvalidMemoryError", err)
		}
	})

	t.Run("memory at minimum succeeds", func(t *testing.T) {
		_, err := Key(Argon2id, nil, salt8, Options{Time: 1, Memory: 8, Parallelism: 1, KeyLen: 32})
		if err != nil {
			t.Fatalf("Key: %v", err)
		}
	})

	t.Run("dkLen below minimum fails", func(t *testing.T) {
		_, err := Key(Argon2id, nil, salt8, Options{Time: 1, Memory: 8, Parallelism: 1, KeyLen: 3})
		var target *InvalidDkLenError
		if !errors.As(err, &target) {
			t.Fatalf("got %v, want *InvalidDkLenError", err)
		}
	})

	t.Run("dkLen at minimum succeeds", func(t *testing.T) {
		_, err := Key(Argon2id, nil, salt8, Options{Time: 1, Memory: 8, Parallelism: 1, KeyLen: 4})
		if err != nil {
			t.Fatalf("Key: %v", err)
		}
	})

	t.Run("unknown version rejected", func(t *testing.T) {
		_, err := Key(Argon2id, nil, salt8, Options{Time: 1, Memory: 8, Parallelism: 1, KeyLen: 32, Version: 0x12})
		var target *InvalidVersionError
		if !errors.As(err, &target) {
			t.Fatalf("got %v, want *InvalidVersionError", err)
		}
	})

	t.Run("zero parallelism rejected", func(t *testing.T) {
		_, err := Key(Argon2id, nil, salt8, Options{Time: 1, Memory: 8, Parallelism: 0, KeyLen: 32})
		var target *InvalidParallelismError
		if !errors.As(err, &target) {
			t.Fatalf("got %v, want *InvalidParallelismError", err)
		}
	})

	t.Run("zero iterations rejected", func(t *testing.T) {
		_, err := Key(Argon2id, nil, salt8, Options{Time: 0, Memory: 8, Parallelism: 1, KeyLen: 32})
		var target *InvalidIterationsError
		if !errors.As(err, &target) {
			t.Fatalf("got %v, want *InvalidIterationsError", err)
		}
	})

	t.Run("memory budget exceeded", func(t *testing.T) {
		_, err := Key(Argon2id, nil, salt8, Options{Time: 1, Memory: 1 << 20, Parallelism: 1, KeyLen: 32, MaxMemory: 1024})
		var target *MemoryBudgetExceededError
		if !errors.As(err, &target) {
			t.Fatalf("got %v, want *MemoryBudgetExceededError", err)
		}
	})

	t.Run("unknown variant rejected", func(t *testing.T) {
		_, err := Key(Variant(99), nil, salt8, Options{Time: 1, Memory: 8, Parallelism: 1, KeyLen: 32})
		var target *InvalidTypeError
		if !errors.As(err, &target) {
			t.Fatalf("got %v, want *InvalidTypeError", err)
		}
	})
}
