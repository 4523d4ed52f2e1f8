package argon2

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// PHC string encode/decode: $argon2id$v=19$m=...,t=...,p=...$salt$hash.
// Not part of the core RFC 9106 algorithm, but the near-universal
// companion format every password-hashing call site in the wild wraps
// around an Argon2 core; grounded on the "hashed" encode/decode pair and
// kept here as a supplement rather than folded into the core package's
// semantics.

// ErrMismatchedHashAndPassword is returned by Compare when the password
// does not match the encoded hash.
var ErrMismatchedHashAndPassword = errors.New("argon2: hashedPassword is not the hash of the given password")

// InvalidHashPrefixError is returned by DecodeHash when the string does
// not start with '$'.
type InvalidHashPrefixError byte

func (e InvalidHashPrefixError) Error() string {
	return fmt.Sprintf("argon2: encoded hash must start with '$', got %q", byte(e))
}

// InvalidHashFormatError is returned by DecodeHash when the string does
// not have the expected number of '$'-delimited fields.
type InvalidHashFormatError struct{ Encoded string }

func (e InvalidHashFormatError) Error() string {
	return fmt.Sprintf("argon2: %q is not a valid encoded Argon2 hash", e.Encoded)
}

// EncodeHash renders variant, opts and the already-computed salt/hash
// pair as a PHC string.
func EncodeHash(variant Variant, salt, hash []byte, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "$%s$v=%d", variant, versionOrDefault(opts.Version))
	fmt.Fprintf(&b, "$m=%d,t=%d,p=%d", opts.Memory, opts.Time, opts.Parallelism)
	b.WriteByte('$')
	b.WriteString(base64.RawStdEncoding.EncodeToString(salt))
	b.WriteByte('$')
	b.WriteString(base64.RawStdEncoding.EncodeToString(hash))
	return b.String()
}

func versionOrDefault(v uint8) uint8 {
	if v == 0 {
		return version13
	}
	return v
}

// DecodeHash parses a PHC string produced by EncodeHash back into its
// variant, options, salt and hash.
func DecodeHash(encoded string) (variant Variant, opts Options, salt, hash []byte, err error) {
	if len(encoded) == 0 || encoded[0] != '$' {
		var got byte
		if len(encoded) > 0 {
			got = encoded[0]
		}
		return 0, Options{}, nil, nil, InvalidHashPrefixError(got)
	}

	fields := strings.Split(encoded, "$")
	if len(fields) != 6 {
		return 0, Options{}, nil, nil, InvalidHashFormatError{Encoded: encoded}
	}

	switch fields[1] {
	case "argon2d":
		variant = Argon2d
	case "argon2i":
		variant = Argon2i
	case "argon2id":
		variant = Argon2id
	default:
		return 0, Options{}, nil, nil, InvalidHashFormatError{Encoded: encoded}
	}

	var version int
	if _, err := fmt.Sscanf(fields[2], "v=%d", &version); err != nil {
		return 0, Options{}, nil, nil, InvalidHashFormatError{Encoded: encoded}
	}
	opts.Version = uint8(version)
	if opts.Version != version10 && opts.Version != version13 {
		return 0, Options{}, nil, nil, &InvalidVersionError{Got: opts.Version}
	}

	if _, err := fmt.Sscanf(fields[3], "m=%d,t=%d,p=%d", &opts.Memory, &opts.Time, &opts.Parallelism); err != nil {
		return 0, Options{}, nil, nil, InvalidHashFormatError{Encoded: encoded}
	}

	salt, err = base64.RawStdEncoding.DecodeString(fields[4])
	if err != nil {
		return 0, Options{}, nil, nil, err
	}
	hash, err = base64.RawStdEncoding.DecodeString(fields[5])
	if err != nil {
		return 0, Options{}, nil, nil, err
	}
	opts.KeyLen = uint32(len(hash))

	return variant, opts, salt, hash, nil
}

// Compare re-derives the key for password under the parameters and salt
// encoded in `encoded` and compares it in constant time against the
// encoded hash. It returns ErrMismatchedHashAndPassword on mismatch and
// passes through any Key validation error otherwise.
func Compare(encoded string, password, secret []byte) error {
	variant, opts, salt, hash, err := DecodeHash(encoded)
	if err != nil {
		return err
	}
	opts.Secret = secret

	got, err := Key(variant, password, salt, opts)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(got, hash) == 1 {
		return nil
	}
	return ErrMismatchedHashAndPassword
}
