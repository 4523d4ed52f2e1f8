// Command argon2hash hashes or verifies a password against an Argon2
// PHC-format string from the command line.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/magical/argon2go/argon2"
)

func main() {
	variant := flag.String("variant", "argon2id", "argon2d, argon2i or argon2id")
	time := flag.Uint("time", 3, "iteration count")
	memory := flag.Uint("memory", 64*1024, "memory cost in KiB")
	parallelism := flag.Uint("parallelism", 4, "lane count")
	keyLen := flag.Uint("length", 32, "output length in bytes")
	verify := flag.String("verify", "", "verify the password against this encoded hash instead of hashing it")
	flag.Parse()

	password := readPassword()

	if *verify != "" {
		if err := argon2.Compare(*verify, password, nil); err != nil {
			if err == argon2.ErrMismatchedHashAndPassword {
				fmt.Println("no match")
				os.Exit(1)
			}
			log.Fatalf("argon2hash: %v", err)
		}
		fmt.Println("match")
		return
	}

	v, err := parseVariant(*variant)
	if err != nil {
		log.Fatalf("argon2hash: %v", err)
	}

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		log.Fatalf("argon2hash: %v", err)
	}

	opts := argon2.Options{
		Time:        uint32(*time),
		Memory:      uint32(*memory),
		Parallelism: uint32(*parallelism),
		KeyLen:      uint32(*keyLen),
	}

	hash, err := argon2.Key(v, password, salt, opts)
	if err != nil {
		log.Fatalf("argon2hash: %v", err)
	}

	fmt.Println(argon2.EncodeHash(v, salt, hash, opts))
}

func parseVariant(s string) (argon2.Variant, error) {
	switch s {
	case "argon2d":
		return argon2.Argon2d, nil
	case "argon2i":
		return argon2.Argon2i, nil
	case "argon2id":
		return argon2.Argon2id, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", s)
	}
}

// readPassword reads the password to hash/verify from the remaining
// command-line argument, so scripted callers don't need a TTY.
func readPassword() []byte {
	args := flag.Args()
	if len(args) != 1 {
		log.Fatal("argon2hash: usage: argon2hash [flags] <password>")
	}
	return []byte(args[0])
}
