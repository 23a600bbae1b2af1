package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

const (
	KeyBytes   = chacha20poly1305.KeySize
	SaltBytes  = 16
	IVBytes    = 16
	NonceBytes = chacha20poly1305.NonceSizeX

	DefaultPBKDF2Iterations = 100_000
	MinPBKDF2Iterations     = 1_000

	DefaultArgon2Time      uint32 = 3
	DefaultArgon2MemoryKiB uint32 = 64 * 1024
	MinArgon2MemoryKiB     uint32 = 8 * 1024
)

// ErrKeyDerivation is returned when a key cannot be derived from the
// passphrase, for example an empty passphrase or invalid KDF parameters.
var ErrKeyDerivation = errors.New("key derivation failed")

// KDF derives a KeyBytes-long key from a passphrase and salt.
type KDF interface {
	Name() string
	DeriveKey(passphrase, salt []byte) ([]byte, error)
}

// PBKDF2 derives keys with PBKDF2-HMAC-SHA256.
type PBKDF2 struct {
	Iterations int
}

func (PBKDF2) Name() string { return "pbkdf2" }

func (k PBKDF2) DeriveKey(passphrase, salt []byte) ([]byte, error) {
	if err := checkInputs(passphrase, salt); err != nil {
		return nil, err
	}
	if k.Iterations < MinPBKDF2Iterations {
		return nil, fmt.Errorf("%w: pbkdf2 iterations must be >= %d", ErrKeyDerivation, MinPBKDF2Iterations)
	}
	return pbkdf2.Key(passphrase, salt, k.Iterations, KeyBytes, sha256.New), nil
}

// Scrypt derives keys with scrypt.
type Scrypt struct {
	N, R, P int
}

// DefaultScrypt returns the scrypt tunables used when none are configured.
func DefaultScrypt() Scrypt { return Scrypt{N: 1 << 15, R: 8, P: 1} }

func (Scrypt) Name() string { return "scrypt" }

func (k Scrypt) DeriveKey(passphrase, salt []byte) ([]byte, error) {
	if err := checkInputs(passphrase, salt); err != nil {
		return nil, err
	}
	key, err := scrypt.Key(passphrase, salt, k.N, k.R, k.P, KeyBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: scrypt: %v", ErrKeyDerivation, err)
	}
	return key, nil
}

// Argon2id derives keys with Argon2id.
type Argon2id struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// DefaultArgon2id returns the Argon2id tunables used when none are
// configured. Parallelism follows the CPU count, capped at 4.
func DefaultArgon2id() Argon2id {
	threads := runtime.NumCPU()
	if threads > 4 {
		threads = 4
	}
	if threads < 1 {
		threads = 1
	}
	return Argon2id{
		Time:      DefaultArgon2Time,
		MemoryKiB: DefaultArgon2MemoryKiB,
		Threads:   uint8(threads),
	}
}

func (Argon2id) Name() string { return "argon2id" }

func (k Argon2id) DeriveKey(passphrase, salt []byte) ([]byte, error) {
	if err := checkInputs(passphrase, salt); err != nil {
		return nil, err
	}
	switch {
	case k.Time == 0:
		return nil, fmt.Errorf("%w: argon2id time must be > 0", ErrKeyDerivation)
	case k.MemoryKiB < MinArgon2MemoryKiB:
		return nil, fmt.Errorf("%w: argon2id memory must be >= %d KiB", ErrKeyDerivation, MinArgon2MemoryKiB)
	case k.Threads == 0:
		return nil, fmt.Errorf("%w: argon2id threads must be > 0", ErrKeyDerivation)
	}
	return argon2.IDKey(passphrase, salt, k.Time, k.MemoryKiB, k.Threads, KeyBytes), nil
}

// DefaultKDF returns the KDF used when a configuration names none.
func DefaultKDF() KDF { return PBKDF2{Iterations: DefaultPBKDF2Iterations} }

func checkInputs(passphrase, salt []byte) error {
	if len(passphrase) == 0 {
		return fmt.Errorf("%w: passphrase must not be empty", ErrKeyDerivation)
	}
	if len(salt) < SaltBytes {
		return fmt.Errorf("%w: salt must be at least %d bytes", ErrKeyDerivation, SaltBytes)
	}
	return nil
}

// Compile-time assertions that the KDFs implement KDF.
var (
	_ KDF = PBKDF2{}
	_ KDF = Scrypt{}
	_ KDF = Argon2id{}
)
