package crypto

import (
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/chacha20poly1305"

	"sealstore/internal/domain"
	"sealstore/internal/util/memzero"
)

// ErrKeyDestroyed is returned by an Adapter used after Destroy. It matches
// domain.ErrInvalidKey.
var ErrKeyDestroyed = fmt.Errorf("%w: key destroyed", domain.ErrInvalidKey)

// Adapter seals and opens records under a key derived once from a
// passphrase. Each Adapter draws its own salt and IV; the salt is wiped after
// derivation, so the key cannot be recreated later.
//
// Sealed records are laid out as nonce || ciphertext. Every Seal draws a
// fresh nonce and binds the instance IV as associated data.
type Adapter struct {
	mu  sync.RWMutex
	key *memguard.LockedBuffer
	iv  []byte
	kdf string
}

// NewAdapter derives a key from passphrase with kdf, or DefaultKDF when kdf
// is nil. Derivation failures wrap ErrKeyDerivation.
func NewAdapter(passphrase string, kdf KDF) (*Adapter, error) {
	if kdf == nil {
		kdf = DefaultKDF()
	}

	salt, err := randomBytes(SaltBytes)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(salt)

	iv, err := randomBytes(IVBytes)
	if err != nil {
		return nil, err
	}

	pass := []byte(passphrase)
	defer memzero.Zero(pass)

	key, err := kdf.DeriveKey(pass, salt)
	if err != nil {
		return nil, err
	}
	if len(key) != KeyBytes {
		memzero.Zero(key)
		return nil, fmt.Errorf("%w: %s produced a %d-byte key", ErrKeyDerivation, kdf.Name(), len(key))
	}

	buf := memguard.NewBufferFromBytes(key)
	buf.Freeze()

	return &Adapter{key: buf, iv: iv, kdf: kdf.Name()}, nil
}

// Seal encrypts plaintext and returns nonce || ciphertext.
func (a *Adapter) Seal(plaintext []byte) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if !a.key.IsAlive() {
		return nil, ErrKeyDestroyed
	}

	nonce, err := randomBytes(NonceBytes)
	if err != nil {
		return nil, err
	}
	ct, err := SealXChaCha20Poly1305(a.key.Bytes(), nonce, plaintext, a.iv)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(nonce)+len(ct))
	sealed = append(sealed, nonce...)
	return append(sealed, ct...), nil
}

// Open authenticates and decrypts a value produced by this Adapter's Seal.
// Anything else, including values sealed by another Adapter, fails with
// domain.ErrInvalidKey.
func (a *Adapter) Open(sealed []byte) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if !a.key.IsAlive() {
		return nil, ErrKeyDestroyed
	}
	if len(sealed) < NonceBytes+chacha20poly1305.Overhead {
		return nil, fmt.Errorf("%w: sealed value is %d bytes", domain.ErrInvalidKey, len(sealed))
	}

	pt, err := OpenXChaCha20Poly1305(a.key.Bytes(), sealed[:NonceBytes], sealed[NonceBytes:], a.iv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKey, err)
	}
	return pt, nil
}

// Fingerprint identifies this Adapter in logs without revealing key material.
func (a *Adapter) Fingerprint() string { return Fingerprint(a.iv) }

// KDF names the key derivation function the key came from.
func (a *Adapter) KDF() string { return a.kdf }

// Destroy wipes the key. It is safe to call more than once.
func (a *Adapter) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.key.Destroy()
}
