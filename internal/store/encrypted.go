package store

import (
	"fmt"

	"sealstore/internal/codec"
	"sealstore/internal/crypto"
	"sealstore/internal/domain"
	"sealstore/internal/util/memzero"
)

// sealer encrypts and authenticates record encodings. crypto.Adapter is the
// production implementation.
type sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

// EncryptedStore keeps records sealed in a KeyValueStore of bytes. The key
// is derived from a passphrase when the store is built and lives only as long
// as the store: records cannot be recovered once it is closed or dropped.
type EncryptedStore[T any] struct {
	backing     *KeyValueStore[[]byte]
	codec       codec.Codec
	cipher      sealer
	fingerprint string
	kdf         string
	destroy     func()
}

// NewEncryptedStore derives a key from passphrase with kdf (crypto.DefaultKDF
// when nil) and returns an empty store encoding records with c (codec.JSON
// when nil). Key derivation failures wrap crypto.ErrKeyDerivation.
func NewEncryptedStore[T any](gen domain.IDGenerator, passphrase string, c codec.Codec, kdf crypto.KDF) (*EncryptedStore[T], error) {
	adapter, err := crypto.NewAdapter(passphrase, kdf)
	if err != nil {
		return nil, fmt.Errorf("derive store key: %w", err)
	}

	s := newEncryptedStore[T](gen, c, adapter)
	s.fingerprint = adapter.Fingerprint()
	s.kdf = adapter.KDF()
	s.destroy = adapter.Destroy
	return s, nil
}

func newEncryptedStore[T any](gen domain.IDGenerator, c codec.Codec, cipher sealer) *EncryptedStore[T] {
	if c == nil {
		c = codec.JSON
	}
	return &EncryptedStore[T]{
		backing: NewKeyValueStore[[]byte](gen),
		codec:   c,
		cipher:  cipher,
	}
}

// Read returns the record saved under id. Absent records are reported
// without touching the cipher; records that fail to open return
// domain.ErrInvalidKey.
func (s *EncryptedStore[T]) Read(id domain.ID) (T, bool, error) {
	var zero T

	sealed, ok := s.backing.Read(id)
	if !ok {
		return zero, false, nil
	}
	item, err := s.open(sealed)
	if err != nil {
		return zero, false, fmt.Errorf("read %q: %w", id, err)
	}
	return item, true, nil
}

// ReadAll opens every record in backing order.
func (s *EncryptedStore[T]) ReadAll() ([]T, error) {
	sealed := s.backing.ReadAll()

	items := make([]T, 0, len(sealed))
	for _, b := range sealed {
		item, err := s.open(b)
		if err != nil {
			return nil, fmt.Errorf("read all: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// ReadWithFilter always fails: filters cannot be evaluated against
// ciphertext.
func (s *EncryptedStore[T]) ReadWithFilter(domain.ReadFilter) ([]T, error) {
	return nil, fmt.Errorf("%w: encrypted stores cannot filter records", domain.ErrUnsupportedOperation)
}

// Save assigns item an identifier when it has none, then stores it sealed.
func (s *EncryptedStore[T]) Save(item T) error {
	id, err := s.backing.GetOrGenerateIDValue(item)
	if err != nil {
		return err
	}

	plaintext, err := s.codec.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode record %q: %w", id, err)
	}
	defer memzero.Zero(plaintext)

	sealed, err := s.cipher.Seal(plaintext)
	if err != nil {
		return fmt.Errorf("seal record %q: %w", id, err)
	}
	s.backing.Save(id, sealed)
	return nil
}

// SaveAll saves items in order and stops at the first failure.
func (s *EncryptedStore[T]) SaveAll(items []T) error {
	for _, item := range items {
		if err := s.Save(item); err != nil {
			return err
		}
	}
	return nil
}

func (s *EncryptedStore[T]) Remove(id domain.ID) { s.backing.Remove(id) }

func (s *EncryptedStore[T]) Reset() { s.backing.Reset() }

func (s *EncryptedStore[T]) IsEmpty() bool { return s.backing.IsEmpty() }

// Fingerprint identifies the store's key instance in logs.
func (s *EncryptedStore[T]) Fingerprint() string { return s.fingerprint }

// KDF names the key derivation function the store key came from.
func (s *EncryptedStore[T]) KDF() string { return s.kdf }

// Close wipes the key. Records still held become unreadable.
func (s *EncryptedStore[T]) Close() error {
	if s.destroy != nil {
		s.destroy()
	}
	return nil
}

func (s *EncryptedStore[T]) open(sealed []byte) (T, error) {
	var item T

	plaintext, err := s.cipher.Open(sealed)
	if err != nil {
		return item, err
	}
	defer memzero.Zero(plaintext)

	if err := s.codec.Unmarshal(plaintext, &item); err != nil {
		return item, fmt.Errorf("decode record: %w", err)
	}
	return item, nil
}

// Compile-time assertion that EncryptedStore implements domain.Store.
var _ domain.Store[any] = (*EncryptedStore[any])(nil)
