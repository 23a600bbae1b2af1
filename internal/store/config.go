package store

import (
	"fmt"
	"reflect"

	"sealstore/internal/crypto"
	"sealstore/internal/datamanager"
	"sealstore/internal/domain"
	"sealstore/internal/idgen"
)

// Built-in store kinds.
const (
	KindMemory          domain.Kind = "memory"
	KindEncryptedMemory domain.Kind = "encrypted-memory"
)

// MemoryConfig builds a MemoryStore.
type MemoryConfig struct {
	datamanager.Base
	model Model
	gen   domain.IDGenerator
}

// WithModel sets the record type. Required.
func (c *MemoryConfig) WithModel(m Model) *MemoryConfig {
	c.model = m
	return c
}

// WithIDGenerator sets the generator for records saved without an
// identifier. The default is idgen.Default.
func (c *MemoryConfig) WithIDGenerator(gen domain.IDGenerator) *MemoryConfig {
	c.gen = gen
	return c
}

func (c *MemoryConfig) Build() (any, error) {
	if c.model == nil {
		return nil, c.Missing("model")
	}
	return c.model.newMemory(generatorOrDefault(c.gen)), nil
}

// EncryptedMemoryConfig builds an EncryptedStore.
type EncryptedMemoryConfig struct {
	datamanager.Base
	model      Model
	gen        domain.IDGenerator
	passphrase string
	kdf        crypto.KDF
}

// WithModel sets the record type and its codec. Required.
func (c *EncryptedMemoryConfig) WithModel(m Model) *EncryptedMemoryConfig {
	c.model = m
	return c
}

// WithPassphrase sets the passphrase the store key is derived from. Required.
func (c *EncryptedMemoryConfig) WithPassphrase(passphrase string) *EncryptedMemoryConfig {
	c.passphrase = passphrase
	return c
}

// WithIDGenerator sets the generator for records saved without an
// identifier. The default is idgen.Default.
func (c *EncryptedMemoryConfig) WithIDGenerator(gen domain.IDGenerator) *EncryptedMemoryConfig {
	c.gen = gen
	return c
}

// WithKDF sets the key derivation function. The default is
// crypto.DefaultKDF.
func (c *EncryptedMemoryConfig) WithKDF(kdf crypto.KDF) *EncryptedMemoryConfig {
	c.kdf = kdf
	return c
}

func (c *EncryptedMemoryConfig) Build() (any, error) {
	if c.model == nil {
		return nil, c.Missing("model")
	}
	if c.passphrase == "" {
		return nil, c.Missing("passphrase")
	}
	return c.model.newEncrypted(generatorOrDefault(c.gen), c.passphrase, c.kdf)
}

func generatorOrDefault(gen domain.IDGenerator) domain.IDGenerator {
	if gen == nil {
		return idgen.Default()
	}
	return gen
}

// RegisterBuiltins installs the memory and encrypted-memory kinds.
func RegisterBuiltins(r *datamanager.Registry) {
	r.RegisterProvider(KindMemory, datamanager.ProviderFunc(func() datamanager.Configuration {
		return &MemoryConfig{}
	}))
	r.RegisterProvider(KindEncryptedMemory, datamanager.ProviderFunc(func() datamanager.Configuration {
		return &EncryptedMemoryConfig{}
	}))
}

// NewDataManager returns a registry seeded with the built-in kinds.
func NewDataManager(opts ...datamanager.Option) *datamanager.Registry {
	r := datamanager.New(opts...)
	RegisterBuiltins(r)
	return r
}

// Open finalizes cfg and returns the store typed for records of type T.
func Open[T any](cfg datamanager.Configuration) (domain.Store[T], error) {
	s, err := cfg.Store()
	if err != nil {
		return nil, err
	}
	return typed[T](cfg.Name(), s)
}

// Get returns the store registered under name, typed for records of type T.
// Unknown names return domain.ErrNotFound.
func Get[T any](r *datamanager.Registry, name string) (domain.Store[T], error) {
	s, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: store %q", domain.ErrNotFound, name)
	}
	return typed[T](name, s)
}

func typed[T any](name string, s any) (domain.Store[T], error) {
	st, ok := s.(domain.Store[T])
	if !ok {
		return nil, fmt.Errorf("%w: store %q is %T, not a store of %s",
			domain.ErrConfiguration, name, s, reflect.TypeFor[T]())
	}
	return st, nil
}

// Compile-time assertions that the configurations implement
// datamanager.Configuration.
var (
	_ datamanager.Configuration = (*MemoryConfig)(nil)
	_ datamanager.Configuration = (*EncryptedMemoryConfig)(nil)
)
