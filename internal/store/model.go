package store

import (
	"reflect"

	"sealstore/internal/codec"
	"sealstore/internal/crypto"
	"sealstore/internal/domain"
)

// Model describes the record type a store holds and how records are
// encoded. Create one with ModelOf.
type Model interface {
	// Name is the Go type name of the records.
	Name() string
	// Codec encodes records for encrypted kinds.
	Codec() codec.Codec

	newMemory(gen domain.IDGenerator) any
	newEncrypted(gen domain.IDGenerator, passphrase string, kdf crypto.KDF) (any, error)
}

// ModelOption configures a Model.
type ModelOption func(*modelSettings)

type modelSettings struct {
	codec codec.Codec
}

// WithCodec selects the record encoding. The default is codec.JSON.
func WithCodec(c codec.Codec) ModelOption {
	return func(s *modelSettings) {
		if c != nil {
			s.codec = c
		}
	}
}

// ModelOf describes records of type T. T is usually a pointer to a struct
// implementing domain.Identifiable.
func ModelOf[T any](opts ...ModelOption) Model {
	settings := modelSettings{codec: codec.JSON}
	for _, opt := range opts {
		opt(&settings)
	}
	return model[T]{codec: settings.codec}
}

type model[T any] struct {
	codec codec.Codec
}

func (m model[T]) Name() string { return reflect.TypeFor[T]().String() }

func (m model[T]) Codec() codec.Codec { return m.codec }

func (m model[T]) newMemory(gen domain.IDGenerator) any {
	return NewMemoryStore[T](gen)
}

func (m model[T]) newEncrypted(gen domain.IDGenerator, passphrase string, kdf crypto.KDF) (any, error) {
	return NewEncryptedStore[T](gen, passphrase, m.codec, kdf)
}
