package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sealstore/internal/crypto"
	"sealstore/internal/domain"
	"sealstore/internal/idgen"
	"sealstore/internal/store"
)

// testKDF keeps key derivation fast in tests.
var testKDF = crypto.PBKDF2{Iterations: crypto.MinPBKDF2Iterations}

type secret struct {
	ID      domain.ID         `json:"id" cbor:"id"`
	Owner   string            `json:"owner" cbor:"owner"`
	Value   string            `json:"value" cbor:"value"`
	Version int               `json:"version" cbor:"version"`
	Labels  map[string]string `json:"labels,omitempty" cbor:"labels,omitempty"`
}

func (s *secret) RecordID() domain.ID      { return s.ID }
func (s *secret) SetRecordID(id domain.ID) { s.ID = id }

// readOnly exposes an identifier but cannot be assigned one.
type readOnly struct {
	Key string `json:"key"`
}

func (r readOnly) RecordID() domain.ID { return domain.ID(r.Key) }

func newEncrypted(t *testing.T) *store.EncryptedStore[*secret] {
	t.Helper()
	s, err := store.NewEncryptedStore[*secret](idgen.NewSequence(0), "correct horse battery staple", nil, testKDF)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// kinds returns one fresh store of each built-in kind.
func kinds(t *testing.T) map[string]domain.Store[*secret] {
	t.Helper()
	return map[string]domain.Store[*secret]{
		"memory":           store.NewMemoryStore[*secret](idgen.NewSequence(0)),
		"encrypted-memory": newEncrypted(t),
	}
}
