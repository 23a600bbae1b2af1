package store

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"sealstore/internal/domain"
	"sealstore/internal/idgen"
)

// KeyValueStore maps identifiers to values. ReadAll returns values in the
// insertion order of the keys currently present; overwriting a key keeps its
// position, removing and saving it again moves it to the end.
type KeyValueStore[V any] struct {
	mu     sync.RWMutex
	gen    domain.IDGenerator
	keys   []domain.ID
	values map[domain.ID]V
}

// NewKeyValueStore returns an empty KeyValueStore that generates missing
// record identifiers with gen, or idgen.Default when gen is nil.
func NewKeyValueStore[V any](gen domain.IDGenerator) *KeyValueStore[V] {
	if gen == nil {
		gen = idgen.Default()
	}
	return &KeyValueStore[V]{gen: gen, values: make(map[domain.ID]V)}
}

// Save stores value under id, overwriting any previous value.
func (s *KeyValueStore[V]) Save(id domain.ID, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[id]; !exists {
		s.keys = append(s.keys, id)
	}
	s.values[id] = value
}

// Read returns the value stored under id.
func (s *KeyValueStore[V]) Read(id domain.ID) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[id]
	return v, ok
}

// ReadAll returns every value in key insertion order.
func (s *KeyValueStore[V]) ReadAll() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]V, 0, len(s.keys))
	for _, id := range s.keys {
		out = append(out, s.values[id])
	}
	return out
}

// Remove deletes id. Missing ids are ignored.
func (s *KeyValueStore[V]) Remove(id domain.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[id]; !exists {
		return
	}
	delete(s.values, id)
	if i := slices.Index(s.keys, id); i >= 0 {
		s.keys = slices.Delete(s.keys, i, i+1)
	}
}

// Reset removes every entry.
func (s *KeyValueStore[V]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.keys = nil
	s.values = make(map[domain.ID]V)
}

// IsEmpty reports whether the store holds no entries.
func (s *KeyValueStore[V]) IsEmpty() bool {
	return s.Len() == 0
}

// Len returns the number of entries.
func (s *KeyValueStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// GetOrGenerateIDValue returns item's identifier. When the item carries
// none, a new one is generated and assigned to it.
func (s *KeyValueStore[V]) GetOrGenerateIDValue(item any) (domain.ID, error) {
	if isNil(item) {
		return "", fmt.Errorf("%w: nil record", domain.ErrNotIdentifiable)
	}

	switch rec := item.(type) {
	case domain.Identifiable:
		if id := rec.RecordID(); !id.IsZero() {
			return id, nil
		}
		id := s.gen.Generate()
		rec.SetRecordID(id)
		return id, nil
	case domain.Identified:
		if id := rec.RecordID(); !id.IsZero() {
			return id, nil
		}
		return "", fmt.Errorf("%w: %T has an empty id and cannot be assigned one", domain.ErrNotIdentifiable, item)
	default:
		return "", fmt.Errorf("%w: %T", domain.ErrNotIdentifiable, item)
	}
}

func isNil(item any) bool {
	if item == nil {
		return true
	}
	switch v := reflect.ValueOf(item); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
