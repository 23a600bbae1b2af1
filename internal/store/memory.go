package store

import "sealstore/internal/domain"

// MemoryStore keeps records as-is in a KeyValueStore.
type MemoryStore[T any] struct {
	kv *KeyValueStore[T]
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore[T any](gen domain.IDGenerator) *MemoryStore[T] {
	return &MemoryStore[T]{kv: NewKeyValueStore[T](gen)}
}

func (s *MemoryStore[T]) Read(id domain.ID) (T, bool, error) {
	item, ok := s.kv.Read(id)
	return item, ok, nil
}

func (s *MemoryStore[T]) ReadAll() ([]T, error) {
	return s.kv.ReadAll(), nil
}

// ReadWithFilter returns the records matching filter, in store order.
func (s *MemoryStore[T]) ReadWithFilter(filter domain.ReadFilter) ([]T, error) {
	return applyFilter(s.kv.ReadAll(), filter)
}

func (s *MemoryStore[T]) Save(item T) error {
	id, err := s.kv.GetOrGenerateIDValue(item)
	if err != nil {
		return err
	}
	s.kv.Save(id, item)
	return nil
}

func (s *MemoryStore[T]) SaveAll(items []T) error {
	for _, item := range items {
		if err := s.Save(item); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStore[T]) Remove(id domain.ID) { s.kv.Remove(id) }

func (s *MemoryStore[T]) Reset() { s.kv.Reset() }

func (s *MemoryStore[T]) IsEmpty() bool { return s.kv.IsEmpty() }

// Compile-time assertion that MemoryStore implements domain.Store.
var _ domain.Store[any] = (*MemoryStore[any])(nil)
