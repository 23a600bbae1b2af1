package interfaces

import domaintypes "sealstore/internal/domain/types"

// Store is the contract every store kind implements.
type Store[T any] interface {
	// Read returns the record saved under id, or ok=false when absent.
	Read(id domaintypes.ID) (item T, ok bool, err error)
	// ReadAll returns every record in the store's iteration order.
	ReadAll() ([]T, error)
	// ReadWithFilter returns the records matching filter. Kinds that cannot
	// filter return ErrUnsupportedOperation.
	ReadWithFilter(filter domaintypes.ReadFilter) ([]T, error)
	// Save upserts item under its identifier, generating one when unset.
	Save(item T) error
	// SaveAll saves items in order. It is not atomic.
	SaveAll(items []T) error
	// Remove deletes the record saved under id. Missing ids are ignored.
	Remove(id domaintypes.ID)
	// Reset removes every record.
	Reset()
	// IsEmpty reports whether the store holds no records.
	IsEmpty() bool
}
