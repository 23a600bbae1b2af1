package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every store kind.
var (
	// ErrConfiguration is returned for unknown kinds, empty names, missing
	// parameters and typed lookups that do not match the stored instance.
	ErrConfiguration = errors.New("store configuration error")
	// ErrInvalidKey is returned when stored ciphertext cannot be opened with
	// the store's key.
	ErrInvalidKey = errors.New("invalid key or corrupted record")
	// ErrUnsupportedOperation is returned by operations a kind cannot serve,
	// such as filtered reads on encrypted stores.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrNotFound is returned by lookups that require a present value.
	ErrNotFound = errors.New("not found")
	// ErrNotIdentifiable is returned when a record exposes no identifier.
	ErrNotIdentifiable = errors.New("record has no identifier")
)

// MissingParameterError reports a configuration finalized without a
// required parameter. It matches ErrConfiguration.
type MissingParameterError struct {
	Store     string
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%v: store %q: missing %s", ErrConfiguration, e.Store, e.Parameter)
}

// Unwrap lets errors.Is match ErrConfiguration.
func (e *MissingParameterError) Unwrap() error { return ErrConfiguration }
