// Package idgen synthesizes identifiers for records saved without one.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"

	"sealstore/internal/domain"
)

// UUID generates time-ordered UUIDv7 identifiers.
type UUID struct{}

// Generate returns a fresh UUIDv7 string.
func (UUID) Generate() domain.ID {
	return domain.ID(uuid.Must(uuid.NewV7()).String())
}

// Sequence generates decimal identifiers counting up from 1. It is safe for
// concurrent use.
type Sequence struct {
	next atomic.Uint64
}

// NewSequence returns a Sequence whose first identifier is start+1.
func NewSequence(start uint64) *Sequence {
	s := &Sequence{}
	s.next.Store(start)
	return s
}

// Generate returns the next identifier in the sequence.
func (s *Sequence) Generate() domain.ID {
	return domain.ID(strconv.FormatUint(s.next.Add(1), 10))
}

// Default returns the generator used when a configuration names none.
func Default() domain.IDGenerator { return UUID{} }

// Compile-time assertions that the generators implement domain.IDGenerator.
var (
	_ domain.IDGenerator = UUID{}
	_ domain.IDGenerator = (*Sequence)(nil)
)
