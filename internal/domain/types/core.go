package types

// ID uniquely identifies one record within one store instance.
type ID string

// String returns the string form of the identifier.
func (id ID) String() string { return string(id) }

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool { return id == "" }

// Kind tags which concrete store implementation a configuration builds.
type Kind string

// String returns the string form of the kind.
func (k Kind) String() string { return string(k) }
