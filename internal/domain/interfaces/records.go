package interfaces

import domaintypes "sealstore/internal/domain/types"

// Identified is a record that exposes its identifier.
type Identified interface {
	RecordID() domaintypes.ID
}

// Identifiable is a record whose identifier can also be assigned, so a
// store can generate one on first save.
type Identifiable interface {
	Identified
	SetRecordID(id domaintypes.ID)
}

// IDGenerator synthesizes identifiers for records saved without one.
type IDGenerator interface {
	Generate() domaintypes.ID
}
