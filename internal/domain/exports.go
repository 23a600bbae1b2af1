package domain

import (
	interfaces "sealstore/internal/domain/interfaces"
	types "sealstore/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ID         = types.ID
	Kind       = types.Kind
	ReadFilter = types.ReadFilter
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Identified   = interfaces.Identified
	Identifiable = interfaces.Identifiable
	IDGenerator  = interfaces.IDGenerator
)

// Store is the contract every store kind implements.
type Store[T any] = interfaces.Store[T]
