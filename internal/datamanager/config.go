package datamanager

import (
	"fmt"

	"sealstore/internal/domain"
)

// Provider produces fresh configurations for one store kind.
type Provider interface {
	NewConfiguration() Configuration
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() Configuration

// NewConfiguration calls f.
func (f ProviderFunc) NewConfiguration() Configuration { return f() }

// Configuration describes how to build one named store. Implementations
// embed Base and supply Build; Base supplies the rest.
type Configuration interface {
	// Name is the store name the configuration was requested for.
	Name() string
	// Kind is the store kind the configuration was requested for.
	Kind() domain.Kind
	// Build validates the parameters and constructs the store. The registry
	// is not locked while it runs, so Build may look up other stores; it
	// must not finalize a configuration for its own name.
	Build() (any, error)
	// Store finalizes the configuration: it returns the existing store for
	// the name, or builds and registers a new one.
	Store() (any, error)

	base() *Base
}

// Base carries the state every configuration shares. Embed it by value.
type Base struct {
	name     string
	kind     domain.Kind
	registry *Registry
	self     Configuration
}

// Name returns the store name.
func (b *Base) Name() string { return b.name }

// Kind returns the store kind.
func (b *Base) Kind() domain.Kind { return b.kind }

// Store finalizes the configuration through the registry that issued it.
func (b *Base) Store() (any, error) {
	if b.registry == nil || b.self == nil {
		return nil, fmt.Errorf("%w: configuration was not issued by a registry", domain.ErrConfiguration)
	}
	return b.registry.finalize(b.self)
}

// Missing returns the error for a required parameter that was never set.
func (b *Base) Missing(parameter string) error {
	return &domain.MissingParameterError{Store: b.name, Parameter: parameter}
}

func (b *Base) base() *Base { return b }
