package datamanager

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"sealstore/internal/domain"
)

// Registry maps store kinds to providers and store names to live stores.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[domain.Kind]Provider
	stores    map[string]any
	building  map[string]chan struct{}
	logger    *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger for registry events. By default events are
// discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Registry with no kinds registered.
func New(opts ...Option) *Registry {
	r := &Registry{
		providers: make(map[domain.Kind]Provider),
		stores:    make(map[string]any),
		building:  make(map[string]chan struct{}),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterProvider installs the provider for kind, replacing any previous
// one.
func (r *Registry) RegisterProvider(kind domain.Kind, provider Provider) {
	r.mu.Lock()
	_, replaced := r.providers[kind]
	r.providers[kind] = provider
	r.mu.Unlock()

	r.logger.Debug("store kind registered", "kind", kind, "replaced", replaced)
}

// Config returns a fresh configuration for kind, bound to name.
func (r *Registry) Config(name string, kind domain.Kind) (Configuration, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: store name is empty", domain.ErrConfiguration)
	}

	r.mu.RLock()
	provider, exists := r.providers[kind]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: unknown store kind %q", domain.ErrConfiguration, kind)
	}

	cfg := provider.NewConfiguration()
	if cfg == nil {
		return nil, fmt.Errorf("%w: provider for kind %q returned no configuration", domain.ErrConfiguration, kind)
	}

	b := cfg.base()
	b.name = name
	b.kind = kind
	b.registry = r
	b.self = cfg
	return cfg, nil
}

// Get returns the store finalized under name.
func (r *Registry) Get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.stores[name]
	return s, exists
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []domain.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]domain.Kind, 0, len(r.providers))
	for kind := range r.providers {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Names returns the names of the live stores, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.stores))
	for name := range r.stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unregister removes the store saved under name, closing it when it
// implements io.Closer.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	s, exists := r.stores[name]
	delete(r.stores, name)
	r.mu.Unlock()

	if !exists {
		return fmt.Errorf("%w: store %q", domain.ErrNotFound, name)
	}
	r.close(name, s)
	return nil
}

// Clear removes every store, closing those that implement io.Closer.
// Registered kinds are kept.
func (r *Registry) Clear() {
	r.mu.Lock()
	stores := r.stores
	r.stores = make(map[string]any)
	r.mu.Unlock()

	for name, s := range stores {
		r.close(name, s)
	}
}

// finalize returns the store registered under cfg's name, building it when
// absent. Build runs without the registry lock; concurrent finalizations of
// the same name wait for the one in flight and build only if it failed.
func (r *Registry) finalize(cfg Configuration) (any, error) {
	name := cfg.Name()

	for {
		r.mu.Lock()
		if s, exists := r.stores[name]; exists {
			r.mu.Unlock()
			r.logger.Debug("store exists, configuration ignored", "store", name, "kind", cfg.Kind())
			return s, nil
		}
		wait, inFlight := r.building[name]
		if !inFlight {
			done := make(chan struct{})
			r.building[name] = done
			r.mu.Unlock()
			return r.build(cfg, done)
		}
		r.mu.Unlock()

		<-wait
	}
}

func (r *Registry) build(cfg Configuration, done chan struct{}) (s any, err error) {
	name := cfg.Name()

	defer func() {
		r.mu.Lock()
		delete(r.building, name)
		if err == nil && s != nil {
			r.stores[name] = s
		}
		r.mu.Unlock()
		close(done)
	}()

	s, err = cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build store %q: %w", name, err)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: kind %q built no store for %q", domain.ErrConfiguration, cfg.Kind(), name)
	}

	r.logger.Info("store created", "store", name, "kind", cfg.Kind())
	return s, nil
}

func (r *Registry) close(name string, s any) {
	c, ok := s.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		r.logger.Warn("store close failed", "store", name, "error", err)
	}
}
