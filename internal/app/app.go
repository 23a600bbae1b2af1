package app

import (
	"fmt"

	"sealstore/internal/domain"
	"sealstore/internal/store"
)

// App runs the CLI operations against a Wire.
type App struct {
	wire *Wire
}

func New(w *Wire) *App {
	return &App{wire: w}
}

// StoreStatus describes one configured store.
type StoreStatus struct {
	Name        string      `json:"name"`
	Kind        domain.Kind `json:"kind"`
	Empty       bool        `json:"empty"`
	Fingerprint string      `json:"fingerprint,omitempty"`
}

// Check reports every configured store in configuration order.
func (a *App) Check() ([]StoreStatus, error) {
	out := make([]StoreStatus, 0, len(a.wire.Config.Stores))
	for _, sc := range a.wire.Config.Stores {
		s, err := a.wire.Store(sc.Name)
		if err != nil {
			return nil, err
		}
		status := StoreStatus{Name: sc.Name, Kind: domain.Kind(sc.Kind), Empty: s.IsEmpty()}
		if es, ok := s.(*store.EncryptedStore[*Record]); ok {
			status.Fingerprint = es.Fingerprint()
		}
		out = append(out, status)
	}
	return out, nil
}

// Seal saves records into the named store and reads them back by ID.
// Records without an ID are assigned one by the store.
func (a *App) Seal(name string, records []*Record) ([]*Record, error) {
	s, err := a.wire.Store(name)
	if err != nil {
		return nil, err
	}
	if err := s.SaveAll(records); err != nil {
		return nil, fmt.Errorf("failed to save records into %q: %w", name, err)
	}

	out := make([]*Record, 0, len(records))
	for _, r := range records {
		got, ok, err := s.Read(r.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: record %q in store %q", domain.ErrNotFound, r.ID, name)
		}
		out = append(out, got)
	}
	return out, nil
}

// Find runs a filtered read against the named store.
func (a *App) Find(name string, filter domain.ReadFilter) ([]*Record, error) {
	s, err := a.wire.Store(name)
	if err != nil {
		return nil, err
	}
	return s.ReadWithFilter(filter)
}
