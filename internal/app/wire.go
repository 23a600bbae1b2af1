package app

import (
	"fmt"
	"log/slog"

	"sealstore/internal/codec"
	"sealstore/internal/datamanager"
	"sealstore/internal/domain"
	"sealstore/internal/store"
)

// Wire holds the registry and the stores built from a Config.
type Wire struct {
	Registry *datamanager.Registry
	Config   *Config

	logger *slog.Logger
}

// NewWire builds every store in cfg. Stores built before a failure are
// closed before the error is returned.
func NewWire(cfg *Config, logger *slog.Logger) (*Wire, error) {
	if logger == nil {
		logger = slog.Default()
	}

	w := &Wire{
		Registry: store.NewDataManager(datamanager.WithLogger(logger)),
		Config:   cfg,
		logger:   logger,
	}
	for i := range cfg.Stores {
		if err := w.build(&cfg.Stores[i]); err != nil {
			w.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Wire) build(sc *StoreConfig) error {
	c, err := codec.ByName(sc.Codec)
	if err != nil {
		return fmt.Errorf("store %q: %w", sc.Name, err)
	}
	gen, err := sc.Generator()
	if err != nil {
		return fmt.Errorf("store %q: %w", sc.Name, err)
	}
	model := store.ModelOf[*Record](store.WithCodec(c))

	cfg, err := w.Registry.Config(sc.Name, domain.Kind(sc.Kind))
	if err != nil {
		return err
	}

	switch cfg := cfg.(type) {
	case *store.MemoryConfig:
		cfg.WithModel(model).WithIDGenerator(gen)
	case *store.EncryptedMemoryConfig:
		kdf, err := sc.KDF.Build()
		if err != nil {
			return fmt.Errorf("store %q: %w", sc.Name, err)
		}
		cfg.WithModel(model).WithIDGenerator(gen).WithKDF(kdf).WithPassphrase(sc.Passphrase)
		w.logger.Debug("deriving store key", "store", sc.Name, "kdf", kdf.Name())
	}

	s, err := store.Open[*Record](cfg)
	if err != nil {
		return err
	}
	if es, ok := s.(*store.EncryptedStore[*Record]); ok {
		w.logger.Info("store key derived", "store", sc.Name, "kdf", es.KDF(), "fingerprint", es.Fingerprint())
	}
	return nil
}

// Store returns the named store.
func (w *Wire) Store(name string) (domain.Store[*Record], error) {
	return store.Get[*Record](w.Registry, name)
}

// Close drops every store and wipes their keys.
func (w *Wire) Close() {
	w.Registry.Clear()
}
