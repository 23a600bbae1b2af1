package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sealstore/internal/codec"
	"sealstore/internal/crypto"
	"sealstore/internal/domain"
	"sealstore/internal/idgen"
)

// EnvLogLevel overrides log_level from the configuration file.
const EnvLogLevel = "SEALSTORE_LOG_LEVEL"

// Config is the contents of a stores.yaml file.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Stores   []StoreConfig `yaml:"stores"`
}

// StoreConfig describes one named store.
type StoreConfig struct {
	Name          string    `yaml:"name"`
	Kind          string    `yaml:"kind"`
	PassphraseEnv string    `yaml:"passphrase_env"`
	Codec         string    `yaml:"codec"`
	IDGenerator   string    `yaml:"id_generator"`
	KDF           KDFConfig `yaml:"kdf"`

	// Passphrase is read from PassphraseEnv or set on the command line.
	Passphrase string `yaml:"-"`
}

// KDFConfig selects and tunes the key derivation function. Zero tunables
// take the defaults of the chosen algorithm.
type KDFConfig struct {
	Algorithm  string `yaml:"algorithm"`
	Iterations int    `yaml:"iterations"`
	N          int    `yaml:"n"`
	R          int    `yaml:"r"`
	P          int    `yaml:"p"`
	Time       uint32 `yaml:"time"`
	MemoryKiB  uint32 `yaml:"memory_kib"`
	Threads    uint8  `yaml:"threads"`
}

// Load reads a YAML file and then overrides fields with environment
// variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file at %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, applies environment overrides and
// validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
	for i := range cfg.Stores {
		s := &cfg.Stores[i]
		if s.PassphraseEnv != "" {
			s.Passphrase = os.Getenv(s.PassphraseEnv)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks names, codecs, generators and KDF settings. Kinds are
// checked when the stores are built, since providers may be added at
// runtime.
func (c *Config) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.Stores))

	for i, s := range c.Stores {
		switch {
		case s.Name == "":
			errs = append(errs, fmt.Errorf("stores[%d]: name is required", i))
		case seen[s.Name]:
			errs = append(errs, fmt.Errorf("stores[%d]: duplicate name %q", i, s.Name))
		}
		seen[s.Name] = true

		if s.Kind == "" {
			errs = append(errs, fmt.Errorf("stores[%d]: kind is required", i))
		}
		if _, err := codec.ByName(s.Codec); err != nil {
			errs = append(errs, fmt.Errorf("stores[%d]: %w", i, err))
		}
		if _, err := s.Generator(); err != nil {
			errs = append(errs, fmt.Errorf("stores[%d]: %w", i, err))
		}
		if _, err := s.KDF.Build(); err != nil {
			errs = append(errs, fmt.Errorf("stores[%d]: %w", i, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}
	return nil
}

// Store returns the configuration of the named store.
func (c *Config) Store(name string) (*StoreConfig, bool) {
	for i := range c.Stores {
		if c.Stores[i].Name == name {
			return &c.Stores[i], true
		}
	}
	return nil, false
}

// Generator returns the configured ID generator. An empty setting selects
// idgen.Default.
func (s StoreConfig) Generator() (domain.IDGenerator, error) {
	switch s.IDGenerator {
	case "", "uuid":
		return idgen.Default(), nil
	case "sequence":
		return idgen.NewSequence(0), nil
	default:
		return nil, fmt.Errorf("unknown id generator %q", s.IDGenerator)
	}
}

// Build returns the configured KDF. An empty algorithm selects
// crypto.DefaultKDF.
func (k KDFConfig) Build() (crypto.KDF, error) {
	switch k.Algorithm {
	case "", "pbkdf2":
		kdf := crypto.PBKDF2{Iterations: crypto.DefaultPBKDF2Iterations}
		if k.Iterations != 0 {
			kdf.Iterations = k.Iterations
		}
		if kdf.Iterations < crypto.MinPBKDF2Iterations {
			return nil, fmt.Errorf("pbkdf2 iterations must be >= %d", crypto.MinPBKDF2Iterations)
		}
		return kdf, nil
	case "scrypt":
		kdf := crypto.DefaultScrypt()
		if k.N != 0 {
			kdf.N = k.N
		}
		if k.R != 0 {
			kdf.R = k.R
		}
		if k.P != 0 {
			kdf.P = k.P
		}
		if kdf.N < 2 || kdf.N&(kdf.N-1) != 0 {
			return nil, fmt.Errorf("scrypt n must be a power of two greater than 1")
		}
		return kdf, nil
	case "argon2id":
		kdf := crypto.DefaultArgon2id()
		if k.Time != 0 {
			kdf.Time = k.Time
		}
		if k.MemoryKiB != 0 {
			kdf.MemoryKiB = k.MemoryKiB
		}
		if k.Threads != 0 {
			kdf.Threads = k.Threads
		}
		if kdf.MemoryKiB < crypto.MinArgon2MemoryKiB {
			return nil, fmt.Errorf("argon2id memory_kib must be >= %d", crypto.MinArgon2MemoryKiB)
		}
		return kdf, nil
	default:
		return nil, fmt.Errorf("unknown kdf algorithm %q", k.Algorithm)
	}
}
