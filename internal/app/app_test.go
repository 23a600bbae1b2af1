package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealstore/internal/app"
	"sealstore/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *app.Config {
	return &app.Config{Stores: []app.StoreConfig{
		{
			Name:       "secrets",
			Kind:       "encrypted-memory",
			Codec:      "cbor",
			Passphrase: "hunter2",
			KDF:        app.KDFConfig{Iterations: 1000},
		},
		{Name: "cache", Kind: "memory", IDGenerator: "sequence"},
	}}
}

func newApp(t *testing.T, cfg *app.Config) *app.App {
	t.Helper()
	w, err := app.NewWire(cfg, newTestLogger())
	require.NoError(t, err)
	t.Cleanup(w.Close)
	return app.New(w)
}

func TestNewWire_BuildsEveryStore(t *testing.T) {
	w, err := app.NewWire(testConfig(), newTestLogger())
	require.NoError(t, err)
	t.Cleanup(w.Close)

	assert.Equal(t, []string{"cache", "secrets"}, w.Registry.Names())
	_, err = w.Store("secrets")
	require.NoError(t, err)
	_, err = w.Store("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewWire_Failures(t *testing.T) {
	t.Run("missing passphrase", func(t *testing.T) {
		cfg := testConfig()
		cfg.Stores[0].Passphrase = ""

		_, err := app.NewWire(cfg, newTestLogger())
		var missing *domain.MissingParameterError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "passphrase", missing.Parameter)
		assert.Equal(t, "secrets", missing.Store)
	})

	t.Run("unknown kind", func(t *testing.T) {
		cfg := testConfig()
		cfg.Stores[1].Kind = "sqlite"

		_, err := app.NewWire(cfg, newTestLogger())
		assert.ErrorIs(t, err, domain.ErrConfiguration)
		assert.ErrorContains(t, err, "sqlite")
	})
}

func TestApp_Check(t *testing.T) {
	a := newApp(t, testConfig())

	status, err := a.Check()
	require.NoError(t, err)
	require.Len(t, status, 2)

	assert.Equal(t, "secrets", status[0].Name)
	assert.Equal(t, domain.Kind("encrypted-memory"), status[0].Kind)
	assert.True(t, status[0].Empty)
	assert.Len(t, status[0].Fingerprint, 20)

	assert.Equal(t, "cache", status[1].Name)
	assert.Empty(t, status[1].Fingerprint)
}

func TestApp_Seal(t *testing.T) {
	input := []byte(`[
		{"id": "db", "user": "admin", "password": "s3cret", "port": 5432},
		{"note": "generated id", "tags": {"env": "prod"}}
	]`)

	for _, name := range []string{"secrets", "cache"} {
		t.Run(name, func(t *testing.T) {
			a := newApp(t, testConfig())
			records, err := app.DecodeRecords(input)
			require.NoError(t, err)

			out, err := a.Seal(name, records)
			require.NoError(t, err)
			require.Len(t, out, 2)

			assert.Equal(t, domain.ID("db"), out[0].ID)
			assert.Equal(t, "admin", out[0].Fields["user"])
			assert.EqualValues(t, 5432, out[0].Fields["port"])
			assert.NotEmpty(t, out[1].ID)

			tags, ok := out[1].Fields["tags"].(map[string]any)
			require.True(t, ok, "got %T", out[1].Fields["tags"])
			assert.Equal(t, "prod", tags["env"])

			b, err := json.Marshal(out)
			require.NoError(t, err)
			assert.Contains(t, string(b), `"id":"db"`)
		})
	}
}

func TestApp_Find(t *testing.T) {
	a := newApp(t, testConfig())
	records, err := app.DecodeRecords([]byte(`[{"id":"1","env":"prod"},{"id":"2","env":"dev"}]`))
	require.NoError(t, err)

	for _, name := range []string{"secrets", "cache"} {
		_, err := a.Seal(name, records)
		require.NoError(t, err)
	}

	found, err := a.Find("cache", domain.ReadFilter{Where: map[string]any{"env": "dev"}})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, domain.ID("2"), found[0].ID)

	_, err = a.Find("secrets", domain.ReadFilter{Where: map[string]any{"env": "dev"}})
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)
}

func TestNewWire_LogsKeyDerivation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	w, err := app.NewWire(testConfig(), logger)
	require.NoError(t, err)
	t.Cleanup(w.Close)

	assert.Contains(t, buf.String(), "store key derived")
	assert.Contains(t, buf.String(), "kdf=pbkdf2")
	assert.NotContains(t, buf.String(), "hunter2")
}
