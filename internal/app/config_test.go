package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("a missing file gives the defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

		require.NoError(t, err)
		require.Equal(t, NewConfig(), cfg)
		require.NoError(t, cfg.Validate(context.Background()))
	})

	t.Run("values in the file replace the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cropmd.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
addr: 0.0.0.0:8080
language: TL
storage:
  driver: sqlite
  dsn: /var/lib/cropmd/reviews.db
persist:
  maxRetries: 5
  initialBackoff: 250ms
`), 0o600))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, "0.0.0.0:8080", cfg.Addr)
		require.Equal(t, "TL", cfg.Language)
		require.Equal(t, StorageConfig{Driver: "sqlite", DSN: "/var/lib/cropmd/reviews.db", Key: "reviews"}, cfg.Storage)
		require.Equal(t, PersistConfig{MaxRetries: 5, InitialBackoff: 250 * time.Millisecond}, cfg.Persist)
		require.Equal(t, "info", cfg.LogLevel, "expected unset values to keep their default")
	})

	t.Run("the environment wins over the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cropmd.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: 0.0.0.0:8080\n"), 0o600))
		t.Setenv("CROPMD_ADDR", "127.0.0.1:9090")
		t.Setenv("CROPMD_PERSIST_MAX_RETRIES", "0")
		t.Setenv("CROPMD_LOG_JSON", "true")

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, "127.0.0.1:9090", cfg.Addr)
		require.Equal(t, uint64(0), cfg.Persist.MaxRetries)
		require.True(t, cfg.LogJSON)
	})

	t.Run("a broken file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cropmd.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: [\n"), 0o600))

		_, err := LoadConfig(path)

		require.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("a bad duration in the environment is an error", func(t *testing.T) {
		t.Setenv("CROPMD_PERSIST_INITIAL_BACKOFF", "soon")

		_, err := LoadConfig("")

		require.ErrorContains(t, err, "failed to parse CROPMD_PERSIST_INITIAL_BACKOFF")
	})
}

func TestConfig_Validate(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name   string
		modify func(c *Config)
	}{
		{"an unknown storage driver", func(c *Config) { c.Storage.Driver = "dynamodb" }},
		{"sqlite without a path", func(c *Config) { c.Storage.Driver = "sqlite" }},
		{"an unknown language", func(c *Config) { c.Language = "FR" }},
		{"an unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"no storage key", func(c *Config) { c.Storage.Key = "" }},
		{"no backoff", func(c *Config) { c.Persist.InitialBackoff = 0 }},
	} {
		t.Run(tc.name+" is invalid", func(t *testing.T) {
			cfg := NewConfig()
			tc.modify(&cfg)

			require.ErrorContains(t, cfg.Validate(ctx), "invalid config")
		})
	}

	t.Run("memory needs no DSN", func(t *testing.T) {
		require.NoError(t, NewConfig().Validate(ctx))
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "debug"
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	cfg.LogLevel = "nonsense"
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
