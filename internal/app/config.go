package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/agritalk/cropmd/internal/platform/i18n"
	"github.com/agritalk/cropmd/internal/platform/validate"
	"github.com/agritalk/cropmd/internal/reviewing"
	"github.com/agritalk/cropmd/internal/reviewing/storage"
)

type Config struct {
	Addr     string `yaml:"addr" validate:"required"`
	LogLevel string `yaml:"logLevel" validate:"oneof=debug info warn error"`
	LogJSON  bool   `yaml:"logJSON"`
	// Language is used until the user picks one, EN or TL.
	Language string        `yaml:"language" validate:"oneof=EN TL"`
	Storage  StorageConfig `yaml:"storage"`
	Persist  PersistConfig `yaml:"persist"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" validate:"oneof=memory sqlite postgres redis"`
	// DSN is a file path for sqlite, a connection string for postgres and a redis:// URL for redis.
	DSN string `yaml:"dsn" validate:"required_unless=Driver memory"`
	Key string `yaml:"key" validate:"required"`
}

type PersistConfig struct {
	MaxRetries     uint64        `yaml:"maxRetries"`
	InitialBackoff time.Duration `yaml:"initialBackoff" validate:"gt=0"`
}

func NewConfig() Config {
	return Config{
		Addr:     "127.0.0.1:3000",
		LogLevel: "info",
		Language: string(i18n.English),
		Storage: StorageConfig{
			Driver: storage.DriverMemory,
			Key:    reviewing.DefaultKey,
		},
		Persist: PersistConfig{
			MaxRetries:     3,
			InitialBackoff: 100 * time.Millisecond,
		},
	}
}

// LoadConfig starts from NewConfig, applies the YAML file at path if there is
// one, and then any CROPMD_* environment variables.
// A path that doesn't exist is fine, the defaults are used.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.Debug("no config file, using defaults", "path", path)
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config file %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file %q: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	str("CROPMD_ADDR", &c.Addr)
	str("CROPMD_LOG_LEVEL", &c.LogLevel)
	str("CROPMD_LANGUAGE", &c.Language)
	str("CROPMD_STORAGE_DRIVER", &c.Storage.Driver)
	str("CROPMD_STORAGE_DSN", &c.Storage.DSN)
	str("CROPMD_STORAGE_KEY", &c.Storage.Key)

	if v, ok := lookup("CROPMD_LOG_JSON"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("failed to parse CROPMD_LOG_JSON: %w", err)
		}
		c.LogJSON = b
	}
	if v, ok := lookup("CROPMD_PERSIST_MAX_RETRIES"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse CROPMD_PERSIST_MAX_RETRIES: %w", err)
		}
		c.Persist.MaxRetries = n
	}
	if v, ok := lookup("CROPMD_PERSIST_INITIAL_BACKOFF"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("failed to parse CROPMD_PERSIST_INITIAL_BACKOFF: %w", err)
		}
		c.Persist.InitialBackoff = d
	}

	return nil
}

func (c Config) Validate(ctx context.Context) error {
	if err := validate.Struct(ctx, c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// SlogLevel returns LogLevel as a slog.Level, info when it isn't one.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}
