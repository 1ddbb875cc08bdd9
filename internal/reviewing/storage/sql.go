package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-sqlx/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLStore keeps values in the kv_entries table of a postgres or sqlite database.
type SQLStore struct {
	db *sqlx.DB
}

// NewSQLStore wraps an already migrated database, see Migrate.
func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Migrate brings the schema up to date.
func Migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrNoKey
	}

	var value string
	err := s.db.GetContext(ctx, &value, s.db.Rebind(`SELECT value FROM kv_entries WHERE key_name = ?`), key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to get %q: %w", key, err)
	}

	return []byte(value), true, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrNoKey
	}

	_, err := s.db.ExecContext(
		ctx,
		s.db.Rebind(`INSERT INTO kv_entries (key_name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key_name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`),
		key,
		string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}

	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
