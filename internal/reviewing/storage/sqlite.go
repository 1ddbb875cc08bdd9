package storage

import (
	"context"
	"fmt"

	"github.com/go-sqlx/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// NewSQLiteStore opens (or creates) the database file at path and migrates it.
// This is the on-device option: one file, no server.
func NewSQLiteStore(ctx context.Context, path string) (*SQLStore, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %q: %w", path, err)
	}
	// sqlite allows a single writer, so don't let database/sql hand out more connections.
	db.SetMaxOpenConns(1)

	if err := Migrate(ctx, db.DB, goose.DialectSQLite3); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLStore(db), nil
}
