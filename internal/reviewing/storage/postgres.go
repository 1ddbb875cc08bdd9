package storage

import (
	"context"
	"fmt"

	"github.com/go-sqlx/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

// NewPostgresStore connects to dsn and migrates the schema before returning.
func NewPostgresStore(ctx context.Context, dsn string) (*SQLStore, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := Migrate(ctx, db.DB, goose.DialectPostgres); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLStore(db), nil
}
