package test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-sqlx/sqlx"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// StartPostgres starts an empty postgres, the schema is created by the store when it connects.
func StartPostgres(ctx context.Context) (err error, conn string, done func()) {
	postgresContainer, err := postgres.Run(ctx,
		"docker.io/postgres:16-alpine",
		postgres.WithDatabase("cropmd"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to start postgres: %w", err), "", func() {}
	}

	connectionString, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return fmt.Errorf("failed to get postgres connection string: %w", err), "", func() {}
	}

	return nil, connectionString, func() {
		if err := testcontainers.TerminateContainer(postgresContainer); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}

// TruncateKV empties the key/value table so tests sharing a database start clean.
func TruncateKV(ctx context.Context, conn string) error {
	db, err := sqlx.ConnectContext(ctx, "postgres", conn)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer (func() { _ = db.Close() })()

	if _, err := db.ExecContext(ctx, `TRUNCATE kv_entries`); err != nil {
		return fmt.Errorf("failed to truncate kv_entries: %w", err)
	}

	return nil
}
