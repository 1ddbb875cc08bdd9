package storage

import (
	"context"

	"github.com/agritalk/cropmd/internal/reviewing"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// RedisKeyPrefix namespaces the keys Open uses in a shared redis.
const RedisKeyPrefix = "cropmd:"

// Backend is a reviewing.Storage that holds on to a connection.
type Backend interface {
	reviewing.Storage
	Close() error
}

var (
	_ Backend = (*MemoryStore)(nil)
	_ Backend = (*SQLStore)(nil)
	_ Backend = (*RedisStore)(nil)
)

// Open creates the backend for driver. dsn is a file path for sqlite, a
// connection string for postgres, a redis:// URL for redis, and ignored for memory.
func Open(ctx context.Context, driver, dsn string) (Backend, error) {
	switch driver {
	case DriverMemory, "":
		return NewMemoryStore(), nil
	case DriverSQLite:
		return backend(NewSQLiteStore(ctx, dsn))
	case DriverPostgres:
		return backend(NewPostgresStore(ctx, dsn))
	case DriverRedis:
		return backend(OpenRedis(ctx, dsn, RedisKeyPrefix))
	default:
		return nil, &UnknownDriverError{Driver: driver}
	}
}

// backend avoids handing out a non-nil Backend holding a nil pointer on error.
func backend[T Backend](b T, err error) (Backend, error) {
	if err != nil {
		return nil, err
	}

	return b, nil
}
