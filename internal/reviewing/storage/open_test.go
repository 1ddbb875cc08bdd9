package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agritalk/cropmd/internal/reviewing/storage"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("memory is the default", func(t *testing.T) {
		backend, err := storage.Open(ctx, "", "")

		require.NoError(t, err)
		require.IsType(t, &storage.MemoryStore{}, backend)
	})

	t.Run("sqlite opens the file from the dsn", func(t *testing.T) {
		backend, err := storage.Open(ctx, storage.DriverSQLite, filepath.Join(t.TempDir(), "reviews.db"))

		require.NoError(t, err)
		require.IsType(t, &storage.SQLStore{}, backend)
		require.NoError(t, backend.Close())
	})

	t.Run("an unknown driver is an error", func(t *testing.T) {
		backend, err := storage.Open(ctx, "asyncstorage", "")

		var driverErr *storage.UnknownDriverError
		require.ErrorAs(t, err, &driverErr)
		require.Equal(t, "asyncstorage", driverErr.Driver)
		require.Nil(t, backend, "expected no backend at all, not one wrapping a nil pointer")
	})
}
