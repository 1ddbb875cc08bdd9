package storage_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/agritalk/cropmd/internal/reviewing"
	"github.com/agritalk/cropmd/internal/reviewing/storage"
)

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	StorageTest(t, ctx, func() reviewing.Storage {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		return storage.NewRedisStore(client, "cropmd:")
	})

	t.Run("keys are stored under the prefix", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer (func() { _ = client.Close() })()
		store := storage.NewRedisStore(client, "cropmd:")

		require.NoError(t, store.Set(ctx, "reviews", []byte(`[]`)))

		actual, err := mr.Get("cropmd:reviews")
		require.NoError(t, err)
		require.Equal(t, `[]`, actual)
	})

	t.Run("a server error is returned and not mistaken for a missing key", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
		defer (func() { _ = client.Close() })()
		store := storage.NewRedisStore(client, "")
		mr.SetError("ERR server is having a bad day")

		_, ok, err := store.Get(ctx, "reviews")

		require.ErrorContains(t, err, "failed to get \"reviews\" from redis")
		require.False(t, ok)
	})
}

func TestOpenRedis(t *testing.T) {
	t.Run("connects with a redis url", func(t *testing.T) {
		mr := miniredis.RunT(t)

		store, err := storage.OpenRedis(context.Background(), "redis://"+mr.Addr()+"/0", "")
		require.NoError(t, err)
		require.NoError(t, store.Close())
	})

	t.Run("returns an error for a url it can't parse", func(t *testing.T) {
		_, err := storage.OpenRedis(context.Background(), "http://nope", "")

		require.ErrorContains(t, err, "failed to parse redis url")
	})
}
