package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agritalk/cropmd/internal/reviewing"
	"github.com/agritalk/cropmd/internal/reviewing/storage"
)

// StorageTest is the behaviour every reviewing.Storage has to have.
func StorageTest(t *testing.T, ctx context.Context, storeFactory func() reviewing.Storage) {
	t.Run("Get", func(t *testing.T) {
		t.Run("returns not ok and no error when nothing has been stored under the key", func(t *testing.T) {
			store := storeFactory()

			value, ok, err := store.Get(ctx, "reviews")

			require.NoError(t, err, "expected a missing key to not be an error")
			require.False(t, ok)
			require.Nil(t, value)
		})

		t.Run("returns an error for a blank key", func(t *testing.T) {
			store := storeFactory()

			_, _, err := store.Get(ctx, "")

			require.ErrorIs(t, err, storage.ErrNoKey)
		})
	})

	t.Run("Set", func(t *testing.T) {
		t.Run("after setting, gets back the same value", func(t *testing.T) {
			store := storeFactory()
			expected := []byte(`[{"id":"0193dd86-b07e-7e73-a77e-724bee1fa176","rating":5,"feedback":"Great"}]`)

			require.NoError(t, store.Set(ctx, "reviews", expected))
			actual, ok, err := store.Get(ctx, "reviews")

			require.NoError(t, err)
			require.True(t, ok, "expected the value to be found after setting it")
			require.Equal(t, expected, actual)
		})

		t.Run("a second set replaces the value", func(t *testing.T) {
			store := storeFactory()

			require.NoError(t, store.Set(ctx, "reviews", []byte(`[1]`)))
			require.NoError(t, store.Set(ctx, "reviews", []byte(`[2]`)))
			actual, ok, err := store.Get(ctx, "reviews")

			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, []byte(`[2]`), actual, "expected the latest value to win")
		})

		t.Run("keys don't see each other's values", func(t *testing.T) {
			store := storeFactory()

			require.NoError(t, store.Set(ctx, "reviews", []byte(`[]`)))
			_, ok, err := store.Get(ctx, "other")

			require.NoError(t, err)
			require.False(t, ok)
		})

		t.Run("changing the passed in buffer afterwards doesn't change what's stored", func(t *testing.T) {
			store := storeFactory()
			buf := []byte(`[]`)

			require.NoError(t, store.Set(ctx, "reviews", buf))
			buf[0] = '{'
			actual, _, err := store.Get(ctx, "reviews")

			require.NoError(t, err)
			require.Equal(t, []byte(`[]`), actual)
		})

		t.Run("returns an error for a blank key", func(t *testing.T) {
			store := storeFactory()

			require.ErrorIs(t, store.Set(ctx, "", []byte(`[]`)), storage.ErrNoKey)
		})
	})

	t.Run("a review store on top of it survives a restart", func(t *testing.T) {
		backend := storeFactory()

		first := reviewing.NewStore(backend)
		require.NoError(t, first.Load(ctx))
		_, _, err := first.Submit(ctx, reviewing.Draft{Rating: 5, Feedback: "Great"})
		require.NoError(t, err)
		_, _, err = first.Submit(ctx, reviewing.Draft{Rating: 3, Feedback: "OK"})
		require.NoError(t, err)
		require.NoError(t, first.Flush(ctx))
		require.NoError(t, first.Close())

		second := reviewing.NewStore(backend)
		require.NoError(t, second.Load(ctx))
		defer (func() { _ = second.Close() })()

		require.Equal(t, first.Reviews(), second.Reviews(), "expected the same reviews in the same order after reloading")
	})
}
