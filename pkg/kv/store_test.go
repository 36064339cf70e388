package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Get(ctx, "users")
	require.True(t, IsNotFound(err))

	require.NoError(t, store.Set(ctx, "users", `[]`))
	value, err := store.Get(ctx, "users")
	require.NoError(t, err)
	require.Equal(t, `[]`, value)

	require.NoError(t, store.Delete(ctx, "users"))
	_, err = store.Get(ctx, "users")
	require.True(t, IsNotFound(err))
}

func TestMemoryStoreDeleteAbsentKey(t *testing.T) {
	store := NewMemory()
	require.NoError(t, store.Delete(context.Background(), "missing"))
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shop-data.json")

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "isLoggedIn", "true"))
	require.NoError(t, store.Set(ctx, "nextUserId", "2"))
	require.NoError(t, store.Delete(ctx, "isLoggedIn"))

	reopened, err := NewFile(path)
	require.NoError(t, err)

	value, err := reopened.Get(ctx, "nextUserId")
	require.NoError(t, err)
	require.Equal(t, "2", value)

	_, err = reopened.Get(ctx, "isLoggedIn")
	require.True(t, IsNotFound(err))
}

func TestFileStoreRequiresPath(t *testing.T) {
	_, err := NewFile("")
	require.Error(t, err)
}
