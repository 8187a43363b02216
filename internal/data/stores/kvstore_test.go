package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/innview/internal/core/kv"
	"github.com/colonyops/innview/internal/data/db"
)

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestKVStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewKVStore(openTestDB(t))

	type position struct {
		Owner string `json:"owner"`
		Index int    `json:"index"`
	}

	err := store.Set(ctx, "last", position{Owner: "hotel:harbor-view", Index: 4})
	require.NoError(t, err)

	var got position
	require.NoError(t, store.Get(ctx, "last", &got))
	assert.Equal(t, "hotel:harbor-view", got.Owner)
	assert.Equal(t, 4, got.Index)
}

func TestKVStore_GetNotFound(t *testing.T) {
	store := NewKVStore(openTestDB(t))

	var v string
	err := store.Get(context.Background(), "nonexistent", &v)
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestKVStore_SetOverwrite(t *testing.T) {
	ctx := context.Background()
	store := NewKVStore(openTestDB(t))

	require.NoError(t, store.Set(ctx, "key", "first"))
	require.NoError(t, store.Set(ctx, "key", "second"))

	var got string
	require.NoError(t, store.Get(ctx, "key", &got))
	assert.Equal(t, "second", got)
}

func TestKVStore_DeleteAndHas(t *testing.T) {
	ctx := context.Background()
	store := NewKVStore(openTestDB(t))

	has, err := store.Has(ctx, "key")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, store.Set(ctx, "key", true))
	has, err = store.Has(ctx, "key")
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, store.Delete(ctx, "key"))
	require.NoError(t, store.Delete(ctx, "key"), "deleting a missing key is not an error")

	has, err = store.Has(ctx, "key")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestKVStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewKVStore(openTestDB(t))

	require.NoError(t, store.SetTTL(ctx, "ephemeral", "gone", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	var v string
	err := store.Get(ctx, "ephemeral", &v)
	require.ErrorIs(t, err, kv.ErrNotFound)

	has, err := store.Has(ctx, "ephemeral")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestKVStore_TTLNotExpired(t *testing.T) {
	ctx := context.Background()
	store := NewKVStore(openTestDB(t))

	require.NoError(t, store.SetTTL(ctx, "alive", "here", time.Hour))

	var got string
	require.NoError(t, store.Get(ctx, "alive", &got))
	assert.Equal(t, "here", got)
}

func TestKVStore_SweepExpired(t *testing.T) {
	ctx := context.Background()
	store := NewKVStore(openTestDB(t))

	require.NoError(t, store.Set(ctx, "permanent", "stays"))
	require.NoError(t, store.SetTTL(ctx, "expired-1", "goes", time.Millisecond))
	require.NoError(t, store.SetTTL(ctx, "expired-2", "goes", time.Millisecond))
	require.NoError(t, store.SetTTL(ctx, "later", "stays", time.Hour))

	time.Sleep(5 * time.Millisecond)

	n, err := store.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	for _, key := range []string{"permanent", "later"} {
		has, err := store.Has(ctx, key)
		require.NoError(t, err)
		assert.True(t, has, key)
	}
}
