// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/harshdhankhar10/Event-finder/internal/model"
)

func newTestDB(t *testing.T) *bolt.DB {
	t.Helper()
	bdb, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { bdb.Close() })
	return bdb
}

func TestFavoriteStore_addListRemove(t *testing.T) {
	ctx := context.Background()
	store, err := NewFavoriteStore(newTestDB(t))
	require.NoError(t, err)

	require.NoError(t, store.AddFavorite(ctx, &model.Event{ID: "e1", Name: "Open Air"}))

	favorites, err := store.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Open Air", favorites[0].Name)

	ok, err := store.IsFavorite(ctx, "e1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.RemoveFavorite(ctx, "e1"))

	ok, err = store.IsFavorite(ctx, "e1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavoriteStore_idempotence(t *testing.T) {
	ctx := context.Background()
	store, err := NewFavoriteStore(newTestDB(t))
	require.NoError(t, err)

	require.NoError(t, store.AddFavorite(ctx, &model.Event{ID: "e1", Name: "First insert"}))
	require.NoError(t, store.AddFavorite(ctx, &model.Event{ID: "e1", Name: "Second insert"}))
	require.NoError(t, store.RemoveFavorite(ctx, "absent"))

	favorites, err := store.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "First insert", favorites[0].Name)
}

func TestFavoriteStore_preservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store, err := NewFavoriteStore(newTestDB(t))
	require.NoError(t, err)

	for _, id := range []string{"z", "m", "a"} {
		require.NoError(t, store.AddFavorite(ctx, &model.Event{ID: id}))
	}

	favorites, err := store.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 3)
	assert.Equal(t, "z", favorites[0].ID)
	assert.Equal(t, "m", favorites[1].ID)
	assert.Equal(t, "a", favorites[2].ID)
}

func TestFavoriteStore_corruptCollectionResets(t *testing.T) {
	ctx := context.Background()
	bdb := newTestDB(t)

	require.NoError(t, bdb.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketFavorite))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(keyFavorites), []byte("{not json"))
	}))

	store, err := NewFavoriteStore(bdb)
	require.NoError(t, err)

	favorites, err := store.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}
