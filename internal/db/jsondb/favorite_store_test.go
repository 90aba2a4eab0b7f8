// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshdhankhar10/Event-finder/internal/model"
)

func newTestFavoriteStore(t *testing.T) (*FavoriteStore, string) {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "favorites.json")
	store, err := NewFavoriteStore(filename)
	require.NoError(t, err)
	return store, filename
}

func TestFavoriteStore_addListRemove(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestFavoriteStore(t)

	event := &model.Event{ID: "e1", Name: "Open Air", Date: "2099-01-01", Time: "20:00"}
	require.NoError(t, store.AddFavorite(ctx, event))

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

	favorites, err = store.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavoriteStore_addIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestFavoriteStore(t)

	event := &model.Event{ID: "e1", Name: "First insert"}
	require.NoError(t, store.AddFavorite(ctx, event))
	require.NoError(t, store.AddFavorite(ctx, &model.Event{ID: "e1", Name: "Second insert"}))

	favorites, err := store.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	// The first snapshot wins; a duplicate insert is a no-op.
	assert.Equal(t, "First insert", favorites[0].Name)
}

func TestFavoriteStore_removeAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestFavoriteStore(t)

	require.NoError(t, store.AddFavorite(ctx, &model.Event{ID: "e1"}))
	require.NoError(t, store.RemoveFavorite(ctx, "does-not-exist"))

	favorites, err := store.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestFavoriteStore_preservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestFavoriteStore(t)

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.AddFavorite(ctx, &model.Event{ID: id}))
	}

	favorites, err := store.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 3)
	assert.Equal(t, "c", favorites[0].ID)
	assert.Equal(t, "a", favorites[1].ID)
	assert.Equal(t, "b", favorites[2].ID)
}

func TestFavoriteStore_survivesReload(t *testing.T) {
	ctx := context.Background()
	store, filename := newTestFavoriteStore(t)

	require.NoError(t, store.AddFavorite(ctx, &model.Event{ID: "e1", Name: "Kept"}))

	reloaded, err := NewFavoriteStore(filename)
	require.NoError(t, err)

	favorites, err := reloaded.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Kept", favorites[0].Name)
}

func TestFavoriteStore_corruptFileReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(filename, []byte("{not json"), 0644))

	store, err := NewFavoriteStore(filename)
	require.NoError(t, err)

	favorites, err := store.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavoriteStore_storesSnapshotNotPointer(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestFavoriteStore(t)

	event := &model.Event{ID: "e1", Name: "Original"}
	require.NoError(t, store.AddFavorite(ctx, event))
	event.Name = "Mutated after add"

	favorites, err := store.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Original", favorites[0].Name)
}
