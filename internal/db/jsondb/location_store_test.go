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

func TestLocationStore_roundTrip(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "location.json")
	store, err := NewLocationStore(filename)
	require.NoError(t, err)

	loc, err := store.GetUserLocation(ctx)
	require.NoError(t, err)
	assert.Nil(t, loc, "no location stored yet")

	saved := &model.UserLocation{Latitude: 1, Longitude: 2, Name: "X"}
	require.NoError(t, store.SaveUserLocation(ctx, saved))

	loc, err = store.GetUserLocation(ctx)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, *saved, *loc)
}

func TestLocationStore_saveOverwrites(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "location.json")
	store, err := NewLocationStore(filename)
	require.NoError(t, err)

	require.NoError(t, store.SaveUserLocation(ctx, &model.UserLocation{Name: "Old"}))
	require.NoError(t, store.SaveUserLocation(ctx, &model.UserLocation{Latitude: 52.52, Longitude: 13.405, Name: "Berlin"}))

	loc, err := store.GetUserLocation(ctx)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "Berlin", loc.Name)

	// A fresh store sees only the last record.
	reloaded, err := NewLocationStore(filename)
	require.NoError(t, err)
	loc, err = reloaded.GetUserLocation(ctx)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, 52.52, loc.Latitude)
}

func TestLocationStore_corruptFileReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "location.json")
	require.NoError(t, os.WriteFile(filename, []byte("###"), 0644))

	store, err := NewLocationStore(filename)
	require.NoError(t, err)

	loc, err := store.GetUserLocation(ctx)
	require.NoError(t, err)
	assert.Nil(t, loc)
}
