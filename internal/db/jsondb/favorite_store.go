// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/harshdhankhar10/Event-finder/internal/model"
)

// FavoriteStore keeps the favorites collection in a single JSON file
// holding an insertion-ordered array of events. Every mutation rewrites
// the whole file.
type FavoriteStore struct {
	mu sync.RWMutex

	filename  string
	favorites []*model.Event
}

// NewFavoriteStore creates a FavoriteStore backed by the given file. A
// missing or unreadable file starts the store empty.
func NewFavoriteStore(filename string) (*FavoriteStore, error) {
	store := &FavoriteStore{filename: filename}
	store.loadFromFile()
	return store, nil
}

func (f *FavoriteStore) ListFavorites(ctx context.Context) ([]*model.Event, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListFavorites")
	defer span.End()

	span.AddEvent("RLock")
	f.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer f.mu.RUnlock()

	out := make([]*model.Event, len(f.favorites))
	copy(out, f.favorites)
	return out, nil
}

func (f *FavoriteStore) AddFavorite(ctx context.Context, event *model.Event) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "AddFavorite")
	defer span.End()

	span.AddEvent("Lock")
	f.mu.Lock()
	defer span.AddEvent("Unlock")
	defer f.mu.Unlock()

	for _, fav := range f.favorites {
		if fav.ID == event.ID {
			span.AddEvent("already a favorite")
			return nil
		}
	}

	snapshot := *event
	f.favorites = append(f.favorites, &snapshot)

	span.AddEvent("save to file")
	if err := f.saveToFile(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (f *FavoriteStore) RemoveFavorite(ctx context.Context, id string) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "RemoveFavorite")
	defer span.End()

	span.AddEvent("Lock")
	f.mu.Lock()
	defer span.AddEvent("Unlock")
	defer f.mu.Unlock()

	kept := f.favorites[:0]
	for _, fav := range f.favorites {
		if fav.ID != id {
			kept = append(kept, fav)
		}
	}
	if len(kept) == len(f.favorites) {
		span.AddEvent("not a favorite")
		return nil
	}
	f.favorites = kept

	span.AddEvent("save to file")
	if err := f.saveToFile(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (f *FavoriteStore) IsFavorite(ctx context.Context, id string) (bool, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "IsFavorite")
	defer span.End()

	span.AddEvent("RLock")
	f.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer f.mu.RUnlock()

	for _, fav := range f.favorites {
		if fav.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *FavoriteStore) loadFromFile() {
	fileData, err := os.ReadFile(f.filename)
	if err != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := json.Unmarshal(fileData, &f.favorites); err != nil {
		// An unreadable collection reads as empty.
		slog.Default().WithGroup("jsondb").Warn("could not unmarshal favorites, starting empty",
			"file", f.filename, "error", err.Error())
		f.favorites = nil
	}
}

func (f *FavoriteStore) saveToFile(ctx context.Context) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "FavoriteStore.saveToFile")
	defer span.End()

	fileData, err := json.MarshalIndent(f.favorites, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.filename, fileData, 0644)
}
