// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"
	"log/slog"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/harshdhankhar10/Event-finder/internal/model"
)

const bucketFavorite = "favorite_store"

// The whole collection lives under one key so insertion order survives
// bbolt's key sorting.
const keyFavorites = "favorites"

func NewFavoriteStore(db *bolt.DB) (*FavoriteStore, error) {
	logger := slog.Default().WithGroup("kvdb")
	return &FavoriteStore{db: db}, db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketFavorite))
		if err != nil {
			return err
		}
		res := bucket.Get([]byte(keyFavorites))
		if res == nil {
			return nil
		}
		var favorites []*model.Event
		if err := json.Unmarshal(res, &favorites); err != nil {
			logger.Warn("could not unmarshal favorites, resetting collection", "error", err.Error())
			return bucket.Put([]byte(keyFavorites), []byte("[]"))
		}
		return nil
	})
}

type FavoriteStore struct {
	db *bolt.DB
}

func (f *FavoriteStore) ListFavorites(ctx context.Context) ([]*model.Event, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListFavorites")
	defer span.End()

	span.AddEvent("View bucket")
	favorites := make([]*model.Event, 0)
	return favorites, f.db.View(func(tx *bolt.Tx) error {
		res := tx.Bucket([]byte(bucketFavorite)).Get([]byte(keyFavorites))
		if res == nil {
			return nil
		}
		if err := json.Unmarshal(res, &favorites); err != nil {
			span.RecordError(err)
			// An unreadable collection reads as empty.
			favorites = favorites[:0]
		}
		return nil
	})
}

func (f *FavoriteStore) AddFavorite(ctx context.Context, event *model.Event) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "AddFavorite")
	defer span.End()

	favorites, err := f.ListFavorites(ctx)
	if err != nil {
		return err
	}
	for _, fav := range favorites {
		if fav.ID == event.ID {
			span.AddEvent("already a favorite")
			return nil
		}
	}
	snapshot := *event
	favorites = append(favorites, &snapshot)
	return f.put(span, favorites)
}

func (f *FavoriteStore) RemoveFavorite(ctx context.Context, id string) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "RemoveFavorite")
	defer span.End()

	favorites, err := f.ListFavorites(ctx)
	if err != nil {
		return err
	}
	kept := favorites[:0]
	for _, fav := range favorites {
		if fav.ID != id {
			kept = append(kept, fav)
		}
	}
	if len(kept) == len(favorites) {
		span.AddEvent("not a favorite")
		return nil
	}
	return f.put(span, kept)
}

func (f *FavoriteStore) IsFavorite(ctx context.Context, id string) (bool, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "IsFavorite")
	defer span.End()

	favorites, err := f.ListFavorites(ctx)
	if err != nil {
		return false, err
	}
	for _, fav := range favorites {
		if fav.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *FavoriteStore) put(span trace.Span, favorites []*model.Event) error {
	j, err := json.Marshal(favorites)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.AddEvent("Update bucket")
	return f.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketFavorite)).Put([]byte(keyFavorites), j)
	})
}
