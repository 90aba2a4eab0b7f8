// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/harshdhankhar10/Event-finder/internal/model"
)

// FavoriteStore keeps the user's bookmarked events. The collection is
// insertion-ordered and holds at most one entry per event id.
type FavoriteStore interface {
	// ListFavorites returns all favorites in insertion order. An absent
	// or unreadable collection reads as empty, not as an error.
	ListFavorites(context.Context) ([]*model.Event, error)
	// AddFavorite inserts the event unless one with the same id is
	// already present. Duplicate inserts are a no-op.
	AddFavorite(context.Context, *model.Event) error
	// RemoveFavorite drops the entry with the given id. Removing an
	// absent id is a no-op.
	RemoveFavorite(ctx context.Context, id string) error
	// IsFavorite reports whether an entry with the given id exists.
	IsFavorite(ctx context.Context, id string) (bool, error)
}
