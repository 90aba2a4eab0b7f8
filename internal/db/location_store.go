// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/harshdhankhar10/Event-finder/internal/model"
)

// LocationStore keeps the single last-known user location. Each save
// overwrites the previous record.
type LocationStore interface {
	SaveUserLocation(context.Context, *model.UserLocation) error
	// GetUserLocation returns (nil, nil) when no location has been
	// stored yet or the stored record is unreadable.
	GetUserLocation(context.Context) (*model.UserLocation, error)
}
