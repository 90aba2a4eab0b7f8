// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package model

// UserLocation is the single persisted place used to bias searches.
// Saving a new one overwrites the previous record.
type UserLocation struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Name      string  `json:"name"`
}
