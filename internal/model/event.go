// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package model

import "time"

// Event describes one candidate occurrence produced by the generation
// endpoint. Events are transient: they are never mutated after creation,
// favoriting stores a snapshot instead of tagging the original.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM, 24-hour
	Location    string `json:"location"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

// StartsAfter reports whether the event's date and time, interpreted in
// the location of now, lie strictly after now. An event whose date or
// time does not parse is treated as not upcoming.
func (e *Event) StartsAfter(now time.Time) bool {
	start, err := time.ParseInLocation("2006-01-02T15:04", e.Date+"T"+e.Time, now.Location())
	if err != nil {
		return false
	}
	return start.After(now)
}
