package model

import (
	"testing"
	"time"
)

func TestEvent_StartsAfter(t *testing.T) {
	now := time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC)

	tt := []struct {
		name  string
		event Event
		want  bool
	}{
		{
			name:  "far future",
			event: Event{Date: "2099-01-01", Time: "10:00"},
			want:  true,
		},
		{
			name:  "past year",
			event: Event{Date: "2000-01-01", Time: "10:00"},
			want:  false,
		},
		{
			name:  "today but already passed",
			event: Event{Date: "2026-09-01", Time: "12:00"},
			want:  false,
		},
		{
			name:  "today later in the evening",
			event: Event{Date: "2026-09-01", Time: "21:00"},
			want:  true,
		},
		{
			name:  "exactly now is not strictly after",
			event: Event{Date: "2026-09-01", Time: "18:30"},
			want:  false,
		},
		{
			name:  "unparsable date",
			event: Event{Date: "next friday", Time: "10:00"},
			want:  false,
		},
		{
			name:  "unparsable time",
			event: Event{Date: "2099-01-01", Time: "evening"},
			want:  false,
		},
		{
			name:  "empty fields",
			event: Event{},
			want:  false,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.event.StartsAfter(now); got != tc.want {
				t.Errorf("StartsAfter() = %v, want %v", got, tc.want)
			}
		})
	}
}
