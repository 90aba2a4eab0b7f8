// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/harshdhankhar10/Event-finder/internal/model"
)

// LocationStore keeps the single last-known user location in a JSON
// file. Saving overwrites the whole file.
type LocationStore struct {
	mu sync.RWMutex

	filename string
	location *model.UserLocation
}

// NewLocationStore creates a LocationStore backed by the given file. A
// missing or unreadable file means no stored location.
func NewLocationStore(filename string) (*LocationStore, error) {
	store := &LocationStore{filename: filename}
	store.loadFromFile()
	return store, nil
}

func (l *LocationStore) SaveUserLocation(ctx context.Context, loc *model.UserLocation) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "SaveUserLocation")
	defer span.End()

	span.AddEvent("Lock")
	l.mu.Lock()
	defer span.AddEvent("Unlock")
	defer l.mu.Unlock()

	snapshot := *loc
	l.location = &snapshot

	fileData, err := json.MarshalIndent(l.location, "", "  ")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if err := os.WriteFile(l.filename, fileData, 0644); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (l *LocationStore) GetUserLocation(ctx context.Context) (*model.UserLocation, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetUserLocation")
	defer span.End()

	span.AddEvent("RLock")
	l.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer l.mu.RUnlock()

	if l.location == nil {
		return nil, nil
	}
	snapshot := *l.location
	return &snapshot, nil
}

func (l *LocationStore) loadFromFile() {
	fileData, err := os.ReadFile(l.filename)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	loc := &model.UserLocation{}
	if err := json.Unmarshal(fileData, loc); err != nil {
		// Treated the same as an absent record.
		return
	}
	l.location = loc
}
