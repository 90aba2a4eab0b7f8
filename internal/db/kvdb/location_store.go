// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/harshdhankhar10/Event-finder/internal/model"
)

const bucketLocation = "location_store"

func NewLocationStore(db *bolt.DB) (*LocationStore, error) {
	const key = "location"

	return &LocationStore{db: db, lkey: key}, db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLocation))
		return err
	})
}

type LocationStore struct {
	db   *bolt.DB
	lkey string
}

func (l *LocationStore) SaveUserLocation(ctx context.Context, loc *model.UserLocation) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "SaveUserLocation")
	defer span.End()

	j, err := json.Marshal(loc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.AddEvent("Update bucket")
	return l.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketLocation)).Put([]byte(l.lkey), j)
	})
}

func (l *LocationStore) GetUserLocation(ctx context.Context) (*model.UserLocation, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetUserLocation")
	defer span.End()

	span.AddEvent("View bucket")
	loc := &model.UserLocation{}
	found := false
	err := l.db.View(func(tx *bolt.Tx) error {
		res := tx.Bucket([]byte(bucketLocation)).Get([]byte(l.lkey))
		if res == nil {
			return nil
		}
		if err := json.Unmarshal(res, loc); err != nil {
			span.RecordError(err)
			// Treated the same as an absent record.
			return nil
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return nil, err
	}
	return loc, nil
}
