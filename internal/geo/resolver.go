// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/harshdhankhar10/Event-finder/internal/db"
	"github.com/harshdhankhar10/Event-finder/internal/model"
	"github.com/harshdhankhar10/Event-finder/internal/notify"
)

const defaultGeocodeEndpoint = "https://nominatim.openstreetmap.org/reverse"

// PlaceholderName is used when reverse geocoding fails or yields no
// usable place name.
const PlaceholderName = "Current Location"

// PositionProvider yields a one-shot position fix. The web layer adapts
// browser-reported coordinates into one; tests use fixed coordinates or
// a simulated permission denial.
type PositionProvider interface {
	CurrentPosition(ctx context.Context) (lat, lng float64, err error)
}

// Position is a PositionProvider with fixed coordinates.
type Position struct {
	Lat float64
	Lng float64
}

func (p Position) CurrentPosition(context.Context) (float64, float64, error) {
	return p.Lat, p.Lng, nil
}

// Resolver turns a position fix into a named, persisted UserLocation.
type Resolver struct {
	endpoint   string
	httpClient *http.Client
	store      db.LocationStore
	logger     *slog.Logger
}

type Option func(*Resolver)

// WithGeocodeEndpoint overrides the reverse-geocoding endpoint, mainly
// for tests.
func WithGeocodeEndpoint(endpoint string) Option {
	return func(r *Resolver) { r.endpoint = endpoint }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(r *Resolver) { r.httpClient = httpClient }
}

func NewResolver(store db.LocationStore, opts ...Option) *Resolver {
	r := &Resolver{
		endpoint:   defaultGeocodeEndpoint,
		httpClient: &http.Client{},
		store:      store,
		logger:     slog.Default().WithGroup("geo"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CurrentLocation requests one position fix, reverse-geocodes it into a
// place name and persists the result before returning it. A failed
// position fix propagates as an error plus a transient notice; a failed
// reverse geocode only costs the place name.
func (r *Resolver) CurrentLocation(ctx context.Context, pos PositionProvider, n notify.Notifier) (*model.UserLocation, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CurrentLocation")
	defer span.End()

	lat, lng, err := pos.CurrentPosition(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.ErrorContext(ctx, "could not get position", "error", err)
		n.Notify(notify.KindError, "Unable to retrieve your location")
		return nil, fmt.Errorf("get position: %w", err)
	}
	span.SetAttributes(
		attribute.Float64("position.lat", lat),
		attribute.Float64("position.lng", lng),
	)

	loc := &model.UserLocation{
		Latitude:  lat,
		Longitude: lng,
		Name:      r.lookupName(ctx, lat, lng),
	}
	if err := r.store.SaveUserLocation(ctx, loc); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("save user location: %w", err)
	}
	return loc, nil
}

type geocodeResponse struct {
	Address struct {
		City  string `json:"city"`
		Town  string `json:"town"`
		State string `json:"state"`
	} `json:"address"`
}

// lookupName never fails: any error on the reverse-geocoding path is
// logged and turns into the placeholder name.
func (r *Resolver) lookupName(ctx context.Context, lat, lng float64) string {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Resolver.lookupName")
	defer span.End()

	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("zoom", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		span.RecordError(err)
		return PlaceholderName
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		r.logger.WarnContext(ctx, "reverse geocoding failed", "error", err)
		return PlaceholderName
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.AddEvent("unexpected status", trace.WithAttributes(attribute.String("status", resp.Status)))
		return PlaceholderName
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return PlaceholderName
	}

	var out geocodeResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		span.RecordError(err)
		r.logger.WarnContext(ctx, "unparsable geocoding response", "error", err)
		return PlaceholderName
	}

	switch {
	case out.Address.City != "":
		return out.Address.City
	case out.Address.Town != "":
		return out.Address.Town
	case out.Address.State != "":
		return out.Address.State
	}
	return PlaceholderName
}
