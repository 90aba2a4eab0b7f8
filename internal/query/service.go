// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package query

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/harshdhankhar10/Event-finder/internal/genai"
	"github.com/harshdhankhar10/Event-finder/internal/model"
	"github.com/harshdhankhar10/Event-finder/internal/notify"
)

// Generator produces free text from a prompt. *genai.Client satisfies
// it; tests plug in canned replies.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Service turns a search into an ordered list of upcoming events. It
// owns no state beyond its collaborators.
type Service struct {
	gen    Generator
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Service)

// WithClock overrides the service's notion of now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(gen Generator, opts ...Option) *Service {
	s := &Service{
		gen:    gen,
		now:    time.Now,
		logger: slog.Default().WithGroup("query"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchEvents never fails from the caller's point of view: transport
// and parse errors are logged, turned into a transient notice and an
// empty result. An empty result is therefore ambiguous between "nothing
// found" and "call failed"; the notices tell the user which it was.
//
// Filtering compares each event's date and time against the current
// instant, so an event dated today whose time has already passed is
// dropped even though it satisfies the prompt's date-only cutoff.
func (s *Service) SearchEvents(ctx context.Context, n notify.Notifier, queryText, locationHint string) []*model.Event {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "SearchEvents")
	defer span.End()
	span.SetAttributes(
		attribute.String("query", queryText),
		attribute.String("location", locationHint),
	)

	now := s.now()
	cutoff := now.Format("2006-01-02")
	prompt := genai.BuildPrompt(queryText, locationHint, cutoff)

	text, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "event search failed", "query", queryText, "error", err)
		n.Notify(notify.KindError, "Failed to fetch events. Please try again.")
		return []*model.Event{}
	}

	candidates, err := genai.ExtractEvents(text)
	switch {
	case errors.Is(err, genai.ErrNoArray):
		span.AddEvent("no event array in reply")
		return []*model.Event{}
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "unparsable event array", "query", queryText, "error", err)
		n.Notify(notify.KindError, "Failed to fetch events. Please try again.")
		return []*model.Event{}
	}

	// Order preserved, no dedup across the batch.
	upcoming := make([]*model.Event, 0, len(candidates))
	for _, event := range candidates {
		if event.StartsAfter(now) {
			upcoming = append(upcoming, event)
		}
	}
	span.SetAttributes(
		attribute.Int("events.candidates", len(candidates)),
		attribute.Int("events.upcoming", len(upcoming)),
	)
	return upcoming
}
