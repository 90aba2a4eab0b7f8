// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/harshdhankhar10/Event-finder/internal/db"
	"github.com/harshdhankhar10/Event-finder/internal/geo"
	"github.com/harshdhankhar10/Event-finder/internal/model"
	"github.com/harshdhankhar10/Event-finder/internal/notify"
	"github.com/harshdhankhar10/Event-finder/internal/query"
)

// Handler serves the JSON API the page script talks to.
type Handler struct {
	search    *query.Service
	favorites db.FavoriteStore
	locations db.LocationStore
	resolver  *geo.Resolver
	logger    *slog.Logger
}

func NewHandler(
	search *query.Service,
	favorites db.FavoriteStore,
	locations db.LocationStore,
	resolver *geo.Resolver,
) *Handler {
	return &Handler{
		search:    search,
		favorites: favorites,
		locations: locations,
		resolver:  resolver,
		logger:    slog.Default().WithGroup("api"),
	}
}

type searchRequest struct {
	Query    string `json:"query"`
	Location string `json:"location"`
}

type searchResponse struct {
	Events  []*model.Event  `json:"events"`
	Notices []notify.Notice `json:"notices"`
}

func (h *Handler) Search(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "Handler.Search")
	defer span.End()

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "BAD_REQUEST", "message": err.Error()})
		return
	}
	if req.Query == "" && req.Location == "" {
		c.JSON(http.StatusBadRequest, searchResponse{
			Events:  []*model.Event{},
			Notices: []notify.Notice{{Kind: notify.KindWarning, Text: "Please enter a search term or location"}},
		})
		return
	}

	collector := notify.NewCollector()
	events := h.search.SearchEvents(ctx, collector, req.Query, req.Location)
	if len(events) == 0 {
		collector.Notify(notify.KindInfo, "No upcoming events found matching your criteria")
	}
	c.JSON(http.StatusOK, searchResponse{Events: events, Notices: collector.Notices()})
}

func (h *Handler) ListFavorites(c *gin.Context) {
	favorites, err := h.favorites.ListFavorites(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "could not list favorites", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "STORE_ERROR", "message": "could not list favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (h *Handler) AddFavorite(c *gin.Context) {
	var event model.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "BAD_REQUEST", "message": err.Error()})
		return
	}
	if event.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": "BAD_REQUEST", "message": "event id is required"})
		return
	}
	if err := h.favorites.AddFavorite(c.Request.Context(), &event); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "could not add favorite", "id", event.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "STORE_ERROR", "message": "could not add favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": []notify.Notice{{Kind: notify.KindSuccess, Text: "Event saved to favorites!"}}})
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	id := c.Param("id")
	if err := h.favorites.RemoveFavorite(c.Request.Context(), id); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "could not remove favorite", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "STORE_ERROR", "message": "could not remove favorite"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CheckFavorite(c *gin.Context) {
	id := c.Param("id")
	favorite, err := h.favorites.IsFavorite(c.Request.Context(), id)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "could not check favorite", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "STORE_ERROR", "message": "could not check favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": favorite})
}

func (h *Handler) GetLocation(c *gin.Context) {
	loc, err := h.locations.GetUserLocation(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "could not read location", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "STORE_ERROR", "message": "could not read location"})
		return
	}
	if loc == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, loc)
}

func (h *Handler) SaveLocation(c *gin.Context) {
	var loc model.UserLocation
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "BAD_REQUEST", "message": err.Error()})
		return
	}
	if err := h.locations.SaveUserLocation(c.Request.Context(), &loc); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "could not save location", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "STORE_ERROR", "message": "could not save location"})
		return
	}
	c.JSON(http.StatusOK, &loc)
}

type detectRequest struct {
	// Pointers so a literal 0 coordinate still binds.
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

type detectResponse struct {
	Location *model.UserLocation `json:"location,omitempty"`
	Notices  []notify.Notice     `json:"notices"`
}

// DetectLocation resolves browser-reported coordinates into a named,
// persisted location. The one-shot position fix already happened on the
// client; its coordinates act as the position provider here.
func (h *Handler) DetectLocation(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "Handler.DetectLocation")
	defer span.End()

	collector := notify.NewCollector()

	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		collector.Notify(notify.KindError, "Failed to detect location")
		c.JSON(http.StatusBadRequest, detectResponse{Notices: collector.Notices()})
		return
	}

	loc, err := h.resolver.CurrentLocation(ctx, geo.Position{Lat: *req.Lat, Lng: *req.Lng}, collector)
	if err != nil {
		c.JSON(http.StatusBadGateway, detectResponse{Notices: collector.Notices()})
		return
	}
	collector.Notify(notify.KindSuccess, "Location detected: "+loc.Name)
	c.JSON(http.StatusOK, detectResponse{Location: loc, Notices: collector.Notices()})
}

type chatRequest struct {
	Text string `json:"text"`
}

type chatResponse struct {
	Message *model.Message  `json:"message"`
	Notices []notify.Notice `json:"notices"`
}

// Chat answers one transcript entry. The server keeps no transcript;
// messages live in page memory and vanish on reload.
func (h *Handler) Chat(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "Handler.Chat")
	defer span.End()

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": "BAD_REQUEST", "message": "message text is required"})
		return
	}

	collector := notify.NewCollector()
	events := h.search.SearchEvents(ctx, collector, req.Text, "")

	text := "Here are some events I found:"
	switch {
	case failed(collector.Notices()):
		text = "Sorry, I encountered an error while searching for events. Please try again."
		events = nil
	case len(events) == 0:
		text = "I couldn't find any events matching your query. Try a different search term or location?"
	}

	c.JSON(http.StatusOK, chatResponse{
		Message: &model.Message{
			ID:     uuid.New().String(),
			Text:   text,
			IsBot:  true,
			Events: events,
		},
		Notices: collector.Notices(),
	})
}

func failed(notices []notify.Notice) bool {
	for _, n := range notices {
		if n.Kind == notify.KindError {
			return true
		}
	}
	return false
}
