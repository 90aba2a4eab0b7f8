// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeremywohl/flatten/v2"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/harshdhankhar10/Event-finder/internal/db"
	"github.com/harshdhankhar10/Event-finder/internal/model"
	"github.com/harshdhankhar10/Event-finder/internal/notify"
	"github.com/harshdhankhar10/Event-finder/internal/parser/form"
	"github.com/harshdhankhar10/Event-finder/internal/query"
)

//go:embed *.html
var templates embed.FS

func NewPageHandler(
	search *query.Service,
	fStore db.FavoriteStore,
	lStore db.LocationStore,
) *PageHandler {
	coreTemplates := []string{"main.html", "footer.html"}

	return &PageHandler{
		tmplIndex:   template.Must(template.ParseFS(templates, append(coreTemplates, "index.content.html", "chat.html")...)),
		tmplResults: template.Must(template.ParseFS(templates, append(coreTemplates, "results.content.html")...)),
		tmplAdmin:   template.Must(template.ParseFS(templates, append(coreTemplates, "admin.content.html")...)),
		search:      search,
		fStore:      fStore,
		lStore:      lStore,
		logger:      slog.Default().WithGroup("http"),
	}
}

type PageHandler struct {
	tmplIndex   *template.Template
	tmplResults *template.Template
	tmplAdmin   *template.Template
	search      *query.Service
	fStore      db.FavoriteStore
	lStore      db.LocationStore
	logger      *slog.Logger
}

func (p *PageHandler) RenderIndex(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "PageHandler.RenderIndex")
	defer span.End()

	loc, err := p.lStore.GetUserLocation(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "could not read stored location", "error", err)
	}

	locationName := ""
	if loc != nil {
		locationName = loc.Name
	}

	favorites, err := p.fStore.ListFavorites(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "could not list favorites", "error", err)
	}

	p.render(c, span, p.tmplIndex, gin.H{
		"Location":  locationName,
		"Favorites": favorites,
	})
}

type searchForm struct {
	Query    string `form:"query"`
	Location string `form:"location"`
}

// RenderResults is the non-JS fallback for the search form.
func (p *PageHandler) RenderResults(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "PageHandler.RenderResults")
	defer span.End()

	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "could not parse form")
		return
	}

	var input searchForm
	if err := form.Unmarshal(c.Request.PostForm, &input); err != nil {
		span.RecordError(err)
		c.String(http.StatusBadRequest, "could not parse form")
		return
	}

	collector := notify.NewCollector()
	var events []*model.Event
	if input.Query == "" && input.Location == "" {
		collector.Notify(notify.KindWarning, "Please enter a search term or location")
	} else {
		events = p.search.SearchEvents(ctx, collector, input.Query, input.Location)
		if len(events) == 0 {
			collector.Notify(notify.KindInfo, "No upcoming events found matching your criteria")
		}
	}

	p.render(c, span, p.tmplResults, gin.H{
		"Query":    input.Query,
		"Location": input.Location,
		"Events":   events,
		"Notices":  collector.Notices(),
	})
}

type adminFavorite struct {
	ID     string
	Fields map[string]interface{}
}

// RenderAdminOverview shows the persisted records, each favorite
// flattened to dot-keys for a plain field table.
func (p *PageHandler) RenderAdminOverview(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "PageHandler.RenderAdminOverview")
	defer span.End()

	favorites, err := p.fStore.ListFavorites(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "could not list favorites", "error", err)
		c.String(http.StatusInternalServerError, "could not list favorites")
		return
	}

	rows := make([]adminFavorite, 0, len(favorites))
	for _, fav := range favorites {
		out, _ := json.Marshal(fav)
		flattened, _ := flatten.FlattenString(string(out), "", flatten.DotStyle)
		fields := make(map[string]interface{})
		_ = json.Unmarshal([]byte(flattened), &fields)
		rows = append(rows, adminFavorite{ID: fav.ID, Fields: fields})
	}

	loc, err := p.lStore.GetUserLocation(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "could not read stored location", "error", err)
	}

	p.render(c, span, p.tmplAdmin, gin.H{
		"Favorites": rows,
		"Location":  loc,
	})
}

func (p *PageHandler) render(c *gin.Context, span trace.Span, tmpl *template.Template, data gin.H) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(c.Writer, "main.html", data); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.logger.ErrorContext(c.Request.Context(), "could not render template", "error", err)
		c.String(http.StatusInternalServerError, "could not render page")
	}
}
