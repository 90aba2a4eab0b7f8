// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package server

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	"github.com/harshdhankhar10/Event-finder/internal/db"
	"github.com/harshdhankhar10/Event-finder/internal/geo"
	"github.com/harshdhankhar10/Event-finder/internal/query"
	"github.com/harshdhankhar10/Event-finder/internal/server/api"
	"github.com/harshdhankhar10/Event-finder/internal/server/templates"
)

//go:embed all:static
var staticFS embed.FS

func NewServer(
	serviceName string,
	staticDir string,
	search *query.Service,
	fStore db.FavoriteStore,
	lStore db.LocationStore,
	resolver *geo.Resolver,
) *Server {
	return &Server{
		logger:      slog.Default().WithGroup("http"),
		serviceName: serviceName,
		staticDir:   staticDir,
		pages:       templates.NewPageHandler(search, fStore, lStore),
		api:         api.NewHandler(search, fStore, lStore, resolver),
	}
}

type Server struct {
	serviceName string
	staticDir   string
	logger      *slog.Logger
	pages       *templates.PageHandler
	api         *api.Handler
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mux := gin.New()
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	middlewares := []gin.HandlerFunc{
		sloggin.NewWithConfig(s.logger,
			sloggin.Config{
				DefaultLevel:     slog.LevelInfo,
				ClientErrorLevel: slog.LevelWarn,
				ServerErrorLevel: slog.LevelError,
			},
		),
		gin.Recovery(), otelgin.Middleware(s.serviceName), slogAddTraceAttributes,
	}

	username := "admin"
	if v, ok := os.LookupEnv("EVENTFINDER_ADMIN"); ok {
		username = v
	}

	password := "admin"
	if v, ok := os.LookupEnv("EVENTFINDER_PASSWORD"); ok {
		password = v
	}

	adminArea := mux.Group("/admin")
	adminArea.Use(append(middlewares, gin.BasicAuth(gin.Accounts{
		username: password,
	}))...)

	var staticDir fs.FS
	var err error
	switch {
	case s.staticDir != "":
		staticDir = os.DirFS(s.staticDir)
	default:
		staticDir, err = fs.Sub(staticFS, "static")
		if err != nil {
			panic(err)
		}
	}

	mux.StaticFS("/static", http.FS(fs.FS(staticDir)))

	mux.Use(middlewares...)
	mux.GET("/", s.pages.RenderIndex)
	mux.POST("/search", s.pages.RenderResults)

	mux.POST("/api/search", s.api.Search)
	mux.GET("/api/favorites", s.api.ListFavorites)
	mux.PUT("/api/favorites", s.api.AddFavorite)
	mux.DELETE("/api/favorites/:id", s.api.RemoveFavorite)
	mux.GET("/api/favorites/:id", s.api.CheckFavorite)
	mux.GET("/api/location", s.api.GetLocation)
	mux.POST("/api/location", s.api.SaveLocation)
	mux.POST("/api/location/detect", s.api.DetectLocation)
	mux.POST("/api/chat", s.api.Chat)

	adminArea.GET("/", s.pages.RenderAdminOverview)

	mux.NoRoute(notFound)

	mux.ServeHTTP(w, r)
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
}

func slogAddTraceAttributes(c *gin.Context) {
	sloggin.AddCustomAttributes(c,
		slog.String("trace-id", trace.SpanFromContext(c.Request.Context()).SpanContext().TraceID().String()),
	)
	sloggin.AddCustomAttributes(c,
		slog.String("span-id", trace.SpanFromContext(c.Request.Context()).SpanContext().SpanID().String()),
	)
	c.Next()
}
