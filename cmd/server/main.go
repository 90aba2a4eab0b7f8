// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/harshdhankhar10/Event-finder/internal/db"
	"github.com/harshdhankhar10/Event-finder/internal/db/jsondb"
	"github.com/harshdhankhar10/Event-finder/internal/db/kvdb"
	"github.com/harshdhankhar10/Event-finder/internal/genai"
	"github.com/harshdhankhar10/Event-finder/internal/geo"
	"github.com/harshdhankhar10/Event-finder/internal/query"
	"github.com/harshdhankhar10/Event-finder/internal/server"
)

func main() {
	var (
		serviceName = flag.String("service-name", "event-finder", "otel service name")
		addr        = flag.String("addr", "0.0.0.0:8080", "default server address")
		dbStr       = flag.String("db", "kvdb://testdata/events.db", "database connection string, kvdb:// or jsondb://")
		otlpAddr    = flag.String("otlp-grpc", "", "default otlp/gRPC address, by default disabled. Example value: localhost:4317")
		logLevelArg = flag.String("log-level", "INFO", "log level")
		staticDir   = flag.String("static-dir", "", "path to static directory")
	)
	flag.Parse()

	var logLevel slog.Level
	err := logLevel.UnmarshalText([]byte(*logLevelArg))
	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(jsonHandler)
	if err != nil {
		logger.Error("unable to parse log level", "level-input", *logLevelArg, "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger)
	logger.Info("start and listen", "address", *addr)
	logger.Info("otlp/gRPC", "address", *otlpAddr, "service", *serviceName)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded", "reason", err.Error())
	}
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		logger.Error("GEMINI_API_KEY is not set")
		os.Exit(1)
	}

	if *otlpAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		grpcOptions := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithBlock()}
		conn, err := grpc.DialContext(ctx, *otlpAddr, grpcOptions...)
		if err != nil {
			logger.Error("failed to create gRPC connection to collector", "error", err)
			os.Exit(1)
		}
		defer conn.Close()

		otelExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
		if err != nil {
			logger.Error("failed to create trace exporter", "error", err)
			os.Exit(1)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(otelExporter))
		otel.SetTracerProvider(tp)
	}

	var (
		favoriteStore db.FavoriteStore
		locationStore db.LocationStore
	)

	u, err := url.Parse(*dbStr)
	if err != nil {
		logger.Error("unable to parse db connection string", "error", err)
		os.Exit(1)
	}

	switch u.Scheme {
	case "kvdb":
		path := u.Host + u.Path
		bdb, err := bolt.Open(path, 0600, nil)
		if err != nil {
			logger.Error("could not open key-value database", "path", path, "error", err)
			os.Exit(1)
		}
		defer bdb.Close()

		favoriteStore, err = kvdb.NewFavoriteStore(bdb)
		if err != nil {
			logger.Error("could not initialize favorite bucket", "error", err)
			os.Exit(1)
		}

		locationStore, err = kvdb.NewLocationStore(bdb)
		if err != nil {
			logger.Error("could not initialize location bucket", "error", err)
			os.Exit(1)
		}
	case "jsondb":
		path := u.Host + u.Path
		favoriteStore, err = jsondb.NewFavoriteStore(path + "/favorites.json")
		if err != nil {
			logger.Error("could not initialize favorite store", "path", path, "error", err)
			os.Exit(1)
		}

		locationStore, err = jsondb.NewLocationStore(path + "/location.json")
		if err != nil {
			logger.Error("could not initialize location store", "path", path, "error", err)
			os.Exit(1)
		}
	default:
		logger.Error("Unknown storage backend", "type", u.Scheme)
		os.Exit(1)
	}

	searchService := query.NewService(genai.NewClient(apiKey))
	resolver := geo.NewResolver(locationStore)

	srv := &http.Server{
		Addr: *addr,
		Handler: server.NewServer(
			*serviceName,
			*staticDir,
			searchService,
			favoriteStore,
			locationStore,
			resolver,
		),
	}

	if err := srv.ListenAndServe(); err != nil {
		logger.Error("error during listen and serve", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown")
}
