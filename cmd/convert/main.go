// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

// Command convert copies the persisted favorites and user location from
// a jsondb directory into a bbolt database, for moving an installation
// from file-backed storage to kvdb.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	bolt "go.etcd.io/bbolt"

	"github.com/harshdhankhar10/Event-finder/internal/db"
	"github.com/harshdhankhar10/Event-finder/internal/db/jsondb"
	"github.com/harshdhankhar10/Event-finder/internal/db/kvdb"
)

func main() {
	var (
		inputPath  = flag.String("input-path", "testdata", "jsondb storage directory")
		outputPath = flag.String("output-path", "output.db", "bbolt database file")
	)
	flag.Parse()

	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{})
	logger := slog.New(jsonHandler)

	jdb := newJSONDB(logger, *inputPath)
	kdb, closeFn := newKVDB(logger, *outputPath)
	defer closeFn()

	logger.Info("start converting")
	into(logger, kdb, jdb)
	logger.Info("finished converting")
}

type database struct {
	db.FavoriteStore
	db.LocationStore
}

func into(logger *slog.Logger, dst, src database) {
	ctx := context.Background()

	favorites, err := src.ListFavorites(ctx)
	if err != nil {
		logger.Error("could not list favorites", "error", err)
		os.Exit(1)
	}
	for _, fav := range favorites {
		if err := dst.AddFavorite(ctx, fav); err != nil {
			logger.Error("could not copy favorite", "id", fav.ID, "error", err)
			os.Exit(1)
		}
	}
	logger.Info("copied favorites", "count", len(favorites))

	loc, err := src.GetUserLocation(ctx)
	if err != nil {
		logger.Error("could not read user location", "error", err)
		os.Exit(1)
	}
	if loc == nil {
		logger.Info("no user location stored, skipping")
		return
	}
	if err := dst.SaveUserLocation(ctx, loc); err != nil {
		logger.Error("could not copy user location", "error", err)
		os.Exit(1)
	}
	logger.Info("copied user location", "name", loc.Name)
}

func newKVDB(logger *slog.Logger, path string) (database, func() error) {
	bdb, err := bolt.Open(path, 0600, nil)
	if err != nil {
		logger.Error("could not open key-value database", "path", path, "error", err)
		os.Exit(1)
	}

	favoriteStore, err := kvdb.NewFavoriteStore(bdb)
	if err != nil {
		logger.Error("could not initialize favorite bucket", "error", err)
		os.Exit(1)
	}

	locationStore, err := kvdb.NewLocationStore(bdb)
	if err != nil {
		logger.Error("could not initialize location bucket", "error", err)
		os.Exit(1)
	}

	return database{FavoriteStore: favoriteStore, LocationStore: locationStore}, bdb.Close
}

func newJSONDB(logger *slog.Logger, path string) database {
	logger.Info("jsondb storage folder", "path", path)
	favoriteStore, err := jsondb.NewFavoriteStore(path + "/favorites.json")
	if err != nil {
		logger.Error("could not initialize favorite store", "path", path, "error", err)
		os.Exit(1)
	}
	locationStore, err := jsondb.NewLocationStore(path + "/location.json")
	if err != nil {
		logger.Error("could not initialize location store", "path", path, "error", err)
		os.Exit(1)
	}
	return database{FavoriteStore: favoriteStore, LocationStore: locationStore}
}
