package main

import (
	"context"
	"fmt"

	"github.com/mpolukarov/volna/internal/adapter"
	"github.com/mpolukarov/volna/internal/config"
	"github.com/mpolukarov/volna/internal/handler"
	"github.com/mpolukarov/volna/internal/logger"
	"github.com/mpolukarov/volna/internal/server"
	"github.com/mpolukarov/volna/internal/service"
	"github.com/mpolukarov/volna/internal/store"
	"github.com/mpolukarov/volna/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("volna-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	// storages stay empty without a DSN; the registration endpoint then
	// answers with a configuration error instead of the process crashing
	storages := &store.Storages{}
	if cfg.Storage.DB.DSN != "" {
		db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to database")
		}

		if err := migrations.Migrate(db.DB); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}

		storages = store.NewStorages(db, log)
	} else {
		log.Warn().Msg("no database DSN configured, registration endpoint disabled")
	}

	var catalog adapter.CatalogClient
	if cfg.Music.Token != "" {
		catalog = adapter.NewMusicCatalogClient(adapter.MusicClientConfig{
			BaseURL:   cfg.Music.BaseURL,
			Token:     cfg.Music.Token,
			PageSize:  cfg.Music.PageSize,
			CoverSize: cfg.Music.CoverSize,
			Timeout:   cfg.Music.Timeout,
		}, log)
	} else {
		log.Warn().Msg("no music catalog token configured, music endpoint disabled")
	}

	services := service.NewServices(storages, catalog, cfg, log)
	handlers := handler.NewHandlers(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
