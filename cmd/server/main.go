// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/handler"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/server"
	"github.com/MKhiriev/go-task-tracker/internal/service"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build.OrNotAvailable())

	log := logger.NewLogger("go-task-tracker-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("driver", cfg.Storage.DB.Driver).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Int("default_per_page", cfg.App.DefaultPerPage).
		Int("max_per_page", cfg.App.MaxPerPage).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log.GetChildLogger())
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, cfg.App, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.App, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
