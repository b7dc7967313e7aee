package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-keyplace/internal/config"
	"github.com/MKhiriev/go-keyplace/internal/handler"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/metrics"
	"github.com/MKhiriev/go-keyplace/internal/server"
	"github.com/MKhiriev/go-keyplace/internal/service"
	"github.com/MKhiriev/go-keyplace/internal/store"
	"github.com/MKhiriev/go-keyplace/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("keyplace-custodian")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	m := metrics.New()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Stringer("build", buildInfo).Msg("starting custodian")

	services, err := service.NewServices(storages, cfg, buildInfo, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

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
