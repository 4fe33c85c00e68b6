package main

import (
	"context"
	"fmt"

	"github.com/avolkov/inkwell/internal/config"
	"github.com/avolkov/inkwell/internal/handler"
	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/internal/server"
	"github.com/avolkov/inkwell/internal/service"
	"github.com/avolkov/inkwell/internal/store"
	"github.com/avolkov/inkwell/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("inkwell-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, cfg.Auth, log)
	handlers := handler.NewHandlers(services, cfg, log)
	wrk := workers.NewWorkers(services.AuthService, log)

	srv, err := server.NewServer(handlers, wrk, cfg.Server, log)
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
