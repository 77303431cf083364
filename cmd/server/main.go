package main

import (
	"context"
	"fmt"

	"github.com/devfriend/devfriend/internal/config"
	"github.com/devfriend/devfriend/internal/crypto"
	"github.com/devfriend/devfriend/internal/gateway"
	"github.com/devfriend/devfriend/internal/handler"
	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/oauth"
	"github.com/devfriend/devfriend/internal/server"
	"github.com/devfriend/devfriend/internal/service"
	"github.com/devfriend/devfriend/internal/store"
	"github.com/devfriend/devfriend/internal/workers"
	"github.com/devfriend/devfriend/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("devfriend-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	vault, err := crypto.NewVault(cfg.App.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating secret vault")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running database migrations")
	}

	storages := store.NewStorages(db, log)
	broker := oauth.NewBroker(cfg.App.TokenSignKey, log)
	gw := gateway.NewGateway(log)
	services := service.NewServices(storages, vault, broker, gw, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(ctx, storages, services, cfg.Workers, log).Run()

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
