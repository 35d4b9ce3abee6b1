package main

import (
	"context"
	"fmt"

	"github.com/mindpad-app/mindpad/internal/config"
	"github.com/mindpad-app/mindpad/internal/feed"
	"github.com/mindpad-app/mindpad/internal/gateway"
	handlerhttp "github.com/mindpad-app/mindpad/internal/handler/http"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/internal/server"
	"github.com/mindpad-app/mindpad/internal/service"
	"github.com/mindpad-app/mindpad/internal/store"
	"github.com/mindpad-app/mindpad/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("mindpad-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	hub := feed.NewHub(log)
	chatClient := gateway.NewChatGatewayClient(cfg.AI, log)
	services := service.NewServices(storages, chatClient, hub, cfg, log)

	handler := handlerhttp.NewHandler(services, hub, log)

	srv, err := server.NewServer(handler.Init(), hub, cfg.Server, log)
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
