package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-scene-outbox/internal/client"
	"github.com/MKhiriev/go-scene-outbox/internal/config"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("outbox-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("outbox-client", cfg.App.LogFile)
	log.Debug().Any("config", redacted(*cfg)).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func redacted(cfg config.ClientConfig) config.ClientConfig {
	if cfg.App.DeviceSecret != "" {
		cfg.App.DeviceSecret = "***"
	}
	return cfg
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
