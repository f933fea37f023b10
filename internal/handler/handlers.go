package handler

import (
	"github.com/MKhiriev/go-scene-outbox/internal/config"
	"github.com/MKhiriev/go-scene-outbox/internal/handler/http"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/service"
	"github.com/MKhiriev/go-scene-outbox/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(manager service.SyncManager, cfg config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(manager, cfg.App, buildInfo, logger),
	}, nil
}
