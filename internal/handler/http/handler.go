package http

import (
	"github.com/MKhiriev/go-scene-outbox/internal/config"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/service"
	"github.com/MKhiriev/go-scene-outbox/models"
)

type Handler struct {
	manager   service.SyncManager
	buildInfo models.AppBuildInfo

	deviceID     string
	deviceSecret string

	logger *logger.Logger
}

// NewHandler returns the control API handler. Requests must carry a device
// token signed with app.DeviceSecret unless the secret is empty.
func NewHandler(manager service.SyncManager, app config.ClientApp, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		manager:      manager,
		buildInfo:    buildInfo,
		deviceID:     app.DeviceID,
		deviceSecret: app.DeviceSecret,
		logger:       logger,
	}
}
