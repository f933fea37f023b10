package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-scene-outbox/internal/adapter"
	"github.com/MKhiriev/go-scene-outbox/internal/config"
	"github.com/MKhiriev/go-scene-outbox/internal/control"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/store"
	"github.com/MKhiriev/go-scene-outbox/models"
)

// ClientServices groups the foreground services of the outbox client.
type ClientServices struct {
	// Backend is the queue backend chosen at startup.
	Backend QueueBackend
	// SyncManager is the public entry point used by handlers and the UI.
	SyncManager SyncManager
}

// NewClientServices probes the background worker through client, selects the
// queue backend and builds the sync manager on top of it.
func NewClientServices(ctx context.Context, storages *store.ClientStorages, processors adapter.StreamProcessors, client *control.Client, cfg config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	if storages == nil || storages.Fallback == nil {
		return nil, errors.New("fallback store is required")
	}

	fallbackDrainer := NewDrainer(storages.Fallback, processors, logger)
	backend := SelectBackend(ctx, client, storages.Fallback, fallbackDrainer, cfg.Workers.ControlTimeout, logger)

	var prefs PreferencesRepository
	if storages.Preferences != nil {
		prefs = storages.Preferences
	}

	manager, err := NewSyncManager(backend, processors, prefs, models.DeviceState{}, logger)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		Backend:     backend,
		SyncManager: manager,
	}, nil
}
