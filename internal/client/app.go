package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-scene-outbox/internal/adapter"
	"github.com/MKhiriev/go-scene-outbox/internal/config"
	"github.com/MKhiriev/go-scene-outbox/internal/connectivity"
	"github.com/MKhiriev/go-scene-outbox/internal/control"
	"github.com/MKhiriev/go-scene-outbox/internal/handler"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/server"
	"github.com/MKhiriev/go-scene-outbox/internal/service"
	"github.com/MKhiriev/go-scene-outbox/internal/store"
	"github.com/MKhiriev/go-scene-outbox/internal/tui"
	"github.com/MKhiriev/go-scene-outbox/internal/workers"
	"github.com/MKhiriev/go-scene-outbox/models"
)

type App struct {
	cfg       config.ClientConfig
	buildInfo models.AppBuildInfo

	storages   *store.ClientStorages
	processors adapter.StreamProcessors
	checker    adapter.HealthChecker

	requests   chan control.Request
	control    *control.Client
	syncWorker *workers.SyncWorker

	logger *logger.Logger
}

// NewApp opens the stores and the delivery adapter. When the durable database
// cannot be opened the app still starts, backed by the fallback store only.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("client config is required")
	}

	defaults := models.SyncPreferences{
		AutoSync:         cfg.Sync.AutoSync,
		WiFiOnly:         cfg.Sync.WiFiOnly,
		BatterySaverSync: cfg.Sync.BatterySaverSync,
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, defaults, logger)
	if err != nil {
		logger.Error().Err(err).Msg("durable store unavailable, continuing with fallback store only")
		storages, err = store.NewFallbackStorages(cfg.Storage, defaults, logger)
		if err != nil {
			return nil, fmt.Errorf("create local storage: %w", err)
		}
	}

	processors, err := adapter.NewHTTPStreamProcessors(cfg.Adapter, cfg.App, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create stream processors: %w", err)
	}

	checker, err := adapter.NewHTTPHealthChecker(cfg.Adapter)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create health checker: %w", err)
	}

	requests := control.NewChannel()

	app := &App{
		cfg:        *cfg,
		buildInfo:  buildInfo,
		storages:   storages,
		processors: processors,
		checker:    checker,
		requests:   requests,
		control:    control.NewClient(requests, cfg.Workers.ControlTimeout, cfg.Workers.ManualSyncTimeout),
		logger:     logger,
	}

	if storages.Durable != nil {
		drainer := service.NewDrainer(storages.Durable, processors, logger)
		app.syncWorker = workers.NewSyncWorker(storages.Durable, drainer, requests, logger)
	}

	return app, nil
}

// Run starts the background worker first so that backend selection can reach
// it, then the foreground workers. It returns once every worker has stopped
// and every drain started by the sync manager has finished.
func (a *App) Run(ctx context.Context) error {
	defer a.storages.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	backgroundDone := make(chan error, 1)
	if a.syncWorker != nil {
		go func() { backgroundDone <- a.syncWorker.Run(ctx) }()
	} else {
		backgroundDone <- nil
	}

	services, err := service.NewClientServices(ctx, a.storages, a.processors, a.control, a.cfg, a.logger)
	if err != nil {
		cancel()
		return errors.Join(fmt.Errorf("create client services: %w", err), <-backgroundDone)
	}
	manager := services.SyncManager

	foreground, err := a.foregroundWorkers(manager, cancel)
	if err != nil {
		cancel()
		return errors.Join(err, <-backgroundDone)
	}

	a.logger.Info().
		Str("backend", services.Backend.Name()).
		Bool("interactive", a.cfg.App.Interactive).
		Msg("outbox client started")

	err = foreground.Run(ctx)
	cancel()
	manager.Wait()

	a.logger.Info().Msg("outbox client stopped")
	return errors.Join(err, <-backgroundDone)
}

func (a *App) foregroundWorkers(manager service.SyncManager, stop context.CancelFunc) (*workers.Workers, error) {
	foreground := workers.NewWorkers(
		workers.NewPeriodicSync(manager, a.cfg.Workers.SyncSchedule, a.logger),
		connectivity.NewMonitor(a.checker, manager, a.cfg.Workers.ProbeInterval, a.logger),
	)

	if a.cfg.Server.HTTPAddress != "" {
		handlers, err := handler.NewHandlers(manager, a.cfg, a.buildInfo, a.logger)
		if err != nil {
			return nil, fmt.Errorf("create handlers: %w", err)
		}
		srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
		if err != nil {
			return nil, fmt.Errorf("create server: %w", err)
		}
		foreground.Add(srv)
	}

	if a.cfg.App.Interactive {
		ui := tui.New(manager, a.buildInfo, a.logger)
		// quitting the status screen ends the process
		foreground.Add(workers.WorkerFunc(func(ctx context.Context) error {
			defer stop()
			return ui.Run(ctx)
		}))
	}

	return foreground, nil
}
