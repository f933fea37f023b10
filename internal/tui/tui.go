// Package tui renders the terminal status screen of the outbox client:
// per-stream badges, the aggregate indicator and the Sync Now and Clear Queue
// actions.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/service"
	"github.com/MKhiriev/go-scene-outbox/models"
)

// refreshInterval is how often the screen re-reads the queue status.
const refreshInterval = 2 * time.Second

type TUI struct {
	manager   service.SyncManager
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(manager service.SyncManager, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{manager: manager, buildInfo: buildInfo, logger: logger}
}

// Run shows the status screen until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newStatusModel(ctx, t.manager, t.buildInfo, refreshInterval)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
