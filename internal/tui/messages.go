package tui

import (
	"github.com/MKhiriev/go-scene-outbox/models"
)

type statusLoadedMsg struct {
	status models.QueueStatus
	online bool
}

type syncDoneMsg struct {
	report models.SyncReport
}

type clearDoneMsg struct {
	result models.OperationResult
	err    error
}

type tickMsg struct{}
