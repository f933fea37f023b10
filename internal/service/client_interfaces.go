package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-scene-outbox/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// QueueBackend is where the sync manager keeps items it could not deliver
// right away. It hides whether the queue lives in the background worker or in
// the foreground fallback store.
type QueueBackend interface {
	// Name identifies the backend in logs and status output.
	Name() string

	// Enqueue stores item and returns it with its assigned ID.
	Enqueue(ctx context.Context, item models.QueueItem) (models.QueueItem, error)

	// Status returns the current content of every stream. It never fails:
	// unreadable streams are reported as empty.
	Status(ctx context.Context) models.QueueStatus

	// Clear empties the given streams.
	Clear(ctx context.Context, streams []models.Stream) error

	// ManualSync runs one drain cycle and waits for it, even if an automatic
	// drain is already in progress.
	ManualSync(ctx context.Context) (models.SyncResults, error)

	// RequestSync starts an automatic drain unless one is already running,
	// and reports whether it started.
	RequestSync(ctx context.Context) (bool, error)
}

// SyncManager is the foreground entry point of the outbox. Feature code hands
// payloads to Queue; the UI reads status and triggers drains.
type SyncManager interface {
	// Queue delivers payload at once when online, and queues it otherwise or
	// when the delivery fails. Returns an error only for an unknown stream or
	// an invalid payload.
	Queue(ctx context.Context, stream models.Stream, payload json.RawMessage, priority models.Priority) (models.EnqueueResult, error)

	// GetQueueStatus returns the per-stream status, computed on every call.
	GetQueueStatus(ctx context.Context) models.QueueStatus

	// ClearQueue empties the given streams, or all of them when none is given.
	ClearQueue(ctx context.Context, streams ...models.Stream) (models.OperationResult, error)

	// TriggerSync runs a manual drain ("Sync Now"). It ignores preferences
	// and device state.
	TriggerSync(ctx context.Context) models.SyncReport

	// RequestSync starts an automatic drain if preferences and device state
	// allow it. source names the trigger in logs.
	RequestSync(ctx context.Context, source string) bool

	// SetOnline records connectivity. A transition to online requests an
	// automatic drain.
	SetOnline(ctx context.Context, online bool)

	// SetDeviceState records connectivity, network kind and battery saver in
	// one step.
	SetDeviceState(ctx context.Context, state models.DeviceState)

	IsOnline() bool
	DeviceState() models.DeviceState

	Preferences() models.SyncPreferences
	SetPreferences(prefs models.SyncPreferences) error

	// Wait blocks until every automatic drain started by the manager has
	// returned.
	Wait()
}

// PreferencesRepository persists the user's sync preferences.
type PreferencesRepository interface {
	Load() models.SyncPreferences
	Save(prefs models.SyncPreferences) error
}
