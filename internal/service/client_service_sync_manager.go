// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-scene-outbox/internal/adapter"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/utils"
	"github.com/MKhiriev/go-scene-outbox/internal/validators"
	"github.com/MKhiriev/go-scene-outbox/models"
)

// Trigger sources recorded on drains started by the manager.
const (
	SyncSourceManual   = "manual"
	SyncSourceOnline   = "online"
	SyncSourcePeriodic = "periodic"
)

type syncManager struct {
	backend    QueueBackend
	processors adapter.StreamProcessors
	prefs      PreferencesRepository
	validator  validators.Validator

	mu    sync.RWMutex
	state models.DeviceState

	wg     sync.WaitGroup
	now    func() time.Time
	logger *logger.Logger
}

// NewSyncManager returns the foreground [SyncManager]. The device starts in
// state. A nil prefs keeps preferences in memory with auto-sync enabled.
func NewSyncManager(backend QueueBackend, processors adapter.StreamProcessors, prefs PreferencesRepository, state models.DeviceState, logger *logger.Logger) (SyncManager, error) {
	if backend == nil {
		return nil, ErrNoBackend
	}
	if processors == nil {
		return nil, ErrNoProcessors
	}
	if prefs == nil {
		prefs = &memoryPreferences{prefs: models.SyncPreferences{AutoSync: true}}
	}

	return &syncManager{
		backend:    backend,
		processors: processors,
		prefs:      prefs,
		validator:  validators.NewQueueItemValidator(),
		state:      state,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (m *syncManager) Queue(ctx context.Context, stream models.Stream, payload json.RawMessage, priority models.Priority) (models.EnqueueResult, error) {
	item := models.QueueItem{
		Stream:     stream,
		Payload:    payload,
		Priority:   itemPriority(stream, payload, priority),
		EnqueuedAt: m.now().UTC(),
	}
	if err := m.validator.Validate(ctx, item); err != nil {
		return models.EnqueueResult{}, err
	}

	log := logger.FromContext(ctx).With().
		Str("func", "syncManager.Queue").
		Str("stream", stream.String()).
		Logger()

	var deliveryErr error
	if m.IsOnline() {
		if deliveryErr = deliver(ctx, m.processors, stream, payload); deliveryErr == nil {
			return models.EnqueueResult{Delivered: true, Message: "delivered"}, nil
		}
		log.Debug().Err(deliveryErr).Msg("immediate delivery failed, queueing")
	}

	stored, err := m.backend.Enqueue(ctx, item)
	if err != nil {
		log.Err(err).Str("backend", m.backend.Name()).Msg("item could not be queued")
		return models.EnqueueResult{Message: "not queued: " + describeError(err)}, nil
	}

	log.Info().Int64("item_id", stored.ID).Str("backend", m.backend.Name()).Msg("item queued")

	message := "queued while offline"
	if deliveryErr != nil {
		message = "queued after failed delivery: " + describeError(deliveryErr)
	}
	return models.EnqueueResult{Queued: true, Message: message}, nil
}

func (m *syncManager) GetQueueStatus(ctx context.Context) models.QueueStatus {
	return m.backend.Status(ctx)
}

func (m *syncManager) ClearQueue(ctx context.Context, streams ...models.Stream) (models.OperationResult, error) {
	for _, stream := range streams {
		if !stream.Valid() {
			return models.OperationResult{}, fmt.Errorf("%w: %s", models.ErrInvalidStream, stream)
		}
	}
	if len(streams) == 0 {
		streams = models.Streams
	}

	if err := m.backend.Clear(ctx, streams); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncManager.ClearQueue").Msg("clear failed")
		return models.OperationResult{Message: "clear failed: " + describeError(err)}, nil
	}

	return models.OperationResult{Success: true, Message: fmt.Sprintf("cleared %s", streamList(streams))}, nil
}

func (m *syncManager) TriggerSync(ctx context.Context) models.SyncReport {
	ctx = utils.WithSyncSource(ctx, SyncSourceManual)

	results, err := m.backend.ManualSync(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncManager.TriggerSync").Msg("manual sync failed")
		return models.SyncReport{Message: "sync failed: " + describeError(err)}
	}

	return models.SyncReport{
		Success: true,
		Results: results,
		Message: fmt.Sprintf("%d delivered, %d failed", results.Successful, results.Failed),
	}
}

func (m *syncManager) RequestSync(ctx context.Context, source string) bool {
	log := logger.FromContext(ctx).With().
		Str("func", "syncManager.RequestSync").
		Str("source", source).
		Logger()

	if !m.prefs.Load().AllowsAutoSync(m.DeviceState()) {
		log.Debug().Msg("automatic sync not allowed by preferences")
		return false
	}

	accepted, err := m.backend.RequestSync(utils.WithSyncSource(ctx, source))
	if err != nil {
		log.Warn().Err(err).Msg("sync request failed")
		return false
	}
	if !accepted {
		log.Debug().Msg("drain already running, request coalesced")
	}
	return accepted
}

func (m *syncManager) SetOnline(ctx context.Context, online bool) {
	m.updateState(ctx, func(state *models.DeviceState) { state.Online = online })
}

func (m *syncManager) SetDeviceState(ctx context.Context, state models.DeviceState) {
	m.updateState(ctx, func(current *models.DeviceState) { *current = state })
}

// updateState applies mutate under the state lock and requests a drain when
// the device comes back online.
func (m *syncManager) updateState(ctx context.Context, mutate func(*models.DeviceState)) {
	m.mu.Lock()
	wasOnline := m.state.Online
	mutate(&m.state)
	online := m.state.Online
	m.mu.Unlock()

	if wasOnline || !online {
		return
	}

	logger.FromContext(ctx).Info().Str("func", "syncManager.updateState").Msg("connectivity restored")

	// the drain outlives the caller's request
	drainCtx := context.WithoutCancel(ctx)
	m.wg.Go(func() {
		m.RequestSync(drainCtx, SyncSourceOnline)
	})
}

func (m *syncManager) IsOnline() bool {
	return m.DeviceState().Online
}

func (m *syncManager) DeviceState() models.DeviceState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *syncManager) Preferences() models.SyncPreferences {
	return m.prefs.Load()
}

func (m *syncManager) SetPreferences(prefs models.SyncPreferences) error {
	return m.prefs.Save(prefs)
}

func (m *syncManager) Wait() {
	m.wg.Wait()
}

// itemPriority returns the priority an item is stored with. Only alerts carry
// one; an alert without an explicit priority takes the "priority" field of
// its payload and is safe when that is missing.
func itemPriority(stream models.Stream, payload json.RawMessage, priority models.Priority) models.Priority {
	if stream != models.StreamAlerts {
		return models.PriorityNone
	}
	if priority != models.PriorityNone {
		return priority
	}

	var body struct {
		Priority string `json:"priority"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		if parsed, err := models.ParsePriority(body.Priority); err == nil && parsed != models.PriorityNone {
			return parsed
		}
	}
	return models.PrioritySafe
}

func streamList(streams []models.Stream) string {
	if len(streams) == len(models.Streams) {
		return "all streams"
	}
	names := make([]string, 0, len(streams))
	for _, s := range streams {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

type memoryPreferences struct {
	mu    sync.Mutex
	prefs models.SyncPreferences
}

func (p *memoryPreferences) Load() models.SyncPreferences {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.prefs
}

func (p *memoryPreferences) Save(prefs models.SyncPreferences) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prefs = prefs
	return nil
}
