// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-scene-outbox/internal/control"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/service"
	"github.com/MKhiriev/go-scene-outbox/internal/store"
	"github.com/MKhiriev/go-scene-outbox/internal/utils"
	"github.com/MKhiriev/go-scene-outbox/internal/validators"
	"github.com/MKhiriev/go-scene-outbox/models"
)

// SyncSourceRequest marks drains started by a REQUEST_SYNC message.
const SyncSourceRequest = "request"

// SyncWorker owns the durable queue. It answers control requests and runs at
// most one drain at a time: automatic requests are dropped while a drain
// runs, manual ones wait for it.
type SyncWorker struct {
	queue     store.QueueStore
	drainer   *service.Drainer
	requests  <-chan control.Request
	validator validators.Validator

	drainMu sync.Mutex
	wg      sync.WaitGroup

	logger *logger.Logger
}

func NewSyncWorker(queue store.QueueStore, drainer *service.Drainer, requests <-chan control.Request, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{
		queue:     queue,
		drainer:   drainer,
		requests:  requests,
		validator: validators.NewQueueItemValidator(),
		logger:    logger,
	}
}

// Run serves control requests until ctx is cancelled, then waits for a
// running drain to finish.
func (w *SyncWorker) Run(ctx context.Context) error {
	w.logger.Info().Str("func", "SyncWorker.Run").Msg("sync worker started")

	control.NewServer(w, w.logger).Serve(ctx, w.requests)
	w.wg.Wait()

	w.logger.Info().Str("func", "SyncWorker.Run").Msg("sync worker stopped")
	return nil
}

// Enqueue stores an item received over the control channel. Items are
// checked again here since the channel may be fed by any foreground.
func (w *SyncWorker) Enqueue(ctx context.Context, item models.QueueItem) (models.QueueItem, error) {
	if err := w.validator.Validate(ctx, item, validators.FieldStream, validators.FieldPayload, validators.FieldPriority, validators.FieldRetryCount); err != nil {
		return models.QueueItem{}, err
	}
	return w.queue.Append(ctx, item)
}

func (w *SyncWorker) Status(ctx context.Context) models.QueueStatus {
	return service.CollectStatus(ctx, w.queue, w.logger)
}

func (w *SyncWorker) Clear(ctx context.Context, streams []models.Stream) error {
	var errs []error
	for _, stream := range streams {
		if err := w.queue.Clear(ctx, stream); err != nil {
			errs = append(errs, fmt.Errorf("clear %s: %w", stream, err))
		}
	}
	return errors.Join(errs...)
}

func (w *SyncWorker) ManualSync(ctx context.Context) models.SyncResults {
	w.drainMu.Lock()
	defer w.drainMu.Unlock()

	return w.drainer.DrainAll(utils.WithSyncSource(ctx, service.SyncSourceManual))
}

func (w *SyncWorker) RequestSync(ctx context.Context) bool {
	if !w.drainMu.TryLock() {
		w.logger.Debug().Str("func", "SyncWorker.RequestSync").Msg("drain in progress, request dropped")
		return false
	}

	drainCtx := utils.WithSyncSource(context.WithoutCancel(ctx), SyncSourceRequest)
	w.wg.Go(func() {
		defer w.drainMu.Unlock()
		w.drainer.DrainAll(drainCtx)
	})
	return true
}
