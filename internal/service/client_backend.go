// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-scene-outbox/internal/control"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/store"
	"github.com/MKhiriev/go-scene-outbox/models"
)

// localDrain drains the fallback store from the foreground. Automatic
// requests are coalesced while a drain runs; manual ones wait for it. A
// started cycle runs to completion even if the caller goes away.
type localDrain struct {
	drainer *Drainer
	mu      sync.Mutex
}

func (l *localDrain) manual(ctx context.Context) models.SyncResults {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.drainer.DrainAll(context.WithoutCancel(ctx))
}

func (l *localDrain) request(ctx context.Context) bool {
	if !l.mu.TryLock() {
		return false
	}
	defer l.mu.Unlock()
	l.drainer.DrainAll(context.WithoutCancel(ctx))
	return true
}

// fallbackBackend keeps the queue in the synchronous fallback store and
// drains it in the foreground. It is used when no background worker answers
// at startup.
type fallbackBackend struct {
	store  store.QueueStore
	local  *localDrain
	logger *logger.Logger
}

// NewFallbackBackend returns a [QueueBackend] working on the fallback store
// alone.
func NewFallbackBackend(fallback store.QueueStore, drainer *Drainer, logger *logger.Logger) QueueBackend {
	return &fallbackBackend{
		store:  fallback,
		local:  &localDrain{drainer: drainer},
		logger: logger,
	}
}

func (b *fallbackBackend) Name() string { return "fallback" }

func (b *fallbackBackend) Enqueue(ctx context.Context, item models.QueueItem) (models.QueueItem, error) {
	return b.store.Append(ctx, item)
}

func (b *fallbackBackend) Status(ctx context.Context) models.QueueStatus {
	return CollectStatus(ctx, b.store, b.logger)
}

func (b *fallbackBackend) Clear(ctx context.Context, streams []models.Stream) error {
	return clearStreams(ctx, b.store, streams)
}

func (b *fallbackBackend) ManualSync(ctx context.Context) (models.SyncResults, error) {
	return b.local.manual(ctx), nil
}

func (b *fallbackBackend) RequestSync(ctx context.Context) (bool, error) {
	return b.local.request(ctx), nil
}

// workerBackend talks to the background worker over the control channel.
// Items that could not be handed over are kept in the fallback store and
// flushed to the worker before the next drain.
type workerBackend struct {
	client   *control.Client
	fallback store.QueueStore
	local    *localDrain
	logger   *logger.Logger
}

// NewWorkerBackend returns a [QueueBackend] backed by the background worker.
func NewWorkerBackend(client *control.Client, fallback store.QueueStore, drainer *Drainer, logger *logger.Logger) QueueBackend {
	return &workerBackend{
		client:   client,
		fallback: fallback,
		local:    &localDrain{drainer: drainer},
		logger:   logger,
	}
}

func (b *workerBackend) Name() string { return "worker" }

func (b *workerBackend) Enqueue(ctx context.Context, item models.QueueItem) (models.QueueItem, error) {
	stored, err := b.client.QueueForSync(ctx, item)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, control.ErrUnreachable) {
		return models.QueueItem{}, err
	}

	logger.FromContext(ctx).Warn().Err(err).
		Str("func", "workerBackend.Enqueue").
		Str("stream", item.Stream.String()).
		Msg("worker unreachable, storing item in fallback store")
	return b.fallback.Append(ctx, item)
}

// Status is the worker's view plus anything still waiting in the fallback
// store.
func (b *workerBackend) Status(ctx context.Context) models.QueueStatus {
	status, err := b.client.GetSyncStatus(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "workerBackend.Status").
			Msg("worker status unavailable")
		status = models.NewQueueStatus()
	}
	return mergeStatus(status, CollectStatus(ctx, b.fallback, b.logger))
}

func (b *workerBackend) Clear(ctx context.Context, streams []models.Stream) error {
	return errors.Join(
		b.client.ClearQueue(ctx, streams),
		clearStreams(ctx, b.fallback, streams),
	)
}

// ManualSync flushes stranded items and asks the worker for a drain. If the
// worker does not answer, the fallback store is drained locally instead.
func (b *workerBackend) ManualSync(ctx context.Context) (models.SyncResults, error) {
	b.flushFallback(ctx)

	results, err := b.client.TriggerManualSync(ctx)
	if err == nil {
		return results, nil
	}
	if !errors.Is(err, control.ErrUnreachable) {
		return models.SyncResults{}, err
	}

	logger.FromContext(ctx).Warn().Err(err).
		Str("func", "workerBackend.ManualSync").
		Msg("worker unreachable, draining fallback store locally")
	return b.local.manual(ctx), nil
}

func (b *workerBackend) RequestSync(ctx context.Context) (bool, error) {
	b.flushFallback(ctx)

	accepted, err := b.client.RequestSync(ctx)
	if err == nil {
		return accepted, nil
	}
	if !errors.Is(err, control.ErrUnreachable) {
		return false, err
	}
	return b.local.request(ctx), nil
}

// flushFallback hands items from the fallback store over to the worker,
// keeping their original enqueue time and retry bookkeeping. It stops at the
// first unreachable answer; a rejected item stays in the fallback store.
func (b *workerBackend) flushFallback(ctx context.Context) {
	log := logger.FromContext(ctx)
	flushed := 0

	for _, stream := range models.Streams {
		items, err := b.fallback.List(ctx, stream)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "workerBackend.flushFallback").
				Str("stream", stream.String()).
				Msg("fallback stream unreadable, not flushed")
			continue
		}

		for _, item := range items {
			if _, err = b.client.QueueForSync(ctx, item); err != nil {
				log.Warn().Err(err).
					Str("func", "workerBackend.flushFallback").
					Str("stream", stream.String()).
					Int64("item_id", item.ID).
					Msg("item not flushed")
				if errors.Is(err, control.ErrUnreachable) {
					return
				}
				continue
			}
			if err = b.fallback.Delete(ctx, stream, item.ID); err != nil {
				log.Err(err).
					Str("func", "workerBackend.flushFallback").
					Int64("item_id", item.ID).
					Msg("flushed item left in fallback store")
			}
			flushed++
		}
	}

	if flushed > 0 {
		log.Info().Str("func", "workerBackend.flushFallback").Int("flushed", flushed).Msg("fallback items handed to worker")
	}
}

// SelectBackend probes the worker once and picks the backend for the rest of
// the process lifetime.
func SelectBackend(ctx context.Context, client *control.Client, fallback store.QueueStore, drainer *Drainer, probeTimeout time.Duration, logger *logger.Logger) QueueBackend {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if _, err := client.GetSyncStatus(probeCtx); err != nil {
		logger.Warn().Err(err).Str("func", "SelectBackend").Msg("background worker not reachable, using fallback store")
		return NewFallbackBackend(fallback, drainer, logger)
	}

	logger.Info().Str("func", "SelectBackend").Msg("background worker reachable")
	return NewWorkerBackend(client, fallback, drainer, logger)
}

func clearStreams(ctx context.Context, queue store.QueueStore, streams []models.Stream) error {
	var errs []error
	for _, stream := range streams {
		if err := queue.Clear(ctx, stream); err != nil {
			errs = append(errs, fmt.Errorf("clear %s: %w", stream, err))
		}
	}
	return errors.Join(errs...)
}
