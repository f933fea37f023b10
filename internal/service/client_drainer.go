// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-scene-outbox/internal/adapter"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/store"
	"github.com/MKhiriev/go-scene-outbox/internal/utils"
	"github.com/MKhiriev/go-scene-outbox/models"
)

// Drainer runs drain cycles over one QueueStore. A cycle attempts every item
// of a stream once, in policy order, and never waits for the network to come
// back: the next attempt happens on the next trigger.
//
// Drainer does not serialise cycles; callers hold their own drain lock.
type Drainer struct {
	store      store.QueueStore
	processors adapter.StreamProcessors
	policies   map[models.Stream]StreamPolicy
	now        func() time.Time
	logger     *logger.Logger
}

func NewDrainer(queue store.QueueStore, processors adapter.StreamProcessors, logger *logger.Logger) *Drainer {
	return &Drainer{
		store:      queue,
		processors: processors,
		policies:   DefaultPolicies,
		now:        time.Now,
		logger:     logger,
	}
}

// DrainAll drains every stream. Streams are independent: a stream that
// cannot be listed is skipped and the others still drain.
func (d *Drainer) DrainAll(ctx context.Context) models.SyncResults {
	source, _ := utils.GetSyncSourceFromContext(ctx)
	started := d.now()

	var results models.SyncResults
	for _, stream := range models.Streams {
		res, err := d.DrainStream(ctx, stream)
		if err != nil {
			d.logger.Err(err).
				Str("func", "Drainer.DrainAll").
				Str("stream", stream.String()).
				Msg("stream skipped in this cycle")
		}
		results.Add(stream, res)
	}

	d.logger.Info().
		Str("func", "Drainer.DrainAll").
		Str("source", source).
		Int("successful", results.Successful).
		Int("failed", results.Failed).
		Dur("took", d.now().Sub(started)).
		Msg("drain cycle finished")

	return results
}

// DrainStream runs one cycle over stream and tallies its outcome.
func (d *Drainer) DrainStream(ctx context.Context, stream models.Stream) (models.StreamResult, error) {
	var res models.StreamResult

	items, err := d.store.List(ctx, stream)
	if err != nil {
		return res, fmt.Errorf("list %s: %w", stream, err)
	}

	policy := policyFor(d.policies, stream)
	policy.Sort(items)

	for _, item := range items {
		switch d.attempt(ctx, policy, item) {
		case outcomeDelivered:
			res.Delivered++
		case outcomeRetried:
			res.Retried++
		case outcomeExhausted:
			res.Exhausted++
		case outcomeSkipped:
		}
	}

	return res, nil
}

type attemptOutcome int

const (
	outcomeDelivered attemptOutcome = iota
	outcomeRetried
	outcomeExhausted
	outcomeSkipped
)

// attempt delivers one item and applies the retry state machine:
// delivered and exhausted items are removed, others keep their place with
// updated bookkeeping.
func (d *Drainer) attempt(ctx context.Context, policy StreamPolicy, item models.QueueItem) attemptOutcome {
	log := d.logger.With().
		Str("stream", item.Stream.String()).
		Int64("item_id", item.ID).
		Logger()

	deliveryCtx := adapter.WithIdempotencyKey(ctx, item.IdempotencyKey())
	deliveryErr := deliver(deliveryCtx, d.processors, item.Stream, item.Payload)

	if deliveryErr == nil {
		if err := d.store.Delete(ctx, item.Stream, item.ID); err != nil {
			// the item may be delivered again; the endpoint deduplicates
			log.Err(err).Str("func", "Drainer.attempt").Msg("failed to remove delivered item")
		}
		return outcomeDelivered
	}

	// a cancelled delivery never reached the endpoint, so no retry is charged
	if errors.Is(deliveryErr, context.Canceled) {
		log.Debug().Err(deliveryErr).Str("func", "Drainer.attempt").Msg("delivery cancelled, item left untouched")
		return outcomeSkipped
	}

	attemptedAt := d.now().UTC()
	item.RetryCount++
	item.LastAttemptAt = &attemptedAt
	maxRetries := policy.MaxRetriesFor(item.Priority)

	if policy.Exhausted(item) {
		log.Warn().Err(deliveryErr).
			Str("func", "Drainer.attempt").
			Int("retry_count", item.RetryCount).
			Int("max_retries", maxRetries).
			Msg("retry budget exhausted, dropping item")
		if err := d.store.Delete(ctx, item.Stream, item.ID); err != nil {
			log.Err(err).Str("func", "Drainer.attempt").Msg("failed to remove exhausted item")
		}
		return outcomeExhausted
	}

	log.Debug().Err(deliveryErr).
		Str("func", "Drainer.attempt").
		Int("retry_count", item.RetryCount).
		Int("max_retries", maxRetries).
		Msg("delivery failed, kept for next cycle")

	if err := d.store.Update(ctx, item); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			log.Debug().Str("func", "Drainer.attempt").Msg("item removed during drain")
		} else {
			log.Err(err).Str("func", "Drainer.attempt").Msg("failed to persist retry bookkeeping")
		}
	}
	return outcomeRetried
}
