// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/models"
)

// FallbackKeyPrefix prefixes the key/value key of every stream, e.g.
// "outbox:alerts".
const FallbackKeyPrefix = "outbox:"

// FallbackKey returns the key/value key holding stream's items.
func FallbackKey(stream models.Stream) string {
	return FallbackKeyPrefix + stream.String()
}

// fallbackStreamState is the JSON document stored under a stream key.
type fallbackStreamState struct {
	NextID int64              `json:"next_id"`
	Items  []models.QueueItem `json:"items"`
}

// fallbackQueueStore is the degraded-mode [QueueStore] used when the
// background worker cannot be reached. Each stream lives under its own key,
// so corrupted content in one key never affects the other streams.
type fallbackQueueStore struct {
	kv     KeyValue
	logger *logger.Logger
	now    func() time.Time

	mu sync.Mutex
}

func NewFallbackQueueStore(kv KeyValue, logger *logger.Logger) QueueStore {
	return &fallbackQueueStore{
		kv:     kv,
		logger: logger,
		now:    time.Now,
	}
}

func (f *fallbackQueueStore) Append(_ context.Context, item models.QueueItem) (models.QueueItem, error) {
	if !item.Stream.Valid() {
		return models.QueueItem{}, fmt.Errorf("%w: %w", ErrInvalidItem, models.ErrInvalidStream)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load(item.Stream)
	if err != nil {
		if !errors.Is(err, ErrCorruptedStream) {
			return models.QueueItem{}, err
		}
		// the corrupted value is replaced by a fresh stream
		f.logger.Warn().Err(err).
			Str("func", "fallbackQueueStore.Append").
			Str("stream", item.Stream.String()).
			Msg("discarding corrupted fallback stream")
		state = fallbackStreamState{NextID: 1}
	}

	if item.EnqueuedAt.IsZero() {
		item.EnqueuedAt = f.now().UTC()
	}

	evicted := 0
	if len(state.Items) >= models.StreamCapacity {
		sort.SliceStable(state.Items, func(i, j int) bool { return state.Items[i].Before(state.Items[j]) })
		evicted = len(state.Items) - models.StreamCapacity + 1
		state.Items = append([]models.QueueItem(nil), state.Items[evicted:]...)
	}

	item.ID = state.NextID
	state.NextID++
	state.Items = append(state.Items, item)

	if err = f.save(item.Stream, state); err != nil {
		return models.QueueItem{}, err
	}

	if evicted > 0 {
		f.logger.Info().
			Str("func", "fallbackQueueStore.Append").
			Str("stream", item.Stream.String()).
			Int("evicted", evicted).
			Msg("stream at capacity, oldest items evicted")
	}

	return item, nil
}

func (f *fallbackQueueStore) List(_ context.Context, stream models.Stream) ([]models.QueueItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load(stream)
	if err != nil {
		return nil, err
	}

	items := append(make([]models.QueueItem, 0, len(state.Items)), state.Items...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Before(items[j]) })
	return items, nil
}

func (f *fallbackQueueStore) Delete(_ context.Context, stream models.Stream, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load(stream)
	if err != nil {
		return err
	}

	kept := state.Items[:0]
	for _, it := range state.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(state.Items) {
		return nil
	}
	state.Items = kept

	return f.save(stream, state)
}

func (f *fallbackQueueStore) Update(_ context.Context, item models.QueueItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load(item.Stream)
	if err != nil {
		return err
	}

	for i := range state.Items {
		if state.Items[i].ID == item.ID {
			state.Items[i].RetryCount = item.RetryCount
			state.Items[i].LastAttemptAt = item.LastAttemptAt
			return f.save(item.Stream, state)
		}
	}

	return fmt.Errorf("%w (stream=%s, id=%d)", ErrItemNotFound, item.Stream, item.ID)
}

func (f *fallbackQueueStore) Clear(_ context.Context, stream models.Stream) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load(stream)
	if errors.Is(err, ErrCorruptedStream) {
		if err = f.kv.Remove(FallbackKey(stream)); err != nil {
			return fmt.Errorf("clear fallback stream %s: %w", stream, err)
		}
		return nil
	}
	if err != nil {
		return err
	}
	if len(state.Items) == 0 {
		return nil
	}

	// next_id survives so ids keep growing within the stream
	state.Items = nil
	return f.save(stream, state)
}

func (f *fallbackQueueStore) load(stream models.Stream) (fallbackStreamState, error) {
	if !stream.Valid() {
		return fallbackStreamState{}, fmt.Errorf("%w: %w", ErrInvalidItem, models.ErrInvalidStream)
	}

	raw, ok, err := f.kv.Get(FallbackKey(stream))
	if err != nil {
		return fallbackStreamState{}, fmt.Errorf("read fallback stream %s: %w", stream, err)
	}
	if !ok || raw == "" {
		return fallbackStreamState{NextID: 1}, nil
	}

	var state fallbackStreamState
	if err = json.Unmarshal([]byte(raw), &state); err != nil {
		return fallbackStreamState{}, fmt.Errorf("%w: %s: %w", ErrCorruptedStream, stream, err)
	}
	if state.NextID <= 0 {
		state.NextID = 1
	}
	for _, it := range state.Items {
		if it.ID >= state.NextID {
			state.NextID = it.ID + 1
		}
	}

	return state, nil
}

func (f *fallbackQueueStore) save(stream models.Stream, state fallbackStreamState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode fallback stream %s: %w", stream, err)
	}
	if err = f.kv.Set(FallbackKey(stream), string(payload)); err != nil {
		return fmt.Errorf("write fallback stream %s: %w", stream, err)
	}
	return nil
}
