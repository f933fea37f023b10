// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-scene-outbox/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// QueueStore is the per-stream ordered collection of pending outbox items.
// Both the durable SQLite store and the fallback key/value store implement
// it, so callers observe identical semantics whichever backend is active.
type QueueStore interface {
	// Append stores item in item.Stream, assigning its ID (and EnqueuedAt when
	// zero). When the stream already holds [models.StreamCapacity] items the
	// oldest ones are evicted first. Returns the stored item.
	Append(ctx context.Context, item models.QueueItem) (models.QueueItem, error)

	// List returns every item of stream, oldest first.
	List(ctx context.Context, stream models.Stream) ([]models.QueueItem, error)

	// Delete removes the item with the given id. Deleting a missing item is
	// not an error.
	Delete(ctx context.Context, stream models.Stream, id int64) error

	// Update persists retry bookkeeping (RetryCount, LastAttemptAt) of item.
	// Returns [ErrItemNotFound] if the item no longer exists.
	Update(ctx context.Context, item models.QueueItem) error

	// Clear removes every item of stream.
	Clear(ctx context.Context, stream models.Stream) error
}

// KeyValue is a synchronous textual key/value store, the backing of the
// fallback queue and of the persisted sync preferences.
type KeyValue interface {
	// Get returns the value stored under key and whether it exists.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}
