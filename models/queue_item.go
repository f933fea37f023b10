// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// StreamCapacity is the maximum number of pending items a single stream may
// hold. Appending past it evicts the oldest item of that stream.
const StreamCapacity = 50

// QueueItem is one pending unit of outbox work.
type QueueItem struct {
	// ID is assigned by the store on append and grows monotonically within
	// the stream.
	ID int64 `json:"id"`

	// Stream is the work category the item belongs to.
	Stream Stream `json:"stream"`

	// Payload is the stream-specific opaque body handed to the processor.
	Payload json.RawMessage `json:"payload"`

	// Priority is set for alerts only.
	Priority Priority `json:"priority,omitempty"`

	// EnqueuedAt is set once when the item is created and never changes.
	EnqueuedAt time.Time `json:"enqueued_at"`

	// RetryCount is the number of failed delivery attempts so far.
	RetryCount int `json:"retry_count"`

	// LastAttemptAt is nil until the first delivery attempt.
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`
}

// Before reports whether i is older than o: earlier EnqueuedAt first, then
// lower ID.
func (i QueueItem) Before(o QueueItem) bool {
	if !i.EnqueuedAt.Equal(o.EnqueuedAt) {
		return i.EnqueuedAt.Before(o.EnqueuedAt)
	}
	return i.ID < o.ID
}

// IdempotencyKey returns a key that is stable across every delivery attempt
// of this item, so the downstream endpoint can drop duplicates.
func (i QueueItem) IdempotencyKey() string {
	return fmt.Sprintf("%s-%d-%d", i.Stream, i.ID, i.EnqueuedAt.UnixNano())
}
