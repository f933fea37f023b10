// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package control implements the duplex request/response channel between the
// foreground sync manager and the background sync worker.
//
// Every [Request] carries a typed [MessageType] discriminator and its own
// reply channel. The background side answers every request exactly once and
// never pushes unsolicited messages: all status is pull-based.
package control

import (
	"github.com/MKhiriev/go-scene-outbox/models"
)

// MessageType discriminates control requests.
type MessageType string

const (
	// MessageQueueForSync stores one item in the durable queue.
	MessageQueueForSync MessageType = "QUEUE_FOR_SYNC"
	// MessageGetSyncStatus returns the status of all streams.
	MessageGetSyncStatus MessageType = "GET_SYNC_STATUS"
	// MessageTriggerManualSync runs one drain cycle and replies with its
	// results once it completes.
	MessageTriggerManualSync MessageType = "TRIGGER_MANUAL_SYNC"
	// MessageClearQueue empties the listed streams.
	MessageClearQueue MessageType = "CLEAR_QUEUE"
	// MessageRequestSync asks for an automatic drain. The reply does not wait
	// for the drain, and a request made while a drain is running is
	// coalesced (Accepted is false).
	MessageRequestSync MessageType = "REQUEST_SYNC"
)

// Request is one control message. Reply must be buffered so the background
// side never blocks on a requester that gave up waiting.
type Request struct {
	ID   string
	Type MessageType

	// Item is the QUEUE_FOR_SYNC body. A non-zero EnqueuedAt is kept as is.
	Item models.QueueItem

	// Streams is the CLEAR_QUEUE body.
	Streams []models.Stream

	Reply chan Response
}

// Response answers exactly one [Request]; ID echoes the request ID.
type Response struct {
	ID   string
	Type MessageType

	Success bool
	Error   string

	// QUEUE_FOR_SYNC
	Queued bool
	Item   models.QueueItem

	// GET_SYNC_STATUS
	Status models.QueueStatus

	// TRIGGER_MANUAL_SYNC
	Results models.SyncResults

	// REQUEST_SYNC
	Accepted bool
}

// NewRequest builds a request of type t with a fresh reply channel.
func NewRequest(id string, t MessageType) Request {
	return Request{ID: id, Type: t, Reply: make(chan Response, 1)}
}

// NewChannel returns the request channel shared by a [Client] and a
// [Server].
func NewChannel() chan Request {
	return make(chan Request, 16)
}
