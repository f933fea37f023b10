// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the stream processors that deliver outbox items to
// the downstream endpoint.
//
// The primary abstraction is [StreamProcessors], one delivery method per
// stream. The package ships an HTTP/REST implementation
// ([NewHTTPStreamProcessors]) that authenticates with a short-lived device
// token and attaches an idempotency key to every request.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrRejected] for 400/422, [ErrUnavailable] for 5xx).
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/stream_processors_mock.go -package=mock

// StreamProcessors delivers payloads of each stream to its downstream
// collaborator. Any returned error counts as a failed delivery attempt.
type StreamProcessors interface {
	// DeliverSnapshot submits a snapshot (image reference and capture
	// settings) for scene description.
	DeliverSnapshot(ctx context.Context, payload json.RawMessage) error

	// DeliverTimelineEvent records a timeline event.
	DeliverTimelineEvent(ctx context.Context, payload json.RawMessage) error

	// DeliverPreferenceChange pushes a preference delta.
	DeliverPreferenceChange(ctx context.Context, payload json.RawMessage) error

	// DeliverAlert raises an alert record.
	DeliverAlert(ctx context.Context, payload json.RawMessage) error
}

// HealthChecker probes the delivery endpoint. A nil error means the endpoint
// answered and the device can be considered online.
type HealthChecker interface {
	Check(ctx context.Context) error
}
