// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-scene-outbox/internal/adapter"
	"github.com/MKhiriev/go-scene-outbox/internal/control"
	"github.com/MKhiriev/go-scene-outbox/internal/store"
)

// describeError turns a delivery or queue error into the short message shown
// next to a queue request.
func describeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrRejected):
		return "endpoint rejected the payload"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "device is not authorized"
	case errors.Is(err, adapter.ErrNotFound):
		return "endpoint not found"
	case errors.Is(err, adapter.ErrUnavailable):
		return "endpoint unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.Is(err, context.Canceled):
		return "request canceled"
	case errors.Is(err, control.ErrUnreachable):
		return "background worker unreachable"
	case errors.Is(err, store.ErrCorruptedStore), errors.Is(err, store.ErrCorruptedStream):
		return "queue storage corrupted"
	}

	return err.Error()
}
