package service

import "errors"

var (
	// ErrNoBackend is returned when the sync manager is built without a queue
	// backend.
	ErrNoBackend = errors.New("no queue backend configured")

	// ErrNoProcessors is returned when the sync manager is built without
	// stream processors.
	ErrNoProcessors = errors.New("no stream processors configured")
)
