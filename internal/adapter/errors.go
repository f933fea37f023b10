package adapter

import "errors"

// Delivery errors. Every one of them is a failed attempt for the retry
// bookkeeping; they differ only for diagnostics.
var (
	// ErrRejected is returned when the endpoint refuses the payload (400, 422).
	ErrRejected = errors.New("payload rejected by endpoint")
	// ErrUnauthorized is returned on 401 and 403.
	ErrUnauthorized = errors.New("device unauthorized")
	// ErrNotFound is returned on 404, usually a misconfigured endpoint.
	ErrNotFound = errors.New("endpoint not found")
	// ErrUnavailable is returned on 5xx, 429 and transport failures.
	ErrUnavailable = errors.New("endpoint unavailable")
	// ErrDuplicate is returned on 409: the endpoint already holds an item with
	// the same idempotency key. Processors treat it as a delivery.
	ErrDuplicate = errors.New("item already delivered")
)
