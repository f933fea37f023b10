package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-scene-outbox/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldStream targets the stream the item belongs to.
	FieldStream = "stream"

	// FieldPayload targets the opaque JSON body.
	FieldPayload = "payload"

	// FieldPriority targets the alert priority. Alerts need one of safe,
	// warning or danger; every other stream must carry none.
	FieldPriority = "priority"

	// FieldRetryCount targets the failed-attempt counter.
	FieldRetryCount = "retry_count"

	// FieldEnqueuedAt targets the creation timestamp.
	FieldEnqueuedAt = "enqueued_at"
)

// MaxPayloadSize bounds a single payload. Items are kept in full in both
// stores, so one oversized item would crowd a whole stream.
const MaxPayloadSize = 256 << 10

type QueueItemValidator struct {
	maxPayload int
}

func NewQueueItemValidator() Validator {
	return &QueueItemValidator{maxPayload: MaxPayloadSize}
}

func (v *QueueItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.QueueItem:
		return v.validateQueueItem(ctx, value, fields...)
	case *models.QueueItem:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateQueueItem(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *QueueItemValidator) validateQueueItem(_ context.Context, item models.QueueItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStream, FieldPayload, FieldPriority, FieldRetryCount, FieldEnqueuedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldStream:
			if !item.Stream.Valid() {
				return fmt.Errorf("%w: %s", models.ErrInvalidStream, item.Stream)
			}
		case FieldPayload:
			if len(item.Payload) == 0 || !json.Valid(item.Payload) {
				return fmt.Errorf("%w: %s payload is not valid JSON", models.ErrInvalidPayload, item.Stream)
			}
			if len(item.Payload) > v.maxPayload {
				return fmt.Errorf("%w: %w: %d bytes", models.ErrInvalidPayload, ErrPayloadTooLarge, len(item.Payload))
			}
		case FieldPriority:
			if err := validatePriority(item); err != nil {
				return err
			}
		case FieldRetryCount:
			if item.RetryCount < 0 {
				return ErrInvalidRetryCount
			}
		case FieldEnqueuedAt:
			if item.EnqueuedAt.IsZero() {
				return ErrMissingEnqueuedTime
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validatePriority(item models.QueueItem) error {
	if item.Stream != models.StreamAlerts {
		if item.Priority != models.PriorityNone {
			return fmt.Errorf("%w: %s items carry no priority", models.ErrInvalidPriority, item.Stream)
		}
		return nil
	}

	switch item.Priority {
	case models.PrioritySafe, models.PriorityWarning, models.PriorityDanger:
		return nil
	default:
		return fmt.Errorf("%w: alert priority %s", models.ErrInvalidPriority, item.Priority)
	}
}
