package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInvalidRetryCount   = errors.New("invalid retry count")
	ErrMissingEnqueuedTime = errors.New("enqueued time is required")
)
