package adapter

import "context"

type idempotencyKeyCtx struct{}

// WithIdempotencyKey attaches the key sent as the Idempotency-Key header of
// the delivery made with ctx.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKeyCtx{}, key)
}

// IdempotencyKeyFromContext returns the key set by [WithIdempotencyKey].
func IdempotencyKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(idempotencyKeyCtx{}).(string)
	return key, ok && key != ""
}
