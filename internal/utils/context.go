// Package utils provides general-purpose helper utilities
// used across different parts of the outbox client.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, device JWT generation
// and validation, and ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SyncSourceCtxKey is the key used to store what started a drain
// ("manual", "online", "periodic", ...). Used together with
// GetSyncSourceFromContext.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithSyncSource(ctx, "manual")
var SyncSourceCtxKey = contextKey("syncSource")

// WithSyncSource returns a copy of ctx carrying source.
func WithSyncSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, SyncSourceCtxKey, source)
}

// GetSyncSourceFromContext retrieves the drain source from the context.
//
// Returns the source and an ok flag:
//   - ok == true: value is found and is a non-empty string
//   - ok == false: value is missing or has an unexpected type
func GetSyncSourceFromContext(ctx context.Context) (string, bool) {
	source, ok := ctx.Value(SyncSourceCtxKey).(string)
	return source, ok && source != ""
}
