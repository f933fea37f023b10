// Package workers provides the background workers of the outbox client and
// the Workers aggregate that runs them together.
//
// The sync worker owns the durable queue and answers control requests. The
// periodic worker asks for an automatic drain on a cron schedule.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails, and returns only
// after everything the worker started has finished.
type Worker interface {
	Run(ctx context.Context) error
}

// SyncRequester starts an automatic drain when preferences allow it.
type SyncRequester interface {
	RequestSync(ctx context.Context, source string) bool
}

// WorkerFunc adapts an ordinary function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
