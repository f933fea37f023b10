package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers runs a set of workers until the first of them fails or the parent
// context is cancelled.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers w to be started by the next Run.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run starts every worker and waits for all of them. The first error cancels
// the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
