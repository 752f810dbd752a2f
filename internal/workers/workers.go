package workers

import "context"

// Workers aggregates background workers behind a single Start/Stop pair.
type Workers struct {
	workers []Worker
}

// New collects the given workers into an aggregate.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start launches every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse registration order and blocks until
// all of them have terminated.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
