package workers

import "context"

// Workers aggregates the agent's background workers so they can be launched
// and shut down together.
type Workers struct {
	workers []Worker
}

// NewWorkers aggregates background workers so the agent can launch them in
// one call.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse registration order and blocks until all
// of them have terminated.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
