// Package workers hosts the agent's long-running background components and
// the aggregate that launches and stops them as a unit.
package workers

import "context"

// Worker is a long-running background component of the agent.
type Worker interface {
	// Run launches the worker's background goroutine and returns. The
	// worker keeps running until ctx is cancelled or Stop is called.
	// Calling Run again restarts the worker.
	Run(ctx context.Context)

	// Stop signals the worker to exit and blocks until it has fully
	// terminated. Safe to call on a worker that is not running.
	Stop()
}

// SyncJob drives periodic drain cycles of the outbound sync queue.
type SyncJob interface {
	Worker

	// TriggerNow requests an immediate drain cycle without waiting for the
	// next tick. Wakes arriving while a cycle runs are coalesced into one.
	TriggerNow()
}
