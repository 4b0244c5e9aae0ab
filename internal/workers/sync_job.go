package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/service"
)

type syncJob struct {
	sync     service.SyncManager
	interval time.Duration
	log      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	wake   chan struct{}
}

// NewSyncJob creates a syncJob that calls SyncManager.OnWake every interval
// and on explicit triggers. If interval is zero or negative it defaults to
// 5 minutes. The job is idle until Run is called.
func NewSyncJob(syncManager service.SyncManager, interval time.Duration, log *logger.Logger) SyncJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &syncJob{
		sync:     syncManager,
		interval: interval,
		log:      log,
		wake:     make(chan struct{}, 1),
	}
}

// Run implements Worker. It stops any previously running job, then launches
// a background goroutine that wakes a drain cycle every interval or
// whenever TriggerNow is called. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *syncJob) Run(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.drain(jobCtx)
			case <-j.wake:
				j.drain(jobCtx)
			}
		}
	}()
}

// TriggerNow implements SyncJob. The wake channel holds one pending signal;
// further triggers while a wake is pending are dropped, matching the
// coalescing contract of OnWake.
func (j *syncJob) TriggerNow() {
	select {
	case j.wake <- struct{}{}:
	default:
	}
}

// Stop implements Worker. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *syncJob) drain(ctx context.Context) {
	if err := j.sync.OnWake(ctx); err != nil {
		j.log.Error().Err(err).
			Str("func", "syncJob.drain").
			Msg("drain cycle failed")
	}
}
