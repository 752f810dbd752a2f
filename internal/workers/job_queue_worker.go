// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/rostersync/go-roster-sync/internal/adapter"
	"github.com/rostersync/go-roster-sync/internal/logger"
	"github.com/rostersync/go-roster-sync/internal/store"
)

// drainBatchLimit bounds how many pending jobs one drain pass loads.
const drainBatchLimit = 16

type jobQueueWorker struct {
	jobs      store.JobQueue
	transport adapter.Transport
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJobQueueWorker creates a worker that periodically delivers pending
// durable jobs through the transport. Delivered jobs are removed from the
// queue; failed ones stay with an incremented attempt counter, giving the
// configuration path its at-least-once guarantee. The worker is idle until
// Start is called. If interval is zero or negative it defaults to 30
// seconds.
func NewJobQueueWorker(jobs store.JobQueue, transport adapter.Transport, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &jobQueueWorker{
		jobs:      jobs,
		transport: transport,
		interval:  interval,
		logger:    log,
	}
}

// Start implements Worker. It stops any previously running drain loop, then
// launches a background goroutine that drains the queue every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (w *jobQueueWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				w.drain(workerCtx)
			}
		}
	}()
}

// Stop implements Worker. It cancels the drain loop's context and blocks
// until the goroutine has fully exited. Safe to call when the worker is not
// running (no-op in that case).
func (w *jobQueueWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// drain delivers one batch of pending jobs. Each job resolves on its own:
// a failing job is marked and left in place without blocking the others.
func (w *jobQueueWorker) drain(ctx context.Context) {
	jobs, err := w.jobs.Pending(ctx, drainBatchLimit)
	if err != nil {
		w.logger.Error().Err(err).Msg("failed to load pending sync jobs")
		return
	}

	for _, job := range jobs {
		if err = w.transport.Deliver(ctx, job.Message); err != nil {
			w.logger.Warn().Err(err).Str("job_id", job.ID).Int("attempts", job.Attempts+1).Msg("sync job delivery failed")
			if markErr := w.jobs.MarkAttempt(ctx, job.ID); markErr != nil {
				w.logger.Error().Err(markErr).Str("job_id", job.ID).Msg("failed to mark job attempt")
			}
			continue
		}

		if err = w.jobs.Delete(ctx, job.ID); err != nil {
			// The job will be delivered again on the next pass; acceptable
			// under at-least-once semantics.
			w.logger.Error().Err(err).Str("job_id", job.ID).Msg("failed to remove delivered job")
			continue
		}

		w.logger.Debug().Str("job_id", job.ID).Msg("sync job delivered")
	}
}
