// Package async fans storage objects out to pipeline workers. The re-drive
// tool uses it to parallelize a bucket listing; the event handler does not,
// records from the notification queue are processed in order.
package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/renalbridge/docpipeline/internal/ingest"
	"github.com/renalbridge/docpipeline/internal/pipeline"
)

// Job is one storage object to push through the staging pipeline.
type Job struct {
	Object      ingest.ObjectCreated
	SubmittedAt time.Time
}

// Stats counts per-record outcomes across the queue's lifetime.
type Stats struct {
	Staged     int
	Duplicates int
	Degraded   int
	Failed     int
}

type ProcessorQueue struct {
	proc    *pipeline.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool

	statsMu sync.Mutex
	stats   Stats
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc *pipeline.Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					out, err := q.proc.ProcessObject(ctx, job.Object)
					cancel()

					q.record(out, err)
					if err != nil {
						q.logger.Error("processing failed", "worker_id", workerID, "key", job.Object.Key, "error", err)
					} else {
						q.logger.Info("object staged", "worker_id", workerID, "key", job.Object.Key,
							"staging_id", out.StagingID, "duplicate", out.Duplicate)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) record(out pipeline.RecordOutcome, err error) {
	q.statsMu.Lock()
	defer q.statsMu.Unlock()
	switch {
	case err != nil:
		q.stats.Failed++
	case out.Duplicate:
		q.stats.Duplicates++
	default:
		q.stats.Staged++
	}
	if err == nil && out.ExtractionError != "" {
		q.stats.Degraded++
	}
}

// Enqueue hands one object to the workers. A full queue blocks until a
// worker frees a slot or ctx is cancelled.
func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "key", job.Object.Key)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued object for staging", "key", job.Object.Key)
		return nil
	default:
	}
	q.logger.Warn("queue full, applying backpressure", "key", job.Object.Key)
	select {
	case q.ch <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

// Snapshot returns the outcome counts seen so far. Call after Shutdown for
// final totals.
func (q *ProcessorQueue) Snapshot() Stats {
	q.statsMu.Lock()
	defer q.statsMu.Unlock()
	return q.stats
}
