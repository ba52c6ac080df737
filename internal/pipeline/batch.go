package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/renalbridge/docpipeline/internal/common"
	"github.com/renalbridge/docpipeline/internal/ingest"
)

// RecordFailure describes one notification that could not be staged.
// Retryable failures should go back on the queue; the rest are logged
// and dropped so a bad record cannot wedge the pipeline.
type RecordFailure struct {
	MessageID string
	Bucket    string
	Key       string
	Err       error
	Retryable bool
}

// BatchResult accumulates per-record outcomes across one poll.
type BatchResult struct {
	Processed  int
	Staged     int
	Duplicates int
	Degraded   int
	Failures   []RecordFailure
}

// Batch runs records sequentially with a per-record budget. When the
// surrounding invocation deadline gets close, unprocessed records are
// reported as retryable instead of being started and cut off mid-write.
type Batch struct {
	Processor      *Processor
	RecordTimeout  time.Duration
	DeadlineMargin time.Duration
	Logger         *slog.Logger
}

func NewBatch(processor *Processor, cfg common.PipelineConfig, logger *slog.Logger) *Batch {
	if logger == nil {
		logger = slog.Default()
	}
	return &Batch{
		Processor:      processor,
		RecordTimeout:  cfg.RecordTimeout,
		DeadlineMargin: cfg.DeadlineMargin,
		Logger:         logger,
	}
}

// ProcessRecords stages every record it can. One record's failure never
// touches the others.
func (b *Batch) ProcessRecords(ctx context.Context, records []ingest.ObjectCreated) BatchResult {
	start := time.Now()
	var res BatchResult

	for i, rec := range records {
		if b.outOfBudget(ctx) {
			b.Logger.Warn("pipeline.batch.deadline",
				"processed", i, "deferred", len(records)-i)
			for _, rest := range records[i:] {
				res.Failures = append(res.Failures, RecordFailure{
					MessageID: rest.MessageID,
					Bucket:    rest.Bucket,
					Key:       rest.Key,
					Err:       context.DeadlineExceeded,
					Retryable: true,
				})
			}
			break
		}

		res.Processed++
		out, err := b.processOne(ctx, rec)
		if err != nil {
			res.Failures = append(res.Failures, RecordFailure{
				MessageID: rec.MessageID,
				Bucket:    rec.Bucket,
				Key:       rec.Key,
				Err:       err,
				Retryable: retryable(err),
			})
			b.Logger.Error("pipeline.record.failed",
				"message_id", rec.MessageID,
				"bucket", rec.Bucket,
				"key", rec.Key,
				"retryable", retryable(err),
				"error", err)
			continue
		}

		switch {
		case out.Duplicate:
			res.Duplicates++
		default:
			res.Staged++
		}
		if out.ExtractionError != "" {
			res.Degraded++
		}
	}

	b.Logger.Info("pipeline.batch.done",
		"records", len(records),
		"processed", res.Processed,
		"staged", res.Staged,
		"duplicates", res.Duplicates,
		"degraded", res.Degraded,
		"failed", len(res.Failures),
		"elapsed_ms", time.Since(start).Milliseconds())
	return res
}

func (b *Batch) processOne(ctx context.Context, rec ingest.ObjectCreated) (RecordOutcome, error) {
	if b.RecordTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = common.WithTimeout(ctx, b.RecordTimeout)
		defer cancel()
	}
	return b.Processor.ProcessObject(ctx, rec)
}

func (b *Batch) outOfBudget(ctx context.Context) bool {
	if b.DeadlineMargin <= 0 {
		return false
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return false
	}
	return time.Until(deadline) < b.DeadlineMargin
}

// retryable reports whether redelivery could plausibly succeed. Metadata
// failures are deterministic for a given object, so retrying them only
// delays the dead-letter queue.
func retryable(err error) bool {
	return !errors.Is(err, common.ErrMetadataResolution)
}
