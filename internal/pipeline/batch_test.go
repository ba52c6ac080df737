package pipeline

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renalbridge/docpipeline/internal/common"
	"github.com/renalbridge/docpipeline/internal/ingest"
	"github.com/renalbridge/docpipeline/internal/repository"
)

func newTestBatch(t *testing.T) (*Batch, *procEnv) {
	t.Helper()
	env := newProcEnv(t)
	b := NewBatch(env.proc, common.PipelineConfig{
		RecordTimeout:  5 * time.Second,
		DeadlineMargin: 0,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return b, env
}

func stagedUpload(messageID, patientID, filename string) ingest.ObjectCreated {
	return ingest.ObjectCreated{
		MessageID: messageID,
		Bucket:    "referral-docs",
		Key:       "patients/" + patientID + "/documents/current_labs/0f94d2be/" + filename,
		EventName: "ObjectCreated:Put",
	}
}

func TestProcessRecordsIsolatesFailures(t *testing.T) {
	b, env := newTestBatch(t)

	good1 := stagedUpload("msg-a", "P1", "cmp.pdf")
	bad := ingest.ObjectCreated{MessageID: "msg-b", Bucket: "referral-docs", Key: "junk/scan.pdf"}
	good2 := stagedUpload("msg-c", "P2", "bmp.pdf")
	for _, rec := range []ingest.ObjectCreated{good1, good2} {
		env.store.objects[objKey(rec.Bucket, rec.Key)] = []byte("%PDF-1.4")
	}
	env.ex.blocks = []types.Block{
		queryBlock("q1", "sodium", "a1"),
		resultBlock("a1", "139 mmol/L", 94),
	}

	res := b.ProcessRecords(context.Background(), []ingest.ObjectCreated{good1, bad, good2})

	assert.Equal(t, 3, res.Processed)
	assert.Equal(t, 2, res.Staged)
	assert.Zero(t, res.Degraded)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "msg-b", res.Failures[0].MessageID)
	assert.False(t, res.Failures[0].Retryable, "metadata failures are deterministic")
	assert.ErrorIs(t, res.Failures[0].Err, common.ErrMetadataResolution)

	_, total, err := env.staging.List(context.Background(), repository.StagingFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestProcessRecordsCountsDegraded(t *testing.T) {
	b, env := newTestBatch(t)
	rec := stagedUpload("msg-a", "P1", "cmp.pdf")
	env.store.objects[objKey(rec.Bucket, rec.Key)] = []byte("%PDF-1.4")
	env.ex.err = context.DeadlineExceeded

	res := b.ProcessRecords(context.Background(), []ingest.ObjectCreated{rec})

	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 1, res.Staged)
	assert.Equal(t, 1, res.Degraded)
	assert.Empty(t, res.Failures, "a degraded record still stages successfully")
}

func TestProcessRecordsCountsDuplicates(t *testing.T) {
	b, env := newTestBatch(t)
	rec := stagedUpload("msg-a", "P1", "cmp.pdf")
	env.store.objects[objKey(rec.Bucket, rec.Key)] = []byte("%PDF-1.4")
	env.ex.blocks = []types.Block{
		queryBlock("q1", "glucose", "a1"),
		resultBlock("a1", "101 mg/dL", 90),
	}

	again := rec
	again.MessageID = "msg-b"
	res := b.ProcessRecords(context.Background(), []ingest.ObjectCreated{rec, again})

	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 1, res.Staged)
	assert.Equal(t, 1, res.Duplicates)
	assert.Empty(t, res.Failures)
}

func TestProcessRecordsDefersWhenDeadlineClose(t *testing.T) {
	b, env := newTestBatch(t)
	b.DeadlineMargin = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	recs := []ingest.ObjectCreated{
		stagedUpload("msg-a", "P1", "cmp.pdf"),
		stagedUpload("msg-b", "P2", "bmp.pdf"),
	}
	res := b.ProcessRecords(ctx, recs)

	assert.Zero(t, res.Processed)
	require.Len(t, res.Failures, 2)
	for _, f := range res.Failures {
		assert.True(t, f.Retryable, "deferred records must be redelivered")
		assert.ErrorIs(t, f.Err, context.DeadlineExceeded)
	}

	_, total, err := env.staging.List(context.Background(), repository.StagingFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestProcessRecordsPersistenceFailureIsRetryable(t *testing.T) {
	b, env := newTestBatch(t)
	rec := stagedUpload("msg-a", "P1", "cmp.pdf")
	env.store.objects[objKey(rec.Bucket, rec.Key)] = []byte("%PDF-1.4")

	// simulate the database going away mid-batch
	require.NoError(t, env.client.Close())

	res := b.ProcessRecords(context.Background(), []ingest.ObjectCreated{rec})

	assert.Equal(t, 1, res.Processed)
	assert.Zero(t, res.Staged)
	require.Len(t, res.Failures, 1)
	assert.True(t, res.Failures[0].Retryable)
	assert.ErrorIs(t, res.Failures[0].Err, common.ErrPersistence)
}
