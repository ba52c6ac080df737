package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renalbridge/docpipeline/gen/ent"
	"github.com/renalbridge/docpipeline/internal/common"
	"github.com/renalbridge/docpipeline/internal/entity"
	"github.com/renalbridge/docpipeline/internal/extraction"
	"github.com/renalbridge/docpipeline/internal/ingest"
	"github.com/renalbridge/docpipeline/internal/metadata"
	"github.com/renalbridge/docpipeline/internal/repository"
)

type fakeStore struct {
	objects  map[string][]byte
	tags     map[string]map[string]string
	getErr   error
	tagsErr  error
	getCalls int
}

func objKey(bucket, key string) string { return bucket + "/" + key }

func (f *fakeStore) GetObject(_ context.Context, bucket, key string, _ int64) ([]byte, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[objKey(bucket, key)]
	if !ok {
		return nil, fmt.Errorf("no such object s3://%s/%s", bucket, key)
	}
	return data, nil
}

func (f *fakeStore) GetObjectTags(_ context.Context, bucket, key string) (map[string]string, error) {
	if f.tagsErr != nil {
		return nil, f.tagsErr
	}
	return f.tags[objKey(bucket, key)], nil
}

func (f *fakeStore) PutObject(_ context.Context, bucket, key string, body []byte, _ string, tags map[string]string) error {
	f.objects[objKey(bucket, key)] = body
	f.tags[objKey(bucket, key)] = tags
	return nil
}

func (f *fakeStore) ListKeys(_ context.Context, _, _ string) ([]string, error) {
	return nil, nil
}

type fakeExtractor struct {
	blocks []types.Block
	err    error
	calls  int
}

func (f *fakeExtractor) AnalyzeDocument(_ context.Context, _ []byte, _ []extraction.FieldQuery) ([]types.Block, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.blocks, nil
}

func queryBlock(id, alias string, answerIDs ...string) types.Block {
	b := types.Block{
		Id:        aws.String(id),
		BlockType: types.BlockTypeQuery,
		Query:     &types.Query{Alias: aws.String(alias)},
	}
	if len(answerIDs) > 0 {
		b.Relationships = []types.Relationship{
			{Type: types.RelationshipTypeAnswer, Ids: answerIDs},
		}
	}
	return b
}

func resultBlock(id, text string, confidence float32) types.Block {
	return types.Block{
		Id:         aws.String(id),
		BlockType:  types.BlockTypeQueryResult,
		Text:       aws.String(text),
		Confidence: aws.Float32(confidence),
	}
}

type procEnv struct {
	proc    *Processor
	staging repository.StagingRepository
	docs    repository.PatientDocumentRepository
	client  *ent.Client
	store   *fakeStore
	ex      *fakeExtractor
	queries []extraction.FieldQuery
}

func newProcEnv(t *testing.T) *procEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := repository.OpenInMemory(context.Background(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	queries, err := extraction.LoadFieldQueries()
	require.NoError(t, err)

	store := &fakeStore{
		objects: make(map[string][]byte),
		tags:    make(map[string]map[string]string),
	}
	ex := &fakeExtractor{}
	staging := repository.NewStagingRepository(client, logger)
	docs := repository.NewPatientDocumentRepository(client, logger)

	proc := NewProcessor(
		metadata.NewResolver(store, logger),
		store,
		ex,
		docs,
		staging,
		queries,
		common.ExtractionConfig{
			LowConfidence:    50,
			MediumConfidence: 70,
			MaxDocumentBytes: 10 << 20,
			RequestTimeout:   30 * time.Second,
		},
		logger,
	)
	return &procEnv{proc: proc, staging: staging, docs: docs, client: client, store: store, ex: ex, queries: queries}
}

func labsUpload(messageID string) ingest.ObjectCreated {
	return ingest.ObjectCreated{
		MessageID: messageID,
		Bucket:    "referral-docs",
		Key:       "patients/P1/documents/current_labs/8a1f6c3e/cmp.pdf",
		EventName: "ObjectCreated:Put",
	}
}

func TestProcessObjectStagesLabDocument(t *testing.T) {
	env := newProcEnv(t)
	rec := labsUpload("msg-1")
	env.store.objects[objKey(rec.Bucket, rec.Key)] = []byte("%PDF-1.4 lab report")
	env.ex.blocks = []types.Block{
		queryBlock("q1", "potassium", "a1"),
		resultBlock("a1", "4.5 mg/dL", 92.3),
		queryBlock("q2", "bun", "a2"),
		resultBlock("a2", "18", 10),
	}

	out, err := env.proc.ProcessObject(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, out.Eligible)
	assert.True(t, out.Extracted)
	assert.False(t, out.Duplicate)
	assert.Equal(t, "P1", out.PatientID)
	assert.Equal(t, 1, env.ex.calls)

	row, err := env.staging.GetByID(context.Background(), out.StagingID)
	require.NoError(t, err)
	assert.Equal(t, "PENDING_REVIEW", row.Status)
	assert.Equal(t, "current_labs", row.DocumentType)
	assert.Equal(t, rec.Bucket, row.StorageBucket)
	assert.Equal(t, rec.Key, row.StorageKey)
	assert.Nil(t, row.ExtractionError)
	assert.Nil(t, row.LabDate)

	fields, err := entity.UnmarshalExtractedFields(row.ExtractedFields)
	require.NoError(t, err)
	assert.Len(t, fields, len(env.queries))

	potassium := fields["potassium"]
	require.NotNil(t, potassium)
	assert.Equal(t, "4.5", potassium.Value)
	assert.Equal(t, "4.5 mg/dL", potassium.RawText)
	assert.InDelta(t, 92.3, potassium.Confidence, 0.001)

	bun, present := fields["bun"]
	assert.True(t, present, "low-confidence field must still appear as null")
	assert.Nil(t, bun)
}

func TestProcessObjectSkipsIneligibleType(t *testing.T) {
	env := newProcEnv(t)
	rec := ingest.ObjectCreated{
		MessageID: "msg-2",
		Bucket:    "referral-docs",
		Key:       "patients/P2/documents/insurance_card/77aa01bc/front.jpg",
		EventName: "ObjectCreated:Put",
	}

	out, err := env.proc.ProcessObject(context.Background(), rec)
	require.NoError(t, err)
	assert.False(t, out.Eligible)
	assert.False(t, out.Extracted)
	assert.Zero(t, env.ex.calls, "ineligible documents must never reach the extraction service")
	assert.Zero(t, env.store.getCalls, "ineligible documents must not be fetched")

	row, err := env.staging.GetByID(context.Background(), out.StagingID)
	require.NoError(t, err)
	assert.Equal(t, "PENDING_REVIEW", row.Status)
	assert.Equal(t, "insurance_card", row.DocumentType)
	assert.Empty(t, row.ExtractedFields)
	assert.Nil(t, row.ExtractionError)
}

func TestProcessObjectTreatsSynonymAsEligible(t *testing.T) {
	env := newProcEnv(t)
	rec := ingest.ObjectCreated{
		MessageID: "msg-3",
		Bucket:    "referral-docs",
		Key:       "patients/P3/documents/unsorted/9c2d11aa/panel.pdf",
		EventName: "ObjectCreated:Put",
	}
	env.store.tags[objKey(rec.Bucket, rec.Key)] = map[string]string{
		"patient-id":    "P3",
		"document-type": "Lab Results",
	}
	env.store.objects[objKey(rec.Bucket, rec.Key)] = []byte("%PDF-1.4")

	out, err := env.proc.ProcessObject(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, out.Eligible)
	assert.Equal(t, 1, env.ex.calls)

	row, err := env.staging.GetByID(context.Background(), out.StagingID)
	require.NoError(t, err)
	// the uploaded spelling is preserved for the reviewer
	assert.Equal(t, "Lab Results", row.DocumentType)
}

func TestProcessObjectDegradesOnExtractorFailure(t *testing.T) {
	env := newProcEnv(t)
	rec := labsUpload("msg-4")
	env.store.objects[objKey(rec.Bucket, rec.Key)] = []byte("%PDF-1.4")
	env.ex.err = errors.New("ThrottlingException: rate exceeded")

	out, err := env.proc.ProcessObject(context.Background(), rec)
	require.NoError(t, err, "extraction failure must not fail the record")
	assert.False(t, out.Extracted)
	assert.Contains(t, out.ExtractionError, "rate exceeded")

	row, err := env.staging.GetByID(context.Background(), out.StagingID)
	require.NoError(t, err)
	assert.Equal(t, "PENDING_REVIEW", row.Status)
	assert.Empty(t, row.ExtractedFields)
	require.NotNil(t, row.ExtractionError)
	assert.Contains(t, *row.ExtractionError, "rate exceeded")
}

func TestProcessObjectDegradesOnFetchFailure(t *testing.T) {
	env := newProcEnv(t)
	rec := labsUpload("msg-5")
	env.store.getErr = errors.New("AccessDenied")

	out, err := env.proc.ProcessObject(context.Background(), rec)
	require.NoError(t, err)
	assert.Zero(t, env.ex.calls)

	row, err := env.staging.GetByID(context.Background(), out.StagingID)
	require.NoError(t, err)
	require.NotNil(t, row.ExtractionError)
	assert.Contains(t, *row.ExtractionError, "fetch document")
	assert.Contains(t, *row.ExtractionError, "AccessDenied")
}

func TestProcessObjectFailsOnUnresolvableMetadata(t *testing.T) {
	env := newProcEnv(t)
	rec := ingest.ObjectCreated{
		MessageID: "msg-6",
		Bucket:    "referral-docs",
		Key:       "uploads/misc/scan.pdf",
		EventName: "ObjectCreated:Put",
	}

	_, err := env.proc.ProcessObject(context.Background(), rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMetadataResolution)

	_, total, err := env.staging.List(context.Background(), repository.StagingFilter{})
	require.NoError(t, err)
	assert.Zero(t, total, "unresolvable uploads must not be staged")
}

func TestProcessObjectLinksSourceDocument(t *testing.T) {
	env := newProcEnv(t)
	rec := ingest.ObjectCreated{
		MessageID: "msg-7",
		Bucket:    "referral-docs",
		Key:       "patients/P4/documents/referral_form/5e0c22dd/form.pdf",
		EventName: "ObjectCreated:Put",
	}
	doc, err := env.docs.Create(context.Background(), repository.CreateDocumentParams{
		PatientID:     "P4",
		DocumentType:  "referral_form",
		StorageBucket: rec.Bucket,
		StorageKey:    rec.Key,
		Filename:      "form.pdf",
		ContentType:   "application/pdf",
		FileSize:      2048,
		UploadedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)

	out, err := env.proc.ProcessObject(context.Background(), rec)
	require.NoError(t, err)

	row, err := env.staging.GetByID(context.Background(), out.StagingID)
	require.NoError(t, err)
	require.NotNil(t, row.SourceDocumentID)
	assert.Equal(t, doc.ID, *row.SourceDocumentID)
}

func TestProcessObjectCapturesLabDate(t *testing.T) {
	env := newProcEnv(t)
	rec := labsUpload("msg-8")
	env.store.objects[objKey(rec.Bucket, rec.Key)] = []byte("%PDF-1.4")
	env.ex.blocks = []types.Block{
		queryBlock("q1", "lab_date", "a1"),
		resultBlock("a1", "01/15/2025", 96),
	}

	out, err := env.proc.ProcessObject(context.Background(), rec)
	require.NoError(t, err)

	row, err := env.staging.GetByID(context.Background(), out.StagingID)
	require.NoError(t, err)
	require.NotNil(t, row.LabDate)
	assert.Equal(t, "2025-01-15", row.LabDate.Format("2006-01-02"))

	fields, err := entity.UnmarshalExtractedFields(row.ExtractedFields)
	require.NoError(t, err)
	labDate := fields["lab_date"]
	require.NotNil(t, labDate)
	assert.Equal(t, "2025-01-15", labDate.Value)
	assert.Equal(t, "01/15/2025", labDate.RawText)
}

func TestProcessObjectDuplicateEvent(t *testing.T) {
	env := newProcEnv(t)
	rec := labsUpload("msg-9")
	env.store.objects[objKey(rec.Bucket, rec.Key)] = []byte("%PDF-1.4")
	env.ex.blocks = []types.Block{
		queryBlock("q1", "potassium", "a1"),
		resultBlock("a1", "4.5 mmol/L", 88),
	}

	first, err := env.proc.ProcessObject(context.Background(), rec)
	require.NoError(t, err)
	assert.False(t, first.Duplicate)

	second, err := env.proc.ProcessObject(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.StagingID, second.StagingID)

	_, total, err := env.staging.List(context.Background(), repository.StagingFilter{PatientID: "P1"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
