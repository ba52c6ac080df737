package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	docstagingpb "github.com/renalbridge/docpipeline/gen/proto/docstaging/v1"
	"github.com/renalbridge/docpipeline/internal/common"
	"github.com/renalbridge/docpipeline/internal/export"
	"github.com/renalbridge/docpipeline/internal/repository"
)

type serverEnv struct {
	review  *ReviewServer
	export  *ExportServer
	staging repository.StagingRepository
	docs    repository.PatientDocumentRepository
}

func newServerEnv(t *testing.T) *serverEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := repository.OpenInMemory(context.Background(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	staging := repository.NewStagingRepository(client, logger)
	docs := repository.NewPatientDocumentRepository(client, logger)
	cfg := common.ExtractionConfig{LowConfidence: 50, MediumConfidence: 70}

	return &serverEnv{
		review:  NewReviewServer(staging, docs, cfg, logger),
		export:  NewExportServer(export.NewService(staging, docs, logger), logger),
		staging: staging,
		docs:    docs,
	}
}

func (e *serverEnv) seedPending(t *testing.T, patientID, key string, fields json.RawMessage) uuid.UUID {
	t.Helper()
	row, _, err := e.staging.CreatePending(context.Background(), repository.CreateStagingParams{
		PatientID:       patientID,
		DocumentType:    "current_labs",
		StorageBucket:   "referral-docs",
		StorageKey:      key,
		ExtractedFields: fields,
	})
	require.NoError(t, err)
	return row.ID
}

func TestListStagingRecordsFiltersByStatus(t *testing.T) {
	env := newServerEnv(t)
	env.seedPending(t, "P1", "patients/P1/documents/current_labs/g1/a.pdf", nil)
	env.seedPending(t, "P2", "patients/P2/documents/current_labs/g1/b.pdf", nil)
	approvedID := env.seedPending(t, "P3", "patients/P3/documents/current_labs/g1/c.pdf", nil)
	_, err := env.review.SubmitReview(context.Background(), &docstagingpb.SubmitReviewRequest{
		Id:         approvedID.String(),
		Status:     "APPROVED",
		ReviewedBy: "intake-nurse",
	})
	require.NoError(t, err)

	resp, err := env.review.ListStagingRecords(context.Background(), &docstagingpb.ListStagingRecordsRequest{
		Status: "PENDING_REVIEW",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), resp.GetTotalCount())
	assert.Len(t, resp.GetRecords(), 2)
	for _, rec := range resp.GetRecords() {
		assert.Equal(t, "PENDING_REVIEW", rec.GetStatus())
	}

	_, err = env.review.ListStagingRecords(context.Background(), &docstagingpb.ListStagingRecordsRequest{
		Status: "IN_LIMBO",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListStagingRecordsPaging(t *testing.T) {
	env := newServerEnv(t)
	for _, k := range []string{"a", "b", "c"} {
		env.seedPending(t, "P1", "patients/P1/documents/current_labs/g1/"+k+".pdf", nil)
	}

	resp, err := env.review.ListStagingRecords(context.Background(), &docstagingpb.ListStagingRecordsRequest{
		PageSize:   2,
		PageOffset: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), resp.GetTotalCount())
	assert.Len(t, resp.GetRecords(), 2)

	resp, err = env.review.ListStagingRecords(context.Background(), &docstagingpb.ListStagingRecordsRequest{
		PageSize:   2,
		PageOffset: 2,
	})
	require.NoError(t, err)
	assert.Len(t, resp.GetRecords(), 1)
}

func TestListStagingRecordsDateWindow(t *testing.T) {
	env := newServerEnv(t)
	env.seedPending(t, "P1", "patients/P1/documents/current_labs/g1/a.pdf", nil)

	today := time.Now().UTC().Format("2006-01-02")
	resp, err := env.review.ListStagingRecords(context.Background(), &docstagingpb.ListStagingRecordsRequest{
		FromDate: today,
		ToDate:   today,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.GetTotalCount())

	resp, err = env.review.ListStagingRecords(context.Background(), &docstagingpb.ListStagingRecordsRequest{
		FromDate: "2099-01-01",
	})
	require.NoError(t, err)
	assert.Zero(t, resp.GetTotalCount())

	_, err = env.review.ListStagingRecords(context.Background(), &docstagingpb.ListStagingRecordsRequest{
		FromDate: "01/15/2025",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetStagingRecordFlagsLowConfidenceFields(t *testing.T) {
	env := newServerEnv(t)
	fields := json.RawMessage(`{
		"albumin":   {"value":"3.9","rawText":"3.9 g/dL","confidence":65.2},
		"potassium": {"value":"4.5","rawText":"4.5 mmol/L","confidence":92.0},
		"bun":       null
	}`)
	id := env.seedPending(t, "P1", "patients/P1/documents/current_labs/g1/a.pdf", fields)

	resp, err := env.review.GetStagingRecord(context.Background(), &docstagingpb.GetStagingRecordRequest{
		Id: id.String(),
	})
	require.NoError(t, err)
	rec := resp.GetRecord()
	assert.Equal(t, []string{"albumin"}, rec.GetLowConfidenceFields())
	assert.NotEmpty(t, rec.GetExtractedFieldsJson())
}

func TestGetStagingRecordReturnsSourceDocument(t *testing.T) {
	env := newServerEnv(t)
	key := "patients/P5/documents/current_labs/g1/cmp.pdf"
	doc, err := env.docs.Create(context.Background(), repository.CreateDocumentParams{
		PatientID:     "P5",
		DocumentType:  "current_labs",
		StorageBucket: "referral-docs",
		StorageKey:    key,
		Filename:      "cmp.pdf",
		ContentType:   "application/pdf",
		FileSize:      4096,
		UploadedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)

	row, _, err := env.staging.CreatePending(context.Background(), repository.CreateStagingParams{
		PatientID:        "P5",
		SourceDocumentID: &doc.ID,
		DocumentType:     "current_labs",
		StorageBucket:    "referral-docs",
		StorageKey:       key,
	})
	require.NoError(t, err)

	resp, err := env.review.GetStagingRecord(context.Background(), &docstagingpb.GetStagingRecordRequest{
		Id: row.ID.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.GetSourceDocument())
	assert.Equal(t, "cmp.pdf", resp.GetSourceDocument().GetFilename())
	assert.Equal(t, doc.ID.String(), resp.GetRecord().GetSourceDocumentId())
}

func TestGetStagingRecordErrors(t *testing.T) {
	env := newServerEnv(t)

	_, err := env.review.GetStagingRecord(context.Background(), &docstagingpb.GetStagingRecordRequest{
		Id: "not-a-uuid",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.review.GetStagingRecord(context.Background(), &docstagingpb.GetStagingRecordRequest{
		Id: uuid.NewString(),
	})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestSubmitReviewApprovesWithCorrection(t *testing.T) {
	env := newServerEnv(t)
	id := env.seedPending(t, "P1", "patients/P1/documents/current_labs/g1/a.pdf", nil)

	resp, err := env.review.SubmitReview(context.Background(), &docstagingpb.SubmitReviewRequest{
		Id:                id.String(),
		Status:            "APPROVED",
		ReviewedBy:        "intake-nurse",
		FinalDocumentType: "Labs",
		AdminNotes:        "verified against the referral packet",
	})
	require.NoError(t, err)
	rec := resp.GetRecord()
	assert.Equal(t, "APPROVED", rec.GetStatus())
	assert.Equal(t, "current_labs", rec.GetFinalDocumentType())
	assert.Equal(t, "intake-nurse", rec.GetReviewedBy())
	assert.NotEmpty(t, rec.GetReviewedAt())
	assert.Equal(t, "verified against the referral packet", rec.GetAdminNotes())
}

func TestSubmitReviewRejectsTerminalTransition(t *testing.T) {
	env := newServerEnv(t)
	id := env.seedPending(t, "P1", "patients/P1/documents/current_labs/g1/a.pdf", nil)

	_, err := env.review.SubmitReview(context.Background(), &docstagingpb.SubmitReviewRequest{
		Id:         id.String(),
		Status:     "APPROVED",
		ReviewedBy: "intake-nurse",
	})
	require.NoError(t, err)

	_, err = env.review.SubmitReview(context.Background(), &docstagingpb.SubmitReviewRequest{
		Id:         id.String(),
		Status:     "REJECTED",
		ReviewedBy: "second-reviewer",
	})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestSubmitReviewCorrectionRoundTrip(t *testing.T) {
	env := newServerEnv(t)
	id := env.seedPending(t, "P1", "patients/P1/documents/current_labs/g1/a.pdf", nil)

	_, err := env.review.SubmitReview(context.Background(), &docstagingpb.SubmitReviewRequest{
		Id:         id.String(),
		Status:     "NEEDS_CORRECTION",
		ReviewedBy: "intake-nurse",
		AdminNotes: "patient id looks transposed",
	})
	require.NoError(t, err)

	resp, err := env.review.SubmitReview(context.Background(), &docstagingpb.SubmitReviewRequest{
		Id:         id.String(),
		Status:     "APPROVED",
		ReviewedBy: "intake-nurse",
	})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", resp.GetRecord().GetStatus())
}

func TestSubmitReviewValidation(t *testing.T) {
	env := newServerEnv(t)
	id := env.seedPending(t, "P1", "patients/P1/documents/current_labs/g1/a.pdf", nil)

	cases := []struct {
		name string
		req  *docstagingpb.SubmitReviewRequest
	}{
		{"missing reviewer", &docstagingpb.SubmitReviewRequest{Id: id.String(), Status: "APPROVED"}},
		{"unknown status", &docstagingpb.SubmitReviewRequest{Id: id.String(), Status: "MAYBE", ReviewedBy: "n"}},
		{"bad id", &docstagingpb.SubmitReviewRequest{Id: "nope", Status: "APPROVED", ReviewedBy: "n"}},
		{"unknown final type", &docstagingpb.SubmitReviewRequest{Id: id.String(), Status: "APPROVED", ReviewedBy: "n", FinalDocumentType: "carrier_pigeon"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.review.SubmitReview(context.Background(), tc.req)
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestGetReviewQueueStats(t *testing.T) {
	env := newServerEnv(t)
	env.seedPending(t, "P1", "patients/P1/documents/current_labs/g1/a.pdf", nil)
	env.seedPending(t, "P2", "patients/P2/documents/current_labs/g1/b.pdf", nil)
	approvedID := env.seedPending(t, "P3", "patients/P3/documents/current_labs/g1/c.pdf", nil)
	_, err := env.review.SubmitReview(context.Background(), &docstagingpb.SubmitReviewRequest{
		Id:         approvedID.String(),
		Status:     "APPROVED",
		ReviewedBy: "intake-nurse",
	})
	require.NoError(t, err)

	resp, err := env.review.GetReviewQueueStats(context.Background(), &docstagingpb.GetReviewQueueStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), resp.GetStatusCounts()["PENDING_REVIEW"])
	assert.Equal(t, int32(1), resp.GetStatusCounts()["APPROVED"])
}
