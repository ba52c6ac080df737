package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renalbridge/docpipeline/constants"
	"github.com/renalbridge/docpipeline/gen/ent"
	"github.com/renalbridge/docpipeline/internal/common"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	client, err := OpenInMemory(context.Background(), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pendingParams(patientID, key string) CreateStagingParams {
	return CreateStagingParams{
		PatientID:     patientID,
		DocumentType:  string(constants.InsuranceCard),
		StorageBucket: "docs",
		StorageKey:    key,
	}
}

func TestCreatePendingDefaults(t *testing.T) {
	repo := NewStagingRepository(newTestClient(t), testLogger())

	row, dup, err := repo.CreatePending(context.Background(), pendingParams("P1", "patients/P1/documents/insurance_card/g1/card.png"))
	require.NoError(t, err)
	assert.False(t, dup)
	assert.Equal(t, string(constants.StatusPendingReview), row.Status)
	assert.Nil(t, row.ExtractedFields)
	assert.Nil(t, row.LabDate)
	assert.Nil(t, row.ExtractionError)
	assert.Nil(t, row.ReviewedBy)
	assert.False(t, row.CreatedAt.IsZero())
}

func TestCreatePendingStoresExtraction(t *testing.T) {
	repo := NewStagingRepository(newTestClient(t), testLogger())

	fields := json.RawMessage(`{"bun":null,"potassium":{"value":"4.5","rawText":"4.5 mg/dL","confidence":92}}`)
	labDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	p := pendingParams("P1", "patients/P1/documents/current_labs/g1/labs.pdf")
	p.DocumentType = string(constants.CurrentLabs)
	p.ExtractedFields = fields
	p.LabDate = &labDate

	row, _, err := repo.CreatePending(context.Background(), p)
	require.NoError(t, err)
	assert.JSONEq(t, string(fields), string(row.ExtractedFields))
	require.NotNil(t, row.LabDate)
	assert.True(t, row.LabDate.Equal(labDate), "lab_date = %v", row.LabDate)
}

func TestCreatePendingDuplicateEvent(t *testing.T) {
	repo := NewStagingRepository(newTestClient(t), testLogger())
	p := pendingParams("P1", "patients/P1/documents/insurance_card/g1/card.png")

	first, dup, err := repo.CreatePending(context.Background(), p)
	require.NoError(t, err)
	require.False(t, dup)

	second, dup, err := repo.CreatePending(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, dup)
	assert.Equal(t, first.ID, second.ID)

	other := pendingParams("P1", "patients/P1/documents/insurance_card/g2/card.png")
	third, dup, err := repo.CreatePending(context.Background(), other)
	require.NoError(t, err)
	assert.False(t, dup)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestSubmitReview(t *testing.T) {
	repo := NewStagingRepository(newTestClient(t), testLogger())
	row, _, err := repo.CreatePending(context.Background(), pendingParams("P1", "patients/P1/documents/insurance_card/g1/card.png"))
	require.NoError(t, err)

	finalType := string(constants.PhotoID)
	notes := "actually a photo id, re-filed"
	updated, err := repo.SubmitReview(context.Background(), row.ID, ReviewParams{
		Status:            constants.StatusApproved,
		ReviewedBy:        "sw-jordan",
		FinalDocumentType: &finalType,
		AdminNotes:        &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.StatusApproved), updated.Status)
	require.NotNil(t, updated.ReviewedBy)
	assert.Equal(t, "sw-jordan", *updated.ReviewedBy)
	assert.NotNil(t, updated.ReviewedAt)
	require.NotNil(t, updated.FinalDocumentType)
	assert.Equal(t, finalType, *updated.FinalDocumentType)
	// the uploaded type survives the correction
	assert.Equal(t, string(constants.InsuranceCard), updated.DocumentType)
}

func TestSubmitReviewRejectsBadTransition(t *testing.T) {
	repo := NewStagingRepository(newTestClient(t), testLogger())
	row, _, err := repo.CreatePending(context.Background(), pendingParams("P1", "patients/P1/documents/insurance_card/g1/card.png"))
	require.NoError(t, err)

	_, err = repo.SubmitReview(context.Background(), row.ID, ReviewParams{Status: constants.StatusApproved, ReviewedBy: "sw-jordan"})
	require.NoError(t, err)

	_, err = repo.SubmitReview(context.Background(), row.ID, ReviewParams{Status: constants.StatusRejected, ReviewedBy: "sw-jordan"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))

	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "REVIEW_TRANSITION", appErr.Code)
}

func TestSubmitReviewCorrectionFlow(t *testing.T) {
	repo := NewStagingRepository(newTestClient(t), testLogger())
	row, _, err := repo.CreatePending(context.Background(), pendingParams("P1", "patients/P1/documents/current_labs/g1/labs.pdf"))
	require.NoError(t, err)

	_, err = repo.SubmitReview(context.Background(), row.ID, ReviewParams{Status: constants.StatusNeedsCorrection, ReviewedBy: "sw-jordan"})
	require.NoError(t, err)

	updated, err := repo.SubmitReview(context.Background(), row.ID, ReviewParams{Status: constants.StatusApproved, ReviewedBy: "sw-casey"})
	require.NoError(t, err)
	assert.Equal(t, string(constants.StatusApproved), updated.Status)
	require.NotNil(t, updated.ReviewedBy)
	assert.Equal(t, "sw-casey", *updated.ReviewedBy)
}

func TestSubmitReviewNotFound(t *testing.T) {
	repo := NewStagingRepository(newTestClient(t), testLogger())

	_, err := repo.SubmitReview(context.Background(), uuid.New(), ReviewParams{Status: constants.StatusApproved, ReviewedBy: "sw-jordan"})
	require.Error(t, err)
	assert.True(t, ent.IsNotFound(err))
}

func TestListAndCounts(t *testing.T) {
	repo := NewStagingRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	a, _, err := repo.CreatePending(ctx, pendingParams("P1", "patients/P1/documents/current_labs/g1/labs.pdf"))
	require.NoError(t, err)
	_, _, err = repo.CreatePending(ctx, pendingParams("P1", "patients/P1/documents/insurance_card/g2/card.png"))
	require.NoError(t, err)
	_, _, err = repo.CreatePending(ctx, pendingParams("P2", "patients/P2/documents/current_labs/g3/labs.pdf"))
	require.NoError(t, err)

	_, err = repo.SubmitReview(ctx, a.ID, ReviewParams{Status: constants.StatusApproved, ReviewedBy: "sw-jordan"})
	require.NoError(t, err)

	rows, total, err := repo.List(ctx, StagingFilter{Status: string(constants.StatusPendingReview)})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, rows, 2)

	rows, total, err = repo.List(ctx, StagingFilter{Status: string(constants.StatusPendingReview), Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, rows, 1)

	rows, total, err = repo.List(ctx, StagingFilter{PatientID: "P2"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "P2", rows[0].PatientID)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[string(constants.StatusPendingReview)])
	assert.Equal(t, 1, counts[string(constants.StatusApproved)])
}
