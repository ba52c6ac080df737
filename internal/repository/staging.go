package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/renalbridge/docpipeline/constants"
	"github.com/renalbridge/docpipeline/gen/ent"
	entstaging "github.com/renalbridge/docpipeline/gen/ent/stagingrecord"
	"github.com/renalbridge/docpipeline/internal/common"
)

// CreateStagingParams is everything the pipeline persists for one upload.
type CreateStagingParams struct {
	PatientID        string
	SourceDocumentID *uuid.UUID
	DocumentType     string
	StorageBucket    string
	StorageKey       string
	ExtractedFields  json.RawMessage
	LabDate          *time.Time
	ExtractionError  *string
}

// ReviewParams is a reviewer's decision on one staging record.
type ReviewParams struct {
	Status            constants.ReviewStatus
	ReviewedBy        string
	FinalDocumentType *string
	AdminNotes        *string
}

// StagingFilter narrows staging record listings. CreatedFrom and CreatedTo
// bound the staging time, both inclusive at day granularity.
type StagingFilter struct {
	Status      string
	PatientID   string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
	Offset      int
}

type StagingRepository interface {
	// CreatePending stages one upload for review. The bool reports a
	// duplicate: redelivered events return the existing row unchanged.
	CreatePending(ctx context.Context, p CreateStagingParams) (*ent.StagingRecord, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.StagingRecord, error)
	List(ctx context.Context, f StagingFilter) ([]*ent.StagingRecord, int, error)
	SubmitReview(ctx context.Context, id uuid.UUID, p ReviewParams) (*ent.StagingRecord, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type stagingRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewStagingRepository(entc *ent.Client, logger *slog.Logger) StagingRepository {
	return &stagingRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *stagingRepo) CreatePending(ctx context.Context, p CreateStagingParams) (*ent.StagingRecord, bool, error) {
	existing, err := r.ent.StagingRecord.Query().
		Where(
			entstaging.PatientID(p.PatientID),
			entstaging.StorageBucket(p.StorageBucket),
			entstaging.StorageKey(p.StorageKey),
		).Only(ctx)
	if err == nil {
		r.logger.Info("staging row already exists, duplicate event",
			"staging_id", existing.ID, "patient_id", p.PatientID, "key", p.StorageKey)
		return existing, true, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to check for existing staging row", "patient_id", p.PatientID, "key", p.StorageKey, "error", err)
		return nil, false, err
	}

	create := r.ent.StagingRecord.Create().
		SetPatientID(p.PatientID).
		SetDocumentType(p.DocumentType).
		SetStorageBucket(p.StorageBucket).
		SetStorageKey(p.StorageKey).
		SetStatus(string(constants.StatusPendingReview)).
		SetNillableSourceDocumentID(p.SourceDocumentID).
		SetNillableLabDate(p.LabDate).
		SetNillableExtractionError(p.ExtractionError)
	if p.ExtractedFields != nil {
		create.SetExtractedFields(p.ExtractedFields)
	}

	// unique (patient, bucket, key) closes the race between check and insert
	id, err := create.
		OnConflictColumns(
			entstaging.FieldPatientID,
			entstaging.FieldStorageBucket,
			entstaging.FieldStorageKey,
		).
		Ignore().
		ID(ctx)
	if err != nil {
		r.logger.Error("failed to create staging row", "patient_id", p.PatientID, "key", p.StorageKey, "error", err)
		return nil, false, err
	}

	row, err := r.ent.StagingRecord.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	r.logger.Info("staging row created",
		"staging_id", row.ID, "patient_id", p.PatientID, "document_type", p.DocumentType, "status", row.Status)
	return row, false, nil
}

func (r *stagingRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.StagingRecord, error) {
	return r.ent.StagingRecord.Get(ctx, id)
}

func (r *stagingRepo) List(ctx context.Context, f StagingFilter) ([]*ent.StagingRecord, int, error) {
	q := r.ent.StagingRecord.Query()
	if f.Status != "" {
		q = q.Where(entstaging.Status(f.Status))
	}
	if f.PatientID != "" {
		q = q.Where(entstaging.PatientID(f.PatientID))
	}
	if f.CreatedFrom != nil {
		q = q.Where(entstaging.CreatedAtGTE(*f.CreatedFrom))
	}
	if f.CreatedTo != nil {
		q = q.Where(entstaging.CreatedAtLT(f.CreatedTo.AddDate(0, 0, 1)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count staging rows", "error", err)
		return nil, 0, err
	}

	q = q.Order(ent.Desc(entstaging.FieldCreatedAt))
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list staging rows", "error", err)
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *stagingRepo) SubmitReview(ctx context.Context, id uuid.UUID, p ReviewParams) (*ent.StagingRecord, error) {
	row, err := r.ent.StagingRecord.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	from := constants.ReviewStatus(row.Status)
	if !constants.CanTransition(from, p.Status) {
		r.logger.Warn("review transition rejected",
			"staging_id", id, "from", from, "to", p.Status,
			"reviewed_by", p.ReviewedBy, "request_id", common.RequestIDFromContext(ctx))
		return nil, common.NewAppError("REVIEW_TRANSITION",
			fmt.Sprintf("cannot move staging record %s from %s to %s", id, from, p.Status),
			common.ErrValidation)
	}

	upd := row.Update().
		SetStatus(string(p.Status)).
		SetReviewedBy(p.ReviewedBy).
		SetReviewedAt(time.Now().UTC()).
		SetNillableFinalDocumentType(p.FinalDocumentType).
		SetNillableAdminNotes(p.AdminNotes)

	updated, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to submit review", "staging_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("review submitted",
		"staging_id", id, "from", from, "to", p.Status,
		"reviewed_by", p.ReviewedBy, "request_id", common.RequestIDFromContext(ctx))
	return updated, nil
}

func (r *stagingRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := r.ent.StagingRecord.Query().
		GroupBy(entstaging.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("failed to count staging rows by status", "error", err)
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
