package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/renalbridge/docpipeline/gen/ent"
	entdoc "github.com/renalbridge/docpipeline/gen/ent/patientdocument"
)

// CreateDocumentParams describes one upload record.
type CreateDocumentParams struct {
	PatientID     string
	DocumentType  string
	StorageBucket string
	StorageKey    string
	Filename      string
	ContentType   string
	FileSize      int64
	ContentHash   []byte
	UploadedAt    time.Time
}

type PatientDocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.PatientDocument, error)
	GetByStorageKey(ctx context.Context, bucket, key string) (*ent.PatientDocument, error)
	GetByPatientAndHash(ctx context.Context, patientID string, hash []byte) (*ent.PatientDocument, error)
	Create(ctx context.Context, p CreateDocumentParams) (*ent.PatientDocument, error)
	UpsertByHash(ctx context.Context, p CreateDocumentParams) (*ent.PatientDocument, bool, error)
}

type patientDocumentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewPatientDocumentRepository(entc *ent.Client, logger *slog.Logger) PatientDocumentRepository {
	return &patientDocumentRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *patientDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.PatientDocument, error) {
	return r.ent.PatientDocument.Get(ctx, id)
}

func (r *patientDocumentRepo) GetByStorageKey(ctx context.Context, bucket, key string) (*ent.PatientDocument, error) {
	return r.ent.PatientDocument.Query().
		Where(
			entdoc.StorageBucket(bucket),
			entdoc.StorageKey(key),
		).Only(ctx)
}

func (r *patientDocumentRepo) GetByPatientAndHash(ctx context.Context, patientID string, hash []byte) (*ent.PatientDocument, error) {
	row, err := r.ent.PatientDocument.Query().
		Where(
			entdoc.PatientID(patientID),
			entdoc.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *patientDocumentRepo) Create(ctx context.Context, p CreateDocumentParams) (*ent.PatientDocument, error) {
	row, err := r.ent.PatientDocument.Create().
		SetPatientID(p.PatientID).
		SetDocumentType(p.DocumentType).
		SetStorageBucket(p.StorageBucket).
		SetStorageKey(p.StorageKey).
		SetFilename(p.Filename).
		SetContentType(p.ContentType).
		SetFileSize(p.FileSize).
		SetContentHash(p.ContentHash).
		SetUploadedAt(p.UploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create patient document", "patient_id", p.PatientID, "key", p.StorageKey, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *patientDocumentRepo) UpsertByHash(ctx context.Context, p CreateDocumentParams) (*ent.PatientDocument, bool, error) {
	if len(p.ContentHash) > 0 {
		if existing, err := r.GetByPatientAndHash(ctx, p.PatientID, p.ContentHash); err == nil {
			return existing, true, nil
		} else if !ent.IsNotFound(err) {
			r.logger.Error("failed to check patient document by hash", "patient_id", p.PatientID, "error", err)
			return nil, false, err
		}
	}
	row, err := r.Create(ctx, p)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}
