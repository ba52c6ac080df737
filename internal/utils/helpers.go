package utils

import (
	"time"

	"github.com/renalbridge/docpipeline/gen/ent"
	docstagingpb "github.com/renalbridge/docpipeline/gen/proto/docstaging/v1"
	"github.com/renalbridge/docpipeline/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func rfc3339OrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ymdOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func ToStagingRecord(e *ent.StagingRecord) *entity.StagingRecord {
	return &entity.StagingRecord{
		ID:                e.ID,
		PatientID:         e.PatientID,
		SourceDocumentID:  e.SourceDocumentID,
		DocumentType:      e.DocumentType,
		FinalDocumentType: e.FinalDocumentType,
		StorageBucket:     e.StorageBucket,
		StorageKey:        e.StorageKey,
		ExtractedFields:   e.ExtractedFields,
		LabDate:           e.LabDate,
		ExtractionError:   e.ExtractionError,
		Status:            e.Status,
		ReviewedBy:        e.ReviewedBy,
		ReviewedAt:        e.ReviewedAt,
		AdminNotes:        e.AdminNotes,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func ToPatientDocument(e *ent.PatientDocument) *entity.PatientDocument {
	return &entity.PatientDocument{
		ID:            e.ID,
		PatientID:     e.PatientID,
		DocumentType:  e.DocumentType,
		StorageBucket: e.StorageBucket,
		StorageKey:    e.StorageKey,
		Filename:      e.Filename,
		ContentType:   e.ContentType,
		FileSize:      e.FileSize,
		ContentHash:   e.ContentHash,
		UploadedAt:    e.UploadedAt,
	}
}

func ToPBStagingRecord(r *entity.StagingRecord, lowConfidenceFields []string) *docstagingpb.StagingRecord {
	sourceID := ""
	if r.SourceDocumentID != nil {
		sourceID = r.SourceDocumentID.String()
	}
	return &docstagingpb.StagingRecord{
		Id:                  r.ID.String(),
		PatientId:           r.PatientID,
		SourceDocumentId:    sourceID,
		DocumentType:        r.DocumentType,
		FinalDocumentType:   strOrEmpty(r.FinalDocumentType),
		StorageBucket:       r.StorageBucket,
		StorageKey:          r.StorageKey,
		ExtractedFieldsJson: string(r.ExtractedFields),
		LabDate:             ymdOrEmpty(r.LabDate),
		ExtractionError:     strOrEmpty(r.ExtractionError),
		Status:              r.Status,
		ReviewedBy:          strOrEmpty(r.ReviewedBy),
		ReviewedAt:          rfc3339OrEmpty(r.ReviewedAt),
		AdminNotes:          strOrEmpty(r.AdminNotes),
		CreatedAt:           r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:           r.UpdatedAt.UTC().Format(time.RFC3339),
		LowConfidenceFields: lowConfidenceFields,
	}
}

func ToPBPatientDocument(d *entity.PatientDocument) *docstagingpb.PatientDocument {
	return &docstagingpb.PatientDocument{
		Id:            d.ID.String(),
		PatientId:     d.PatientID,
		DocumentType:  d.DocumentType,
		StorageBucket: d.StorageBucket,
		StorageKey:    d.StorageKey,
		Filename:      d.Filename,
		ContentType:   d.ContentType,
		FileSize:      d.FileSize,
		UploadedAt:    d.UploadedAt.UTC().Format(time.RFC3339),
	}
}

// ParseYMD parses a calendar date and pins it to midnight UTC to match
// DATE column semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
