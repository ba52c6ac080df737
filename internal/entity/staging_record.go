package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StagingRecord represents a staged document review row for data transfer
// between layers.
type StagingRecord struct {
	ID                uuid.UUID       `json:"id"`
	PatientID         string          `json:"patient_id"`
	SourceDocumentID  *uuid.UUID      `json:"source_document_id,omitempty"`
	DocumentType      string          `json:"document_type"`
	FinalDocumentType *string         `json:"final_document_type,omitempty"`
	StorageBucket     string          `json:"storage_bucket"`
	StorageKey        string          `json:"storage_key"`
	ExtractedFields   json.RawMessage `json:"extracted_fields,omitempty"`
	LabDate           *time.Time      `json:"lab_date,omitempty"`
	ExtractionError   *string         `json:"extraction_error,omitempty"`
	Status            string          `json:"status"`
	ReviewedBy        *string         `json:"reviewed_by,omitempty"`
	ReviewedAt        *time.Time      `json:"reviewed_at,omitempty"`
	AdminNotes        *string         `json:"admin_notes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
