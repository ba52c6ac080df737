package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientDocument represents an upload record for data transfer between layers.
type PatientDocument struct {
	ID            uuid.UUID `json:"id"`
	PatientID     string    `json:"patient_id"`
	DocumentType  string    `json:"document_type"`
	StorageBucket string    `json:"storage_bucket"`
	StorageKey    string    `json:"storage_key"`
	Filename      string    `json:"filename"`
	ContentType   string    `json:"content_type"`
	FileSize      int64     `json:"file_size"`
	ContentHash   []byte    `json:"content_hash,omitempty"`
	UploadedAt    time.Time `json:"uploaded_at"`
}
