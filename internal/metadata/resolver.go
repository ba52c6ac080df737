// Package metadata resolves the patient identifier and document type for an
// uploaded object. Object tags written by the upload endpoint are
// authoritative; the conventional key layout is the fallback for objects
// whose tags were lost or never written.
package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/renalbridge/docpipeline/internal/common"
)

// Object tag keys written by the upload endpoint.
const (
	TagPatientID    = "patient-id"
	TagDocumentType = "document-type"
)

// DocumentMetadata identifies the upload a storage notification refers to.
type DocumentMetadata struct {
	PatientID    string
	DocumentType string
	// GroupID is the upload batch segment from the key layout, empty when
	// metadata came from tags on an unconventional key.
	GroupID  string
	Filename string
}

// TagReader fetches the object tags for a stored document.
type TagReader interface {
	GetObjectTags(ctx context.Context, bucket, key string) (map[string]string, error)
}

// Resolver resolves upload metadata from tags with key-layout fallback.
type Resolver struct {
	tags   TagReader
	logger *slog.Logger
}

func NewResolver(tags TagReader, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{tags: tags, logger: logger}
}

// Resolve determines patient and document type for one object. Both values
// must be present from tags or the key layout; anything less fails the
// record with a metadata resolution error.
func (r *Resolver) Resolve(ctx context.Context, bucket, key string) (DocumentMetadata, error) {
	meta, parseErr := ParseObjectKey(key)

	tags, err := r.tags.GetObjectTags(ctx, bucket, key)
	if err != nil {
		// tags unavailable is survivable while the key layout holds
		r.logger.Warn("metadata.tags.unavailable", "bucket", bucket, "key", key, "error", err)
	} else {
		if v := strings.TrimSpace(tags[TagPatientID]); v != "" {
			meta.PatientID = v
		}
		if v := strings.TrimSpace(tags[TagDocumentType]); v != "" {
			meta.DocumentType = v
		}
	}

	if meta.PatientID == "" || meta.DocumentType == "" {
		cause := err
		if cause == nil {
			cause = parseErr
		}
		return DocumentMetadata{}, common.NewMetadataResolutionError(
			fmt.Sprintf("patient and document type undeterminable for s3://%s/%s", bucket, key), cause)
	}
	return meta, nil
}

// ParseObjectKey extracts metadata from the conventional key layout
// patients/{patientId}/documents/{documentType}/{groupId}/{filename}.
func ParseObjectKey(key string) (DocumentMetadata, error) {
	parts := strings.Split(strings.Trim(key, "/"), "/")
	if len(parts) != 6 || parts[0] != "patients" || parts[2] != "documents" {
		return DocumentMetadata{}, fmt.Errorf("object key %q does not follow the patients/documents layout", key)
	}
	for _, p := range parts[1:] {
		if p == "" {
			return DocumentMetadata{}, fmt.Errorf("object key %q has an empty path segment", key)
		}
	}
	return DocumentMetadata{
		PatientID:    parts[1],
		DocumentType: parts[3],
		GroupID:      parts[4],
		Filename:     parts[5],
	}, nil
}

// BuildObjectKey renders the conventional key layout for an upload.
func BuildObjectKey(patientID, documentType, groupID, filename string) string {
	return fmt.Sprintf("patients/%s/documents/%s/%s/%s", patientID, documentType, groupID, filename)
}

// UploadTags renders the authoritative object tags for an upload.
func UploadTags(patientID, documentType string) map[string]string {
	return map[string]string{
		TagPatientID:    patientID,
		TagDocumentType: documentType,
	}
}
