// Package ingest covers how documents enter the pipeline: storage event
// notifications in production, and the backfill uploader for historical
// documents.
package ingest

import "time"

// UploadResult is the per-file backfill outcome.
type UploadResult struct {
	SourcePath   string
	DocumentID   string
	StorageKey   string
	Deduplicated bool
	HashHex      string
	UploadedAt   time.Time
	Err          string
}

// DirStats summarizes a directory backfill.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}
