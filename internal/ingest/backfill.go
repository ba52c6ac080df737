package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renalbridge/docpipeline/constants"
	"github.com/renalbridge/docpipeline/internal/metadata"
	"github.com/renalbridge/docpipeline/internal/repository"
	"github.com/renalbridge/docpipeline/internal/storage"
)

// S3Backfiller uploads historical documents from the local filesystem into
// the documents bucket, tagged and keyed the way the upload endpoint does
// it, so the pipeline can process them like any other upload.
type S3Backfiller struct {
	Store   storage.ObjectStore
	Docs    repository.PatientDocumentRepository
	GroupID uuid.UUID
	Logger  *slog.Logger
}

func NewS3Backfiller(store storage.ObjectStore, docs repository.PatientDocumentRepository, logger *slog.Logger) *S3Backfiller {
	if logger == nil {
		logger = slog.Default()
	}
	return &S3Backfiller{
		Store:   store,
		Docs:    docs,
		GroupID: uuid.New(),
		Logger:  logger,
	}
}

func (b *S3Backfiller) UploadPath(ctx context.Context, patientID, documentType, bucket, path string) (UploadResult, error) {
	var out UploadResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !allowedExt(ext) {
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return out, fmt.Errorf("read %s: %w", abs, err)
	}

	sum := sha256.Sum256(data)
	now := time.Now().UTC()
	filename := filepath.Base(abs)
	key := metadata.BuildObjectKey(patientID, documentType, b.GroupID.String(), filename)

	if existing, err := b.Docs.GetByPatientAndHash(ctx, patientID, sum[:]); err == nil {
		b.Logger.Info("backfill.dedup", "patient_id", patientID, "path", abs, "document_id", existing.ID)
		return UploadResult{
			SourcePath:   abs,
			DocumentID:   existing.ID.String(),
			StorageKey:   existing.StorageKey,
			Deduplicated: true,
			HashHex:      hex.EncodeToString(sum[:]),
			UploadedAt:   existing.UploadedAt,
		}, nil
	}

	contentType := constants.ContentTypeForExt(ext)
	err = b.Store.PutObject(ctx, bucket, key, data, contentType, metadata.UploadTags(patientID, documentType))
	if err != nil {
		return out, fmt.Errorf("upload %s: %w", abs, err)
	}

	// a concurrent backfill may have recorded the same content between
	// the dedup check and here
	doc, _, err := b.Docs.UpsertByHash(ctx, repository.CreateDocumentParams{
		PatientID:     patientID,
		DocumentType:  documentType,
		StorageBucket: bucket,
		StorageKey:    key,
		Filename:      filename,
		ContentType:   contentType,
		FileSize:      int64(len(data)),
		ContentHash:   sum[:],
		UploadedAt:    now,
	})
	if err != nil {
		return out, fmt.Errorf("record %s: %w", abs, err)
	}

	b.Logger.Info("backfill.uploaded", "patient_id", patientID, "key", key, "bytes", len(data))
	return UploadResult{
		SourcePath: abs,
		DocumentID: doc.ID.String(),
		StorageKey: key,
		HashHex:    hex.EncodeToString(sum[:]),
		UploadedAt: now,
	}, nil
}

// UploadDirectory walks root, skips hidden if requested, and calls
// UploadPath for each file. Returns per-file results + aggregate stats.
func (b *S3Backfiller) UploadDirectory(
	ctx context.Context,
	patientID, documentType, bucket, root string,
	skipHidden bool,
) ([]UploadResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []UploadResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, UploadResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !allowedExt(ext) {
			return nil
		}
		stats.Matched++

		r, err := b.UploadPath(ctx, patientID, documentType, bucket, path)
		if err != nil {
			results = append(results, UploadResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func allowedExt(ext string) bool {
	_, ok := constants.AllowedExtensions[constants.NormalizeExt(ext)]
	return ok
}

// isHidden reports whether the base name starts with a dot.
func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
