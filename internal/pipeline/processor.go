// Package pipeline turns storage notifications into reviewable staging rows.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/renalbridge/docpipeline/constants"
	"github.com/renalbridge/docpipeline/gen/ent"
	"github.com/renalbridge/docpipeline/internal/common"
	"github.com/renalbridge/docpipeline/internal/extraction"
	"github.com/renalbridge/docpipeline/internal/ingest"
	"github.com/renalbridge/docpipeline/internal/metadata"
	"github.com/renalbridge/docpipeline/internal/repository"
	"github.com/renalbridge/docpipeline/internal/storage"
)

// Processor stages one uploaded document: resolve who and what it is,
// extract fields when the type calls for it, and persist exactly one
// pending-review row. Extraction failures degrade, they never drop the
// document.
type Processor struct {
	Resolver   *metadata.Resolver
	Store      storage.ObjectStore
	Extractor  extraction.QueryExtractor
	Docs       repository.PatientDocumentRepository
	Staging    repository.StagingRepository
	Queries    []extraction.FieldQuery
	Extraction common.ExtractionConfig
	Logger     *slog.Logger
}

func NewProcessor(
	resolver *metadata.Resolver,
	store storage.ObjectStore,
	extractor extraction.QueryExtractor,
	docs repository.PatientDocumentRepository,
	staging repository.StagingRepository,
	queries []extraction.FieldQuery,
	extractionCfg common.ExtractionConfig,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Resolver:   resolver,
		Store:      store,
		Extractor:  extractor,
		Docs:       docs,
		Staging:    staging,
		Queries:    queries,
		Extraction: extractionCfg,
		Logger:     logger,
	}
}

// RecordOutcome summarizes one processed notification.
type RecordOutcome struct {
	StagingID       uuid.UUID
	PatientID       string
	DocumentType    string
	Eligible        bool
	Extracted       bool
	Duplicate       bool
	ExtractionError string
}

// ProcessObject runs the full per-record flow. An error return is fatal for
// this record only: metadata could not be resolved or the staging write
// failed. Everything else lands in the staging row.
func (p *Processor) ProcessObject(ctx context.Context, obj ingest.ObjectCreated) (RecordOutcome, error) {
	var out RecordOutcome

	meta, err := p.Resolver.Resolve(ctx, obj.Bucket, obj.Key)
	if err != nil {
		return out, err
	}
	out.PatientID = meta.PatientID
	out.DocumentType = meta.DocumentType

	canonical, _ := constants.CanonicalizeDocumentType(meta.DocumentType)
	out.Eligible = constants.IsExtractionEligible(canonical)

	params := repository.CreateStagingParams{
		PatientID:        meta.PatientID,
		SourceDocumentID: p.lookupSourceDocument(ctx, obj.Bucket, obj.Key),
		DocumentType:     meta.DocumentType,
		StorageBucket:    obj.Bucket,
		StorageKey:       obj.Key,
	}

	if out.Eligible {
		res, extractErr := p.extract(ctx, obj)
		if extractErr != nil {
			// degrade: the reviewer gets the document either way
			appErr := common.NewExtractionServiceError("field extraction failed", extractErr)
			p.Logger.Warn("pipeline.extract.failed",
				"bucket", obj.Bucket, "key", obj.Key, "patient_id", meta.PatientID, "error", appErr)
			msg := appErr.Error()
			params.ExtractionError = &msg
			out.ExtractionError = msg
		} else {
			fieldsJSON, merr := res.Fields.Marshal()
			if merr != nil {
				appErr := common.NewExtractionServiceError("encode extracted fields", merr)
				msg := appErr.Error()
				params.ExtractionError = &msg
				out.ExtractionError = msg
			} else {
				params.ExtractedFields = fieldsJSON
				params.LabDate = res.LabDate
				out.Extracted = true
			}
		}
	} else {
		p.Logger.Info("pipeline.extract.skipped",
			"bucket", obj.Bucket, "key", obj.Key, "document_type", meta.DocumentType)
	}

	row, duplicate, err := p.Staging.CreatePending(ctx, params)
	if err != nil {
		return out, common.NewPersistenceError(
			fmt.Sprintf("stage upload s3://%s/%s", obj.Bucket, obj.Key), err)
	}
	out.StagingID = row.ID
	out.Duplicate = duplicate

	p.Logger.Info("pipeline.record.ok",
		"staging_id", row.ID,
		"patient_id", meta.PatientID,
		"document_type", meta.DocumentType,
		"eligible", out.Eligible,
		"extracted", out.Extracted,
		"duplicate", duplicate)
	return out, nil
}

// lookupSourceDocument finds the upload record sharing the storage key.
// Best effort: a missing or unreachable record leaves the back-reference
// null, it never fails the pipeline.
func (p *Processor) lookupSourceDocument(ctx context.Context, bucket, key string) *uuid.UUID {
	doc, err := p.Docs.GetByStorageKey(ctx, bucket, key)
	if err != nil {
		if ent.IsNotFound(err) {
			p.Logger.Debug("pipeline.source_document.missing", "bucket", bucket, "key", key)
		} else {
			p.Logger.Warn("pipeline.source_document.lookup_failed", "bucket", bucket, "key", key, "error", err)
		}
		return nil
	}
	return &doc.ID
}

func (p *Processor) extract(ctx context.Context, obj ingest.ObjectCreated) (extraction.ParseResult, error) {
	data, err := p.Store.GetObject(ctx, obj.Bucket, obj.Key, p.Extraction.MaxDocumentBytes)
	if err != nil {
		return extraction.ParseResult{}, fmt.Errorf("fetch document: %w", err)
	}

	blocks, err := p.Extractor.AnalyzeDocument(ctx, data, p.Queries)
	if err != nil {
		return extraction.ParseResult{}, err
	}

	return extraction.ParseQueryResults(blocks, p.Queries, p.Extraction.LowConfidence), nil
}
