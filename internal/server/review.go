// Package server exposes the staging queue to reviewers over gRPC.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renalbridge/docpipeline/constants"
	"github.com/renalbridge/docpipeline/gen/ent"
	docstagingpb "github.com/renalbridge/docpipeline/gen/proto/docstaging/v1"
	"github.com/renalbridge/docpipeline/internal/common"
	"github.com/renalbridge/docpipeline/internal/entity"
	"github.com/renalbridge/docpipeline/internal/repository"
	"github.com/renalbridge/docpipeline/internal/utils"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// ReviewServer handles the staging review workflow.
type ReviewServer struct {
	docstagingpb.UnimplementedReviewServiceServer
	staging    repository.StagingRepository
	docs       repository.PatientDocumentRepository
	extraction common.ExtractionConfig
	logger     *slog.Logger
}

func NewReviewServer(
	staging repository.StagingRepository,
	docs repository.PatientDocumentRepository,
	extraction common.ExtractionConfig,
	logger *slog.Logger,
) *ReviewServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewServer{
		staging:    staging,
		docs:       docs,
		extraction: extraction,
		logger:     logger,
	}
}

func (s *ReviewServer) ListStagingRecords(ctx context.Context, req *docstagingpb.ListStagingRecordsRequest) (*docstagingpb.ListStagingRecordsResponse, error) {
	statusFilter := strings.TrimSpace(req.GetStatus())
	if statusFilter != "" {
		validator := common.NewValidator()
		validator.Field("status", statusFilter, common.ReviewStatusValue)
		if err := common.ValidateAndReturnError(validator); err != nil {
			return nil, err
		}
	}

	pageSize := int(req.GetPageSize())
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	offset := int(req.GetPageOffset())
	if offset < 0 {
		return nil, common.InvalidArgumentError("page_offset must not be negative")
	}

	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &to
	}

	rows, total, err := s.staging.List(ctx, repository.StagingFilter{
		Status:      statusFilter,
		PatientID:   strings.TrimSpace(req.GetPatientId()),
		CreatedFrom: fromDate,
		CreatedTo:   toDate,
		Limit:       pageSize,
		Offset:      offset,
	})
	if err != nil {
		s.logger.Error("review.list.failed", "error", err)
		return nil, common.InternalErrorf("list staging records: %v", err)
	}

	out := make([]*docstagingpb.StagingRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.toPB(row))
	}
	return &docstagingpb.ListStagingRecordsResponse{
		Records:    out,
		TotalCount: int32(total),
	}, nil
}

func (s *ReviewServer) GetStagingRecord(ctx context.Context, req *docstagingpb.GetStagingRecordRequest) (*docstagingpb.GetStagingRecordResponse, error) {
	validator := common.NewValidator()
	validator.Field("id", req.GetId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	id := uuid.MustParse(strings.TrimSpace(req.GetId()))

	row, err := s.staging.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("staging record not found")
		}
		s.logger.Error("review.get.failed", "staging_id", id, "error", err)
		return nil, common.InternalErrorf("get staging record: %v", err)
	}

	resp := &docstagingpb.GetStagingRecordResponse{Record: s.toPB(row)}
	if row.SourceDocumentID != nil {
		doc, err := s.docs.GetByID(ctx, *row.SourceDocumentID)
		if err != nil {
			// the record stands on its own without the upload details
			s.logger.Warn("review.get.source_document_unavailable",
				"staging_id", id, "source_document_id", *row.SourceDocumentID, "error", err)
		} else {
			resp.SourceDocument = utils.ToPBPatientDocument(utils.ToPatientDocument(doc))
		}
	}
	return resp, nil
}

func (s *ReviewServer) SubmitReview(ctx context.Context, req *docstagingpb.SubmitReviewRequest) (*docstagingpb.SubmitReviewResponse, error) {
	validator := common.NewValidator()
	validator.Field("id", req.GetId(), common.Required, common.UUID)
	validator.Field("status", req.GetStatus(), common.Required, common.ReviewStatusValue)
	validator.Field("reviewed_by", req.GetReviewedBy(), common.Required, common.MaxLength(120))
	validator.Field("admin_notes", req.GetAdminNotes(), common.MaxLength(2000))
	if ft := strings.TrimSpace(req.GetFinalDocumentType()); ft != "" {
		validator.Field("final_document_type", ft, common.DocumentTypeValue)
	}
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	id := uuid.MustParse(strings.TrimSpace(req.GetId()))
	newStatus, _ := constants.ParseReviewStatus(req.GetStatus())

	// corrections are stored canonical, whatever label the reviewer typed
	var finalType *string
	if ft := strings.TrimSpace(req.GetFinalDocumentType()); ft != "" {
		canonical, _ := constants.CanonicalizeDocumentType(ft)
		v := string(canonical)
		finalType = &v
	}
	var notes *string
	if n := strings.TrimSpace(req.GetAdminNotes()); n != "" {
		notes = &n
	}

	reviewer := strings.TrimSpace(req.GetReviewedBy())
	row, err := s.staging.SubmitReview(ctx, id, repository.ReviewParams{
		Status:            newStatus,
		ReviewedBy:        reviewer,
		FinalDocumentType: finalType,
		AdminNotes:        notes,
	})
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("staging record not found")
		}
		var appErr *common.AppError
		if errors.As(err, &appErr) && appErr.Code == "REVIEW_TRANSITION" {
			return nil, common.FailedPreconditionError(appErr.Message)
		}
		s.logger.Error("review.submit.failed", "staging_id", id, "error", err)
		return nil, common.InternalErrorf("submit review: %v", err)
	}

	s.logger.Info("review.submit.ok",
		"staging_id", id, "status", newStatus, "reviewed_by", reviewer)
	return &docstagingpb.SubmitReviewResponse{Record: s.toPB(row)}, nil
}

func (s *ReviewServer) GetReviewQueueStats(ctx context.Context, _ *docstagingpb.GetReviewQueueStatsRequest) (*docstagingpb.GetReviewQueueStatsResponse, error) {
	counts, err := s.staging.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("review.stats.failed", "error", err)
		return nil, common.InternalErrorf("count staging records: %v", err)
	}

	out := make(map[string]int32, len(counts))
	for status, n := range counts {
		out[status] = int32(n)
	}
	return &docstagingpb.GetReviewQueueStatsResponse{StatusCounts: out}, nil
}

func (s *ReviewServer) toPB(row *ent.StagingRecord) *docstagingpb.StagingRecord {
	return utils.ToPBStagingRecord(utils.ToStagingRecord(row),
		lowConfidenceFields(row.ExtractedFields, s.extraction.MediumConfidence))
}

// lowConfidenceFields lists extracted fields whose confidence sits below
// the advisory threshold. Purely a reviewer hint.
func lowConfidenceFields(raw json.RawMessage, threshold float64) []string {
	fields, err := entity.UnmarshalExtractedFields(raw)
	if err != nil || len(fields) == 0 {
		return nil
	}
	var out []string
	for alias, fv := range fields {
		if fv != nil && fv.Confidence < threshold {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}
