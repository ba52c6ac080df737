package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	docstagingpb "github.com/renalbridge/docpipeline/gen/proto/docstaging/v1"
	"github.com/renalbridge/docpipeline/internal/common"
	"github.com/renalbridge/docpipeline/internal/export"
	"github.com/renalbridge/docpipeline/internal/repository"
	"github.com/renalbridge/docpipeline/internal/utils"
)

// ExportServer hands out staging queue spreadsheets.
type ExportServer struct {
	docstagingpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportStagingRecords(ctx context.Context, req *docstagingpb.ExportStagingRecordsRequest) (*docstagingpb.ExportStagingRecordsResponse, error) {
	statusFilter := strings.TrimSpace(req.GetStatus())
	if statusFilter != "" {
		validator := common.NewValidator()
		validator.Field("status", statusFilter, common.ReviewStatusValue)
		if err := common.ValidateAndReturnError(validator); err != nil {
			return nil, err
		}
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
	// a from_date alone exports through today
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		to := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &to
	}

	xlsx, err := s.svc.ExportStagingXLSX(ctx, repository.StagingFilter{
		Status:      statusFilter,
		PatientID:   strings.TrimSpace(req.GetPatientId()),
		CreatedFrom: fromDate,
		CreatedTo:   toDate,
	})
	if err != nil {
		s.logger.Error("export.xlsx.failed", "status", statusFilter, "error", err)
		return nil, common.InternalErrorf("export staging records: %v", err)
	}

	return &docstagingpb.ExportStagingRecordsResponse{Xlsx: xlsx}, nil
}
