// Package export renders staging queue slices as XLSX workbooks.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/renalbridge/docpipeline/gen/ent"
	"github.com/renalbridge/docpipeline/internal/entity"
	"github.com/renalbridge/docpipeline/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	staging repository.StagingRepository
	docs    repository.PatientDocumentRepository
	logger  *slog.Logger
}

func NewService(staging repository.StagingRepository, docs repository.PatientDocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{staging: staging, docs: docs, logger: logger}
}

// ExportStagingXLSX returns a workbook of the staging rows matching filter.
// An empty filter exports the whole queue.
func (s *Service) ExportStagingXLSX(ctx context.Context, filter repository.StagingFilter) ([]byte, error) {
	start := time.Now()

	filter.Limit = 0
	filter.Offset = 0
	rows, _, err := s.staging.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query staging records: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Staging"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Patient ID",
		"Document Type",
		"Final Type",
		"Status",
		"Lab Date",
		"Fields Extracted",
		"Extraction Error",
		"Reviewed By",
		"Reviewed At",
		"Source File",
		"Storage Key",
		"Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.PatientID)
		write(2, r.DocumentType)
		write(3, strOrEmpty(r.FinalDocumentType))
		write(4, r.Status)
		if r.LabDate != nil {
			write(5, r.LabDate.Format("2006-01-02"))
		} else {
			write(5, "")
		}
		write(6, extractedSummary(r))
		write(7, truncate(strOrEmpty(r.ExtractionError), 140))
		write(8, strOrEmpty(r.ReviewedBy))
		if r.ReviewedAt != nil {
			write(9, r.ReviewedAt.UTC().Format("2006-01-02 15:04"))
		} else {
			write(9, "")
		}
		write(10, s.sourceFilename(ctx, r))
		write(11, r.StorageKey)
		write(12, r.CreatedAt.UTC().Format("2006-01-02 15:04"))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "D", 18)
	_ = f.SetColWidth(sheet, "E", "E", 12)
	_ = f.SetColWidth(sheet, "F", "F", 16)
	_ = f.SetColWidth(sheet, "G", "G", 48)
	_ = f.SetColWidth(sheet, "H", "I", 18)
	_ = f.SetColWidth(sheet, "J", "J", 28)
	_ = f.SetColWidth(sheet, "K", "K", 60)
	_ = f.SetColWidth(sheet, "L", "L", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"status", filter.Status,
		"patient_id", filter.PatientID,
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// sourceFilename resolves the uploaded filename behind a staged row. Export
// rows survive a missing upload record.
func (s *Service) sourceFilename(ctx context.Context, r *ent.StagingRecord) string {
	if r.SourceDocumentID == nil {
		return ""
	}
	doc, err := s.docs.GetByID(ctx, *r.SourceDocumentID)
	if err != nil {
		return ""
	}
	return doc.Filename
}

// extractedSummary renders "extracted/queried" for rows where extraction ran.
func extractedSummary(r *ent.StagingRecord) string {
	fields, err := entity.UnmarshalExtractedFields(r.ExtractedFields)
	if err != nil || fields == nil {
		return ""
	}
	extracted := 0
	for _, fv := range fields {
		if fv != nil {
			extracted++
		}
	}
	return fmt.Sprintf("%d/%d", extracted, len(fields))
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
