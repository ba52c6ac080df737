package server

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	docstagingpb "github.com/renalbridge/docpipeline/gen/proto/docstaging/v1"
)

func TestExportStagingRecordsWorkbook(t *testing.T) {
	env := newServerEnv(t)
	fields := json.RawMessage(`{
		"potassium": {"value":"4.5","rawText":"4.5 mmol/L","confidence":92.0},
		"bun":       null
	}`)
	env.seedPending(t, "P1", "patients/P1/documents/current_labs/g1/a.pdf", fields)
	env.seedPending(t, "P2", "patients/P2/documents/current_labs/g1/b.pdf", nil)

	resp, err := env.export.ExportStagingRecords(context.Background(), &docstagingpb.ExportStagingRecordsRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, resp.GetXlsx())

	wb, err := excelize.OpenReader(bytes.NewReader(resp.GetXlsx()))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Staging")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two records")
	assert.Equal(t, "Patient ID", rows[0][0])

	summaries := map[string]string{}
	for _, row := range rows[1:] {
		summaries[row[0]] = row[5]
		assert.Equal(t, "PENDING_REVIEW", row[3])
	}
	assert.Equal(t, "1/2", summaries["P1"])
	assert.Equal(t, "", summaries["P2"])
}

func TestExportStagingRecordsFilterByPatient(t *testing.T) {
	env := newServerEnv(t)
	env.seedPending(t, "P1", "patients/P1/documents/current_labs/g1/a.pdf", nil)
	env.seedPending(t, "P2", "patients/P2/documents/current_labs/g1/b.pdf", nil)

	resp, err := env.export.ExportStagingRecords(context.Background(), &docstagingpb.ExportStagingRecordsRequest{
		PatientId: "P2",
	})
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(resp.GetXlsx()))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Staging")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "P2", rows[1][0])
}

func TestExportStagingRecordsRejectsUnknownStatus(t *testing.T) {
	env := newServerEnv(t)

	_, err := env.export.ExportStagingRecords(context.Background(), &docstagingpb.ExportStagingRecordsRequest{
		Status: "ARCHIVED",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
