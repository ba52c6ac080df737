package repository

import (
	"context"
	"crypto/sha256"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renalbridge/docpipeline/constants"
	"github.com/renalbridge/docpipeline/gen/ent"
)

func docParams(patientID, key string, hash []byte) CreateDocumentParams {
	return CreateDocumentParams{
		PatientID:     patientID,
		DocumentType:  string(constants.CurrentLabs),
		StorageBucket: "docs",
		StorageKey:    key,
		Filename:      "labs.pdf",
		ContentType:   "application/pdf",
		FileSize:      2048,
		ContentHash:   hash,
		UploadedAt:    time.Now().UTC(),
	}
}

func TestPatientDocumentUpsertByHash(t *testing.T) {
	repo := NewPatientDocumentRepository(newTestClient(t), testLogger())
	ctx := context.Background()
	sum := sha256.Sum256([]byte("lab report body"))

	first, dedup, err := repo.UpsertByHash(ctx, docParams("P1", "patients/P1/documents/current_labs/g1/labs.pdf", sum[:]))
	require.NoError(t, err)
	assert.False(t, dedup)

	second, dedup, err := repo.UpsertByHash(ctx, docParams("P1", "patients/P1/documents/current_labs/g2/labs.pdf", sum[:]))
	require.NoError(t, err)
	assert.True(t, dedup)
	assert.Equal(t, first.ID, second.ID)

	// same content for a different patient is a fresh record
	third, dedup, err := repo.UpsertByHash(ctx, docParams("P2", "patients/P2/documents/current_labs/g1/labs.pdf", sum[:]))
	require.NoError(t, err)
	assert.False(t, dedup)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestPatientDocumentGetByStorageKey(t *testing.T) {
	repo := NewPatientDocumentRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	created, err := repo.Create(ctx, docParams("P1", "patients/P1/documents/current_labs/g1/labs.pdf", nil))
	require.NoError(t, err)

	found, err := repo.GetByStorageKey(ctx, "docs", "patients/P1/documents/current_labs/g1/labs.pdf")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetByStorageKey(ctx, "docs", "patients/P1/documents/current_labs/zz/labs.pdf")
	require.Error(t, err)
	assert.True(t, ent.IsNotFound(err))
}
