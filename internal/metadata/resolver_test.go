package metadata

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renalbridge/docpipeline/internal/common"
)

type fakeTagReader struct {
	tags map[string]string
	err  error
}

func (f *fakeTagReader) GetObjectTags(ctx context.Context, bucket, key string) (map[string]string, error) {
	return f.tags, f.err
}

func TestParseObjectKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    DocumentMetadata
		wantErr bool
	}{
		{
			name: "conventional layout",
			key:  "patients/P1/documents/current_labs/g42/labs.pdf",
			want: DocumentMetadata{PatientID: "P1", DocumentType: "current_labs", GroupID: "g42", Filename: "labs.pdf"},
		},
		{
			name: "leading slash tolerated",
			key:  "/patients/P1/documents/photo_id/g1/id.png",
			want: DocumentMetadata{PatientID: "P1", DocumentType: "photo_id", GroupID: "g1", Filename: "id.png"},
		},
		{name: "wrong prefix", key: "uploads/P1/documents/current_labs/g42/labs.pdf", wantErr: true},
		{name: "missing segment", key: "patients/P1/current_labs/g42/labs.pdf", wantErr: true},
		{name: "extra segment", key: "patients/P1/documents/current_labs/g42/extra/labs.pdf", wantErr: true},
		{name: "empty segment", key: "patients//documents/current_labs/g42/labs.pdf", wantErr: true},
		{name: "empty key", key: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseObjectKey(tt.key)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseObjectKey(%q) expected error, got %+v", tt.key, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseObjectKey(%q) unexpected error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("ParseObjectKey(%q) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

func TestBuildObjectKeyRoundTrip(t *testing.T) {
	key := BuildObjectKey("P1", "current_labs", "g42", "labs.pdf")
	got, err := ParseObjectKey(key)
	require.NoError(t, err)
	assert.Equal(t, "P1", got.PatientID)
	assert.Equal(t, "current_labs", got.DocumentType)
}

func TestResolvePrefersTags(t *testing.T) {
	r := NewResolver(&fakeTagReader{tags: map[string]string{
		TagPatientID:    "P77",
		TagDocumentType: "insurance_card",
	}}, nil)

	got, err := r.Resolve(context.Background(), "docs", "patients/P1/documents/current_labs/g42/labs.pdf")
	require.NoError(t, err)
	assert.Equal(t, "P77", got.PatientID)
	assert.Equal(t, "insurance_card", got.DocumentType)
	// layout details still come from the key
	assert.Equal(t, "g42", got.GroupID)
}

func TestResolvePathFallback(t *testing.T) {
	r := NewResolver(&fakeTagReader{tags: map[string]string{}}, nil)

	got, err := r.Resolve(context.Background(), "docs", "patients/P1/documents/current_labs/g42/labs.pdf")
	require.NoError(t, err)
	assert.Equal(t, "P1", got.PatientID)
	assert.Equal(t, "current_labs", got.DocumentType)
	assert.Equal(t, "labs.pdf", got.Filename)
}

func TestResolveMergesPartialTags(t *testing.T) {
	r := NewResolver(&fakeTagReader{tags: map[string]string{TagPatientID: "P77"}}, nil)

	got, err := r.Resolve(context.Background(), "docs", "patients/P1/documents/current_labs/g42/labs.pdf")
	require.NoError(t, err)
	assert.Equal(t, "P77", got.PatientID)
	assert.Equal(t, "current_labs", got.DocumentType)
}

func TestResolveTagServiceDownUsesPath(t *testing.T) {
	r := NewResolver(&fakeTagReader{err: errors.New("throttled")}, nil)

	got, err := r.Resolve(context.Background(), "docs", "patients/P1/documents/current_labs/g42/labs.pdf")
	require.NoError(t, err)
	assert.Equal(t, "P1", got.PatientID)
}

func TestResolveFailsWhenUndeterminable(t *testing.T) {
	tests := []struct {
		name string
		tags *fakeTagReader
		key  string
	}{
		{"no tags and unconventional key", &fakeTagReader{tags: map[string]string{}}, "adhoc/labs.pdf"},
		{"tag service down and unconventional key", &fakeTagReader{err: errors.New("throttled")}, "adhoc/labs.pdf"},
		{"blank tag values", &fakeTagReader{tags: map[string]string{TagPatientID: "  ", TagDocumentType: ""}}, "adhoc/labs.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResolver(tt.tags, nil).Resolve(context.Background(), "docs", tt.key)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrMetadataResolution))
		})
	}
}
