package extraction

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFieldQueries(t *testing.T) {
	queries, err := LoadFieldQueries()
	require.NoError(t, err)
	assert.Len(t, queries, 18)

	aliasPattern := regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	seen := map[string]bool{}
	for _, q := range queries {
		assert.Regexp(t, aliasPattern, q.Alias)
		assert.NotEmpty(t, q.Query)
		assert.False(t, seen[q.Alias], "alias %s duplicated", q.Alias)
		seen[q.Alias] = true
	}
	assert.True(t, seen[LabDateAlias], "the reserved date alias must be configured")
}

func TestParseFieldQueriesRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"version": 1, "fields": [`},
		{"missing fields", `{"version": 1}`},
		{"empty fields", `{"version": 1, "fields": []}`},
		{"bad alias", `{"version": 1, "fields": [{"alias": "Lab Date", "query": "What is the date?"}]}`},
		{"missing query", `{"version": 1, "fields": [{"alias": "potassium"}]}`},
		{"short query", `{"version": 1, "fields": [{"alias": "potassium", "query": "K?"}]}`},
		{"unknown key", `{"version": 1, "fields": [{"alias": "potassium", "query": "What is K?", "threshold": 3}]}`},
		{
			"duplicate alias",
			`{"version": 1, "fields": [{"alias": "potassium", "query": "What is the potassium value?"}, {"alias": "potassium", "query": "What is K?"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFieldQueries([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}
