package extraction

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryBlock(id, alias string, answerIDs ...string) types.Block {
	b := types.Block{
		BlockType: types.BlockTypeQuery,
		Id:        aws.String(id),
		Query:     &types.Query{Alias: aws.String(alias)},
	}
	if len(answerIDs) > 0 {
		b.Relationships = []types.Relationship{
			{Type: types.RelationshipTypeAnswer, Ids: answerIDs},
		}
	}
	return b
}

func resultBlock(id, text string, confidence float32) types.Block {
	return types.Block{
		BlockType:  types.BlockTypeQueryResult,
		Id:         aws.String(id),
		Text:       aws.String(text),
		Confidence: aws.Float32(confidence),
	}
}

func TestParseQueryResultsLabScenario(t *testing.T) {
	queries := []FieldQuery{
		{Alias: "potassium", Query: "What is the potassium value?"},
		{Alias: "bun", Query: "What is the blood urea nitrogen (BUN) value?"},
	}
	blocks := []types.Block{
		queryBlock("q1", "potassium", "a1"),
		resultBlock("a1", "4.5 mg/dL", 92.0),
		queryBlock("q2", "bun", "a2"),
		resultBlock("a2", "22", 10.0),
	}

	res := ParseQueryResults(blocks, queries, 50)

	require.Len(t, res.Fields, 2)
	potassium := res.Fields["potassium"]
	require.NotNil(t, potassium)
	assert.Equal(t, "4.5", potassium.Value)
	assert.Equal(t, "4.5 mg/dL", potassium.RawText)
	assert.Equal(t, 92.0, potassium.Confidence)

	bun, present := res.Fields["bun"]
	require.True(t, present, "discarded fields stay present as explicit nulls")
	assert.Nil(t, bun)
}

func TestParseQueryResultsThresholdBoundary(t *testing.T) {
	queries := []FieldQuery{{Alias: "potassium", Query: "q"}}
	tests := []struct {
		name       string
		confidence float32
		kept       bool
		stored     float64
	}{
		{"exactly at threshold", 50.0, true, 50.0},
		{"just below", 49.9, false, 0},
		{"rounds up onto threshold", 49.96, true, 50.0},
		{"rounds down onto threshold", 50.04, true, 50.0},
		{"rounds down below threshold", 49.94, false, 0},
		{"well above", 92.456, true, 92.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := []types.Block{
				queryBlock("q1", "potassium", "a1"),
				resultBlock("a1", "4.5", tt.confidence),
			}
			res := ParseQueryResults(blocks, queries, 50)
			fv, present := res.Fields["potassium"]
			require.True(t, present)
			if !tt.kept {
				assert.Nil(t, fv)
				return
			}
			require.NotNil(t, fv)
			assert.Equal(t, tt.stored, fv.Confidence)
		})
	}
}

func TestParseQueryResultsValueNormalization(t *testing.T) {
	queries := []FieldQuery{{Alias: "field", Query: "q"}}
	tests := []struct {
		raw  string
		want string
	}{
		{"4.5 mg/dL", "4.5"},
		{"4.5", "4.5"},
		{"136 mmol/L", "136"},
		{"-2.1 offset", "-2.1"},
		{"+1.2", "+1.2"},
		{"Negative", "Negative"},
		{"<0.5 mg/dL", "<0.5 mg/dL"},
		{"  Trace  ", "Trace"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			blocks := []types.Block{
				queryBlock("q1", "field", "a1"),
				resultBlock("a1", tt.raw, 90),
			}
			res := ParseQueryResults(blocks, queries, 50)
			fv := res.Fields["field"]
			require.NotNil(t, fv)
			assert.Equal(t, tt.want, fv.Value)
			assert.Equal(t, tt.raw, fv.RawText)
		})
	}
}

func TestParseQueryResultsUnanswered(t *testing.T) {
	queries := []FieldQuery{
		{Alias: "potassium", Query: "q"},
		{Alias: "sodium", Query: "q"},
		{Alias: "egfr", Query: "q"},
	}
	blocks := []types.Block{
		// no relationships at all
		queryBlock("q1", "potassium"),
		// answer id that resolves to nothing
		queryBlock("q2", "sodium", "missing"),
		// egfr never echoed back by the service
	}

	res := ParseQueryResults(blocks, queries, 50)

	require.Len(t, res.Fields, 3)
	for alias, fv := range res.Fields {
		assert.Nil(t, fv, "alias %s should be an explicit null", alias)
	}
}

func TestParseQueryResultsPicksBestAnswer(t *testing.T) {
	queries := []FieldQuery{{Alias: "potassium", Query: "q"}}
	blocks := []types.Block{
		queryBlock("q1", "potassium", "a1", "a2"),
		resultBlock("a1", "4.1", 61),
		resultBlock("a2", "4.5", 88),
	}

	res := ParseQueryResults(blocks, queries, 50)

	fv := res.Fields["potassium"]
	require.NotNil(t, fv)
	assert.Equal(t, "4.5", fv.Value)
	assert.Equal(t, 88.0, fv.Confidence)
}

func TestParseQueryResultsLabDate(t *testing.T) {
	queries := []FieldQuery{{Alias: LabDateAlias, Query: "q"}}

	t.Run("parseable date", func(t *testing.T) {
		blocks := []types.Block{
			queryBlock("q1", LabDateAlias, "a1"),
			resultBlock("a1", "01/15/2025", 95),
		}
		res := ParseQueryResults(blocks, queries, 50)
		require.NotNil(t, res.LabDate)
		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), *res.LabDate)
		fv := res.Fields[LabDateAlias]
		require.NotNil(t, fv)
		assert.Equal(t, "2025-01-15", fv.Value)
		assert.Equal(t, "01/15/2025", fv.RawText)
	})

	t.Run("unparseable date keeps text, no date", func(t *testing.T) {
		blocks := []types.Block{
			queryBlock("q1", LabDateAlias, "a1"),
			resultBlock("a1", "N/A", 95),
		}
		res := ParseQueryResults(blocks, queries, 50)
		assert.Nil(t, res.LabDate)
		fv := res.Fields[LabDateAlias]
		require.NotNil(t, fv)
		assert.Equal(t, "N/A", fv.Value)
	})

	t.Run("low confidence date discarded entirely", func(t *testing.T) {
		blocks := []types.Block{
			queryBlock("q1", LabDateAlias, "a1"),
			resultBlock("a1", "01/15/2025", 32),
		}
		res := ParseQueryResults(blocks, queries, 50)
		assert.Nil(t, res.LabDate)
		assert.Nil(t, res.Fields[LabDateAlias])
	})
}

func TestParseQueryResultsIgnoresNoise(t *testing.T) {
	queries := []FieldQuery{{Alias: "potassium", Query: "q"}}
	blocks := []types.Block{
		// unknown alias echoed by the service
		queryBlock("q0", "unconfigured", "a0"),
		resultBlock("a0", "ignore me", 99),
		// malformed query block
		{BlockType: types.BlockTypeQuery, Id: aws.String("q-broken")},
		// answer with empty text
		queryBlock("q1", "potassium", "a1", "a2"),
		resultBlock("a1", "   ", 97),
		resultBlock("a2", "4.5", 90),
		// unrelated block types
		{BlockType: types.BlockTypeLine, Id: aws.String("l1"), Text: aws.String("POTASSIUM 4.5")},
	}

	res := ParseQueryResults(blocks, queries, 50)

	require.Len(t, res.Fields, 1)
	fv := res.Fields["potassium"]
	require.NotNil(t, fv)
	assert.Equal(t, "4.5", fv.Value)
	assert.Equal(t, 90.0, fv.Confidence)
}

func TestParseQueryResultsEmptyBlocks(t *testing.T) {
	queries, err := LoadFieldQueries()
	require.NoError(t, err)

	res := ParseQueryResults(nil, queries, 50)

	require.Len(t, res.Fields, len(queries))
	for alias, fv := range res.Fields {
		assert.Nil(t, fv, "alias %s", alias)
	}
	assert.Nil(t, res.LabDate)
}
