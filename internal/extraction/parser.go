package extraction

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"github.com/renalbridge/docpipeline/internal/entity"
)

// leadingNumber matches the leading numeric token of a measurement answer.
var leadingNumber = regexp.MustCompile(`^[+-]?\d+(\.\d+)?`)

// ParseResult is the reviewable outcome of one analyzed document.
type ParseResult struct {
	Fields  entity.ExtractedFields
	LabDate *time.Time
}

// ParseQueryResults resolves every configured query against the service's
// flat block list. Every configured alias is present in the result map;
// aliases with no usable answer, or an answer whose confidence lands below
// lowThreshold after rounding, map to an explicit nil. The reserved date
// alias additionally yields the parsed report date when the text is
// recognizable.
func ParseQueryResults(blocks []types.Block, queries []FieldQuery, lowThreshold float64) ParseResult {
	byID := make(map[string]types.Block, len(blocks))
	for _, b := range blocks {
		if b.Id != nil {
			byID[*b.Id] = b
		}
	}

	configured := make(map[string]struct{}, len(queries))
	for _, q := range queries {
		configured[q.Alias] = struct{}{}
	}

	res := ParseResult{Fields: make(entity.ExtractedFields, len(queries))}
	for _, b := range blocks {
		if b.BlockType != types.BlockTypeQuery || b.Query == nil || b.Query.Alias == nil {
			continue
		}
		alias := *b.Query.Alias
		if _, known := configured[alias]; !known {
			continue
		}

		text, confidence, ok := resolveAnswer(b, byID)
		if !ok {
			res.Fields[alias] = nil
			continue
		}
		confidence = roundConfidence(confidence)
		if confidence < lowThreshold {
			res.Fields[alias] = nil
			continue
		}

		if alias == LabDateAlias {
			fv := &entity.FieldValue{Value: strings.TrimSpace(text), RawText: text, Confidence: confidence}
			if d, err := ParseLabDate(text); err == nil {
				res.LabDate = &d
				fv.Value = d.Format("2006-01-02")
			}
			res.Fields[alias] = fv
			continue
		}

		res.Fields[alias] = &entity.FieldValue{
			Value:      normalizeFieldValue(text),
			RawText:    text,
			Confidence: confidence,
		}
	}

	// aliases the service never echoed back still show up as nulls
	for _, q := range queries {
		if _, present := res.Fields[q.Alias]; !present {
			res.Fields[q.Alias] = nil
		}
	}
	return res
}

// resolveAnswer follows a query block's ANSWER relationships to its result
// blocks and returns the highest-confidence answer text.
func resolveAnswer(query types.Block, byID map[string]types.Block) (string, float64, bool) {
	var (
		text  string
		conf  float64
		found bool
	)
	for _, rel := range query.Relationships {
		if rel.Type != types.RelationshipTypeAnswer {
			continue
		}
		for _, id := range rel.Ids {
			ans, ok := byID[id]
			if !ok || ans.BlockType != types.BlockTypeQueryResult || ans.Text == nil {
				continue
			}
			t := *ans.Text
			if strings.TrimSpace(t) == "" {
				continue
			}
			c := float64(aws.ToFloat32(ans.Confidence))
			if !found || c > conf {
				text, conf, found = t, c, true
			}
		}
	}
	return text, conf, found
}

// roundConfidence snaps scores to one decimal on the service's 0-100 scale.
func roundConfidence(c float64) float64 {
	return math.Round(c*10) / 10
}

// normalizeFieldValue extracts the leading numeric token of a measurement
// ("4.5 mg/dL" -> "4.5"); qualitative answers pass through verbatim.
func normalizeFieldValue(text string) string {
	s := strings.TrimSpace(text)
	if m := leadingNumber.FindString(s); m != "" {
		return m
	}
	return s
}
