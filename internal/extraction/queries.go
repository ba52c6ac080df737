package extraction

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FieldQuery pairs a canonical field key with the natural-language question
// sent to the extraction service.
type FieldQuery struct {
	Alias string `json:"alias"`
	Query string `json:"query"`
}

// LabDateAlias is the reserved alias whose answer is parsed as the lab
// report date instead of a field value.
const LabDateAlias = "lab_date"

//go:embed fieldqueries.json
var fieldQueriesJSON []byte

// queryConfigSchema constrains the embedded config: snake_case aliases and
// real questions, nothing else.
const queryConfigSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["version", "fields"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "fields": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["alias", "query"],
        "properties": {
          "alias": {"type": "string", "pattern": "^[a-z][a-z0-9_]*$"},
          "query": {"type": "string", "minLength": 5}
        }
      }
    }
  }
}`

var (
	queriesOnce   sync.Once
	loadedQueries []FieldQuery
	queriesErr    error
)

// LoadFieldQueries returns the configured extraction queries. The embedded
// config is schema-validated once; an invalid build fails on first use, not
// mid-batch.
func LoadFieldQueries() ([]FieldQuery, error) {
	queriesOnce.Do(func() {
		loadedQueries, queriesErr = parseFieldQueries(fieldQueriesJSON)
	})
	return loadedQueries, queriesErr
}

func parseFieldQueries(raw []byte) ([]FieldQuery, error) {
	if err := validateQueryConfig(raw); err != nil {
		return nil, fmt.Errorf("field query config: %w", err)
	}

	var doc struct {
		Version int          `json:"version"`
		Fields  []FieldQuery `json:"fields"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("field query config: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Fields))
	for _, f := range doc.Fields {
		if _, dup := seen[f.Alias]; dup {
			return nil, fmt.Errorf("field query config: duplicate alias %q", f.Alias)
		}
		seen[f.Alias] = struct{}{}
	}
	return doc.Fields, nil
}

// validateQueryConfig validates raw against queryConfigSchema.
func validateQueryConfig(raw []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("fieldqueries.schema.json", strings.NewReader(queryConfigSchema)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("fieldqueries.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}
