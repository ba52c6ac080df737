package entity

import "encoding/json"

// FieldValue is one resolved extraction field as surfaced to the reviewer.
// The JSON key names are the contract with the review UI.
type FieldValue struct {
	Value      string  `json:"value"`
	RawText    string  `json:"rawText"`
	Confidence float64 `json:"confidence"`
}

// ExtractedFields maps field keys to resolved values. A nil entry marshals
// to an explicit JSON null: the field was queried but needs manual entry.
type ExtractedFields map[string]*FieldValue

// Marshal renders the map for the staging row's JSON column. Keys are
// emitted in sorted order, nil values as null.
func (f ExtractedFields) Marshal() (json.RawMessage, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal(f)
}

// UnmarshalExtractedFields parses the staging row's JSON column back into a
// field map. A NULL column yields a nil map.
func UnmarshalExtractedFields(raw json.RawMessage) (ExtractedFields, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var f ExtractedFields
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return f, nil
}
