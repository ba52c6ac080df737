// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/renalbridge/docpipeline/gen/ent/patientdocument"
	"github.com/renalbridge/docpipeline/gen/ent/stagingrecord"
)

// StagingRecord is the model entity for the StagingRecord schema.
type StagingRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID string `json:"patient_id,omitempty"`
	// SourceDocumentID holds the value of the "source_document_id" field.
	SourceDocumentID *uuid.UUID `json:"source_document_id,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// FinalDocumentType holds the value of the "final_document_type" field.
	FinalDocumentType *string `json:"final_document_type,omitempty"`
	// StorageBucket holds the value of the "storage_bucket" field.
	StorageBucket string `json:"storage_bucket,omitempty"`
	// StorageKey holds the value of the "storage_key" field.
	StorageKey string `json:"storage_key,omitempty"`
	// ExtractedFields holds the value of the "extracted_fields" field.
	ExtractedFields json.RawMessage `json:"extracted_fields,omitempty"`
	// LabDate holds the value of the "lab_date" field.
	LabDate *time.Time `json:"lab_date,omitempty"`
	// ExtractionError holds the value of the "extraction_error" field.
	ExtractionError *string `json:"extraction_error,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ReviewedBy holds the value of the "reviewed_by" field.
	ReviewedBy *string `json:"reviewed_by,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// AdminNotes holds the value of the "admin_notes" field.
	AdminNotes *string `json:"admin_notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StagingRecordQuery when eager-loading is set.
	Edges        StagingRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StagingRecordEdges holds the relations/edges for other nodes in the graph.
type StagingRecordEdges struct {
	// SourceDocument holds the value of the source_document edge.
	SourceDocument *PatientDocument `json:"source_document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SourceDocumentOrErr returns the SourceDocument value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StagingRecordEdges) SourceDocumentOrErr() (*PatientDocument, error) {
	if e.SourceDocument != nil {
		return e.SourceDocument, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patientdocument.Label}
	}
	return nil, &NotLoadedError{edge: "source_document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StagingRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stagingrecord.FieldSourceDocumentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case stagingrecord.FieldExtractedFields:
			values[i] = new([]byte)
		case stagingrecord.FieldPatientID, stagingrecord.FieldDocumentType, stagingrecord.FieldFinalDocumentType, stagingrecord.FieldStorageBucket, stagingrecord.FieldStorageKey, stagingrecord.FieldExtractionError, stagingrecord.FieldStatus, stagingrecord.FieldReviewedBy, stagingrecord.FieldAdminNotes:
			values[i] = new(sql.NullString)
		case stagingrecord.FieldLabDate, stagingrecord.FieldReviewedAt, stagingrecord.FieldCreatedAt, stagingrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case stagingrecord.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StagingRecord fields.
func (_m *StagingRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stagingrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case stagingrecord.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = value.String
			}
		case stagingrecord.FieldSourceDocumentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field source_document_id", values[i])
			} else if value.Valid {
				_m.SourceDocumentID = new(uuid.UUID)
				*_m.SourceDocumentID = *value.S.(*uuid.UUID)
			}
		case stagingrecord.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case stagingrecord.FieldFinalDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_document_type", values[i])
			} else if value.Valid {
				_m.FinalDocumentType = new(string)
				*_m.FinalDocumentType = value.String
			}
		case stagingrecord.FieldStorageBucket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_bucket", values[i])
			} else if value.Valid {
				_m.StorageBucket = value.String
			}
		case stagingrecord.FieldStorageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_key", values[i])
			} else if value.Valid {
				_m.StorageKey = value.String
			}
		case stagingrecord.FieldExtractedFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedFields); err != nil {
					return fmt.Errorf("unmarshal field extracted_fields: %w", err)
				}
			}
		case stagingrecord.FieldLabDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lab_date", values[i])
			} else if value.Valid {
				_m.LabDate = new(time.Time)
				*_m.LabDate = value.Time
			}
		case stagingrecord.FieldExtractionError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_error", values[i])
			} else if value.Valid {
				_m.ExtractionError = new(string)
				*_m.ExtractionError = value.String
			}
		case stagingrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case stagingrecord.FieldReviewedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_by", values[i])
			} else if value.Valid {
				_m.ReviewedBy = new(string)
				*_m.ReviewedBy = value.String
			}
		case stagingrecord.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		case stagingrecord.FieldAdminNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_notes", values[i])
			} else if value.Valid {
				_m.AdminNotes = new(string)
				*_m.AdminNotes = value.String
			}
		case stagingrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stagingrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StagingRecord.
// This includes values selected through modifiers, order, etc.
func (_m *StagingRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySourceDocument queries the "source_document" edge of the StagingRecord entity.
func (_m *StagingRecord) QuerySourceDocument() *PatientDocumentQuery {
	return NewStagingRecordClient(_m.config).QuerySourceDocument(_m)
}

// Update returns a builder for updating this StagingRecord.
// Note that you need to call StagingRecord.Unwrap() before calling this method if this StagingRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StagingRecord) Update() *StagingRecordUpdateOne {
	return NewStagingRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StagingRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StagingRecord) Unwrap() *StagingRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StagingRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StagingRecord) String() string {
	var builder strings.Builder
	builder.WriteString("StagingRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("patient_id=")
	builder.WriteString(_m.PatientID)
	builder.WriteString(", ")
	if v := _m.SourceDocumentID; v != nil {
		builder.WriteString("source_document_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	if v := _m.FinalDocumentType; v != nil {
		builder.WriteString("final_document_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("storage_bucket=")
	builder.WriteString(_m.StorageBucket)
	builder.WriteString(", ")
	builder.WriteString("storage_key=")
	builder.WriteString(_m.StorageKey)
	builder.WriteString(", ")
	builder.WriteString("extracted_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedFields))
	builder.WriteString(", ")
	if v := _m.LabDate; v != nil {
		builder.WriteString("lab_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExtractionError; v != nil {
		builder.WriteString("extraction_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ReviewedBy; v != nil {
		builder.WriteString("reviewed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AdminNotes; v != nil {
		builder.WriteString("admin_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StagingRecords is a parsable slice of StagingRecord.
type StagingRecords []*StagingRecord
