// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/renalbridge/docpipeline/gen/ent/patientdocument"
)

// PatientDocument is the model entity for the PatientDocument schema.
type PatientDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID string `json:"patient_id,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// StorageBucket holds the value of the "storage_bucket" field.
	StorageBucket string `json:"storage_bucket,omitempty"`
	// StorageKey holds the value of the "storage_key" field.
	StorageKey string `json:"storage_key,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType string `json:"content_type,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int64 `json:"file_size,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientDocumentQuery when eager-loading is set.
	Edges        PatientDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientDocumentEdges holds the relations/edges for other nodes in the graph.
type PatientDocumentEdges struct {
	// StagingRecords holds the value of the staging_records edge.
	StagingRecords []*StagingRecord `json:"staging_records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StagingRecordsOrErr returns the StagingRecords value or an error if the edge
// was not loaded in eager-loading.
func (e PatientDocumentEdges) StagingRecordsOrErr() ([]*StagingRecord, error) {
	if e.loadedTypes[0] {
		return e.StagingRecords, nil
	}
	return nil, &NotLoadedError{edge: "staging_records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PatientDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patientdocument.FieldContentHash:
			values[i] = new([]byte)
		case patientdocument.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case patientdocument.FieldPatientID, patientdocument.FieldDocumentType, patientdocument.FieldStorageBucket, patientdocument.FieldStorageKey, patientdocument.FieldFilename, patientdocument.FieldContentType:
			values[i] = new(sql.NullString)
		case patientdocument.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case patientdocument.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PatientDocument fields.
func (_m *PatientDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patientdocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patientdocument.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = value.String
			}
		case patientdocument.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case patientdocument.FieldStorageBucket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_bucket", values[i])
			} else if value.Valid {
				_m.StorageBucket = value.String
			}
		case patientdocument.FieldStorageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_key", values[i])
			} else if value.Valid {
				_m.StorageKey = value.String
			}
		case patientdocument.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case patientdocument.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				_m.ContentType = value.String
			}
		case patientdocument.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = value.Int64
			}
		case patientdocument.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case patientdocument.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PatientDocument.
// This includes values selected through modifiers, order, etc.
func (_m *PatientDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStagingRecords queries the "staging_records" edge of the PatientDocument entity.
func (_m *PatientDocument) QueryStagingRecords() *StagingRecordQuery {
	return NewPatientDocumentClient(_m.config).QueryStagingRecords(_m)
}

// Update returns a builder for updating this PatientDocument.
// Note that you need to call PatientDocument.Unwrap() before calling this method if this PatientDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PatientDocument) Update() *PatientDocumentUpdateOne {
	return NewPatientDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PatientDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PatientDocument) Unwrap() *PatientDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PatientDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PatientDocument) String() string {
	var builder strings.Builder
	builder.WriteString("PatientDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("patient_id=")
	builder.WriteString(_m.PatientID)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	builder.WriteString("storage_bucket=")
	builder.WriteString(_m.StorageBucket)
	builder.WriteString(", ")
	builder.WriteString("storage_key=")
	builder.WriteString(_m.StorageKey)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(_m.ContentType)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PatientDocuments is a parsable slice of PatientDocument.
type PatientDocuments []*PatientDocument
