// Code generated by ent, DO NOT EDIT.

package stagingrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the stagingrecord type in the database.
	Label = "staging_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldSourceDocumentID holds the string denoting the source_document_id field in the database.
	FieldSourceDocumentID = "source_document_id"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldFinalDocumentType holds the string denoting the final_document_type field in the database.
	FieldFinalDocumentType = "final_document_type"
	// FieldStorageBucket holds the string denoting the storage_bucket field in the database.
	FieldStorageBucket = "storage_bucket"
	// FieldStorageKey holds the string denoting the storage_key field in the database.
	FieldStorageKey = "storage_key"
	// FieldExtractedFields holds the string denoting the extracted_fields field in the database.
	FieldExtractedFields = "extracted_fields"
	// FieldLabDate holds the string denoting the lab_date field in the database.
	FieldLabDate = "lab_date"
	// FieldExtractionError holds the string denoting the extraction_error field in the database.
	FieldExtractionError = "extraction_error"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldReviewedBy holds the string denoting the reviewed_by field in the database.
	FieldReviewedBy = "reviewed_by"
	// FieldReviewedAt holds the string denoting the reviewed_at field in the database.
	FieldReviewedAt = "reviewed_at"
	// FieldAdminNotes holds the string denoting the admin_notes field in the database.
	FieldAdminNotes = "admin_notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSourceDocument holds the string denoting the source_document edge name in mutations.
	EdgeSourceDocument = "source_document"
	// Table holds the table name of the stagingrecord in the database.
	Table = "document_staging"
	// SourceDocumentTable is the table that holds the source_document relation/edge.
	SourceDocumentTable = "document_staging"
	// SourceDocumentInverseTable is the table name for the PatientDocument entity.
	// It exists in this package in order to avoid circular dependency with the "patientdocument" package.
	SourceDocumentInverseTable = "patient_documents"
	// SourceDocumentColumn is the table column denoting the source_document relation/edge.
	SourceDocumentColumn = "source_document_id"
)

// Columns holds all SQL columns for stagingrecord fields.
var Columns = []string{
	FieldID,
	FieldPatientID,
	FieldSourceDocumentID,
	FieldDocumentType,
	FieldFinalDocumentType,
	FieldStorageBucket,
	FieldStorageKey,
	FieldExtractedFields,
	FieldLabDate,
	FieldExtractionError,
	FieldStatus,
	FieldReviewedBy,
	FieldReviewedAt,
	FieldAdminNotes,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	PatientIDValidator func(string) error
	// DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	DocumentTypeValidator func(string) error
	// StorageBucketValidator is a validator for the "storage_bucket" field. It is called by the builders before save.
	StorageBucketValidator func(string) error
	// StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	StorageKeyValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the StagingRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// BySourceDocumentID orders the results by the source_document_id field.
func BySourceDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceDocumentID, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByFinalDocumentType orders the results by the final_document_type field.
func ByFinalDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalDocumentType, opts...).ToFunc()
}

// ByStorageBucket orders the results by the storage_bucket field.
func ByStorageBucket(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageBucket, opts...).ToFunc()
}

// ByStorageKey orders the results by the storage_key field.
func ByStorageKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageKey, opts...).ToFunc()
}

// ByLabDate orders the results by the lab_date field.
func ByLabDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabDate, opts...).ToFunc()
}

// ByExtractionError orders the results by the extraction_error field.
func ByExtractionError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionError, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReviewedBy orders the results by the reviewed_by field.
func ByReviewedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedBy, opts...).ToFunc()
}

// ByReviewedAt orders the results by the reviewed_at field.
func ByReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedAt, opts...).ToFunc()
}

// ByAdminNotes orders the results by the admin_notes field.
func ByAdminNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySourceDocumentField orders the results by source_document field.
func BySourceDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourceDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newSourceDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourceDocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SourceDocumentTable, SourceDocumentColumn),
	)
}
