// Code generated by ent, DO NOT EDIT.

package stagingrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/renalbridge/docpipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldID, id))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldPatientID, v))
}

// SourceDocumentID applies equality check predicate on the "source_document_id" field. It's identical to SourceDocumentIDEQ.
func SourceDocumentID(v uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldSourceDocumentID, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldDocumentType, v))
}

// FinalDocumentType applies equality check predicate on the "final_document_type" field. It's identical to FinalDocumentTypeEQ.
func FinalDocumentType(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldFinalDocumentType, v))
}

// StorageBucket applies equality check predicate on the "storage_bucket" field. It's identical to StorageBucketEQ.
func StorageBucket(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldStorageBucket, v))
}

// StorageKey applies equality check predicate on the "storage_key" field. It's identical to StorageKeyEQ.
func StorageKey(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldStorageKey, v))
}

// LabDate applies equality check predicate on the "lab_date" field. It's identical to LabDateEQ.
func LabDate(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldLabDate, v))
}

// ExtractionError applies equality check predicate on the "extraction_error" field. It's identical to ExtractionErrorEQ.
func ExtractionError(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldExtractionError, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldStatus, v))
}

// ReviewedBy applies equality check predicate on the "reviewed_by" field. It's identical to ReviewedByEQ.
func ReviewedBy(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldReviewedAt, v))
}

// AdminNotes applies equality check predicate on the "admin_notes" field. It's identical to AdminNotesEQ.
func AdminNotes(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldAdminNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldPatientID, v))
}

// SourceDocumentIDEQ applies the EQ predicate on the "source_document_id" field.
func SourceDocumentIDEQ(v uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldSourceDocumentID, v))
}

// SourceDocumentIDNEQ applies the NEQ predicate on the "source_document_id" field.
func SourceDocumentIDNEQ(v uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldSourceDocumentID, v))
}

// SourceDocumentIDIn applies the In predicate on the "source_document_id" field.
func SourceDocumentIDIn(vs ...uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldSourceDocumentID, vs...))
}

// SourceDocumentIDNotIn applies the NotIn predicate on the "source_document_id" field.
func SourceDocumentIDNotIn(vs ...uuid.UUID) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldSourceDocumentID, vs...))
}

// SourceDocumentIDIsNil applies the IsNil predicate on the "source_document_id" field.
func SourceDocumentIDIsNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIsNull(FieldSourceDocumentID))
}

// SourceDocumentIDNotNil applies the NotNil predicate on the "source_document_id" field.
func SourceDocumentIDNotNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotNull(FieldSourceDocumentID))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldDocumentType, v))
}

// FinalDocumentTypeEQ applies the EQ predicate on the "final_document_type" field.
func FinalDocumentTypeEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldFinalDocumentType, v))
}

// FinalDocumentTypeNEQ applies the NEQ predicate on the "final_document_type" field.
func FinalDocumentTypeNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldFinalDocumentType, v))
}

// FinalDocumentTypeIn applies the In predicate on the "final_document_type" field.
func FinalDocumentTypeIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldFinalDocumentType, vs...))
}

// FinalDocumentTypeNotIn applies the NotIn predicate on the "final_document_type" field.
func FinalDocumentTypeNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldFinalDocumentType, vs...))
}

// FinalDocumentTypeGT applies the GT predicate on the "final_document_type" field.
func FinalDocumentTypeGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldFinalDocumentType, v))
}

// FinalDocumentTypeGTE applies the GTE predicate on the "final_document_type" field.
func FinalDocumentTypeGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldFinalDocumentType, v))
}

// FinalDocumentTypeLT applies the LT predicate on the "final_document_type" field.
func FinalDocumentTypeLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldFinalDocumentType, v))
}

// FinalDocumentTypeLTE applies the LTE predicate on the "final_document_type" field.
func FinalDocumentTypeLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldFinalDocumentType, v))
}

// FinalDocumentTypeContains applies the Contains predicate on the "final_document_type" field.
func FinalDocumentTypeContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldFinalDocumentType, v))
}

// FinalDocumentTypeHasPrefix applies the HasPrefix predicate on the "final_document_type" field.
func FinalDocumentTypeHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldFinalDocumentType, v))
}

// FinalDocumentTypeHasSuffix applies the HasSuffix predicate on the "final_document_type" field.
func FinalDocumentTypeHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldFinalDocumentType, v))
}

// FinalDocumentTypeIsNil applies the IsNil predicate on the "final_document_type" field.
func FinalDocumentTypeIsNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIsNull(FieldFinalDocumentType))
}

// FinalDocumentTypeNotNil applies the NotNil predicate on the "final_document_type" field.
func FinalDocumentTypeNotNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotNull(FieldFinalDocumentType))
}

// FinalDocumentTypeEqualFold applies the EqualFold predicate on the "final_document_type" field.
func FinalDocumentTypeEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldFinalDocumentType, v))
}

// FinalDocumentTypeContainsFold applies the ContainsFold predicate on the "final_document_type" field.
func FinalDocumentTypeContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldFinalDocumentType, v))
}

// StorageBucketEQ applies the EQ predicate on the "storage_bucket" field.
func StorageBucketEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldStorageBucket, v))
}

// StorageBucketNEQ applies the NEQ predicate on the "storage_bucket" field.
func StorageBucketNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldStorageBucket, v))
}

// StorageBucketIn applies the In predicate on the "storage_bucket" field.
func StorageBucketIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldStorageBucket, vs...))
}

// StorageBucketNotIn applies the NotIn predicate on the "storage_bucket" field.
func StorageBucketNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldStorageBucket, vs...))
}

// StorageBucketGT applies the GT predicate on the "storage_bucket" field.
func StorageBucketGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldStorageBucket, v))
}

// StorageBucketGTE applies the GTE predicate on the "storage_bucket" field.
func StorageBucketGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldStorageBucket, v))
}

// StorageBucketLT applies the LT predicate on the "storage_bucket" field.
func StorageBucketLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldStorageBucket, v))
}

// StorageBucketLTE applies the LTE predicate on the "storage_bucket" field.
func StorageBucketLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldStorageBucket, v))
}

// StorageBucketContains applies the Contains predicate on the "storage_bucket" field.
func StorageBucketContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldStorageBucket, v))
}

// StorageBucketHasPrefix applies the HasPrefix predicate on the "storage_bucket" field.
func StorageBucketHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldStorageBucket, v))
}

// StorageBucketHasSuffix applies the HasSuffix predicate on the "storage_bucket" field.
func StorageBucketHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldStorageBucket, v))
}

// StorageBucketEqualFold applies the EqualFold predicate on the "storage_bucket" field.
func StorageBucketEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldStorageBucket, v))
}

// StorageBucketContainsFold applies the ContainsFold predicate on the "storage_bucket" field.
func StorageBucketContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldStorageBucket, v))
}

// StorageKeyEQ applies the EQ predicate on the "storage_key" field.
func StorageKeyEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldStorageKey, v))
}

// StorageKeyNEQ applies the NEQ predicate on the "storage_key" field.
func StorageKeyNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldStorageKey, v))
}

// StorageKeyIn applies the In predicate on the "storage_key" field.
func StorageKeyIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldStorageKey, vs...))
}

// StorageKeyNotIn applies the NotIn predicate on the "storage_key" field.
func StorageKeyNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldStorageKey, vs...))
}

// StorageKeyGT applies the GT predicate on the "storage_key" field.
func StorageKeyGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldStorageKey, v))
}

// StorageKeyGTE applies the GTE predicate on the "storage_key" field.
func StorageKeyGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldStorageKey, v))
}

// StorageKeyLT applies the LT predicate on the "storage_key" field.
func StorageKeyLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldStorageKey, v))
}

// StorageKeyLTE applies the LTE predicate on the "storage_key" field.
func StorageKeyLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldStorageKey, v))
}

// StorageKeyContains applies the Contains predicate on the "storage_key" field.
func StorageKeyContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldStorageKey, v))
}

// StorageKeyHasPrefix applies the HasPrefix predicate on the "storage_key" field.
func StorageKeyHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldStorageKey, v))
}

// StorageKeyHasSuffix applies the HasSuffix predicate on the "storage_key" field.
func StorageKeyHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldStorageKey, v))
}

// StorageKeyEqualFold applies the EqualFold predicate on the "storage_key" field.
func StorageKeyEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldStorageKey, v))
}

// StorageKeyContainsFold applies the ContainsFold predicate on the "storage_key" field.
func StorageKeyContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldStorageKey, v))
}

// ExtractedFieldsIsNil applies the IsNil predicate on the "extracted_fields" field.
func ExtractedFieldsIsNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIsNull(FieldExtractedFields))
}

// ExtractedFieldsNotNil applies the NotNil predicate on the "extracted_fields" field.
func ExtractedFieldsNotNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotNull(FieldExtractedFields))
}

// LabDateEQ applies the EQ predicate on the "lab_date" field.
func LabDateEQ(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldLabDate, v))
}

// LabDateNEQ applies the NEQ predicate on the "lab_date" field.
func LabDateNEQ(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldLabDate, v))
}

// LabDateIn applies the In predicate on the "lab_date" field.
func LabDateIn(vs ...time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldLabDate, vs...))
}

// LabDateNotIn applies the NotIn predicate on the "lab_date" field.
func LabDateNotIn(vs ...time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldLabDate, vs...))
}

// LabDateGT applies the GT predicate on the "lab_date" field.
func LabDateGT(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldLabDate, v))
}

// LabDateGTE applies the GTE predicate on the "lab_date" field.
func LabDateGTE(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldLabDate, v))
}

// LabDateLT applies the LT predicate on the "lab_date" field.
func LabDateLT(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldLabDate, v))
}

// LabDateLTE applies the LTE predicate on the "lab_date" field.
func LabDateLTE(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldLabDate, v))
}

// LabDateIsNil applies the IsNil predicate on the "lab_date" field.
func LabDateIsNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIsNull(FieldLabDate))
}

// LabDateNotNil applies the NotNil predicate on the "lab_date" field.
func LabDateNotNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotNull(FieldLabDate))
}

// ExtractionErrorEQ applies the EQ predicate on the "extraction_error" field.
func ExtractionErrorEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldExtractionError, v))
}

// ExtractionErrorNEQ applies the NEQ predicate on the "extraction_error" field.
func ExtractionErrorNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldExtractionError, v))
}

// ExtractionErrorIn applies the In predicate on the "extraction_error" field.
func ExtractionErrorIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldExtractionError, vs...))
}

// ExtractionErrorNotIn applies the NotIn predicate on the "extraction_error" field.
func ExtractionErrorNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldExtractionError, vs...))
}

// ExtractionErrorGT applies the GT predicate on the "extraction_error" field.
func ExtractionErrorGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldExtractionError, v))
}

// ExtractionErrorGTE applies the GTE predicate on the "extraction_error" field.
func ExtractionErrorGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldExtractionError, v))
}

// ExtractionErrorLT applies the LT predicate on the "extraction_error" field.
func ExtractionErrorLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldExtractionError, v))
}

// ExtractionErrorLTE applies the LTE predicate on the "extraction_error" field.
func ExtractionErrorLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldExtractionError, v))
}

// ExtractionErrorContains applies the Contains predicate on the "extraction_error" field.
func ExtractionErrorContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldExtractionError, v))
}

// ExtractionErrorHasPrefix applies the HasPrefix predicate on the "extraction_error" field.
func ExtractionErrorHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldExtractionError, v))
}

// ExtractionErrorHasSuffix applies the HasSuffix predicate on the "extraction_error" field.
func ExtractionErrorHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldExtractionError, v))
}

// ExtractionErrorIsNil applies the IsNil predicate on the "extraction_error" field.
func ExtractionErrorIsNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIsNull(FieldExtractionError))
}

// ExtractionErrorNotNil applies the NotNil predicate on the "extraction_error" field.
func ExtractionErrorNotNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotNull(FieldExtractionError))
}

// ExtractionErrorEqualFold applies the EqualFold predicate on the "extraction_error" field.
func ExtractionErrorEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldExtractionError, v))
}

// ExtractionErrorContainsFold applies the ContainsFold predicate on the "extraction_error" field.
func ExtractionErrorContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldExtractionError, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldStatus, v))
}

// ReviewedByEQ applies the EQ predicate on the "reviewed_by" field.
func ReviewedByEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedByNEQ applies the NEQ predicate on the "reviewed_by" field.
func ReviewedByNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldReviewedBy, v))
}

// ReviewedByIn applies the In predicate on the "reviewed_by" field.
func ReviewedByIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldReviewedBy, vs...))
}

// ReviewedByNotIn applies the NotIn predicate on the "reviewed_by" field.
func ReviewedByNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldReviewedBy, vs...))
}

// ReviewedByGT applies the GT predicate on the "reviewed_by" field.
func ReviewedByGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldReviewedBy, v))
}

// ReviewedByGTE applies the GTE predicate on the "reviewed_by" field.
func ReviewedByGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldReviewedBy, v))
}

// ReviewedByLT applies the LT predicate on the "reviewed_by" field.
func ReviewedByLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldReviewedBy, v))
}

// ReviewedByLTE applies the LTE predicate on the "reviewed_by" field.
func ReviewedByLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldReviewedBy, v))
}

// ReviewedByContains applies the Contains predicate on the "reviewed_by" field.
func ReviewedByContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldReviewedBy, v))
}

// ReviewedByHasPrefix applies the HasPrefix predicate on the "reviewed_by" field.
func ReviewedByHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldReviewedBy, v))
}

// ReviewedByHasSuffix applies the HasSuffix predicate on the "reviewed_by" field.
func ReviewedByHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldReviewedBy, v))
}

// ReviewedByIsNil applies the IsNil predicate on the "reviewed_by" field.
func ReviewedByIsNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIsNull(FieldReviewedBy))
}

// ReviewedByNotNil applies the NotNil predicate on the "reviewed_by" field.
func ReviewedByNotNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotNull(FieldReviewedBy))
}

// ReviewedByEqualFold applies the EqualFold predicate on the "reviewed_by" field.
func ReviewedByEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldReviewedBy, v))
}

// ReviewedByContainsFold applies the ContainsFold predicate on the "reviewed_by" field.
func ReviewedByContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldReviewedBy, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotNull(FieldReviewedAt))
}

// AdminNotesEQ applies the EQ predicate on the "admin_notes" field.
func AdminNotesEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldAdminNotes, v))
}

// AdminNotesNEQ applies the NEQ predicate on the "admin_notes" field.
func AdminNotesNEQ(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldAdminNotes, v))
}

// AdminNotesIn applies the In predicate on the "admin_notes" field.
func AdminNotesIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldAdminNotes, vs...))
}

// AdminNotesNotIn applies the NotIn predicate on the "admin_notes" field.
func AdminNotesNotIn(vs ...string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldAdminNotes, vs...))
}

// AdminNotesGT applies the GT predicate on the "admin_notes" field.
func AdminNotesGT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldAdminNotes, v))
}

// AdminNotesGTE applies the GTE predicate on the "admin_notes" field.
func AdminNotesGTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldAdminNotes, v))
}

// AdminNotesLT applies the LT predicate on the "admin_notes" field.
func AdminNotesLT(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldAdminNotes, v))
}

// AdminNotesLTE applies the LTE predicate on the "admin_notes" field.
func AdminNotesLTE(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldAdminNotes, v))
}

// AdminNotesContains applies the Contains predicate on the "admin_notes" field.
func AdminNotesContains(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContains(FieldAdminNotes, v))
}

// AdminNotesHasPrefix applies the HasPrefix predicate on the "admin_notes" field.
func AdminNotesHasPrefix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasPrefix(FieldAdminNotes, v))
}

// AdminNotesHasSuffix applies the HasSuffix predicate on the "admin_notes" field.
func AdminNotesHasSuffix(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldHasSuffix(FieldAdminNotes, v))
}

// AdminNotesIsNil applies the IsNil predicate on the "admin_notes" field.
func AdminNotesIsNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIsNull(FieldAdminNotes))
}

// AdminNotesNotNil applies the NotNil predicate on the "admin_notes" field.
func AdminNotesNotNil() predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotNull(FieldAdminNotes))
}

// AdminNotesEqualFold applies the EqualFold predicate on the "admin_notes" field.
func AdminNotesEqualFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEqualFold(FieldAdminNotes, v))
}

// AdminNotesContainsFold applies the ContainsFold predicate on the "admin_notes" field.
func AdminNotesContainsFold(v string) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldContainsFold(FieldAdminNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StagingRecord {
	return predicate.StagingRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSourceDocument applies the HasEdge predicate on the "source_document" edge.
func HasSourceDocument() predicate.StagingRecord {
	return predicate.StagingRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SourceDocumentTable, SourceDocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceDocumentWith applies the HasEdge predicate on the "source_document" edge with a given conditions (other predicates).
func HasSourceDocumentWith(preds ...predicate.PatientDocument) predicate.StagingRecord {
	return predicate.StagingRecord(func(s *sql.Selector) {
		step := newSourceDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StagingRecord) predicate.StagingRecord {
	return predicate.StagingRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StagingRecord) predicate.StagingRecord {
	return predicate.StagingRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StagingRecord) predicate.StagingRecord {
	return predicate.StagingRecord(sql.NotPredicates(p))
}
