// Code generated by ent, DO NOT EDIT.

package patientdocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/renalbridge/docpipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldID, id))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldPatientID, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldDocumentType, v))
}

// StorageBucket applies equality check predicate on the "storage_bucket" field. It's identical to StorageBucketEQ.
func StorageBucket(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldStorageBucket, v))
}

// StorageKey applies equality check predicate on the "storage_key" field. It's identical to StorageKeyEQ.
func StorageKey(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldStorageKey, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldFilename, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldContentType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldFileSize, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldContentHash, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContainsFold(FieldPatientID, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContainsFold(FieldDocumentType, v))
}

// StorageBucketEQ applies the EQ predicate on the "storage_bucket" field.
func StorageBucketEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldStorageBucket, v))
}

// StorageBucketNEQ applies the NEQ predicate on the "storage_bucket" field.
func StorageBucketNEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldStorageBucket, v))
}

// StorageBucketIn applies the In predicate on the "storage_bucket" field.
func StorageBucketIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldStorageBucket, vs...))
}

// StorageBucketNotIn applies the NotIn predicate on the "storage_bucket" field.
func StorageBucketNotIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldStorageBucket, vs...))
}

// StorageBucketGT applies the GT predicate on the "storage_bucket" field.
func StorageBucketGT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldStorageBucket, v))
}

// StorageBucketGTE applies the GTE predicate on the "storage_bucket" field.
func StorageBucketGTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldStorageBucket, v))
}

// StorageBucketLT applies the LT predicate on the "storage_bucket" field.
func StorageBucketLT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldStorageBucket, v))
}

// StorageBucketLTE applies the LTE predicate on the "storage_bucket" field.
func StorageBucketLTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldStorageBucket, v))
}

// StorageBucketContains applies the Contains predicate on the "storage_bucket" field.
func StorageBucketContains(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContains(FieldStorageBucket, v))
}

// StorageBucketHasPrefix applies the HasPrefix predicate on the "storage_bucket" field.
func StorageBucketHasPrefix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasPrefix(FieldStorageBucket, v))
}

// StorageBucketHasSuffix applies the HasSuffix predicate on the "storage_bucket" field.
func StorageBucketHasSuffix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasSuffix(FieldStorageBucket, v))
}

// StorageBucketEqualFold applies the EqualFold predicate on the "storage_bucket" field.
func StorageBucketEqualFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEqualFold(FieldStorageBucket, v))
}

// StorageBucketContainsFold applies the ContainsFold predicate on the "storage_bucket" field.
func StorageBucketContainsFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContainsFold(FieldStorageBucket, v))
}

// StorageKeyEQ applies the EQ predicate on the "storage_key" field.
func StorageKeyEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldStorageKey, v))
}

// StorageKeyNEQ applies the NEQ predicate on the "storage_key" field.
func StorageKeyNEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldStorageKey, v))
}

// StorageKeyIn applies the In predicate on the "storage_key" field.
func StorageKeyIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldStorageKey, vs...))
}

// StorageKeyNotIn applies the NotIn predicate on the "storage_key" field.
func StorageKeyNotIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldStorageKey, vs...))
}

// StorageKeyGT applies the GT predicate on the "storage_key" field.
func StorageKeyGT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldStorageKey, v))
}

// StorageKeyGTE applies the GTE predicate on the "storage_key" field.
func StorageKeyGTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldStorageKey, v))
}

// StorageKeyLT applies the LT predicate on the "storage_key" field.
func StorageKeyLT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldStorageKey, v))
}

// StorageKeyLTE applies the LTE predicate on the "storage_key" field.
func StorageKeyLTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldStorageKey, v))
}

// StorageKeyContains applies the Contains predicate on the "storage_key" field.
func StorageKeyContains(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContains(FieldStorageKey, v))
}

// StorageKeyHasPrefix applies the HasPrefix predicate on the "storage_key" field.
func StorageKeyHasPrefix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasPrefix(FieldStorageKey, v))
}

// StorageKeyHasSuffix applies the HasSuffix predicate on the "storage_key" field.
func StorageKeyHasSuffix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasSuffix(FieldStorageKey, v))
}

// StorageKeyEqualFold applies the EqualFold predicate on the "storage_key" field.
func StorageKeyEqualFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEqualFold(FieldStorageKey, v))
}

// StorageKeyContainsFold applies the ContainsFold predicate on the "storage_key" field.
func StorageKeyContainsFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContainsFold(FieldStorageKey, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContainsFold(FieldFilename, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContainsFold(FieldContentType, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldFileSize, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotNull(FieldContentHash))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldUploadedAt, v))
}

// HasStagingRecords applies the HasEdge predicate on the "staging_records" edge.
func HasStagingRecords() predicate.PatientDocument {
	return predicate.PatientDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StagingRecordsTable, StagingRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStagingRecordsWith applies the HasEdge predicate on the "staging_records" edge with a given conditions (other predicates).
func HasStagingRecordsWith(preds ...predicate.StagingRecord) predicate.PatientDocument {
	return predicate.PatientDocument(func(s *sql.Selector) {
		step := newStagingRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PatientDocument) predicate.PatientDocument {
	return predicate.PatientDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PatientDocument) predicate.PatientDocument {
	return predicate.PatientDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PatientDocument) predicate.PatientDocument {
	return predicate.PatientDocument(sql.NotPredicates(p))
}
