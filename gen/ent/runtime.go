// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/renalbridge/docpipeline/db/ent/schema"
	"github.com/renalbridge/docpipeline/gen/ent/patientdocument"
	"github.com/renalbridge/docpipeline/gen/ent/stagingrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	patientdocumentFields := schema.PatientDocument{}.Fields()
	_ = patientdocumentFields
	// patientdocumentDescPatientID is the schema descriptor for patient_id field.
	patientdocumentDescPatientID := patientdocumentFields[1].Descriptor()
	// patientdocument.PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	patientdocument.PatientIDValidator = patientdocumentDescPatientID.Validators[0].(func(string) error)
	// patientdocumentDescDocumentType is the schema descriptor for document_type field.
	patientdocumentDescDocumentType := patientdocumentFields[2].Descriptor()
	// patientdocument.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	patientdocument.DocumentTypeValidator = func() func(string) error {
		validators := patientdocumentDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientdocumentDescStorageBucket is the schema descriptor for storage_bucket field.
	patientdocumentDescStorageBucket := patientdocumentFields[3].Descriptor()
	// patientdocument.StorageBucketValidator is a validator for the "storage_bucket" field. It is called by the builders before save.
	patientdocument.StorageBucketValidator = patientdocumentDescStorageBucket.Validators[0].(func(string) error)
	// patientdocumentDescStorageKey is the schema descriptor for storage_key field.
	patientdocumentDescStorageKey := patientdocumentFields[4].Descriptor()
	// patientdocument.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	patientdocument.StorageKeyValidator = patientdocumentDescStorageKey.Validators[0].(func(string) error)
	// patientdocumentDescFilename is the schema descriptor for filename field.
	patientdocumentDescFilename := patientdocumentFields[5].Descriptor()
	// patientdocument.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	patientdocument.FilenameValidator = patientdocumentDescFilename.Validators[0].(func(string) error)
	// patientdocumentDescContentType is the schema descriptor for content_type field.
	patientdocumentDescContentType := patientdocumentFields[6].Descriptor()
	// patientdocument.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	patientdocument.ContentTypeValidator = patientdocumentDescContentType.Validators[0].(func(string) error)
	// patientdocumentDescFileSize is the schema descriptor for file_size field.
	patientdocumentDescFileSize := patientdocumentFields[7].Descriptor()
	// patientdocument.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	patientdocument.FileSizeValidator = patientdocumentDescFileSize.Validators[0].(func(int64) error)
	// patientdocumentDescUploadedAt is the schema descriptor for uploaded_at field.
	patientdocumentDescUploadedAt := patientdocumentFields[9].Descriptor()
	// patientdocument.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	patientdocument.DefaultUploadedAt = patientdocumentDescUploadedAt.Default.(func() time.Time)
	// patientdocumentDescID is the schema descriptor for id field.
	patientdocumentDescID := patientdocumentFields[0].Descriptor()
	// patientdocument.DefaultID holds the default value on creation for the id field.
	patientdocument.DefaultID = patientdocumentDescID.Default.(func() uuid.UUID)
	stagingrecordFields := schema.StagingRecord{}.Fields()
	_ = stagingrecordFields
	// stagingrecordDescPatientID is the schema descriptor for patient_id field.
	stagingrecordDescPatientID := stagingrecordFields[1].Descriptor()
	// stagingrecord.PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	stagingrecord.PatientIDValidator = stagingrecordDescPatientID.Validators[0].(func(string) error)
	// stagingrecordDescDocumentType is the schema descriptor for document_type field.
	stagingrecordDescDocumentType := stagingrecordFields[3].Descriptor()
	// stagingrecord.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	stagingrecord.DocumentTypeValidator = stagingrecordDescDocumentType.Validators[0].(func(string) error)
	// stagingrecordDescStorageBucket is the schema descriptor for storage_bucket field.
	stagingrecordDescStorageBucket := stagingrecordFields[5].Descriptor()
	// stagingrecord.StorageBucketValidator is a validator for the "storage_bucket" field. It is called by the builders before save.
	stagingrecord.StorageBucketValidator = stagingrecordDescStorageBucket.Validators[0].(func(string) error)
	// stagingrecordDescStorageKey is the schema descriptor for storage_key field.
	stagingrecordDescStorageKey := stagingrecordFields[6].Descriptor()
	// stagingrecord.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	stagingrecord.StorageKeyValidator = stagingrecordDescStorageKey.Validators[0].(func(string) error)
	// stagingrecordDescStatus is the schema descriptor for status field.
	stagingrecordDescStatus := stagingrecordFields[10].Descriptor()
	// stagingrecord.DefaultStatus holds the default value on creation for the status field.
	stagingrecord.DefaultStatus = stagingrecordDescStatus.Default.(string)
	// stagingrecord.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	stagingrecord.StatusValidator = func() func(string) error {
		validators := stagingrecordDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// stagingrecordDescCreatedAt is the schema descriptor for created_at field.
	stagingrecordDescCreatedAt := stagingrecordFields[14].Descriptor()
	// stagingrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagingrecord.DefaultCreatedAt = stagingrecordDescCreatedAt.Default.(func() time.Time)
	// stagingrecordDescUpdatedAt is the schema descriptor for updated_at field.
	stagingrecordDescUpdatedAt := stagingrecordFields[15].Descriptor()
	// stagingrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stagingrecord.DefaultUpdatedAt = stagingrecordDescUpdatedAt.Default.(func() time.Time)
	// stagingrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stagingrecord.UpdateDefaultUpdatedAt = stagingrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stagingrecordDescID is the schema descriptor for id field.
	stagingrecordDescID := stagingrecordFields[0].Descriptor()
	// stagingrecord.DefaultID holds the default value on creation for the id field.
	stagingrecord.DefaultID = stagingrecordDescID.Default.(func() uuid.UUID)
}
