// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PatientDocumentsColumns holds the columns for the "patient_documents" table.
	PatientDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "storage_bucket", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "content_hash", Type: field.TypeBytes, Nullable: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// PatientDocumentsTable holds the schema information for the "patient_documents" table.
	PatientDocumentsTable = &schema.Table{
		Name:       "patient_documents",
		Columns:    PatientDocumentsColumns,
		PrimaryKey: []*schema.Column{PatientDocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patientdocument_storage_bucket_storage_key",
				Unique:  true,
				Columns: []*schema.Column{PatientDocumentsColumns[3], PatientDocumentsColumns[4]},
			},
			{
				Name:    "patientdocument_patient_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{PatientDocumentsColumns[1], PatientDocumentsColumns[8]},
			},
			{
				Name:    "patientdocument_patient_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{PatientDocumentsColumns[1], PatientDocumentsColumns[9]},
			},
		},
	}
	// DocumentStagingColumns holds the columns for the "document_staging" table.
	DocumentStagingColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "final_document_type", Type: field.TypeString, Nullable: true},
		{Name: "storage_bucket", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "extracted_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "lab_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "extraction_error", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString, Default: "PENDING_REVIEW"},
		{Name: "reviewed_by", Type: field.TypeString, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "admin_notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_document_id", Type: field.TypeUUID, Nullable: true},
	}
	// DocumentStagingTable holds the schema information for the "document_staging" table.
	DocumentStagingTable = &schema.Table{
		Name:       "document_staging",
		Columns:    DocumentStagingColumns,
		PrimaryKey: []*schema.Column{DocumentStagingColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_staging_patient_documents_staging_records",
				Columns:    []*schema.Column{DocumentStagingColumns[15]},
				RefColumns: []*schema.Column{PatientDocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stagingrecord_patient_id_storage_bucket_storage_key",
				Unique:  true,
				Columns: []*schema.Column{DocumentStagingColumns[1], DocumentStagingColumns[4], DocumentStagingColumns[5]},
			},
			{
				Name:    "stagingrecord_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentStagingColumns[9], DocumentStagingColumns[13]},
			},
			{
				Name:    "stagingrecord_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentStagingColumns[1], DocumentStagingColumns[9]},
			},
			{
				Name:    "stagingrecord_source_document_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentStagingColumns[15]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PatientDocumentsTable,
		DocumentStagingTable,
	}
)

func init() {
	PatientDocumentsTable.Annotation = &entsql.Annotation{
		Table: "patient_documents",
	}
	DocumentStagingTable.ForeignKeys[0].RefTable = PatientDocumentsTable
	DocumentStagingTable.Annotation = &entsql.Annotation{
		Table: "document_staging",
	}
}
