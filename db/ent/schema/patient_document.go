package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/renalbridge/docpipeline/constants"
	"github.com/renalbridge/docpipeline/db/ent/schema/utils"

	"github.com/google/uuid"
)

// PatientDocument mirrors the upload record written by the platform's upload
// endpoint. The pipeline reads it to back-link staging rows; only the
// backfill tool writes it.
type PatientDocument struct {
	ent.Schema
}

func (PatientDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "patient_documents"},
	}
}

func (PatientDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("patient_id").NotEmpty(),
		field.String("document_type").NotEmpty().
			Validate(utils.OneOf(constants.DocumentTypeStrings()...)),
		field.String("storage_bucket").NotEmpty(),
		field.String("storage_key").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.String("content_type").NotEmpty(),
		field.Int64("file_size").NonNegative(),
		field.Bytes("content_hash").Optional().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (PatientDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("staging_records", StagingRecord.Type),
	}
}

func (PatientDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("storage_bucket", "storage_key").Unique(),
		// rows without a hash (legacy uploads) never collide
		index.Fields("patient_id", "content_hash").Unique(),
		index.Fields("patient_id", "uploaded_at"),
	}
}
