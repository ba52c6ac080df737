package schema

import (
	"encoding/json"
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

type StagingRecord struct{ ent.Schema }

func (StagingRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_staging"},
	}
}

func (StagingRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// patient_id is the platform identifier carried on the upload; this
		// service treats it as opaque and asserts no FK over it.
		field.String("patient_id").NotEmpty(),
		// explicit FK so the back-reference can stay null when lookup fails
		field.UUID("source_document_id", uuid.UUID{}).Optional().Nillable(),
		field.String("document_type").NotEmpty(),
		field.String("final_document_type").Optional().Nillable(),
		field.String("storage_bucket").NotEmpty(),
		field.String("storage_key").NotEmpty(),
		// NULL when extraction was skipped or failed; otherwise a map with
		// every configured field key, unresolved keys explicitly null.
		field.JSON("extracted_fields", json.RawMessage{}).
			Optional(),
		field.Time("lab_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("extraction_error").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").NotEmpty().
			Default(string(constants.StatusPendingReview)).
			Validate(utils.OneOf(constants.ReviewStatusStrings()...)),
		field.String("reviewed_by").Optional().Nillable(),
		field.Time("reviewed_at").Optional().Nillable(),
		field.String("admin_notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (StagingRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source_document", PatientDocument.Type).
			Ref("staging_records").
			Field("source_document_id").
			Unique(),
	}
}

func (StagingRecord) Indexes() []ent.Index {
	return []ent.Index{
		// one staging row per upload, even under event redelivery
		index.Fields("patient_id", "storage_bucket", "storage_key").Unique(),
		index.Fields("status", "created_at"),
		index.Fields("patient_id", "status"),
		index.Fields("source_document_id"),
	}
}
