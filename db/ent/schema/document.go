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

	"github.com/google/uuid"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define composite indexes
		field.UUID("filing_id", uuid.UUID{}),
		// position within the filing; processing order is stored order
		field.Int("seq").NonNegative(),
		field.String("document_url").NotEmpty(),
		field.String("filename").Optional().Nillable(),
		field.String("local_path").Optional().Nillable(),
		field.String("download_status").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.StepStatuses...)),
		field.Int64("file_size_bytes").Optional(),
		field.String("content_type").Optional().Nillable(),

		field.String("extraction_status").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.StepStatuses...)),
		field.String("extraction_method").Optional().Nillable().
			Validate(utils.EnumValidator(constants.ExtractionMethods...)),
		field.String("extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("char_count").Optional(),
		field.Int("page_count").Optional(),
		field.String("extraction_error").Optional().Nillable(),

		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE filing
		edge.From("filing", Filing.Type).
			Ref("documents").
			Field("filing_id").
			Required().
			Unique(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("filing_id", "seq").Unique(),
		index.Fields("filing_id", "download_status"),
	}
}
