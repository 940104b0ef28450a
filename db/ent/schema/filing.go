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

	"github.com/google/uuid"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/db/ent/schema/utils"
)

type Filing struct{ ent.Schema }

func (Filing) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "filings"},
	}
}

func (Filing) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// REGDOCS identifier, not the database PK.
		field.String("external_id").NotEmpty().Unique(),
		field.Time("date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("applicant").Optional().Nillable(),
		field.String("filing_type").Optional().Nillable(),
		field.String("proceeding_number").Optional().Nillable(),
		field.String("title").Optional().Nillable(),
		field.String("url").Optional().Nillable(),

		// Per-stage status tracking, one column per pipeline stage.
		field.String("status_scraped").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.StepStatuses...)),
		field.String("status_downloaded").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.StepStatuses...)),
		field.String("status_extracted").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.StepStatuses...)),
		field.String("status_analyzed").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.StepStatuses...)),
		field.String("status_notified").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.StepStatuses...)),

		// Failure bookkeeping. retry_count never decreases.
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("retry_count").Default(0).NonNegative(),

		field.JSON("analysis_json", json.RawMessage{}).Optional(),

		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Filing) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE filing -> MANY documents; documents die with their filing.
		edge.To("documents", Document.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Filing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("external_id").Unique(),
		index.Fields("proceeding_number"),
		index.Fields("status_downloaded", "retry_count"),
		index.Fields("status_extracted", "retry_count"),
		index.Fields("status_analyzed", "retry_count"),
	}
}
