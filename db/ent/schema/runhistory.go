package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// RunHistory is an audit row per pipeline invocation.
type RunHistory struct{ ent.Schema }

func (RunHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "run_history"},
	}
}

func (RunHistory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.Time("started_at").Default(time.Now).Immutable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Int("total_filings_found").Default(0),
		field.Int("new_filings").Default(0),
		field.Int("processed_ok").Default(0),
		field.Int("processed_failed").Default(0),
		field.Float("duration_seconds").Optional(),
	}
}
