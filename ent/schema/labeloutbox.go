package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LabelOutbox holds the schema definition for the LabelOutbox entity.
// One pending row per message at a time; the partial unique index that
// enforces this lives in pkg/database/migrations.go.
type LabelOutbox struct {
	ent.Schema
}

// Fields of the LabelOutbox.
func (LabelOutbox) Fields() []ent.Field {
	return []ent.Field{
		field.String("message_id"),
		field.String("reason").
			Comment("What enqueued the push, e.g. 'assignment' or 'relabel'"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("processed_at").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Nillable(),
	}
}

// Edges of the LabelOutbox.
func (LabelOutbox) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("message", EmailMessage.Type).
			Ref("label_pushes").
			Field("message_id").
			Unique().
			Required(),
	}
}

// Indexes of the LabelOutbox.
func (LabelOutbox) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("processed_at"),
	}
}

// Annotations of the LabelOutbox.
func (LabelOutbox) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "label_push_outbox"},
	}
}
