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

// ArchiveOutbox holds the schema definition for the ArchiveOutbox entity.
// Exactly one row per message ever; replanning resets processed_at/error
// instead of inserting a second row.
type ArchiveOutbox struct {
	ent.Schema
}

// Fields of the ArchiveOutbox.
func (ArchiveOutbox) Fields() []ent.Field {
	return []ent.Field{
		field.String("message_id").
			Unique(),
		field.String("reason"),
		field.Time("planned_for").
			Optional().
			Nillable().
			Comment("internal_date + effective retention, recorded at plan time"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("processed_at").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Nillable(),
	}
}

// Edges of the ArchiveOutbox.
func (ArchiveOutbox) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("message", EmailMessage.Type).
			Ref("archive_push").
			Field("message_id").
			Unique().
			Required(),
	}
}

// Indexes of the ArchiveOutbox.
func (ArchiveOutbox) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("processed_at"),
	}
}

// Annotations of the ArchiveOutbox.
func (ArchiveOutbox) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "archive_push_outbox"},
	}
}
