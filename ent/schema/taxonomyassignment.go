package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaxonomyAssignment holds the schema definition for the TaxonomyAssignment
// entity. At most one row per message: assigning a new label replaces the
// previous assignment.
type TaxonomyAssignment struct {
	ent.Schema
}

// Fields of the TaxonomyAssignment.
func (TaxonomyAssignment) Fields() []ent.Field {
	return []ent.Field{
		field.String("message_id"),
		field.Int("label_id"),
		field.Time("assigned_at").
			Default(time.Now),
		field.Float("confidence").
			Optional().
			Nillable(),
	}
}

// Edges of the TaxonomyAssignment.
func (TaxonomyAssignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("message", EmailMessage.Type).
			Ref("assignment").
			Field("message_id").
			Unique().
			Required(),
		edge.From("label", TaxonomyLabel.Type).
			Ref("assignments").
			Field("label_id").
			Unique().
			Required(),
	}
}

// Indexes of the TaxonomyAssignment.
func (TaxonomyAssignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id").
			Unique(),
		index.Fields("label_id"),
	}
}
