package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaxonomyLabel holds the schema definition for the TaxonomyLabel entity.
// Two-level taxonomy: level 1 rows are the closed category set, level 2
// rows hang off a level 1 parent and carry a namespaced slug.
type TaxonomyLabel struct {
	ent.Schema
}

// Fields of the TaxonomyLabel.
func (TaxonomyLabel) Fields() []ent.Field {
	return []ent.Field{
		field.Int("level").
			Comment("1 or 2"),
		field.String("slug").
			Unique().
			Comment("Tier-2 slugs are namespaced: <parent-slug>--<child-slug>"),
		field.String("name"),
		field.Text("description").
			Optional().
			Nillable(),
		field.Int("parent_id").
			Optional().
			Nillable(),
		field.Int("retention_days").
			Optional().
			Nillable().
			Comment("NULL means inherit from parent, then system default"),
		field.Bool("is_active").
			Default(true),
		field.String("gmail_label_id").
			Optional().
			Nillable().
			Comment("Provider label id once synced"),
		field.Time("last_sync_at").
			Optional().
			Nillable(),
		field.String("last_sync_status").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaxonomyLabel.
func (TaxonomyLabel) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("children", TaxonomyLabel.Type).
			From("parent").
			Field("parent_id").
			Unique(),
		edge.To("assignments", TaxonomyAssignment.Type),
	}
}

// Indexes of the TaxonomyLabel.
func (TaxonomyLabel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level"),
		index.Fields("parent_id"),
	}
}
