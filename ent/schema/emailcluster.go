package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EmailCluster holds the schema definition for the EmailCluster entity.
// A cluster groups similar messages around a seed message; its id is a
// name-based UUID derived from (seed, threshold, labeler version) so the
// same inputs always produce the same cluster.
type EmailCluster struct {
	ent.Schema
}

// Fields of the EmailCluster.
func (EmailCluster) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cluster_id").
			Unique().
			Immutable(),
		field.String("seed_message_id").
			Unique().
			Immutable(),
		field.String("from_domain").
			Optional().
			Nillable(),
		field.Text("subject_normalized").
			Optional().
			Nillable().
			Comment("Normalized subject of the seed message"),
		field.Float("similarity_threshold"),
		field.String("display_name").
			Optional().
			Nillable(),
		field.String("frequency_label").
			Optional().
			Nillable().
			Comment("daily/weekly/monthly/quarterly/rare"),
		field.String("unread_label").
			Optional().
			Nillable(),
		field.String("category").
			Optional().
			Nillable(),
		field.String("subcategory").
			Optional().
			Nillable(),
		field.String("label_version").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EmailCluster.
func (EmailCluster) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", EmailMessage.Type),
	}
}

// Indexes of the EmailCluster.
func (EmailCluster) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("from_domain"),
		index.Fields("category"),
	}
}
