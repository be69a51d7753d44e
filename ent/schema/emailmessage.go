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

// EmailMessage holds the schema definition for the EmailMessage entity.
// One row per provider message; the provider message id is the primary key.
type EmailMessage struct {
	ent.Schema
}

// Fields of the EmailMessage.
func (EmailMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable().
			Comment("Provider message id"),
		field.String("thread_id").
			Optional().
			Nillable(),
		field.Text("subject").
			Optional().
			Nillable(),
		field.Text("subject_normalized").
			Optional().
			Nillable().
			Comment("Lowercased subject with reply/forward prefixes stripped"),
		field.String("from_address").
			Optional().
			Nillable(),
		field.String("from_domain").
			Optional().
			Nillable(),
		field.JSON("to_addresses", []string{}).
			Optional(),
		field.JSON("cc_addresses", []string{}).
			Optional(),
		field.JSON("bcc_addresses", []string{}).
			Optional(),
		field.Bool("is_unread").
			Default(false),
		field.Time("internal_date").
			Optional().
			Nillable().
			Comment("Provider receive time, UTC; drives the ingestion checkpoint"),
		field.JSON("label_ids", []string{}).
			Optional().
			Comment("Provider label ids as last seen (GIN-indexed via migration)"),
		field.String("category").
			Optional().
			Nillable().
			Comment("Tier-1 label; written once, never overwritten"),
		field.String("subcategory").
			Optional().
			Nillable(),
		field.String("label_version").
			Optional().
			Nillable().
			Comment("Labeler version that produced category/subcategory"),
		field.String("cluster_id").
			Optional().
			Nillable(),
		field.Time("archived_at").
			Optional().
			Nillable(),
		field.Time("inbox_removed_at").
			Optional().
			Nillable(),
		field.Enum("lifecycle_state").
			Values("active", "trashed").
			Default("active"),
		field.Time("trashed_at").
			Optional().
			Nillable(),
		field.Time("expiry_at").
			Optional().
			Nillable().
			Comment("When a policy-trashed message leaves its undo window"),
		field.String("trashed_by_policy_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EmailMessage.
func (EmailMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cluster", EmailCluster.Type).
			Ref("messages").
			Field("cluster_id").
			Unique(),
		edge.To("assignment", TaxonomyAssignment.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("label_pushes", LabelOutbox.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("archive_push", ArchiveOutbox.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the EmailMessage.
func (EmailMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("from_domain"),
		index.Fields("internal_date"),
		index.Fields("category"),
		index.Fields("cluster_id"),
		index.Fields("lifecycle_state"),

		// Unlabelled scan: category IS NULL filtered by arrival time
		index.Fields("internal_date").
			StorageKey("emailmessage_unlabelled_internal_date").
			Annotations(entsql.IndexWhere("category IS NULL")),
	}
}

// Annotations of the EmailMessage.
// Note: the GIN index on label_ids is created in pkg/database/migrations.go.
func (EmailMessage) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
