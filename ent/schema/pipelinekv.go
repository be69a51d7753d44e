package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// PipelineKV holds the schema definition for the PipelineKV entity.
// Small key/value table for pipeline state: the ingestion checkpoint,
// the current phase marker, and tunables like the retention default.
type PipelineKV struct {
	ent.Schema
}

// Fields of the PipelineKV.
func (PipelineKV) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("key").
			Unique().
			Immutable(),
		field.Text("value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Annotations of the PipelineKV.
func (PipelineKV) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pipeline_kv"},
	}
}
