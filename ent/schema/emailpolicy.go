package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// EmailPolicy holds the schema definition for the EmailPolicy entity.
// A user-defined hygiene rule: AND-ed deterministic conditions over
// stored message metadata with a move-to-trash action. The definition
// document is versioned JSON so conditions can grow without migrations.
type EmailPolicy struct {
	ent.Schema
}

// Fields of the EmailPolicy.
func (EmailPolicy) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID, assigned at create"),
		field.String("name"),
		field.Bool("enabled").
			Default(true),
		field.Enum("trigger_type").
			Values("scheduled", "on_ingest").
			Default("scheduled"),
		field.Enum("cadence").
			Values("daily", "weekly", "monthly").
			Default("weekly"),
		field.JSON("definition", json.RawMessage{}).
			Comment("Versioned conditions/action document"),
		field.Time("last_applied_at").
			Optional().
			Nillable().
			Comment("Gates cadence-driven runs"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
