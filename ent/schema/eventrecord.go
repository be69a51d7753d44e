package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventRecord holds the schema definition for the EventRecord entity.
// One row per extracted message; the id is the source message id, so
// re-extraction updates in place. The FK to email_messages (ON DELETE
// CASCADE) and the event_type CHECK constraint are declared in the
// migration SQL.
type EventRecord struct {
	ent.Schema
}

// Fields of the EventRecord.
func (EventRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("queued", "succeeded", "no_event", "failed").
			Default("queued"),
		field.String("error").
			Optional().
			Nillable(),
		field.String("event_name").
			Optional().
			Nillable(),
		field.String("event_type").
			Optional().
			Nillable().
			Comment("Theatre/Comedy/Opera/Ballet/Cinema/Social/Other"),
		field.Time("event_date").
			Optional().
			Nillable().
			Comment("Date only, midnight UTC"),
		field.String("start_time").
			Optional().
			Nillable().
			Comment("HH:MM or HH:MM:SS, local to timezone"),
		field.String("end_time").
			Optional().
			Nillable(),
		field.String("timezone").
			Optional().
			Nillable(),
		field.Bool("end_time_inferred").
			Default(false),
		field.Float("confidence").
			Optional().
			Nillable(),
		field.String("model").
			Optional().
			Nillable(),
		field.String("prompt_version").
			Optional().
			Nillable(),
		field.Text("raw_json").
			Optional().
			Nillable().
			Comment("Model output as returned, for audit"),
		field.String("calendar_event_id").
			Optional().
			Nillable(),
		field.String("calendar_ical_uid").
			Optional().
			Nillable(),
		field.Time("calendar_checked_at").
			Optional().
			Nillable(),
		field.Time("published_at").
			Optional().
			Nillable(),
		field.Time("hidden_at").
			Optional().
			Nillable(),
		field.Time("extracted_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the EventRecord.
func (EventRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("event_date"),
	}
}

// Annotations of the EventRecord.
func (EventRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "message_event_metadata"},
	}
}
