package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"
)

// PaymentRecord holds the schema definition for the PaymentRecord entity.
// One row per extracted message, keyed by the source message id. The FK to
// email_messages (ON DELETE CASCADE) is declared in the migration SQL.
type PaymentRecord struct {
	ent.Schema
}

// Fields of the PaymentRecord.
func (PaymentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("queued", "succeeded", "no_payment", "failed").
			Default("queued"),
		field.String("error").
			Optional().
			Nillable(),
		field.String("item_name").
			Optional().
			Nillable(),
		field.String("vendor_name").
			Optional().
			Nillable(),
		field.String("item_category").
			Optional().
			Nillable().
			Comment("Food/Entertainment/Technology/Lifestyle/Domestic Bills/Other"),
		field.Float("cost_amount").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
			}).
			Optional().
			Nillable(),
		field.String("cost_currency").
			Optional().
			Nillable().
			Comment("ISO 4217 code, e.g. GBP"),
		field.Bool("is_recurring").
			Optional().
			Nillable(),
		field.String("frequency").
			Optional().
			Nillable().
			Comment("daily/weekly/biweekly/monthly/quarterly/yearly"),
		field.Time("payment_date").
			Optional().
			Nillable(),
		field.String("payment_fingerprint").
			Optional().
			Nillable().
			Comment("vendor|amount|currency|date, for cross-message dedup"),
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
			Nillable(),
		field.Time("extracted_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the PaymentRecord.
func (PaymentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("payment_fingerprint"),
		index.Fields("payment_date"),
	}
}

// Annotations of the PaymentRecord.
func (PaymentRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "message_payment_metadata"},
	}
}
