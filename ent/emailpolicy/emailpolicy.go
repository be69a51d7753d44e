// Code generated by ent, DO NOT EDIT.

package emailpolicy

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the emailpolicy type in the database.
	Label = "email_policy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldTriggerType holds the string denoting the trigger_type field in the database.
	FieldTriggerType = "trigger_type"
	// FieldCadence holds the string denoting the cadence field in the database.
	FieldCadence = "cadence"
	// FieldDefinition holds the string denoting the definition field in the database.
	FieldDefinition = "definition"
	// FieldLastAppliedAt holds the string denoting the last_applied_at field in the database.
	FieldLastAppliedAt = "last_applied_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the emailpolicy in the database.
	Table = "email_policies"
)

// Columns holds all SQL columns for emailpolicy fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEnabled,
	FieldTriggerType,
	FieldCadence,
	FieldDefinition,
	FieldLastAppliedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// TriggerType defines the type for the "trigger_type" enum field.
type TriggerType string

// TriggerTypeScheduled is the default value of the TriggerType enum.
const DefaultTriggerType = TriggerTypeScheduled

// TriggerType values.
const (
	TriggerTypeScheduled TriggerType = "scheduled"
	TriggerTypeOnIngest  TriggerType = "on_ingest"
)

func (tt TriggerType) String() string {
	return string(tt)
}

// TriggerTypeValidator is a validator for the "trigger_type" field enum values. It is called by the builders before save.
func TriggerTypeValidator(tt TriggerType) error {
	switch tt {
	case TriggerTypeScheduled, TriggerTypeOnIngest:
		return nil
	default:
		return fmt.Errorf("emailpolicy: invalid enum value for trigger_type field: %q", tt)
	}
}

// Cadence defines the type for the "cadence" enum field.
type Cadence string

// CadenceWeekly is the default value of the Cadence enum.
const DefaultCadence = CadenceWeekly

// Cadence values.
const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

func (c Cadence) String() string {
	return string(c)
}

// CadenceValidator is a validator for the "cadence" field enum values. It is called by the builders before save.
func CadenceValidator(c Cadence) error {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceMonthly:
		return nil
	default:
		return fmt.Errorf("emailpolicy: invalid enum value for cadence field: %q", c)
	}
}

// OrderOption defines the ordering options for the EmailPolicy queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByTriggerType orders the results by the trigger_type field.
func ByTriggerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerType, opts...).ToFunc()
}

// ByCadence orders the results by the cadence field.
func ByCadence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCadence, opts...).ToFunc()
}

// ByLastAppliedAt orders the results by the last_applied_at field.
func ByLastAppliedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAppliedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
