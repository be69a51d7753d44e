// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mailscope/mailscope/ent/emailpolicy"
)

// EmailPolicy is the model entity for the EmailPolicy schema.
type EmailPolicy struct {
	config `json:"-"`
	// ID of the ent.
	// UUID, assigned at create
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// TriggerType holds the value of the "trigger_type" field.
	TriggerType emailpolicy.TriggerType `json:"trigger_type,omitempty"`
	// Cadence holds the value of the "cadence" field.
	Cadence emailpolicy.Cadence `json:"cadence,omitempty"`
	// Versioned conditions/action document
	Definition json.RawMessage `json:"definition,omitempty"`
	// Gates cadence-driven runs
	LastAppliedAt *time.Time `json:"last_applied_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmailPolicy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case emailpolicy.FieldDefinition:
			values[i] = new([]byte)
		case emailpolicy.FieldEnabled:
			values[i] = new(sql.NullBool)
		case emailpolicy.FieldID, emailpolicy.FieldName, emailpolicy.FieldTriggerType, emailpolicy.FieldCadence:
			values[i] = new(sql.NullString)
		case emailpolicy.FieldLastAppliedAt, emailpolicy.FieldCreatedAt, emailpolicy.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmailPolicy fields.
func (_m *EmailPolicy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case emailpolicy.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case emailpolicy.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case emailpolicy.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case emailpolicy.FieldTriggerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_type", values[i])
			} else if value.Valid {
				_m.TriggerType = emailpolicy.TriggerType(value.String)
			}
		case emailpolicy.FieldCadence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cadence", values[i])
			} else if value.Valid {
				_m.Cadence = emailpolicy.Cadence(value.String)
			}
		case emailpolicy.FieldDefinition:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field definition", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Definition); err != nil {
					return fmt.Errorf("unmarshal field definition: %w", err)
				}
			}
		case emailpolicy.FieldLastAppliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_applied_at", values[i])
			} else if value.Valid {
				_m.LastAppliedAt = new(time.Time)
				*_m.LastAppliedAt = value.Time
			}
		case emailpolicy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case emailpolicy.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EmailPolicy.
// This includes values selected through modifiers, order, etc.
func (_m *EmailPolicy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EmailPolicy.
// Note that you need to call EmailPolicy.Unwrap() before calling this method if this EmailPolicy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmailPolicy) Update() *EmailPolicyUpdateOne {
	return NewEmailPolicyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmailPolicy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmailPolicy) Unwrap() *EmailPolicy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmailPolicy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmailPolicy) String() string {
	var builder strings.Builder
	builder.WriteString("EmailPolicy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("trigger_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerType))
	builder.WriteString(", ")
	builder.WriteString("cadence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cadence))
	builder.WriteString(", ")
	builder.WriteString("definition=")
	builder.WriteString(fmt.Sprintf("%v", _m.Definition))
	builder.WriteString(", ")
	if v := _m.LastAppliedAt; v != nil {
		builder.WriteString("last_applied_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EmailPolicies is a parsable slice of EmailPolicy.
type EmailPolicies []*EmailPolicy
