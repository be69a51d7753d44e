// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mailscope/mailscope/ent/archiveoutbox"
	"github.com/mailscope/mailscope/ent/emailmessage"
)

// ArchiveOutbox is the model entity for the ArchiveOutbox schema.
type ArchiveOutbox struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// MessageID holds the value of the "message_id" field.
	MessageID string `json:"message_id,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// internal_date + effective retention, recorded at plan time
	PlannedFor *time.Time `json:"planned_for,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ArchiveOutboxQuery when eager-loading is set.
	Edges        ArchiveOutboxEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ArchiveOutboxEdges holds the relations/edges for other nodes in the graph.
type ArchiveOutboxEdges struct {
	// Message holds the value of the message edge.
	Message *EmailMessage `json:"message,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MessageOrErr returns the Message value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ArchiveOutboxEdges) MessageOrErr() (*EmailMessage, error) {
	if e.Message != nil {
		return e.Message, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: emailmessage.Label}
	}
	return nil, &NotLoadedError{edge: "message"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ArchiveOutbox) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case archiveoutbox.FieldID:
			values[i] = new(sql.NullInt64)
		case archiveoutbox.FieldMessageID, archiveoutbox.FieldReason, archiveoutbox.FieldError:
			values[i] = new(sql.NullString)
		case archiveoutbox.FieldPlannedFor, archiveoutbox.FieldCreatedAt, archiveoutbox.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ArchiveOutbox fields.
func (_m *ArchiveOutbox) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case archiveoutbox.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case archiveoutbox.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case archiveoutbox.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case archiveoutbox.FieldPlannedFor:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field planned_for", values[i])
			} else if value.Valid {
				_m.PlannedFor = new(time.Time)
				*_m.PlannedFor = value.Time
			}
		case archiveoutbox.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case archiveoutbox.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		case archiveoutbox.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ArchiveOutbox.
// This includes values selected through modifiers, order, etc.
func (_m *ArchiveOutbox) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessage queries the "message" edge of the ArchiveOutbox entity.
func (_m *ArchiveOutbox) QueryMessage() *EmailMessageQuery {
	return NewArchiveOutboxClient(_m.config).QueryMessage(_m)
}

// Update returns a builder for updating this ArchiveOutbox.
// Note that you need to call ArchiveOutbox.Unwrap() before calling this method if this ArchiveOutbox
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ArchiveOutbox) Update() *ArchiveOutboxUpdateOne {
	return NewArchiveOutboxClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ArchiveOutbox entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ArchiveOutbox) Unwrap() *ArchiveOutbox {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ArchiveOutbox is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ArchiveOutbox) String() string {
	var builder strings.Builder
	builder.WriteString("ArchiveOutbox(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	if v := _m.PlannedFor; v != nil {
		builder.WriteString("planned_for=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ArchiveOutboxes is a parsable slice of ArchiveOutbox.
type ArchiveOutboxes []*ArchiveOutbox
