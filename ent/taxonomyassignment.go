// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
	"github.com/mailscope/mailscope/ent/taxonomylabel"
)

// TaxonomyAssignment is the model entity for the TaxonomyAssignment schema.
type TaxonomyAssignment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// MessageID holds the value of the "message_id" field.
	MessageID string `json:"message_id,omitempty"`
	// LabelID holds the value of the "label_id" field.
	LabelID int `json:"label_id,omitempty"`
	// AssignedAt holds the value of the "assigned_at" field.
	AssignedAt time.Time `json:"assigned_at,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaxonomyAssignmentQuery when eager-loading is set.
	Edges        TaxonomyAssignmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaxonomyAssignmentEdges holds the relations/edges for other nodes in the graph.
type TaxonomyAssignmentEdges struct {
	// Message holds the value of the message edge.
	Message *EmailMessage `json:"message,omitempty"`
	// Label holds the value of the label edge.
	Label *TaxonomyLabel `json:"label,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MessageOrErr returns the Message value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaxonomyAssignmentEdges) MessageOrErr() (*EmailMessage, error) {
	if e.Message != nil {
		return e.Message, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: emailmessage.Label}
	}
	return nil, &NotLoadedError{edge: "message"}
}

// LabelOrErr returns the Label value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaxonomyAssignmentEdges) LabelOrErr() (*TaxonomyLabel, error) {
	if e.Label != nil {
		return e.Label, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: taxonomylabel.Label}
	}
	return nil, &NotLoadedError{edge: "label"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaxonomyAssignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taxonomyassignment.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case taxonomyassignment.FieldID, taxonomyassignment.FieldLabelID:
			values[i] = new(sql.NullInt64)
		case taxonomyassignment.FieldMessageID:
			values[i] = new(sql.NullString)
		case taxonomyassignment.FieldAssignedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaxonomyAssignment fields.
func (_m *TaxonomyAssignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taxonomyassignment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case taxonomyassignment.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case taxonomyassignment.FieldLabelID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field label_id", values[i])
			} else if value.Valid {
				_m.LabelID = int(value.Int64)
			}
		case taxonomyassignment.FieldAssignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_at", values[i])
			} else if value.Valid {
				_m.AssignedAt = value.Time
			}
		case taxonomyassignment.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaxonomyAssignment.
// This includes values selected through modifiers, order, etc.
func (_m *TaxonomyAssignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessage queries the "message" edge of the TaxonomyAssignment entity.
func (_m *TaxonomyAssignment) QueryMessage() *EmailMessageQuery {
	return NewTaxonomyAssignmentClient(_m.config).QueryMessage(_m)
}

// QueryLabel queries the "label" edge of the TaxonomyAssignment entity.
func (_m *TaxonomyAssignment) QueryLabel() *TaxonomyLabelQuery {
	return NewTaxonomyAssignmentClient(_m.config).QueryLabel(_m)
}

// Update returns a builder for updating this TaxonomyAssignment.
// Note that you need to call TaxonomyAssignment.Unwrap() before calling this method if this TaxonomyAssignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaxonomyAssignment) Update() *TaxonomyAssignmentUpdateOne {
	return NewTaxonomyAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaxonomyAssignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaxonomyAssignment) Unwrap() *TaxonomyAssignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaxonomyAssignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaxonomyAssignment) String() string {
	var builder strings.Builder
	builder.WriteString("TaxonomyAssignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("label_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LabelID))
	builder.WriteString(", ")
	builder.WriteString("assigned_at=")
	builder.WriteString(_m.AssignedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TaxonomyAssignments is a parsable slice of TaxonomyAssignment.
type TaxonomyAssignments []*TaxonomyAssignment
