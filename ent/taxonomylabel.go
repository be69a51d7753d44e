// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mailscope/mailscope/ent/taxonomylabel"
)

// TaxonomyLabel is the model entity for the TaxonomyLabel schema.
type TaxonomyLabel struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// 1 or 2
	Level int `json:"level,omitempty"`
	// Tier-2 slugs are namespaced: <parent-slug>--<child-slug>
	Slug string `json:"slug,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// ParentID holds the value of the "parent_id" field.
	ParentID *int `json:"parent_id,omitempty"`
	// NULL means inherit from parent, then system default
	RetentionDays *int `json:"retention_days,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Provider label id once synced
	GmailLabelID *string `json:"gmail_label_id,omitempty"`
	// LastSyncAt holds the value of the "last_sync_at" field.
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
	// LastSyncStatus holds the value of the "last_sync_status" field.
	LastSyncStatus *string `json:"last_sync_status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaxonomyLabelQuery when eager-loading is set.
	Edges        TaxonomyLabelEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaxonomyLabelEdges holds the relations/edges for other nodes in the graph.
type TaxonomyLabelEdges struct {
	// Parent holds the value of the parent edge.
	Parent *TaxonomyLabel `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*TaxonomyLabel `json:"children,omitempty"`
	// Assignments holds the value of the assignments edge.
	Assignments []*TaxonomyAssignment `json:"assignments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaxonomyLabelEdges) ParentOrErr() (*TaxonomyLabel, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: taxonomylabel.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e TaxonomyLabelEdges) ChildrenOrErr() ([]*TaxonomyLabel, error) {
	if e.loadedTypes[1] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// AssignmentsOrErr returns the Assignments value or an error if the edge
// was not loaded in eager-loading.
func (e TaxonomyLabelEdges) AssignmentsOrErr() ([]*TaxonomyAssignment, error) {
	if e.loadedTypes[2] {
		return e.Assignments, nil
	}
	return nil, &NotLoadedError{edge: "assignments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaxonomyLabel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taxonomylabel.FieldIsActive:
			values[i] = new(sql.NullBool)
		case taxonomylabel.FieldID, taxonomylabel.FieldLevel, taxonomylabel.FieldParentID, taxonomylabel.FieldRetentionDays:
			values[i] = new(sql.NullInt64)
		case taxonomylabel.FieldSlug, taxonomylabel.FieldName, taxonomylabel.FieldDescription, taxonomylabel.FieldGmailLabelID, taxonomylabel.FieldLastSyncStatus:
			values[i] = new(sql.NullString)
		case taxonomylabel.FieldLastSyncAt, taxonomylabel.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaxonomyLabel fields.
func (_m *TaxonomyLabel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taxonomylabel.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case taxonomylabel.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case taxonomylabel.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case taxonomylabel.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case taxonomylabel.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case taxonomylabel.FieldParentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(int)
				*_m.ParentID = int(value.Int64)
			}
		case taxonomylabel.FieldRetentionDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retention_days", values[i])
			} else if value.Valid {
				_m.RetentionDays = new(int)
				*_m.RetentionDays = int(value.Int64)
			}
		case taxonomylabel.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case taxonomylabel.FieldGmailLabelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gmail_label_id", values[i])
			} else if value.Valid {
				_m.GmailLabelID = new(string)
				*_m.GmailLabelID = value.String
			}
		case taxonomylabel.FieldLastSyncAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_sync_at", values[i])
			} else if value.Valid {
				_m.LastSyncAt = new(time.Time)
				*_m.LastSyncAt = value.Time
			}
		case taxonomylabel.FieldLastSyncStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_sync_status", values[i])
			} else if value.Valid {
				_m.LastSyncStatus = new(string)
				*_m.LastSyncStatus = value.String
			}
		case taxonomylabel.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaxonomyLabel.
// This includes values selected through modifiers, order, etc.
func (_m *TaxonomyLabel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParent queries the "parent" edge of the TaxonomyLabel entity.
func (_m *TaxonomyLabel) QueryParent() *TaxonomyLabelQuery {
	return NewTaxonomyLabelClient(_m.config).QueryParent(_m)
}

// QueryChildren queries the "children" edge of the TaxonomyLabel entity.
func (_m *TaxonomyLabel) QueryChildren() *TaxonomyLabelQuery {
	return NewTaxonomyLabelClient(_m.config).QueryChildren(_m)
}

// QueryAssignments queries the "assignments" edge of the TaxonomyLabel entity.
func (_m *TaxonomyLabel) QueryAssignments() *TaxonomyAssignmentQuery {
	return NewTaxonomyLabelClient(_m.config).QueryAssignments(_m)
}

// Update returns a builder for updating this TaxonomyLabel.
// Note that you need to call TaxonomyLabel.Unwrap() before calling this method if this TaxonomyLabel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaxonomyLabel) Update() *TaxonomyLabelUpdateOne {
	return NewTaxonomyLabelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaxonomyLabel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaxonomyLabel) Unwrap() *TaxonomyLabel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaxonomyLabel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaxonomyLabel) String() string {
	var builder strings.Builder
	builder.WriteString("TaxonomyLabel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RetentionDays; v != nil {
		builder.WriteString("retention_days=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	if v := _m.GmailLabelID; v != nil {
		builder.WriteString("gmail_label_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastSyncAt; v != nil {
		builder.WriteString("last_sync_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastSyncStatus; v != nil {
		builder.WriteString("last_sync_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaxonomyLabels is a parsable slice of TaxonomyLabel.
type TaxonomyLabels []*TaxonomyLabel
