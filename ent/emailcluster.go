// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mailscope/mailscope/ent/emailcluster"
)

// EmailCluster is the model entity for the EmailCluster schema.
type EmailCluster struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SeedMessageID holds the value of the "seed_message_id" field.
	SeedMessageID string `json:"seed_message_id,omitempty"`
	// FromDomain holds the value of the "from_domain" field.
	FromDomain *string `json:"from_domain,omitempty"`
	// Normalized subject of the seed message
	SubjectNormalized *string `json:"subject_normalized,omitempty"`
	// SimilarityThreshold holds the value of the "similarity_threshold" field.
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName *string `json:"display_name,omitempty"`
	// daily/weekly/monthly/quarterly/rare
	FrequencyLabel *string `json:"frequency_label,omitempty"`
	// UnreadLabel holds the value of the "unread_label" field.
	UnreadLabel *string `json:"unread_label,omitempty"`
	// Category holds the value of the "category" field.
	Category *string `json:"category,omitempty"`
	// Subcategory holds the value of the "subcategory" field.
	Subcategory *string `json:"subcategory,omitempty"`
	// LabelVersion holds the value of the "label_version" field.
	LabelVersion *string `json:"label_version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EmailClusterQuery when eager-loading is set.
	Edges        EmailClusterEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EmailClusterEdges holds the relations/edges for other nodes in the graph.
type EmailClusterEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*EmailMessage `json:"messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e EmailClusterEdges) MessagesOrErr() ([]*EmailMessage, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmailCluster) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case emailcluster.FieldSimilarityThreshold:
			values[i] = new(sql.NullFloat64)
		case emailcluster.FieldID, emailcluster.FieldSeedMessageID, emailcluster.FieldFromDomain, emailcluster.FieldSubjectNormalized, emailcluster.FieldDisplayName, emailcluster.FieldFrequencyLabel, emailcluster.FieldUnreadLabel, emailcluster.FieldCategory, emailcluster.FieldSubcategory, emailcluster.FieldLabelVersion:
			values[i] = new(sql.NullString)
		case emailcluster.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmailCluster fields.
func (_m *EmailCluster) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case emailcluster.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case emailcluster.FieldSeedMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seed_message_id", values[i])
			} else if value.Valid {
				_m.SeedMessageID = value.String
			}
		case emailcluster.FieldFromDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_domain", values[i])
			} else if value.Valid {
				_m.FromDomain = new(string)
				*_m.FromDomain = value.String
			}
		case emailcluster.FieldSubjectNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_normalized", values[i])
			} else if value.Valid {
				_m.SubjectNormalized = new(string)
				*_m.SubjectNormalized = value.String
			}
		case emailcluster.FieldSimilarityThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field similarity_threshold", values[i])
			} else if value.Valid {
				_m.SimilarityThreshold = value.Float64
			}
		case emailcluster.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = new(string)
				*_m.DisplayName = value.String
			}
		case emailcluster.FieldFrequencyLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field frequency_label", values[i])
			} else if value.Valid {
				_m.FrequencyLabel = new(string)
				*_m.FrequencyLabel = value.String
			}
		case emailcluster.FieldUnreadLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unread_label", values[i])
			} else if value.Valid {
				_m.UnreadLabel = new(string)
				*_m.UnreadLabel = value.String
			}
		case emailcluster.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = new(string)
				*_m.Category = value.String
			}
		case emailcluster.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = new(string)
				*_m.Subcategory = value.String
			}
		case emailcluster.FieldLabelVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label_version", values[i])
			} else if value.Valid {
				_m.LabelVersion = new(string)
				*_m.LabelVersion = value.String
			}
		case emailcluster.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EmailCluster.
// This includes values selected through modifiers, order, etc.
func (_m *EmailCluster) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the EmailCluster entity.
func (_m *EmailCluster) QueryMessages() *EmailMessageQuery {
	return NewEmailClusterClient(_m.config).QueryMessages(_m)
}

// Update returns a builder for updating this EmailCluster.
// Note that you need to call EmailCluster.Unwrap() before calling this method if this EmailCluster
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmailCluster) Update() *EmailClusterUpdateOne {
	return NewEmailClusterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmailCluster entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmailCluster) Unwrap() *EmailCluster {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmailCluster is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmailCluster) String() string {
	var builder strings.Builder
	builder.WriteString("EmailCluster(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("seed_message_id=")
	builder.WriteString(_m.SeedMessageID)
	builder.WriteString(", ")
	if v := _m.FromDomain; v != nil {
		builder.WriteString("from_domain=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SubjectNormalized; v != nil {
		builder.WriteString("subject_normalized=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("similarity_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.SimilarityThreshold))
	builder.WriteString(", ")
	if v := _m.DisplayName; v != nil {
		builder.WriteString("display_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FrequencyLabel; v != nil {
		builder.WriteString("frequency_label=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UnreadLabel; v != nil {
		builder.WriteString("unread_label=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Category; v != nil {
		builder.WriteString("category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Subcategory; v != nil {
		builder.WriteString("subcategory=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LabelVersion; v != nil {
		builder.WriteString("label_version=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EmailClusters is a parsable slice of EmailCluster.
type EmailClusters []*EmailCluster
