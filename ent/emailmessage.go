// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mailscope/mailscope/ent/archiveoutbox"
	"github.com/mailscope/mailscope/ent/emailcluster"
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
)

// EmailMessage is the model entity for the EmailMessage schema.
type EmailMessage struct {
	config `json:"-"`
	// ID of the ent.
	// Provider message id
	ID string `json:"id,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID *string `json:"thread_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject *string `json:"subject,omitempty"`
	// Lowercased subject with reply/forward prefixes stripped
	SubjectNormalized *string `json:"subject_normalized,omitempty"`
	// FromAddress holds the value of the "from_address" field.
	FromAddress *string `json:"from_address,omitempty"`
	// FromDomain holds the value of the "from_domain" field.
	FromDomain *string `json:"from_domain,omitempty"`
	// ToAddresses holds the value of the "to_addresses" field.
	ToAddresses []string `json:"to_addresses,omitempty"`
	// CcAddresses holds the value of the "cc_addresses" field.
	CcAddresses []string `json:"cc_addresses,omitempty"`
	// BccAddresses holds the value of the "bcc_addresses" field.
	BccAddresses []string `json:"bcc_addresses,omitempty"`
	// IsUnread holds the value of the "is_unread" field.
	IsUnread bool `json:"is_unread,omitempty"`
	// Provider receive time, UTC; drives the ingestion checkpoint
	InternalDate *time.Time `json:"internal_date,omitempty"`
	// Provider label ids as last seen (GIN-indexed via migration)
	LabelIds []string `json:"label_ids,omitempty"`
	// Tier-1 label; written once, never overwritten
	Category *string `json:"category,omitempty"`
	// Subcategory holds the value of the "subcategory" field.
	Subcategory *string `json:"subcategory,omitempty"`
	// Labeler version that produced category/subcategory
	LabelVersion *string `json:"label_version,omitempty"`
	// ClusterID holds the value of the "cluster_id" field.
	ClusterID *string `json:"cluster_id,omitempty"`
	// ArchivedAt holds the value of the "archived_at" field.
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	// InboxRemovedAt holds the value of the "inbox_removed_at" field.
	InboxRemovedAt *time.Time `json:"inbox_removed_at,omitempty"`
	// LifecycleState holds the value of the "lifecycle_state" field.
	LifecycleState emailmessage.LifecycleState `json:"lifecycle_state,omitempty"`
	// TrashedAt holds the value of the "trashed_at" field.
	TrashedAt *time.Time `json:"trashed_at,omitempty"`
	// When a policy-trashed message leaves its undo window
	ExpiryAt *time.Time `json:"expiry_at,omitempty"`
	// TrashedByPolicyID holds the value of the "trashed_by_policy_id" field.
	TrashedByPolicyID *string `json:"trashed_by_policy_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EmailMessageQuery when eager-loading is set.
	Edges        EmailMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EmailMessageEdges holds the relations/edges for other nodes in the graph.
type EmailMessageEdges struct {
	// Cluster holds the value of the cluster edge.
	Cluster *EmailCluster `json:"cluster,omitempty"`
	// Assignment holds the value of the assignment edge.
	Assignment *TaxonomyAssignment `json:"assignment,omitempty"`
	// LabelPushes holds the value of the label_pushes edge.
	LabelPushes []*LabelOutbox `json:"label_pushes,omitempty"`
	// ArchivePush holds the value of the archive_push edge.
	ArchivePush *ArchiveOutbox `json:"archive_push,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ClusterOrErr returns the Cluster value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EmailMessageEdges) ClusterOrErr() (*EmailCluster, error) {
	if e.Cluster != nil {
		return e.Cluster, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: emailcluster.Label}
	}
	return nil, &NotLoadedError{edge: "cluster"}
}

// AssignmentOrErr returns the Assignment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EmailMessageEdges) AssignmentOrErr() (*TaxonomyAssignment, error) {
	if e.Assignment != nil {
		return e.Assignment, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: taxonomyassignment.Label}
	}
	return nil, &NotLoadedError{edge: "assignment"}
}

// LabelPushesOrErr returns the LabelPushes value or an error if the edge
// was not loaded in eager-loading.
func (e EmailMessageEdges) LabelPushesOrErr() ([]*LabelOutbox, error) {
	if e.loadedTypes[2] {
		return e.LabelPushes, nil
	}
	return nil, &NotLoadedError{edge: "label_pushes"}
}

// ArchivePushOrErr returns the ArchivePush value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EmailMessageEdges) ArchivePushOrErr() (*ArchiveOutbox, error) {
	if e.ArchivePush != nil {
		return e.ArchivePush, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: archiveoutbox.Label}
	}
	return nil, &NotLoadedError{edge: "archive_push"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmailMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case emailmessage.FieldToAddresses, emailmessage.FieldCcAddresses, emailmessage.FieldBccAddresses, emailmessage.FieldLabelIds:
			values[i] = new([]byte)
		case emailmessage.FieldIsUnread:
			values[i] = new(sql.NullBool)
		case emailmessage.FieldID, emailmessage.FieldThreadID, emailmessage.FieldSubject, emailmessage.FieldSubjectNormalized, emailmessage.FieldFromAddress, emailmessage.FieldFromDomain, emailmessage.FieldCategory, emailmessage.FieldSubcategory, emailmessage.FieldLabelVersion, emailmessage.FieldClusterID, emailmessage.FieldLifecycleState, emailmessage.FieldTrashedByPolicyID:
			values[i] = new(sql.NullString)
		case emailmessage.FieldInternalDate, emailmessage.FieldArchivedAt, emailmessage.FieldInboxRemovedAt, emailmessage.FieldTrashedAt, emailmessage.FieldExpiryAt, emailmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmailMessage fields.
func (_m *EmailMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case emailmessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case emailmessage.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = new(string)
				*_m.ThreadID = value.String
			}
		case emailmessage.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = new(string)
				*_m.Subject = value.String
			}
		case emailmessage.FieldSubjectNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_normalized", values[i])
			} else if value.Valid {
				_m.SubjectNormalized = new(string)
				*_m.SubjectNormalized = value.String
			}
		case emailmessage.FieldFromAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_address", values[i])
			} else if value.Valid {
				_m.FromAddress = new(string)
				*_m.FromAddress = value.String
			}
		case emailmessage.FieldFromDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_domain", values[i])
			} else if value.Valid {
				_m.FromDomain = new(string)
				*_m.FromDomain = value.String
			}
		case emailmessage.FieldToAddresses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field to_addresses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToAddresses); err != nil {
					return fmt.Errorf("unmarshal field to_addresses: %w", err)
				}
			}
		case emailmessage.FieldCcAddresses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cc_addresses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CcAddresses); err != nil {
					return fmt.Errorf("unmarshal field cc_addresses: %w", err)
				}
			}
		case emailmessage.FieldBccAddresses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bcc_addresses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BccAddresses); err != nil {
					return fmt.Errorf("unmarshal field bcc_addresses: %w", err)
				}
			}
		case emailmessage.FieldIsUnread:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_unread", values[i])
			} else if value.Valid {
				_m.IsUnread = value.Bool
			}
		case emailmessage.FieldInternalDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field internal_date", values[i])
			} else if value.Valid {
				_m.InternalDate = new(time.Time)
				*_m.InternalDate = value.Time
			}
		case emailmessage.FieldLabelIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field label_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LabelIds); err != nil {
					return fmt.Errorf("unmarshal field label_ids: %w", err)
				}
			}
		case emailmessage.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = new(string)
				*_m.Category = value.String
			}
		case emailmessage.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = new(string)
				*_m.Subcategory = value.String
			}
		case emailmessage.FieldLabelVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label_version", values[i])
			} else if value.Valid {
				_m.LabelVersion = new(string)
				*_m.LabelVersion = value.String
			}
		case emailmessage.FieldClusterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cluster_id", values[i])
			} else if value.Valid {
				_m.ClusterID = new(string)
				*_m.ClusterID = value.String
			}
		case emailmessage.FieldArchivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field archived_at", values[i])
			} else if value.Valid {
				_m.ArchivedAt = new(time.Time)
				*_m.ArchivedAt = value.Time
			}
		case emailmessage.FieldInboxRemovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field inbox_removed_at", values[i])
			} else if value.Valid {
				_m.InboxRemovedAt = new(time.Time)
				*_m.InboxRemovedAt = value.Time
			}
		case emailmessage.FieldLifecycleState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lifecycle_state", values[i])
			} else if value.Valid {
				_m.LifecycleState = emailmessage.LifecycleState(value.String)
			}
		case emailmessage.FieldTrashedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field trashed_at", values[i])
			} else if value.Valid {
				_m.TrashedAt = new(time.Time)
				*_m.TrashedAt = value.Time
			}
		case emailmessage.FieldExpiryAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expiry_at", values[i])
			} else if value.Valid {
				_m.ExpiryAt = new(time.Time)
				*_m.ExpiryAt = value.Time
			}
		case emailmessage.FieldTrashedByPolicyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trashed_by_policy_id", values[i])
			} else if value.Valid {
				_m.TrashedByPolicyID = new(string)
				*_m.TrashedByPolicyID = value.String
			}
		case emailmessage.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EmailMessage.
// This includes values selected through modifiers, order, etc.
func (_m *EmailMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCluster queries the "cluster" edge of the EmailMessage entity.
func (_m *EmailMessage) QueryCluster() *EmailClusterQuery {
	return NewEmailMessageClient(_m.config).QueryCluster(_m)
}

// QueryAssignment queries the "assignment" edge of the EmailMessage entity.
func (_m *EmailMessage) QueryAssignment() *TaxonomyAssignmentQuery {
	return NewEmailMessageClient(_m.config).QueryAssignment(_m)
}

// QueryLabelPushes queries the "label_pushes" edge of the EmailMessage entity.
func (_m *EmailMessage) QueryLabelPushes() *LabelOutboxQuery {
	return NewEmailMessageClient(_m.config).QueryLabelPushes(_m)
}

// QueryArchivePush queries the "archive_push" edge of the EmailMessage entity.
func (_m *EmailMessage) QueryArchivePush() *ArchiveOutboxQuery {
	return NewEmailMessageClient(_m.config).QueryArchivePush(_m)
}

// Update returns a builder for updating this EmailMessage.
// Note that you need to call EmailMessage.Unwrap() before calling this method if this EmailMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmailMessage) Update() *EmailMessageUpdateOne {
	return NewEmailMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmailMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmailMessage) Unwrap() *EmailMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmailMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmailMessage) String() string {
	var builder strings.Builder
	builder.WriteString("EmailMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.ThreadID; v != nil {
		builder.WriteString("thread_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Subject; v != nil {
		builder.WriteString("subject=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SubjectNormalized; v != nil {
		builder.WriteString("subject_normalized=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FromAddress; v != nil {
		builder.WriteString("from_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FromDomain; v != nil {
		builder.WriteString("from_domain=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("to_addresses=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToAddresses))
	builder.WriteString(", ")
	builder.WriteString("cc_addresses=")
	builder.WriteString(fmt.Sprintf("%v", _m.CcAddresses))
	builder.WriteString(", ")
	builder.WriteString("bcc_addresses=")
	builder.WriteString(fmt.Sprintf("%v", _m.BccAddresses))
	builder.WriteString(", ")
	builder.WriteString("is_unread=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsUnread))
	builder.WriteString(", ")
	if v := _m.InternalDate; v != nil {
		builder.WriteString("internal_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("label_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.LabelIds))
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
	if v := _m.ClusterID; v != nil {
		builder.WriteString("cluster_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ArchivedAt; v != nil {
		builder.WriteString("archived_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.InboxRemovedAt; v != nil {
		builder.WriteString("inbox_removed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("lifecycle_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.LifecycleState))
	builder.WriteString(", ")
	if v := _m.TrashedAt; v != nil {
		builder.WriteString("trashed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExpiryAt; v != nil {
		builder.WriteString("expiry_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TrashedByPolicyID; v != nil {
		builder.WriteString("trashed_by_policy_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EmailMessages is a parsable slice of EmailMessage.
type EmailMessages []*EmailMessage
