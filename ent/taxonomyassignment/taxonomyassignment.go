// Code generated by ent, DO NOT EDIT.

package taxonomyassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the taxonomyassignment type in the database.
	Label = "taxonomy_assignment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldLabelID holds the string denoting the label_id field in the database.
	FieldLabelID = "label_id"
	// FieldAssignedAt holds the string denoting the assigned_at field in the database.
	FieldAssignedAt = "assigned_at"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// EdgeMessage holds the string denoting the message edge name in mutations.
	EdgeMessage = "message"
	// EdgeLabel holds the string denoting the label edge name in mutations.
	EdgeLabel = "label"
	// EmailMessageFieldID holds the string denoting the ID field of the EmailMessage.
	EmailMessageFieldID = "message_id"
	// Table holds the table name of the taxonomyassignment in the database.
	Table = "taxonomy_assignments"
	// MessageTable is the table that holds the message relation/edge.
	MessageTable = "taxonomy_assignments"
	// MessageInverseTable is the table name for the EmailMessage entity.
	// It exists in this package in order to avoid circular dependency with the "emailmessage" package.
	MessageInverseTable = "email_messages"
	// MessageColumn is the table column denoting the message relation/edge.
	MessageColumn = "message_id"
	// LabelTable is the table that holds the label relation/edge.
	LabelTable = "taxonomy_assignments"
	// LabelInverseTable is the table name for the TaxonomyLabel entity.
	// It exists in this package in order to avoid circular dependency with the "taxonomylabel" package.
	LabelInverseTable = "taxonomy_labels"
	// LabelColumn is the table column denoting the label relation/edge.
	LabelColumn = "label_id"
)

// Columns holds all SQL columns for taxonomyassignment fields.
var Columns = []string{
	FieldID,
	FieldMessageID,
	FieldLabelID,
	FieldAssignedAt,
	FieldConfidence,
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
	// DefaultAssignedAt holds the default value on creation for the "assigned_at" field.
	DefaultAssignedAt func() time.Time
)

// OrderOption defines the ordering options for the TaxonomyAssignment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByLabelID orders the results by the label_id field.
func ByLabelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabelID, opts...).ToFunc()
}

// ByAssignedAt orders the results by the assigned_at field.
func ByAssignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAt, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByMessageField orders the results by message field.
func ByMessageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessageStep(), sql.OrderByField(field, opts...))
	}
}

// ByLabelField orders the results by label field.
func ByLabelField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLabelStep(), sql.OrderByField(field, opts...))
	}
}
func newMessageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessageInverseTable, EmailMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, MessageTable, MessageColumn),
	)
}
func newLabelStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LabelInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LabelTable, LabelColumn),
	)
}
