// Code generated by ent, DO NOT EDIT.

package archiveoutbox

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the archiveoutbox type in the database.
	Label = "archive_outbox"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldPlannedFor holds the string denoting the planned_for field in the database.
	FieldPlannedFor = "planned_for"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// EdgeMessage holds the string denoting the message edge name in mutations.
	EdgeMessage = "message"
	// EmailMessageFieldID holds the string denoting the ID field of the EmailMessage.
	EmailMessageFieldID = "message_id"
	// Table holds the table name of the archiveoutbox in the database.
	Table = "archive_push_outbox"
	// MessageTable is the table that holds the message relation/edge.
	MessageTable = "archive_push_outbox"
	// MessageInverseTable is the table name for the EmailMessage entity.
	// It exists in this package in order to avoid circular dependency with the "emailmessage" package.
	MessageInverseTable = "email_messages"
	// MessageColumn is the table column denoting the message relation/edge.
	MessageColumn = "message_id"
)

// Columns holds all SQL columns for archiveoutbox fields.
var Columns = []string{
	FieldID,
	FieldMessageID,
	FieldReason,
	FieldPlannedFor,
	FieldCreatedAt,
	FieldProcessedAt,
	FieldError,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ArchiveOutbox queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByPlannedFor orders the results by the planned_for field.
func ByPlannedFor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlannedFor, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByMessageField orders the results by message field.
func ByMessageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessageStep(), sql.OrderByField(field, opts...))
	}
}
func newMessageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessageInverseTable, EmailMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, MessageTable, MessageColumn),
	)
}
