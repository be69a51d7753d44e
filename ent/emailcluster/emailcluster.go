// Code generated by ent, DO NOT EDIT.

package emailcluster

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the emailcluster type in the database.
	Label = "email_cluster"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "cluster_id"
	// FieldSeedMessageID holds the string denoting the seed_message_id field in the database.
	FieldSeedMessageID = "seed_message_id"
	// FieldFromDomain holds the string denoting the from_domain field in the database.
	FieldFromDomain = "from_domain"
	// FieldSubjectNormalized holds the string denoting the subject_normalized field in the database.
	FieldSubjectNormalized = "subject_normalized"
	// FieldSimilarityThreshold holds the string denoting the similarity_threshold field in the database.
	FieldSimilarityThreshold = "similarity_threshold"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldFrequencyLabel holds the string denoting the frequency_label field in the database.
	FieldFrequencyLabel = "frequency_label"
	// FieldUnreadLabel holds the string denoting the unread_label field in the database.
	FieldUnreadLabel = "unread_label"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldLabelVersion holds the string denoting the label_version field in the database.
	FieldLabelVersion = "label_version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EmailMessageFieldID holds the string denoting the ID field of the EmailMessage.
	EmailMessageFieldID = "message_id"
	// Table holds the table name of the emailcluster in the database.
	Table = "email_clusters"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "email_messages"
	// MessagesInverseTable is the table name for the EmailMessage entity.
	// It exists in this package in order to avoid circular dependency with the "emailmessage" package.
	MessagesInverseTable = "email_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "cluster_id"
)

// Columns holds all SQL columns for emailcluster fields.
var Columns = []string{
	FieldID,
	FieldSeedMessageID,
	FieldFromDomain,
	FieldSubjectNormalized,
	FieldSimilarityThreshold,
	FieldDisplayName,
	FieldFrequencyLabel,
	FieldUnreadLabel,
	FieldCategory,
	FieldSubcategory,
	FieldLabelVersion,
	FieldCreatedAt,
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

// OrderOption defines the ordering options for the EmailCluster queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySeedMessageID orders the results by the seed_message_id field.
func BySeedMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeedMessageID, opts...).ToFunc()
}

// ByFromDomain orders the results by the from_domain field.
func ByFromDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromDomain, opts...).ToFunc()
}

// BySubjectNormalized orders the results by the subject_normalized field.
func BySubjectNormalized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectNormalized, opts...).ToFunc()
}

// BySimilarityThreshold orders the results by the similarity_threshold field.
func BySimilarityThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimilarityThreshold, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByFrequencyLabel orders the results by the frequency_label field.
func ByFrequencyLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrequencyLabel, opts...).ToFunc()
}

// ByUnreadLabel orders the results by the unread_label field.
func ByUnreadLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnreadLabel, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// BySubcategory orders the results by the subcategory field.
func BySubcategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubcategory, opts...).ToFunc()
}

// ByLabelVersion orders the results by the label_version field.
func ByLabelVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabelVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, EmailMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
