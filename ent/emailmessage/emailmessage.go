// Code generated by ent, DO NOT EDIT.

package emailmessage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the emailmessage type in the database.
	Label = "email_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldThreadID holds the string denoting the thread_id field in the database.
	FieldThreadID = "thread_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldSubjectNormalized holds the string denoting the subject_normalized field in the database.
	FieldSubjectNormalized = "subject_normalized"
	// FieldFromAddress holds the string denoting the from_address field in the database.
	FieldFromAddress = "from_address"
	// FieldFromDomain holds the string denoting the from_domain field in the database.
	FieldFromDomain = "from_domain"
	// FieldToAddresses holds the string denoting the to_addresses field in the database.
	FieldToAddresses = "to_addresses"
	// FieldCcAddresses holds the string denoting the cc_addresses field in the database.
	FieldCcAddresses = "cc_addresses"
	// FieldBccAddresses holds the string denoting the bcc_addresses field in the database.
	FieldBccAddresses = "bcc_addresses"
	// FieldIsUnread holds the string denoting the is_unread field in the database.
	FieldIsUnread = "is_unread"
	// FieldInternalDate holds the string denoting the internal_date field in the database.
	FieldInternalDate = "internal_date"
	// FieldLabelIds holds the string denoting the label_ids field in the database.
	FieldLabelIds = "label_ids"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldLabelVersion holds the string denoting the label_version field in the database.
	FieldLabelVersion = "label_version"
	// FieldClusterID holds the string denoting the cluster_id field in the database.
	FieldClusterID = "cluster_id"
	// FieldArchivedAt holds the string denoting the archived_at field in the database.
	FieldArchivedAt = "archived_at"
	// FieldInboxRemovedAt holds the string denoting the inbox_removed_at field in the database.
	FieldInboxRemovedAt = "inbox_removed_at"
	// FieldLifecycleState holds the string denoting the lifecycle_state field in the database.
	FieldLifecycleState = "lifecycle_state"
	// FieldTrashedAt holds the string denoting the trashed_at field in the database.
	FieldTrashedAt = "trashed_at"
	// FieldExpiryAt holds the string denoting the expiry_at field in the database.
	FieldExpiryAt = "expiry_at"
	// FieldTrashedByPolicyID holds the string denoting the trashed_by_policy_id field in the database.
	FieldTrashedByPolicyID = "trashed_by_policy_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCluster holds the string denoting the cluster edge name in mutations.
	EdgeCluster = "cluster"
	// EdgeAssignment holds the string denoting the assignment edge name in mutations.
	EdgeAssignment = "assignment"
	// EdgeLabelPushes holds the string denoting the label_pushes edge name in mutations.
	EdgeLabelPushes = "label_pushes"
	// EdgeArchivePush holds the string denoting the archive_push edge name in mutations.
	EdgeArchivePush = "archive_push"
	// EmailClusterFieldID holds the string denoting the ID field of the EmailCluster.
	EmailClusterFieldID = "cluster_id"
	// TaxonomyAssignmentFieldID holds the string denoting the ID field of the TaxonomyAssignment.
	TaxonomyAssignmentFieldID = "id"
	// LabelOutboxFieldID holds the string denoting the ID field of the LabelOutbox.
	LabelOutboxFieldID = "id"
	// ArchiveOutboxFieldID holds the string denoting the ID field of the ArchiveOutbox.
	ArchiveOutboxFieldID = "id"
	// Table holds the table name of the emailmessage in the database.
	Table = "email_messages"
	// ClusterTable is the table that holds the cluster relation/edge.
	ClusterTable = "email_messages"
	// ClusterInverseTable is the table name for the EmailCluster entity.
	// It exists in this package in order to avoid circular dependency with the "emailcluster" package.
	ClusterInverseTable = "email_clusters"
	// ClusterColumn is the table column denoting the cluster relation/edge.
	ClusterColumn = "cluster_id"
	// AssignmentTable is the table that holds the assignment relation/edge.
	AssignmentTable = "taxonomy_assignments"
	// AssignmentInverseTable is the table name for the TaxonomyAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "taxonomyassignment" package.
	AssignmentInverseTable = "taxonomy_assignments"
	// AssignmentColumn is the table column denoting the assignment relation/edge.
	AssignmentColumn = "message_id"
	// LabelPushesTable is the table that holds the label_pushes relation/edge.
	LabelPushesTable = "label_push_outbox"
	// LabelPushesInverseTable is the table name for the LabelOutbox entity.
	// It exists in this package in order to avoid circular dependency with the "labeloutbox" package.
	LabelPushesInverseTable = "label_push_outbox"
	// LabelPushesColumn is the table column denoting the label_pushes relation/edge.
	LabelPushesColumn = "message_id"
	// ArchivePushTable is the table that holds the archive_push relation/edge.
	ArchivePushTable = "archive_push_outbox"
	// ArchivePushInverseTable is the table name for the ArchiveOutbox entity.
	// It exists in this package in order to avoid circular dependency with the "archiveoutbox" package.
	ArchivePushInverseTable = "archive_push_outbox"
	// ArchivePushColumn is the table column denoting the archive_push relation/edge.
	ArchivePushColumn = "message_id"
)

// Columns holds all SQL columns for emailmessage fields.
var Columns = []string{
	FieldID,
	FieldThreadID,
	FieldSubject,
	FieldSubjectNormalized,
	FieldFromAddress,
	FieldFromDomain,
	FieldToAddresses,
	FieldCcAddresses,
	FieldBccAddresses,
	FieldIsUnread,
	FieldInternalDate,
	FieldLabelIds,
	FieldCategory,
	FieldSubcategory,
	FieldLabelVersion,
	FieldClusterID,
	FieldArchivedAt,
	FieldInboxRemovedAt,
	FieldLifecycleState,
	FieldTrashedAt,
	FieldExpiryAt,
	FieldTrashedByPolicyID,
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
	// DefaultIsUnread holds the default value on creation for the "is_unread" field.
	DefaultIsUnread bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// LifecycleState defines the type for the "lifecycle_state" enum field.
type LifecycleState string

// LifecycleStateActive is the default value of the LifecycleState enum.
const DefaultLifecycleState = LifecycleStateActive

// LifecycleState values.
const (
	LifecycleStateActive  LifecycleState = "active"
	LifecycleStateTrashed LifecycleState = "trashed"
)

func (ls LifecycleState) String() string {
	return string(ls)
}

// LifecycleStateValidator is a validator for the "lifecycle_state" field enum values. It is called by the builders before save.
func LifecycleStateValidator(ls LifecycleState) error {
	switch ls {
	case LifecycleStateActive, LifecycleStateTrashed:
		return nil
	default:
		return fmt.Errorf("emailmessage: invalid enum value for lifecycle_state field: %q", ls)
	}
}

// OrderOption defines the ordering options for the EmailMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByThreadID orders the results by the thread_id field.
func ByThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// BySubjectNormalized orders the results by the subject_normalized field.
func BySubjectNormalized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectNormalized, opts...).ToFunc()
}

// ByFromAddress orders the results by the from_address field.
func ByFromAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromAddress, opts...).ToFunc()
}

// ByFromDomain orders the results by the from_domain field.
func ByFromDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromDomain, opts...).ToFunc()
}

// ByIsUnread orders the results by the is_unread field.
func ByIsUnread(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsUnread, opts...).ToFunc()
}

// ByInternalDate orders the results by the internal_date field.
func ByInternalDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInternalDate, opts...).ToFunc()
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

// ByClusterID orders the results by the cluster_id field.
func ByClusterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClusterID, opts...).ToFunc()
}

// ByArchivedAt orders the results by the archived_at field.
func ByArchivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchivedAt, opts...).ToFunc()
}

// ByInboxRemovedAt orders the results by the inbox_removed_at field.
func ByInboxRemovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInboxRemovedAt, opts...).ToFunc()
}

// ByLifecycleState orders the results by the lifecycle_state field.
func ByLifecycleState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLifecycleState, opts...).ToFunc()
}

// ByTrashedAt orders the results by the trashed_at field.
func ByTrashedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrashedAt, opts...).ToFunc()
}

// ByExpiryAt orders the results by the expiry_at field.
func ByExpiryAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiryAt, opts...).ToFunc()
}

// ByTrashedByPolicyID orders the results by the trashed_by_policy_id field.
func ByTrashedByPolicyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrashedByPolicyID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByClusterField orders the results by cluster field.
func ByClusterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClusterStep(), sql.OrderByField(field, opts...))
	}
}

// ByAssignmentField orders the results by assignment field.
func ByAssignmentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignmentStep(), sql.OrderByField(field, opts...))
	}
}

// ByLabelPushesCount orders the results by label_pushes count.
func ByLabelPushesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLabelPushesStep(), opts...)
	}
}

// ByLabelPushes orders the results by label_pushes terms.
func ByLabelPushes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLabelPushesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByArchivePushField orders the results by archive_push field.
func ByArchivePushField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArchivePushStep(), sql.OrderByField(field, opts...))
	}
}
func newClusterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClusterInverseTable, EmailClusterFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClusterTable, ClusterColumn),
	)
}
func newAssignmentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignmentInverseTable, TaxonomyAssignmentFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, AssignmentTable, AssignmentColumn),
	)
}
func newLabelPushesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LabelPushesInverseTable, LabelOutboxFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LabelPushesTable, LabelPushesColumn),
	)
}
func newArchivePushStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArchivePushInverseTable, ArchiveOutboxFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ArchivePushTable, ArchivePushColumn),
	)
}
