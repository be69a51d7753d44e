// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mailscope/mailscope/ent/archiveoutbox"
	"github.com/mailscope/mailscope/ent/emailcluster"
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/ent/labeloutbox"
	"github.com/mailscope/mailscope/ent/predicate"
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
)

// EmailMessageUpdate is the builder for updating EmailMessage entities.
type EmailMessageUpdate struct {
	config
	hooks    []Hook
	mutation *EmailMessageMutation
}

// Where appends a list predicates to the EmailMessageUpdate builder.
func (_u *EmailMessageUpdate) Where(ps ...predicate.EmailMessage) *EmailMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *EmailMessageUpdate) SetThreadID(v string) *EmailMessageUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableThreadID(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// ClearThreadID clears the value of the "thread_id" field.
func (_u *EmailMessageUpdate) ClearThreadID() *EmailMessageUpdate {
	_u.mutation.ClearThreadID()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailMessageUpdate) SetSubject(v string) *EmailMessageUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableSubject(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *EmailMessageUpdate) ClearSubject() *EmailMessageUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetSubjectNormalized sets the "subject_normalized" field.
func (_u *EmailMessageUpdate) SetSubjectNormalized(v string) *EmailMessageUpdate {
	_u.mutation.SetSubjectNormalized(v)
	return _u
}

// SetNillableSubjectNormalized sets the "subject_normalized" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableSubjectNormalized(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetSubjectNormalized(*v)
	}
	return _u
}

// ClearSubjectNormalized clears the value of the "subject_normalized" field.
func (_u *EmailMessageUpdate) ClearSubjectNormalized() *EmailMessageUpdate {
	_u.mutation.ClearSubjectNormalized()
	return _u
}

// SetFromAddress sets the "from_address" field.
func (_u *EmailMessageUpdate) SetFromAddress(v string) *EmailMessageUpdate {
	_u.mutation.SetFromAddress(v)
	return _u
}

// SetNillableFromAddress sets the "from_address" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableFromAddress(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetFromAddress(*v)
	}
	return _u
}

// ClearFromAddress clears the value of the "from_address" field.
func (_u *EmailMessageUpdate) ClearFromAddress() *EmailMessageUpdate {
	_u.mutation.ClearFromAddress()
	return _u
}

// SetFromDomain sets the "from_domain" field.
func (_u *EmailMessageUpdate) SetFromDomain(v string) *EmailMessageUpdate {
	_u.mutation.SetFromDomain(v)
	return _u
}

// SetNillableFromDomain sets the "from_domain" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableFromDomain(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetFromDomain(*v)
	}
	return _u
}

// ClearFromDomain clears the value of the "from_domain" field.
func (_u *EmailMessageUpdate) ClearFromDomain() *EmailMessageUpdate {
	_u.mutation.ClearFromDomain()
	return _u
}

// SetToAddresses sets the "to_addresses" field.
func (_u *EmailMessageUpdate) SetToAddresses(v []string) *EmailMessageUpdate {
	_u.mutation.SetToAddresses(v)
	return _u
}

// AppendToAddresses appends value to the "to_addresses" field.
func (_u *EmailMessageUpdate) AppendToAddresses(v []string) *EmailMessageUpdate {
	_u.mutation.AppendToAddresses(v)
	return _u
}

// ClearToAddresses clears the value of the "to_addresses" field.
func (_u *EmailMessageUpdate) ClearToAddresses() *EmailMessageUpdate {
	_u.mutation.ClearToAddresses()
	return _u
}

// SetCcAddresses sets the "cc_addresses" field.
func (_u *EmailMessageUpdate) SetCcAddresses(v []string) *EmailMessageUpdate {
	_u.mutation.SetCcAddresses(v)
	return _u
}

// AppendCcAddresses appends value to the "cc_addresses" field.
func (_u *EmailMessageUpdate) AppendCcAddresses(v []string) *EmailMessageUpdate {
	_u.mutation.AppendCcAddresses(v)
	return _u
}

// ClearCcAddresses clears the value of the "cc_addresses" field.
func (_u *EmailMessageUpdate) ClearCcAddresses() *EmailMessageUpdate {
	_u.mutation.ClearCcAddresses()
	return _u
}

// SetBccAddresses sets the "bcc_addresses" field.
func (_u *EmailMessageUpdate) SetBccAddresses(v []string) *EmailMessageUpdate {
	_u.mutation.SetBccAddresses(v)
	return _u
}

// AppendBccAddresses appends value to the "bcc_addresses" field.
func (_u *EmailMessageUpdate) AppendBccAddresses(v []string) *EmailMessageUpdate {
	_u.mutation.AppendBccAddresses(v)
	return _u
}

// ClearBccAddresses clears the value of the "bcc_addresses" field.
func (_u *EmailMessageUpdate) ClearBccAddresses() *EmailMessageUpdate {
	_u.mutation.ClearBccAddresses()
	return _u
}

// SetIsUnread sets the "is_unread" field.
func (_u *EmailMessageUpdate) SetIsUnread(v bool) *EmailMessageUpdate {
	_u.mutation.SetIsUnread(v)
	return _u
}

// SetNillableIsUnread sets the "is_unread" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableIsUnread(v *bool) *EmailMessageUpdate {
	if v != nil {
		_u.SetIsUnread(*v)
	}
	return _u
}

// SetInternalDate sets the "internal_date" field.
func (_u *EmailMessageUpdate) SetInternalDate(v time.Time) *EmailMessageUpdate {
	_u.mutation.SetInternalDate(v)
	return _u
}

// SetNillableInternalDate sets the "internal_date" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableInternalDate(v *time.Time) *EmailMessageUpdate {
	if v != nil {
		_u.SetInternalDate(*v)
	}
	return _u
}

// ClearInternalDate clears the value of the "internal_date" field.
func (_u *EmailMessageUpdate) ClearInternalDate() *EmailMessageUpdate {
	_u.mutation.ClearInternalDate()
	return _u
}

// SetLabelIds sets the "label_ids" field.
func (_u *EmailMessageUpdate) SetLabelIds(v []string) *EmailMessageUpdate {
	_u.mutation.SetLabelIds(v)
	return _u
}

// AppendLabelIds appends value to the "label_ids" field.
func (_u *EmailMessageUpdate) AppendLabelIds(v []string) *EmailMessageUpdate {
	_u.mutation.AppendLabelIds(v)
	return _u
}

// ClearLabelIds clears the value of the "label_ids" field.
func (_u *EmailMessageUpdate) ClearLabelIds() *EmailMessageUpdate {
	_u.mutation.ClearLabelIds()
	return _u
}

// SetCategory sets the "category" field.
func (_u *EmailMessageUpdate) SetCategory(v string) *EmailMessageUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableCategory(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *EmailMessageUpdate) ClearCategory() *EmailMessageUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *EmailMessageUpdate) SetSubcategory(v string) *EmailMessageUpdate {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableSubcategory(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *EmailMessageUpdate) ClearSubcategory() *EmailMessageUpdate {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetLabelVersion sets the "label_version" field.
func (_u *EmailMessageUpdate) SetLabelVersion(v string) *EmailMessageUpdate {
	_u.mutation.SetLabelVersion(v)
	return _u
}

// SetNillableLabelVersion sets the "label_version" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableLabelVersion(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetLabelVersion(*v)
	}
	return _u
}

// ClearLabelVersion clears the value of the "label_version" field.
func (_u *EmailMessageUpdate) ClearLabelVersion() *EmailMessageUpdate {
	_u.mutation.ClearLabelVersion()
	return _u
}

// SetClusterID sets the "cluster_id" field.
func (_u *EmailMessageUpdate) SetClusterID(v string) *EmailMessageUpdate {
	_u.mutation.SetClusterID(v)
	return _u
}

// SetNillableClusterID sets the "cluster_id" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableClusterID(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetClusterID(*v)
	}
	return _u
}

// ClearClusterID clears the value of the "cluster_id" field.
func (_u *EmailMessageUpdate) ClearClusterID() *EmailMessageUpdate {
	_u.mutation.ClearClusterID()
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *EmailMessageUpdate) SetArchivedAt(v time.Time) *EmailMessageUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableArchivedAt(v *time.Time) *EmailMessageUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *EmailMessageUpdate) ClearArchivedAt() *EmailMessageUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetInboxRemovedAt sets the "inbox_removed_at" field.
func (_u *EmailMessageUpdate) SetInboxRemovedAt(v time.Time) *EmailMessageUpdate {
	_u.mutation.SetInboxRemovedAt(v)
	return _u
}

// SetNillableInboxRemovedAt sets the "inbox_removed_at" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableInboxRemovedAt(v *time.Time) *EmailMessageUpdate {
	if v != nil {
		_u.SetInboxRemovedAt(*v)
	}
	return _u
}

// ClearInboxRemovedAt clears the value of the "inbox_removed_at" field.
func (_u *EmailMessageUpdate) ClearInboxRemovedAt() *EmailMessageUpdate {
	_u.mutation.ClearInboxRemovedAt()
	return _u
}

// SetLifecycleState sets the "lifecycle_state" field.
func (_u *EmailMessageUpdate) SetLifecycleState(v emailmessage.LifecycleState) *EmailMessageUpdate {
	_u.mutation.SetLifecycleState(v)
	return _u
}

// SetNillableLifecycleState sets the "lifecycle_state" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableLifecycleState(v *emailmessage.LifecycleState) *EmailMessageUpdate {
	if v != nil {
		_u.SetLifecycleState(*v)
	}
	return _u
}

// SetTrashedAt sets the "trashed_at" field.
func (_u *EmailMessageUpdate) SetTrashedAt(v time.Time) *EmailMessageUpdate {
	_u.mutation.SetTrashedAt(v)
	return _u
}

// SetNillableTrashedAt sets the "trashed_at" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableTrashedAt(v *time.Time) *EmailMessageUpdate {
	if v != nil {
		_u.SetTrashedAt(*v)
	}
	return _u
}

// ClearTrashedAt clears the value of the "trashed_at" field.
func (_u *EmailMessageUpdate) ClearTrashedAt() *EmailMessageUpdate {
	_u.mutation.ClearTrashedAt()
	return _u
}

// SetExpiryAt sets the "expiry_at" field.
func (_u *EmailMessageUpdate) SetExpiryAt(v time.Time) *EmailMessageUpdate {
	_u.mutation.SetExpiryAt(v)
	return _u
}

// SetNillableExpiryAt sets the "expiry_at" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableExpiryAt(v *time.Time) *EmailMessageUpdate {
	if v != nil {
		_u.SetExpiryAt(*v)
	}
	return _u
}

// ClearExpiryAt clears the value of the "expiry_at" field.
func (_u *EmailMessageUpdate) ClearExpiryAt() *EmailMessageUpdate {
	_u.mutation.ClearExpiryAt()
	return _u
}

// SetTrashedByPolicyID sets the "trashed_by_policy_id" field.
func (_u *EmailMessageUpdate) SetTrashedByPolicyID(v string) *EmailMessageUpdate {
	_u.mutation.SetTrashedByPolicyID(v)
	return _u
}

// SetNillableTrashedByPolicyID sets the "trashed_by_policy_id" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableTrashedByPolicyID(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetTrashedByPolicyID(*v)
	}
	return _u
}

// ClearTrashedByPolicyID clears the value of the "trashed_by_policy_id" field.
func (_u *EmailMessageUpdate) ClearTrashedByPolicyID() *EmailMessageUpdate {
	_u.mutation.ClearTrashedByPolicyID()
	return _u
}

// SetCluster sets the "cluster" edge to the EmailCluster entity.
func (_u *EmailMessageUpdate) SetCluster(v *EmailCluster) *EmailMessageUpdate {
	return _u.SetClusterID(v.ID)
}

// SetAssignmentID sets the "assignment" edge to the TaxonomyAssignment entity by ID.
func (_u *EmailMessageUpdate) SetAssignmentID(id int) *EmailMessageUpdate {
	_u.mutation.SetAssignmentID(id)
	return _u
}

// SetNillableAssignmentID sets the "assignment" edge to the TaxonomyAssignment entity by ID if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableAssignmentID(id *int) *EmailMessageUpdate {
	if id != nil {
		_u = _u.SetAssignmentID(*id)
	}
	return _u
}

// SetAssignment sets the "assignment" edge to the TaxonomyAssignment entity.
func (_u *EmailMessageUpdate) SetAssignment(v *TaxonomyAssignment) *EmailMessageUpdate {
	return _u.SetAssignmentID(v.ID)
}

// AddLabelPushIDs adds the "label_pushes" edge to the LabelOutbox entity by IDs.
func (_u *EmailMessageUpdate) AddLabelPushIDs(ids ...int) *EmailMessageUpdate {
	_u.mutation.AddLabelPushIDs(ids...)
	return _u
}

// AddLabelPushes adds the "label_pushes" edges to the LabelOutbox entity.
func (_u *EmailMessageUpdate) AddLabelPushes(v ...*LabelOutbox) *EmailMessageUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLabelPushIDs(ids...)
}

// SetArchivePushID sets the "archive_push" edge to the ArchiveOutbox entity by ID.
func (_u *EmailMessageUpdate) SetArchivePushID(id int) *EmailMessageUpdate {
	_u.mutation.SetArchivePushID(id)
	return _u
}

// SetNillableArchivePushID sets the "archive_push" edge to the ArchiveOutbox entity by ID if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableArchivePushID(id *int) *EmailMessageUpdate {
	if id != nil {
		_u = _u.SetArchivePushID(*id)
	}
	return _u
}

// SetArchivePush sets the "archive_push" edge to the ArchiveOutbox entity.
func (_u *EmailMessageUpdate) SetArchivePush(v *ArchiveOutbox) *EmailMessageUpdate {
	return _u.SetArchivePushID(v.ID)
}

// Mutation returns the EmailMessageMutation object of the builder.
func (_u *EmailMessageUpdate) Mutation() *EmailMessageMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the EmailCluster entity.
func (_u *EmailMessageUpdate) ClearCluster() *EmailMessageUpdate {
	_u.mutation.ClearCluster()
	return _u
}

// ClearAssignment clears the "assignment" edge to the TaxonomyAssignment entity.
func (_u *EmailMessageUpdate) ClearAssignment() *EmailMessageUpdate {
	_u.mutation.ClearAssignment()
	return _u
}

// ClearLabelPushes clears all "label_pushes" edges to the LabelOutbox entity.
func (_u *EmailMessageUpdate) ClearLabelPushes() *EmailMessageUpdate {
	_u.mutation.ClearLabelPushes()
	return _u
}

// RemoveLabelPushIDs removes the "label_pushes" edge to LabelOutbox entities by IDs.
func (_u *EmailMessageUpdate) RemoveLabelPushIDs(ids ...int) *EmailMessageUpdate {
	_u.mutation.RemoveLabelPushIDs(ids...)
	return _u
}

// RemoveLabelPushes removes "label_pushes" edges to LabelOutbox entities.
func (_u *EmailMessageUpdate) RemoveLabelPushes(v ...*LabelOutbox) *EmailMessageUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLabelPushIDs(ids...)
}

// ClearArchivePush clears the "archive_push" edge to the ArchiveOutbox entity.
func (_u *EmailMessageUpdate) ClearArchivePush() *EmailMessageUpdate {
	_u.mutation.ClearArchivePush()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailMessageUpdate) check() error {
	if v, ok := _u.mutation.LifecycleState(); ok {
		if err := emailmessage.LifecycleStateValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_state", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.lifecycle_state": %w`, err)}
		}
	}
	return nil
}

func (_u *EmailMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailmessage.Table, emailmessage.Columns, sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(emailmessage.FieldThreadID, field.TypeString, value)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(emailmessage.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emailmessage.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(emailmessage.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.SubjectNormalized(); ok {
		_spec.SetField(emailmessage.FieldSubjectNormalized, field.TypeString, value)
	}
	if _u.mutation.SubjectNormalizedCleared() {
		_spec.ClearField(emailmessage.FieldSubjectNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.FromAddress(); ok {
		_spec.SetField(emailmessage.FieldFromAddress, field.TypeString, value)
	}
	if _u.mutation.FromAddressCleared() {
		_spec.ClearField(emailmessage.FieldFromAddress, field.TypeString)
	}
	if value, ok := _u.mutation.FromDomain(); ok {
		_spec.SetField(emailmessage.FieldFromDomain, field.TypeString, value)
	}
	if _u.mutation.FromDomainCleared() {
		_spec.ClearField(emailmessage.FieldFromDomain, field.TypeString)
	}
	if value, ok := _u.mutation.ToAddresses(); ok {
		_spec.SetField(emailmessage.FieldToAddresses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToAddresses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emailmessage.FieldToAddresses, value)
		})
	}
	if _u.mutation.ToAddressesCleared() {
		_spec.ClearField(emailmessage.FieldToAddresses, field.TypeJSON)
	}
	if value, ok := _u.mutation.CcAddresses(); ok {
		_spec.SetField(emailmessage.FieldCcAddresses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCcAddresses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emailmessage.FieldCcAddresses, value)
		})
	}
	if _u.mutation.CcAddressesCleared() {
		_spec.ClearField(emailmessage.FieldCcAddresses, field.TypeJSON)
	}
	if value, ok := _u.mutation.BccAddresses(); ok {
		_spec.SetField(emailmessage.FieldBccAddresses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBccAddresses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emailmessage.FieldBccAddresses, value)
		})
	}
	if _u.mutation.BccAddressesCleared() {
		_spec.ClearField(emailmessage.FieldBccAddresses, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsUnread(); ok {
		_spec.SetField(emailmessage.FieldIsUnread, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InternalDate(); ok {
		_spec.SetField(emailmessage.FieldInternalDate, field.TypeTime, value)
	}
	if _u.mutation.InternalDateCleared() {
		_spec.ClearField(emailmessage.FieldInternalDate, field.TypeTime)
	}
	if value, ok := _u.mutation.LabelIds(); ok {
		_spec.SetField(emailmessage.FieldLabelIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLabelIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emailmessage.FieldLabelIds, value)
		})
	}
	if _u.mutation.LabelIdsCleared() {
		_spec.ClearField(emailmessage.FieldLabelIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(emailmessage.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(emailmessage.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(emailmessage.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(emailmessage.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.LabelVersion(); ok {
		_spec.SetField(emailmessage.FieldLabelVersion, field.TypeString, value)
	}
	if _u.mutation.LabelVersionCleared() {
		_spec.ClearField(emailmessage.FieldLabelVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(emailmessage.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(emailmessage.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.InboxRemovedAt(); ok {
		_spec.SetField(emailmessage.FieldInboxRemovedAt, field.TypeTime, value)
	}
	if _u.mutation.InboxRemovedAtCleared() {
		_spec.ClearField(emailmessage.FieldInboxRemovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LifecycleState(); ok {
		_spec.SetField(emailmessage.FieldLifecycleState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TrashedAt(); ok {
		_spec.SetField(emailmessage.FieldTrashedAt, field.TypeTime, value)
	}
	if _u.mutation.TrashedAtCleared() {
		_spec.ClearField(emailmessage.FieldTrashedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiryAt(); ok {
		_spec.SetField(emailmessage.FieldExpiryAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiryAtCleared() {
		_spec.ClearField(emailmessage.FieldExpiryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TrashedByPolicyID(); ok {
		_spec.SetField(emailmessage.FieldTrashedByPolicyID, field.TypeString, value)
	}
	if _u.mutation.TrashedByPolicyIDCleared() {
		_spec.ClearField(emailmessage.FieldTrashedByPolicyID, field.TypeString)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   emailmessage.ClusterTable,
			Columns: []string{emailmessage.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailcluster.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   emailmessage.ClusterTable,
			Columns: []string{emailmessage.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailcluster.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   emailmessage.AssignmentTable,
			Columns: []string{emailmessage.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxonomyassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   emailmessage.AssignmentTable,
			Columns: []string{emailmessage.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxonomyassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LabelPushesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailmessage.LabelPushesTable,
			Columns: []string{emailmessage.LabelPushesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labeloutbox.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLabelPushesIDs(); len(nodes) > 0 && !_u.mutation.LabelPushesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailmessage.LabelPushesTable,
			Columns: []string{emailmessage.LabelPushesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labeloutbox.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabelPushesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailmessage.LabelPushesTable,
			Columns: []string{emailmessage.LabelPushesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labeloutbox.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArchivePushCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   emailmessage.ArchivePushTable,
			Columns: []string{emailmessage.ArchivePushColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(archiveoutbox.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArchivePushIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   emailmessage.ArchivePushTable,
			Columns: []string{emailmessage.ArchivePushColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(archiveoutbox.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailMessageUpdateOne is the builder for updating a single EmailMessage entity.
type EmailMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailMessageMutation
}

// SetThreadID sets the "thread_id" field.
func (_u *EmailMessageUpdateOne) SetThreadID(v string) *EmailMessageUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableThreadID(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// ClearThreadID clears the value of the "thread_id" field.
func (_u *EmailMessageUpdateOne) ClearThreadID() *EmailMessageUpdateOne {
	_u.mutation.ClearThreadID()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailMessageUpdateOne) SetSubject(v string) *EmailMessageUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableSubject(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *EmailMessageUpdateOne) ClearSubject() *EmailMessageUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetSubjectNormalized sets the "subject_normalized" field.
func (_u *EmailMessageUpdateOne) SetSubjectNormalized(v string) *EmailMessageUpdateOne {
	_u.mutation.SetSubjectNormalized(v)
	return _u
}

// SetNillableSubjectNormalized sets the "subject_normalized" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableSubjectNormalized(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetSubjectNormalized(*v)
	}
	return _u
}

// ClearSubjectNormalized clears the value of the "subject_normalized" field.
func (_u *EmailMessageUpdateOne) ClearSubjectNormalized() *EmailMessageUpdateOne {
	_u.mutation.ClearSubjectNormalized()
	return _u
}

// SetFromAddress sets the "from_address" field.
func (_u *EmailMessageUpdateOne) SetFromAddress(v string) *EmailMessageUpdateOne {
	_u.mutation.SetFromAddress(v)
	return _u
}

// SetNillableFromAddress sets the "from_address" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableFromAddress(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetFromAddress(*v)
	}
	return _u
}

// ClearFromAddress clears the value of the "from_address" field.
func (_u *EmailMessageUpdateOne) ClearFromAddress() *EmailMessageUpdateOne {
	_u.mutation.ClearFromAddress()
	return _u
}

// SetFromDomain sets the "from_domain" field.
func (_u *EmailMessageUpdateOne) SetFromDomain(v string) *EmailMessageUpdateOne {
	_u.mutation.SetFromDomain(v)
	return _u
}

// SetNillableFromDomain sets the "from_domain" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableFromDomain(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetFromDomain(*v)
	}
	return _u
}

// ClearFromDomain clears the value of the "from_domain" field.
func (_u *EmailMessageUpdateOne) ClearFromDomain() *EmailMessageUpdateOne {
	_u.mutation.ClearFromDomain()
	return _u
}

// SetToAddresses sets the "to_addresses" field.
func (_u *EmailMessageUpdateOne) SetToAddresses(v []string) *EmailMessageUpdateOne {
	_u.mutation.SetToAddresses(v)
	return _u
}

// AppendToAddresses appends value to the "to_addresses" field.
func (_u *EmailMessageUpdateOne) AppendToAddresses(v []string) *EmailMessageUpdateOne {
	_u.mutation.AppendToAddresses(v)
	return _u
}

// ClearToAddresses clears the value of the "to_addresses" field.
func (_u *EmailMessageUpdateOne) ClearToAddresses() *EmailMessageUpdateOne {
	_u.mutation.ClearToAddresses()
	return _u
}

// SetCcAddresses sets the "cc_addresses" field.
func (_u *EmailMessageUpdateOne) SetCcAddresses(v []string) *EmailMessageUpdateOne {
	_u.mutation.SetCcAddresses(v)
	return _u
}

// AppendCcAddresses appends value to the "cc_addresses" field.
func (_u *EmailMessageUpdateOne) AppendCcAddresses(v []string) *EmailMessageUpdateOne {
	_u.mutation.AppendCcAddresses(v)
	return _u
}

// ClearCcAddresses clears the value of the "cc_addresses" field.
func (_u *EmailMessageUpdateOne) ClearCcAddresses() *EmailMessageUpdateOne {
	_u.mutation.ClearCcAddresses()
	return _u
}

// SetBccAddresses sets the "bcc_addresses" field.
func (_u *EmailMessageUpdateOne) SetBccAddresses(v []string) *EmailMessageUpdateOne {
	_u.mutation.SetBccAddresses(v)
	return _u
}

// AppendBccAddresses appends value to the "bcc_addresses" field.
func (_u *EmailMessageUpdateOne) AppendBccAddresses(v []string) *EmailMessageUpdateOne {
	_u.mutation.AppendBccAddresses(v)
	return _u
}

// ClearBccAddresses clears the value of the "bcc_addresses" field.
func (_u *EmailMessageUpdateOne) ClearBccAddresses() *EmailMessageUpdateOne {
	_u.mutation.ClearBccAddresses()
	return _u
}

// SetIsUnread sets the "is_unread" field.
func (_u *EmailMessageUpdateOne) SetIsUnread(v bool) *EmailMessageUpdateOne {
	_u.mutation.SetIsUnread(v)
	return _u
}

// SetNillableIsUnread sets the "is_unread" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableIsUnread(v *bool) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetIsUnread(*v)
	}
	return _u
}

// SetInternalDate sets the "internal_date" field.
func (_u *EmailMessageUpdateOne) SetInternalDate(v time.Time) *EmailMessageUpdateOne {
	_u.mutation.SetInternalDate(v)
	return _u
}

// SetNillableInternalDate sets the "internal_date" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableInternalDate(v *time.Time) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetInternalDate(*v)
	}
	return _u
}

// ClearInternalDate clears the value of the "internal_date" field.
func (_u *EmailMessageUpdateOne) ClearInternalDate() *EmailMessageUpdateOne {
	_u.mutation.ClearInternalDate()
	return _u
}

// SetLabelIds sets the "label_ids" field.
func (_u *EmailMessageUpdateOne) SetLabelIds(v []string) *EmailMessageUpdateOne {
	_u.mutation.SetLabelIds(v)
	return _u
}

// AppendLabelIds appends value to the "label_ids" field.
func (_u *EmailMessageUpdateOne) AppendLabelIds(v []string) *EmailMessageUpdateOne {
	_u.mutation.AppendLabelIds(v)
	return _u
}

// ClearLabelIds clears the value of the "label_ids" field.
func (_u *EmailMessageUpdateOne) ClearLabelIds() *EmailMessageUpdateOne {
	_u.mutation.ClearLabelIds()
	return _u
}

// SetCategory sets the "category" field.
func (_u *EmailMessageUpdateOne) SetCategory(v string) *EmailMessageUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableCategory(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *EmailMessageUpdateOne) ClearCategory() *EmailMessageUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *EmailMessageUpdateOne) SetSubcategory(v string) *EmailMessageUpdateOne {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableSubcategory(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *EmailMessageUpdateOne) ClearSubcategory() *EmailMessageUpdateOne {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetLabelVersion sets the "label_version" field.
func (_u *EmailMessageUpdateOne) SetLabelVersion(v string) *EmailMessageUpdateOne {
	_u.mutation.SetLabelVersion(v)
	return _u
}

// SetNillableLabelVersion sets the "label_version" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableLabelVersion(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetLabelVersion(*v)
	}
	return _u
}

// ClearLabelVersion clears the value of the "label_version" field.
func (_u *EmailMessageUpdateOne) ClearLabelVersion() *EmailMessageUpdateOne {
	_u.mutation.ClearLabelVersion()
	return _u
}

// SetClusterID sets the "cluster_id" field.
func (_u *EmailMessageUpdateOne) SetClusterID(v string) *EmailMessageUpdateOne {
	_u.mutation.SetClusterID(v)
	return _u
}

// SetNillableClusterID sets the "cluster_id" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableClusterID(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetClusterID(*v)
	}
	return _u
}

// ClearClusterID clears the value of the "cluster_id" field.
func (_u *EmailMessageUpdateOne) ClearClusterID() *EmailMessageUpdateOne {
	_u.mutation.ClearClusterID()
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *EmailMessageUpdateOne) SetArchivedAt(v time.Time) *EmailMessageUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableArchivedAt(v *time.Time) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *EmailMessageUpdateOne) ClearArchivedAt() *EmailMessageUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetInboxRemovedAt sets the "inbox_removed_at" field.
func (_u *EmailMessageUpdateOne) SetInboxRemovedAt(v time.Time) *EmailMessageUpdateOne {
	_u.mutation.SetInboxRemovedAt(v)
	return _u
}

// SetNillableInboxRemovedAt sets the "inbox_removed_at" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableInboxRemovedAt(v *time.Time) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetInboxRemovedAt(*v)
	}
	return _u
}

// ClearInboxRemovedAt clears the value of the "inbox_removed_at" field.
func (_u *EmailMessageUpdateOne) ClearInboxRemovedAt() *EmailMessageUpdateOne {
	_u.mutation.ClearInboxRemovedAt()
	return _u
}

// SetLifecycleState sets the "lifecycle_state" field.
func (_u *EmailMessageUpdateOne) SetLifecycleState(v emailmessage.LifecycleState) *EmailMessageUpdateOne {
	_u.mutation.SetLifecycleState(v)
	return _u
}

// SetNillableLifecycleState sets the "lifecycle_state" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableLifecycleState(v *emailmessage.LifecycleState) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetLifecycleState(*v)
	}
	return _u
}

// SetTrashedAt sets the "trashed_at" field.
func (_u *EmailMessageUpdateOne) SetTrashedAt(v time.Time) *EmailMessageUpdateOne {
	_u.mutation.SetTrashedAt(v)
	return _u
}

// SetNillableTrashedAt sets the "trashed_at" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableTrashedAt(v *time.Time) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetTrashedAt(*v)
	}
	return _u
}

// ClearTrashedAt clears the value of the "trashed_at" field.
func (_u *EmailMessageUpdateOne) ClearTrashedAt() *EmailMessageUpdateOne {
	_u.mutation.ClearTrashedAt()
	return _u
}

// SetExpiryAt sets the "expiry_at" field.
func (_u *EmailMessageUpdateOne) SetExpiryAt(v time.Time) *EmailMessageUpdateOne {
	_u.mutation.SetExpiryAt(v)
	return _u
}

// SetNillableExpiryAt sets the "expiry_at" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableExpiryAt(v *time.Time) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetExpiryAt(*v)
	}
	return _u
}

// ClearExpiryAt clears the value of the "expiry_at" field.
func (_u *EmailMessageUpdateOne) ClearExpiryAt() *EmailMessageUpdateOne {
	_u.mutation.ClearExpiryAt()
	return _u
}

// SetTrashedByPolicyID sets the "trashed_by_policy_id" field.
func (_u *EmailMessageUpdateOne) SetTrashedByPolicyID(v string) *EmailMessageUpdateOne {
	_u.mutation.SetTrashedByPolicyID(v)
	return _u
}

// SetNillableTrashedByPolicyID sets the "trashed_by_policy_id" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableTrashedByPolicyID(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetTrashedByPolicyID(*v)
	}
	return _u
}

// ClearTrashedByPolicyID clears the value of the "trashed_by_policy_id" field.
func (_u *EmailMessageUpdateOne) ClearTrashedByPolicyID() *EmailMessageUpdateOne {
	_u.mutation.ClearTrashedByPolicyID()
	return _u
}

// SetCluster sets the "cluster" edge to the EmailCluster entity.
func (_u *EmailMessageUpdateOne) SetCluster(v *EmailCluster) *EmailMessageUpdateOne {
	return _u.SetClusterID(v.ID)
}

// SetAssignmentID sets the "assignment" edge to the TaxonomyAssignment entity by ID.
func (_u *EmailMessageUpdateOne) SetAssignmentID(id int) *EmailMessageUpdateOne {
	_u.mutation.SetAssignmentID(id)
	return _u
}

// SetNillableAssignmentID sets the "assignment" edge to the TaxonomyAssignment entity by ID if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableAssignmentID(id *int) *EmailMessageUpdateOne {
	if id != nil {
		_u = _u.SetAssignmentID(*id)
	}
	return _u
}

// SetAssignment sets the "assignment" edge to the TaxonomyAssignment entity.
func (_u *EmailMessageUpdateOne) SetAssignment(v *TaxonomyAssignment) *EmailMessageUpdateOne {
	return _u.SetAssignmentID(v.ID)
}

// AddLabelPushIDs adds the "label_pushes" edge to the LabelOutbox entity by IDs.
func (_u *EmailMessageUpdateOne) AddLabelPushIDs(ids ...int) *EmailMessageUpdateOne {
	_u.mutation.AddLabelPushIDs(ids...)
	return _u
}

// AddLabelPushes adds the "label_pushes" edges to the LabelOutbox entity.
func (_u *EmailMessageUpdateOne) AddLabelPushes(v ...*LabelOutbox) *EmailMessageUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLabelPushIDs(ids...)
}

// SetArchivePushID sets the "archive_push" edge to the ArchiveOutbox entity by ID.
func (_u *EmailMessageUpdateOne) SetArchivePushID(id int) *EmailMessageUpdateOne {
	_u.mutation.SetArchivePushID(id)
	return _u
}

// SetNillableArchivePushID sets the "archive_push" edge to the ArchiveOutbox entity by ID if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableArchivePushID(id *int) *EmailMessageUpdateOne {
	if id != nil {
		_u = _u.SetArchivePushID(*id)
	}
	return _u
}

// SetArchivePush sets the "archive_push" edge to the ArchiveOutbox entity.
func (_u *EmailMessageUpdateOne) SetArchivePush(v *ArchiveOutbox) *EmailMessageUpdateOne {
	return _u.SetArchivePushID(v.ID)
}

// Mutation returns the EmailMessageMutation object of the builder.
func (_u *EmailMessageUpdateOne) Mutation() *EmailMessageMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the EmailCluster entity.
func (_u *EmailMessageUpdateOne) ClearCluster() *EmailMessageUpdateOne {
	_u.mutation.ClearCluster()
	return _u
}

// ClearAssignment clears the "assignment" edge to the TaxonomyAssignment entity.
func (_u *EmailMessageUpdateOne) ClearAssignment() *EmailMessageUpdateOne {
	_u.mutation.ClearAssignment()
	return _u
}

// ClearLabelPushes clears all "label_pushes" edges to the LabelOutbox entity.
func (_u *EmailMessageUpdateOne) ClearLabelPushes() *EmailMessageUpdateOne {
	_u.mutation.ClearLabelPushes()
	return _u
}

// RemoveLabelPushIDs removes the "label_pushes" edge to LabelOutbox entities by IDs.
func (_u *EmailMessageUpdateOne) RemoveLabelPushIDs(ids ...int) *EmailMessageUpdateOne {
	_u.mutation.RemoveLabelPushIDs(ids...)
	return _u
}

// RemoveLabelPushes removes "label_pushes" edges to LabelOutbox entities.
func (_u *EmailMessageUpdateOne) RemoveLabelPushes(v ...*LabelOutbox) *EmailMessageUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLabelPushIDs(ids...)
}

// ClearArchivePush clears the "archive_push" edge to the ArchiveOutbox entity.
func (_u *EmailMessageUpdateOne) ClearArchivePush() *EmailMessageUpdateOne {
	_u.mutation.ClearArchivePush()
	return _u
}

// Where appends a list predicates to the EmailMessageUpdate builder.
func (_u *EmailMessageUpdateOne) Where(ps ...predicate.EmailMessage) *EmailMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailMessageUpdateOne) Select(field string, fields ...string) *EmailMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailMessage entity.
func (_u *EmailMessageUpdateOne) Save(ctx context.Context) (*EmailMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailMessageUpdateOne) SaveX(ctx context.Context) *EmailMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailMessageUpdateOne) check() error {
	if v, ok := _u.mutation.LifecycleState(); ok {
		if err := emailmessage.LifecycleStateValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_state", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.lifecycle_state": %w`, err)}
		}
	}
	return nil
}

func (_u *EmailMessageUpdateOne) sqlSave(ctx context.Context) (_node *EmailMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailmessage.Table, emailmessage.Columns, sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmailMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emailmessage.FieldID)
		for _, f := range fields {
			if !emailmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emailmessage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(emailmessage.FieldThreadID, field.TypeString, value)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(emailmessage.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emailmessage.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(emailmessage.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.SubjectNormalized(); ok {
		_spec.SetField(emailmessage.FieldSubjectNormalized, field.TypeString, value)
	}
	if _u.mutation.SubjectNormalizedCleared() {
		_spec.ClearField(emailmessage.FieldSubjectNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.FromAddress(); ok {
		_spec.SetField(emailmessage.FieldFromAddress, field.TypeString, value)
	}
	if _u.mutation.FromAddressCleared() {
		_spec.ClearField(emailmessage.FieldFromAddress, field.TypeString)
	}
	if value, ok := _u.mutation.FromDomain(); ok {
		_spec.SetField(emailmessage.FieldFromDomain, field.TypeString, value)
	}
	if _u.mutation.FromDomainCleared() {
		_spec.ClearField(emailmessage.FieldFromDomain, field.TypeString)
	}
	if value, ok := _u.mutation.ToAddresses(); ok {
		_spec.SetField(emailmessage.FieldToAddresses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToAddresses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emailmessage.FieldToAddresses, value)
		})
	}
	if _u.mutation.ToAddressesCleared() {
		_spec.ClearField(emailmessage.FieldToAddresses, field.TypeJSON)
	}
	if value, ok := _u.mutation.CcAddresses(); ok {
		_spec.SetField(emailmessage.FieldCcAddresses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCcAddresses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emailmessage.FieldCcAddresses, value)
		})
	}
	if _u.mutation.CcAddressesCleared() {
		_spec.ClearField(emailmessage.FieldCcAddresses, field.TypeJSON)
	}
	if value, ok := _u.mutation.BccAddresses(); ok {
		_spec.SetField(emailmessage.FieldBccAddresses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBccAddresses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emailmessage.FieldBccAddresses, value)
		})
	}
	if _u.mutation.BccAddressesCleared() {
		_spec.ClearField(emailmessage.FieldBccAddresses, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsUnread(); ok {
		_spec.SetField(emailmessage.FieldIsUnread, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InternalDate(); ok {
		_spec.SetField(emailmessage.FieldInternalDate, field.TypeTime, value)
	}
	if _u.mutation.InternalDateCleared() {
		_spec.ClearField(emailmessage.FieldInternalDate, field.TypeTime)
	}
	if value, ok := _u.mutation.LabelIds(); ok {
		_spec.SetField(emailmessage.FieldLabelIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLabelIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emailmessage.FieldLabelIds, value)
		})
	}
	if _u.mutation.LabelIdsCleared() {
		_spec.ClearField(emailmessage.FieldLabelIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(emailmessage.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(emailmessage.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(emailmessage.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(emailmessage.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.LabelVersion(); ok {
		_spec.SetField(emailmessage.FieldLabelVersion, field.TypeString, value)
	}
	if _u.mutation.LabelVersionCleared() {
		_spec.ClearField(emailmessage.FieldLabelVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(emailmessage.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(emailmessage.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.InboxRemovedAt(); ok {
		_spec.SetField(emailmessage.FieldInboxRemovedAt, field.TypeTime, value)
	}
	if _u.mutation.InboxRemovedAtCleared() {
		_spec.ClearField(emailmessage.FieldInboxRemovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LifecycleState(); ok {
		_spec.SetField(emailmessage.FieldLifecycleState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TrashedAt(); ok {
		_spec.SetField(emailmessage.FieldTrashedAt, field.TypeTime, value)
	}
	if _u.mutation.TrashedAtCleared() {
		_spec.ClearField(emailmessage.FieldTrashedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiryAt(); ok {
		_spec.SetField(emailmessage.FieldExpiryAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiryAtCleared() {
		_spec.ClearField(emailmessage.FieldExpiryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TrashedByPolicyID(); ok {
		_spec.SetField(emailmessage.FieldTrashedByPolicyID, field.TypeString, value)
	}
	if _u.mutation.TrashedByPolicyIDCleared() {
		_spec.ClearField(emailmessage.FieldTrashedByPolicyID, field.TypeString)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   emailmessage.ClusterTable,
			Columns: []string{emailmessage.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailcluster.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   emailmessage.ClusterTable,
			Columns: []string{emailmessage.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailcluster.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   emailmessage.AssignmentTable,
			Columns: []string{emailmessage.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxonomyassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   emailmessage.AssignmentTable,
			Columns: []string{emailmessage.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxonomyassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LabelPushesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailmessage.LabelPushesTable,
			Columns: []string{emailmessage.LabelPushesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labeloutbox.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLabelPushesIDs(); len(nodes) > 0 && !_u.mutation.LabelPushesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailmessage.LabelPushesTable,
			Columns: []string{emailmessage.LabelPushesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labeloutbox.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabelPushesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailmessage.LabelPushesTable,
			Columns: []string{emailmessage.LabelPushesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labeloutbox.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArchivePushCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   emailmessage.ArchivePushTable,
			Columns: []string{emailmessage.ArchivePushColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(archiveoutbox.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArchivePushIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   emailmessage.ArchivePushTable,
			Columns: []string{emailmessage.ArchivePushColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(archiveoutbox.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EmailMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
