// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mailscope/mailscope/ent/archiveoutbox"
	"github.com/mailscope/mailscope/ent/emailcluster"
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/ent/labeloutbox"
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
)

// EmailMessageCreate is the builder for creating a EmailMessage entity.
type EmailMessageCreate struct {
	config
	mutation *EmailMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetThreadID sets the "thread_id" field.
func (_c *EmailMessageCreate) SetThreadID(v string) *EmailMessageCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableThreadID(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetThreadID(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *EmailMessageCreate) SetSubject(v string) *EmailMessageCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableSubject(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetSubjectNormalized sets the "subject_normalized" field.
func (_c *EmailMessageCreate) SetSubjectNormalized(v string) *EmailMessageCreate {
	_c.mutation.SetSubjectNormalized(v)
	return _c
}

// SetNillableSubjectNormalized sets the "subject_normalized" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableSubjectNormalized(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetSubjectNormalized(*v)
	}
	return _c
}

// SetFromAddress sets the "from_address" field.
func (_c *EmailMessageCreate) SetFromAddress(v string) *EmailMessageCreate {
	_c.mutation.SetFromAddress(v)
	return _c
}

// SetNillableFromAddress sets the "from_address" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableFromAddress(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetFromAddress(*v)
	}
	return _c
}

// SetFromDomain sets the "from_domain" field.
func (_c *EmailMessageCreate) SetFromDomain(v string) *EmailMessageCreate {
	_c.mutation.SetFromDomain(v)
	return _c
}

// SetNillableFromDomain sets the "from_domain" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableFromDomain(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetFromDomain(*v)
	}
	return _c
}

// SetToAddresses sets the "to_addresses" field.
func (_c *EmailMessageCreate) SetToAddresses(v []string) *EmailMessageCreate {
	_c.mutation.SetToAddresses(v)
	return _c
}

// SetCcAddresses sets the "cc_addresses" field.
func (_c *EmailMessageCreate) SetCcAddresses(v []string) *EmailMessageCreate {
	_c.mutation.SetCcAddresses(v)
	return _c
}

// SetBccAddresses sets the "bcc_addresses" field.
func (_c *EmailMessageCreate) SetBccAddresses(v []string) *EmailMessageCreate {
	_c.mutation.SetBccAddresses(v)
	return _c
}

// SetIsUnread sets the "is_unread" field.
func (_c *EmailMessageCreate) SetIsUnread(v bool) *EmailMessageCreate {
	_c.mutation.SetIsUnread(v)
	return _c
}

// SetNillableIsUnread sets the "is_unread" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableIsUnread(v *bool) *EmailMessageCreate {
	if v != nil {
		_c.SetIsUnread(*v)
	}
	return _c
}

// SetInternalDate sets the "internal_date" field.
func (_c *EmailMessageCreate) SetInternalDate(v time.Time) *EmailMessageCreate {
	_c.mutation.SetInternalDate(v)
	return _c
}

// SetNillableInternalDate sets the "internal_date" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableInternalDate(v *time.Time) *EmailMessageCreate {
	if v != nil {
		_c.SetInternalDate(*v)
	}
	return _c
}

// SetLabelIds sets the "label_ids" field.
func (_c *EmailMessageCreate) SetLabelIds(v []string) *EmailMessageCreate {
	_c.mutation.SetLabelIds(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *EmailMessageCreate) SetCategory(v string) *EmailMessageCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableCategory(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *EmailMessageCreate) SetSubcategory(v string) *EmailMessageCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableSubcategory(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetSubcategory(*v)
	}
	return _c
}

// SetLabelVersion sets the "label_version" field.
func (_c *EmailMessageCreate) SetLabelVersion(v string) *EmailMessageCreate {
	_c.mutation.SetLabelVersion(v)
	return _c
}

// SetNillableLabelVersion sets the "label_version" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableLabelVersion(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetLabelVersion(*v)
	}
	return _c
}

// SetClusterID sets the "cluster_id" field.
func (_c *EmailMessageCreate) SetClusterID(v string) *EmailMessageCreate {
	_c.mutation.SetClusterID(v)
	return _c
}

// SetNillableClusterID sets the "cluster_id" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableClusterID(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetClusterID(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *EmailMessageCreate) SetArchivedAt(v time.Time) *EmailMessageCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableArchivedAt(v *time.Time) *EmailMessageCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetInboxRemovedAt sets the "inbox_removed_at" field.
func (_c *EmailMessageCreate) SetInboxRemovedAt(v time.Time) *EmailMessageCreate {
	_c.mutation.SetInboxRemovedAt(v)
	return _c
}

// SetNillableInboxRemovedAt sets the "inbox_removed_at" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableInboxRemovedAt(v *time.Time) *EmailMessageCreate {
	if v != nil {
		_c.SetInboxRemovedAt(*v)
	}
	return _c
}

// SetLifecycleState sets the "lifecycle_state" field.
func (_c *EmailMessageCreate) SetLifecycleState(v emailmessage.LifecycleState) *EmailMessageCreate {
	_c.mutation.SetLifecycleState(v)
	return _c
}

// SetNillableLifecycleState sets the "lifecycle_state" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableLifecycleState(v *emailmessage.LifecycleState) *EmailMessageCreate {
	if v != nil {
		_c.SetLifecycleState(*v)
	}
	return _c
}

// SetTrashedAt sets the "trashed_at" field.
func (_c *EmailMessageCreate) SetTrashedAt(v time.Time) *EmailMessageCreate {
	_c.mutation.SetTrashedAt(v)
	return _c
}

// SetNillableTrashedAt sets the "trashed_at" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableTrashedAt(v *time.Time) *EmailMessageCreate {
	if v != nil {
		_c.SetTrashedAt(*v)
	}
	return _c
}

// SetExpiryAt sets the "expiry_at" field.
func (_c *EmailMessageCreate) SetExpiryAt(v time.Time) *EmailMessageCreate {
	_c.mutation.SetExpiryAt(v)
	return _c
}

// SetNillableExpiryAt sets the "expiry_at" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableExpiryAt(v *time.Time) *EmailMessageCreate {
	if v != nil {
		_c.SetExpiryAt(*v)
	}
	return _c
}

// SetTrashedByPolicyID sets the "trashed_by_policy_id" field.
func (_c *EmailMessageCreate) SetTrashedByPolicyID(v string) *EmailMessageCreate {
	_c.mutation.SetTrashedByPolicyID(v)
	return _c
}

// SetNillableTrashedByPolicyID sets the "trashed_by_policy_id" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableTrashedByPolicyID(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetTrashedByPolicyID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmailMessageCreate) SetCreatedAt(v time.Time) *EmailMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableCreatedAt(v *time.Time) *EmailMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmailMessageCreate) SetID(v string) *EmailMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCluster sets the "cluster" edge to the EmailCluster entity.
func (_c *EmailMessageCreate) SetCluster(v *EmailCluster) *EmailMessageCreate {
	return _c.SetClusterID(v.ID)
}

// SetAssignmentID sets the "assignment" edge to the TaxonomyAssignment entity by ID.
func (_c *EmailMessageCreate) SetAssignmentID(id int) *EmailMessageCreate {
	_c.mutation.SetAssignmentID(id)
	return _c
}

// SetNillableAssignmentID sets the "assignment" edge to the TaxonomyAssignment entity by ID if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableAssignmentID(id *int) *EmailMessageCreate {
	if id != nil {
		_c = _c.SetAssignmentID(*id)
	}
	return _c
}

// SetAssignment sets the "assignment" edge to the TaxonomyAssignment entity.
func (_c *EmailMessageCreate) SetAssignment(v *TaxonomyAssignment) *EmailMessageCreate {
	return _c.SetAssignmentID(v.ID)
}

// AddLabelPushIDs adds the "label_pushes" edge to the LabelOutbox entity by IDs.
func (_c *EmailMessageCreate) AddLabelPushIDs(ids ...int) *EmailMessageCreate {
	_c.mutation.AddLabelPushIDs(ids...)
	return _c
}

// AddLabelPushes adds the "label_pushes" edges to the LabelOutbox entity.
func (_c *EmailMessageCreate) AddLabelPushes(v ...*LabelOutbox) *EmailMessageCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLabelPushIDs(ids...)
}

// SetArchivePushID sets the "archive_push" edge to the ArchiveOutbox entity by ID.
func (_c *EmailMessageCreate) SetArchivePushID(id int) *EmailMessageCreate {
	_c.mutation.SetArchivePushID(id)
	return _c
}

// SetNillableArchivePushID sets the "archive_push" edge to the ArchiveOutbox entity by ID if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableArchivePushID(id *int) *EmailMessageCreate {
	if id != nil {
		_c = _c.SetArchivePushID(*id)
	}
	return _c
}

// SetArchivePush sets the "archive_push" edge to the ArchiveOutbox entity.
func (_c *EmailMessageCreate) SetArchivePush(v *ArchiveOutbox) *EmailMessageCreate {
	return _c.SetArchivePushID(v.ID)
}

// Mutation returns the EmailMessageMutation object of the builder.
func (_c *EmailMessageCreate) Mutation() *EmailMessageMutation {
	return _c.mutation
}

// Save creates the EmailMessage in the database.
func (_c *EmailMessageCreate) Save(ctx context.Context) (*EmailMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailMessageCreate) SaveX(ctx context.Context) *EmailMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmailMessageCreate) defaults() {
	if _, ok := _c.mutation.IsUnread(); !ok {
		v := emailmessage.DefaultIsUnread
		_c.mutation.SetIsUnread(v)
	}
	if _, ok := _c.mutation.LifecycleState(); !ok {
		v := emailmessage.DefaultLifecycleState
		_c.mutation.SetLifecycleState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := emailmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailMessageCreate) check() error {
	if _, ok := _c.mutation.IsUnread(); !ok {
		return &ValidationError{Name: "is_unread", err: errors.New(`ent: missing required field "EmailMessage.is_unread"`)}
	}
	if _, ok := _c.mutation.LifecycleState(); !ok {
		return &ValidationError{Name: "lifecycle_state", err: errors.New(`ent: missing required field "EmailMessage.lifecycle_state"`)}
	}
	if v, ok := _c.mutation.LifecycleState(); ok {
		if err := emailmessage.LifecycleStateValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_state", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.lifecycle_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EmailMessage.created_at"`)}
	}
	return nil
}

func (_c *EmailMessageCreate) sqlSave(ctx context.Context) (*EmailMessage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected EmailMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EmailMessageCreate) createSpec() (*EmailMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &EmailMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emailmessage.Table, sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(emailmessage.FieldThreadID, field.TypeString, value)
		_node.ThreadID = &value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(emailmessage.FieldSubject, field.TypeString, value)
		_node.Subject = &value
	}
	if value, ok := _c.mutation.SubjectNormalized(); ok {
		_spec.SetField(emailmessage.FieldSubjectNormalized, field.TypeString, value)
		_node.SubjectNormalized = &value
	}
	if value, ok := _c.mutation.FromAddress(); ok {
		_spec.SetField(emailmessage.FieldFromAddress, field.TypeString, value)
		_node.FromAddress = &value
	}
	if value, ok := _c.mutation.FromDomain(); ok {
		_spec.SetField(emailmessage.FieldFromDomain, field.TypeString, value)
		_node.FromDomain = &value
	}
	if value, ok := _c.mutation.ToAddresses(); ok {
		_spec.SetField(emailmessage.FieldToAddresses, field.TypeJSON, value)
		_node.ToAddresses = value
	}
	if value, ok := _c.mutation.CcAddresses(); ok {
		_spec.SetField(emailmessage.FieldCcAddresses, field.TypeJSON, value)
		_node.CcAddresses = value
	}
	if value, ok := _c.mutation.BccAddresses(); ok {
		_spec.SetField(emailmessage.FieldBccAddresses, field.TypeJSON, value)
		_node.BccAddresses = value
	}
	if value, ok := _c.mutation.IsUnread(); ok {
		_spec.SetField(emailmessage.FieldIsUnread, field.TypeBool, value)
		_node.IsUnread = value
	}
	if value, ok := _c.mutation.InternalDate(); ok {
		_spec.SetField(emailmessage.FieldInternalDate, field.TypeTime, value)
		_node.InternalDate = &value
	}
	if value, ok := _c.mutation.LabelIds(); ok {
		_spec.SetField(emailmessage.FieldLabelIds, field.TypeJSON, value)
		_node.LabelIds = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(emailmessage.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(emailmessage.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = &value
	}
	if value, ok := _c.mutation.LabelVersion(); ok {
		_spec.SetField(emailmessage.FieldLabelVersion, field.TypeString, value)
		_node.LabelVersion = &value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(emailmessage.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	if value, ok := _c.mutation.InboxRemovedAt(); ok {
		_spec.SetField(emailmessage.FieldInboxRemovedAt, field.TypeTime, value)
		_node.InboxRemovedAt = &value
	}
	if value, ok := _c.mutation.LifecycleState(); ok {
		_spec.SetField(emailmessage.FieldLifecycleState, field.TypeEnum, value)
		_node.LifecycleState = value
	}
	if value, ok := _c.mutation.TrashedAt(); ok {
		_spec.SetField(emailmessage.FieldTrashedAt, field.TypeTime, value)
		_node.TrashedAt = &value
	}
	if value, ok := _c.mutation.ExpiryAt(); ok {
		_spec.SetField(emailmessage.FieldExpiryAt, field.TypeTime, value)
		_node.ExpiryAt = &value
	}
	if value, ok := _c.mutation.TrashedByPolicyID(); ok {
		_spec.SetField(emailmessage.FieldTrashedByPolicyID, field.TypeString, value)
		_node.TrashedByPolicyID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(emailmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClusterIDs(); len(nodes) > 0 {
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
		_node.ClusterID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignmentIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LabelPushesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArchivePushIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmailMessage.Create().
//		SetThreadID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmailMessageUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *EmailMessageCreate) OnConflict(opts ...sql.ConflictOption) *EmailMessageUpsertOne {
	_c.conflict = opts
	return &EmailMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmailMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmailMessageCreate) OnConflictColumns(columns ...string) *EmailMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmailMessageUpsertOne{
		create: _c,
	}
}

type (
	// EmailMessageUpsertOne is the builder for "upsert"-ing
	//  one EmailMessage node.
	EmailMessageUpsertOne struct {
		create *EmailMessageCreate
	}

	// EmailMessageUpsert is the "OnConflict" setter.
	EmailMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetThreadID sets the "thread_id" field.
func (u *EmailMessageUpsert) SetThreadID(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldThreadID, v)
	return u
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateThreadID() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldThreadID)
	return u
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *EmailMessageUpsert) ClearThreadID() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldThreadID)
	return u
}

// SetSubject sets the "subject" field.
func (u *EmailMessageUpsert) SetSubject(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateSubject() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldSubject)
	return u
}

// ClearSubject clears the value of the "subject" field.
func (u *EmailMessageUpsert) ClearSubject() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldSubject)
	return u
}

// SetSubjectNormalized sets the "subject_normalized" field.
func (u *EmailMessageUpsert) SetSubjectNormalized(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldSubjectNormalized, v)
	return u
}

// UpdateSubjectNormalized sets the "subject_normalized" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateSubjectNormalized() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldSubjectNormalized)
	return u
}

// ClearSubjectNormalized clears the value of the "subject_normalized" field.
func (u *EmailMessageUpsert) ClearSubjectNormalized() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldSubjectNormalized)
	return u
}

// SetFromAddress sets the "from_address" field.
func (u *EmailMessageUpsert) SetFromAddress(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldFromAddress, v)
	return u
}

// UpdateFromAddress sets the "from_address" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateFromAddress() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldFromAddress)
	return u
}

// ClearFromAddress clears the value of the "from_address" field.
func (u *EmailMessageUpsert) ClearFromAddress() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldFromAddress)
	return u
}

// SetFromDomain sets the "from_domain" field.
func (u *EmailMessageUpsert) SetFromDomain(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldFromDomain, v)
	return u
}

// UpdateFromDomain sets the "from_domain" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateFromDomain() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldFromDomain)
	return u
}

// ClearFromDomain clears the value of the "from_domain" field.
func (u *EmailMessageUpsert) ClearFromDomain() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldFromDomain)
	return u
}

// SetToAddresses sets the "to_addresses" field.
func (u *EmailMessageUpsert) SetToAddresses(v []string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldToAddresses, v)
	return u
}

// UpdateToAddresses sets the "to_addresses" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateToAddresses() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldToAddresses)
	return u
}

// ClearToAddresses clears the value of the "to_addresses" field.
func (u *EmailMessageUpsert) ClearToAddresses() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldToAddresses)
	return u
}

// SetCcAddresses sets the "cc_addresses" field.
func (u *EmailMessageUpsert) SetCcAddresses(v []string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldCcAddresses, v)
	return u
}

// UpdateCcAddresses sets the "cc_addresses" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateCcAddresses() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldCcAddresses)
	return u
}

// ClearCcAddresses clears the value of the "cc_addresses" field.
func (u *EmailMessageUpsert) ClearCcAddresses() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldCcAddresses)
	return u
}

// SetBccAddresses sets the "bcc_addresses" field.
func (u *EmailMessageUpsert) SetBccAddresses(v []string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldBccAddresses, v)
	return u
}

// UpdateBccAddresses sets the "bcc_addresses" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateBccAddresses() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldBccAddresses)
	return u
}

// ClearBccAddresses clears the value of the "bcc_addresses" field.
func (u *EmailMessageUpsert) ClearBccAddresses() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldBccAddresses)
	return u
}

// SetIsUnread sets the "is_unread" field.
func (u *EmailMessageUpsert) SetIsUnread(v bool) *EmailMessageUpsert {
	u.Set(emailmessage.FieldIsUnread, v)
	return u
}

// UpdateIsUnread sets the "is_unread" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateIsUnread() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldIsUnread)
	return u
}

// SetInternalDate sets the "internal_date" field.
func (u *EmailMessageUpsert) SetInternalDate(v time.Time) *EmailMessageUpsert {
	u.Set(emailmessage.FieldInternalDate, v)
	return u
}

// UpdateInternalDate sets the "internal_date" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateInternalDate() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldInternalDate)
	return u
}

// ClearInternalDate clears the value of the "internal_date" field.
func (u *EmailMessageUpsert) ClearInternalDate() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldInternalDate)
	return u
}

// SetLabelIds sets the "label_ids" field.
func (u *EmailMessageUpsert) SetLabelIds(v []string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldLabelIds, v)
	return u
}

// UpdateLabelIds sets the "label_ids" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateLabelIds() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldLabelIds)
	return u
}

// ClearLabelIds clears the value of the "label_ids" field.
func (u *EmailMessageUpsert) ClearLabelIds() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldLabelIds)
	return u
}

// SetCategory sets the "category" field.
func (u *EmailMessageUpsert) SetCategory(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateCategory() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *EmailMessageUpsert) ClearCategory() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldCategory)
	return u
}

// SetSubcategory sets the "subcategory" field.
func (u *EmailMessageUpsert) SetSubcategory(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldSubcategory, v)
	return u
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateSubcategory() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldSubcategory)
	return u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *EmailMessageUpsert) ClearSubcategory() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldSubcategory)
	return u
}

// SetLabelVersion sets the "label_version" field.
func (u *EmailMessageUpsert) SetLabelVersion(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldLabelVersion, v)
	return u
}

// UpdateLabelVersion sets the "label_version" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateLabelVersion() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldLabelVersion)
	return u
}

// ClearLabelVersion clears the value of the "label_version" field.
func (u *EmailMessageUpsert) ClearLabelVersion() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldLabelVersion)
	return u
}

// SetClusterID sets the "cluster_id" field.
func (u *EmailMessageUpsert) SetClusterID(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldClusterID, v)
	return u
}

// UpdateClusterID sets the "cluster_id" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateClusterID() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldClusterID)
	return u
}

// ClearClusterID clears the value of the "cluster_id" field.
func (u *EmailMessageUpsert) ClearClusterID() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldClusterID)
	return u
}

// SetArchivedAt sets the "archived_at" field.
func (u *EmailMessageUpsert) SetArchivedAt(v time.Time) *EmailMessageUpsert {
	u.Set(emailmessage.FieldArchivedAt, v)
	return u
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateArchivedAt() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldArchivedAt)
	return u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *EmailMessageUpsert) ClearArchivedAt() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldArchivedAt)
	return u
}

// SetInboxRemovedAt sets the "inbox_removed_at" field.
func (u *EmailMessageUpsert) SetInboxRemovedAt(v time.Time) *EmailMessageUpsert {
	u.Set(emailmessage.FieldInboxRemovedAt, v)
	return u
}

// UpdateInboxRemovedAt sets the "inbox_removed_at" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateInboxRemovedAt() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldInboxRemovedAt)
	return u
}

// ClearInboxRemovedAt clears the value of the "inbox_removed_at" field.
func (u *EmailMessageUpsert) ClearInboxRemovedAt() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldInboxRemovedAt)
	return u
}

// SetLifecycleState sets the "lifecycle_state" field.
func (u *EmailMessageUpsert) SetLifecycleState(v emailmessage.LifecycleState) *EmailMessageUpsert {
	u.Set(emailmessage.FieldLifecycleState, v)
	return u
}

// UpdateLifecycleState sets the "lifecycle_state" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateLifecycleState() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldLifecycleState)
	return u
}

// SetTrashedAt sets the "trashed_at" field.
func (u *EmailMessageUpsert) SetTrashedAt(v time.Time) *EmailMessageUpsert {
	u.Set(emailmessage.FieldTrashedAt, v)
	return u
}

// UpdateTrashedAt sets the "trashed_at" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateTrashedAt() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldTrashedAt)
	return u
}

// ClearTrashedAt clears the value of the "trashed_at" field.
func (u *EmailMessageUpsert) ClearTrashedAt() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldTrashedAt)
	return u
}

// SetExpiryAt sets the "expiry_at" field.
func (u *EmailMessageUpsert) SetExpiryAt(v time.Time) *EmailMessageUpsert {
	u.Set(emailmessage.FieldExpiryAt, v)
	return u
}

// UpdateExpiryAt sets the "expiry_at" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateExpiryAt() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldExpiryAt)
	return u
}

// ClearExpiryAt clears the value of the "expiry_at" field.
func (u *EmailMessageUpsert) ClearExpiryAt() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldExpiryAt)
	return u
}

// SetTrashedByPolicyID sets the "trashed_by_policy_id" field.
func (u *EmailMessageUpsert) SetTrashedByPolicyID(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldTrashedByPolicyID, v)
	return u
}

// UpdateTrashedByPolicyID sets the "trashed_by_policy_id" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateTrashedByPolicyID() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldTrashedByPolicyID)
	return u
}

// ClearTrashedByPolicyID clears the value of the "trashed_by_policy_id" field.
func (u *EmailMessageUpsert) ClearTrashedByPolicyID() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldTrashedByPolicyID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EmailMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(emailmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmailMessageUpsertOne) UpdateNewValues() *EmailMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(emailmessage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(emailmessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmailMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EmailMessageUpsertOne) Ignore() *EmailMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmailMessageUpsertOne) DoNothing() *EmailMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmailMessageCreate.OnConflict
// documentation for more info.
func (u *EmailMessageUpsertOne) Update(set func(*EmailMessageUpsert)) *EmailMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmailMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetThreadID sets the "thread_id" field.
func (u *EmailMessageUpsertOne) SetThreadID(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateThreadID() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateThreadID()
	})
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *EmailMessageUpsertOne) ClearThreadID() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearThreadID()
	})
}

// SetSubject sets the "subject" field.
func (u *EmailMessageUpsertOne) SetSubject(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateSubject() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *EmailMessageUpsertOne) ClearSubject() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearSubject()
	})
}

// SetSubjectNormalized sets the "subject_normalized" field.
func (u *EmailMessageUpsertOne) SetSubjectNormalized(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetSubjectNormalized(v)
	})
}

// UpdateSubjectNormalized sets the "subject_normalized" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateSubjectNormalized() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateSubjectNormalized()
	})
}

// ClearSubjectNormalized clears the value of the "subject_normalized" field.
func (u *EmailMessageUpsertOne) ClearSubjectNormalized() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearSubjectNormalized()
	})
}

// SetFromAddress sets the "from_address" field.
func (u *EmailMessageUpsertOne) SetFromAddress(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetFromAddress(v)
	})
}

// UpdateFromAddress sets the "from_address" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateFromAddress() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateFromAddress()
	})
}

// ClearFromAddress clears the value of the "from_address" field.
func (u *EmailMessageUpsertOne) ClearFromAddress() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearFromAddress()
	})
}

// SetFromDomain sets the "from_domain" field.
func (u *EmailMessageUpsertOne) SetFromDomain(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetFromDomain(v)
	})
}

// UpdateFromDomain sets the "from_domain" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateFromDomain() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateFromDomain()
	})
}

// ClearFromDomain clears the value of the "from_domain" field.
func (u *EmailMessageUpsertOne) ClearFromDomain() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearFromDomain()
	})
}

// SetToAddresses sets the "to_addresses" field.
func (u *EmailMessageUpsertOne) SetToAddresses(v []string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetToAddresses(v)
	})
}

// UpdateToAddresses sets the "to_addresses" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateToAddresses() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateToAddresses()
	})
}

// ClearToAddresses clears the value of the "to_addresses" field.
func (u *EmailMessageUpsertOne) ClearToAddresses() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearToAddresses()
	})
}

// SetCcAddresses sets the "cc_addresses" field.
func (u *EmailMessageUpsertOne) SetCcAddresses(v []string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetCcAddresses(v)
	})
}

// UpdateCcAddresses sets the "cc_addresses" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateCcAddresses() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateCcAddresses()
	})
}

// ClearCcAddresses clears the value of the "cc_addresses" field.
func (u *EmailMessageUpsertOne) ClearCcAddresses() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearCcAddresses()
	})
}

// SetBccAddresses sets the "bcc_addresses" field.
func (u *EmailMessageUpsertOne) SetBccAddresses(v []string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetBccAddresses(v)
	})
}

// UpdateBccAddresses sets the "bcc_addresses" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateBccAddresses() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateBccAddresses()
	})
}

// ClearBccAddresses clears the value of the "bcc_addresses" field.
func (u *EmailMessageUpsertOne) ClearBccAddresses() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearBccAddresses()
	})
}

// SetIsUnread sets the "is_unread" field.
func (u *EmailMessageUpsertOne) SetIsUnread(v bool) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetIsUnread(v)
	})
}

// UpdateIsUnread sets the "is_unread" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateIsUnread() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateIsUnread()
	})
}

// SetInternalDate sets the "internal_date" field.
func (u *EmailMessageUpsertOne) SetInternalDate(v time.Time) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetInternalDate(v)
	})
}

// UpdateInternalDate sets the "internal_date" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateInternalDate() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateInternalDate()
	})
}

// ClearInternalDate clears the value of the "internal_date" field.
func (u *EmailMessageUpsertOne) ClearInternalDate() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearInternalDate()
	})
}

// SetLabelIds sets the "label_ids" field.
func (u *EmailMessageUpsertOne) SetLabelIds(v []string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetLabelIds(v)
	})
}

// UpdateLabelIds sets the "label_ids" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateLabelIds() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateLabelIds()
	})
}

// ClearLabelIds clears the value of the "label_ids" field.
func (u *EmailMessageUpsertOne) ClearLabelIds() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearLabelIds()
	})
}

// SetCategory sets the "category" field.
func (u *EmailMessageUpsertOne) SetCategory(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateCategory() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *EmailMessageUpsertOne) ClearCategory() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearCategory()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *EmailMessageUpsertOne) SetSubcategory(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateSubcategory() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateSubcategory()
	})
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *EmailMessageUpsertOne) ClearSubcategory() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearSubcategory()
	})
}

// SetLabelVersion sets the "label_version" field.
func (u *EmailMessageUpsertOne) SetLabelVersion(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetLabelVersion(v)
	})
}

// UpdateLabelVersion sets the "label_version" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateLabelVersion() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateLabelVersion()
	})
}

// ClearLabelVersion clears the value of the "label_version" field.
func (u *EmailMessageUpsertOne) ClearLabelVersion() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearLabelVersion()
	})
}

// SetClusterID sets the "cluster_id" field.
func (u *EmailMessageUpsertOne) SetClusterID(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetClusterID(v)
	})
}

// UpdateClusterID sets the "cluster_id" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateClusterID() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateClusterID()
	})
}

// ClearClusterID clears the value of the "cluster_id" field.
func (u *EmailMessageUpsertOne) ClearClusterID() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearClusterID()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *EmailMessageUpsertOne) SetArchivedAt(v time.Time) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateArchivedAt() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *EmailMessageUpsertOne) ClearArchivedAt() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearArchivedAt()
	})
}

// SetInboxRemovedAt sets the "inbox_removed_at" field.
func (u *EmailMessageUpsertOne) SetInboxRemovedAt(v time.Time) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetInboxRemovedAt(v)
	})
}

// UpdateInboxRemovedAt sets the "inbox_removed_at" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateInboxRemovedAt() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateInboxRemovedAt()
	})
}

// ClearInboxRemovedAt clears the value of the "inbox_removed_at" field.
func (u *EmailMessageUpsertOne) ClearInboxRemovedAt() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearInboxRemovedAt()
	})
}

// SetLifecycleState sets the "lifecycle_state" field.
func (u *EmailMessageUpsertOne) SetLifecycleState(v emailmessage.LifecycleState) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetLifecycleState(v)
	})
}

// UpdateLifecycleState sets the "lifecycle_state" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateLifecycleState() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateLifecycleState()
	})
}

// SetTrashedAt sets the "trashed_at" field.
func (u *EmailMessageUpsertOne) SetTrashedAt(v time.Time) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetTrashedAt(v)
	})
}

// UpdateTrashedAt sets the "trashed_at" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateTrashedAt() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateTrashedAt()
	})
}

// ClearTrashedAt clears the value of the "trashed_at" field.
func (u *EmailMessageUpsertOne) ClearTrashedAt() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearTrashedAt()
	})
}

// SetExpiryAt sets the "expiry_at" field.
func (u *EmailMessageUpsertOne) SetExpiryAt(v time.Time) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetExpiryAt(v)
	})
}

// UpdateExpiryAt sets the "expiry_at" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateExpiryAt() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateExpiryAt()
	})
}

// ClearExpiryAt clears the value of the "expiry_at" field.
func (u *EmailMessageUpsertOne) ClearExpiryAt() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearExpiryAt()
	})
}

// SetTrashedByPolicyID sets the "trashed_by_policy_id" field.
func (u *EmailMessageUpsertOne) SetTrashedByPolicyID(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetTrashedByPolicyID(v)
	})
}

// UpdateTrashedByPolicyID sets the "trashed_by_policy_id" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateTrashedByPolicyID() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateTrashedByPolicyID()
	})
}

// ClearTrashedByPolicyID clears the value of the "trashed_by_policy_id" field.
func (u *EmailMessageUpsertOne) ClearTrashedByPolicyID() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearTrashedByPolicyID()
	})
}

// Exec executes the query.
func (u *EmailMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EmailMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmailMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EmailMessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EmailMessageUpsertOne.ID is not supported by MySQL driver. Use EmailMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EmailMessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EmailMessageCreateBulk is the builder for creating many EmailMessage entities in bulk.
type EmailMessageCreateBulk struct {
	config
	err      error
	builders []*EmailMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the EmailMessage entities in the database.
func (_c *EmailMessageCreateBulk) Save(ctx context.Context) ([]*EmailMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmailMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailMessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EmailMessageCreateBulk) SaveX(ctx context.Context) []*EmailMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmailMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmailMessageUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *EmailMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *EmailMessageUpsertBulk {
	_c.conflict = opts
	return &EmailMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmailMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmailMessageCreateBulk) OnConflictColumns(columns ...string) *EmailMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmailMessageUpsertBulk{
		create: _c,
	}
}

// EmailMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of EmailMessage nodes.
type EmailMessageUpsertBulk struct {
	create *EmailMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EmailMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(emailmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmailMessageUpsertBulk) UpdateNewValues() *EmailMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(emailmessage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(emailmessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmailMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EmailMessageUpsertBulk) Ignore() *EmailMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmailMessageUpsertBulk) DoNothing() *EmailMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmailMessageCreateBulk.OnConflict
// documentation for more info.
func (u *EmailMessageUpsertBulk) Update(set func(*EmailMessageUpsert)) *EmailMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmailMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetThreadID sets the "thread_id" field.
func (u *EmailMessageUpsertBulk) SetThreadID(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateThreadID() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateThreadID()
	})
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *EmailMessageUpsertBulk) ClearThreadID() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearThreadID()
	})
}

// SetSubject sets the "subject" field.
func (u *EmailMessageUpsertBulk) SetSubject(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateSubject() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *EmailMessageUpsertBulk) ClearSubject() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearSubject()
	})
}

// SetSubjectNormalized sets the "subject_normalized" field.
func (u *EmailMessageUpsertBulk) SetSubjectNormalized(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetSubjectNormalized(v)
	})
}

// UpdateSubjectNormalized sets the "subject_normalized" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateSubjectNormalized() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateSubjectNormalized()
	})
}

// ClearSubjectNormalized clears the value of the "subject_normalized" field.
func (u *EmailMessageUpsertBulk) ClearSubjectNormalized() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearSubjectNormalized()
	})
}

// SetFromAddress sets the "from_address" field.
func (u *EmailMessageUpsertBulk) SetFromAddress(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetFromAddress(v)
	})
}

// UpdateFromAddress sets the "from_address" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateFromAddress() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateFromAddress()
	})
}

// ClearFromAddress clears the value of the "from_address" field.
func (u *EmailMessageUpsertBulk) ClearFromAddress() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearFromAddress()
	})
}

// SetFromDomain sets the "from_domain" field.
func (u *EmailMessageUpsertBulk) SetFromDomain(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetFromDomain(v)
	})
}

// UpdateFromDomain sets the "from_domain" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateFromDomain() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateFromDomain()
	})
}

// ClearFromDomain clears the value of the "from_domain" field.
func (u *EmailMessageUpsertBulk) ClearFromDomain() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearFromDomain()
	})
}

// SetToAddresses sets the "to_addresses" field.
func (u *EmailMessageUpsertBulk) SetToAddresses(v []string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetToAddresses(v)
	})
}

// UpdateToAddresses sets the "to_addresses" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateToAddresses() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateToAddresses()
	})
}

// ClearToAddresses clears the value of the "to_addresses" field.
func (u *EmailMessageUpsertBulk) ClearToAddresses() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearToAddresses()
	})
}

// SetCcAddresses sets the "cc_addresses" field.
func (u *EmailMessageUpsertBulk) SetCcAddresses(v []string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetCcAddresses(v)
	})
}

// UpdateCcAddresses sets the "cc_addresses" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateCcAddresses() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateCcAddresses()
	})
}

// ClearCcAddresses clears the value of the "cc_addresses" field.
func (u *EmailMessageUpsertBulk) ClearCcAddresses() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearCcAddresses()
	})
}

// SetBccAddresses sets the "bcc_addresses" field.
func (u *EmailMessageUpsertBulk) SetBccAddresses(v []string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetBccAddresses(v)
	})
}

// UpdateBccAddresses sets the "bcc_addresses" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateBccAddresses() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateBccAddresses()
	})
}

// ClearBccAddresses clears the value of the "bcc_addresses" field.
func (u *EmailMessageUpsertBulk) ClearBccAddresses() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearBccAddresses()
	})
}

// SetIsUnread sets the "is_unread" field.
func (u *EmailMessageUpsertBulk) SetIsUnread(v bool) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetIsUnread(v)
	})
}

// UpdateIsUnread sets the "is_unread" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateIsUnread() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateIsUnread()
	})
}

// SetInternalDate sets the "internal_date" field.
func (u *EmailMessageUpsertBulk) SetInternalDate(v time.Time) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetInternalDate(v)
	})
}

// UpdateInternalDate sets the "internal_date" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateInternalDate() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateInternalDate()
	})
}

// ClearInternalDate clears the value of the "internal_date" field.
func (u *EmailMessageUpsertBulk) ClearInternalDate() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearInternalDate()
	})
}

// SetLabelIds sets the "label_ids" field.
func (u *EmailMessageUpsertBulk) SetLabelIds(v []string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetLabelIds(v)
	})
}

// UpdateLabelIds sets the "label_ids" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateLabelIds() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateLabelIds()
	})
}

// ClearLabelIds clears the value of the "label_ids" field.
func (u *EmailMessageUpsertBulk) ClearLabelIds() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearLabelIds()
	})
}

// SetCategory sets the "category" field.
func (u *EmailMessageUpsertBulk) SetCategory(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateCategory() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *EmailMessageUpsertBulk) ClearCategory() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearCategory()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *EmailMessageUpsertBulk) SetSubcategory(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateSubcategory() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateSubcategory()
	})
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *EmailMessageUpsertBulk) ClearSubcategory() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearSubcategory()
	})
}

// SetLabelVersion sets the "label_version" field.
func (u *EmailMessageUpsertBulk) SetLabelVersion(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetLabelVersion(v)
	})
}

// UpdateLabelVersion sets the "label_version" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateLabelVersion() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateLabelVersion()
	})
}

// ClearLabelVersion clears the value of the "label_version" field.
func (u *EmailMessageUpsertBulk) ClearLabelVersion() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearLabelVersion()
	})
}

// SetClusterID sets the "cluster_id" field.
func (u *EmailMessageUpsertBulk) SetClusterID(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetClusterID(v)
	})
}

// UpdateClusterID sets the "cluster_id" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateClusterID() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateClusterID()
	})
}

// ClearClusterID clears the value of the "cluster_id" field.
func (u *EmailMessageUpsertBulk) ClearClusterID() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearClusterID()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *EmailMessageUpsertBulk) SetArchivedAt(v time.Time) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateArchivedAt() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *EmailMessageUpsertBulk) ClearArchivedAt() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearArchivedAt()
	})
}

// SetInboxRemovedAt sets the "inbox_removed_at" field.
func (u *EmailMessageUpsertBulk) SetInboxRemovedAt(v time.Time) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetInboxRemovedAt(v)
	})
}

// UpdateInboxRemovedAt sets the "inbox_removed_at" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateInboxRemovedAt() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateInboxRemovedAt()
	})
}

// ClearInboxRemovedAt clears the value of the "inbox_removed_at" field.
func (u *EmailMessageUpsertBulk) ClearInboxRemovedAt() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearInboxRemovedAt()
	})
}

// SetLifecycleState sets the "lifecycle_state" field.
func (u *EmailMessageUpsertBulk) SetLifecycleState(v emailmessage.LifecycleState) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetLifecycleState(v)
	})
}

// UpdateLifecycleState sets the "lifecycle_state" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateLifecycleState() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateLifecycleState()
	})
}

// SetTrashedAt sets the "trashed_at" field.
func (u *EmailMessageUpsertBulk) SetTrashedAt(v time.Time) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetTrashedAt(v)
	})
}

// UpdateTrashedAt sets the "trashed_at" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateTrashedAt() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateTrashedAt()
	})
}

// ClearTrashedAt clears the value of the "trashed_at" field.
func (u *EmailMessageUpsertBulk) ClearTrashedAt() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearTrashedAt()
	})
}

// SetExpiryAt sets the "expiry_at" field.
func (u *EmailMessageUpsertBulk) SetExpiryAt(v time.Time) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetExpiryAt(v)
	})
}

// UpdateExpiryAt sets the "expiry_at" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateExpiryAt() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateExpiryAt()
	})
}

// ClearExpiryAt clears the value of the "expiry_at" field.
func (u *EmailMessageUpsertBulk) ClearExpiryAt() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearExpiryAt()
	})
}

// SetTrashedByPolicyID sets the "trashed_by_policy_id" field.
func (u *EmailMessageUpsertBulk) SetTrashedByPolicyID(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetTrashedByPolicyID(v)
	})
}

// UpdateTrashedByPolicyID sets the "trashed_by_policy_id" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateTrashedByPolicyID() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateTrashedByPolicyID()
	})
}

// ClearTrashedByPolicyID clears the value of the "trashed_by_policy_id" field.
func (u *EmailMessageUpsertBulk) ClearTrashedByPolicyID() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearTrashedByPolicyID()
	})
}

// Exec executes the query.
func (u *EmailMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EmailMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EmailMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmailMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
