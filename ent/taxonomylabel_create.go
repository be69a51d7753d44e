// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
	"github.com/mailscope/mailscope/ent/taxonomylabel"
)

// TaxonomyLabelCreate is the builder for creating a TaxonomyLabel entity.
type TaxonomyLabelCreate struct {
	config
	mutation *TaxonomyLabelMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLevel sets the "level" field.
func (_c *TaxonomyLabelCreate) SetLevel(v int) *TaxonomyLabelCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *TaxonomyLabelCreate) SetSlug(v string) *TaxonomyLabelCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetName sets the "name" field.
func (_c *TaxonomyLabelCreate) SetName(v string) *TaxonomyLabelCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaxonomyLabelCreate) SetDescription(v string) *TaxonomyLabelCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TaxonomyLabelCreate) SetNillableDescription(v *string) *TaxonomyLabelCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *TaxonomyLabelCreate) SetParentID(v int) *TaxonomyLabelCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *TaxonomyLabelCreate) SetNillableParentID(v *int) *TaxonomyLabelCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetRetentionDays sets the "retention_days" field.
func (_c *TaxonomyLabelCreate) SetRetentionDays(v int) *TaxonomyLabelCreate {
	_c.mutation.SetRetentionDays(v)
	return _c
}

// SetNillableRetentionDays sets the "retention_days" field if the given value is not nil.
func (_c *TaxonomyLabelCreate) SetNillableRetentionDays(v *int) *TaxonomyLabelCreate {
	if v != nil {
		_c.SetRetentionDays(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *TaxonomyLabelCreate) SetIsActive(v bool) *TaxonomyLabelCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *TaxonomyLabelCreate) SetNillableIsActive(v *bool) *TaxonomyLabelCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetGmailLabelID sets the "gmail_label_id" field.
func (_c *TaxonomyLabelCreate) SetGmailLabelID(v string) *TaxonomyLabelCreate {
	_c.mutation.SetGmailLabelID(v)
	return _c
}

// SetNillableGmailLabelID sets the "gmail_label_id" field if the given value is not nil.
func (_c *TaxonomyLabelCreate) SetNillableGmailLabelID(v *string) *TaxonomyLabelCreate {
	if v != nil {
		_c.SetGmailLabelID(*v)
	}
	return _c
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_c *TaxonomyLabelCreate) SetLastSyncAt(v time.Time) *TaxonomyLabelCreate {
	_c.mutation.SetLastSyncAt(v)
	return _c
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_c *TaxonomyLabelCreate) SetNillableLastSyncAt(v *time.Time) *TaxonomyLabelCreate {
	if v != nil {
		_c.SetLastSyncAt(*v)
	}
	return _c
}

// SetLastSyncStatus sets the "last_sync_status" field.
func (_c *TaxonomyLabelCreate) SetLastSyncStatus(v string) *TaxonomyLabelCreate {
	_c.mutation.SetLastSyncStatus(v)
	return _c
}

// SetNillableLastSyncStatus sets the "last_sync_status" field if the given value is not nil.
func (_c *TaxonomyLabelCreate) SetNillableLastSyncStatus(v *string) *TaxonomyLabelCreate {
	if v != nil {
		_c.SetLastSyncStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaxonomyLabelCreate) SetCreatedAt(v time.Time) *TaxonomyLabelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaxonomyLabelCreate) SetNillableCreatedAt(v *time.Time) *TaxonomyLabelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetParent sets the "parent" edge to the TaxonomyLabel entity.
func (_c *TaxonomyLabelCreate) SetParent(v *TaxonomyLabel) *TaxonomyLabelCreate {
	return _c.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the TaxonomyLabel entity by IDs.
func (_c *TaxonomyLabelCreate) AddChildIDs(ids ...int) *TaxonomyLabelCreate {
	_c.mutation.AddChildIDs(ids...)
	return _c
}

// AddChildren adds the "children" edges to the TaxonomyLabel entity.
func (_c *TaxonomyLabelCreate) AddChildren(v ...*TaxonomyLabel) *TaxonomyLabelCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChildIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the TaxonomyAssignment entity by IDs.
func (_c *TaxonomyLabelCreate) AddAssignmentIDs(ids ...int) *TaxonomyLabelCreate {
	_c.mutation.AddAssignmentIDs(ids...)
	return _c
}

// AddAssignments adds the "assignments" edges to the TaxonomyAssignment entity.
func (_c *TaxonomyLabelCreate) AddAssignments(v ...*TaxonomyAssignment) *TaxonomyLabelCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssignmentIDs(ids...)
}

// Mutation returns the TaxonomyLabelMutation object of the builder.
func (_c *TaxonomyLabelCreate) Mutation() *TaxonomyLabelMutation {
	return _c.mutation
}

// Save creates the TaxonomyLabel in the database.
func (_c *TaxonomyLabelCreate) Save(ctx context.Context) (*TaxonomyLabel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaxonomyLabelCreate) SaveX(ctx context.Context) *TaxonomyLabel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaxonomyLabelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaxonomyLabelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaxonomyLabelCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := taxonomylabel.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taxonomylabel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaxonomyLabelCreate) check() error {
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "TaxonomyLabel.level"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "TaxonomyLabel.slug"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "TaxonomyLabel.name"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "TaxonomyLabel.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaxonomyLabel.created_at"`)}
	}
	return nil
}

func (_c *TaxonomyLabelCreate) sqlSave(ctx context.Context) (*TaxonomyLabel, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaxonomyLabelCreate) createSpec() (*TaxonomyLabel, *sqlgraph.CreateSpec) {
	var (
		_node = &TaxonomyLabel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taxonomylabel.Table, sqlgraph.NewFieldSpec(taxonomylabel.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(taxonomylabel.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(taxonomylabel.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(taxonomylabel.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(taxonomylabel.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.RetentionDays(); ok {
		_spec.SetField(taxonomylabel.FieldRetentionDays, field.TypeInt, value)
		_node.RetentionDays = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(taxonomylabel.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.GmailLabelID(); ok {
		_spec.SetField(taxonomylabel.FieldGmailLabelID, field.TypeString, value)
		_node.GmailLabelID = &value
	}
	if value, ok := _c.mutation.LastSyncAt(); ok {
		_spec.SetField(taxonomylabel.FieldLastSyncAt, field.TypeTime, value)
		_node.LastSyncAt = &value
	}
	if value, ok := _c.mutation.LastSyncStatus(); ok {
		_spec.SetField(taxonomylabel.FieldLastSyncStatus, field.TypeString, value)
		_node.LastSyncStatus = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taxonomylabel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taxonomylabel.ParentTable,
			Columns: []string{taxonomylabel.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxonomylabel.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxonomylabel.ChildrenTable,
			Columns: []string{taxonomylabel.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxonomylabel.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxonomylabel.AssignmentsTable,
			Columns: []string{taxonomylabel.AssignmentsColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaxonomyLabel.Create().
//		SetLevel(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaxonomyLabelUpsert) {
//			SetLevel(v+v).
//		}).
//		Exec(ctx)
func (_c *TaxonomyLabelCreate) OnConflict(opts ...sql.ConflictOption) *TaxonomyLabelUpsertOne {
	_c.conflict = opts
	return &TaxonomyLabelUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaxonomyLabel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaxonomyLabelCreate) OnConflictColumns(columns ...string) *TaxonomyLabelUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaxonomyLabelUpsertOne{
		create: _c,
	}
}

type (
	// TaxonomyLabelUpsertOne is the builder for "upsert"-ing
	//  one TaxonomyLabel node.
	TaxonomyLabelUpsertOne struct {
		create *TaxonomyLabelCreate
	}

	// TaxonomyLabelUpsert is the "OnConflict" setter.
	TaxonomyLabelUpsert struct {
		*sql.UpdateSet
	}
)

// SetLevel sets the "level" field.
func (u *TaxonomyLabelUpsert) SetLevel(v int) *TaxonomyLabelUpsert {
	u.Set(taxonomylabel.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *TaxonomyLabelUpsert) UpdateLevel() *TaxonomyLabelUpsert {
	u.SetExcluded(taxonomylabel.FieldLevel)
	return u
}

// AddLevel adds v to the "level" field.
func (u *TaxonomyLabelUpsert) AddLevel(v int) *TaxonomyLabelUpsert {
	u.Add(taxonomylabel.FieldLevel, v)
	return u
}

// SetSlug sets the "slug" field.
func (u *TaxonomyLabelUpsert) SetSlug(v string) *TaxonomyLabelUpsert {
	u.Set(taxonomylabel.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *TaxonomyLabelUpsert) UpdateSlug() *TaxonomyLabelUpsert {
	u.SetExcluded(taxonomylabel.FieldSlug)
	return u
}

// SetName sets the "name" field.
func (u *TaxonomyLabelUpsert) SetName(v string) *TaxonomyLabelUpsert {
	u.Set(taxonomylabel.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TaxonomyLabelUpsert) UpdateName() *TaxonomyLabelUpsert {
	u.SetExcluded(taxonomylabel.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *TaxonomyLabelUpsert) SetDescription(v string) *TaxonomyLabelUpsert {
	u.Set(taxonomylabel.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaxonomyLabelUpsert) UpdateDescription() *TaxonomyLabelUpsert {
	u.SetExcluded(taxonomylabel.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *TaxonomyLabelUpsert) ClearDescription() *TaxonomyLabelUpsert {
	u.SetNull(taxonomylabel.FieldDescription)
	return u
}

// SetParentID sets the "parent_id" field.
func (u *TaxonomyLabelUpsert) SetParentID(v int) *TaxonomyLabelUpsert {
	u.Set(taxonomylabel.FieldParentID, v)
	return u
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *TaxonomyLabelUpsert) UpdateParentID() *TaxonomyLabelUpsert {
	u.SetExcluded(taxonomylabel.FieldParentID)
	return u
}

// ClearParentID clears the value of the "parent_id" field.
func (u *TaxonomyLabelUpsert) ClearParentID() *TaxonomyLabelUpsert {
	u.SetNull(taxonomylabel.FieldParentID)
	return u
}

// SetRetentionDays sets the "retention_days" field.
func (u *TaxonomyLabelUpsert) SetRetentionDays(v int) *TaxonomyLabelUpsert {
	u.Set(taxonomylabel.FieldRetentionDays, v)
	return u
}

// UpdateRetentionDays sets the "retention_days" field to the value that was provided on create.
func (u *TaxonomyLabelUpsert) UpdateRetentionDays() *TaxonomyLabelUpsert {
	u.SetExcluded(taxonomylabel.FieldRetentionDays)
	return u
}

// AddRetentionDays adds v to the "retention_days" field.
func (u *TaxonomyLabelUpsert) AddRetentionDays(v int) *TaxonomyLabelUpsert {
	u.Add(taxonomylabel.FieldRetentionDays, v)
	return u
}

// ClearRetentionDays clears the value of the "retention_days" field.
func (u *TaxonomyLabelUpsert) ClearRetentionDays() *TaxonomyLabelUpsert {
	u.SetNull(taxonomylabel.FieldRetentionDays)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *TaxonomyLabelUpsert) SetIsActive(v bool) *TaxonomyLabelUpsert {
	u.Set(taxonomylabel.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TaxonomyLabelUpsert) UpdateIsActive() *TaxonomyLabelUpsert {
	u.SetExcluded(taxonomylabel.FieldIsActive)
	return u
}

// SetGmailLabelID sets the "gmail_label_id" field.
func (u *TaxonomyLabelUpsert) SetGmailLabelID(v string) *TaxonomyLabelUpsert {
	u.Set(taxonomylabel.FieldGmailLabelID, v)
	return u
}

// UpdateGmailLabelID sets the "gmail_label_id" field to the value that was provided on create.
func (u *TaxonomyLabelUpsert) UpdateGmailLabelID() *TaxonomyLabelUpsert {
	u.SetExcluded(taxonomylabel.FieldGmailLabelID)
	return u
}

// ClearGmailLabelID clears the value of the "gmail_label_id" field.
func (u *TaxonomyLabelUpsert) ClearGmailLabelID() *TaxonomyLabelUpsert {
	u.SetNull(taxonomylabel.FieldGmailLabelID)
	return u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *TaxonomyLabelUpsert) SetLastSyncAt(v time.Time) *TaxonomyLabelUpsert {
	u.Set(taxonomylabel.FieldLastSyncAt, v)
	return u
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *TaxonomyLabelUpsert) UpdateLastSyncAt() *TaxonomyLabelUpsert {
	u.SetExcluded(taxonomylabel.FieldLastSyncAt)
	return u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *TaxonomyLabelUpsert) ClearLastSyncAt() *TaxonomyLabelUpsert {
	u.SetNull(taxonomylabel.FieldLastSyncAt)
	return u
}

// SetLastSyncStatus sets the "last_sync_status" field.
func (u *TaxonomyLabelUpsert) SetLastSyncStatus(v string) *TaxonomyLabelUpsert {
	u.Set(taxonomylabel.FieldLastSyncStatus, v)
	return u
}

// UpdateLastSyncStatus sets the "last_sync_status" field to the value that was provided on create.
func (u *TaxonomyLabelUpsert) UpdateLastSyncStatus() *TaxonomyLabelUpsert {
	u.SetExcluded(taxonomylabel.FieldLastSyncStatus)
	return u
}

// ClearLastSyncStatus clears the value of the "last_sync_status" field.
func (u *TaxonomyLabelUpsert) ClearLastSyncStatus() *TaxonomyLabelUpsert {
	u.SetNull(taxonomylabel.FieldLastSyncStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TaxonomyLabel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaxonomyLabelUpsertOne) UpdateNewValues() *TaxonomyLabelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(taxonomylabel.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaxonomyLabel.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaxonomyLabelUpsertOne) Ignore() *TaxonomyLabelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaxonomyLabelUpsertOne) DoNothing() *TaxonomyLabelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaxonomyLabelCreate.OnConflict
// documentation for more info.
func (u *TaxonomyLabelUpsertOne) Update(set func(*TaxonomyLabelUpsert)) *TaxonomyLabelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaxonomyLabelUpsert{UpdateSet: update})
	}))
	return u
}

// SetLevel sets the "level" field.
func (u *TaxonomyLabelUpsertOne) SetLevel(v int) *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *TaxonomyLabelUpsertOne) AddLevel(v int) *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertOne) UpdateLevel() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateLevel()
	})
}

// SetSlug sets the "slug" field.
func (u *TaxonomyLabelUpsertOne) SetSlug(v string) *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertOne) UpdateSlug() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *TaxonomyLabelUpsertOne) SetName(v string) *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertOne) UpdateName() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *TaxonomyLabelUpsertOne) SetDescription(v string) *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertOne) UpdateDescription() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TaxonomyLabelUpsertOne) ClearDescription() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.ClearDescription()
	})
}

// SetParentID sets the "parent_id" field.
func (u *TaxonomyLabelUpsertOne) SetParentID(v int) *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertOne) UpdateParentID() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *TaxonomyLabelUpsertOne) ClearParentID() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.ClearParentID()
	})
}

// SetRetentionDays sets the "retention_days" field.
func (u *TaxonomyLabelUpsertOne) SetRetentionDays(v int) *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetRetentionDays(v)
	})
}

// AddRetentionDays adds v to the "retention_days" field.
func (u *TaxonomyLabelUpsertOne) AddRetentionDays(v int) *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.AddRetentionDays(v)
	})
}

// UpdateRetentionDays sets the "retention_days" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertOne) UpdateRetentionDays() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateRetentionDays()
	})
}

// ClearRetentionDays clears the value of the "retention_days" field.
func (u *TaxonomyLabelUpsertOne) ClearRetentionDays() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.ClearRetentionDays()
	})
}

// SetIsActive sets the "is_active" field.
func (u *TaxonomyLabelUpsertOne) SetIsActive(v bool) *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertOne) UpdateIsActive() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateIsActive()
	})
}

// SetGmailLabelID sets the "gmail_label_id" field.
func (u *TaxonomyLabelUpsertOne) SetGmailLabelID(v string) *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetGmailLabelID(v)
	})
}

// UpdateGmailLabelID sets the "gmail_label_id" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertOne) UpdateGmailLabelID() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateGmailLabelID()
	})
}

// ClearGmailLabelID clears the value of the "gmail_label_id" field.
func (u *TaxonomyLabelUpsertOne) ClearGmailLabelID() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.ClearGmailLabelID()
	})
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *TaxonomyLabelUpsertOne) SetLastSyncAt(v time.Time) *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetLastSyncAt(v)
	})
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertOne) UpdateLastSyncAt() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateLastSyncAt()
	})
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *TaxonomyLabelUpsertOne) ClearLastSyncAt() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.ClearLastSyncAt()
	})
}

// SetLastSyncStatus sets the "last_sync_status" field.
func (u *TaxonomyLabelUpsertOne) SetLastSyncStatus(v string) *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetLastSyncStatus(v)
	})
}

// UpdateLastSyncStatus sets the "last_sync_status" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertOne) UpdateLastSyncStatus() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateLastSyncStatus()
	})
}

// ClearLastSyncStatus clears the value of the "last_sync_status" field.
func (u *TaxonomyLabelUpsertOne) ClearLastSyncStatus() *TaxonomyLabelUpsertOne {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.ClearLastSyncStatus()
	})
}

// Exec executes the query.
func (u *TaxonomyLabelUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaxonomyLabelCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaxonomyLabelUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaxonomyLabelUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaxonomyLabelUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaxonomyLabelCreateBulk is the builder for creating many TaxonomyLabel entities in bulk.
type TaxonomyLabelCreateBulk struct {
	config
	err      error
	builders []*TaxonomyLabelCreate
	conflict []sql.ConflictOption
}

// Save creates the TaxonomyLabel entities in the database.
func (_c *TaxonomyLabelCreateBulk) Save(ctx context.Context) ([]*TaxonomyLabel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaxonomyLabel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaxonomyLabelMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *TaxonomyLabelCreateBulk) SaveX(ctx context.Context) []*TaxonomyLabel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaxonomyLabelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaxonomyLabelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaxonomyLabel.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaxonomyLabelUpsert) {
//			SetLevel(v+v).
//		}).
//		Exec(ctx)
func (_c *TaxonomyLabelCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaxonomyLabelUpsertBulk {
	_c.conflict = opts
	return &TaxonomyLabelUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaxonomyLabel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaxonomyLabelCreateBulk) OnConflictColumns(columns ...string) *TaxonomyLabelUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaxonomyLabelUpsertBulk{
		create: _c,
	}
}

// TaxonomyLabelUpsertBulk is the builder for "upsert"-ing
// a bulk of TaxonomyLabel nodes.
type TaxonomyLabelUpsertBulk struct {
	create *TaxonomyLabelCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaxonomyLabel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaxonomyLabelUpsertBulk) UpdateNewValues() *TaxonomyLabelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(taxonomylabel.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaxonomyLabel.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaxonomyLabelUpsertBulk) Ignore() *TaxonomyLabelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaxonomyLabelUpsertBulk) DoNothing() *TaxonomyLabelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaxonomyLabelCreateBulk.OnConflict
// documentation for more info.
func (u *TaxonomyLabelUpsertBulk) Update(set func(*TaxonomyLabelUpsert)) *TaxonomyLabelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaxonomyLabelUpsert{UpdateSet: update})
	}))
	return u
}

// SetLevel sets the "level" field.
func (u *TaxonomyLabelUpsertBulk) SetLevel(v int) *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *TaxonomyLabelUpsertBulk) AddLevel(v int) *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertBulk) UpdateLevel() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateLevel()
	})
}

// SetSlug sets the "slug" field.
func (u *TaxonomyLabelUpsertBulk) SetSlug(v string) *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertBulk) UpdateSlug() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *TaxonomyLabelUpsertBulk) SetName(v string) *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertBulk) UpdateName() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *TaxonomyLabelUpsertBulk) SetDescription(v string) *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertBulk) UpdateDescription() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TaxonomyLabelUpsertBulk) ClearDescription() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.ClearDescription()
	})
}

// SetParentID sets the "parent_id" field.
func (u *TaxonomyLabelUpsertBulk) SetParentID(v int) *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertBulk) UpdateParentID() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *TaxonomyLabelUpsertBulk) ClearParentID() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.ClearParentID()
	})
}

// SetRetentionDays sets the "retention_days" field.
func (u *TaxonomyLabelUpsertBulk) SetRetentionDays(v int) *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetRetentionDays(v)
	})
}

// AddRetentionDays adds v to the "retention_days" field.
func (u *TaxonomyLabelUpsertBulk) AddRetentionDays(v int) *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.AddRetentionDays(v)
	})
}

// UpdateRetentionDays sets the "retention_days" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertBulk) UpdateRetentionDays() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateRetentionDays()
	})
}

// ClearRetentionDays clears the value of the "retention_days" field.
func (u *TaxonomyLabelUpsertBulk) ClearRetentionDays() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.ClearRetentionDays()
	})
}

// SetIsActive sets the "is_active" field.
func (u *TaxonomyLabelUpsertBulk) SetIsActive(v bool) *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertBulk) UpdateIsActive() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateIsActive()
	})
}

// SetGmailLabelID sets the "gmail_label_id" field.
func (u *TaxonomyLabelUpsertBulk) SetGmailLabelID(v string) *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetGmailLabelID(v)
	})
}

// UpdateGmailLabelID sets the "gmail_label_id" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertBulk) UpdateGmailLabelID() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateGmailLabelID()
	})
}

// ClearGmailLabelID clears the value of the "gmail_label_id" field.
func (u *TaxonomyLabelUpsertBulk) ClearGmailLabelID() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.ClearGmailLabelID()
	})
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *TaxonomyLabelUpsertBulk) SetLastSyncAt(v time.Time) *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetLastSyncAt(v)
	})
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertBulk) UpdateLastSyncAt() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateLastSyncAt()
	})
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *TaxonomyLabelUpsertBulk) ClearLastSyncAt() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.ClearLastSyncAt()
	})
}

// SetLastSyncStatus sets the "last_sync_status" field.
func (u *TaxonomyLabelUpsertBulk) SetLastSyncStatus(v string) *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.SetLastSyncStatus(v)
	})
}

// UpdateLastSyncStatus sets the "last_sync_status" field to the value that was provided on create.
func (u *TaxonomyLabelUpsertBulk) UpdateLastSyncStatus() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.UpdateLastSyncStatus()
	})
}

// ClearLastSyncStatus clears the value of the "last_sync_status" field.
func (u *TaxonomyLabelUpsertBulk) ClearLastSyncStatus() *TaxonomyLabelUpsertBulk {
	return u.Update(func(s *TaxonomyLabelUpsert) {
		s.ClearLastSyncStatus()
	})
}

// Exec executes the query.
func (u *TaxonomyLabelUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaxonomyLabelCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaxonomyLabelCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaxonomyLabelUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
