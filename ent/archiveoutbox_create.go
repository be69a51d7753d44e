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
	"github.com/mailscope/mailscope/ent/archiveoutbox"
	"github.com/mailscope/mailscope/ent/emailmessage"
)

// ArchiveOutboxCreate is the builder for creating a ArchiveOutbox entity.
type ArchiveOutboxCreate struct {
	config
	mutation *ArchiveOutboxMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMessageID sets the "message_id" field.
func (_c *ArchiveOutboxCreate) SetMessageID(v string) *ArchiveOutboxCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ArchiveOutboxCreate) SetReason(v string) *ArchiveOutboxCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetPlannedFor sets the "planned_for" field.
func (_c *ArchiveOutboxCreate) SetPlannedFor(v time.Time) *ArchiveOutboxCreate {
	_c.mutation.SetPlannedFor(v)
	return _c
}

// SetNillablePlannedFor sets the "planned_for" field if the given value is not nil.
func (_c *ArchiveOutboxCreate) SetNillablePlannedFor(v *time.Time) *ArchiveOutboxCreate {
	if v != nil {
		_c.SetPlannedFor(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArchiveOutboxCreate) SetCreatedAt(v time.Time) *ArchiveOutboxCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArchiveOutboxCreate) SetNillableCreatedAt(v *time.Time) *ArchiveOutboxCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ArchiveOutboxCreate) SetProcessedAt(v time.Time) *ArchiveOutboxCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ArchiveOutboxCreate) SetNillableProcessedAt(v *time.Time) *ArchiveOutboxCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *ArchiveOutboxCreate) SetError(v string) *ArchiveOutboxCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *ArchiveOutboxCreate) SetNillableError(v *string) *ArchiveOutboxCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetMessage sets the "message" edge to the EmailMessage entity.
func (_c *ArchiveOutboxCreate) SetMessage(v *EmailMessage) *ArchiveOutboxCreate {
	return _c.SetMessageID(v.ID)
}

// Mutation returns the ArchiveOutboxMutation object of the builder.
func (_c *ArchiveOutboxCreate) Mutation() *ArchiveOutboxMutation {
	return _c.mutation
}

// Save creates the ArchiveOutbox in the database.
func (_c *ArchiveOutboxCreate) Save(ctx context.Context) (*ArchiveOutbox, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArchiveOutboxCreate) SaveX(ctx context.Context) *ArchiveOutbox {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArchiveOutboxCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArchiveOutboxCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArchiveOutboxCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := archiveoutbox.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArchiveOutboxCreate) check() error {
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "ArchiveOutbox.message_id"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "ArchiveOutbox.reason"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ArchiveOutbox.created_at"`)}
	}
	if len(_c.mutation.MessageIDs()) == 0 {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required edge "ArchiveOutbox.message"`)}
	}
	return nil
}

func (_c *ArchiveOutboxCreate) sqlSave(ctx context.Context) (*ArchiveOutbox, error) {
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

func (_c *ArchiveOutboxCreate) createSpec() (*ArchiveOutbox, *sqlgraph.CreateSpec) {
	var (
		_node = &ArchiveOutbox{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(archiveoutbox.Table, sqlgraph.NewFieldSpec(archiveoutbox.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(archiveoutbox.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.PlannedFor(); ok {
		_spec.SetField(archiveoutbox.FieldPlannedFor, field.TypeTime, value)
		_node.PlannedFor = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(archiveoutbox.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(archiveoutbox.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(archiveoutbox.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if nodes := _c.mutation.MessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   archiveoutbox.MessageTable,
			Columns: []string{archiveoutbox.MessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MessageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ArchiveOutbox.Create().
//		SetMessageID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArchiveOutboxUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *ArchiveOutboxCreate) OnConflict(opts ...sql.ConflictOption) *ArchiveOutboxUpsertOne {
	_c.conflict = opts
	return &ArchiveOutboxUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ArchiveOutbox.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArchiveOutboxCreate) OnConflictColumns(columns ...string) *ArchiveOutboxUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArchiveOutboxUpsertOne{
		create: _c,
	}
}

type (
	// ArchiveOutboxUpsertOne is the builder for "upsert"-ing
	//  one ArchiveOutbox node.
	ArchiveOutboxUpsertOne struct {
		create *ArchiveOutboxCreate
	}

	// ArchiveOutboxUpsert is the "OnConflict" setter.
	ArchiveOutboxUpsert struct {
		*sql.UpdateSet
	}
)

// SetMessageID sets the "message_id" field.
func (u *ArchiveOutboxUpsert) SetMessageID(v string) *ArchiveOutboxUpsert {
	u.Set(archiveoutbox.FieldMessageID, v)
	return u
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *ArchiveOutboxUpsert) UpdateMessageID() *ArchiveOutboxUpsert {
	u.SetExcluded(archiveoutbox.FieldMessageID)
	return u
}

// SetReason sets the "reason" field.
func (u *ArchiveOutboxUpsert) SetReason(v string) *ArchiveOutboxUpsert {
	u.Set(archiveoutbox.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *ArchiveOutboxUpsert) UpdateReason() *ArchiveOutboxUpsert {
	u.SetExcluded(archiveoutbox.FieldReason)
	return u
}

// SetPlannedFor sets the "planned_for" field.
func (u *ArchiveOutboxUpsert) SetPlannedFor(v time.Time) *ArchiveOutboxUpsert {
	u.Set(archiveoutbox.FieldPlannedFor, v)
	return u
}

// UpdatePlannedFor sets the "planned_for" field to the value that was provided on create.
func (u *ArchiveOutboxUpsert) UpdatePlannedFor() *ArchiveOutboxUpsert {
	u.SetExcluded(archiveoutbox.FieldPlannedFor)
	return u
}

// ClearPlannedFor clears the value of the "planned_for" field.
func (u *ArchiveOutboxUpsert) ClearPlannedFor() *ArchiveOutboxUpsert {
	u.SetNull(archiveoutbox.FieldPlannedFor)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ArchiveOutboxUpsert) SetCreatedAt(v time.Time) *ArchiveOutboxUpsert {
	u.Set(archiveoutbox.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ArchiveOutboxUpsert) UpdateCreatedAt() *ArchiveOutboxUpsert {
	u.SetExcluded(archiveoutbox.FieldCreatedAt)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *ArchiveOutboxUpsert) SetProcessedAt(v time.Time) *ArchiveOutboxUpsert {
	u.Set(archiveoutbox.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ArchiveOutboxUpsert) UpdateProcessedAt() *ArchiveOutboxUpsert {
	u.SetExcluded(archiveoutbox.FieldProcessedAt)
	return u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *ArchiveOutboxUpsert) ClearProcessedAt() *ArchiveOutboxUpsert {
	u.SetNull(archiveoutbox.FieldProcessedAt)
	return u
}

// SetError sets the "error" field.
func (u *ArchiveOutboxUpsert) SetError(v string) *ArchiveOutboxUpsert {
	u.Set(archiveoutbox.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *ArchiveOutboxUpsert) UpdateError() *ArchiveOutboxUpsert {
	u.SetExcluded(archiveoutbox.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *ArchiveOutboxUpsert) ClearError() *ArchiveOutboxUpsert {
	u.SetNull(archiveoutbox.FieldError)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ArchiveOutbox.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ArchiveOutboxUpsertOne) UpdateNewValues() *ArchiveOutboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ArchiveOutbox.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ArchiveOutboxUpsertOne) Ignore() *ArchiveOutboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArchiveOutboxUpsertOne) DoNothing() *ArchiveOutboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArchiveOutboxCreate.OnConflict
// documentation for more info.
func (u *ArchiveOutboxUpsertOne) Update(set func(*ArchiveOutboxUpsert)) *ArchiveOutboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArchiveOutboxUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageID sets the "message_id" field.
func (u *ArchiveOutboxUpsertOne) SetMessageID(v string) *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *ArchiveOutboxUpsertOne) UpdateMessageID() *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.UpdateMessageID()
	})
}

// SetReason sets the "reason" field.
func (u *ArchiveOutboxUpsertOne) SetReason(v string) *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *ArchiveOutboxUpsertOne) UpdateReason() *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.UpdateReason()
	})
}

// SetPlannedFor sets the "planned_for" field.
func (u *ArchiveOutboxUpsertOne) SetPlannedFor(v time.Time) *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.SetPlannedFor(v)
	})
}

// UpdatePlannedFor sets the "planned_for" field to the value that was provided on create.
func (u *ArchiveOutboxUpsertOne) UpdatePlannedFor() *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.UpdatePlannedFor()
	})
}

// ClearPlannedFor clears the value of the "planned_for" field.
func (u *ArchiveOutboxUpsertOne) ClearPlannedFor() *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.ClearPlannedFor()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ArchiveOutboxUpsertOne) SetCreatedAt(v time.Time) *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ArchiveOutboxUpsertOne) UpdateCreatedAt() *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *ArchiveOutboxUpsertOne) SetProcessedAt(v time.Time) *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ArchiveOutboxUpsertOne) UpdateProcessedAt() *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *ArchiveOutboxUpsertOne) ClearProcessedAt() *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.ClearProcessedAt()
	})
}

// SetError sets the "error" field.
func (u *ArchiveOutboxUpsertOne) SetError(v string) *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *ArchiveOutboxUpsertOne) UpdateError() *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *ArchiveOutboxUpsertOne) ClearError() *ArchiveOutboxUpsertOne {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.ClearError()
	})
}

// Exec executes the query.
func (u *ArchiveOutboxUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArchiveOutboxCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArchiveOutboxUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ArchiveOutboxUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ArchiveOutboxUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ArchiveOutboxCreateBulk is the builder for creating many ArchiveOutbox entities in bulk.
type ArchiveOutboxCreateBulk struct {
	config
	err      error
	builders []*ArchiveOutboxCreate
	conflict []sql.ConflictOption
}

// Save creates the ArchiveOutbox entities in the database.
func (_c *ArchiveOutboxCreateBulk) Save(ctx context.Context) ([]*ArchiveOutbox, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ArchiveOutbox, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArchiveOutboxMutation)
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
func (_c *ArchiveOutboxCreateBulk) SaveX(ctx context.Context) []*ArchiveOutbox {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArchiveOutboxCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArchiveOutboxCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ArchiveOutbox.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArchiveOutboxUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *ArchiveOutboxCreateBulk) OnConflict(opts ...sql.ConflictOption) *ArchiveOutboxUpsertBulk {
	_c.conflict = opts
	return &ArchiveOutboxUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ArchiveOutbox.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArchiveOutboxCreateBulk) OnConflictColumns(columns ...string) *ArchiveOutboxUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArchiveOutboxUpsertBulk{
		create: _c,
	}
}

// ArchiveOutboxUpsertBulk is the builder for "upsert"-ing
// a bulk of ArchiveOutbox nodes.
type ArchiveOutboxUpsertBulk struct {
	create *ArchiveOutboxCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ArchiveOutbox.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ArchiveOutboxUpsertBulk) UpdateNewValues() *ArchiveOutboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ArchiveOutbox.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ArchiveOutboxUpsertBulk) Ignore() *ArchiveOutboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArchiveOutboxUpsertBulk) DoNothing() *ArchiveOutboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArchiveOutboxCreateBulk.OnConflict
// documentation for more info.
func (u *ArchiveOutboxUpsertBulk) Update(set func(*ArchiveOutboxUpsert)) *ArchiveOutboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArchiveOutboxUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageID sets the "message_id" field.
func (u *ArchiveOutboxUpsertBulk) SetMessageID(v string) *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *ArchiveOutboxUpsertBulk) UpdateMessageID() *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.UpdateMessageID()
	})
}

// SetReason sets the "reason" field.
func (u *ArchiveOutboxUpsertBulk) SetReason(v string) *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *ArchiveOutboxUpsertBulk) UpdateReason() *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.UpdateReason()
	})
}

// SetPlannedFor sets the "planned_for" field.
func (u *ArchiveOutboxUpsertBulk) SetPlannedFor(v time.Time) *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.SetPlannedFor(v)
	})
}

// UpdatePlannedFor sets the "planned_for" field to the value that was provided on create.
func (u *ArchiveOutboxUpsertBulk) UpdatePlannedFor() *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.UpdatePlannedFor()
	})
}

// ClearPlannedFor clears the value of the "planned_for" field.
func (u *ArchiveOutboxUpsertBulk) ClearPlannedFor() *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.ClearPlannedFor()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ArchiveOutboxUpsertBulk) SetCreatedAt(v time.Time) *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ArchiveOutboxUpsertBulk) UpdateCreatedAt() *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *ArchiveOutboxUpsertBulk) SetProcessedAt(v time.Time) *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ArchiveOutboxUpsertBulk) UpdateProcessedAt() *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *ArchiveOutboxUpsertBulk) ClearProcessedAt() *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.ClearProcessedAt()
	})
}

// SetError sets the "error" field.
func (u *ArchiveOutboxUpsertBulk) SetError(v string) *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *ArchiveOutboxUpsertBulk) UpdateError() *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *ArchiveOutboxUpsertBulk) ClearError() *ArchiveOutboxUpsertBulk {
	return u.Update(func(s *ArchiveOutboxUpsert) {
		s.ClearError()
	})
}

// Exec executes the query.
func (u *ArchiveOutboxUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ArchiveOutboxCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArchiveOutboxCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArchiveOutboxUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
