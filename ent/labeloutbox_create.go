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
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/ent/labeloutbox"
)

// LabelOutboxCreate is the builder for creating a LabelOutbox entity.
type LabelOutboxCreate struct {
	config
	mutation *LabelOutboxMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMessageID sets the "message_id" field.
func (_c *LabelOutboxCreate) SetMessageID(v string) *LabelOutboxCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *LabelOutboxCreate) SetReason(v string) *LabelOutboxCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabelOutboxCreate) SetCreatedAt(v time.Time) *LabelOutboxCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabelOutboxCreate) SetNillableCreatedAt(v *time.Time) *LabelOutboxCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *LabelOutboxCreate) SetProcessedAt(v time.Time) *LabelOutboxCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *LabelOutboxCreate) SetNillableProcessedAt(v *time.Time) *LabelOutboxCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *LabelOutboxCreate) SetError(v string) *LabelOutboxCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *LabelOutboxCreate) SetNillableError(v *string) *LabelOutboxCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetMessage sets the "message" edge to the EmailMessage entity.
func (_c *LabelOutboxCreate) SetMessage(v *EmailMessage) *LabelOutboxCreate {
	return _c.SetMessageID(v.ID)
}

// Mutation returns the LabelOutboxMutation object of the builder.
func (_c *LabelOutboxCreate) Mutation() *LabelOutboxMutation {
	return _c.mutation
}

// Save creates the LabelOutbox in the database.
func (_c *LabelOutboxCreate) Save(ctx context.Context) (*LabelOutbox, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabelOutboxCreate) SaveX(ctx context.Context) *LabelOutbox {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabelOutboxCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabelOutboxCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabelOutboxCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := labeloutbox.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabelOutboxCreate) check() error {
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "LabelOutbox.message_id"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "LabelOutbox.reason"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LabelOutbox.created_at"`)}
	}
	if len(_c.mutation.MessageIDs()) == 0 {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required edge "LabelOutbox.message"`)}
	}
	return nil
}

func (_c *LabelOutboxCreate) sqlSave(ctx context.Context) (*LabelOutbox, error) {
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

func (_c *LabelOutboxCreate) createSpec() (*LabelOutbox, *sqlgraph.CreateSpec) {
	var (
		_node = &LabelOutbox{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(labeloutbox.Table, sqlgraph.NewFieldSpec(labeloutbox.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(labeloutbox.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(labeloutbox.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(labeloutbox.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(labeloutbox.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if nodes := _c.mutation.MessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labeloutbox.MessageTable,
			Columns: []string{labeloutbox.MessageColumn},
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
//	client.LabelOutbox.Create().
//		SetMessageID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LabelOutboxUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *LabelOutboxCreate) OnConflict(opts ...sql.ConflictOption) *LabelOutboxUpsertOne {
	_c.conflict = opts
	return &LabelOutboxUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LabelOutbox.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LabelOutboxCreate) OnConflictColumns(columns ...string) *LabelOutboxUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LabelOutboxUpsertOne{
		create: _c,
	}
}

type (
	// LabelOutboxUpsertOne is the builder for "upsert"-ing
	//  one LabelOutbox node.
	LabelOutboxUpsertOne struct {
		create *LabelOutboxCreate
	}

	// LabelOutboxUpsert is the "OnConflict" setter.
	LabelOutboxUpsert struct {
		*sql.UpdateSet
	}
)

// SetMessageID sets the "message_id" field.
func (u *LabelOutboxUpsert) SetMessageID(v string) *LabelOutboxUpsert {
	u.Set(labeloutbox.FieldMessageID, v)
	return u
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *LabelOutboxUpsert) UpdateMessageID() *LabelOutboxUpsert {
	u.SetExcluded(labeloutbox.FieldMessageID)
	return u
}

// SetReason sets the "reason" field.
func (u *LabelOutboxUpsert) SetReason(v string) *LabelOutboxUpsert {
	u.Set(labeloutbox.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *LabelOutboxUpsert) UpdateReason() *LabelOutboxUpsert {
	u.SetExcluded(labeloutbox.FieldReason)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *LabelOutboxUpsert) SetProcessedAt(v time.Time) *LabelOutboxUpsert {
	u.Set(labeloutbox.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *LabelOutboxUpsert) UpdateProcessedAt() *LabelOutboxUpsert {
	u.SetExcluded(labeloutbox.FieldProcessedAt)
	return u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *LabelOutboxUpsert) ClearProcessedAt() *LabelOutboxUpsert {
	u.SetNull(labeloutbox.FieldProcessedAt)
	return u
}

// SetError sets the "error" field.
func (u *LabelOutboxUpsert) SetError(v string) *LabelOutboxUpsert {
	u.Set(labeloutbox.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *LabelOutboxUpsert) UpdateError() *LabelOutboxUpsert {
	u.SetExcluded(labeloutbox.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *LabelOutboxUpsert) ClearError() *LabelOutboxUpsert {
	u.SetNull(labeloutbox.FieldError)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LabelOutbox.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LabelOutboxUpsertOne) UpdateNewValues() *LabelOutboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(labeloutbox.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LabelOutbox.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LabelOutboxUpsertOne) Ignore() *LabelOutboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LabelOutboxUpsertOne) DoNothing() *LabelOutboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LabelOutboxCreate.OnConflict
// documentation for more info.
func (u *LabelOutboxUpsertOne) Update(set func(*LabelOutboxUpsert)) *LabelOutboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LabelOutboxUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageID sets the "message_id" field.
func (u *LabelOutboxUpsertOne) SetMessageID(v string) *LabelOutboxUpsertOne {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *LabelOutboxUpsertOne) UpdateMessageID() *LabelOutboxUpsertOne {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.UpdateMessageID()
	})
}

// SetReason sets the "reason" field.
func (u *LabelOutboxUpsertOne) SetReason(v string) *LabelOutboxUpsertOne {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *LabelOutboxUpsertOne) UpdateReason() *LabelOutboxUpsertOne {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.UpdateReason()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *LabelOutboxUpsertOne) SetProcessedAt(v time.Time) *LabelOutboxUpsertOne {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *LabelOutboxUpsertOne) UpdateProcessedAt() *LabelOutboxUpsertOne {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *LabelOutboxUpsertOne) ClearProcessedAt() *LabelOutboxUpsertOne {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.ClearProcessedAt()
	})
}

// SetError sets the "error" field.
func (u *LabelOutboxUpsertOne) SetError(v string) *LabelOutboxUpsertOne {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *LabelOutboxUpsertOne) UpdateError() *LabelOutboxUpsertOne {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *LabelOutboxUpsertOne) ClearError() *LabelOutboxUpsertOne {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.ClearError()
	})
}

// Exec executes the query.
func (u *LabelOutboxUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LabelOutboxCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LabelOutboxUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LabelOutboxUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LabelOutboxUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LabelOutboxCreateBulk is the builder for creating many LabelOutbox entities in bulk.
type LabelOutboxCreateBulk struct {
	config
	err      error
	builders []*LabelOutboxCreate
	conflict []sql.ConflictOption
}

// Save creates the LabelOutbox entities in the database.
func (_c *LabelOutboxCreateBulk) Save(ctx context.Context) ([]*LabelOutbox, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LabelOutbox, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabelOutboxMutation)
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
func (_c *LabelOutboxCreateBulk) SaveX(ctx context.Context) []*LabelOutbox {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabelOutboxCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabelOutboxCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LabelOutbox.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LabelOutboxUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *LabelOutboxCreateBulk) OnConflict(opts ...sql.ConflictOption) *LabelOutboxUpsertBulk {
	_c.conflict = opts
	return &LabelOutboxUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LabelOutbox.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LabelOutboxCreateBulk) OnConflictColumns(columns ...string) *LabelOutboxUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LabelOutboxUpsertBulk{
		create: _c,
	}
}

// LabelOutboxUpsertBulk is the builder for "upsert"-ing
// a bulk of LabelOutbox nodes.
type LabelOutboxUpsertBulk struct {
	create *LabelOutboxCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LabelOutbox.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LabelOutboxUpsertBulk) UpdateNewValues() *LabelOutboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(labeloutbox.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LabelOutbox.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LabelOutboxUpsertBulk) Ignore() *LabelOutboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LabelOutboxUpsertBulk) DoNothing() *LabelOutboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LabelOutboxCreateBulk.OnConflict
// documentation for more info.
func (u *LabelOutboxUpsertBulk) Update(set func(*LabelOutboxUpsert)) *LabelOutboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LabelOutboxUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageID sets the "message_id" field.
func (u *LabelOutboxUpsertBulk) SetMessageID(v string) *LabelOutboxUpsertBulk {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *LabelOutboxUpsertBulk) UpdateMessageID() *LabelOutboxUpsertBulk {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.UpdateMessageID()
	})
}

// SetReason sets the "reason" field.
func (u *LabelOutboxUpsertBulk) SetReason(v string) *LabelOutboxUpsertBulk {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *LabelOutboxUpsertBulk) UpdateReason() *LabelOutboxUpsertBulk {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.UpdateReason()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *LabelOutboxUpsertBulk) SetProcessedAt(v time.Time) *LabelOutboxUpsertBulk {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *LabelOutboxUpsertBulk) UpdateProcessedAt() *LabelOutboxUpsertBulk {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *LabelOutboxUpsertBulk) ClearProcessedAt() *LabelOutboxUpsertBulk {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.ClearProcessedAt()
	})
}

// SetError sets the "error" field.
func (u *LabelOutboxUpsertBulk) SetError(v string) *LabelOutboxUpsertBulk {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *LabelOutboxUpsertBulk) UpdateError() *LabelOutboxUpsertBulk {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *LabelOutboxUpsertBulk) ClearError() *LabelOutboxUpsertBulk {
	return u.Update(func(s *LabelOutboxUpsert) {
		s.ClearError()
	})
}

// Exec executes the query.
func (u *LabelOutboxUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LabelOutboxCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LabelOutboxCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LabelOutboxUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
