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
	"github.com/mailscope/mailscope/ent/pipelinekv"
)

// PipelineKVCreate is the builder for creating a PipelineKV entity.
type PipelineKVCreate struct {
	config
	mutation *PipelineKVMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetValue sets the "value" field.
func (_c *PipelineKVCreate) SetValue(v string) *PipelineKVCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PipelineKVCreate) SetUpdatedAt(v time.Time) *PipelineKVCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PipelineKVCreate) SetNillableUpdatedAt(v *time.Time) *PipelineKVCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineKVCreate) SetID(v string) *PipelineKVCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PipelineKVMutation object of the builder.
func (_c *PipelineKVCreate) Mutation() *PipelineKVMutation {
	return _c.mutation
}

// Save creates the PipelineKV in the database.
func (_c *PipelineKVCreate) Save(ctx context.Context) (*PipelineKV, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineKVCreate) SaveX(ctx context.Context) *PipelineKV {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineKVCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineKVCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineKVCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pipelinekv.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineKVCreate) check() error {
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "PipelineKV.value"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PipelineKV.updated_at"`)}
	}
	return nil
}

func (_c *PipelineKVCreate) sqlSave(ctx context.Context) (*PipelineKV, error) {
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
			return nil, fmt.Errorf("unexpected PipelineKV.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineKVCreate) createSpec() (*PipelineKV, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineKV{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinekv.Table, sqlgraph.NewFieldSpec(pipelinekv.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(pipelinekv.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinekv.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineKV.Create().
//		SetValue(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineKVUpsert) {
//			SetValue(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineKVCreate) OnConflict(opts ...sql.ConflictOption) *PipelineKVUpsertOne {
	_c.conflict = opts
	return &PipelineKVUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineKV.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineKVCreate) OnConflictColumns(columns ...string) *PipelineKVUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineKVUpsertOne{
		create: _c,
	}
}

type (
	// PipelineKVUpsertOne is the builder for "upsert"-ing
	//  one PipelineKV node.
	PipelineKVUpsertOne struct {
		create *PipelineKVCreate
	}

	// PipelineKVUpsert is the "OnConflict" setter.
	PipelineKVUpsert struct {
		*sql.UpdateSet
	}
)

// SetValue sets the "value" field.
func (u *PipelineKVUpsert) SetValue(v string) *PipelineKVUpsert {
	u.Set(pipelinekv.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *PipelineKVUpsert) UpdateValue() *PipelineKVUpsert {
	u.SetExcluded(pipelinekv.FieldValue)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineKVUpsert) SetUpdatedAt(v time.Time) *PipelineKVUpsert {
	u.Set(pipelinekv.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineKVUpsert) UpdateUpdatedAt() *PipelineKVUpsert {
	u.SetExcluded(pipelinekv.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PipelineKV.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinekv.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineKVUpsertOne) UpdateNewValues() *PipelineKVUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pipelinekv.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineKV.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PipelineKVUpsertOne) Ignore() *PipelineKVUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineKVUpsertOne) DoNothing() *PipelineKVUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineKVCreate.OnConflict
// documentation for more info.
func (u *PipelineKVUpsertOne) Update(set func(*PipelineKVUpsert)) *PipelineKVUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineKVUpsert{UpdateSet: update})
	}))
	return u
}

// SetValue sets the "value" field.
func (u *PipelineKVUpsertOne) SetValue(v string) *PipelineKVUpsertOne {
	return u.Update(func(s *PipelineKVUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *PipelineKVUpsertOne) UpdateValue() *PipelineKVUpsertOne {
	return u.Update(func(s *PipelineKVUpsert) {
		s.UpdateValue()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineKVUpsertOne) SetUpdatedAt(v time.Time) *PipelineKVUpsertOne {
	return u.Update(func(s *PipelineKVUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineKVUpsertOne) UpdateUpdatedAt() *PipelineKVUpsertOne {
	return u.Update(func(s *PipelineKVUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PipelineKVUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineKVCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineKVUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PipelineKVUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PipelineKVUpsertOne.ID is not supported by MySQL driver. Use PipelineKVUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PipelineKVUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PipelineKVCreateBulk is the builder for creating many PipelineKV entities in bulk.
type PipelineKVCreateBulk struct {
	config
	err      error
	builders []*PipelineKVCreate
	conflict []sql.ConflictOption
}

// Save creates the PipelineKV entities in the database.
func (_c *PipelineKVCreateBulk) Save(ctx context.Context) ([]*PipelineKV, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineKV, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineKVMutation)
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
func (_c *PipelineKVCreateBulk) SaveX(ctx context.Context) []*PipelineKV {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineKVCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineKVCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineKV.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineKVUpsert) {
//			SetValue(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineKVCreateBulk) OnConflict(opts ...sql.ConflictOption) *PipelineKVUpsertBulk {
	_c.conflict = opts
	return &PipelineKVUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineKV.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineKVCreateBulk) OnConflictColumns(columns ...string) *PipelineKVUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineKVUpsertBulk{
		create: _c,
	}
}

// PipelineKVUpsertBulk is the builder for "upsert"-ing
// a bulk of PipelineKV nodes.
type PipelineKVUpsertBulk struct {
	create *PipelineKVCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PipelineKV.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinekv.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineKVUpsertBulk) UpdateNewValues() *PipelineKVUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pipelinekv.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineKV.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PipelineKVUpsertBulk) Ignore() *PipelineKVUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineKVUpsertBulk) DoNothing() *PipelineKVUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineKVCreateBulk.OnConflict
// documentation for more info.
func (u *PipelineKVUpsertBulk) Update(set func(*PipelineKVUpsert)) *PipelineKVUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineKVUpsert{UpdateSet: update})
	}))
	return u
}

// SetValue sets the "value" field.
func (u *PipelineKVUpsertBulk) SetValue(v string) *PipelineKVUpsertBulk {
	return u.Update(func(s *PipelineKVUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *PipelineKVUpsertBulk) UpdateValue() *PipelineKVUpsertBulk {
	return u.Update(func(s *PipelineKVUpsert) {
		s.UpdateValue()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineKVUpsertBulk) SetUpdatedAt(v time.Time) *PipelineKVUpsertBulk {
	return u.Update(func(s *PipelineKVUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineKVUpsertBulk) UpdateUpdatedAt() *PipelineKVUpsertBulk {
	return u.Update(func(s *PipelineKVUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PipelineKVUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PipelineKVCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineKVCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineKVUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
