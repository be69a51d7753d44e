// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mailscope/mailscope/ent/emailpolicy"
)

// EmailPolicyCreate is the builder for creating a EmailPolicy entity.
type EmailPolicyCreate struct {
	config
	mutation *EmailPolicyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *EmailPolicyCreate) SetName(v string) *EmailPolicyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *EmailPolicyCreate) SetEnabled(v bool) *EmailPolicyCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *EmailPolicyCreate) SetNillableEnabled(v *bool) *EmailPolicyCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetTriggerType sets the "trigger_type" field.
func (_c *EmailPolicyCreate) SetTriggerType(v emailpolicy.TriggerType) *EmailPolicyCreate {
	_c.mutation.SetTriggerType(v)
	return _c
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_c *EmailPolicyCreate) SetNillableTriggerType(v *emailpolicy.TriggerType) *EmailPolicyCreate {
	if v != nil {
		_c.SetTriggerType(*v)
	}
	return _c
}

// SetCadence sets the "cadence" field.
func (_c *EmailPolicyCreate) SetCadence(v emailpolicy.Cadence) *EmailPolicyCreate {
	_c.mutation.SetCadence(v)
	return _c
}

// SetNillableCadence sets the "cadence" field if the given value is not nil.
func (_c *EmailPolicyCreate) SetNillableCadence(v *emailpolicy.Cadence) *EmailPolicyCreate {
	if v != nil {
		_c.SetCadence(*v)
	}
	return _c
}

// SetDefinition sets the "definition" field.
func (_c *EmailPolicyCreate) SetDefinition(v json.RawMessage) *EmailPolicyCreate {
	_c.mutation.SetDefinition(v)
	return _c
}

// SetLastAppliedAt sets the "last_applied_at" field.
func (_c *EmailPolicyCreate) SetLastAppliedAt(v time.Time) *EmailPolicyCreate {
	_c.mutation.SetLastAppliedAt(v)
	return _c
}

// SetNillableLastAppliedAt sets the "last_applied_at" field if the given value is not nil.
func (_c *EmailPolicyCreate) SetNillableLastAppliedAt(v *time.Time) *EmailPolicyCreate {
	if v != nil {
		_c.SetLastAppliedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmailPolicyCreate) SetCreatedAt(v time.Time) *EmailPolicyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmailPolicyCreate) SetNillableCreatedAt(v *time.Time) *EmailPolicyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EmailPolicyCreate) SetUpdatedAt(v time.Time) *EmailPolicyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EmailPolicyCreate) SetNillableUpdatedAt(v *time.Time) *EmailPolicyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmailPolicyCreate) SetID(v string) *EmailPolicyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EmailPolicyMutation object of the builder.
func (_c *EmailPolicyCreate) Mutation() *EmailPolicyMutation {
	return _c.mutation
}

// Save creates the EmailPolicy in the database.
func (_c *EmailPolicyCreate) Save(ctx context.Context) (*EmailPolicy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailPolicyCreate) SaveX(ctx context.Context) *EmailPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailPolicyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailPolicyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmailPolicyCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := emailpolicy.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		v := emailpolicy.DefaultTriggerType
		_c.mutation.SetTriggerType(v)
	}
	if _, ok := _c.mutation.Cadence(); !ok {
		v := emailpolicy.DefaultCadence
		_c.mutation.SetCadence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := emailpolicy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := emailpolicy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailPolicyCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "EmailPolicy.name"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "EmailPolicy.enabled"`)}
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		return &ValidationError{Name: "trigger_type", err: errors.New(`ent: missing required field "EmailPolicy.trigger_type"`)}
	}
	if v, ok := _c.mutation.TriggerType(); ok {
		if err := emailpolicy.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "EmailPolicy.trigger_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cadence(); !ok {
		return &ValidationError{Name: "cadence", err: errors.New(`ent: missing required field "EmailPolicy.cadence"`)}
	}
	if v, ok := _c.mutation.Cadence(); ok {
		if err := emailpolicy.CadenceValidator(v); err != nil {
			return &ValidationError{Name: "cadence", err: fmt.Errorf(`ent: validator failed for field "EmailPolicy.cadence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Definition(); !ok {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required field "EmailPolicy.definition"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EmailPolicy.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EmailPolicy.updated_at"`)}
	}
	return nil
}

func (_c *EmailPolicyCreate) sqlSave(ctx context.Context) (*EmailPolicy, error) {
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
			return nil, fmt.Errorf("unexpected EmailPolicy.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EmailPolicyCreate) createSpec() (*EmailPolicy, *sqlgraph.CreateSpec) {
	var (
		_node = &EmailPolicy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emailpolicy.Table, sqlgraph.NewFieldSpec(emailpolicy.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(emailpolicy.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(emailpolicy.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.TriggerType(); ok {
		_spec.SetField(emailpolicy.FieldTriggerType, field.TypeEnum, value)
		_node.TriggerType = value
	}
	if value, ok := _c.mutation.Cadence(); ok {
		_spec.SetField(emailpolicy.FieldCadence, field.TypeEnum, value)
		_node.Cadence = value
	}
	if value, ok := _c.mutation.Definition(); ok {
		_spec.SetField(emailpolicy.FieldDefinition, field.TypeJSON, value)
		_node.Definition = value
	}
	if value, ok := _c.mutation.LastAppliedAt(); ok {
		_spec.SetField(emailpolicy.FieldLastAppliedAt, field.TypeTime, value)
		_node.LastAppliedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(emailpolicy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(emailpolicy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmailPolicy.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmailPolicyUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *EmailPolicyCreate) OnConflict(opts ...sql.ConflictOption) *EmailPolicyUpsertOne {
	_c.conflict = opts
	return &EmailPolicyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmailPolicy.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmailPolicyCreate) OnConflictColumns(columns ...string) *EmailPolicyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmailPolicyUpsertOne{
		create: _c,
	}
}

type (
	// EmailPolicyUpsertOne is the builder for "upsert"-ing
	//  one EmailPolicy node.
	EmailPolicyUpsertOne struct {
		create *EmailPolicyCreate
	}

	// EmailPolicyUpsert is the "OnConflict" setter.
	EmailPolicyUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *EmailPolicyUpsert) SetName(v string) *EmailPolicyUpsert {
	u.Set(emailpolicy.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EmailPolicyUpsert) UpdateName() *EmailPolicyUpsert {
	u.SetExcluded(emailpolicy.FieldName)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *EmailPolicyUpsert) SetEnabled(v bool) *EmailPolicyUpsert {
	u.Set(emailpolicy.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *EmailPolicyUpsert) UpdateEnabled() *EmailPolicyUpsert {
	u.SetExcluded(emailpolicy.FieldEnabled)
	return u
}

// SetTriggerType sets the "trigger_type" field.
func (u *EmailPolicyUpsert) SetTriggerType(v emailpolicy.TriggerType) *EmailPolicyUpsert {
	u.Set(emailpolicy.FieldTriggerType, v)
	return u
}

// UpdateTriggerType sets the "trigger_type" field to the value that was provided on create.
func (u *EmailPolicyUpsert) UpdateTriggerType() *EmailPolicyUpsert {
	u.SetExcluded(emailpolicy.FieldTriggerType)
	return u
}

// SetCadence sets the "cadence" field.
func (u *EmailPolicyUpsert) SetCadence(v emailpolicy.Cadence) *EmailPolicyUpsert {
	u.Set(emailpolicy.FieldCadence, v)
	return u
}

// UpdateCadence sets the "cadence" field to the value that was provided on create.
func (u *EmailPolicyUpsert) UpdateCadence() *EmailPolicyUpsert {
	u.SetExcluded(emailpolicy.FieldCadence)
	return u
}

// SetDefinition sets the "definition" field.
func (u *EmailPolicyUpsert) SetDefinition(v json.RawMessage) *EmailPolicyUpsert {
	u.Set(emailpolicy.FieldDefinition, v)
	return u
}

// UpdateDefinition sets the "definition" field to the value that was provided on create.
func (u *EmailPolicyUpsert) UpdateDefinition() *EmailPolicyUpsert {
	u.SetExcluded(emailpolicy.FieldDefinition)
	return u
}

// SetLastAppliedAt sets the "last_applied_at" field.
func (u *EmailPolicyUpsert) SetLastAppliedAt(v time.Time) *EmailPolicyUpsert {
	u.Set(emailpolicy.FieldLastAppliedAt, v)
	return u
}

// UpdateLastAppliedAt sets the "last_applied_at" field to the value that was provided on create.
func (u *EmailPolicyUpsert) UpdateLastAppliedAt() *EmailPolicyUpsert {
	u.SetExcluded(emailpolicy.FieldLastAppliedAt)
	return u
}

// ClearLastAppliedAt clears the value of the "last_applied_at" field.
func (u *EmailPolicyUpsert) ClearLastAppliedAt() *EmailPolicyUpsert {
	u.SetNull(emailpolicy.FieldLastAppliedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EmailPolicyUpsert) SetUpdatedAt(v time.Time) *EmailPolicyUpsert {
	u.Set(emailpolicy.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmailPolicyUpsert) UpdateUpdatedAt() *EmailPolicyUpsert {
	u.SetExcluded(emailpolicy.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EmailPolicy.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(emailpolicy.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmailPolicyUpsertOne) UpdateNewValues() *EmailPolicyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(emailpolicy.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(emailpolicy.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmailPolicy.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EmailPolicyUpsertOne) Ignore() *EmailPolicyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmailPolicyUpsertOne) DoNothing() *EmailPolicyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmailPolicyCreate.OnConflict
// documentation for more info.
func (u *EmailPolicyUpsertOne) Update(set func(*EmailPolicyUpsert)) *EmailPolicyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmailPolicyUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *EmailPolicyUpsertOne) SetName(v string) *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EmailPolicyUpsertOne) UpdateName() *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.UpdateName()
	})
}

// SetEnabled sets the "enabled" field.
func (u *EmailPolicyUpsertOne) SetEnabled(v bool) *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *EmailPolicyUpsertOne) UpdateEnabled() *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.UpdateEnabled()
	})
}

// SetTriggerType sets the "trigger_type" field.
func (u *EmailPolicyUpsertOne) SetTriggerType(v emailpolicy.TriggerType) *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.SetTriggerType(v)
	})
}

// UpdateTriggerType sets the "trigger_type" field to the value that was provided on create.
func (u *EmailPolicyUpsertOne) UpdateTriggerType() *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.UpdateTriggerType()
	})
}

// SetCadence sets the "cadence" field.
func (u *EmailPolicyUpsertOne) SetCadence(v emailpolicy.Cadence) *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.SetCadence(v)
	})
}

// UpdateCadence sets the "cadence" field to the value that was provided on create.
func (u *EmailPolicyUpsertOne) UpdateCadence() *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.UpdateCadence()
	})
}

// SetDefinition sets the "definition" field.
func (u *EmailPolicyUpsertOne) SetDefinition(v json.RawMessage) *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.SetDefinition(v)
	})
}

// UpdateDefinition sets the "definition" field to the value that was provided on create.
func (u *EmailPolicyUpsertOne) UpdateDefinition() *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.UpdateDefinition()
	})
}

// SetLastAppliedAt sets the "last_applied_at" field.
func (u *EmailPolicyUpsertOne) SetLastAppliedAt(v time.Time) *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.SetLastAppliedAt(v)
	})
}

// UpdateLastAppliedAt sets the "last_applied_at" field to the value that was provided on create.
func (u *EmailPolicyUpsertOne) UpdateLastAppliedAt() *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.UpdateLastAppliedAt()
	})
}

// ClearLastAppliedAt clears the value of the "last_applied_at" field.
func (u *EmailPolicyUpsertOne) ClearLastAppliedAt() *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.ClearLastAppliedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EmailPolicyUpsertOne) SetUpdatedAt(v time.Time) *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmailPolicyUpsertOne) UpdateUpdatedAt() *EmailPolicyUpsertOne {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EmailPolicyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EmailPolicyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmailPolicyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EmailPolicyUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EmailPolicyUpsertOne.ID is not supported by MySQL driver. Use EmailPolicyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EmailPolicyUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EmailPolicyCreateBulk is the builder for creating many EmailPolicy entities in bulk.
type EmailPolicyCreateBulk struct {
	config
	err      error
	builders []*EmailPolicyCreate
	conflict []sql.ConflictOption
}

// Save creates the EmailPolicy entities in the database.
func (_c *EmailPolicyCreateBulk) Save(ctx context.Context) ([]*EmailPolicy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmailPolicy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailPolicyMutation)
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
func (_c *EmailPolicyCreateBulk) SaveX(ctx context.Context) []*EmailPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailPolicyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailPolicyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmailPolicy.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmailPolicyUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *EmailPolicyCreateBulk) OnConflict(opts ...sql.ConflictOption) *EmailPolicyUpsertBulk {
	_c.conflict = opts
	return &EmailPolicyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmailPolicy.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmailPolicyCreateBulk) OnConflictColumns(columns ...string) *EmailPolicyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmailPolicyUpsertBulk{
		create: _c,
	}
}

// EmailPolicyUpsertBulk is the builder for "upsert"-ing
// a bulk of EmailPolicy nodes.
type EmailPolicyUpsertBulk struct {
	create *EmailPolicyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EmailPolicy.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(emailpolicy.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmailPolicyUpsertBulk) UpdateNewValues() *EmailPolicyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(emailpolicy.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(emailpolicy.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmailPolicy.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EmailPolicyUpsertBulk) Ignore() *EmailPolicyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmailPolicyUpsertBulk) DoNothing() *EmailPolicyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmailPolicyCreateBulk.OnConflict
// documentation for more info.
func (u *EmailPolicyUpsertBulk) Update(set func(*EmailPolicyUpsert)) *EmailPolicyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmailPolicyUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *EmailPolicyUpsertBulk) SetName(v string) *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EmailPolicyUpsertBulk) UpdateName() *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.UpdateName()
	})
}

// SetEnabled sets the "enabled" field.
func (u *EmailPolicyUpsertBulk) SetEnabled(v bool) *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *EmailPolicyUpsertBulk) UpdateEnabled() *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.UpdateEnabled()
	})
}

// SetTriggerType sets the "trigger_type" field.
func (u *EmailPolicyUpsertBulk) SetTriggerType(v emailpolicy.TriggerType) *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.SetTriggerType(v)
	})
}

// UpdateTriggerType sets the "trigger_type" field to the value that was provided on create.
func (u *EmailPolicyUpsertBulk) UpdateTriggerType() *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.UpdateTriggerType()
	})
}

// SetCadence sets the "cadence" field.
func (u *EmailPolicyUpsertBulk) SetCadence(v emailpolicy.Cadence) *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.SetCadence(v)
	})
}

// UpdateCadence sets the "cadence" field to the value that was provided on create.
func (u *EmailPolicyUpsertBulk) UpdateCadence() *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.UpdateCadence()
	})
}

// SetDefinition sets the "definition" field.
func (u *EmailPolicyUpsertBulk) SetDefinition(v json.RawMessage) *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.SetDefinition(v)
	})
}

// UpdateDefinition sets the "definition" field to the value that was provided on create.
func (u *EmailPolicyUpsertBulk) UpdateDefinition() *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.UpdateDefinition()
	})
}

// SetLastAppliedAt sets the "last_applied_at" field.
func (u *EmailPolicyUpsertBulk) SetLastAppliedAt(v time.Time) *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.SetLastAppliedAt(v)
	})
}

// UpdateLastAppliedAt sets the "last_applied_at" field to the value that was provided on create.
func (u *EmailPolicyUpsertBulk) UpdateLastAppliedAt() *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.UpdateLastAppliedAt()
	})
}

// ClearLastAppliedAt clears the value of the "last_applied_at" field.
func (u *EmailPolicyUpsertBulk) ClearLastAppliedAt() *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.ClearLastAppliedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EmailPolicyUpsertBulk) SetUpdatedAt(v time.Time) *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmailPolicyUpsertBulk) UpdateUpdatedAt() *EmailPolicyUpsertBulk {
	return u.Update(func(s *EmailPolicyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EmailPolicyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EmailPolicyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EmailPolicyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmailPolicyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
