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
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
	"github.com/mailscope/mailscope/ent/taxonomylabel"
)

// TaxonomyAssignmentCreate is the builder for creating a TaxonomyAssignment entity.
type TaxonomyAssignmentCreate struct {
	config
	mutation *TaxonomyAssignmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMessageID sets the "message_id" field.
func (_c *TaxonomyAssignmentCreate) SetMessageID(v string) *TaxonomyAssignmentCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetLabelID sets the "label_id" field.
func (_c *TaxonomyAssignmentCreate) SetLabelID(v int) *TaxonomyAssignmentCreate {
	_c.mutation.SetLabelID(v)
	return _c
}

// SetAssignedAt sets the "assigned_at" field.
func (_c *TaxonomyAssignmentCreate) SetAssignedAt(v time.Time) *TaxonomyAssignmentCreate {
	_c.mutation.SetAssignedAt(v)
	return _c
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_c *TaxonomyAssignmentCreate) SetNillableAssignedAt(v *time.Time) *TaxonomyAssignmentCreate {
	if v != nil {
		_c.SetAssignedAt(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TaxonomyAssignmentCreate) SetConfidence(v float64) *TaxonomyAssignmentCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *TaxonomyAssignmentCreate) SetNillableConfidence(v *float64) *TaxonomyAssignmentCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetMessage sets the "message" edge to the EmailMessage entity.
func (_c *TaxonomyAssignmentCreate) SetMessage(v *EmailMessage) *TaxonomyAssignmentCreate {
	return _c.SetMessageID(v.ID)
}

// SetLabel sets the "label" edge to the TaxonomyLabel entity.
func (_c *TaxonomyAssignmentCreate) SetLabel(v *TaxonomyLabel) *TaxonomyAssignmentCreate {
	return _c.SetLabelID(v.ID)
}

// Mutation returns the TaxonomyAssignmentMutation object of the builder.
func (_c *TaxonomyAssignmentCreate) Mutation() *TaxonomyAssignmentMutation {
	return _c.mutation
}

// Save creates the TaxonomyAssignment in the database.
func (_c *TaxonomyAssignmentCreate) Save(ctx context.Context) (*TaxonomyAssignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaxonomyAssignmentCreate) SaveX(ctx context.Context) *TaxonomyAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaxonomyAssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaxonomyAssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaxonomyAssignmentCreate) defaults() {
	if _, ok := _c.mutation.AssignedAt(); !ok {
		v := taxonomyassignment.DefaultAssignedAt()
		_c.mutation.SetAssignedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaxonomyAssignmentCreate) check() error {
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "TaxonomyAssignment.message_id"`)}
	}
	if _, ok := _c.mutation.LabelID(); !ok {
		return &ValidationError{Name: "label_id", err: errors.New(`ent: missing required field "TaxonomyAssignment.label_id"`)}
	}
	if _, ok := _c.mutation.AssignedAt(); !ok {
		return &ValidationError{Name: "assigned_at", err: errors.New(`ent: missing required field "TaxonomyAssignment.assigned_at"`)}
	}
	if len(_c.mutation.MessageIDs()) == 0 {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required edge "TaxonomyAssignment.message"`)}
	}
	if len(_c.mutation.LabelIDs()) == 0 {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required edge "TaxonomyAssignment.label"`)}
	}
	return nil
}

func (_c *TaxonomyAssignmentCreate) sqlSave(ctx context.Context) (*TaxonomyAssignment, error) {
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

func (_c *TaxonomyAssignmentCreate) createSpec() (*TaxonomyAssignment, *sqlgraph.CreateSpec) {
	var (
		_node = &TaxonomyAssignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taxonomyassignment.Table, sqlgraph.NewFieldSpec(taxonomyassignment.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.AssignedAt(); ok {
		_spec.SetField(taxonomyassignment.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(taxonomyassignment.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if nodes := _c.mutation.MessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   taxonomyassignment.MessageTable,
			Columns: []string{taxonomyassignment.MessageColumn},
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
	if nodes := _c.mutation.LabelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taxonomyassignment.LabelTable,
			Columns: []string{taxonomyassignment.LabelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxonomylabel.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LabelID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaxonomyAssignment.Create().
//		SetMessageID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaxonomyAssignmentUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaxonomyAssignmentCreate) OnConflict(opts ...sql.ConflictOption) *TaxonomyAssignmentUpsertOne {
	_c.conflict = opts
	return &TaxonomyAssignmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaxonomyAssignment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaxonomyAssignmentCreate) OnConflictColumns(columns ...string) *TaxonomyAssignmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaxonomyAssignmentUpsertOne{
		create: _c,
	}
}

type (
	// TaxonomyAssignmentUpsertOne is the builder for "upsert"-ing
	//  one TaxonomyAssignment node.
	TaxonomyAssignmentUpsertOne struct {
		create *TaxonomyAssignmentCreate
	}

	// TaxonomyAssignmentUpsert is the "OnConflict" setter.
	TaxonomyAssignmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetMessageID sets the "message_id" field.
func (u *TaxonomyAssignmentUpsert) SetMessageID(v string) *TaxonomyAssignmentUpsert {
	u.Set(taxonomyassignment.FieldMessageID, v)
	return u
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *TaxonomyAssignmentUpsert) UpdateMessageID() *TaxonomyAssignmentUpsert {
	u.SetExcluded(taxonomyassignment.FieldMessageID)
	return u
}

// SetLabelID sets the "label_id" field.
func (u *TaxonomyAssignmentUpsert) SetLabelID(v int) *TaxonomyAssignmentUpsert {
	u.Set(taxonomyassignment.FieldLabelID, v)
	return u
}

// UpdateLabelID sets the "label_id" field to the value that was provided on create.
func (u *TaxonomyAssignmentUpsert) UpdateLabelID() *TaxonomyAssignmentUpsert {
	u.SetExcluded(taxonomyassignment.FieldLabelID)
	return u
}

// SetAssignedAt sets the "assigned_at" field.
func (u *TaxonomyAssignmentUpsert) SetAssignedAt(v time.Time) *TaxonomyAssignmentUpsert {
	u.Set(taxonomyassignment.FieldAssignedAt, v)
	return u
}

// UpdateAssignedAt sets the "assigned_at" field to the value that was provided on create.
func (u *TaxonomyAssignmentUpsert) UpdateAssignedAt() *TaxonomyAssignmentUpsert {
	u.SetExcluded(taxonomyassignment.FieldAssignedAt)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *TaxonomyAssignmentUpsert) SetConfidence(v float64) *TaxonomyAssignmentUpsert {
	u.Set(taxonomyassignment.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TaxonomyAssignmentUpsert) UpdateConfidence() *TaxonomyAssignmentUpsert {
	u.SetExcluded(taxonomyassignment.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *TaxonomyAssignmentUpsert) AddConfidence(v float64) *TaxonomyAssignmentUpsert {
	u.Add(taxonomyassignment.FieldConfidence, v)
	return u
}

// ClearConfidence clears the value of the "confidence" field.
func (u *TaxonomyAssignmentUpsert) ClearConfidence() *TaxonomyAssignmentUpsert {
	u.SetNull(taxonomyassignment.FieldConfidence)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TaxonomyAssignment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaxonomyAssignmentUpsertOne) UpdateNewValues() *TaxonomyAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaxonomyAssignment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaxonomyAssignmentUpsertOne) Ignore() *TaxonomyAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaxonomyAssignmentUpsertOne) DoNothing() *TaxonomyAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaxonomyAssignmentCreate.OnConflict
// documentation for more info.
func (u *TaxonomyAssignmentUpsertOne) Update(set func(*TaxonomyAssignmentUpsert)) *TaxonomyAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaxonomyAssignmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageID sets the "message_id" field.
func (u *TaxonomyAssignmentUpsertOne) SetMessageID(v string) *TaxonomyAssignmentUpsertOne {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *TaxonomyAssignmentUpsertOne) UpdateMessageID() *TaxonomyAssignmentUpsertOne {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.UpdateMessageID()
	})
}

// SetLabelID sets the "label_id" field.
func (u *TaxonomyAssignmentUpsertOne) SetLabelID(v int) *TaxonomyAssignmentUpsertOne {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.SetLabelID(v)
	})
}

// UpdateLabelID sets the "label_id" field to the value that was provided on create.
func (u *TaxonomyAssignmentUpsertOne) UpdateLabelID() *TaxonomyAssignmentUpsertOne {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.UpdateLabelID()
	})
}

// SetAssignedAt sets the "assigned_at" field.
func (u *TaxonomyAssignmentUpsertOne) SetAssignedAt(v time.Time) *TaxonomyAssignmentUpsertOne {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.SetAssignedAt(v)
	})
}

// UpdateAssignedAt sets the "assigned_at" field to the value that was provided on create.
func (u *TaxonomyAssignmentUpsertOne) UpdateAssignedAt() *TaxonomyAssignmentUpsertOne {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.UpdateAssignedAt()
	})
}

// SetConfidence sets the "confidence" field.
func (u *TaxonomyAssignmentUpsertOne) SetConfidence(v float64) *TaxonomyAssignmentUpsertOne {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *TaxonomyAssignmentUpsertOne) AddConfidence(v float64) *TaxonomyAssignmentUpsertOne {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TaxonomyAssignmentUpsertOne) UpdateConfidence() *TaxonomyAssignmentUpsertOne {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *TaxonomyAssignmentUpsertOne) ClearConfidence() *TaxonomyAssignmentUpsertOne {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.ClearConfidence()
	})
}

// Exec executes the query.
func (u *TaxonomyAssignmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaxonomyAssignmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaxonomyAssignmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaxonomyAssignmentUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaxonomyAssignmentUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaxonomyAssignmentCreateBulk is the builder for creating many TaxonomyAssignment entities in bulk.
type TaxonomyAssignmentCreateBulk struct {
	config
	err      error
	builders []*TaxonomyAssignmentCreate
	conflict []sql.ConflictOption
}

// Save creates the TaxonomyAssignment entities in the database.
func (_c *TaxonomyAssignmentCreateBulk) Save(ctx context.Context) ([]*TaxonomyAssignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaxonomyAssignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaxonomyAssignmentMutation)
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
func (_c *TaxonomyAssignmentCreateBulk) SaveX(ctx context.Context) []*TaxonomyAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaxonomyAssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaxonomyAssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaxonomyAssignment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaxonomyAssignmentUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaxonomyAssignmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaxonomyAssignmentUpsertBulk {
	_c.conflict = opts
	return &TaxonomyAssignmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaxonomyAssignment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaxonomyAssignmentCreateBulk) OnConflictColumns(columns ...string) *TaxonomyAssignmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaxonomyAssignmentUpsertBulk{
		create: _c,
	}
}

// TaxonomyAssignmentUpsertBulk is the builder for "upsert"-ing
// a bulk of TaxonomyAssignment nodes.
type TaxonomyAssignmentUpsertBulk struct {
	create *TaxonomyAssignmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaxonomyAssignment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaxonomyAssignmentUpsertBulk) UpdateNewValues() *TaxonomyAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaxonomyAssignment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaxonomyAssignmentUpsertBulk) Ignore() *TaxonomyAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaxonomyAssignmentUpsertBulk) DoNothing() *TaxonomyAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaxonomyAssignmentCreateBulk.OnConflict
// documentation for more info.
func (u *TaxonomyAssignmentUpsertBulk) Update(set func(*TaxonomyAssignmentUpsert)) *TaxonomyAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaxonomyAssignmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageID sets the "message_id" field.
func (u *TaxonomyAssignmentUpsertBulk) SetMessageID(v string) *TaxonomyAssignmentUpsertBulk {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *TaxonomyAssignmentUpsertBulk) UpdateMessageID() *TaxonomyAssignmentUpsertBulk {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.UpdateMessageID()
	})
}

// SetLabelID sets the "label_id" field.
func (u *TaxonomyAssignmentUpsertBulk) SetLabelID(v int) *TaxonomyAssignmentUpsertBulk {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.SetLabelID(v)
	})
}

// UpdateLabelID sets the "label_id" field to the value that was provided on create.
func (u *TaxonomyAssignmentUpsertBulk) UpdateLabelID() *TaxonomyAssignmentUpsertBulk {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.UpdateLabelID()
	})
}

// SetAssignedAt sets the "assigned_at" field.
func (u *TaxonomyAssignmentUpsertBulk) SetAssignedAt(v time.Time) *TaxonomyAssignmentUpsertBulk {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.SetAssignedAt(v)
	})
}

// UpdateAssignedAt sets the "assigned_at" field to the value that was provided on create.
func (u *TaxonomyAssignmentUpsertBulk) UpdateAssignedAt() *TaxonomyAssignmentUpsertBulk {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.UpdateAssignedAt()
	})
}

// SetConfidence sets the "confidence" field.
func (u *TaxonomyAssignmentUpsertBulk) SetConfidence(v float64) *TaxonomyAssignmentUpsertBulk {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *TaxonomyAssignmentUpsertBulk) AddConfidence(v float64) *TaxonomyAssignmentUpsertBulk {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TaxonomyAssignmentUpsertBulk) UpdateConfidence() *TaxonomyAssignmentUpsertBulk {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *TaxonomyAssignmentUpsertBulk) ClearConfidence() *TaxonomyAssignmentUpsertBulk {
	return u.Update(func(s *TaxonomyAssignmentUpsert) {
		s.ClearConfidence()
	})
}

// Exec executes the query.
func (u *TaxonomyAssignmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaxonomyAssignmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaxonomyAssignmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaxonomyAssignmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
