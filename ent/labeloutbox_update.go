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
	"github.com/mailscope/mailscope/ent/predicate"
)

// LabelOutboxUpdate is the builder for updating LabelOutbox entities.
type LabelOutboxUpdate struct {
	config
	hooks    []Hook
	mutation *LabelOutboxMutation
}

// Where appends a list predicates to the LabelOutboxUpdate builder.
func (_u *LabelOutboxUpdate) Where(ps ...predicate.LabelOutbox) *LabelOutboxUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *LabelOutboxUpdate) SetMessageID(v string) *LabelOutboxUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *LabelOutboxUpdate) SetNillableMessageID(v *string) *LabelOutboxUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *LabelOutboxUpdate) SetReason(v string) *LabelOutboxUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *LabelOutboxUpdate) SetNillableReason(v *string) *LabelOutboxUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *LabelOutboxUpdate) SetProcessedAt(v time.Time) *LabelOutboxUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *LabelOutboxUpdate) SetNillableProcessedAt(v *time.Time) *LabelOutboxUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *LabelOutboxUpdate) ClearProcessedAt() *LabelOutboxUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetError sets the "error" field.
func (_u *LabelOutboxUpdate) SetError(v string) *LabelOutboxUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *LabelOutboxUpdate) SetNillableError(v *string) *LabelOutboxUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *LabelOutboxUpdate) ClearError() *LabelOutboxUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetMessage sets the "message" edge to the EmailMessage entity.
func (_u *LabelOutboxUpdate) SetMessage(v *EmailMessage) *LabelOutboxUpdate {
	return _u.SetMessageID(v.ID)
}

// Mutation returns the LabelOutboxMutation object of the builder.
func (_u *LabelOutboxUpdate) Mutation() *LabelOutboxMutation {
	return _u.mutation
}

// ClearMessage clears the "message" edge to the EmailMessage entity.
func (_u *LabelOutboxUpdate) ClearMessage() *LabelOutboxUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabelOutboxUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabelOutboxUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabelOutboxUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabelOutboxUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabelOutboxUpdate) check() error {
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LabelOutbox.message"`)
	}
	return nil
}

func (_u *LabelOutboxUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labeloutbox.Table, labeloutbox.Columns, sqlgraph.NewFieldSpec(labeloutbox.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(labeloutbox.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(labeloutbox.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(labeloutbox.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(labeloutbox.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(labeloutbox.FieldError, field.TypeString)
	}
	if _u.mutation.MessageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labeloutbox.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabelOutboxUpdateOne is the builder for updating a single LabelOutbox entity.
type LabelOutboxUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabelOutboxMutation
}

// SetMessageID sets the "message_id" field.
func (_u *LabelOutboxUpdateOne) SetMessageID(v string) *LabelOutboxUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *LabelOutboxUpdateOne) SetNillableMessageID(v *string) *LabelOutboxUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *LabelOutboxUpdateOne) SetReason(v string) *LabelOutboxUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *LabelOutboxUpdateOne) SetNillableReason(v *string) *LabelOutboxUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *LabelOutboxUpdateOne) SetProcessedAt(v time.Time) *LabelOutboxUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *LabelOutboxUpdateOne) SetNillableProcessedAt(v *time.Time) *LabelOutboxUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *LabelOutboxUpdateOne) ClearProcessedAt() *LabelOutboxUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetError sets the "error" field.
func (_u *LabelOutboxUpdateOne) SetError(v string) *LabelOutboxUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *LabelOutboxUpdateOne) SetNillableError(v *string) *LabelOutboxUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *LabelOutboxUpdateOne) ClearError() *LabelOutboxUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetMessage sets the "message" edge to the EmailMessage entity.
func (_u *LabelOutboxUpdateOne) SetMessage(v *EmailMessage) *LabelOutboxUpdateOne {
	return _u.SetMessageID(v.ID)
}

// Mutation returns the LabelOutboxMutation object of the builder.
func (_u *LabelOutboxUpdateOne) Mutation() *LabelOutboxMutation {
	return _u.mutation
}

// ClearMessage clears the "message" edge to the EmailMessage entity.
func (_u *LabelOutboxUpdateOne) ClearMessage() *LabelOutboxUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// Where appends a list predicates to the LabelOutboxUpdate builder.
func (_u *LabelOutboxUpdateOne) Where(ps ...predicate.LabelOutbox) *LabelOutboxUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabelOutboxUpdateOne) Select(field string, fields ...string) *LabelOutboxUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LabelOutbox entity.
func (_u *LabelOutboxUpdateOne) Save(ctx context.Context) (*LabelOutbox, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabelOutboxUpdateOne) SaveX(ctx context.Context) *LabelOutbox {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabelOutboxUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabelOutboxUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabelOutboxUpdateOne) check() error {
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LabelOutbox.message"`)
	}
	return nil
}

func (_u *LabelOutboxUpdateOne) sqlSave(ctx context.Context) (_node *LabelOutbox, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labeloutbox.Table, labeloutbox.Columns, sqlgraph.NewFieldSpec(labeloutbox.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LabelOutbox.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, labeloutbox.FieldID)
		for _, f := range fields {
			if !labeloutbox.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != labeloutbox.FieldID {
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
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(labeloutbox.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(labeloutbox.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(labeloutbox.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(labeloutbox.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(labeloutbox.FieldError, field.TypeString)
	}
	if _u.mutation.MessageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LabelOutbox{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labeloutbox.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
