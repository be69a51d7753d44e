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
	"github.com/mailscope/mailscope/ent/predicate"
)

// ArchiveOutboxUpdate is the builder for updating ArchiveOutbox entities.
type ArchiveOutboxUpdate struct {
	config
	hooks    []Hook
	mutation *ArchiveOutboxMutation
}

// Where appends a list predicates to the ArchiveOutboxUpdate builder.
func (_u *ArchiveOutboxUpdate) Where(ps ...predicate.ArchiveOutbox) *ArchiveOutboxUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *ArchiveOutboxUpdate) SetMessageID(v string) *ArchiveOutboxUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *ArchiveOutboxUpdate) SetNillableMessageID(v *string) *ArchiveOutboxUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ArchiveOutboxUpdate) SetReason(v string) *ArchiveOutboxUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ArchiveOutboxUpdate) SetNillableReason(v *string) *ArchiveOutboxUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetPlannedFor sets the "planned_for" field.
func (_u *ArchiveOutboxUpdate) SetPlannedFor(v time.Time) *ArchiveOutboxUpdate {
	_u.mutation.SetPlannedFor(v)
	return _u
}

// SetNillablePlannedFor sets the "planned_for" field if the given value is not nil.
func (_u *ArchiveOutboxUpdate) SetNillablePlannedFor(v *time.Time) *ArchiveOutboxUpdate {
	if v != nil {
		_u.SetPlannedFor(*v)
	}
	return _u
}

// ClearPlannedFor clears the value of the "planned_for" field.
func (_u *ArchiveOutboxUpdate) ClearPlannedFor() *ArchiveOutboxUpdate {
	_u.mutation.ClearPlannedFor()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ArchiveOutboxUpdate) SetCreatedAt(v time.Time) *ArchiveOutboxUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ArchiveOutboxUpdate) SetNillableCreatedAt(v *time.Time) *ArchiveOutboxUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ArchiveOutboxUpdate) SetProcessedAt(v time.Time) *ArchiveOutboxUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ArchiveOutboxUpdate) SetNillableProcessedAt(v *time.Time) *ArchiveOutboxUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ArchiveOutboxUpdate) ClearProcessedAt() *ArchiveOutboxUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetError sets the "error" field.
func (_u *ArchiveOutboxUpdate) SetError(v string) *ArchiveOutboxUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ArchiveOutboxUpdate) SetNillableError(v *string) *ArchiveOutboxUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ArchiveOutboxUpdate) ClearError() *ArchiveOutboxUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetMessage sets the "message" edge to the EmailMessage entity.
func (_u *ArchiveOutboxUpdate) SetMessage(v *EmailMessage) *ArchiveOutboxUpdate {
	return _u.SetMessageID(v.ID)
}

// Mutation returns the ArchiveOutboxMutation object of the builder.
func (_u *ArchiveOutboxUpdate) Mutation() *ArchiveOutboxMutation {
	return _u.mutation
}

// ClearMessage clears the "message" edge to the EmailMessage entity.
func (_u *ArchiveOutboxUpdate) ClearMessage() *ArchiveOutboxUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArchiveOutboxUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArchiveOutboxUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArchiveOutboxUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArchiveOutboxUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArchiveOutboxUpdate) check() error {
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ArchiveOutbox.message"`)
	}
	return nil
}

func (_u *ArchiveOutboxUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(archiveoutbox.Table, archiveoutbox.Columns, sqlgraph.NewFieldSpec(archiveoutbox.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(archiveoutbox.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlannedFor(); ok {
		_spec.SetField(archiveoutbox.FieldPlannedFor, field.TypeTime, value)
	}
	if _u.mutation.PlannedForCleared() {
		_spec.ClearField(archiveoutbox.FieldPlannedFor, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(archiveoutbox.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(archiveoutbox.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(archiveoutbox.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(archiveoutbox.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(archiveoutbox.FieldError, field.TypeString)
	}
	if _u.mutation.MessageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{archiveoutbox.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArchiveOutboxUpdateOne is the builder for updating a single ArchiveOutbox entity.
type ArchiveOutboxUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArchiveOutboxMutation
}

// SetMessageID sets the "message_id" field.
func (_u *ArchiveOutboxUpdateOne) SetMessageID(v string) *ArchiveOutboxUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *ArchiveOutboxUpdateOne) SetNillableMessageID(v *string) *ArchiveOutboxUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ArchiveOutboxUpdateOne) SetReason(v string) *ArchiveOutboxUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ArchiveOutboxUpdateOne) SetNillableReason(v *string) *ArchiveOutboxUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetPlannedFor sets the "planned_for" field.
func (_u *ArchiveOutboxUpdateOne) SetPlannedFor(v time.Time) *ArchiveOutboxUpdateOne {
	_u.mutation.SetPlannedFor(v)
	return _u
}

// SetNillablePlannedFor sets the "planned_for" field if the given value is not nil.
func (_u *ArchiveOutboxUpdateOne) SetNillablePlannedFor(v *time.Time) *ArchiveOutboxUpdateOne {
	if v != nil {
		_u.SetPlannedFor(*v)
	}
	return _u
}

// ClearPlannedFor clears the value of the "planned_for" field.
func (_u *ArchiveOutboxUpdateOne) ClearPlannedFor() *ArchiveOutboxUpdateOne {
	_u.mutation.ClearPlannedFor()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ArchiveOutboxUpdateOne) SetCreatedAt(v time.Time) *ArchiveOutboxUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ArchiveOutboxUpdateOne) SetNillableCreatedAt(v *time.Time) *ArchiveOutboxUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ArchiveOutboxUpdateOne) SetProcessedAt(v time.Time) *ArchiveOutboxUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ArchiveOutboxUpdateOne) SetNillableProcessedAt(v *time.Time) *ArchiveOutboxUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ArchiveOutboxUpdateOne) ClearProcessedAt() *ArchiveOutboxUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetError sets the "error" field.
func (_u *ArchiveOutboxUpdateOne) SetError(v string) *ArchiveOutboxUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ArchiveOutboxUpdateOne) SetNillableError(v *string) *ArchiveOutboxUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ArchiveOutboxUpdateOne) ClearError() *ArchiveOutboxUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetMessage sets the "message" edge to the EmailMessage entity.
func (_u *ArchiveOutboxUpdateOne) SetMessage(v *EmailMessage) *ArchiveOutboxUpdateOne {
	return _u.SetMessageID(v.ID)
}

// Mutation returns the ArchiveOutboxMutation object of the builder.
func (_u *ArchiveOutboxUpdateOne) Mutation() *ArchiveOutboxMutation {
	return _u.mutation
}

// ClearMessage clears the "message" edge to the EmailMessage entity.
func (_u *ArchiveOutboxUpdateOne) ClearMessage() *ArchiveOutboxUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// Where appends a list predicates to the ArchiveOutboxUpdate builder.
func (_u *ArchiveOutboxUpdateOne) Where(ps ...predicate.ArchiveOutbox) *ArchiveOutboxUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArchiveOutboxUpdateOne) Select(field string, fields ...string) *ArchiveOutboxUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ArchiveOutbox entity.
func (_u *ArchiveOutboxUpdateOne) Save(ctx context.Context) (*ArchiveOutbox, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArchiveOutboxUpdateOne) SaveX(ctx context.Context) *ArchiveOutbox {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArchiveOutboxUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArchiveOutboxUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArchiveOutboxUpdateOne) check() error {
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ArchiveOutbox.message"`)
	}
	return nil
}

func (_u *ArchiveOutboxUpdateOne) sqlSave(ctx context.Context) (_node *ArchiveOutbox, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(archiveoutbox.Table, archiveoutbox.Columns, sqlgraph.NewFieldSpec(archiveoutbox.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ArchiveOutbox.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, archiveoutbox.FieldID)
		for _, f := range fields {
			if !archiveoutbox.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != archiveoutbox.FieldID {
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
		_spec.SetField(archiveoutbox.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlannedFor(); ok {
		_spec.SetField(archiveoutbox.FieldPlannedFor, field.TypeTime, value)
	}
	if _u.mutation.PlannedForCleared() {
		_spec.ClearField(archiveoutbox.FieldPlannedFor, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(archiveoutbox.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(archiveoutbox.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(archiveoutbox.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(archiveoutbox.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(archiveoutbox.FieldError, field.TypeString)
	}
	if _u.mutation.MessageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ArchiveOutbox{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{archiveoutbox.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
