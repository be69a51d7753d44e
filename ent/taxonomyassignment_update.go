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
	"github.com/mailscope/mailscope/ent/predicate"
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
	"github.com/mailscope/mailscope/ent/taxonomylabel"
)

// TaxonomyAssignmentUpdate is the builder for updating TaxonomyAssignment entities.
type TaxonomyAssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *TaxonomyAssignmentMutation
}

// Where appends a list predicates to the TaxonomyAssignmentUpdate builder.
func (_u *TaxonomyAssignmentUpdate) Where(ps ...predicate.TaxonomyAssignment) *TaxonomyAssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *TaxonomyAssignmentUpdate) SetMessageID(v string) *TaxonomyAssignmentUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *TaxonomyAssignmentUpdate) SetNillableMessageID(v *string) *TaxonomyAssignmentUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetLabelID sets the "label_id" field.
func (_u *TaxonomyAssignmentUpdate) SetLabelID(v int) *TaxonomyAssignmentUpdate {
	_u.mutation.SetLabelID(v)
	return _u
}

// SetNillableLabelID sets the "label_id" field if the given value is not nil.
func (_u *TaxonomyAssignmentUpdate) SetNillableLabelID(v *int) *TaxonomyAssignmentUpdate {
	if v != nil {
		_u.SetLabelID(*v)
	}
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *TaxonomyAssignmentUpdate) SetAssignedAt(v time.Time) *TaxonomyAssignmentUpdate {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *TaxonomyAssignmentUpdate) SetNillableAssignedAt(v *time.Time) *TaxonomyAssignmentUpdate {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TaxonomyAssignmentUpdate) SetConfidence(v float64) *TaxonomyAssignmentUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TaxonomyAssignmentUpdate) SetNillableConfidence(v *float64) *TaxonomyAssignmentUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TaxonomyAssignmentUpdate) AddConfidence(v float64) *TaxonomyAssignmentUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *TaxonomyAssignmentUpdate) ClearConfidence() *TaxonomyAssignmentUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetMessage sets the "message" edge to the EmailMessage entity.
func (_u *TaxonomyAssignmentUpdate) SetMessage(v *EmailMessage) *TaxonomyAssignmentUpdate {
	return _u.SetMessageID(v.ID)
}

// SetLabel sets the "label" edge to the TaxonomyLabel entity.
func (_u *TaxonomyAssignmentUpdate) SetLabel(v *TaxonomyLabel) *TaxonomyAssignmentUpdate {
	return _u.SetLabelID(v.ID)
}

// Mutation returns the TaxonomyAssignmentMutation object of the builder.
func (_u *TaxonomyAssignmentUpdate) Mutation() *TaxonomyAssignmentMutation {
	return _u.mutation
}

// ClearMessage clears the "message" edge to the EmailMessage entity.
func (_u *TaxonomyAssignmentUpdate) ClearMessage() *TaxonomyAssignmentUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// ClearLabel clears the "label" edge to the TaxonomyLabel entity.
func (_u *TaxonomyAssignmentUpdate) ClearLabel() *TaxonomyAssignmentUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaxonomyAssignmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaxonomyAssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaxonomyAssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaxonomyAssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaxonomyAssignmentUpdate) check() error {
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaxonomyAssignment.message"`)
	}
	if _u.mutation.LabelCleared() && len(_u.mutation.LabelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaxonomyAssignment.label"`)
	}
	return nil
}

func (_u *TaxonomyAssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taxonomyassignment.Table, taxonomyassignment.Columns, sqlgraph.NewFieldSpec(taxonomyassignment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(taxonomyassignment.FieldAssignedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(taxonomyassignment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(taxonomyassignment.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(taxonomyassignment.FieldConfidence, field.TypeFloat64)
	}
	if _u.mutation.MessageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LabelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taxonomyassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaxonomyAssignmentUpdateOne is the builder for updating a single TaxonomyAssignment entity.
type TaxonomyAssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaxonomyAssignmentMutation
}

// SetMessageID sets the "message_id" field.
func (_u *TaxonomyAssignmentUpdateOne) SetMessageID(v string) *TaxonomyAssignmentUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *TaxonomyAssignmentUpdateOne) SetNillableMessageID(v *string) *TaxonomyAssignmentUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetLabelID sets the "label_id" field.
func (_u *TaxonomyAssignmentUpdateOne) SetLabelID(v int) *TaxonomyAssignmentUpdateOne {
	_u.mutation.SetLabelID(v)
	return _u
}

// SetNillableLabelID sets the "label_id" field if the given value is not nil.
func (_u *TaxonomyAssignmentUpdateOne) SetNillableLabelID(v *int) *TaxonomyAssignmentUpdateOne {
	if v != nil {
		_u.SetLabelID(*v)
	}
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *TaxonomyAssignmentUpdateOne) SetAssignedAt(v time.Time) *TaxonomyAssignmentUpdateOne {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *TaxonomyAssignmentUpdateOne) SetNillableAssignedAt(v *time.Time) *TaxonomyAssignmentUpdateOne {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TaxonomyAssignmentUpdateOne) SetConfidence(v float64) *TaxonomyAssignmentUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TaxonomyAssignmentUpdateOne) SetNillableConfidence(v *float64) *TaxonomyAssignmentUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TaxonomyAssignmentUpdateOne) AddConfidence(v float64) *TaxonomyAssignmentUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *TaxonomyAssignmentUpdateOne) ClearConfidence() *TaxonomyAssignmentUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetMessage sets the "message" edge to the EmailMessage entity.
func (_u *TaxonomyAssignmentUpdateOne) SetMessage(v *EmailMessage) *TaxonomyAssignmentUpdateOne {
	return _u.SetMessageID(v.ID)
}

// SetLabel sets the "label" edge to the TaxonomyLabel entity.
func (_u *TaxonomyAssignmentUpdateOne) SetLabel(v *TaxonomyLabel) *TaxonomyAssignmentUpdateOne {
	return _u.SetLabelID(v.ID)
}

// Mutation returns the TaxonomyAssignmentMutation object of the builder.
func (_u *TaxonomyAssignmentUpdateOne) Mutation() *TaxonomyAssignmentMutation {
	return _u.mutation
}

// ClearMessage clears the "message" edge to the EmailMessage entity.
func (_u *TaxonomyAssignmentUpdateOne) ClearMessage() *TaxonomyAssignmentUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// ClearLabel clears the "label" edge to the TaxonomyLabel entity.
func (_u *TaxonomyAssignmentUpdateOne) ClearLabel() *TaxonomyAssignmentUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// Where appends a list predicates to the TaxonomyAssignmentUpdate builder.
func (_u *TaxonomyAssignmentUpdateOne) Where(ps ...predicate.TaxonomyAssignment) *TaxonomyAssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaxonomyAssignmentUpdateOne) Select(field string, fields ...string) *TaxonomyAssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaxonomyAssignment entity.
func (_u *TaxonomyAssignmentUpdateOne) Save(ctx context.Context) (*TaxonomyAssignment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaxonomyAssignmentUpdateOne) SaveX(ctx context.Context) *TaxonomyAssignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaxonomyAssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaxonomyAssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaxonomyAssignmentUpdateOne) check() error {
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaxonomyAssignment.message"`)
	}
	if _u.mutation.LabelCleared() && len(_u.mutation.LabelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaxonomyAssignment.label"`)
	}
	return nil
}

func (_u *TaxonomyAssignmentUpdateOne) sqlSave(ctx context.Context) (_node *TaxonomyAssignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taxonomyassignment.Table, taxonomyassignment.Columns, sqlgraph.NewFieldSpec(taxonomyassignment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaxonomyAssignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taxonomyassignment.FieldID)
		for _, f := range fields {
			if !taxonomyassignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taxonomyassignment.FieldID {
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
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(taxonomyassignment.FieldAssignedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(taxonomyassignment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(taxonomyassignment.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(taxonomyassignment.FieldConfidence, field.TypeFloat64)
	}
	if _u.mutation.MessageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LabelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaxonomyAssignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taxonomyassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
