// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mailscope/mailscope/ent/emailpolicy"
	"github.com/mailscope/mailscope/ent/predicate"
)

// EmailPolicyUpdate is the builder for updating EmailPolicy entities.
type EmailPolicyUpdate struct {
	config
	hooks    []Hook
	mutation *EmailPolicyMutation
}

// Where appends a list predicates to the EmailPolicyUpdate builder.
func (_u *EmailPolicyUpdate) Where(ps ...predicate.EmailPolicy) *EmailPolicyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *EmailPolicyUpdate) SetName(v string) *EmailPolicyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EmailPolicyUpdate) SetNillableName(v *string) *EmailPolicyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *EmailPolicyUpdate) SetEnabled(v bool) *EmailPolicyUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *EmailPolicyUpdate) SetNillableEnabled(v *bool) *EmailPolicyUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *EmailPolicyUpdate) SetTriggerType(v emailpolicy.TriggerType) *EmailPolicyUpdate {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *EmailPolicyUpdate) SetNillableTriggerType(v *emailpolicy.TriggerType) *EmailPolicyUpdate {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetCadence sets the "cadence" field.
func (_u *EmailPolicyUpdate) SetCadence(v emailpolicy.Cadence) *EmailPolicyUpdate {
	_u.mutation.SetCadence(v)
	return _u
}

// SetNillableCadence sets the "cadence" field if the given value is not nil.
func (_u *EmailPolicyUpdate) SetNillableCadence(v *emailpolicy.Cadence) *EmailPolicyUpdate {
	if v != nil {
		_u.SetCadence(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *EmailPolicyUpdate) SetDefinition(v json.RawMessage) *EmailPolicyUpdate {
	_u.mutation.SetDefinition(v)
	return _u
}

// AppendDefinition appends value to the "definition" field.
func (_u *EmailPolicyUpdate) AppendDefinition(v json.RawMessage) *EmailPolicyUpdate {
	_u.mutation.AppendDefinition(v)
	return _u
}

// SetLastAppliedAt sets the "last_applied_at" field.
func (_u *EmailPolicyUpdate) SetLastAppliedAt(v time.Time) *EmailPolicyUpdate {
	_u.mutation.SetLastAppliedAt(v)
	return _u
}

// SetNillableLastAppliedAt sets the "last_applied_at" field if the given value is not nil.
func (_u *EmailPolicyUpdate) SetNillableLastAppliedAt(v *time.Time) *EmailPolicyUpdate {
	if v != nil {
		_u.SetLastAppliedAt(*v)
	}
	return _u
}

// ClearLastAppliedAt clears the value of the "last_applied_at" field.
func (_u *EmailPolicyUpdate) ClearLastAppliedAt() *EmailPolicyUpdate {
	_u.mutation.ClearLastAppliedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmailPolicyUpdate) SetUpdatedAt(v time.Time) *EmailPolicyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EmailPolicyMutation object of the builder.
func (_u *EmailPolicyUpdate) Mutation() *EmailPolicyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailPolicyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailPolicyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailPolicyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailPolicyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmailPolicyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emailpolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailPolicyUpdate) check() error {
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := emailpolicy.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "EmailPolicy.trigger_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cadence(); ok {
		if err := emailpolicy.CadenceValidator(v); err != nil {
			return &ValidationError{Name: "cadence", err: fmt.Errorf(`ent: validator failed for field "EmailPolicy.cadence": %w`, err)}
		}
	}
	return nil
}

func (_u *EmailPolicyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailpolicy.Table, emailpolicy.Columns, sqlgraph.NewFieldSpec(emailpolicy.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(emailpolicy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(emailpolicy.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(emailpolicy.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Cadence(); ok {
		_spec.SetField(emailpolicy.FieldCadence, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(emailpolicy.FieldDefinition, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDefinition(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emailpolicy.FieldDefinition, value)
		})
	}
	if value, ok := _u.mutation.LastAppliedAt(); ok {
		_spec.SetField(emailpolicy.FieldLastAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAppliedAtCleared() {
		_spec.ClearField(emailpolicy.FieldLastAppliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emailpolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailpolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailPolicyUpdateOne is the builder for updating a single EmailPolicy entity.
type EmailPolicyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailPolicyMutation
}

// SetName sets the "name" field.
func (_u *EmailPolicyUpdateOne) SetName(v string) *EmailPolicyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EmailPolicyUpdateOne) SetNillableName(v *string) *EmailPolicyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *EmailPolicyUpdateOne) SetEnabled(v bool) *EmailPolicyUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *EmailPolicyUpdateOne) SetNillableEnabled(v *bool) *EmailPolicyUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *EmailPolicyUpdateOne) SetTriggerType(v emailpolicy.TriggerType) *EmailPolicyUpdateOne {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *EmailPolicyUpdateOne) SetNillableTriggerType(v *emailpolicy.TriggerType) *EmailPolicyUpdateOne {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetCadence sets the "cadence" field.
func (_u *EmailPolicyUpdateOne) SetCadence(v emailpolicy.Cadence) *EmailPolicyUpdateOne {
	_u.mutation.SetCadence(v)
	return _u
}

// SetNillableCadence sets the "cadence" field if the given value is not nil.
func (_u *EmailPolicyUpdateOne) SetNillableCadence(v *emailpolicy.Cadence) *EmailPolicyUpdateOne {
	if v != nil {
		_u.SetCadence(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *EmailPolicyUpdateOne) SetDefinition(v json.RawMessage) *EmailPolicyUpdateOne {
	_u.mutation.SetDefinition(v)
	return _u
}

// AppendDefinition appends value to the "definition" field.
func (_u *EmailPolicyUpdateOne) AppendDefinition(v json.RawMessage) *EmailPolicyUpdateOne {
	_u.mutation.AppendDefinition(v)
	return _u
}

// SetLastAppliedAt sets the "last_applied_at" field.
func (_u *EmailPolicyUpdateOne) SetLastAppliedAt(v time.Time) *EmailPolicyUpdateOne {
	_u.mutation.SetLastAppliedAt(v)
	return _u
}

// SetNillableLastAppliedAt sets the "last_applied_at" field if the given value is not nil.
func (_u *EmailPolicyUpdateOne) SetNillableLastAppliedAt(v *time.Time) *EmailPolicyUpdateOne {
	if v != nil {
		_u.SetLastAppliedAt(*v)
	}
	return _u
}

// ClearLastAppliedAt clears the value of the "last_applied_at" field.
func (_u *EmailPolicyUpdateOne) ClearLastAppliedAt() *EmailPolicyUpdateOne {
	_u.mutation.ClearLastAppliedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmailPolicyUpdateOne) SetUpdatedAt(v time.Time) *EmailPolicyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EmailPolicyMutation object of the builder.
func (_u *EmailPolicyUpdateOne) Mutation() *EmailPolicyMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmailPolicyUpdate builder.
func (_u *EmailPolicyUpdateOne) Where(ps ...predicate.EmailPolicy) *EmailPolicyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailPolicyUpdateOne) Select(field string, fields ...string) *EmailPolicyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailPolicy entity.
func (_u *EmailPolicyUpdateOne) Save(ctx context.Context) (*EmailPolicy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailPolicyUpdateOne) SaveX(ctx context.Context) *EmailPolicy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailPolicyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailPolicyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmailPolicyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emailpolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailPolicyUpdateOne) check() error {
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := emailpolicy.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "EmailPolicy.trigger_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cadence(); ok {
		if err := emailpolicy.CadenceValidator(v); err != nil {
			return &ValidationError{Name: "cadence", err: fmt.Errorf(`ent: validator failed for field "EmailPolicy.cadence": %w`, err)}
		}
	}
	return nil
}

func (_u *EmailPolicyUpdateOne) sqlSave(ctx context.Context) (_node *EmailPolicy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailpolicy.Table, emailpolicy.Columns, sqlgraph.NewFieldSpec(emailpolicy.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmailPolicy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emailpolicy.FieldID)
		for _, f := range fields {
			if !emailpolicy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emailpolicy.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(emailpolicy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(emailpolicy.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(emailpolicy.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Cadence(); ok {
		_spec.SetField(emailpolicy.FieldCadence, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(emailpolicy.FieldDefinition, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDefinition(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emailpolicy.FieldDefinition, value)
		})
	}
	if value, ok := _u.mutation.LastAppliedAt(); ok {
		_spec.SetField(emailpolicy.FieldLastAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAppliedAtCleared() {
		_spec.ClearField(emailpolicy.FieldLastAppliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emailpolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EmailPolicy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailpolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
