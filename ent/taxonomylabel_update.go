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
	"github.com/mailscope/mailscope/ent/predicate"
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
	"github.com/mailscope/mailscope/ent/taxonomylabel"
)

// TaxonomyLabelUpdate is the builder for updating TaxonomyLabel entities.
type TaxonomyLabelUpdate struct {
	config
	hooks    []Hook
	mutation *TaxonomyLabelMutation
}

// Where appends a list predicates to the TaxonomyLabelUpdate builder.
func (_u *TaxonomyLabelUpdate) Where(ps ...predicate.TaxonomyLabel) *TaxonomyLabelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLevel sets the "level" field.
func (_u *TaxonomyLabelUpdate) SetLevel(v int) *TaxonomyLabelUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *TaxonomyLabelUpdate) SetNillableLevel(v *int) *TaxonomyLabelUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *TaxonomyLabelUpdate) AddLevel(v int) *TaxonomyLabelUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *TaxonomyLabelUpdate) SetSlug(v string) *TaxonomyLabelUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *TaxonomyLabelUpdate) SetNillableSlug(v *string) *TaxonomyLabelUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TaxonomyLabelUpdate) SetName(v string) *TaxonomyLabelUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaxonomyLabelUpdate) SetNillableName(v *string) *TaxonomyLabelUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaxonomyLabelUpdate) SetDescription(v string) *TaxonomyLabelUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaxonomyLabelUpdate) SetNillableDescription(v *string) *TaxonomyLabelUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaxonomyLabelUpdate) ClearDescription() *TaxonomyLabelUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *TaxonomyLabelUpdate) SetParentID(v int) *TaxonomyLabelUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *TaxonomyLabelUpdate) SetNillableParentID(v *int) *TaxonomyLabelUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *TaxonomyLabelUpdate) ClearParentID() *TaxonomyLabelUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetRetentionDays sets the "retention_days" field.
func (_u *TaxonomyLabelUpdate) SetRetentionDays(v int) *TaxonomyLabelUpdate {
	_u.mutation.ResetRetentionDays()
	_u.mutation.SetRetentionDays(v)
	return _u
}

// SetNillableRetentionDays sets the "retention_days" field if the given value is not nil.
func (_u *TaxonomyLabelUpdate) SetNillableRetentionDays(v *int) *TaxonomyLabelUpdate {
	if v != nil {
		_u.SetRetentionDays(*v)
	}
	return _u
}

// AddRetentionDays adds value to the "retention_days" field.
func (_u *TaxonomyLabelUpdate) AddRetentionDays(v int) *TaxonomyLabelUpdate {
	_u.mutation.AddRetentionDays(v)
	return _u
}

// ClearRetentionDays clears the value of the "retention_days" field.
func (_u *TaxonomyLabelUpdate) ClearRetentionDays() *TaxonomyLabelUpdate {
	_u.mutation.ClearRetentionDays()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TaxonomyLabelUpdate) SetIsActive(v bool) *TaxonomyLabelUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TaxonomyLabelUpdate) SetNillableIsActive(v *bool) *TaxonomyLabelUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetGmailLabelID sets the "gmail_label_id" field.
func (_u *TaxonomyLabelUpdate) SetGmailLabelID(v string) *TaxonomyLabelUpdate {
	_u.mutation.SetGmailLabelID(v)
	return _u
}

// SetNillableGmailLabelID sets the "gmail_label_id" field if the given value is not nil.
func (_u *TaxonomyLabelUpdate) SetNillableGmailLabelID(v *string) *TaxonomyLabelUpdate {
	if v != nil {
		_u.SetGmailLabelID(*v)
	}
	return _u
}

// ClearGmailLabelID clears the value of the "gmail_label_id" field.
func (_u *TaxonomyLabelUpdate) ClearGmailLabelID() *TaxonomyLabelUpdate {
	_u.mutation.ClearGmailLabelID()
	return _u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_u *TaxonomyLabelUpdate) SetLastSyncAt(v time.Time) *TaxonomyLabelUpdate {
	_u.mutation.SetLastSyncAt(v)
	return _u
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_u *TaxonomyLabelUpdate) SetNillableLastSyncAt(v *time.Time) *TaxonomyLabelUpdate {
	if v != nil {
		_u.SetLastSyncAt(*v)
	}
	return _u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (_u *TaxonomyLabelUpdate) ClearLastSyncAt() *TaxonomyLabelUpdate {
	_u.mutation.ClearLastSyncAt()
	return _u
}

// SetLastSyncStatus sets the "last_sync_status" field.
func (_u *TaxonomyLabelUpdate) SetLastSyncStatus(v string) *TaxonomyLabelUpdate {
	_u.mutation.SetLastSyncStatus(v)
	return _u
}

// SetNillableLastSyncStatus sets the "last_sync_status" field if the given value is not nil.
func (_u *TaxonomyLabelUpdate) SetNillableLastSyncStatus(v *string) *TaxonomyLabelUpdate {
	if v != nil {
		_u.SetLastSyncStatus(*v)
	}
	return _u
}

// ClearLastSyncStatus clears the value of the "last_sync_status" field.
func (_u *TaxonomyLabelUpdate) ClearLastSyncStatus() *TaxonomyLabelUpdate {
	_u.mutation.ClearLastSyncStatus()
	return _u
}

// SetParent sets the "parent" edge to the TaxonomyLabel entity.
func (_u *TaxonomyLabelUpdate) SetParent(v *TaxonomyLabel) *TaxonomyLabelUpdate {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the TaxonomyLabel entity by IDs.
func (_u *TaxonomyLabelUpdate) AddChildIDs(ids ...int) *TaxonomyLabelUpdate {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the TaxonomyLabel entity.
func (_u *TaxonomyLabelUpdate) AddChildren(v ...*TaxonomyLabel) *TaxonomyLabelUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the TaxonomyAssignment entity by IDs.
func (_u *TaxonomyLabelUpdate) AddAssignmentIDs(ids ...int) *TaxonomyLabelUpdate {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the TaxonomyAssignment entity.
func (_u *TaxonomyLabelUpdate) AddAssignments(v ...*TaxonomyAssignment) *TaxonomyLabelUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// Mutation returns the TaxonomyLabelMutation object of the builder.
func (_u *TaxonomyLabelUpdate) Mutation() *TaxonomyLabelMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the TaxonomyLabel entity.
func (_u *TaxonomyLabelUpdate) ClearParent() *TaxonomyLabelUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the TaxonomyLabel entity.
func (_u *TaxonomyLabelUpdate) ClearChildren() *TaxonomyLabelUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to TaxonomyLabel entities by IDs.
func (_u *TaxonomyLabelUpdate) RemoveChildIDs(ids ...int) *TaxonomyLabelUpdate {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to TaxonomyLabel entities.
func (_u *TaxonomyLabelUpdate) RemoveChildren(v ...*TaxonomyLabel) *TaxonomyLabelUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the TaxonomyAssignment entity.
func (_u *TaxonomyLabelUpdate) ClearAssignments() *TaxonomyLabelUpdate {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to TaxonomyAssignment entities by IDs.
func (_u *TaxonomyLabelUpdate) RemoveAssignmentIDs(ids ...int) *TaxonomyLabelUpdate {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to TaxonomyAssignment entities.
func (_u *TaxonomyLabelUpdate) RemoveAssignments(v ...*TaxonomyAssignment) *TaxonomyLabelUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaxonomyLabelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaxonomyLabelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaxonomyLabelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaxonomyLabelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaxonomyLabelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(taxonomylabel.Table, taxonomylabel.Columns, sqlgraph.NewFieldSpec(taxonomylabel.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(taxonomylabel.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(taxonomylabel.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(taxonomylabel.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(taxonomylabel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(taxonomylabel.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(taxonomylabel.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RetentionDays(); ok {
		_spec.SetField(taxonomylabel.FieldRetentionDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetentionDays(); ok {
		_spec.AddField(taxonomylabel.FieldRetentionDays, field.TypeInt, value)
	}
	if _u.mutation.RetentionDaysCleared() {
		_spec.ClearField(taxonomylabel.FieldRetentionDays, field.TypeInt)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(taxonomylabel.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GmailLabelID(); ok {
		_spec.SetField(taxonomylabel.FieldGmailLabelID, field.TypeString, value)
	}
	if _u.mutation.GmailLabelIDCleared() {
		_spec.ClearField(taxonomylabel.FieldGmailLabelID, field.TypeString)
	}
	if value, ok := _u.mutation.LastSyncAt(); ok {
		_spec.SetField(taxonomylabel.FieldLastSyncAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncAtCleared() {
		_spec.ClearField(taxonomylabel.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSyncStatus(); ok {
		_spec.SetField(taxonomylabel.FieldLastSyncStatus, field.TypeString, value)
	}
	if _u.mutation.LastSyncStatusCleared() {
		_spec.ClearField(taxonomylabel.FieldLastSyncStatus, field.TypeString)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taxonomylabel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaxonomyLabelUpdateOne is the builder for updating a single TaxonomyLabel entity.
type TaxonomyLabelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaxonomyLabelMutation
}

// SetLevel sets the "level" field.
func (_u *TaxonomyLabelUpdateOne) SetLevel(v int) *TaxonomyLabelUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *TaxonomyLabelUpdateOne) SetNillableLevel(v *int) *TaxonomyLabelUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *TaxonomyLabelUpdateOne) AddLevel(v int) *TaxonomyLabelUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *TaxonomyLabelUpdateOne) SetSlug(v string) *TaxonomyLabelUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *TaxonomyLabelUpdateOne) SetNillableSlug(v *string) *TaxonomyLabelUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TaxonomyLabelUpdateOne) SetName(v string) *TaxonomyLabelUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaxonomyLabelUpdateOne) SetNillableName(v *string) *TaxonomyLabelUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaxonomyLabelUpdateOne) SetDescription(v string) *TaxonomyLabelUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaxonomyLabelUpdateOne) SetNillableDescription(v *string) *TaxonomyLabelUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaxonomyLabelUpdateOne) ClearDescription() *TaxonomyLabelUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *TaxonomyLabelUpdateOne) SetParentID(v int) *TaxonomyLabelUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *TaxonomyLabelUpdateOne) SetNillableParentID(v *int) *TaxonomyLabelUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *TaxonomyLabelUpdateOne) ClearParentID() *TaxonomyLabelUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetRetentionDays sets the "retention_days" field.
func (_u *TaxonomyLabelUpdateOne) SetRetentionDays(v int) *TaxonomyLabelUpdateOne {
	_u.mutation.ResetRetentionDays()
	_u.mutation.SetRetentionDays(v)
	return _u
}

// SetNillableRetentionDays sets the "retention_days" field if the given value is not nil.
func (_u *TaxonomyLabelUpdateOne) SetNillableRetentionDays(v *int) *TaxonomyLabelUpdateOne {
	if v != nil {
		_u.SetRetentionDays(*v)
	}
	return _u
}

// AddRetentionDays adds value to the "retention_days" field.
func (_u *TaxonomyLabelUpdateOne) AddRetentionDays(v int) *TaxonomyLabelUpdateOne {
	_u.mutation.AddRetentionDays(v)
	return _u
}

// ClearRetentionDays clears the value of the "retention_days" field.
func (_u *TaxonomyLabelUpdateOne) ClearRetentionDays() *TaxonomyLabelUpdateOne {
	_u.mutation.ClearRetentionDays()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TaxonomyLabelUpdateOne) SetIsActive(v bool) *TaxonomyLabelUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TaxonomyLabelUpdateOne) SetNillableIsActive(v *bool) *TaxonomyLabelUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetGmailLabelID sets the "gmail_label_id" field.
func (_u *TaxonomyLabelUpdateOne) SetGmailLabelID(v string) *TaxonomyLabelUpdateOne {
	_u.mutation.SetGmailLabelID(v)
	return _u
}

// SetNillableGmailLabelID sets the "gmail_label_id" field if the given value is not nil.
func (_u *TaxonomyLabelUpdateOne) SetNillableGmailLabelID(v *string) *TaxonomyLabelUpdateOne {
	if v != nil {
		_u.SetGmailLabelID(*v)
	}
	return _u
}

// ClearGmailLabelID clears the value of the "gmail_label_id" field.
func (_u *TaxonomyLabelUpdateOne) ClearGmailLabelID() *TaxonomyLabelUpdateOne {
	_u.mutation.ClearGmailLabelID()
	return _u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_u *TaxonomyLabelUpdateOne) SetLastSyncAt(v time.Time) *TaxonomyLabelUpdateOne {
	_u.mutation.SetLastSyncAt(v)
	return _u
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_u *TaxonomyLabelUpdateOne) SetNillableLastSyncAt(v *time.Time) *TaxonomyLabelUpdateOne {
	if v != nil {
		_u.SetLastSyncAt(*v)
	}
	return _u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (_u *TaxonomyLabelUpdateOne) ClearLastSyncAt() *TaxonomyLabelUpdateOne {
	_u.mutation.ClearLastSyncAt()
	return _u
}

// SetLastSyncStatus sets the "last_sync_status" field.
func (_u *TaxonomyLabelUpdateOne) SetLastSyncStatus(v string) *TaxonomyLabelUpdateOne {
	_u.mutation.SetLastSyncStatus(v)
	return _u
}

// SetNillableLastSyncStatus sets the "last_sync_status" field if the given value is not nil.
func (_u *TaxonomyLabelUpdateOne) SetNillableLastSyncStatus(v *string) *TaxonomyLabelUpdateOne {
	if v != nil {
		_u.SetLastSyncStatus(*v)
	}
	return _u
}

// ClearLastSyncStatus clears the value of the "last_sync_status" field.
func (_u *TaxonomyLabelUpdateOne) ClearLastSyncStatus() *TaxonomyLabelUpdateOne {
	_u.mutation.ClearLastSyncStatus()
	return _u
}

// SetParent sets the "parent" edge to the TaxonomyLabel entity.
func (_u *TaxonomyLabelUpdateOne) SetParent(v *TaxonomyLabel) *TaxonomyLabelUpdateOne {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the TaxonomyLabel entity by IDs.
func (_u *TaxonomyLabelUpdateOne) AddChildIDs(ids ...int) *TaxonomyLabelUpdateOne {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the TaxonomyLabel entity.
func (_u *TaxonomyLabelUpdateOne) AddChildren(v ...*TaxonomyLabel) *TaxonomyLabelUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the TaxonomyAssignment entity by IDs.
func (_u *TaxonomyLabelUpdateOne) AddAssignmentIDs(ids ...int) *TaxonomyLabelUpdateOne {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the TaxonomyAssignment entity.
func (_u *TaxonomyLabelUpdateOne) AddAssignments(v ...*TaxonomyAssignment) *TaxonomyLabelUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// Mutation returns the TaxonomyLabelMutation object of the builder.
func (_u *TaxonomyLabelUpdateOne) Mutation() *TaxonomyLabelMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the TaxonomyLabel entity.
func (_u *TaxonomyLabelUpdateOne) ClearParent() *TaxonomyLabelUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the TaxonomyLabel entity.
func (_u *TaxonomyLabelUpdateOne) ClearChildren() *TaxonomyLabelUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to TaxonomyLabel entities by IDs.
func (_u *TaxonomyLabelUpdateOne) RemoveChildIDs(ids ...int) *TaxonomyLabelUpdateOne {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to TaxonomyLabel entities.
func (_u *TaxonomyLabelUpdateOne) RemoveChildren(v ...*TaxonomyLabel) *TaxonomyLabelUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the TaxonomyAssignment entity.
func (_u *TaxonomyLabelUpdateOne) ClearAssignments() *TaxonomyLabelUpdateOne {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to TaxonomyAssignment entities by IDs.
func (_u *TaxonomyLabelUpdateOne) RemoveAssignmentIDs(ids ...int) *TaxonomyLabelUpdateOne {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to TaxonomyAssignment entities.
func (_u *TaxonomyLabelUpdateOne) RemoveAssignments(v ...*TaxonomyAssignment) *TaxonomyLabelUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// Where appends a list predicates to the TaxonomyLabelUpdate builder.
func (_u *TaxonomyLabelUpdateOne) Where(ps ...predicate.TaxonomyLabel) *TaxonomyLabelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaxonomyLabelUpdateOne) Select(field string, fields ...string) *TaxonomyLabelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaxonomyLabel entity.
func (_u *TaxonomyLabelUpdateOne) Save(ctx context.Context) (*TaxonomyLabel, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaxonomyLabelUpdateOne) SaveX(ctx context.Context) *TaxonomyLabel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaxonomyLabelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaxonomyLabelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaxonomyLabelUpdateOne) sqlSave(ctx context.Context) (_node *TaxonomyLabel, err error) {
	_spec := sqlgraph.NewUpdateSpec(taxonomylabel.Table, taxonomylabel.Columns, sqlgraph.NewFieldSpec(taxonomylabel.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaxonomyLabel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taxonomylabel.FieldID)
		for _, f := range fields {
			if !taxonomylabel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taxonomylabel.FieldID {
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
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(taxonomylabel.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(taxonomylabel.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(taxonomylabel.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(taxonomylabel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(taxonomylabel.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(taxonomylabel.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RetentionDays(); ok {
		_spec.SetField(taxonomylabel.FieldRetentionDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetentionDays(); ok {
		_spec.AddField(taxonomylabel.FieldRetentionDays, field.TypeInt, value)
	}
	if _u.mutation.RetentionDaysCleared() {
		_spec.ClearField(taxonomylabel.FieldRetentionDays, field.TypeInt)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(taxonomylabel.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GmailLabelID(); ok {
		_spec.SetField(taxonomylabel.FieldGmailLabelID, field.TypeString, value)
	}
	if _u.mutation.GmailLabelIDCleared() {
		_spec.ClearField(taxonomylabel.FieldGmailLabelID, field.TypeString)
	}
	if value, ok := _u.mutation.LastSyncAt(); ok {
		_spec.SetField(taxonomylabel.FieldLastSyncAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncAtCleared() {
		_spec.ClearField(taxonomylabel.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSyncStatus(); ok {
		_spec.SetField(taxonomylabel.FieldLastSyncStatus, field.TypeString, value)
	}
	if _u.mutation.LastSyncStatusCleared() {
		_spec.ClearField(taxonomylabel.FieldLastSyncStatus, field.TypeString)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaxonomyLabel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taxonomylabel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
