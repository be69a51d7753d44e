// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mailscope/mailscope/ent/predicate"
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
)

// TaxonomyAssignmentDelete is the builder for deleting a TaxonomyAssignment entity.
type TaxonomyAssignmentDelete struct {
	config
	hooks    []Hook
	mutation *TaxonomyAssignmentMutation
}

// Where appends a list predicates to the TaxonomyAssignmentDelete builder.
func (_d *TaxonomyAssignmentDelete) Where(ps ...predicate.TaxonomyAssignment) *TaxonomyAssignmentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TaxonomyAssignmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TaxonomyAssignmentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TaxonomyAssignmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(taxonomyassignment.Table, sqlgraph.NewFieldSpec(taxonomyassignment.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// TaxonomyAssignmentDeleteOne is the builder for deleting a single TaxonomyAssignment entity.
type TaxonomyAssignmentDeleteOne struct {
	_d *TaxonomyAssignmentDelete
}

// Where appends a list predicates to the TaxonomyAssignmentDelete builder.
func (_d *TaxonomyAssignmentDeleteOne) Where(ps ...predicate.TaxonomyAssignment) *TaxonomyAssignmentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TaxonomyAssignmentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{taxonomyassignment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TaxonomyAssignmentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
