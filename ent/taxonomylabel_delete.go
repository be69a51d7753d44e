// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mailscope/mailscope/ent/predicate"
	"github.com/mailscope/mailscope/ent/taxonomylabel"
)

// TaxonomyLabelDelete is the builder for deleting a TaxonomyLabel entity.
type TaxonomyLabelDelete struct {
	config
	hooks    []Hook
	mutation *TaxonomyLabelMutation
}

// Where appends a list predicates to the TaxonomyLabelDelete builder.
func (_d *TaxonomyLabelDelete) Where(ps ...predicate.TaxonomyLabel) *TaxonomyLabelDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TaxonomyLabelDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TaxonomyLabelDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TaxonomyLabelDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(taxonomylabel.Table, sqlgraph.NewFieldSpec(taxonomylabel.FieldID, field.TypeInt))
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

// TaxonomyLabelDeleteOne is the builder for deleting a single TaxonomyLabel entity.
type TaxonomyLabelDeleteOne struct {
	_d *TaxonomyLabelDelete
}

// Where appends a list predicates to the TaxonomyLabelDelete builder.
func (_d *TaxonomyLabelDeleteOne) Where(ps ...predicate.TaxonomyLabel) *TaxonomyLabelDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TaxonomyLabelDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{taxonomylabel.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TaxonomyLabelDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
