// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mailscope/mailscope/ent/archiveoutbox"
	"github.com/mailscope/mailscope/ent/predicate"
)

// ArchiveOutboxDelete is the builder for deleting a ArchiveOutbox entity.
type ArchiveOutboxDelete struct {
	config
	hooks    []Hook
	mutation *ArchiveOutboxMutation
}

// Where appends a list predicates to the ArchiveOutboxDelete builder.
func (_d *ArchiveOutboxDelete) Where(ps ...predicate.ArchiveOutbox) *ArchiveOutboxDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ArchiveOutboxDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArchiveOutboxDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ArchiveOutboxDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(archiveoutbox.Table, sqlgraph.NewFieldSpec(archiveoutbox.FieldID, field.TypeInt))
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

// ArchiveOutboxDeleteOne is the builder for deleting a single ArchiveOutbox entity.
type ArchiveOutboxDeleteOne struct {
	_d *ArchiveOutboxDelete
}

// Where appends a list predicates to the ArchiveOutboxDelete builder.
func (_d *ArchiveOutboxDeleteOne) Where(ps ...predicate.ArchiveOutbox) *ArchiveOutboxDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ArchiveOutboxDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{archiveoutbox.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArchiveOutboxDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
