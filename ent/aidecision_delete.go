// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/aidecision"
	"github.com/shipdesk/shipdesk/ent/predicate"
)

// AIDecisionDelete is the builder for deleting a AIDecision entity.
type AIDecisionDelete struct {
	config
	hooks    []Hook
	mutation *AIDecisionMutation
}

// Where appends a list predicates to the AIDecisionDelete builder.
func (_d *AIDecisionDelete) Where(ps ...predicate.AIDecision) *AIDecisionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AIDecisionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AIDecisionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AIDecisionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(aidecision.Table, sqlgraph.NewFieldSpec(aidecision.FieldID, field.TypeString))
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

// AIDecisionDeleteOne is the builder for deleting a single AIDecision entity.
type AIDecisionDeleteOne struct {
	_d *AIDecisionDelete
}

// Where appends a list predicates to the AIDecisionDelete builder.
func (_d *AIDecisionDeleteOne) Where(ps ...predicate.AIDecision) *AIDecisionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AIDecisionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{aidecision.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AIDecisionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
