// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"quizdeck/ent/customquiz"
	"quizdeck/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CustomQuizDelete is the builder for deleting a CustomQuiz entity.
type CustomQuizDelete struct {
	config
	hooks    []Hook
	mutation *CustomQuizMutation
}

// Where appends a list predicates to the CustomQuizDelete builder.
func (_d *CustomQuizDelete) Where(ps ...predicate.CustomQuiz) *CustomQuizDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CustomQuizDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CustomQuizDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CustomQuizDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(customquiz.Table, sqlgraph.NewFieldSpec(customquiz.FieldID, field.TypeInt))
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

// CustomQuizDeleteOne is the builder for deleting a single CustomQuiz entity.
type CustomQuizDeleteOne struct {
	_d *CustomQuizDelete
}

// Where appends a list predicates to the CustomQuizDelete builder.
func (_d *CustomQuizDeleteOne) Where(ps ...predicate.CustomQuiz) *CustomQuizDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CustomQuizDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{customquiz.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CustomQuizDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
