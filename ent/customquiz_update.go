// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"quizdeck/ent/customquiz"
	"quizdeck/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CustomQuizUpdate is the builder for updating CustomQuiz entities.
type CustomQuizUpdate struct {
	config
	hooks    []Hook
	mutation *CustomQuizMutation
}

// Where appends a list predicates to the CustomQuizUpdate builder.
func (_u *CustomQuizUpdate) Where(ps ...predicate.CustomQuiz) *CustomQuizUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CustomQuizUpdate) SetName(v string) *CustomQuizUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CustomQuizUpdate) SetNillableName(v *string) *CustomQuizUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *CustomQuizUpdate) SetData(v map[string]interface{}) *CustomQuizUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the CustomQuizMutation object of the builder.
func (_u *CustomQuizUpdate) Mutation() *CustomQuizMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CustomQuizUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CustomQuizUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CustomQuizUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CustomQuizUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CustomQuizUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := customquiz.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CustomQuiz.name": %w`, err)}
		}
	}
	return nil
}

func (_u *CustomQuizUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(customquiz.Table, customquiz.Columns, sqlgraph.NewFieldSpec(customquiz.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(customquiz.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(customquiz.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{customquiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CustomQuizUpdateOne is the builder for updating a single CustomQuiz entity.
type CustomQuizUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CustomQuizMutation
}

// SetName sets the "name" field.
func (_u *CustomQuizUpdateOne) SetName(v string) *CustomQuizUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CustomQuizUpdateOne) SetNillableName(v *string) *CustomQuizUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *CustomQuizUpdateOne) SetData(v map[string]interface{}) *CustomQuizUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the CustomQuizMutation object of the builder.
func (_u *CustomQuizUpdateOne) Mutation() *CustomQuizMutation {
	return _u.mutation
}

// Where appends a list predicates to the CustomQuizUpdate builder.
func (_u *CustomQuizUpdateOne) Where(ps ...predicate.CustomQuiz) *CustomQuizUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CustomQuizUpdateOne) Select(field string, fields ...string) *CustomQuizUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CustomQuiz entity.
func (_u *CustomQuizUpdateOne) Save(ctx context.Context) (*CustomQuiz, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CustomQuizUpdateOne) SaveX(ctx context.Context) *CustomQuiz {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CustomQuizUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CustomQuizUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CustomQuizUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := customquiz.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CustomQuiz.name": %w`, err)}
		}
	}
	return nil
}

func (_u *CustomQuizUpdateOne) sqlSave(ctx context.Context) (_node *CustomQuiz, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(customquiz.Table, customquiz.Columns, sqlgraph.NewFieldSpec(customquiz.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CustomQuiz.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, customquiz.FieldID)
		for _, f := range fields {
			if !customquiz.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != customquiz.FieldID {
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
		_spec.SetField(customquiz.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(customquiz.FieldData, field.TypeJSON, value)
	}
	_node = &CustomQuiz{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{customquiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
