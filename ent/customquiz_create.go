// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"quizdeck/ent/customquiz"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CustomQuizCreate is the builder for creating a CustomQuiz entity.
type CustomQuizCreate struct {
	config
	mutation *CustomQuizMutation
	hooks    []Hook
}

// SetQuizID sets the "quiz_id" field.
func (_c *CustomQuizCreate) SetQuizID(v string) *CustomQuizCreate {
	_c.mutation.SetQuizID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CustomQuizCreate) SetName(v string) *CustomQuizCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetData sets the "data" field.
func (_c *CustomQuizCreate) SetData(v map[string]interface{}) *CustomQuizCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *CustomQuizCreate) SetUploadedAt(v time.Time) *CustomQuizCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *CustomQuizCreate) SetNillableUploadedAt(v *time.Time) *CustomQuizCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// Mutation returns the CustomQuizMutation object of the builder.
func (_c *CustomQuizCreate) Mutation() *CustomQuizMutation {
	return _c.mutation
}

// Save creates the CustomQuiz in the database.
func (_c *CustomQuizCreate) Save(ctx context.Context) (*CustomQuiz, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CustomQuizCreate) SaveX(ctx context.Context) *CustomQuiz {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CustomQuizCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CustomQuizCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CustomQuizCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := customquiz.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CustomQuizCreate) check() error {
	if _, ok := _c.mutation.QuizID(); !ok {
		return &ValidationError{Name: "quiz_id", err: errors.New(`ent: missing required field "CustomQuiz.quiz_id"`)}
	}
	if v, ok := _c.mutation.QuizID(); ok {
		if err := customquiz.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "CustomQuiz.quiz_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "CustomQuiz.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := customquiz.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CustomQuiz.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "CustomQuiz.data"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "CustomQuiz.uploaded_at"`)}
	}
	return nil
}

func (_c *CustomQuizCreate) sqlSave(ctx context.Context) (*CustomQuiz, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CustomQuizCreate) createSpec() (*CustomQuiz, *sqlgraph.CreateSpec) {
	var (
		_node = &CustomQuiz{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(customquiz.Table, sqlgraph.NewFieldSpec(customquiz.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuizID(); ok {
		_spec.SetField(customquiz.FieldQuizID, field.TypeString, value)
		_node.QuizID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(customquiz.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(customquiz.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(customquiz.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	return _node, _spec
}

// CustomQuizCreateBulk is the builder for creating many CustomQuiz entities in bulk.
type CustomQuizCreateBulk struct {
	config
	err      error
	builders []*CustomQuizCreate
}

// Save creates the CustomQuiz entities in the database.
func (_c *CustomQuizCreateBulk) Save(ctx context.Context) ([]*CustomQuiz, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CustomQuiz, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CustomQuizMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CustomQuizCreateBulk) SaveX(ctx context.Context) []*CustomQuiz {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CustomQuizCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CustomQuizCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
