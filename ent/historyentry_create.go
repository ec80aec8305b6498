// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"quizdeck/ent/historyentry"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// HistoryEntryCreate is the builder for creating a HistoryEntry entity.
type HistoryEntryCreate struct {
	config
	mutation *HistoryEntryMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *HistoryEntryCreate) SetTitle(v string) *HistoryEntryCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *HistoryEntryCreate) SetTakenAt(v time.Time) *HistoryEntryCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *HistoryEntryCreate) SetNillableTakenAt(v *time.Time) *HistoryEntryCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *HistoryEntryCreate) SetScore(v int) *HistoryEntryCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *HistoryEntryCreate) SetTotal(v int) *HistoryEntryCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetData sets the "data" field.
func (_c *HistoryEntryCreate) SetData(v map[string]interface{}) *HistoryEntryCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the HistoryEntryMutation object of the builder.
func (_c *HistoryEntryCreate) Mutation() *HistoryEntryMutation {
	return _c.mutation
}

// Save creates the HistoryEntry in the database.
func (_c *HistoryEntryCreate) Save(ctx context.Context) (*HistoryEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HistoryEntryCreate) SaveX(ctx context.Context) *HistoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HistoryEntryCreate) defaults() {
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := historyentry.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HistoryEntryCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "HistoryEntry.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := historyentry.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "HistoryEntry.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "HistoryEntry.taken_at"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "HistoryEntry.score"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "HistoryEntry.total"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "HistoryEntry.data"`)}
	}
	return nil
}

func (_c *HistoryEntryCreate) sqlSave(ctx context.Context) (*HistoryEntry, error) {
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

func (_c *HistoryEntryCreate) createSpec() (*HistoryEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &HistoryEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(historyentry.Table, sqlgraph.NewFieldSpec(historyentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(historyentry.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(historyentry.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(historyentry.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(historyentry.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(historyentry.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// HistoryEntryCreateBulk is the builder for creating many HistoryEntry entities in bulk.
type HistoryEntryCreateBulk struct {
	config
	err      error
	builders []*HistoryEntryCreate
}

// Save creates the HistoryEntry entities in the database.
func (_c *HistoryEntryCreateBulk) Save(ctx context.Context) ([]*HistoryEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HistoryEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HistoryEntryMutation)
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
func (_c *HistoryEntryCreateBulk) SaveX(ctx context.Context) []*HistoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
