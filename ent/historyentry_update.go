// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"quizdeck/ent/historyentry"
	"quizdeck/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// HistoryEntryUpdate is the builder for updating HistoryEntry entities.
type HistoryEntryUpdate struct {
	config
	hooks    []Hook
	mutation *HistoryEntryMutation
}

// Where appends a list predicates to the HistoryEntryUpdate builder.
func (_u *HistoryEntryUpdate) Where(ps ...predicate.HistoryEntry) *HistoryEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *HistoryEntryUpdate) SetTitle(v string) *HistoryEntryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *HistoryEntryUpdate) SetNillableTitle(v *string) *HistoryEntryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *HistoryEntryUpdate) SetScore(v int) *HistoryEntryUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *HistoryEntryUpdate) SetNillableScore(v *int) *HistoryEntryUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *HistoryEntryUpdate) AddScore(v int) *HistoryEntryUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *HistoryEntryUpdate) SetTotal(v int) *HistoryEntryUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *HistoryEntryUpdate) SetNillableTotal(v *int) *HistoryEntryUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *HistoryEntryUpdate) AddTotal(v int) *HistoryEntryUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetData sets the "data" field.
func (_u *HistoryEntryUpdate) SetData(v map[string]interface{}) *HistoryEntryUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the HistoryEntryMutation object of the builder.
func (_u *HistoryEntryUpdate) Mutation() *HistoryEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HistoryEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HistoryEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HistoryEntryUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := historyentry.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "HistoryEntry.title": %w`, err)}
		}
	}
	return nil
}

func (_u *HistoryEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(historyentry.Table, historyentry.Columns, sqlgraph.NewFieldSpec(historyentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(historyentry.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(historyentry.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(historyentry.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(historyentry.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(historyentry.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(historyentry.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{historyentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HistoryEntryUpdateOne is the builder for updating a single HistoryEntry entity.
type HistoryEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HistoryEntryMutation
}

// SetTitle sets the "title" field.
func (_u *HistoryEntryUpdateOne) SetTitle(v string) *HistoryEntryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *HistoryEntryUpdateOne) SetNillableTitle(v *string) *HistoryEntryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *HistoryEntryUpdateOne) SetScore(v int) *HistoryEntryUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *HistoryEntryUpdateOne) SetNillableScore(v *int) *HistoryEntryUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *HistoryEntryUpdateOne) AddScore(v int) *HistoryEntryUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *HistoryEntryUpdateOne) SetTotal(v int) *HistoryEntryUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *HistoryEntryUpdateOne) SetNillableTotal(v *int) *HistoryEntryUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *HistoryEntryUpdateOne) AddTotal(v int) *HistoryEntryUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetData sets the "data" field.
func (_u *HistoryEntryUpdateOne) SetData(v map[string]interface{}) *HistoryEntryUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the HistoryEntryMutation object of the builder.
func (_u *HistoryEntryUpdateOne) Mutation() *HistoryEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the HistoryEntryUpdate builder.
func (_u *HistoryEntryUpdateOne) Where(ps ...predicate.HistoryEntry) *HistoryEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HistoryEntryUpdateOne) Select(field string, fields ...string) *HistoryEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HistoryEntry entity.
func (_u *HistoryEntryUpdateOne) Save(ctx context.Context) (*HistoryEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryEntryUpdateOne) SaveX(ctx context.Context) *HistoryEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HistoryEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HistoryEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := historyentry.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "HistoryEntry.title": %w`, err)}
		}
	}
	return nil
}

func (_u *HistoryEntryUpdateOne) sqlSave(ctx context.Context) (_node *HistoryEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(historyentry.Table, historyentry.Columns, sqlgraph.NewFieldSpec(historyentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HistoryEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, historyentry.FieldID)
		for _, f := range fields {
			if !historyentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != historyentry.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(historyentry.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(historyentry.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(historyentry.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(historyentry.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(historyentry.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(historyentry.FieldData, field.TypeJSON, value)
	}
	_node = &HistoryEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{historyentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
