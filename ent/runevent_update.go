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
	"github.com/marksaft/gramiz/ent/predicate"
	"github.com/marksaft/gramiz/ent/runevent"
)

// RunEventUpdate is the builder for updating RunEvent entities.
type RunEventUpdate struct {
	config
	hooks    []Hook
	mutation *RunEventMutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdate) Where(ps ...predicate.RunEvent) *RunEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *RunEventUpdate) SetRunID(v string) *RunEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableRunID(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *RunEventUpdate) SetMode(v string) *RunEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableMode(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *RunEventUpdate) SetScore(v int) *RunEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableScore(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RunEventUpdate) AddScore(v int) *RunEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *RunEventUpdate) SetTotal(v int) *RunEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableTotal(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *RunEventUpdate) AddTotal(v int) *RunEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetTimeRemaining sets the "time_remaining" field.
func (_u *RunEventUpdate) SetTimeRemaining(v int) *RunEventUpdate {
	_u.mutation.ResetTimeRemaining()
	_u.mutation.SetTimeRemaining(v)
	return _u
}

// SetNillableTimeRemaining sets the "time_remaining" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableTimeRemaining(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetTimeRemaining(*v)
	}
	return _u
}

// AddTimeRemaining adds value to the "time_remaining" field.
func (_u *RunEventUpdate) AddTimeRemaining(v int) *RunEventUpdate {
	_u.mutation.AddTimeRemaining(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *RunEventUpdate) SetTimestamp(v time.Time) *RunEventUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableTimestamp(v *time.Time) *RunEventUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdate) Mutation() *RunEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RunEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(runevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(runevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(runevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(runevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(runevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(runevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeRemaining(); ok {
		_spec.SetField(runevent.FieldTimeRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeRemaining(); ok {
		_spec.AddField(runevent.FieldTimeRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(runevent.FieldTimestamp, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunEventUpdateOne is the builder for updating a single RunEvent entity.
type RunEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *RunEventUpdateOne) SetRunID(v string) *RunEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableRunID(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *RunEventUpdateOne) SetMode(v string) *RunEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableMode(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *RunEventUpdateOne) SetScore(v int) *RunEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableScore(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RunEventUpdateOne) AddScore(v int) *RunEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *RunEventUpdateOne) SetTotal(v int) *RunEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableTotal(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *RunEventUpdateOne) AddTotal(v int) *RunEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetTimeRemaining sets the "time_remaining" field.
func (_u *RunEventUpdateOne) SetTimeRemaining(v int) *RunEventUpdateOne {
	_u.mutation.ResetTimeRemaining()
	_u.mutation.SetTimeRemaining(v)
	return _u
}

// SetNillableTimeRemaining sets the "time_remaining" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableTimeRemaining(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetTimeRemaining(*v)
	}
	return _u
}

// AddTimeRemaining adds value to the "time_remaining" field.
func (_u *RunEventUpdateOne) AddTimeRemaining(v int) *RunEventUpdateOne {
	_u.mutation.AddTimeRemaining(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *RunEventUpdateOne) SetTimestamp(v time.Time) *RunEventUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableTimestamp(v *time.Time) *RunEventUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdateOne) Mutation() *RunEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdateOne) Where(ps ...predicate.RunEvent) *RunEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunEventUpdateOne) Select(field string, fields ...string) *RunEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunEvent entity.
func (_u *RunEventUpdateOne) Save(ctx context.Context) (*RunEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdateOne) SaveX(ctx context.Context) *RunEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RunEventUpdateOne) sqlSave(ctx context.Context) (_node *RunEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runevent.FieldID)
		for _, f := range fields {
			if !runevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(runevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(runevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(runevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(runevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(runevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(runevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeRemaining(); ok {
		_spec.SetField(runevent.FieldTimeRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeRemaining(); ok {
		_spec.AddField(runevent.FieldTimeRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(runevent.FieldTimestamp, field.TypeTime, value)
	}
	_node = &RunEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
