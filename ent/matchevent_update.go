// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wordiz/ent/matchevent"
	"github.com/abhisek/wordiz/ent/predicate"
)

// MatchEventUpdate is the builder for updating MatchEvent entities.
type MatchEventUpdate struct {
	config
	hooks    []Hook
	mutation *MatchEventMutation
}

// Where appends a list predicates to the MatchEventUpdate builder.
func (_u *MatchEventUpdate) Where(ps ...predicate.MatchEvent) *MatchEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MatchEventUpdate) SetSessionID(v string) *MatchEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MatchEventUpdate) SetNillableSessionID(v *string) *MatchEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *MatchEventUpdate) SetCategory(v string) *MatchEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MatchEventUpdate) SetNillableCategory(v *string) *MatchEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *MatchEventUpdate) ClearCategory() *MatchEventUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetPairs sets the "pairs" field.
func (_u *MatchEventUpdate) SetPairs(v int) *MatchEventUpdate {
	_u.mutation.ResetPairs()
	_u.mutation.SetPairs(v)
	return _u
}

// SetNillablePairs sets the "pairs" field if the given value is not nil.
func (_u *MatchEventUpdate) SetNillablePairs(v *int) *MatchEventUpdate {
	if v != nil {
		_u.SetPairs(*v)
	}
	return _u
}

// AddPairs adds value to the "pairs" field.
func (_u *MatchEventUpdate) AddPairs(v int) *MatchEventUpdate {
	_u.mutation.AddPairs(v)
	return _u
}

// SetMoves sets the "moves" field.
func (_u *MatchEventUpdate) SetMoves(v int) *MatchEventUpdate {
	_u.mutation.ResetMoves()
	_u.mutation.SetMoves(v)
	return _u
}

// SetNillableMoves sets the "moves" field if the given value is not nil.
func (_u *MatchEventUpdate) SetNillableMoves(v *int) *MatchEventUpdate {
	if v != nil {
		_u.SetMoves(*v)
	}
	return _u
}

// AddMoves adds value to the "moves" field.
func (_u *MatchEventUpdate) AddMoves(v int) *MatchEventUpdate {
	_u.mutation.AddMoves(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *MatchEventUpdate) SetDurationSecs(v int) *MatchEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *MatchEventUpdate) SetNillableDurationSecs(v *int) *MatchEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *MatchEventUpdate) AddDurationSecs(v int) *MatchEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the MatchEventMutation object of the builder.
func (_u *MatchEventUpdate) Mutation() *MatchEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatchEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatchEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := matchevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "MatchEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MatchEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matchevent.Table, matchevent.Columns, sqlgraph.NewFieldSpec(matchevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(matchevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(matchevent.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(matchevent.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Pairs(); ok {
		_spec.SetField(matchevent.FieldPairs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPairs(); ok {
		_spec.AddField(matchevent.FieldPairs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Moves(); ok {
		_spec.SetField(matchevent.FieldMoves, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMoves(); ok {
		_spec.AddField(matchevent.FieldMoves, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(matchevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(matchevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matchevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatchEventUpdateOne is the builder for updating a single MatchEvent entity.
type MatchEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatchEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *MatchEventUpdateOne) SetSessionID(v string) *MatchEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MatchEventUpdateOne) SetNillableSessionID(v *string) *MatchEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *MatchEventUpdateOne) SetCategory(v string) *MatchEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MatchEventUpdateOne) SetNillableCategory(v *string) *MatchEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *MatchEventUpdateOne) ClearCategory() *MatchEventUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetPairs sets the "pairs" field.
func (_u *MatchEventUpdateOne) SetPairs(v int) *MatchEventUpdateOne {
	_u.mutation.ResetPairs()
	_u.mutation.SetPairs(v)
	return _u
}

// SetNillablePairs sets the "pairs" field if the given value is not nil.
func (_u *MatchEventUpdateOne) SetNillablePairs(v *int) *MatchEventUpdateOne {
	if v != nil {
		_u.SetPairs(*v)
	}
	return _u
}

// AddPairs adds value to the "pairs" field.
func (_u *MatchEventUpdateOne) AddPairs(v int) *MatchEventUpdateOne {
	_u.mutation.AddPairs(v)
	return _u
}

// SetMoves sets the "moves" field.
func (_u *MatchEventUpdateOne) SetMoves(v int) *MatchEventUpdateOne {
	_u.mutation.ResetMoves()
	_u.mutation.SetMoves(v)
	return _u
}

// SetNillableMoves sets the "moves" field if the given value is not nil.
func (_u *MatchEventUpdateOne) SetNillableMoves(v *int) *MatchEventUpdateOne {
	if v != nil {
		_u.SetMoves(*v)
	}
	return _u
}

// AddMoves adds value to the "moves" field.
func (_u *MatchEventUpdateOne) AddMoves(v int) *MatchEventUpdateOne {
	_u.mutation.AddMoves(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *MatchEventUpdateOne) SetDurationSecs(v int) *MatchEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *MatchEventUpdateOne) SetNillableDurationSecs(v *int) *MatchEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *MatchEventUpdateOne) AddDurationSecs(v int) *MatchEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the MatchEventMutation object of the builder.
func (_u *MatchEventUpdateOne) Mutation() *MatchEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MatchEventUpdate builder.
func (_u *MatchEventUpdateOne) Where(ps ...predicate.MatchEvent) *MatchEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatchEventUpdateOne) Select(field string, fields ...string) *MatchEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MatchEvent entity.
func (_u *MatchEventUpdateOne) Save(ctx context.Context) (*MatchEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchEventUpdateOne) SaveX(ctx context.Context) *MatchEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatchEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := matchevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "MatchEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MatchEventUpdateOne) sqlSave(ctx context.Context) (_node *MatchEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matchevent.Table, matchevent.Columns, sqlgraph.NewFieldSpec(matchevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MatchEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matchevent.FieldID)
		for _, f := range fields {
			if !matchevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != matchevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(matchevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(matchevent.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(matchevent.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Pairs(); ok {
		_spec.SetField(matchevent.FieldPairs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPairs(); ok {
		_spec.AddField(matchevent.FieldPairs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Moves(); ok {
		_spec.SetField(matchevent.FieldMoves, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMoves(); ok {
		_spec.AddField(matchevent.FieldMoves, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(matchevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(matchevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &MatchEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matchevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
