// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wordiz/ent/predicate"
	"github.com/abhisek/wordiz/ent/typingevent"
)

// TypingEventUpdate is the builder for updating TypingEvent entities.
type TypingEventUpdate struct {
	config
	hooks    []Hook
	mutation *TypingEventMutation
}

// Where appends a list predicates to the TypingEventUpdate builder.
func (_u *TypingEventUpdate) Where(ps ...predicate.TypingEvent) *TypingEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TypingEventUpdate) SetSessionID(v string) *TypingEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TypingEventUpdate) SetNillableSessionID(v *string) *TypingEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *TypingEventUpdate) SetWordID(v string) *TypingEventUpdate {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *TypingEventUpdate) SetNillableWordID(v *string) *TypingEventUpdate {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// SetWpm sets the "wpm" field.
func (_u *TypingEventUpdate) SetWpm(v int) *TypingEventUpdate {
	_u.mutation.ResetWpm()
	_u.mutation.SetWpm(v)
	return _u
}

// SetNillableWpm sets the "wpm" field if the given value is not nil.
func (_u *TypingEventUpdate) SetNillableWpm(v *int) *TypingEventUpdate {
	if v != nil {
		_u.SetWpm(*v)
	}
	return _u
}

// AddWpm adds value to the "wpm" field.
func (_u *TypingEventUpdate) AddWpm(v int) *TypingEventUpdate {
	_u.mutation.AddWpm(v)
	return _u
}

// SetHasWpm sets the "has_wpm" field.
func (_u *TypingEventUpdate) SetHasWpm(v bool) *TypingEventUpdate {
	_u.mutation.SetHasWpm(v)
	return _u
}

// SetNillableHasWpm sets the "has_wpm" field if the given value is not nil.
func (_u *TypingEventUpdate) SetNillableHasWpm(v *bool) *TypingEventUpdate {
	if v != nil {
		_u.SetHasWpm(*v)
	}
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *TypingEventUpdate) SetElapsedMs(v int64) *TypingEventUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *TypingEventUpdate) SetNillableElapsedMs(v *int64) *TypingEventUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *TypingEventUpdate) AddElapsedMs(v int64) *TypingEventUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// Mutation returns the TypingEventMutation object of the builder.
func (_u *TypingEventUpdate) Mutation() *TypingEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TypingEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TypingEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TypingEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TypingEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TypingEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := typingevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TypingEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordID(); ok {
		if err := typingevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "TypingEvent.word_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TypingEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(typingevent.Table, typingevent.Columns, sqlgraph.NewFieldSpec(typingevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(typingevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(typingevent.FieldWordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Wpm(); ok {
		_spec.SetField(typingevent.FieldWpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWpm(); ok {
		_spec.AddField(typingevent.FieldWpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasWpm(); ok {
		_spec.SetField(typingevent.FieldHasWpm, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(typingevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(typingevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{typingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TypingEventUpdateOne is the builder for updating a single TypingEvent entity.
type TypingEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TypingEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TypingEventUpdateOne) SetSessionID(v string) *TypingEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TypingEventUpdateOne) SetNillableSessionID(v *string) *TypingEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *TypingEventUpdateOne) SetWordID(v string) *TypingEventUpdateOne {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *TypingEventUpdateOne) SetNillableWordID(v *string) *TypingEventUpdateOne {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// SetWpm sets the "wpm" field.
func (_u *TypingEventUpdateOne) SetWpm(v int) *TypingEventUpdateOne {
	_u.mutation.ResetWpm()
	_u.mutation.SetWpm(v)
	return _u
}

// SetNillableWpm sets the "wpm" field if the given value is not nil.
func (_u *TypingEventUpdateOne) SetNillableWpm(v *int) *TypingEventUpdateOne {
	if v != nil {
		_u.SetWpm(*v)
	}
	return _u
}

// AddWpm adds value to the "wpm" field.
func (_u *TypingEventUpdateOne) AddWpm(v int) *TypingEventUpdateOne {
	_u.mutation.AddWpm(v)
	return _u
}

// SetHasWpm sets the "has_wpm" field.
func (_u *TypingEventUpdateOne) SetHasWpm(v bool) *TypingEventUpdateOne {
	_u.mutation.SetHasWpm(v)
	return _u
}

// SetNillableHasWpm sets the "has_wpm" field if the given value is not nil.
func (_u *TypingEventUpdateOne) SetNillableHasWpm(v *bool) *TypingEventUpdateOne {
	if v != nil {
		_u.SetHasWpm(*v)
	}
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *TypingEventUpdateOne) SetElapsedMs(v int64) *TypingEventUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *TypingEventUpdateOne) SetNillableElapsedMs(v *int64) *TypingEventUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *TypingEventUpdateOne) AddElapsedMs(v int64) *TypingEventUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// Mutation returns the TypingEventMutation object of the builder.
func (_u *TypingEventUpdateOne) Mutation() *TypingEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TypingEventUpdate builder.
func (_u *TypingEventUpdateOne) Where(ps ...predicate.TypingEvent) *TypingEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TypingEventUpdateOne) Select(field string, fields ...string) *TypingEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TypingEvent entity.
func (_u *TypingEventUpdateOne) Save(ctx context.Context) (*TypingEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TypingEventUpdateOne) SaveX(ctx context.Context) *TypingEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TypingEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TypingEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TypingEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := typingevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TypingEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordID(); ok {
		if err := typingevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "TypingEvent.word_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TypingEventUpdateOne) sqlSave(ctx context.Context) (_node *TypingEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(typingevent.Table, typingevent.Columns, sqlgraph.NewFieldSpec(typingevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TypingEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, typingevent.FieldID)
		for _, f := range fields {
			if !typingevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != typingevent.FieldID {
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
		_spec.SetField(typingevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(typingevent.FieldWordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Wpm(); ok {
		_spec.SetField(typingevent.FieldWpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWpm(); ok {
		_spec.AddField(typingevent.FieldWpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasWpm(); ok {
		_spec.SetField(typingevent.FieldHasWpm, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(typingevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(typingevent.FieldElapsedMs, field.TypeInt64, value)
	}
	_node = &TypingEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{typingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
