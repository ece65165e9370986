// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wordiz/ent/typingevent"
)

// TypingEventCreate is the builder for creating a TypingEvent entity.
type TypingEventCreate struct {
	config
	mutation *TypingEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TypingEventCreate) SetSequence(v int64) *TypingEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TypingEventCreate) SetTimestamp(v time.Time) *TypingEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TypingEventCreate) SetNillableTimestamp(v *time.Time) *TypingEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TypingEventCreate) SetSessionID(v string) *TypingEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetWordID sets the "word_id" field.
func (_c *TypingEventCreate) SetWordID(v string) *TypingEventCreate {
	_c.mutation.SetWordID(v)
	return _c
}

// SetWpm sets the "wpm" field.
func (_c *TypingEventCreate) SetWpm(v int) *TypingEventCreate {
	_c.mutation.SetWpm(v)
	return _c
}

// SetNillableWpm sets the "wpm" field if the given value is not nil.
func (_c *TypingEventCreate) SetNillableWpm(v *int) *TypingEventCreate {
	if v != nil {
		_c.SetWpm(*v)
	}
	return _c
}

// SetHasWpm sets the "has_wpm" field.
func (_c *TypingEventCreate) SetHasWpm(v bool) *TypingEventCreate {
	_c.mutation.SetHasWpm(v)
	return _c
}

// SetNillableHasWpm sets the "has_wpm" field if the given value is not nil.
func (_c *TypingEventCreate) SetNillableHasWpm(v *bool) *TypingEventCreate {
	if v != nil {
		_c.SetHasWpm(*v)
	}
	return _c
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_c *TypingEventCreate) SetElapsedMs(v int64) *TypingEventCreate {
	_c.mutation.SetElapsedMs(v)
	return _c
}

// Mutation returns the TypingEventMutation object of the builder.
func (_c *TypingEventCreate) Mutation() *TypingEventMutation {
	return _c.mutation
}

// Save creates the TypingEvent in the database.
func (_c *TypingEventCreate) Save(ctx context.Context) (*TypingEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TypingEventCreate) SaveX(ctx context.Context) *TypingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TypingEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TypingEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TypingEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := typingevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Wpm(); !ok {
		v := typingevent.DefaultWpm
		_c.mutation.SetWpm(v)
	}
	if _, ok := _c.mutation.HasWpm(); !ok {
		v := typingevent.DefaultHasWpm
		_c.mutation.SetHasWpm(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TypingEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TypingEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TypingEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TypingEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := typingevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TypingEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WordID(); !ok {
		return &ValidationError{Name: "word_id", err: errors.New(`ent: missing required field "TypingEvent.word_id"`)}
	}
	if v, ok := _c.mutation.WordID(); ok {
		if err := typingevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "TypingEvent.word_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Wpm(); !ok {
		return &ValidationError{Name: "wpm", err: errors.New(`ent: missing required field "TypingEvent.wpm"`)}
	}
	if _, ok := _c.mutation.HasWpm(); !ok {
		return &ValidationError{Name: "has_wpm", err: errors.New(`ent: missing required field "TypingEvent.has_wpm"`)}
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		return &ValidationError{Name: "elapsed_ms", err: errors.New(`ent: missing required field "TypingEvent.elapsed_ms"`)}
	}
	return nil
}

func (_c *TypingEventCreate) sqlSave(ctx context.Context) (*TypingEvent, error) {
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

func (_c *TypingEventCreate) createSpec() (*TypingEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TypingEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(typingevent.Table, sqlgraph.NewFieldSpec(typingevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(typingevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(typingevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(typingevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.WordID(); ok {
		_spec.SetField(typingevent.FieldWordID, field.TypeString, value)
		_node.WordID = value
	}
	if value, ok := _c.mutation.Wpm(); ok {
		_spec.SetField(typingevent.FieldWpm, field.TypeInt, value)
		_node.Wpm = value
	}
	if value, ok := _c.mutation.HasWpm(); ok {
		_spec.SetField(typingevent.FieldHasWpm, field.TypeBool, value)
		_node.HasWpm = value
	}
	if value, ok := _c.mutation.ElapsedMs(); ok {
		_spec.SetField(typingevent.FieldElapsedMs, field.TypeInt64, value)
		_node.ElapsedMs = value
	}
	return _node, _spec
}

// TypingEventCreateBulk is the builder for creating many TypingEvent entities in bulk.
type TypingEventCreateBulk struct {
	config
	err      error
	builders []*TypingEventCreate
}

// Save creates the TypingEvent entities in the database.
func (_c *TypingEventCreateBulk) Save(ctx context.Context) ([]*TypingEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TypingEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TypingEventMutation)
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
func (_c *TypingEventCreateBulk) SaveX(ctx context.Context) []*TypingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TypingEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TypingEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
