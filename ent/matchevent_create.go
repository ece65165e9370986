// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wordiz/ent/matchevent"
)

// MatchEventCreate is the builder for creating a MatchEvent entity.
type MatchEventCreate struct {
	config
	mutation *MatchEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *MatchEventCreate) SetSequence(v int64) *MatchEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MatchEventCreate) SetTimestamp(v time.Time) *MatchEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MatchEventCreate) SetNillableTimestamp(v *time.Time) *MatchEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *MatchEventCreate) SetSessionID(v string) *MatchEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *MatchEventCreate) SetCategory(v string) *MatchEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *MatchEventCreate) SetNillableCategory(v *string) *MatchEventCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetPairs sets the "pairs" field.
func (_c *MatchEventCreate) SetPairs(v int) *MatchEventCreate {
	_c.mutation.SetPairs(v)
	return _c
}

// SetMoves sets the "moves" field.
func (_c *MatchEventCreate) SetMoves(v int) *MatchEventCreate {
	_c.mutation.SetMoves(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *MatchEventCreate) SetDurationSecs(v int) *MatchEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *MatchEventCreate) SetNillableDurationSecs(v *int) *MatchEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the MatchEventMutation object of the builder.
func (_c *MatchEventCreate) Mutation() *MatchEventMutation {
	return _c.mutation
}

// Save creates the MatchEvent in the database.
func (_c *MatchEventCreate) Save(ctx context.Context) (*MatchEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatchEventCreate) SaveX(ctx context.Context) *MatchEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MatchEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := matchevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := matchevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatchEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MatchEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MatchEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "MatchEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := matchevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "MatchEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pairs(); !ok {
		return &ValidationError{Name: "pairs", err: errors.New(`ent: missing required field "MatchEvent.pairs"`)}
	}
	if _, ok := _c.mutation.Moves(); !ok {
		return &ValidationError{Name: "moves", err: errors.New(`ent: missing required field "MatchEvent.moves"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "MatchEvent.duration_secs"`)}
	}
	return nil
}

func (_c *MatchEventCreate) sqlSave(ctx context.Context) (*MatchEvent, error) {
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

func (_c *MatchEventCreate) createSpec() (*MatchEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MatchEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(matchevent.Table, sqlgraph.NewFieldSpec(matchevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(matchevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(matchevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(matchevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(matchevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Pairs(); ok {
		_spec.SetField(matchevent.FieldPairs, field.TypeInt, value)
		_node.Pairs = value
	}
	if value, ok := _c.mutation.Moves(); ok {
		_spec.SetField(matchevent.FieldMoves, field.TypeInt, value)
		_node.Moves = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(matchevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// MatchEventCreateBulk is the builder for creating many MatchEvent entities in bulk.
type MatchEventCreateBulk struct {
	config
	err      error
	builders []*MatchEventCreate
}

// Save creates the MatchEvent entities in the database.
func (_c *MatchEventCreateBulk) Save(ctx context.Context) ([]*MatchEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MatchEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatchEventMutation)
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
func (_c *MatchEventCreateBulk) SaveX(ctx context.Context) []*MatchEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
