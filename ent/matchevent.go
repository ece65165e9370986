// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wordiz/ent/matchevent"
)

// MatchEvent is the model entity for the MatchEvent schema.
type MatchEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the game
	SessionID string `json:"session_id,omitempty"`
	// Category the game was started for, empty for all
	Category string `json:"category,omitempty"`
	// Number of word pairs on the board
	Pairs int `json:"pairs,omitempty"`
	// Completed 2-card attempts; lower is better
	Moves int `json:"moves,omitempty"`
	// Wall-clock game time in seconds
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MatchEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case matchevent.FieldID, matchevent.FieldSequence, matchevent.FieldPairs, matchevent.FieldMoves, matchevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case matchevent.FieldSessionID, matchevent.FieldCategory:
			values[i] = new(sql.NullString)
		case matchevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MatchEvent fields.
func (_m *MatchEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case matchevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case matchevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case matchevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case matchevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case matchevent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case matchevent.FieldPairs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pairs", values[i])
			} else if value.Valid {
				_m.Pairs = int(value.Int64)
			}
		case matchevent.FieldMoves:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field moves", values[i])
			} else if value.Valid {
				_m.Moves = int(value.Int64)
			}
		case matchevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MatchEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MatchEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MatchEvent.
// Note that you need to call MatchEvent.Unwrap() before calling this method if this MatchEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MatchEvent) Update() *MatchEventUpdateOne {
	return NewMatchEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MatchEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MatchEvent) Unwrap() *MatchEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MatchEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MatchEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MatchEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("pairs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pairs))
	builder.WriteString(", ")
	builder.WriteString("moves=")
	builder.WriteString(fmt.Sprintf("%v", _m.Moves))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// MatchEvents is a parsable slice of MatchEvent.
type MatchEvents []*MatchEvent
