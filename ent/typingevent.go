// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wordiz/ent/typingevent"
)

// TypingEvent is the model entity for the TypingEvent schema.
type TypingEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Target word of the attempt
	WordID string `json:"word_id,omitempty"`
	// Words per minute; meaningless when has_wpm is false
	Wpm int `json:"wpm,omitempty"`
	// False when the attempt completed too fast to measure
	HasWpm bool `json:"has_wpm,omitempty"`
	// Milliseconds from first keystroke to completion
	ElapsedMs    int64 `json:"elapsed_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TypingEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case typingevent.FieldHasWpm:
			values[i] = new(sql.NullBool)
		case typingevent.FieldID, typingevent.FieldSequence, typingevent.FieldWpm, typingevent.FieldElapsedMs:
			values[i] = new(sql.NullInt64)
		case typingevent.FieldSessionID, typingevent.FieldWordID:
			values[i] = new(sql.NullString)
		case typingevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TypingEvent fields.
func (_m *TypingEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case typingevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case typingevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case typingevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case typingevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case typingevent.FieldWordID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word_id", values[i])
			} else if value.Valid {
				_m.WordID = value.String
			}
		case typingevent.FieldWpm:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wpm", values[i])
			} else if value.Valid {
				_m.Wpm = int(value.Int64)
			}
		case typingevent.FieldHasWpm:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_wpm", values[i])
			} else if value.Valid {
				_m.HasWpm = value.Bool
			}
		case typingevent.FieldElapsedMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field elapsed_ms", values[i])
			} else if value.Valid {
				_m.ElapsedMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TypingEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TypingEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TypingEvent.
// Note that you need to call TypingEvent.Unwrap() before calling this method if this TypingEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TypingEvent) Update() *TypingEventUpdateOne {
	return NewTypingEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TypingEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TypingEvent) Unwrap() *TypingEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TypingEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TypingEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TypingEvent(")
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
	builder.WriteString("word_id=")
	builder.WriteString(_m.WordID)
	builder.WriteString(", ")
	builder.WriteString("wpm=")
	builder.WriteString(fmt.Sprintf("%v", _m.Wpm))
	builder.WriteString(", ")
	builder.WriteString("has_wpm=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasWpm))
	builder.WriteString(", ")
	builder.WriteString("elapsed_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ElapsedMs))
	builder.WriteByte(')')
	return builder.String()
}

// TypingEvents is a parsable slice of TypingEvent.
type TypingEvents []*TypingEvent
