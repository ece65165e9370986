// Code generated by ent, DO NOT EDIT.

package typingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wordiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldSessionID, v))
}

// WordID applies equality check predicate on the "word_id" field. It's identical to WordIDEQ.
func WordID(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldWordID, v))
}

// Wpm applies equality check predicate on the "wpm" field. It's identical to WpmEQ.
func Wpm(v int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldWpm, v))
}

// HasWpm applies equality check predicate on the "has_wpm" field. It's identical to HasWpmEQ.
func HasWpm(v bool) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldHasWpm, v))
}

// ElapsedMs applies equality check predicate on the "elapsed_ms" field. It's identical to ElapsedMsEQ.
func ElapsedMs(v int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldElapsedMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// WordIDEQ applies the EQ predicate on the "word_id" field.
func WordIDEQ(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldWordID, v))
}

// WordIDNEQ applies the NEQ predicate on the "word_id" field.
func WordIDNEQ(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNEQ(FieldWordID, v))
}

// WordIDIn applies the In predicate on the "word_id" field.
func WordIDIn(vs ...string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldIn(FieldWordID, vs...))
}

// WordIDNotIn applies the NotIn predicate on the "word_id" field.
func WordIDNotIn(vs ...string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNotIn(FieldWordID, vs...))
}

// WordIDGT applies the GT predicate on the "word_id" field.
func WordIDGT(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldGT(FieldWordID, v))
}

// WordIDGTE applies the GTE predicate on the "word_id" field.
func WordIDGTE(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldGTE(FieldWordID, v))
}

// WordIDLT applies the LT predicate on the "word_id" field.
func WordIDLT(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldLT(FieldWordID, v))
}

// WordIDLTE applies the LTE predicate on the "word_id" field.
func WordIDLTE(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldLTE(FieldWordID, v))
}

// WordIDContains applies the Contains predicate on the "word_id" field.
func WordIDContains(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldContains(FieldWordID, v))
}

// WordIDHasPrefix applies the HasPrefix predicate on the "word_id" field.
func WordIDHasPrefix(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldHasPrefix(FieldWordID, v))
}

// WordIDHasSuffix applies the HasSuffix predicate on the "word_id" field.
func WordIDHasSuffix(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldHasSuffix(FieldWordID, v))
}

// WordIDEqualFold applies the EqualFold predicate on the "word_id" field.
func WordIDEqualFold(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEqualFold(FieldWordID, v))
}

// WordIDContainsFold applies the ContainsFold predicate on the "word_id" field.
func WordIDContainsFold(v string) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldContainsFold(FieldWordID, v))
}

// WpmEQ applies the EQ predicate on the "wpm" field.
func WpmEQ(v int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldWpm, v))
}

// WpmNEQ applies the NEQ predicate on the "wpm" field.
func WpmNEQ(v int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNEQ(FieldWpm, v))
}

// WpmIn applies the In predicate on the "wpm" field.
func WpmIn(vs ...int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldIn(FieldWpm, vs...))
}

// WpmNotIn applies the NotIn predicate on the "wpm" field.
func WpmNotIn(vs ...int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNotIn(FieldWpm, vs...))
}

// WpmGT applies the GT predicate on the "wpm" field.
func WpmGT(v int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldGT(FieldWpm, v))
}

// WpmGTE applies the GTE predicate on the "wpm" field.
func WpmGTE(v int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldGTE(FieldWpm, v))
}

// WpmLT applies the LT predicate on the "wpm" field.
func WpmLT(v int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldLT(FieldWpm, v))
}

// WpmLTE applies the LTE predicate on the "wpm" field.
func WpmLTE(v int) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldLTE(FieldWpm, v))
}

// HasWpmEQ applies the EQ predicate on the "has_wpm" field.
func HasWpmEQ(v bool) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldHasWpm, v))
}

// HasWpmNEQ applies the NEQ predicate on the "has_wpm" field.
func HasWpmNEQ(v bool) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNEQ(FieldHasWpm, v))
}

// ElapsedMsEQ applies the EQ predicate on the "elapsed_ms" field.
func ElapsedMsEQ(v int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldEQ(FieldElapsedMs, v))
}

// ElapsedMsNEQ applies the NEQ predicate on the "elapsed_ms" field.
func ElapsedMsNEQ(v int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNEQ(FieldElapsedMs, v))
}

// ElapsedMsIn applies the In predicate on the "elapsed_ms" field.
func ElapsedMsIn(vs ...int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldIn(FieldElapsedMs, vs...))
}

// ElapsedMsNotIn applies the NotIn predicate on the "elapsed_ms" field.
func ElapsedMsNotIn(vs ...int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldNotIn(FieldElapsedMs, vs...))
}

// ElapsedMsGT applies the GT predicate on the "elapsed_ms" field.
func ElapsedMsGT(v int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldGT(FieldElapsedMs, v))
}

// ElapsedMsGTE applies the GTE predicate on the "elapsed_ms" field.
func ElapsedMsGTE(v int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldGTE(FieldElapsedMs, v))
}

// ElapsedMsLT applies the LT predicate on the "elapsed_ms" field.
func ElapsedMsLT(v int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldLT(FieldElapsedMs, v))
}

// ElapsedMsLTE applies the LTE predicate on the "elapsed_ms" field.
func ElapsedMsLTE(v int64) predicate.TypingEvent {
	return predicate.TypingEvent(sql.FieldLTE(FieldElapsedMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TypingEvent) predicate.TypingEvent {
	return predicate.TypingEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TypingEvent) predicate.TypingEvent {
	return predicate.TypingEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TypingEvent) predicate.TypingEvent {
	return predicate.TypingEvent(sql.NotPredicates(p))
}
