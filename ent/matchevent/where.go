// Code generated by ent, DO NOT EDIT.

package matchevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wordiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldSessionID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldCategory, v))
}

// Pairs applies equality check predicate on the "pairs" field. It's identical to PairsEQ.
func Pairs(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldPairs, v))
}

// Moves applies equality check predicate on the "moves" field. It's identical to MovesEQ.
func Moves(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldMoves, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldContainsFold(FieldCategory, v))
}

// PairsEQ applies the EQ predicate on the "pairs" field.
func PairsEQ(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldPairs, v))
}

// PairsNEQ applies the NEQ predicate on the "pairs" field.
func PairsNEQ(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNEQ(FieldPairs, v))
}

// PairsIn applies the In predicate on the "pairs" field.
func PairsIn(vs ...int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldIn(FieldPairs, vs...))
}

// PairsNotIn applies the NotIn predicate on the "pairs" field.
func PairsNotIn(vs ...int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNotIn(FieldPairs, vs...))
}

// PairsGT applies the GT predicate on the "pairs" field.
func PairsGT(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGT(FieldPairs, v))
}

// PairsGTE applies the GTE predicate on the "pairs" field.
func PairsGTE(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGTE(FieldPairs, v))
}

// PairsLT applies the LT predicate on the "pairs" field.
func PairsLT(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLT(FieldPairs, v))
}

// PairsLTE applies the LTE predicate on the "pairs" field.
func PairsLTE(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLTE(FieldPairs, v))
}

// MovesEQ applies the EQ predicate on the "moves" field.
func MovesEQ(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldMoves, v))
}

// MovesNEQ applies the NEQ predicate on the "moves" field.
func MovesNEQ(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNEQ(FieldMoves, v))
}

// MovesIn applies the In predicate on the "moves" field.
func MovesIn(vs ...int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldIn(FieldMoves, vs...))
}

// MovesNotIn applies the NotIn predicate on the "moves" field.
func MovesNotIn(vs ...int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNotIn(FieldMoves, vs...))
}

// MovesGT applies the GT predicate on the "moves" field.
func MovesGT(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGT(FieldMoves, v))
}

// MovesGTE applies the GTE predicate on the "moves" field.
func MovesGTE(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGTE(FieldMoves, v))
}

// MovesLT applies the LT predicate on the "moves" field.
func MovesLT(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLT(FieldMoves, v))
}

// MovesLTE applies the LTE predicate on the "moves" field.
func MovesLTE(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLTE(FieldMoves, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.MatchEvent {
	return predicate.MatchEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MatchEvent) predicate.MatchEvent {
	return predicate.MatchEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MatchEvent) predicate.MatchEvent {
	return predicate.MatchEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MatchEvent) predicate.MatchEvent {
	return predicate.MatchEvent(sql.NotPredicates(p))
}
