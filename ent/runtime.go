// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/wordiz/ent/answerevent"
	"github.com/abhisek/wordiz/ent/matchevent"
	"github.com/abhisek/wordiz/ent/schema"
	"github.com/abhisek/wordiz/ent/sessionevent"
	"github.com/abhisek/wordiz/ent/snapshot"
	"github.com/abhisek/wordiz/ent/typingevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescWordID is the schema descriptor for word_id field.
	answereventDescWordID := answereventFields[1].Descriptor()
	// answerevent.WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	answerevent.WordIDValidator = answereventDescWordID.Validators[0].(func(string) error)
	// answereventDescMode is the schema descriptor for mode field.
	answereventDescMode := answereventFields[2].Descriptor()
	// answerevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	answerevent.ModeValidator = answereventDescMode.Validators[0].(func(string) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[5].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	matcheventMixin := schema.MatchEvent{}.Mixin()
	matcheventMixinFields0 := matcheventMixin[0].Fields()
	_ = matcheventMixinFields0
	matcheventFields := schema.MatchEvent{}.Fields()
	_ = matcheventFields
	// matcheventDescTimestamp is the schema descriptor for timestamp field.
	matcheventDescTimestamp := matcheventMixinFields0[1].Descriptor()
	// matchevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	matchevent.DefaultTimestamp = matcheventDescTimestamp.Default.(func() time.Time)
	// matcheventDescSessionID is the schema descriptor for session_id field.
	matcheventDescSessionID := matcheventFields[0].Descriptor()
	// matchevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	matchevent.SessionIDValidator = matcheventDescSessionID.Validators[0].(func(string) error)
	// matcheventDescDurationSecs is the schema descriptor for duration_secs field.
	matcheventDescDurationSecs := matcheventFields[4].Descriptor()
	// matchevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	matchevent.DefaultDurationSecs = matcheventDescDurationSecs.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[2].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescWordsStudied is the schema descriptor for words_studied field.
	sessioneventDescWordsStudied := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultWordsStudied holds the default value on creation for the words_studied field.
	sessionevent.DefaultWordsStudied = sessioneventDescWordsStudied.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescIncorrectAnswers is the schema descriptor for incorrect_answers field.
	sessioneventDescIncorrectAnswers := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultIncorrectAnswers holds the default value on creation for the incorrect_answers field.
	sessionevent.DefaultIncorrectAnswers = sessioneventDescIncorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	typingeventMixin := schema.TypingEvent{}.Mixin()
	typingeventMixinFields0 := typingeventMixin[0].Fields()
	_ = typingeventMixinFields0
	typingeventFields := schema.TypingEvent{}.Fields()
	_ = typingeventFields
	// typingeventDescTimestamp is the schema descriptor for timestamp field.
	typingeventDescTimestamp := typingeventMixinFields0[1].Descriptor()
	// typingevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	typingevent.DefaultTimestamp = typingeventDescTimestamp.Default.(func() time.Time)
	// typingeventDescSessionID is the schema descriptor for session_id field.
	typingeventDescSessionID := typingeventFields[0].Descriptor()
	// typingevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	typingevent.SessionIDValidator = typingeventDescSessionID.Validators[0].(func(string) error)
	// typingeventDescWordID is the schema descriptor for word_id field.
	typingeventDescWordID := typingeventFields[1].Descriptor()
	// typingevent.WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	typingevent.WordIDValidator = typingeventDescWordID.Validators[0].(func(string) error)
	// typingeventDescWpm is the schema descriptor for wpm field.
	typingeventDescWpm := typingeventFields[2].Descriptor()
	// typingevent.DefaultWpm holds the default value on creation for the wpm field.
	typingevent.DefaultWpm = typingeventDescWpm.Default.(int)
	// typingeventDescHasWpm is the schema descriptor for has_wpm field.
	typingeventDescHasWpm := typingeventFields[3].Descriptor()
	// typingevent.DefaultHasWpm holds the default value on creation for the has_wpm field.
	typingevent.DefaultHasWpm = typingeventDescHasWpm.Default.(bool)
}
