// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "word_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_word_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_mode",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[7]},
			},
		},
	}
	// MatchEventsColumns holds the columns for the "match_events" table.
	MatchEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "pairs", Type: field.TypeInt},
		{Name: "moves", Type: field.TypeInt},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// MatchEventsTable holds the schema information for the "match_events" table.
	MatchEventsTable = &schema.Table{
		Name:       "match_events",
		Columns:    MatchEventsColumns,
		PrimaryKey: []*schema.Column{MatchEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "matchevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MatchEventsColumns[1]},
			},
			{
				Name:    "matchevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MatchEventsColumns[2]},
			},
			{
				Name:    "matchevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{MatchEventsColumns[3]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "words_studied", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "incorrect_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_mode",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// TypingEventsColumns holds the columns for the "typing_events" table.
	TypingEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "word_id", Type: field.TypeString},
		{Name: "wpm", Type: field.TypeInt, Default: 0},
		{Name: "has_wpm", Type: field.TypeBool, Default: true},
		{Name: "elapsed_ms", Type: field.TypeInt64},
	}
	// TypingEventsTable holds the schema information for the "typing_events" table.
	TypingEventsTable = &schema.Table{
		Name:       "typing_events",
		Columns:    TypingEventsColumns,
		PrimaryKey: []*schema.Column{TypingEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "typingevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TypingEventsColumns[1]},
			},
			{
				Name:    "typingevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TypingEventsColumns[2]},
			},
			{
				Name:    "typingevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TypingEventsColumns[3]},
			},
			{
				Name:    "typingevent_word_id",
				Unique:  false,
				Columns: []*schema.Column{TypingEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		MatchEventsTable,
		SessionEventsTable,
		SnapshotsTable,
		TypingEventsTable,
	}
)

func init() {
}
