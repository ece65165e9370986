package store

import (
	"context"
	"time"
)

// SessionEventData captures a session lifecycle event. Start events
// carry only the identity fields; end events add the totals.
type SessionEventData struct {
	SessionID        string
	Action           string // "start" or "end"
	Mode             string
	Category         string
	WordsStudied     int
	CorrectAnswers   int
	IncorrectAnswers int
	DurationSecs     int
}

// AnswerEventData captures one answered item.
type AnswerEventData struct {
	SessionID string
	WordID    string
	Mode      string
	Category  string
	Correct   bool
	TimeMs    int
}

// MatchEventData captures one completed memory-match game.
type MatchEventData struct {
	SessionID    string
	Category     string
	Pairs        int
	Moves        int
	DurationSecs int
}

// TypingEventData captures one completed typing attempt.
type TypingEventData struct {
	SessionID string
	WordID    string
	WPM       int
	HasWPM    bool
	ElapsedMs int64
}

// EventRepo provides append and aggregate-query access to domain events.
// Appends are fire-and-forget from the engines' perspective: a failed
// append must never block or roll back an in-memory state transition.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records one answered item.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendMatchEvent records a completed memory game.
	AppendMatchEvent(ctx context.Context, data MatchEventData) error

	// AppendTypingEvent records a completed typing attempt.
	AppendTypingEvent(ctx context.Context, data TypingEventData) error

	// WordAccuracy returns the all-time fraction of correct answers
	// for a word, 0 when it has never been answered.
	WordAccuracy(ctx context.Context, wordID string) (float64, error)

	// CorrectCounts returns the all-time correct answer count across
	// all modes and for quiz mode alone.
	CorrectCounts(ctx context.Context) (total, quiz int, err error)

	// AverageWPM returns the mean speed over typing attempts that have
	// a numeric speed, and the number of such attempts.
	AverageWPM(ctx context.Context) (float64, int, error)

	// SessionCount returns the number of completed sessions.
	SessionCount(ctx context.Context) (int, error)

	// BestMatchMoves returns the lowest move count over completed
	// games with the given pair count, 0 when none exist.
	BestMatchMoves(ctx context.Context, pairs int) (int, error)
}

// ProgressRecordData is the serialized form of one per-word progress
// record.
type ProgressRecordData struct {
	WordID       string `json:"word_id"`
	TimesCorrect int    `json:"times_correct"`
	TimesSeen    int    `json:"times_seen"`
	Level        string `json:"level"`
}

// StreakData is the serialized streak state. LastActive is a calendar
// date in RFC 3339 date form ("2006-01-02").
type StreakData struct {
	Count      int    `json:"count"`
	LastActive string `json:"last_active"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version  int                  `json:"version"`
	Progress []ProgressRecordData `json:"progress,omitempty"`
	Streak   *StreakData          `json:"streak,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
