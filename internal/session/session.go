package session

import (
	"time"

	"github.com/abhisek/wordiz/internal/catalog"
)

// Kind identifies the exercise type a session runs.
type Kind string

const (
	KindFlashcards Kind = "flashcards"
	KindQuiz       Kind = "quiz"
	KindTyping     Kind = "typing"
	KindFillIn     Kind = "fillin"
)

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindFlashcards:
		return "Flashcards"
	case KindQuiz:
		return "Quiz"
	case KindTyping:
		return "Typing Drill"
	case KindFillIn:
		return "Fill In"
	default:
		return string(k)
	}
}

// Phase is the lifecycle phase of a session.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseCompleted
)

// Outcome records one answered item. Outcomes are created once and
// never mutated.
type Outcome struct {
	WordID    string
	Correct   bool
	Timestamp time.Time
}

// Session advances through a fixed ordered list of words, recording one
// outcome per item. The item list is snapshotted at start and never
// changes mid-session. All operations are synchronous and local;
// persistence of outcomes is the caller's concern and its failure must
// not roll back session state.
type Session struct {
	ID   string
	Kind Kind

	items    []catalog.Word
	index    int
	revealed bool
	phase    Phase

	ScoreCorrect int
	ScoreTotal   int

	StartedAt time.Time
	outcomes  []Outcome

	now func() time.Time
}

// New creates an active session over the given items. The item list
// must be non-empty; an empty list is a construction error.
func New(id string, kind Kind, items []catalog.Word) (*Session, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	snapshot := make([]catalog.Word, len(items))
	copy(snapshot, items)
	return &Session{
		ID:        id,
		Kind:      kind,
		items:     snapshot,
		phase:     PhaseActive,
		StartedAt: time.Now(),
		now:       time.Now,
	}, nil
}

// SetClock overrides the session clock. Tests only.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// Current returns the word at the session cursor.
func (s *Session) Current() catalog.Word {
	return s.items[s.index]
}

// Index returns the zero-based position of the current item.
func (s *Session) Index() int {
	return s.index
}

// Len returns the number of items in the session.
func (s *Session) Len() int {
	return len(s.items)
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Revealed reports whether the current flashcard has been flipped.
func (s *Session) Revealed() bool {
	return s.revealed
}

// Outcomes returns the outcomes recorded so far, in answer order.
func (s *Session) Outcomes() []Outcome {
	out := make([]Outcome, len(s.outcomes))
	copy(out, s.outcomes)
	return out
}

// Reveal flips the current flashcard to show its translation. It has no
// other side effects and may be called repeatedly to toggle. Only
// flashcard sessions have a reveal step; for other kinds this is a no-op.
func (s *Session) Reveal() error {
	if s.phase == PhaseCompleted {
		return ErrSessionCompleted
	}
	if s.Kind != KindFlashcards {
		return nil
	}
	s.revealed = !s.revealed
	return nil
}

// Answer records the outcome for the current item and advances the
// cursor. Answering the last item completes the session; answering a
// completed session is a programmer error.
func (s *Session) Answer(correct bool) (Outcome, error) {
	if s.phase == PhaseCompleted {
		return Outcome{}, ErrSessionCompleted
	}

	outcome := Outcome{
		WordID:    s.items[s.index].ID,
		Correct:   correct,
		Timestamp: s.now(),
	}
	s.outcomes = append(s.outcomes, outcome)

	s.ScoreTotal++
	if correct {
		s.ScoreCorrect++
	}

	if s.index == len(s.items)-1 {
		s.phase = PhaseCompleted
	} else {
		s.index++
		s.revealed = false
	}
	return outcome, nil
}

// Duration returns wall-clock time since the session started.
func (s *Session) Duration() time.Duration {
	return s.now().Sub(s.StartedAt)
}
