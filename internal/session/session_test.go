package session

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/wordiz/internal/catalog"
)

func testWords(n int) []catalog.Word {
	words := catalog.New().Words("")
	if len(words) < n {
		panic("seed catalog too small for tests")
	}
	return words[:n]
}

func TestNew_EmptyItems(t *testing.T) {
	_, err := New("s1", KindFlashcards, nil)
	if !errors.Is(err, ErrNoItems) {
		t.Fatalf("New(empty) err = %v, want ErrNoItems", err)
	}
}

func TestNew_SnapshotsItems(t *testing.T) {
	items := testWords(3)
	s, err := New("s1", KindFlashcards, items)
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's slice must not affect the session.
	items[0] = catalog.Word{ID: "mutated"}
	if s.Current().ID == "mutated" {
		t.Error("session items were not snapshotted at start")
	}
}

func TestAnswer_AdvancesAndCompletes(t *testing.T) {
	s, err := New("s1", KindFlashcards, testWords(3))
	if err != nil {
		t.Fatal(err)
	}

	answers := []bool{true, false, true}
	for i, correct := range answers {
		if s.Phase() != PhaseActive {
			t.Fatalf("phase = completed before answer %d", i)
		}
		if _, err := s.Answer(correct); err != nil {
			t.Fatalf("Answer(%d): %v", i, err)
		}
	}

	if s.Phase() != PhaseCompleted {
		t.Error("expected PhaseCompleted after last answer")
	}
	if s.ScoreCorrect != 2 {
		t.Errorf("ScoreCorrect = %d, want 2", s.ScoreCorrect)
	}
	if s.ScoreTotal != 3 {
		t.Errorf("ScoreTotal = %d, want 3", s.ScoreTotal)
	}
}

func TestAnswer_AfterCompleted(t *testing.T) {
	s, err := New("s1", KindQuiz, testWords(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Answer(true); err != nil {
		t.Fatal(err)
	}

	before := *s
	_, err = s.Answer(true)
	if !errors.Is(err, ErrSessionCompleted) {
		t.Fatalf("Answer after completion err = %v, want ErrSessionCompleted", err)
	}
	if s.ScoreTotal != before.ScoreTotal || s.ScoreCorrect != before.ScoreCorrect || s.Index() != before.Index() {
		t.Error("rejected answer mutated session state")
	}
}

func TestScoreInvariants(t *testing.T) {
	s, err := New("s1", KindQuiz, testWords(5))
	if err != nil {
		t.Fatal(err)
	}

	answers := []bool{false, true, false, true, true}
	for i, correct := range answers {
		if _, err := s.Answer(correct); err != nil {
			t.Fatal(err)
		}
		if s.ScoreTotal != i+1 {
			t.Errorf("after %d answers ScoreTotal = %d", i+1, s.ScoreTotal)
		}
		if s.ScoreCorrect > s.ScoreTotal {
			t.Error("ScoreCorrect exceeds ScoreTotal")
		}
	}
}

func TestReveal_FlashcardsOnly(t *testing.T) {
	s, err := New("s1", KindFlashcards, testWords(2))
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Reveal(); err != nil {
		t.Fatal(err)
	}
	if !s.Revealed() {
		t.Error("expected revealed after Reveal")
	}

	// Reveal has no scoring side effects.
	if s.ScoreTotal != 0 {
		t.Errorf("Reveal changed ScoreTotal to %d", s.ScoreTotal)
	}

	// Answering resets reveal for the next card.
	if _, err := s.Answer(true); err != nil {
		t.Fatal(err)
	}
	if s.Revealed() {
		t.Error("expected revealed reset after advancing")
	}

	// Non-flashcard kinds never reveal.
	q, err := New("s2", KindQuiz, testWords(2))
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Reveal(); err != nil {
		t.Fatal(err)
	}
	if q.Revealed() {
		t.Error("quiz session should not reveal")
	}
}

func TestReveal_AfterCompleted(t *testing.T) {
	s, err := New("s1", KindFlashcards, testWords(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Answer(false); err != nil {
		t.Fatal(err)
	}
	if err := s.Reveal(); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("Reveal after completion err = %v, want ErrSessionCompleted", err)
	}
}

func TestOutcomes_OrderAndContent(t *testing.T) {
	items := testWords(3)
	s, err := New("s1", KindFlashcards, items)
	if err != nil {
		t.Fatal(err)
	}

	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	s.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})

	for _, correct := range []bool{true, false, true} {
		if _, err := s.Answer(correct); err != nil {
			t.Fatal(err)
		}
	}

	outcomes := s.Outcomes()
	if len(outcomes) != 3 {
		t.Fatalf("len(outcomes) = %d, want 3", len(outcomes))
	}
	for i, o := range outcomes {
		if o.WordID != items[i].ID {
			t.Errorf("outcome %d WordID = %q, want %q", i, o.WordID, items[i].ID)
		}
		if i > 0 && !outcomes[i-1].Timestamp.Before(o.Timestamp) {
			t.Error("outcome timestamps not strictly increasing")
		}
	}
	if outcomes[0].Correct != true || outcomes[1].Correct != false || outcomes[2].Correct != true {
		t.Error("outcome correctness does not match answers")
	}
}
