package typing

import (
	"testing"
	"time"
)

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestKeystroke_CompletesOnExactMatch(t *testing.T) {
	a := NewAttempt("cat")

	if done := a.Keystroke("c", t0); done {
		t.Error("completed on partial buffer")
	}
	if done := a.Keystroke("ca", t0.Add(time.Second)); done {
		t.Error("completed on partial buffer")
	}
	if done := a.Keystroke("cat", t0.Add(2*time.Second)); !done {
		t.Error("expected completion at exact match")
	}
	if a.Result() == nil {
		t.Fatal("expected a result after completion")
	}
}

func TestKeystroke_ClockStartsOnFirstKey(t *testing.T) {
	a := NewAttempt("hi")

	// The word sits on screen for a while before typing starts.
	a.Keystroke("h", t0.Add(time.Minute))
	a.Keystroke("hi", t0.Add(time.Minute).Add(30*time.Second))

	res := a.Result()
	if res == nil {
		t.Fatal("expected completion")
	}
	if res.ElapsedMs != 30_000 {
		t.Errorf("ElapsedMs = %d, want 30000 (measured from first keystroke)", res.ElapsedMs)
	}
	if !res.HasWPM || res.WPM != 2 {
		t.Errorf("WPM = %d (has %v), want 2", res.WPM, res.HasWPM)
	}
}

func TestKeystroke_DegenerateSpeed(t *testing.T) {
	a := NewAttempt("x")

	// Completion in the same instant: no finite speed to report.
	a.Keystroke("x", t0)

	res := a.Result()
	if res == nil {
		t.Fatal("expected completion")
	}
	if res.HasWPM {
		t.Errorf("HasWPM = true with WPM %d, want no numeric speed", res.WPM)
	}
}

func TestKeystroke_IgnoredAfterCompletion(t *testing.T) {
	a := NewAttempt("go")
	a.Keystroke("g", t0)
	a.Keystroke("go", t0.Add(5*time.Second))

	before := *a.Result()
	if done := a.Keystroke("gone", t0.Add(10*time.Second)); done {
		t.Error("keystroke accepted after completion")
	}
	if *a.Result() != before {
		t.Error("result mutated after completion")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		target string
		buffer string
		want   []CharClass
	}{
		{"empty buffer", "cat", "", []CharClass{CharPending, CharPending, CharPending}},
		{"partial match", "cat", "ca", []CharClass{CharMatched, CharMatched, CharPending}},
		{"mismatch at end", "cat", "cab", []CharClass{CharMatched, CharMatched, CharMismatched}},
		{"mismatch at start", "cat", "bat", []CharClass{CharMismatched, CharMatched, CharMatched}},
		{"full match", "cat", "cat", []CharClass{CharMatched, CharMatched, CharMatched}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAttempt(tt.target)
			a.Keystroke(tt.buffer, t0)
			got := a.Classify()
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("pos %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReset(t *testing.T) {
	a := NewAttempt("word")
	a.Keystroke("wo", t0)
	a.Reset()

	if a.Buffer() != "" {
		t.Error("Reset did not clear the buffer")
	}
	if a.Result() != nil {
		t.Error("Reset left a result")
	}

	// The clock restarts with the next first keystroke.
	a.Keystroke("w", t0.Add(time.Hour))
	a.Keystroke("word", t0.Add(time.Hour).Add(time.Minute))
	res := a.Result()
	if res == nil {
		t.Fatal("expected completion after reset")
	}
	if res.ElapsedMs != 60_000 {
		t.Errorf("ElapsedMs = %d, want 60000", res.ElapsedMs)
	}
}
