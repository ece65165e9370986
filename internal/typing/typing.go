package typing

import (
	"math"
	"time"
)

// CharClass classifies one position of the typed buffer against the
// target word.
type CharClass int

const (
	CharPending CharClass = iota
	CharMatched
	CharMismatched
)

// Result reports a completed attempt. WPM treats the whole target word
// as a single word: round(1 / elapsedMinutes). When the elapsed time is
// too short for that to round to a finite value, HasWPM is false and
// the attempt counts as a completion without a numeric speed.
type Result struct {
	WPM       int
	HasWPM    bool
	ElapsedMs int64
}

// Attempt measures one typing attempt against a target word. The clock
// starts on the first keystroke, not when the word is shown.
type Attempt struct {
	Target string

	buffer    string
	startedAt time.Time
	started   bool
	result    *Result
}

// NewAttempt starts a fresh attempt for the given target word.
func NewAttempt(target string) *Attempt {
	return &Attempt{Target: target}
}

// Buffer returns the currently typed text.
func (a *Attempt) Buffer() string {
	return a.buffer
}

// Result returns the completion result, or nil while the attempt is in
// progress.
func (a *Attempt) Result() *Result {
	return a.result
}

// Keystroke replaces the buffer with the latest typed text. The first
// transition from empty to non-empty starts the clock; exact equality
// with the target completes the attempt and computes the speed. Returns
// true on completion. Keystrokes after completion are ignored.
func (a *Attempt) Keystroke(buffer string, now time.Time) bool {
	if a.result != nil {
		return false
	}

	if !a.started && a.buffer == "" && buffer != "" {
		a.started = true
		a.startedAt = now
	}
	a.buffer = buffer

	if buffer != a.Target {
		return false
	}

	elapsed := now.Sub(a.startedAt)
	a.result = &Result{ElapsedMs: elapsed.Milliseconds()}
	minutes := elapsed.Minutes()
	if minutes > 0 {
		wpm := math.Round(1 / minutes)
		if wpm >= 1 && !math.IsInf(wpm, 0) {
			a.result.WPM = int(wpm)
			a.result.HasWPM = true
		}
	}
	return true
}

// Classify returns the per-position classification of the buffer
// against the target: typed positions are matched or mismatched, the
// rest of the target is pending.
func (a *Attempt) Classify() []CharClass {
	target := []rune(a.Target)
	buf := []rune(a.buffer)

	classes := make([]CharClass, len(target))
	for i := range target {
		switch {
		case i >= len(buf):
			classes[i] = CharPending
		case buf[i] == target[i]:
			classes[i] = CharMatched
		default:
			classes[i] = CharMismatched
		}
	}
	return classes
}

// Reset clears the buffer, clock, and result so the word can be retried.
// Already-recorded attempts are unaffected.
func (a *Attempt) Reset() {
	a.buffer = ""
	a.started = false
	a.startedAt = time.Time{}
	a.result = nil
}
