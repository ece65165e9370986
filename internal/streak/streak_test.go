package streak

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	// Mid-afternoon timestamps; RecordActivity buckets by calendar day.
	return time.Date(2024, 6, d, 15, 30, 0, 0, time.UTC)
}

func TestFirstActivity(t *testing.T) {
	var r Record
	r.RecordActivity(day(1))

	if r.Count != 1 {
		t.Errorf("Count = %d, want 1", r.Count)
	}
	if !r.LastActive.Equal(DateOf(day(1))) {
		t.Errorf("LastActive = %v, want normalized day 1", r.LastActive)
	}
}

func TestConsecutiveDays(t *testing.T) {
	var r Record
	r.RecordActivity(day(1))
	r.RecordActivity(day(2))
	if r.Count != 2 {
		t.Errorf("Count = %d, want 2 after day D then D+1", r.Count)
	}
	r.RecordActivity(day(3))
	if r.Count != 3 {
		t.Errorf("Count = %d, want 3", r.Count)
	}
}

func TestSameDayNoOp(t *testing.T) {
	var r Record
	r.RecordActivity(day(1))
	r.RecordActivity(day(1).Add(4 * time.Hour))
	r.RecordActivity(day(1).Add(8 * time.Hour))

	if r.Count != 1 {
		t.Errorf("Count = %d, want 1 (same-day activity already counted)", r.Count)
	}
}

func TestGapResets(t *testing.T) {
	var r Record
	r.RecordActivity(day(1))
	r.RecordActivity(day(2))
	r.RecordActivity(day(5)) // gap of ≥2 days

	if r.Count != 1 {
		t.Errorf("Count = %d, want 1 after a gap", r.Count)
	}
	if !r.LastActive.Equal(DateOf(day(5))) {
		t.Errorf("LastActive = %v, want day 5", r.LastActive)
	}
}

func TestCalendarBoundaryNotRolling24h(t *testing.T) {
	var r Record
	// 23:50 one day, 00:10 the next: different calendar days, streak
	// extends even though under 24h apart.
	r.RecordActivity(time.Date(2024, 6, 1, 23, 50, 0, 0, time.UTC))
	r.RecordActivity(time.Date(2024, 6, 2, 0, 10, 0, 0, time.UTC))

	if r.Count != 2 {
		t.Errorf("Count = %d, want 2 across a midnight boundary", r.Count)
	}
}
