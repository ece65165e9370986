package streak

import "time"

// Record is the consecutive-activity-day counter. LastActive is always
// a normalized calendar date (midnight, local time); a zero LastActive
// means no activity has ever been recorded.
type Record struct {
	Count      int
	LastActive time.Time
}

// DateOf truncates a timestamp to its calendar date in its own location.
// Day boundaries follow the local calendar, not rolling 24h windows.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// RecordActivity applies one day's activity to the streak:
// the day after the last active day extends the streak, repeat activity
// on the same day is a no-op, and anything else (first activity, or a
// gap of two or more days) restarts the count at 1.
func (r *Record) RecordActivity(now time.Time) {
	today := DateOf(now)

	switch {
	case r.LastActive.IsZero():
		r.Count = 1
	case today.Equal(r.LastActive):
		return
	case today.Equal(r.LastActive.AddDate(0, 0, 1)):
		r.Count++
	default:
		r.Count = 1
	}
	r.LastActive = today
}
