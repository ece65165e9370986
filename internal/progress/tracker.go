package progress

import (
	"math"
	"sort"
)

// Record is the per-word progress bookkeeping. TimesCorrect never
// exceeds TimesSeen.
type Record struct {
	WordID       string
	TimesCorrect int
	TimesSeen    int
	Level        Level
}

// Stats is the aggregate view over all records. It is always derived,
// never stored: recompute it from the records whenever it is needed.
type Stats struct {
	TotalWordsStudied int
	MasteredWords     int
	FamiliarWords     int
	AccuracyPct       int
}

// Tracker converts raw answer outcomes into mastery transitions and
// aggregate statistics. Levels only ever move forward; a run of wrong
// answers after mastery does not demote (the product rule, kept as is).
//
// RecordOutcome must be called once per distinct outcome event; the
// tracker has no event identity and cannot deduplicate replays.
type Tracker struct {
	words map[string]*Record
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{words: make(map[string]*Record)}
}

// FromRecords restores a tracker from persisted records.
func FromRecords(records []Record) *Tracker {
	t := NewTracker()
	for _, r := range records {
		rec := r
		if rec.Level == "" {
			rec.Level = LevelNew
		}
		t.words[rec.WordID] = &rec
	}
	return t
}

// Get returns the record for a word, creating a LevelNew record on
// first access.
func (t *Tracker) Get(wordID string) *Record {
	if r, ok := t.words[wordID]; ok {
		return r
	}
	r := &Record{WordID: wordID, Level: LevelNew}
	t.words[wordID] = r
	return r
}

// RecordOutcome applies one answer outcome to a word's record and
// returns the resulting level transition, or nil when the level did
// not change.
func (t *Tracker) RecordOutcome(wordID string, correct bool) *LevelTransition {
	r := t.Get(wordID)

	r.TimesSeen++
	if correct {
		r.TimesCorrect++
	}

	from := r.Level
	if r.Level == LevelNew && correct {
		r.Level = LevelFamiliar
	}
	if r.Level == LevelFamiliar && r.TimesCorrect >= MasteredThreshold {
		r.Level = LevelMastered
	}

	if r.Level == from {
		return nil
	}
	return &LevelTransition{WordID: wordID, From: from, To: r.Level}
}

// Records returns all records sorted by word ID.
func (t *Tracker) Records() []Record {
	out := make([]Record, 0, len(t.words))
	for _, r := range t.words {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WordID < out[j].WordID })
	return out
}

// Aggregate recomputes the aggregate stats from scratch. O(words seen),
// no side effects, callable at any time.
func (t *Tracker) Aggregate() Stats {
	var stats Stats
	var correct, seen int
	for _, r := range t.words {
		if r.TimesSeen == 0 {
			continue
		}
		stats.TotalWordsStudied++
		correct += r.TimesCorrect
		seen += r.TimesSeen
		switch r.Level {
		case LevelMastered:
			stats.MasteredWords++
		case LevelFamiliar:
			stats.FamiliarWords++
		}
	}
	if seen > 0 {
		stats.AccuracyPct = int(math.Round(100 * float64(correct) / float64(seen)))
	}
	return stats
}
