package progress

import "github.com/abhisek/wordiz/internal/store"

// TrackerFromSnapshot restores a Tracker from snapshot data. A nil or
// empty snapshot yields a fresh tracker.
func TrackerFromSnapshot(data *store.SnapshotData) *Tracker {
	if data == nil || len(data.Progress) == 0 {
		return NewTracker()
	}

	records := make([]Record, 0, len(data.Progress))
	for _, p := range data.Progress {
		records = append(records, Record{
			WordID:       p.WordID,
			TimesCorrect: p.TimesCorrect,
			TimesSeen:    p.TimesSeen,
			Level:        Level(p.Level),
		})
	}
	return FromRecords(records)
}

// SnapshotData converts the tracker's records to their serialized form.
func (t *Tracker) SnapshotData() []store.ProgressRecordData {
	records := t.Records()
	out := make([]store.ProgressRecordData, 0, len(records))
	for _, r := range records {
		out = append(out, store.ProgressRecordData{
			WordID:       r.WordID,
			TimesCorrect: r.TimesCorrect,
			TimesSeen:    r.TimesSeen,
			Level:        string(r.Level),
		})
	}
	return out
}
