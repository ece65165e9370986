package streak

import (
	"time"

	"github.com/abhisek/wordiz/internal/store"
)

// dateLayout is the serialized form of LastActive.
const dateLayout = "2006-01-02"

// FromSnapshot restores a streak record from snapshot data. A nil or
// unparseable entry yields the zero record.
func FromSnapshot(data *store.StreakData) Record {
	if data == nil {
		return Record{}
	}
	day, err := time.ParseInLocation(dateLayout, data.LastActive, time.Local)
	if err != nil {
		return Record{}
	}
	return Record{Count: data.Count, LastActive: day}
}

// SnapshotData converts the record to its serialized form. The zero
// record yields nil.
func (r Record) SnapshotData() *store.StreakData {
	if r.LastActive.IsZero() {
		return nil
	}
	return &store.StreakData{
		Count:      r.Count,
		LastActive: r.LastActive.Format(dateLayout),
	}
}
