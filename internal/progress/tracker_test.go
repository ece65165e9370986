package progress

import "testing"

func TestRecordOutcome_PromotionPath(t *testing.T) {
	tr := NewTracker()

	// First correct: new → familiar.
	trans := tr.RecordOutcome("hello", true)
	if trans == nil || trans.From != LevelNew || trans.To != LevelFamiliar {
		t.Fatalf("first correct transition = %+v, want new→familiar", trans)
	}

	// Second correct: no transition yet.
	if trans := tr.RecordOutcome("hello", true); trans != nil {
		t.Fatalf("second correct transition = %+v, want nil", trans)
	}

	// Third correct: familiar → mastered.
	trans = tr.RecordOutcome("hello", true)
	if trans == nil || trans.From != LevelFamiliar || trans.To != LevelMastered {
		t.Fatalf("third correct transition = %+v, want familiar→mastered", trans)
	}

	r := tr.Get("hello")
	if r.TimesCorrect != 3 || r.TimesSeen != 3 {
		t.Errorf("record = %+v, want 3/3", r)
	}
}

func TestRecordOutcome_IncorrectFirst(t *testing.T) {
	tr := NewTracker()

	if trans := tr.RecordOutcome("food", false); trans != nil {
		t.Fatalf("incorrect answer caused transition %+v", trans)
	}
	if r := tr.Get("food"); r.Level != LevelNew || r.TimesSeen != 1 || r.TimesCorrect != 0 {
		t.Errorf("record = %+v, want new 0/1", r)
	}
}

func TestRecordOutcome_AccumulatedNotConsecutive(t *testing.T) {
	tr := NewTracker()

	// correct, wrong, correct, wrong, correct — still mastered at the
	// third accumulated correct.
	outcomes := []bool{true, false, true, false, true}
	var last *LevelTransition
	for _, c := range outcomes {
		if trans := tr.RecordOutcome("work", c); trans != nil {
			last = trans
		}
	}
	if last == nil || last.To != LevelMastered {
		t.Fatalf("final transition = %+v, want →mastered", last)
	}
}

func TestRecordOutcome_NoDemotion(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 3; i++ {
		tr.RecordOutcome("travel", true)
	}

	// Wrong answers after mastery never demote.
	for i := 0; i < 5; i++ {
		if trans := tr.RecordOutcome("travel", false); trans != nil {
			t.Fatalf("demotion transition %+v", trans)
		}
	}
	if r := tr.Get("travel"); r.Level != LevelMastered {
		t.Errorf("level = %v, want mastered", r.Level)
	}
}

func TestAggregate(t *testing.T) {
	tr := NewTracker()

	if stats := tr.Aggregate(); stats.AccuracyPct != 0 || stats.TotalWordsStudied != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}

	// hello: 3/3 mastered. food: 1/2 familiar. work: 0/1 new.
	tr.RecordOutcome("hello", true)
	tr.RecordOutcome("hello", true)
	tr.RecordOutcome("hello", true)
	tr.RecordOutcome("food", true)
	tr.RecordOutcome("food", false)
	tr.RecordOutcome("work", false)

	stats := tr.Aggregate()
	if stats.TotalWordsStudied != 3 {
		t.Errorf("TotalWordsStudied = %d, want 3", stats.TotalWordsStudied)
	}
	if stats.MasteredWords != 1 {
		t.Errorf("MasteredWords = %d, want 1", stats.MasteredWords)
	}
	if stats.FamiliarWords != 1 {
		t.Errorf("FamiliarWords = %d, want 1", stats.FamiliarWords)
	}
	// 4 correct of 6 seen → 66.67 → 67.
	if stats.AccuracyPct != 67 {
		t.Errorf("AccuracyPct = %d, want 67", stats.AccuracyPct)
	}
	if stats.AccuracyPct < 0 || stats.AccuracyPct > 100 {
		t.Error("AccuracyPct out of range")
	}
}

func TestFromRecords_Restore(t *testing.T) {
	tr := FromRecords([]Record{
		{WordID: "hotel", TimesCorrect: 2, TimesSeen: 4, Level: LevelFamiliar},
		{WordID: "salary", TimesCorrect: 0, TimesSeen: 0},
	})

	// Restored counters continue where they left off.
	trans := tr.RecordOutcome("hotel", true)
	if trans == nil || trans.To != LevelMastered {
		t.Fatalf("transition = %+v, want →mastered (third accumulated correct)", trans)
	}

	// Zero-value level defaults to new.
	if r := tr.Get("salary"); r.Level != LevelNew {
		t.Errorf("restored empty level = %v, want new", r.Level)
	}
}

func TestInvariant_CorrectNeverExceedsSeen(t *testing.T) {
	tr := NewTracker()
	outcomes := []bool{true, true, false, true, false, false, true}
	for _, c := range outcomes {
		tr.RecordOutcome("friend", c)
		r := tr.Get("friend")
		if r.TimesCorrect > r.TimesSeen {
			t.Fatalf("TimesCorrect %d > TimesSeen %d", r.TimesCorrect, r.TimesSeen)
		}
	}
}
