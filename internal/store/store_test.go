package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAnswerEventsAndWordAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// No answers yet.
	acc, err := repo.WordAccuracy(ctx, "hello")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy = %v, want 0", acc)
	}

	answers := []AnswerEventData{
		{SessionID: "s1", WordID: "hello", Mode: "quiz", Correct: true, TimeMs: 1200},
		{SessionID: "s1", WordID: "hello", Mode: "quiz", Correct: false, TimeMs: 2500},
		{SessionID: "s2", WordID: "hello", Mode: "flashcards", Correct: true, TimeMs: 900},
		{SessionID: "s2", WordID: "water", Mode: "flashcards", Category: "food", Correct: true, TimeMs: 800},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	acc, err = repo.WordAccuracy(ctx, "hello")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	want := 2.0 / 3.0
	if acc != want {
		t.Errorf("accuracy = %v, want %v", acc, want)
	}

	total, quiz, err := repo.CorrectCounts(ctx)
	if err != nil {
		t.Fatalf("correct counts: %v", err)
	}
	if total != 3 {
		t.Errorf("total correct = %d, want 3", total)
	}
	if quiz != 1 {
		t.Errorf("quiz correct = %d, want 1", quiz)
	}
}

func TestSessionCountCountsOnlyEnds(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", Action: "start", Mode: "quiz"},
		{SessionID: "s1", Action: "end", Mode: "quiz", WordsStudied: 5, CorrectAnswers: 4, IncorrectAnswers: 1, DurationSecs: 60},
		{SessionID: "s2", Action: "start", Mode: "flashcards", Category: "travel"},
	}
	for i, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	n, err := repo.SessionCount(ctx)
	if err != nil {
		t.Fatalf("session count: %v", err)
	}
	if n != 1 {
		t.Errorf("session count = %d, want 1", n)
	}
}

func TestAverageWPMSkipsUnmeasuredAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []TypingEventData{
		{SessionID: "s1", WordID: "hello", WPM: 20, HasWPM: true, ElapsedMs: 3000},
		{SessionID: "s1", WordID: "water", WPM: 40, HasWPM: true, ElapsedMs: 1500},
		{SessionID: "s1", WordID: "bread", WPM: 0, HasWPM: false, ElapsedMs: 0},
	}
	for i, a := range attempts {
		if err := repo.AppendTypingEvent(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	avg, count, err := repo.AverageWPM(ctx)
	if err != nil {
		t.Fatalf("average wpm: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if avg != 30 {
		t.Errorf("avg = %v, want 30", avg)
	}
}

func TestBestMatchMoves(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	best, err := repo.BestMatchMoves(ctx, 6)
	if err != nil {
		t.Fatalf("best (empty): %v", err)
	}
	if best != 0 {
		t.Errorf("best = %d, want 0 when no games exist", best)
	}

	games := []MatchEventData{
		{SessionID: "s1", Category: "food", Pairs: 6, Moves: 11, DurationSecs: 90},
		{SessionID: "s2", Category: "food", Pairs: 6, Moves: 8, DurationSecs: 70},
		{SessionID: "s3", Category: "travel", Pairs: 4, Moves: 5, DurationSecs: 40},
	}
	for i, g := range games {
		if err := repo.AppendMatchEvent(ctx, g); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	best, err = repo.BestMatchMoves(ctx, 6)
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if best != 8 {
		t.Errorf("best = %d, want 8", best)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Progress: []ProgressRecordData{
				{WordID: "hello", TimesCorrect: 3, TimesSeen: 4, Level: "mastered"},
			},
			Streak: &StreakData{Count: 2, LastActive: "2026-08-29"},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if len(snap.Data.Progress) != 1 || snap.Data.Progress[0].WordID != "hello" {
		t.Errorf("progress = %+v, want single hello record", snap.Data.Progress)
	}
	if snap.Data.Streak == nil || snap.Data.Streak.Count != 2 {
		t.Errorf("streak = %+v, want count 2", snap.Data.Streak)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceOrderingAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start", Mode: "typing"}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendTypingEvent(ctx, TypingEventData{SessionID: "s1", WordID: "hello", WPM: 25, HasWPM: true, ElapsedMs: 2400}); err != nil {
		t.Fatalf("append typing: %v", err)
	}
	if err := repo.AppendMatchEvent(ctx, MatchEventData{SessionID: "s1", Pairs: 4, Moves: 6, DurationSecs: 30}); err != nil {
		t.Fatalf("append match: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session event: %v", err)
	}
	te, err := s.Client().TypingEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query typing event: %v", err)
	}
	me, err := s.Client().MatchEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query match event: %v", err)
	}

	if !(se.Sequence < te.Sequence && te.Sequence < me.Sequence) {
		t.Errorf("sequences not strictly ordered: %d, %d, %d", se.Sequence, te.Sequence, me.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
