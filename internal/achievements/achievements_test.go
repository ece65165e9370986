package achievements

import (
	"testing"

	"github.com/abhisek/wordiz/internal/progress"
)

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestEvaluate_Empty(t *testing.T) {
	if unlocked := Evaluate(Input{}); len(unlocked) != 0 {
		t.Errorf("empty input unlocked %v, want none", unlocked)
	}
}

func TestWordCollector_ExactThreshold(t *testing.T) {
	in := Input{Stats: progress.Stats{TotalWordsStudied: 9}}
	if IsUnlocked("word-collector", in) {
		t.Error("unlocked at 9 words")
	}
	in.Stats.TotalWordsStudied = 10
	if !IsUnlocked("word-collector", in) {
		t.Error("not unlocked at 10 words")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want []string
	}{
		{
			name: "first word only",
			in:   Input{Stats: progress.Stats{TotalWordsStudied: 1}},
			want: []string{"first-word"},
		},
		{
			name: "quiz starter",
			in:   Input{Stats: progress.Stats{TotalWordsStudied: 1}, QuizCorrect: 1},
			want: []string{"first-word", "quiz-starter"},
		},
		{
			name: "sharp shooter",
			in:   Input{Stats: progress.Stats{TotalWordsStudied: 3}, TotalCorrect: 5},
			want: []string{"first-word", "sharp-shooter"},
		},
		{
			name: "fast fingers at threshold",
			in:   Input{AverageWPM: 30},
			want: []string{"fast-fingers"},
		},
		{
			name: "below speed threshold",
			in:   Input{AverageWPM: 29.9},
			want: nil,
		},
		{
			name: "on fire",
			in:   Input{StreakDays: 5},
			want: []string{"on-fire"},
		},
		{
			name: "scholar needs both level and volume",
			in:   Input{Stats: progress.Stats{TotalWordsStudied: 30}, HighestLevelStudied: 2},
			want: []string{"first-word", "word-collector"},
		},
		{
			name: "scholar",
			in:   Input{Stats: progress.Stats{TotalWordsStudied: 30}, HighestLevelStudied: 3},
			want: []string{"first-word", "word-collector", "scholar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Evaluate = %v, want %v", got, tt.want)
			}
			for _, id := range tt.want {
				if !contains(got, id) {
					t.Errorf("missing %q in %v", id, got)
				}
			}
		})
	}
}

func TestEvaluate_Recomputed(t *testing.T) {
	// The unlocked set follows current state with no memory: dropping
	// the streak below the threshold drops the badge.
	in := Input{StreakDays: 6}
	if !IsUnlocked("on-fire", in) {
		t.Fatal("expected on-fire at streak 6")
	}
	in.StreakDays = 1
	if IsUnlocked("on-fire", in) {
		t.Error("on-fire persisted after streak reset; unlocks must be recomputed")
	}
}

func TestAll_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range All() {
		if seen[a.ID] {
			t.Errorf("duplicate achievement ID %q", a.ID)
		}
		seen[a.ID] = true
		if a.Title == "" || a.Description == "" || a.Unlocked == nil {
			t.Errorf("achievement %q incomplete", a.ID)
		}
	}
}
