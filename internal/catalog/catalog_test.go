package catalog

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func rng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestCategories(t *testing.T) {
	c := New()
	got := c.Categories()
	want := []string{"basic", "family", "food", "travel", "work"}

	if len(got) != len(want) {
		t.Fatalf("Categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSample(t *testing.T) {
	c := New()

	words, err := c.Sample("food", 3, rng())
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 3 {
		t.Fatalf("len = %d, want 3", len(words))
	}
	seen := make(map[string]bool)
	for _, w := range words {
		if w.Category != "food" {
			t.Errorf("word %q has category %q", w.English, w.Category)
		}
		if seen[w.ID] {
			t.Errorf("duplicate word %q in sample", w.ID)
		}
		seen[w.ID] = true
	}

	// Asking for more than the category holds returns all of it.
	all, err := c.Sample("food", 100, rng())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("len = %d, want all 5 food words", len(all))
	}

	// Unknown category is a construction error.
	if _, err := c.Sample("nope", 3, rng()); !errors.Is(err, ErrNoWords) {
		t.Errorf("err = %v, want ErrNoWords", err)
	}
}

func TestSample_EmptyCategoryMeansAll(t *testing.T) {
	c := New()
	words, err := c.Sample("", 100, rng())
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 28 {
		t.Errorf("len = %d, want the full catalog", len(words))
	}
}

func TestBuildQuiz(t *testing.T) {
	c := New()
	items, err := c.BuildQuiz("", 5, rng())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 5 {
		t.Fatalf("len = %d, want 5", len(items))
	}

	for _, item := range items {
		if len(item.Options) != 4 {
			t.Errorf("item %q has %d options, want 4", item.Word.English, len(item.Options))
		}

		correct := 0
		for _, o := range item.Options {
			if o.Correct {
				correct++
				if o.Text != item.Word.Russian {
					t.Errorf("correct option %q, want %q", o.Text, item.Word.Russian)
				}
			} else if o.Text == item.Word.Russian {
				t.Errorf("distractor equals the answer %q", o.Text)
			}
		}
		if correct != 1 {
			t.Errorf("item %q has %d correct options", item.Word.English, correct)
		}
		if item.CorrectIndex() < 0 {
			t.Errorf("item %q CorrectIndex = -1", item.Word.English)
		}
	}
}

func TestBuildQuiz_TooFewWords(t *testing.T) {
	c := FromWords([]Word{
		{ID: "a", English: "a", Russian: "а", Category: "x", Level: 1},
		{ID: "b", English: "b", Russian: "б", Category: "x", Level: 1},
	})
	if _, err := c.BuildQuiz("x", 2, rng()); !errors.Is(err, ErrNotEnoughWords) {
		t.Errorf("err = %v, want ErrNotEnoughWords", err)
	}
}

func TestBuildFillIn(t *testing.T) {
	c := New()
	items, err := c.BuildFillIn("basic", 3, rng())
	if err != nil {
		t.Fatal(err)
	}

	for _, item := range items {
		if !strings.Contains(item.Prompt, "_____") {
			t.Errorf("prompt %q has no blank", item.Prompt)
		}
		if strings.Contains(strings.ToLower(item.Prompt), strings.ToLower(item.Word.English)) {
			t.Errorf("prompt %q still contains target %q", item.Prompt, item.Word.English)
		}

		correct := 0
		for _, o := range item.Options {
			if o.Correct {
				correct++
				if o.Text != item.Word.English {
					t.Errorf("correct option %q, want %q", o.Text, item.Word.English)
				}
			}
		}
		if correct != 1 {
			t.Errorf("item %q has %d correct options", item.Word.English, correct)
		}
	}
}

func TestPairs(t *testing.T) {
	c := New()
	pairs, err := c.Pairs("work", 4, rng())
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 4 {
		t.Fatalf("len = %d, want 4", len(pairs))
	}
	for _, p := range pairs {
		w, ok := c.Lookup(p.WordID)
		if !ok {
			t.Errorf("pair word %q not in catalog", p.WordID)
			continue
		}
		if p.English != w.English || p.Russian != w.Russian {
			t.Errorf("pair %+v does not match word %+v", p, w)
		}
	}
}

func TestLevel(t *testing.T) {
	c := New()
	if got := c.Level("knowledge"); got != LevelAdvanced {
		t.Errorf("Level(knowledge) = %d, want %d", got, LevelAdvanced)
	}
	if got := c.Level("missing"); got != 0 {
		t.Errorf("Level(missing) = %d, want 0", got)
	}
}
