package catalog

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// optionsPerItem is the option count for quiz and fill-in items:
// one correct answer plus three distractors.
const optionsPerItem = 4

// Catalog holds the vocabulary and builds exercise material from it.
// All sampling goes through an injected rand source so tests can seed it.
type Catalog struct {
	words   []Word
	byID    map[string]Word
	byLevel map[string]int // word ID → level, for quick lookups
}

// New returns a catalog backed by the embedded seed vocabulary.
func New() *Catalog {
	return FromWords(seedWords)
}

// FromWords builds a catalog over an explicit word list.
func FromWords(words []Word) *Catalog {
	c := &Catalog{
		words:   words,
		byID:    make(map[string]Word, len(words)),
		byLevel: make(map[string]int, len(words)),
	}
	for _, w := range words {
		c.byID[w.ID] = w
		c.byLevel[w.ID] = w.Level
	}
	return c
}

// Categories returns all category identifiers in sorted order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, w := range c.words {
		if !seen[w.Category] {
			seen[w.Category] = true
			cats = append(cats, w.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// Lookup returns the word with the given ID.
func (c *Catalog) Lookup(id string) (Word, bool) {
	w, ok := c.byID[id]
	return w, ok
}

// Level returns the difficulty level of a word, or 0 if unknown.
func (c *Catalog) Level(wordID string) int {
	return c.byLevel[wordID]
}

// Words returns every word in the category, or the whole catalog when
// category is empty.
func (c *Catalog) Words(category string) []Word {
	if category == "" {
		out := make([]Word, len(c.words))
		copy(out, c.words)
		return out
	}
	var out []Word
	for _, w := range c.words {
		if w.Category == category {
			out = append(out, w)
		}
	}
	return out
}

// Sample returns count words drawn uniformly at random from the category.
// When the category holds fewer than count words, all of them are
// returned in shuffled order.
func (c *Catalog) Sample(category string, count int, rng *rand.Rand) ([]Word, error) {
	pool := c.Words(category)
	if len(pool) == 0 {
		return nil, fmt.Errorf("sample %q: %w", category, ErrNoWords)
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if count < len(pool) {
		pool = pool[:count]
	}
	return pool, nil
}

// BuildQuiz samples count quiz items: the English word as prompt, four
// Russian options with exactly one correct. Distractors come from the
// whole catalog so small categories still get plausible wrong answers.
func (c *Catalog) BuildQuiz(category string, count int, rng *rand.Rand) ([]QuizItem, error) {
	words, err := c.Sample(category, count, rng)
	if err != nil {
		return nil, err
	}
	if len(c.words) < optionsPerItem {
		return nil, fmt.Errorf("quiz needs %d words, have %d: %w", optionsPerItem, len(c.words), ErrNotEnoughWords)
	}

	items := make([]QuizItem, 0, len(words))
	for _, w := range words {
		prompt := w.English
		if w.Phonetic != "" {
			prompt = w.English + "  " + w.Phonetic
		}
		item, err := c.buildItem(w, prompt, rng)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// BuildFillIn samples count fill-in-the-blank items: the word's example
// sentence with the word blanked out, English options. Words without an
// example sentence are skipped.
func (c *Catalog) BuildFillIn(category string, count int, rng *rand.Rand) ([]QuizItem, error) {
	pool := c.Words(category)
	var usable []Word
	for _, w := range pool {
		if w.Example != "" && strings.Contains(strings.ToLower(w.Example), strings.ToLower(w.English)) {
			usable = append(usable, w)
		}
	}
	if len(usable) == 0 {
		return nil, fmt.Errorf("fill-in %q: no words with usable examples: %w", category, ErrNoWords)
	}
	rng.Shuffle(len(usable), func(i, j int) {
		usable[i], usable[j] = usable[j], usable[i]
	})
	if count < len(usable) {
		usable = usable[:count]
	}

	items := make([]QuizItem, 0, len(usable))
	for _, w := range usable {
		prompt := blankExample(w)
		item, err := c.buildFillInItem(w, prompt, rng)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Pairs samples count word pairs for the memory game.
func (c *Catalog) Pairs(category string, count int, rng *rand.Rand) ([]Pair, error) {
	words, err := c.Sample(category, count, rng)
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, len(words))
	for i, w := range words {
		pairs[i] = Pair{WordID: w.ID, English: w.English, Russian: w.Russian}
	}
	return pairs, nil
}

// buildItem constructs a quiz item with Russian translations as options.
func (c *Catalog) buildItem(w Word, prompt string, rng *rand.Rand) (QuizItem, error) {
	distractors, err := c.drawDistractors(w.ID, rng)
	if err != nil {
		return QuizItem{}, err
	}

	options := make([]Option, 0, optionsPerItem)
	options = append(options, Option{Text: w.Russian, Correct: true})
	for _, d := range distractors {
		options = append(options, Option{Text: d.Russian})
	}
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	item := QuizItem{Word: w, Prompt: prompt, Options: options}
	if err := validateItem(item); err != nil {
		return QuizItem{}, err
	}
	return item, nil
}

// buildFillInItem constructs a fill-in item with English words as options.
func (c *Catalog) buildFillInItem(w Word, prompt string, rng *rand.Rand) (QuizItem, error) {
	distractors, err := c.drawDistractors(w.ID, rng)
	if err != nil {
		return QuizItem{}, err
	}

	options := make([]Option, 0, optionsPerItem)
	options = append(options, Option{Text: w.English, Correct: true})
	for _, d := range distractors {
		options = append(options, Option{Text: d.English})
	}
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	item := QuizItem{Word: w, Prompt: prompt, Options: options}
	if err := validateItem(item); err != nil {
		return QuizItem{}, err
	}
	return item, nil
}

// drawDistractors picks three distinct words other than wordID and with
// translations distinct from it, uniformly from the whole catalog.
func (c *Catalog) drawDistractors(wordID string, rng *rand.Rand) ([]Word, error) {
	target := c.byID[wordID]
	var pool []Word
	for _, w := range c.words {
		if w.ID != wordID && w.Russian != target.Russian && w.English != target.English {
			pool = append(pool, w)
		}
	}
	need := optionsPerItem - 1
	if len(pool) < need {
		return nil, fmt.Errorf("need %d distractors, have %d: %w", need, len(pool), ErrNotEnoughWords)
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:need], nil
}

// validateItem enforces the exactly-one-correct invariant. A violation
// is a construction bug, fatal to the session being built.
func validateItem(item QuizItem) error {
	correct := 0
	for _, o := range item.Options {
		if o.Correct {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("item for %q has %d correct options: %w", item.Word.English, correct, ErrBadOptions)
	}
	return nil
}

// blankExample replaces the target word in its example sentence with a
// fixed-width blank, case-insensitively.
func blankExample(w Word) string {
	ex := w.Example
	lower := strings.ToLower(ex)
	idx := strings.Index(lower, strings.ToLower(w.English))
	if idx < 0 {
		return ex
	}
	return ex[:idx] + "_____" + ex[idx+len(w.English):]
}
