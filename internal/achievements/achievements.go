package achievements

import (
	"github.com/abhisek/wordiz/internal/catalog"
	"github.com/abhisek/wordiz/internal/progress"
)

// Input is the progress snapshot achievements are evaluated against.
// Everything here is derived from current state; nothing about unlocks
// is ever stored, so the unlocked set can never drift from the data.
type Input struct {
	Stats progress.Stats

	// TotalCorrect is the all-time correct answer count across modes.
	TotalCorrect int

	// QuizCorrect is the all-time correct answer count in quiz mode.
	QuizCorrect int

	// AverageWPM is the mean speed over recorded typing attempts, 0
	// when none have a numeric speed.
	AverageWPM float64

	// StreakDays is the current consecutive-day streak count.
	StreakDays int

	// HighestLevelStudied is the highest word level with at least one
	// recorded outcome.
	HighestLevelStudied int
}

// Achievement is a single unlockable badge with its predicate.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Unlocked    func(Input) bool
}

// All returns the fixed achievement set in display order.
func All() []Achievement {
	return []Achievement{
		{
			ID:          "first-word",
			Title:       "First Steps",
			Description: "Study your first word",
			Unlocked:    func(in Input) bool { return in.Stats.TotalWordsStudied >= 1 },
		},
		{
			ID:          "word-collector",
			Title:       "Word Collector",
			Description: "Study 10 words",
			Unlocked:    func(in Input) bool { return in.Stats.TotalWordsStudied >= 10 },
		},
		{
			ID:          "quiz-starter",
			Title:       "Quiz Starter",
			Description: "Answer a quiz question correctly",
			Unlocked:    func(in Input) bool { return in.QuizCorrect >= 1 },
		},
		{
			ID:          "sharp-shooter",
			Title:       "Sharp Shooter",
			Description: "Get 5 answers right",
			Unlocked:    func(in Input) bool { return in.TotalCorrect >= 5 },
		},
		{
			ID:          "fast-fingers",
			Title:       "Fast Fingers",
			Description: "Average 30 WPM in typing drills",
			Unlocked:    func(in Input) bool { return in.AverageWPM >= 30 },
		},
		{
			ID:          "on-fire",
			Title:       "On Fire",
			Description: "Keep a 5-day streak",
			Unlocked:    func(in Input) bool { return in.StreakDays >= 5 },
		},
		{
			ID:          "scholar",
			Title:       "Scholar",
			Description: "Study 30 words including the hardest level",
			Unlocked: func(in Input) bool {
				return in.HighestLevelStudied >= catalog.MaxLevel && in.Stats.TotalWordsStudied >= 30
			},
		},
	}
}

// Evaluate returns the IDs of all unlocked achievements, in display
// order. Pure function of the input.
func Evaluate(in Input) []string {
	var unlocked []string
	for _, a := range All() {
		if a.Unlocked(in) {
			unlocked = append(unlocked, a.ID)
		}
	}
	return unlocked
}

// IsUnlocked reports whether one achievement is unlocked for the input.
func IsUnlocked(id string, in Input) bool {
	for _, a := range All() {
		if a.ID == id {
			return a.Unlocked(in)
		}
	}
	return false
}
