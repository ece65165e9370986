package progress

// Level classifies a word's position in the mastery lifecycle.
type Level string

const (
	LevelNew      Level = "new"
	LevelFamiliar Level = "familiar"
	LevelMastered Level = "mastered"
)

// MasteredThreshold is the cumulative correct-answer count that promotes
// a familiar word to mastered. Accumulated, not consecutive.
const MasteredThreshold = 3

// LevelTransition records a mastery level change for display and event
// logging.
type LevelTransition struct {
	WordID string
	From   Level
	To     Level
}
