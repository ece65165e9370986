package catalog

// Level buckets words by difficulty.
const (
	LevelBeginner     = 1
	LevelIntermediate = 2
	LevelAdvanced     = 3
)

// MaxLevel is the highest difficulty level in the catalog.
const MaxLevel = LevelAdvanced

// Word is a single vocabulary entry. Words are immutable; the engines
// only ever read them.
type Word struct {
	ID       string
	English  string
	Russian  string
	Phonetic string // IPA transcription, may be empty
	Example  string // usage sentence, may be empty
	Category string
	Level    int
}

// Option is one answer choice in a multiple-choice item.
type Option struct {
	Text    string
	Correct bool
}

// QuizItem couples a word with a prompt and its option set.
// Exactly one option is correct; BuildQuiz and BuildFillIn guarantee this.
type QuizItem struct {
	Word    Word
	Prompt  string
	Options []Option
}

// CorrectIndex returns the index of the correct option, or -1 if the
// item is malformed.
func (q QuizItem) CorrectIndex() int {
	for i, o := range q.Options {
		if o.Correct {
			return i
		}
	}
	return -1
}

// Pair is one English/Russian association for the memory game.
type Pair struct {
	WordID  string
	English string
	Russian string
}
