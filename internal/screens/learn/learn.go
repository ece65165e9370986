package learn

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordiz/internal/catalog"
	"github.com/abhisek/wordiz/internal/progress"
	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/screens/summary"
	sess "github.com/abhisek/wordiz/internal/session"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/streak"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/layout"

	"github.com/google/uuid"
)

const (
	flashcardCount = 10
	quizCount      = 8

	feedbackDelay = 900 * time.Millisecond
)

// LearnScreen runs a flashcard, quiz, or fill-in session.
type LearnScreen struct {
	kind     sess.Kind
	category string
	cat      *catalog.Catalog
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	rng      *rand.Rand

	session *sess.Session
	items   []catalog.QuizItem // empty for flashcards
	tracker *progress.Tracker
	strk    streak.Record

	mc          components.MultiChoice
	itemShownAt time.Time
	transitions []progress.LevelTransition
	showingFeedback bool
	errMsg      string
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

// New creates a LearnScreen for the given exercise kind and category.
// An empty category draws from the whole catalog.
func New(kind sess.Kind, category string, cat *catalog.Catalog, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, rng *rand.Rand) *LearnScreen {
	return &LearnScreen{
		kind:      kind,
		category:  category,
		cat:       cat,
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		rng:       rng,
	}
}

func (l *LearnScreen) Init() tea.Cmd {
	return l.initSession()
}

func (l *LearnScreen) Title() string {
	return l.kind.DisplayName()
}

func (l *LearnScreen) KeyHints() []layout.KeyHint {
	if l.session == nil {
		return nil
	}
	if l.kind == sess.KindFlashcards {
		if l.session.Revealed() {
			return []layout.KeyHint{
				{Key: "Y", Description: "Knew it"},
				{Key: "N", Description: "Still learning"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "Space", Description: "Flip card"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	if l.showingFeedback {
		return []layout.KeyHint{
			{Key: "", Description: "..."},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

// initSession builds the item list and loads learner state from the
// latest snapshot.
func (l *LearnScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var words []catalog.Word
		var err error
		switch l.kind {
		case sess.KindQuiz:
			l.items, err = l.cat.BuildQuiz(l.category, quizCount, l.rng)
		case sess.KindFillIn:
			l.items, err = l.cat.BuildFillIn(l.category, quizCount, l.rng)
		default:
			words, err = l.cat.Sample(l.category, flashcardCount, l.rng)
		}
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		if len(l.items) > 0 {
			words = make([]catalog.Word, 0, len(l.items))
			for _, it := range l.items {
				words = append(words, it.Word)
			}
		}

		s, err := sess.New(uuid.New().String(), l.kind, words)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		l.session = s

		var snapData *store.SnapshotData
		snap, err := l.snapRepo.Latest(ctx)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		if snap != nil {
			snapData = &snap.Data
		}
		l.tracker = progress.TrackerFromSnapshot(snapData)
		if snapData != nil {
			l.strk = streak.FromSnapshot(snapData.Streak)
		}

		_ = l.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: s.ID,
			Action:    "start",
			Mode:      string(l.kind),
			Category:  l.category,
		})

		return sessionReadyMsg{}
	}
}

func (l *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		l.itemShownAt = time.Now()
		if l.kind != sess.KindFlashcards {
			l.mc = l.newChoice()
		}
		return l, nil

	case feedbackDoneMsg:
		return l.advance()

	case sessionFinishedMsg:
		return l.handleFinished(msg)

	case persistDoneMsg:
		return l, nil

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	return l, nil
}

func (l *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if l.session == nil || l.session.Phase() != sess.PhaseActive || l.showingFeedback {
		return l, nil
	}

	if l.kind == sess.KindFlashcards {
		switch msg.String() {
		case " ", "space", "enter":
			_ = l.session.Reveal()
		case "y", "Y":
			if l.session.Revealed() {
				return l.answer(true)
			}
		case "n", "N":
			if l.session.Revealed() {
				return l.answer(false)
			}
		}
		return l, nil
	}

	wasSubmitted := l.mc.Submitted
	var cmd tea.Cmd
	l.mc, cmd = l.mc.Update(msg)
	if !wasSubmitted && l.mc.Submitted {
		return l.answer(l.mc.IsCorrect())
	}
	return l, cmd
}

// answer records the outcome, persists it, and either pauses on
// feedback (choice modes) or advances immediately (flashcards).
func (l *LearnScreen) answer(correct bool) (screen.Screen, tea.Cmd) {
	word := l.session.Current()
	elapsed := int(time.Since(l.itemShownAt).Milliseconds())

	outcome, err := l.session.Answer(correct)
	if err != nil {
		return l, nil
	}

	if tr := l.tracker.RecordOutcome(outcome.WordID, outcome.Correct); tr != nil {
		l.transitions = append(l.transitions, *tr)
	}

	persist := func() tea.Msg {
		err := l.eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID: l.session.ID,
			WordID:    word.ID,
			Mode:      string(l.kind),
			Category:  l.category,
			Correct:   outcome.Correct,
			TimeMs:    elapsed,
		})
		return persistDoneMsg{Err: err}
	}

	if l.kind == sess.KindFlashcards {
		scr, cmd := l.advance()
		return scr, tea.Batch(persist, cmd)
	}

	l.showingFeedback = true
	return l, tea.Batch(persist, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	}))
}

// advance moves past the feedback pause: show the next item or finish.
func (l *LearnScreen) advance() (screen.Screen, tea.Cmd) {
	l.showingFeedback = false

	if l.session.Phase() == sess.PhaseCompleted {
		return l, l.finish()
	}

	l.itemShownAt = time.Now()
	if l.kind != sess.KindFlashcards {
		l.mc = l.newChoice()
	}
	return l, nil
}

// finish persists the end-of-session state and replaces this screen
// with the summary.
func (l *LearnScreen) finish() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		l.strk.RecordActivity(time.Now())

		snapData := store.SnapshotData{
			Version:  1,
			Progress: l.tracker.SnapshotData(),
			Streak:   l.strk.SnapshotData(),
		}
		_ = l.snapRepo.Save(ctx, &store.Snapshot{
			Timestamp: time.Now(),
			Data:      snapData,
		})

		_ = l.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:        l.session.ID,
			Action:           "end",
			Mode:             string(l.kind),
			Category:         l.category,
			WordsStudied:     l.session.ScoreTotal,
			CorrectAnswers:   l.session.ScoreCorrect,
			IncorrectAnswers: l.session.ScoreTotal - l.session.ScoreCorrect,
			DurationSecs:     int(l.session.Duration().Seconds()),
		})

		stats := l.tracker.Aggregate()
		return sessionFinishedMsg{
			Mastered: stats.MasteredWords,
			Studied:  stats.TotalWordsStudied,
			Streak:   l.strk.Count,
		}
	}
}

// handleFinished fans out the summary replacement and the header
// refresh once persistence is done.
func (l *LearnScreen) handleFinished(msg sessionFinishedMsg) (screen.Screen, tea.Cmd) {
	sum := summary.Summary{
		Heading:     l.kind.DisplayName() + " complete!",
		Correct:     l.session.ScoreCorrect,
		Total:       l.session.ScoreTotal,
		Duration:    l.session.Duration(),
		Transitions: l.transitions,
		WordName:    l.wordName,
	}

	return l, tea.Batch(
		func() tea.Msg {
			return screen.StateChangedMsg{Mastered: msg.Mastered, Studied: msg.Studied, Streak: msg.Streak}
		},
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(sum)}
		},
	)
}

// wordName resolves a word ID to its display form for the summary.
func (l *LearnScreen) wordName(wordID string) string {
	if w, ok := l.cat.Lookup(wordID); ok {
		return w.English
	}
	return wordID
}

// newChoice builds the multiple-choice component for the current item.
func (l *LearnScreen) newChoice() components.MultiChoice {
	item := l.items[l.session.Index()]
	options := make([]string, 0, len(item.Options))
	for _, o := range item.Options {
		options = append(options, o.Text)
	}
	subtext := ""
	if l.kind == sess.KindQuiz {
		subtext = item.Word.Phonetic
	}
	return components.NewMultiChoice(item.Prompt, subtext, options, item.CorrectIndex())
}
