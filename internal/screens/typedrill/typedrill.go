package typedrill

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/catalog"
	"github.com/abhisek/wordiz/internal/progress"
	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/screens/summary"
	sess "github.com/abhisek/wordiz/internal/session"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/streak"
	"github.com/abhisek/wordiz/internal/typing"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/ui/theme"

	"github.com/google/uuid"
)

const (
	drillCount    = 5
	advanceDelay  = 700 * time.Millisecond
)

type drillReadyMsg struct {
	Err error
}

type wordDoneMsg struct{}

type persistDoneMsg struct {
	Err error
}

type drillFinishedMsg struct {
	Mastered int
	Studied  int
	Streak   int
}

// DrillScreen runs a typing drill: the learner copies each English
// word, with per-word speed measured from the first keystroke.
type DrillScreen struct {
	category  string
	cat       *catalog.Catalog
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	rng       *rand.Rand

	session *sess.Session
	attempt *typing.Attempt
	input   components.TextInput
	tracker *progress.Tracker
	strk    streak.Record

	wpmSum   int
	wpmCount int
	waiting  bool // pause between completed word and next
	transitions []progress.LevelTransition
	errMsg   string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a DrillScreen over the given category. An empty category
// draws from the whole catalog.
func New(category string, cat *catalog.Catalog, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, rng *rand.Rand) *DrillScreen {
	return &DrillScreen{
		category:  category,
		cat:       cat,
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		rng:       rng,
		input:     components.NewTextInput("Type the word...", 40),
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	return tea.Batch(d.initDrill(), d.input.Init())
}

func (d *DrillScreen) Title() string {
	return "Typing Drill"
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Skip word"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (d *DrillScreen) initDrill() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		words, err := d.cat.Sample(d.category, drillCount, d.rng)
		if err != nil {
			return drillReadyMsg{Err: err}
		}

		s, err := sess.New(uuid.New().String(), sess.KindTyping, words)
		if err != nil {
			return drillReadyMsg{Err: err}
		}
		d.session = s
		d.attempt = typing.NewAttempt(s.Current().English)

		var snapData *store.SnapshotData
		snap, err := d.snapRepo.Latest(ctx)
		if err != nil {
			return drillReadyMsg{Err: err}
		}
		if snap != nil {
			snapData = &snap.Data
		}
		d.tracker = progress.TrackerFromSnapshot(snapData)
		if snapData != nil {
			d.strk = streak.FromSnapshot(snapData.Streak)
		}

		_ = d.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: s.ID,
			Action:    "start",
			Mode:      string(sess.KindTyping),
			Category:  d.category,
		})

		return drillReadyMsg{}
	}
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case drillReadyMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
		}
		return d, nil

	case wordDoneMsg:
		return d.advance()

	case persistDoneMsg:
		return d, nil

	case drillFinishedMsg:
		return d.handleFinished(msg)

	case tea.KeyMsg:
		if d.session == nil || d.session.Phase() != sess.PhaseActive || d.waiting {
			return d, nil
		}
		if msg.String() == "tab" {
			return d.wordComplete(false)
		}
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		if d.attempt.Keystroke(d.input.Value(), time.Now()) {
			return d.wordComplete(true)
		}
		return d, cmd
	}

	return d, nil
}

// wordComplete records the outcome for the current word. typed is false
// when the learner skipped it.
func (d *DrillScreen) wordComplete(typed bool) (screen.Screen, tea.Cmd) {
	word := d.session.Current()
	result := d.attempt.Result()

	outcome, err := d.session.Answer(typed)
	if err != nil {
		return d, nil
	}

	if tr := d.tracker.RecordOutcome(outcome.WordID, outcome.Correct); tr != nil {
		d.transitions = append(d.transitions, *tr)
	}

	if typed && result != nil && result.HasWPM {
		d.wpmSum += result.WPM
		d.wpmCount++
	}

	persist := func() tea.Msg {
		ctx := context.Background()
		if typed && result != nil {
			_ = d.eventRepo.AppendTypingEvent(ctx, store.TypingEventData{
				SessionID: d.session.ID,
				WordID:    word.ID,
				WPM:       result.WPM,
				HasWPM:    result.HasWPM,
				ElapsedMs: result.ElapsedMs,
			})
		}
		err := d.eventRepo.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID: d.session.ID,
			WordID:    word.ID,
			Mode:      string(sess.KindTyping),
			Category:  d.category,
			Correct:   typed,
			TimeMs:    int(elapsedMs(result)),
		})
		return persistDoneMsg{Err: err}
	}

	d.waiting = true
	return d, tea.Batch(persist, tea.Tick(advanceDelay, func(time.Time) tea.Msg {
		return wordDoneMsg{}
	}))
}

func elapsedMs(r *typing.Result) int64 {
	if r == nil {
		return 0
	}
	return r.ElapsedMs
}

func (d *DrillScreen) advance() (screen.Screen, tea.Cmd) {
	d.waiting = false

	if d.session.Phase() == sess.PhaseCompleted {
		return d, d.finish()
	}

	d.attempt = typing.NewAttempt(d.session.Current().English)
	d.input.SetValue("")
	return d, nil
}

func (d *DrillScreen) finish() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		d.strk.RecordActivity(time.Now())

		_ = d.snapRepo.Save(ctx, &store.Snapshot{
			Timestamp: time.Now(),
			Data: store.SnapshotData{
				Version:  1,
				Progress: d.tracker.SnapshotData(),
				Streak:   d.strk.SnapshotData(),
			},
		})

		_ = d.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:        d.session.ID,
			Action:           "end",
			Mode:             string(sess.KindTyping),
			Category:         d.category,
			WordsStudied:     d.session.ScoreTotal,
			CorrectAnswers:   d.session.ScoreCorrect,
			IncorrectAnswers: d.session.ScoreTotal - d.session.ScoreCorrect,
			DurationSecs:     int(d.session.Duration().Seconds()),
		})

		stats := d.tracker.Aggregate()
		return drillFinishedMsg{
			Mastered: stats.MasteredWords,
			Studied:  stats.TotalWordsStudied,
			Streak:   d.strk.Count,
		}
	}
}

func (d *DrillScreen) handleFinished(msg drillFinishedMsg) (screen.Screen, tea.Cmd) {
	var extra []string
	if d.wpmCount > 0 {
		extra = append(extra, fmt.Sprintf("Average speed: %d WPM", d.wpmSum/d.wpmCount))
	} else {
		extra = append(extra, "No measurable speed this round")
	}

	sum := summary.Summary{
		Heading:     "Typing drill complete!",
		Correct:     d.session.ScoreCorrect,
		Total:       d.session.ScoreTotal,
		Duration:    d.session.Duration(),
		Transitions: d.transitions,
		Extra:       extra,
		WordName: func(wordID string) string {
			if w, ok := d.cat.Lookup(wordID); ok {
				return w.English
			}
			return wordID
		},
	}

	return d, tea.Batch(
		func() tea.Msg {
			return screen.StateChangedMsg{Mastered: msg.Mastered, Studied: msg.Studied, Streak: msg.Streak}
		},
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(sum)}
		},
	)
}

func (d *DrillScreen) View(width, height int) string {
	if d.errMsg != "" {
		content := theme.Incorrect.Render("Cannot start drill") + "\n\n" +
			theme.Body.Render(d.errMsg)
		return centered(width, height, content)
	}
	if d.session == nil {
		return centered(width, height, theme.Hint.Render("Loading..."))
	}
	if d.session.Phase() == sess.PhaseCompleted {
		return centered(width, height, theme.Hint.Render("Saving..."))
	}

	w := d.session.Current()

	header := theme.Hint.Render(
		fmt.Sprintf("Word %d of %d", d.session.Index()+1, d.session.Len()))

	meaning := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(w.Russian)
	if w.Phonetic != "" {
		meaning += "  " + theme.Phonetic.Render(w.Phonetic)
	}

	target := d.renderTarget()

	content := header + "\n\n" + meaning + "\n\n" + target + "\n\n" + d.input.View()
	return centered(width, height, theme.Card.Width(50).Align(lipgloss.Center).Render(content))
}

// renderTarget colors each target character by its typed state.
func (d *DrillScreen) renderTarget() string {
	classes := d.attempt.Classify()
	runes := []rune(d.attempt.Target)

	var out string
	for i, r := range runes {
		switch classes[i] {
		case typing.CharMatched:
			out += lipgloss.NewStyle().Foreground(theme.Success).Render(string(r))
		case typing.CharMismatched:
			out += lipgloss.NewStyle().Foreground(theme.Error).Underline(true).Render(string(r))
		default:
			out += lipgloss.NewStyle().Foreground(theme.TextDim).Render(string(r))
		}
	}
	return out
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
