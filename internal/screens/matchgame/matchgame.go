package matchgame

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/catalog"
	"github.com/abhisek/wordiz/internal/match"
	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/screens/summary"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/streak"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/ui/theme"

	"github.com/google/uuid"
)

const (
	matchPairs   = 6
	gridColumns  = 4
	cardWidth    = 14
	resolveDelay = time.Second
)

type gameReadyMsg struct {
	Err error
}

type resolveMsg struct{}

type gameFinishedMsg struct {
	Streak int
	Best   int
}

// GameScreen runs one memory-matching game over a shuffled board of
// English/Russian card pairs.
type GameScreen struct {
	category  string
	cat       *catalog.Catalog
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	rng       *rand.Rand

	sessionID string
	game      *match.Game
	strk      streak.Record
	cursor    int
	startedAt time.Time
	errMsg    string
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// New creates a GameScreen for the given category. An empty category
// draws pairs from the whole catalog.
func New(category string, cat *catalog.Catalog, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, rng *rand.Rand) *GameScreen {
	return &GameScreen{
		category:  category,
		cat:       cat,
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		rng:       rng,
		sessionID: uuid.New().String(),
	}
}

func (g *GameScreen) Init() tea.Cmd {
	return g.initGame()
}

func (g *GameScreen) Title() string {
	return "Memory Match"
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Flip"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (g *GameScreen) initGame() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		pairs, err := g.cat.Pairs(g.category, matchPairs, g.rng)
		if err != nil {
			return gameReadyMsg{Err: err}
		}

		game, err := match.NewGame(pairs, g.rng)
		if err != nil {
			return gameReadyMsg{Err: err}
		}
		g.game = game
		g.startedAt = time.Now()

		snap, err := g.snapRepo.Latest(ctx)
		if err != nil {
			return gameReadyMsg{Err: err}
		}
		if snap != nil {
			g.strk = streak.FromSnapshot(snap.Data.Streak)
		}

		_ = g.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: g.sessionID,
			Action:    "start",
			Mode:      "match",
			Category:  g.category,
		})

		return gameReadyMsg{}
	}
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gameReadyMsg:
		if msg.Err != nil {
			g.errMsg = msg.Err.Error()
		}
		return g, nil

	case resolveMsg:
		g.game.Resolve()
		return g, nil

	case gameFinishedMsg:
		return g.handleFinished(msg)

	case tea.KeyMsg:
		return g.handleKey(msg)
	}

	return g, nil
}

func (g *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if g.game == nil || g.game.Completed() {
		return g, nil
	}

	n := len(g.game.Cards())
	switch msg.String() {
	case "left", "h":
		if g.cursor > 0 {
			g.cursor--
		}
	case "right", "l":
		if g.cursor < n-1 {
			g.cursor++
		}
	case "up", "k":
		if g.cursor-gridColumns >= 0 {
			g.cursor -= gridColumns
		}
	case "down", "j":
		if g.cursor+gridColumns < n {
			g.cursor += gridColumns
		}
	case "enter", " ":
		return g.flip()
	}

	return g, nil
}

func (g *GameScreen) flip() (screen.Screen, tea.Cmd) {
	res := g.game.Flip(g.cursor)

	if res.Completed {
		return g, g.finish()
	}
	if res.AwaitingResolve {
		// Leave the mismatched pair face up briefly, then flip back.
		return g, tea.Tick(resolveDelay, func(time.Time) tea.Msg {
			return resolveMsg{}
		})
	}
	return g, nil
}

func (g *GameScreen) finish() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		duration := int(time.Since(g.startedAt).Seconds())

		g.strk.RecordActivity(time.Now())

		// Carry existing progress forward; the match game touches only
		// the streak.
		var progressData []store.ProgressRecordData
		if snap, err := g.snapRepo.Latest(ctx); err == nil && snap != nil {
			progressData = snap.Data.Progress
		}
		_ = g.snapRepo.Save(ctx, &store.Snapshot{
			Timestamp: time.Now(),
			Data: store.SnapshotData{
				Version:  1,
				Progress: progressData,
				Streak:   g.strk.SnapshotData(),
			},
		})

		_ = g.eventRepo.AppendMatchEvent(ctx, store.MatchEventData{
			SessionID:    g.sessionID,
			Category:     g.category,
			Pairs:        matchPairs,
			Moves:        g.game.Moves(),
			DurationSecs: duration,
		})

		_ = g.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:    g.sessionID,
			Action:       "end",
			Mode:         "match",
			Category:     g.category,
			DurationSecs: duration,
		})

		best, _ := g.eventRepo.BestMatchMoves(ctx, matchPairs)

		return gameFinishedMsg{Streak: g.strk.Count, Best: best}
	}
}

func (g *GameScreen) handleFinished(msg gameFinishedMsg) (screen.Screen, tea.Cmd) {
	extra := []string{
		fmt.Sprintf("Pairs matched: %d", matchPairs),
		fmt.Sprintf("Moves: %d", g.game.Moves()),
	}
	if msg.Best > 0 {
		extra = append(extra, fmt.Sprintf("Best: %d moves", msg.Best))
	}

	sum := summary.Summary{
		Heading:  "Board cleared!",
		Duration: time.Since(g.startedAt),
		Extra:    extra,
	}

	streakCount := msg.Streak
	return g, tea.Batch(
		func() tea.Msg {
			return screen.StateChangedMsg{Mastered: -1, Studied: -1, Streak: streakCount}
		},
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(sum)}
		},
	)
}

func (g *GameScreen) View(width, height int) string {
	if g.errMsg != "" {
		content := theme.Incorrect.Render("Cannot start game") + "\n\n" +
			theme.Body.Render(g.errMsg)
		return centered(width, height, content)
	}
	if g.game == nil {
		return centered(width, height, theme.Hint.Render("Loading..."))
	}

	header := theme.Hint.Render(fmt.Sprintf("Moves: %d", g.game.Moves()))

	cards := g.game.Cards()
	views := make([]components.CardView, 0, len(cards))
	for _, c := range cards {
		state := g.game.StateOf(c.ID)
		views = append(views, components.CardView{
			Content:  c.Content,
			FaceUp:   state == match.StateUp,
			Matched:  state == match.StateMatched,
			Selected: c.ID == g.cursor,
		})
	}

	grid := components.RenderCardGrid(views, gridColumns, cardWidth)

	return centered(width, height, header+"\n\n"+grid)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
