package home

import (
	"context"
	"fmt"
	"math/rand"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/catalog"
	"github.com/abhisek/wordiz/internal/progress"
	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/screens/learn"
	"github.com/abhisek/wordiz/internal/screens/matchgame"
	"github.com/abhisek/wordiz/internal/screens/picker"
	"github.com/abhisek/wordiz/internal/screens/stats"
	"github.com/abhisek/wordiz/internal/screens/typedrill"
	sess "github.com/abhisek/wordiz/internal/session"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/streak"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu          components.Menu
	masteredCount int
	studiedCount  int
	streakDays    int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cat *catalog.Catalog, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, rng *rand.Rand) *HomeScreen {
	// Load snapshot for the stats bar.
	var snapData *store.SnapshotData
	if snapRepo != nil {
		if snap, _ := snapRepo.Latest(context.Background()); snap != nil {
			snapData = &snap.Data
		}
	}

	tracker := progress.TrackerFromSnapshot(snapData)
	agg := tracker.Aggregate()

	var strk streak.Record
	if snapData != nil {
		strk = streak.FromSnapshot(snapData.Streak)
	}

	categories := cat.Categories()

	pick := func(title string, next func(category string) screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(title, categories, next)}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "FLASHCARDS", Action: pick("Flashcards", func(category string) screen.Screen {
			return learn.New(sess.KindFlashcards, category, cat, eventRepo, snapRepo, rng)
		})},
		{Label: "QUIZ", Action: pick("Quiz", func(category string) screen.Screen {
			return learn.New(sess.KindQuiz, category, cat, eventRepo, snapRepo, rng)
		})},
		{Label: "FILL IN", Action: pick("Fill In", func(category string) screen.Screen {
			return learn.New(sess.KindFillIn, category, cat, eventRepo, snapRepo, rng)
		})},
		{Label: "TYPING DRILL", Action: pick("Typing Drill", func(category string) screen.Screen {
			return typedrill.New(category, cat, eventRepo, snapRepo, rng)
		})},
		{Label: "MEMORY MATCH", Action: pick("Memory Match", func(category string) screen.Screen {
			return matchgame.New(category, cat, eventRepo, snapRepo, rng)
		})},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(cat, eventRepo, snapRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		masteredCount: agg.MasteredWords,
		studiedCount:  agg.TotalWordsStudied,
		streakDays:    strk.Count,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(screen.StateChangedMsg); ok {
		if m.Mastered >= 0 {
			h.masteredCount = m.Mastered
		}
		if m.Studied >= 0 {
			h.studiedCount = m.Studied
		}
		h.streakDays = m.Streak
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := renderBanner()

	statsLine := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("studied %d   mastered %d   streak %d day(s)",
			h.studiedCount, h.masteredCount, h.streakDays))

	content := title + "\n\n" + statsLine + "\n\n" + h.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
