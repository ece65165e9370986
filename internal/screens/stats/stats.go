package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/achievements"
	"github.com/abhisek/wordiz/internal/catalog"
	"github.com/abhisek/wordiz/internal/progress"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/streak"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/ui/theme"
)

type statsLoadedMsg struct {
	Err error
}

// StatsScreen shows aggregate progress, streak, and achievements.
// Everything displayed is recomputed from current state on entry.
type StatsScreen struct {
	cat       *catalog.Catalog
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo

	loaded      bool
	stats       progress.Stats
	strk        streak.Record
	sessions    int
	avgWPM      float64
	wpmAttempts int
	input       achievements.Input
	errMsg      string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen.
func New(cat *catalog.Catalog, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *StatsScreen {
	return &StatsScreen{
		cat:       cat,
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var snapData *store.SnapshotData
		snap, err := s.snapRepo.Latest(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		if snap != nil {
			snapData = &snap.Data
		}

		tracker := progress.TrackerFromSnapshot(snapData)
		s.stats = tracker.Aggregate()
		if snapData != nil {
			s.strk = streak.FromSnapshot(snapData.Streak)
		}

		total, quiz, err := s.eventRepo.CorrectCounts(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		s.avgWPM, s.wpmAttempts, err = s.eventRepo.AverageWPM(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		s.sessions, err = s.eventRepo.SessionCount(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		highestLevel := 0
		for _, r := range tracker.Records() {
			if r.TimesSeen == 0 {
				continue
			}
			if lvl := s.cat.Level(r.WordID); lvl > highestLevel {
				highestLevel = lvl
			}
		}

		s.input = achievements.Input{
			Stats:               s.stats,
			TotalCorrect:        total,
			QuizCorrect:         quiz,
			AverageWPM:          s.avgWPM,
			StreakDays:          s.strk.Count,
			HighestLevelStudied: highestLevel,
		}

		return statsLoadedMsg{}
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		} else {
			s.loaded = true
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return centered(width, height,
			theme.Incorrect.Render("Cannot load stats")+"\n\n"+theme.Body.Render(s.errMsg))
	}
	if !s.loaded {
		return centered(width, height, theme.Hint.Render("Loading..."))
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render("Your progress"))
	b.WriteString("\n\n")

	barWidth := min(width-20, 40)
	totalWords := len(s.cat.Words(""))
	studiedPct := 0.0
	if totalWords > 0 {
		studiedPct = float64(s.stats.TotalWordsStudied) / float64(totalWords)
	}

	b.WriteString(fmt.Sprintf("Words studied     %d of %d\n", s.stats.TotalWordsStudied, totalWords))
	b.WriteString(components.NewProgressBar("", studiedPct, true, barWidth).View())
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Mastered          %d\n", s.stats.MasteredWords))
	b.WriteString(fmt.Sprintf("Familiar          %d\n", s.stats.FamiliarWords))
	b.WriteString(fmt.Sprintf("Accuracy          %d%%\n", s.stats.AccuracyPct))
	b.WriteString(fmt.Sprintf("Sessions          %d\n", s.sessions))
	if s.wpmAttempts > 0 {
		b.WriteString(fmt.Sprintf("Typing speed      %.0f WPM over %d attempts\n", s.avgWPM, s.wpmAttempts))
	}
	b.WriteString(fmt.Sprintf("Streak            %d day(s)\n", s.strk.Count))
	b.WriteString("\n")

	b.WriteString(theme.Subtitle.Render("Achievements"))
	b.WriteString("\n\n")
	for _, a := range achievements.All() {
		if a.Unlocked(s.input) {
			b.WriteString(theme.Correct.Render("  ★ " + a.Title))
			b.WriteString(theme.Hint.Render("  " + a.Description))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ☆ " + a.Title))
			b.WriteString(theme.Hint.Render("  " + a.Description))
		}
		b.WriteString("\n")
	}

	return centered(width, height, b.String())
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
