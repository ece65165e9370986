package picker

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/theme"
)

// PickerScreen lets the learner choose a word category before a
// session starts. The first entry mixes all categories.
type PickerScreen struct {
	title string
	menu  components.Menu
}

var _ screen.Screen = (*PickerScreen)(nil)

// New creates a category picker. next builds the screen to push once a
// category is chosen; the empty string means all categories.
func New(title string, categories []string, next func(category string) screen.Screen) *PickerScreen {
	items := make([]components.MenuItem, 0, len(categories)+1)

	push := func(category string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: next(category)}
			}
		}
	}

	items = append(items, components.MenuItem{Label: "ALL WORDS", Action: push("")})
	for _, c := range categories {
		items = append(items, components.MenuItem{Label: strings.ToUpper(c), Action: push(c)})
	}

	return &PickerScreen{
		title: title,
		menu:  components.NewMenu(items),
	}
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickerScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("Pick a category")

	content := heading + "\n\n" + p.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (p *PickerScreen) Title() string {
	return p.title
}
