package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/ui/theme"
)

// CardView is the presentation state of one card in a grid.
type CardView struct {
	Content  string
	FaceUp   bool
	Matched  bool
	Selected bool
}

// RenderCardGrid renders cards in rows of the given column count. Each
// card is a bordered box of uniform width. Face-down cards show their
// position number so keyboard selection has a stable target.
func RenderCardGrid(cards []CardView, columns, cardWidth int) string {
	if columns < 1 {
		columns = 1
	}

	rendered := make([]string, 0, len(cards))
	for i, c := range cards {
		rendered = append(rendered, renderCard(i+1, c, cardWidth))
	}

	var rows []string
	for start := 0; start < len(rendered); start += columns {
		end := start + columns
		if end > len(rendered) {
			end = len(rendered)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[start:end]...))
	}

	return strings.Join(rows, "\n")
}

func renderCard(num int, c CardView, width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	switch {
	case c.Matched:
		return box.
			BorderForeground(theme.Success).
			Render(theme.Matched.Render(c.Content))
	case c.FaceUp:
		return box.
			BorderForeground(theme.Secondary).
			Render(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Content))
	case c.Selected:
		return box.
			BorderForeground(theme.Primary).
			Render(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("[%d]", num)))
	default:
		return box.
			Render(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %d ", num)))
	}
}
