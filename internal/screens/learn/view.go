package learn

import (
	"fmt"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/wordiz/internal/session"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/theme"
)

func (l *LearnScreen) View(width, height int) string {
	if l.errMsg != "" {
		return renderError(width, height, l.errMsg)
	}
	if l.session == nil {
		return renderCentered(width, height, theme.Hint.Render("Loading..."))
	}
	if l.session.Phase() == sess.PhaseCompleted {
		// Brief window while end-of-session persistence runs.
		return renderCentered(width, height, theme.Hint.Render("Saving..."))
	}

	progress := components.NewProgressBar(
		fmt.Sprintf("Word %d of %d", l.session.Index()+1, l.session.Len()),
		float64(l.session.Index())/float64(l.session.Len()),
		false,
		min(width-8, 50),
	).View()

	score := theme.Hint.Render(
		fmt.Sprintf("Score: %d/%d", l.session.ScoreCorrect, l.session.ScoreTotal))

	var body string
	if l.kind == sess.KindFlashcards {
		body = l.renderFlashcard()
	} else {
		body = l.mc.View()
	}

	content := progress + "\n" + score + "\n\n" + body
	return renderCentered(width, height, content)
}

// renderFlashcard draws the current card, front or back.
func (l *LearnScreen) renderFlashcard() string {
	w := l.session.Current()

	front := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.English)
	if w.Phonetic != "" {
		front += "\n" + theme.Phonetic.Render(w.Phonetic)
	}

	var inner string
	if l.session.Revealed() {
		back := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(w.Russian)
		if w.Example != "" {
			back += "\n\n" + theme.Hint.Render(w.Example)
		}
		inner = front + "\n\n" + back + "\n\n" +
			theme.Hint.Render("Did you know it?")
	} else {
		inner = front + "\n\n" + theme.Hint.Render("Press space to flip")
	}

	return theme.Card.
		Width(44).
		Align(lipgloss.Center).
		Render(inner)
}

func renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func renderError(width, height int, msg string) string {
	content := theme.Incorrect.Render("Cannot start session") + "\n\n" +
		theme.Body.Render(msg) + "\n\n" +
		theme.Hint.Render("Press Esc to go back")
	return renderCentered(width, height, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
