package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/ui/theme"
)

const banner = `
██     ██  ██████  ██████  ██████  ██ ███████
██     ██ ██    ██ ██   ██ ██   ██ ██    ███
██  █  ██ ██    ██ ██████  ██   ██ ██   ███
██ ███ ██ ██    ██ ██   ██ ██   ██ ██  ███
 ███ ███   ██████  ██   ██ ██████  ██ ███████`

// renderBanner draws the block-letter title with a tagline.
func renderBanner() string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(banner)

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Render("learn words, keep the streak")

	return title + "\n" + tagline
}
