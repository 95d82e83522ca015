package components

import (
	"strings"

	"github.com/theirongolddev/gizi/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Toast is a transient message shown on the right of the status bar.
type Toast struct {
	Text  string
	Error bool
}

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the toast (if any) on the right, otherwise the open day.
func RenderStatusBar(width int, hints, day string, toast Toast) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " " + hints
	right := day + " "
	rightStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	if toast.Text != "" {
		right = toast.Text + " "
		rightStyle = rightStyle.Foreground(t.Success).Bold(true)
		if toast.Error {
			rightStyle = rightStyle.Foreground(t.Error)
		}
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	fill := lipgloss.NewStyle().Background(t.Surface)
	return style.Render(left + fill.Render(strings.Repeat(" ", padding)) + rightStyle.Render(right))
}
