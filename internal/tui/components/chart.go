package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/gizi/internal/cli"
	"github.com/theirongolddev/gizi/internal/presenter"
	"github.com/theirongolddev/gizi/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// SegmentWidths splits width between shares in proportion to their fractions.
// Widths always sum to width; the last share absorbs rounding. When every
// fraction is zero all widths are zero.
func SegmentWidths(shares []presenter.Share, width int) []int {
	widths := make([]int, len(shares))
	if len(shares) == 0 || width <= 0 {
		return widths
	}

	var sum float64
	for _, s := range shares {
		sum += s.Fraction
	}
	if sum <= 0 {
		return widths
	}

	used := 0
	for i, s := range shares[:len(shares)-1] {
		w := int(math.Round(s.Fraction / sum * float64(width)))
		if used+w > width {
			w = width - used
		}
		widths[i] = w
		used += w
	}
	widths[len(shares)-1] = width - used
	return widths
}

// MacroSplit renders the macro energy split as a stacked bar followed by a
// legend line with each macro's kcal and share.
func MacroSplit(shares []presenter.Share, width int) string {
	t := theme.Active
	if width < 10 {
		width = 10
	}

	widths := SegmentWidths(shares, width)
	var bar strings.Builder
	total := 0
	for i, s := range shares {
		if widths[i] == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(NutrientColor(s.Nutrient)).Background(t.Surface)
		bar.WriteString(style.Render(strings.Repeat("█", widths[i])))
		total += widths[i]
	}
	if total == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		bar.WriteString(empty.Render(strings.Repeat("░", width)))
	}

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var legend strings.Builder
	for i, s := range shares {
		if i > 0 {
			legend.WriteString(spaceStyle.Render("   "))
		}
		dot := lipgloss.NewStyle().Foreground(NutrientColor(s.Nutrient)).Background(t.Surface).Render("■")
		legend.WriteString(dot)
		legend.WriteString(mutedStyle.Render(fmt.Sprintf(" %s %s %s",
			s.Nutrient.Label(), cli.FormatKcal(s.Kcal), cli.FormatPercent(s.Fraction*100))))
	}

	return bar.String() + "\n" + legend.String()
}
