package components

import (
	"fmt"

	"github.com/theirongolddev/gizi/internal/cli"
	"github.com/theirongolddev/gizi/internal/model"
	"github.com/theirongolddev/gizi/internal/presenter"
	"github.com/theirongolddev/gizi/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// NutrientColor returns the active theme's color for n.
func NutrientColor(n model.Nutrient) lipgloss.Color {
	t := theme.Active
	switch n {
	case model.Protein:
		return t.Protein
	case model.Carbs:
		return t.Carbs
	case model.Fat:
		return t.Fat
	default:
		return t.Calories
	}
}

// barColor switches to the warning color once the target is reached.
func barColor(n model.Nutrient, pct float64) lipgloss.Color {
	if pct >= 100 {
		return theme.Active.Warning
	}
	return NutrientColor(n)
}

// NutrientBar renders one labeled progress line:
//
//	Protein   ████████░░░░░░░░  53%  80 / 150g
func NutrientBar(row presenter.Row, labelW, barWidth int) string {
	t := theme.Active
	if barWidth < 4 {
		barWidth = 4
	}

	color := barColor(row.Nutrient, row.Percent)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	unit := row.Unit()
	amount := fmt.Sprintf("%s / %s", cli.FormatDecimal(row.Current), cli.FormatAmount(row.Target, unit))

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, row.Label())) +
		spaceStyle.Render(" ") +
		bar.ViewAs(row.Percent/100) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%4.0f%%", row.Percent)) +
		spaceStyle.Render("  ") +
		amountStyle.Render(amount)
}

// NutrientBars renders rows one per line, sized to fit innerWidth.
func NutrientBars(rows []presenter.Row, innerWidth int) string {
	labelW := 0
	for _, r := range rows {
		if w := lipgloss.Width(r.Label()); w > labelW {
			labelW = w
		}
	}

	// label + space + bar + space + "100%" + two spaces + "2,000 / 2,000 kcal"
	barWidth := innerWidth - labelW - 1 - 1 - 5 - 2 - 18
	out := ""
	for i, r := range rows {
		if i > 0 {
			out += "\n"
		}
		out += NutrientBar(r, labelW, barWidth)
	}
	return out
}
