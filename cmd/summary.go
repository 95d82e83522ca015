package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/gizi/internal/cli"
	"github.com/theirongolddev/gizi/internal/model"
	"github.com/theirongolddev/gizi/internal/tracker"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Totals against daily targets",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Print(renderSummary(s.tracker.Snapshot()))
	return nil
}

// renderSummary formats a snapshot as the summary report.
func renderSummary(snap tracker.Snapshot) string {
	out := "\n" + cli.RenderTitle("NUTRITION  "+snap.Day) + "\n\n"

	rows := make([][]string, 0, len(snap.View.Rows))
	for _, r := range snap.View.Rows {
		rows = append(rows, []string{
			r.Label(),
			cli.FormatAmount(r.Current, r.Unit()),
			cli.FormatAmount(r.Target, r.Unit()),
			cli.FormatAmount(r.Remaining(), r.Unit()),
			cli.RenderPercentBar(r.Percent, 20),
			cli.FormatPercent(r.Percent),
		})
	}
	out += cli.RenderTable(cli.Table{
		Headers: []string{"Nutrient", "Eaten", "Target", "Left", "Progress", "%"},
		Rows:    rows,
	})

	out += "\n  Macro energy  " + cli.FormatKcal(snap.View.Breakdown.Sum()) + "\n\n"
	segs := make([]cli.Segment, 0, len(snap.View.Shares))
	for _, sh := range snap.View.Shares {
		segs = append(segs, cli.Segment{
			Label:    sh.Nutrient.Label(),
			Fraction: sh.Fraction,
			Color:    macroColor(sh.Nutrient),
		})
	}
	out += indent(cli.RenderSplitBar(segs, 48)) + "\n"

	if len(snap.Entries) == 0 {
		out += "\n  No foods added yet. Try `gizi add` or `gizi add --preset rice`.\n"
	} else {
		out += fmt.Sprintf("\n  %s logged. `gizi list` shows them.\n", plural(len(snap.Entries), "food"))
	}
	return out + "\n"
}

func macroColor(n model.Nutrient) lipgloss.Color {
	switch n {
	case model.Protein:
		return cli.ColorProtein
	case model.Carbs:
		return cli.ColorCarbs
	default:
		return cli.ColorFat
	}
}

// indent prefixes every line of s with two spaces.
func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
