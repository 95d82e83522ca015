package cmd

import (
	"fmt"

	"github.com/theirongolddev/gizi/internal/cli"
	"github.com/theirongolddev/gizi/internal/tracker"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Foods logged on the day",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer s.Close()

	snap := s.tracker.Snapshot()
	if len(snap.Entries) == 0 {
		fmt.Println("\n  No foods added yet.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("FOODS  " + snap.Day))
	fmt.Println()
	fmt.Print(renderEntryTable(snap))
	return nil
}

// renderEntryTable lists entries in insertion order with a totals row.
func renderEntryTable(snap tracker.Snapshot) string {
	rows := make([][]string, 0, len(snap.Entries)+2)
	for i, e := range snap.Entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			cli.ShortID(e.ID),
			e.Name,
			cli.FormatGrams(e.PortionGrams),
			cli.FormatKcal(e.Calories),
			cli.FormatGrams(e.Protein),
			cli.FormatGrams(e.Carbs),
			cli.FormatGrams(e.Fat),
		})
	}
	t := snap.Totals
	rows = append(rows,
		[]string{"---"},
		[]string{"", "", "Total", "", cli.FormatKcal(t.Calories), cli.FormatGrams(t.Protein), cli.FormatGrams(t.Carbs), cli.FormatGrams(t.Fat)},
	)

	return cli.RenderTable(cli.Table{
		Headers: []string{"#", "ID", "Food", "Portion", "Calories", "Protein", "Carbs", "Fat"},
		Rows:    rows,
	})
}
