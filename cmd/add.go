package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/gizi/internal/cli"
	"github.com/theirongolddev/gizi/internal/model"
	"github.com/theirongolddev/gizi/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagPortion float64
	flagKcal    float64
	flagProtein float64
	flagCarbs   float64
	flagFat     float64
	flagPreset  string
)

var addCmd = &cobra.Command{
	Use:   "add [NAME]",
	Short: "Log a food",
	Long: `Log a food. Nutrient values are per 100 g and are scaled to the portion.

Missing values are asked for interactively when stdin is a terminal.`,
	Example: `  gizi add "Nasi Putih" --portion 150 --kcal 130 --protein 2.7 --carbs 28 --fat 0.3
  gizi add --preset rice
  gizi add --preset egg --portion 100`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().Float64Var(&flagPortion, "portion", 0, "Portion in grams")
	addCmd.Flags().Float64Var(&flagKcal, "kcal", 0, "Calories per 100 g")
	addCmd.Flags().Float64Var(&flagProtein, "protein", 0, "Protein per 100 g")
	addCmd.Flags().Float64Var(&flagCarbs, "carbs", 0, "Carbs per 100 g")
	addCmd.Flags().Float64Var(&flagFat, "fat", 0, "Fat per 100 g")
	addCmd.Flags().StringVar(&flagPreset, "preset", "", "Use a common food (see `gizi presets`)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer s.Close()

	e, err := addEntry(cmd, s, args)
	if err != nil {
		return err
	}

	fmt.Printf("  ✓ %s added  %s · %s  P %s  C %s  F %s\n",
		e.Name, cli.FormatGrams(e.PortionGrams), cli.FormatKcal(e.Calories),
		cli.FormatGrams(e.Protein), cli.FormatGrams(e.Carbs), cli.FormatGrams(e.Fat))
	return nil
}

func addEntry(cmd *cobra.Command, s *session, args []string) (model.FoodEntry, error) {
	ctx := cmd.Context()
	if flagPreset != "" {
		set := s.cfg.PresetSet()
		p, ok := set.Lookup(flagPreset)
		if !ok {
			return model.FoodEntry{}, fmt.Errorf("unknown preset %q (available: %s)", flagPreset, strings.Join(set.Slugs(), ", "))
		}
		portion := 0.0
		if cmd.Flags().Changed("portion") {
			v, err := tui.ParsePortion(strconv.FormatFloat(flagPortion, 'f', -1, 64))
			if err != nil {
				return model.FoodEntry{}, fmt.Errorf("--portion: %w", err)
			}
			portion = v
		}
		e, _, err := s.tracker.AddPreset(ctx, p, portion)
		if err != nil {
			return e, fmt.Errorf("saving entry: %w", err)
		}
		return e, nil
	}

	in, err := foodInput(cmd, args)
	if err != nil {
		return model.FoodEntry{}, err
	}
	name, portion, per100, err := in.Parse()
	if err != nil {
		return model.FoodEntry{}, err
	}
	e, _, err := s.tracker.Add(ctx, name, portion, per100)
	if err != nil {
		return e, fmt.Errorf("saving entry: %w", err)
	}
	return e, nil
}

// foodInput collects the add form from args and flags, prompting for
// whatever is missing when possible.
func foodInput(cmd *cobra.Command, args []string) (tui.FoodInput, error) {
	in := tui.FoodInput{Name: strings.TrimSpace(strings.Join(args, " "))}
	fields := []struct {
		flag string
		val  float64
		dst  *string
	}{
		{"portion", flagPortion, &in.Portion},
		{"kcal", flagKcal, &in.Calories},
		{"protein", flagProtein, &in.Protein},
		{"carbs", flagCarbs, &in.Carbs},
		{"fat", flagFat, &in.Fat},
	}

	var missing []string
	if in.Name == "" {
		missing = append(missing, "NAME")
	}
	for _, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			*f.dst = strconv.FormatFloat(f.val, 'f', -1, 64)
		} else {
			missing = append(missing, "--"+f.flag)
		}
	}
	if len(missing) == 0 {
		return in, nil
	}

	if !interactive() {
		return in, fmt.Errorf("missing %s (pass them as flags or run in a terminal)", strings.Join(missing, ", "))
	}
	if err := tui.NewFoodForm(&in).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return in, errors.New("cancelled")
		}
		return in, err
	}
	return in, nil
}
