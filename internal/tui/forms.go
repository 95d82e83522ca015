package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/gizi/internal/cli"
	"github.com/theirongolddev/gizi/internal/config"
	"github.com/theirongolddev/gizi/internal/model"
	"github.com/theirongolddev/gizi/internal/presets"
	"github.com/theirongolddev/gizi/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// FoodInput holds the raw text of the add-food form.
type FoodInput struct {
	Name     string
	Portion  string
	Calories string
	Protein  string
	Carbs    string
	Fat      string
}

// PresetInput holds the raw text of the preset picker.
type PresetInput struct {
	Slug    string
	Portion string // empty uses the preset's default portion
}

// SetupInput holds the raw text of the setup wizard.
type SetupInput struct {
	Theme    string
	Calories string
	Protein  string
	Carbs    string
	Fat      string
}

// ParseAmount parses a non-negative number. Surrounding spaces are ignored
// and a decimal comma is accepted.
func ParseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, errors.New("required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if v < 0 {
		return 0, errors.New("must not be negative")
	}
	return v, nil
}

// ParsePortion parses a portion in grams, which must be positive.
func ParsePortion(s string) (float64, error) {
	v, err := ParseAmount(s)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errors.New("must be greater than zero")
	}
	return v, nil
}

func validateAmount(s string) error {
	_, err := ParseAmount(s)
	return err
}

func validatePortion(s string) error {
	_, err := ParsePortion(s)
	return err
}

func validateOptionalPortion(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validatePortion(s)
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

// Parse validates every field and returns the values for Ledger.Add.
func (in FoodInput) Parse() (string, float64, model.Per100g, error) {
	var per100 model.Per100g
	if err := validateName(in.Name); err != nil {
		return "", 0, per100, err
	}
	portion, err := ParsePortion(in.Portion)
	if err != nil {
		return "", 0, per100, fmt.Errorf("portion: %w", err)
	}
	fields := []struct {
		label string
		raw   string
		dst   *float64
	}{
		{"calories", in.Calories, &per100.Calories},
		{"protein", in.Protein, &per100.Protein},
		{"carbs", in.Carbs, &per100.Carbs},
		{"fat", in.Fat, &per100.Fat},
	}
	for _, f := range fields {
		v, err := ParseAmount(f.raw)
		if err != nil {
			return "", 0, per100, fmt.Errorf("%s: %w", f.label, err)
		}
		*f.dst = v
	}
	return strings.TrimSpace(in.Name), portion, per100, nil
}

// Parse returns the selected preset and the chosen portion (0 for default).
func (in PresetInput) Parse(set *presets.Set) (presets.Preset, float64, error) {
	p, ok := set.Lookup(in.Slug)
	if !ok {
		return presets.Preset{}, 0, fmt.Errorf("unknown preset %q", in.Slug)
	}
	if strings.TrimSpace(in.Portion) == "" {
		return p, 0, nil
	}
	portion, err := ParsePortion(in.Portion)
	if err != nil {
		return presets.Preset{}, 0, fmt.Errorf("portion: %w", err)
	}
	return p, portion, nil
}

// NewSetupInput seeds the wizard from cfg.
func NewSetupInput(cfg config.Config) *SetupInput {
	return &SetupInput{
		Theme:    cfg.Appearance.Theme,
		Calories: strconv.FormatFloat(cfg.Targets.Calories, 'f', -1, 64),
		Protein:  strconv.FormatFloat(cfg.Targets.Protein, 'f', -1, 64),
		Carbs:    strconv.FormatFloat(cfg.Targets.Carbs, 'f', -1, 64),
		Fat:      strconv.FormatFloat(cfg.Targets.Fat, 'f', -1, 64),
	}
}

// Apply writes the wizard answers into cfg.
func (in SetupInput) Apply(cfg *config.Config) error {
	targets := []struct {
		label string
		raw   string
		dst   *float64
	}{
		{"calories", in.Calories, &cfg.Targets.Calories},
		{"protein", in.Protein, &cfg.Targets.Protein},
		{"carbs", in.Carbs, &cfg.Targets.Carbs},
		{"fat", in.Fat, &cfg.Targets.Fat},
	}
	for _, f := range targets {
		v, err := ParseAmount(f.raw)
		if err != nil {
			return fmt.Errorf("%s target: %w", f.label, err)
		}
		*f.dst = v
	}
	if in.Theme != "" {
		cfg.Appearance.Theme = in.Theme
	}
	return nil
}

// formTheme styles huh forms with the active theme's colors.
func formTheme() *huh.Theme {
	t := theme.Active
	ft := huh.ThemeBase()
	ft.Focused.Title = ft.Focused.Title.Foreground(t.AccentBright).Bold(true)
	ft.Focused.Description = ft.Focused.Description.Foreground(t.TextMuted)
	ft.Focused.SelectSelector = ft.Focused.SelectSelector.Foreground(t.Accent)
	ft.Focused.SelectedOption = ft.Focused.SelectedOption.Foreground(t.Accent)
	ft.Focused.ErrorMessage = ft.Focused.ErrorMessage.Foreground(t.Error)
	ft.Focused.ErrorIndicator = ft.Focused.ErrorIndicator.Foreground(t.Error)
	ft.Focused.FocusedButton = ft.Focused.FocusedButton.Background(t.Accent).Foreground(t.Background)
	return ft
}

// NewFoodForm builds the add-food form. Values are written into in.
func NewFoodForm(in *FoodInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Food name").
				Placeholder("Nasi Putih").
				Value(&in.Name).
				Validate(validateName),
			huh.NewInput().
				Title("Portion (g)").
				Placeholder("150").
				Value(&in.Portion).
				Validate(validatePortion),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Calories per 100g").
				Value(&in.Calories).
				Validate(validateAmount),
			huh.NewInput().
				Title("Protein per 100g (g)").
				Value(&in.Protein).
				Validate(validateAmount),
			huh.NewInput().
				Title("Carbs per 100g (g)").
				Value(&in.Carbs).
				Validate(validateAmount),
			huh.NewInput().
				Title("Fat per 100g (g)").
				Value(&in.Fat).
				Validate(validateAmount),
		),
	).WithTheme(formTheme())
}

// NewPresetForm builds the preset picker.
func NewPresetForm(in *PresetInput, set *presets.Set) *huh.Form {
	all := set.All()
	opts := make([]huh.Option[string], 0, len(all))
	for _, p := range all {
		label := fmt.Sprintf("%s (%s, %s)", p.Name, cli.FormatGrams(p.Portion), cli.FormatKcal(p.Per100.Calories*p.Portion/100))
		opts = append(opts, huh.NewOption(label, p.Slug))
	}
	if in.Slug == "" && len(all) > 0 {
		in.Slug = all[0].Slug
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Common food").
				Options(opts...).
				Value(&in.Slug),
			huh.NewInput().
				Title("Portion (g)").
				Description("Leave empty for the usual portion").
				Value(&in.Portion).
				Validate(validateOptionalPortion),
		),
	).WithTheme(formTheme())
}

// NewClearForm asks before wiping the day.
func NewClearForm(confirm *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Remove all foods?").
				Description("Every entry of the day is deleted.").
				Affirmative("Clear").
				Negative("Cancel").
				Value(confirm),
		),
	).WithTheme(formTheme())
}

// NewSetupForm builds the first-run wizard.
func NewSetupForm(in *SetupInput) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to gizi").
				Description("Set your daily targets. Run `gizi setup` anytime to change them."),
			huh.NewInput().Title("Calories (kcal)").Value(&in.Calories).Validate(validateAmount),
			huh.NewInput().Title("Protein (g)").Value(&in.Protein).Validate(validateAmount),
			huh.NewInput().Title("Carbs (g)").Value(&in.Carbs).Validate(validateAmount),
			huh.NewInput().Title("Fat (g)").Value(&in.Fat).Validate(validateAmount),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&in.Theme),
		),
	).WithTheme(formTheme())
}
