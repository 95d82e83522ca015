// Package theme defines color themes for the gizi TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	Selected     lipgloss.Color // Highlighted row
	Border       lipgloss.Color
	BorderAccent lipgloss.Color // Focused cards, overlays
	TextDim      lipgloss.Color // Hints, empty bar track
	TextMuted    lipgloss.Color // Labels
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color
	AccentBright lipgloss.Color
	Success      lipgloss.Color // Toasts
	Warning      lipgloss.Color // Target reached
	Error        lipgloss.Color

	// Nutrient roles, shared by bars, chart segments and legends.
	Calories lipgloss.Color
	Protein  lipgloss.Color
	Carbs    lipgloss.Color
	Fat      lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	Selected:     lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Success:      lipgloss.Color("#879A39"),
	Warning:      lipgloss.Color("#DA702C"),
	Error:        lipgloss.Color("#D14D41"),
	Calories:     lipgloss.Color("#CE5D97"),
	Protein:      lipgloss.Color("#4385BE"),
	Carbs:        lipgloss.Color("#D0A215"),
	Fat:          lipgloss.Color("#879A39"),
}

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	Selected:     lipgloss.Color("#45475A"),
	Border:       lipgloss.Color("#585B70"),
	BorderAccent: lipgloss.Color("#89B4FA"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#89B4FA"),
	AccentBright: lipgloss.Color("#B4D0FB"),
	Success:      lipgloss.Color("#A6E3A1"),
	Warning:      lipgloss.Color("#FAB387"),
	Error:        lipgloss.Color("#F38BA8"),
	Calories:     lipgloss.Color("#F5C2E7"),
	Protein:      lipgloss.Color("#89B4FA"),
	Carbs:        lipgloss.Color("#F9E2AF"),
	Fat:          lipgloss.Color("#A6E3A1"),
}

// Tailwind uses the Tailwind CSS gray and accent palette.
var Tailwind = Theme{
	Name:         "tailwind",
	Background:   lipgloss.Color("#111827"),
	Surface:      lipgloss.Color("#1F2937"),
	Selected:     lipgloss.Color("#374151"),
	Border:       lipgloss.Color("#4B5563"),
	BorderAccent: lipgloss.Color("#34D399"),
	TextDim:      lipgloss.Color("#6B7280"),
	TextMuted:    lipgloss.Color("#9CA3AF"),
	TextPrimary:  lipgloss.Color("#F9FAFB"),
	Accent:       lipgloss.Color("#34D399"),
	AccentBright: lipgloss.Color("#6EE7B7"),
	Success:      lipgloss.Color("#22C55E"),
	Warning:      lipgloss.Color("#F97316"),
	Error:        lipgloss.Color("#EF4444"),
	Calories:     lipgloss.Color("#F472B6"),
	Protein:      lipgloss.Color("#60A5FA"),
	Carbs:        lipgloss.Color("#FBBF24"),
	Fat:          lipgloss.Color("#34D399"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	Selected:     lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Success:      lipgloss.Color("2"),
	Warning:      lipgloss.Color("3"),
	Error:        lipgloss.Color("1"),
	Calories:     lipgloss.Color("5"),
	Protein:      lipgloss.Color("4"),
	Carbs:        lipgloss.Color("3"),
	Fat:          lipgloss.Color("2"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, Tailwind, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Names lists every theme name.
func Names() []string {
	out := make([]string, 0, len(All))
	for _, t := range All {
		out = append(out, t.Name)
	}
	return out
}
