// Package tui provides the interactive Bubble Tea dashboard for gizi.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/gizi/internal/cli"
	"github.com/theirongolddev/gizi/internal/config"
	"github.com/theirongolddev/gizi/internal/model"
	"github.com/theirongolddev/gizi/internal/presets"
	"github.com/theirongolddev/gizi/internal/tracker"
	"github.com/theirongolddev/gizi/internal/tui/components"
	"github.com/theirongolddev/gizi/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// openedMsg is sent once the day's entries have been restored.
type openedMsg struct {
	snap tracker.Snapshot
	err  error
}

// toastExpiredMsg hides the toast it was scheduled for.
type toastExpiredMsg struct {
	seq int
}

// mode is the overlay currently receiving keys.
type mode int

const (
	modeDashboard mode = iota
	modeAdd
	modePreset
	modeClear
	modeSetup
)

// App is the root Bubble Tea model.
type App struct {
	ctx     context.Context
	tracker *tracker.Tracker
	presets *presets.Set
	day     string

	// Data
	snap   tracker.Snapshot
	loaded bool

	// UI state
	width    int
	height   int
	cursor   int
	showHelp bool
	keys     keyMap
	help     help.Model
	spinner  spinner.Model

	// Overlay form (huh). Values live behind pointers so they survive
	// the value copies Bubble Tea makes of App.
	mode       mode
	form       *huh.Form
	foodVals   *FoodInput
	presetVals *PresetInput
	setupVals  *SetupInput
	confirm    *bool

	toast    components.Toast
	toastSeq int
}

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 140
	minContentHeight = 5

	toastDuration = 3 * time.Second
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model for day. The tracker is opened in the
// background by Init.
func NewApp(ctx context.Context, tr *tracker.Tracker, set *presets.Set, day string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Background(theme.Active.Surface)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Active.TextDim).Background(theme.Active.Surface)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Active.AccentBright).Background(theme.Active.Surface).Bold(true)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Background(theme.Active.Surface)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Active.TextDim).Background(theme.Active.Surface)

	a := App{
		ctx:     ctx,
		tracker: tr,
		presets: set,
		day:     day,
		keys:    defaultKeyMap(),
		help:    h,
		spinner: sp,
		snap:    tr.Snapshot(),
	}

	if !config.Exists() {
		a.setupVals = NewSetupInput(loadConfigOrDefault())
		a.form = NewSetupForm(a.setupVals)
		a.mode = modeSetup
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		a.spinner.Tick,
		openCmd(a.ctx, a.tracker, a.day),
	}
	if a.form != nil {
		cmds = append(cmds, a.form.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case openedMsg:
		a.loaded = true
		a.snap = msg.snap
		a.clampCursor()
		if msg.err != nil {
			cmd := a.showToast(fmt.Sprintf("Could not restore %s: %s", a.day, msg.err), true)
			return a, cmd
		}
		return a, nil

	case toastExpiredMsg:
		if msg.seq == a.toastSeq {
			a.toast = components.Toast{}
		}
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		// Global: quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// Open form intercepts all keys
		if a.form != nil {
			if msg.String() == "esc" {
				return a.closeForm(), nil
			}
			return a.updateForm(msg)
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.showHelp = true
			return a, nil
		case key.Matches(msg, a.keys.Down):
			if a.cursor < len(a.snap.Entries)-1 {
				a.cursor++
			}
			return a, nil
		case key.Matches(msg, a.keys.Up):
			if a.cursor > 0 {
				a.cursor--
			}
			return a, nil
		case key.Matches(msg, a.keys.Add):
			a.foodVals = &FoodInput{}
			return a.openForm(modeAdd, NewFoodForm(a.foodVals))
		case key.Matches(msg, a.keys.Preset):
			a.presetVals = &PresetInput{}
			return a.openForm(modePreset, NewPresetForm(a.presetVals, a.presets))
		case key.Matches(msg, a.keys.Clear):
			if len(a.snap.Entries) == 0 {
				return a, nil
			}
			a.confirm = new(bool)
			return a.openForm(modeClear, NewClearForm(a.confirm))
		case key.Matches(msg, a.keys.Remove):
			return a.removeSelected()
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) openForm(m mode, f *huh.Form) (tea.Model, tea.Cmd) {
	a.mode = m
	a.form = f.WithWidth(a.formWidth())
	return a, a.form.Init()
}

func (a App) closeForm() App {
	a.mode = modeDashboard
	a.form = nil
	return a
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		return a.submitForm()
	}

	if a.form.State == huh.StateAborted {
		return a.closeForm(), nil
	}

	return a, cmd
}

// submitForm applies the completed form of the current mode.
func (a App) submitForm() (App, tea.Cmd) {
	m := a.mode
	a = a.closeForm()

	switch m {
	case modeAdd:
		name, portion, per100, err := a.foodVals.Parse()
		if err != nil {
			cmd := a.showToast(err.Error(), true)
			return a, cmd
		}
		e, snap, err := a.tracker.Add(a.ctx, name, portion, per100)
		return a.afterAdd(e, snap, err)

	case modePreset:
		p, portion, err := a.presetVals.Parse(a.presets)
		if err != nil {
			cmd := a.showToast(err.Error(), true)
			return a, cmd
		}
		e, snap, err := a.tracker.AddPreset(a.ctx, p, portion)
		return a.afterAdd(e, snap, err)

	case modeClear:
		if a.confirm == nil || !*a.confirm {
			return a, nil
		}
		snap, err := a.tracker.Clear(a.ctx)
		a.snap = snap
		a.clampCursor()
		if err != nil {
			cmd := a.showToast("Clear failed: "+err.Error(), true)
			return a, cmd
		}
		cmd := a.showToast("All foods cleared", false)
		return a, cmd

	case modeSetup:
		err := a.saveSetupConfig()
		a.snap = a.tracker.Snapshot()
		if err != nil {
			cmd := a.showToast("Could not save config: "+err.Error(), true)
			return a, cmd
		}
		cmd := a.showToast("Settings saved", false)
		return a, cmd
	}
	return a, nil
}

func (a App) afterAdd(e model.FoodEntry, snap tracker.Snapshot, err error) (App, tea.Cmd) {
	a.snap = snap
	if err != nil {
		a.clampCursor()
		cmd := a.showToast("Not saved: "+err.Error(), true)
		return a, cmd
	}
	a.cursor = len(snap.Entries) - 1
	cmd := a.showToast(e.Name+" added", false)
	return a, cmd
}

func (a App) removeSelected() (tea.Model, tea.Cmd) {
	if len(a.snap.Entries) == 0 {
		return a, nil
	}
	e := a.snap.Entries[a.cursor]
	removed, snap, err := a.tracker.Remove(a.ctx, e.ID)
	a.snap = snap
	a.clampCursor()
	if err != nil {
		cmd := a.showToast("Remove failed: "+err.Error(), true)
		return a, cmd
	}
	if !removed {
		return a, nil
	}
	cmd := a.showToast(e.Name+" removed", false)
	return a, cmd
}

// showToast replaces the current toast and schedules its expiry.
func (a *App) showToast(text string, isErr bool) tea.Cmd {
	a.toastSeq++
	seq := a.toastSeq
	a.toast = components.Toast{Text: text, Error: isErr}
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (a *App) clampCursor() {
	if a.cursor >= len(a.snap.Entries) {
		a.cursor = len(a.snap.Entries) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) formWidth() int {
	w := a.width - 8
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	return w
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.form != nil {
		return a.viewForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  gizi needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ gizi"))
	b.WriteString(subtitleStyle.Render(" · Daily Nutrition"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading " + a.day + "..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewForm() string {
	t := theme.Active

	var title string
	switch a.mode {
	case modeAdd:
		title = "Add Food"
	case modePreset:
		title = "Common Foods"
	case modeClear:
		title = "Clear Day"
	case modeSetup:
		title = "Setup"
	}

	card := components.FocusedCard(title, a.form.View(), a.formWidth()+4)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Esc cancels any open form. Press any key to close."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header
	headerStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true).
		Width(w)
	header := headerStyle.Render(" ◈ gizi · " + a.day)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.help.ShortHelpView(a.keys.ShortHelp()), a.day, a.toast)

	// 3. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Cards
	var sections []string
	sections = append(sections, components.MetricCardRow(a.metrics(), cw))

	if a.isCompactLayout() {
		sections = append(sections,
			components.ContentCard("Daily Targets", components.NutrientBars(a.snap.View.Rows, components.CardInnerWidth(cw)), cw),
			components.ContentCard("Macro Energy", components.MacroSplit(a.snap.View.Shares, components.CardInnerWidth(cw)), cw))
	} else {
		widths := components.LayoutRow(cw, 2)
		sections = append(sections, components.CardRow([]string{
			components.ContentCard("Daily Targets", components.NutrientBars(a.snap.View.Rows, components.CardInnerWidth(widths[0])), widths[0]),
			components.ContentCard("Macro Energy", components.MacroSplit(a.snap.View.Shares, components.CardInnerWidth(widths[1])), widths[1]),
		}))
	}

	used := 0
	for _, s := range sections {
		used += lipgloss.Height(s)
	}
	listRows := contentH - used - 3 // card border + title
	sections = append(sections, components.ContentCard(
		fmt.Sprintf("Foods (%d)", len(a.snap.Entries)),
		a.renderEntries(components.CardInnerWidth(cw), listRows), cw))

	content := strings.Join(sections, "\n")

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) metrics() []components.Metric {
	metrics := make([]components.Metric, 0, len(a.snap.View.Rows))
	for _, r := range a.snap.View.Rows {
		delta := cli.FormatAmount(r.Remaining(), r.Unit()) + " left"
		if r.Percent >= 100 {
			delta = "target reached"
		}
		metrics = append(metrics, components.Metric{
			Label: r.Label(),
			Value: fmt.Sprintf("%s / %s", cli.FormatDecimal(r.Current), cli.FormatAmount(r.Target, r.Unit())),
			Delta: delta,
			Color: components.NutrientColor(r.Nutrient),
		})
	}
	return metrics
}

// renderEntries lists the logged foods, scrolled so the cursor stays visible.
func (a App) renderEntries(width, maxRows int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if len(a.snap.Entries) == 0 {
		return mutedStyle.Render("No foods added yet") + "\n" +
			lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
				Render("Press a to add a food or p for a common one")
	}
	if maxRows < 1 {
		maxRows = 1
	}

	start := 0
	if a.cursor >= maxRows {
		start = a.cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(a.snap.Entries) {
		end = len(a.snap.Entries)
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(width)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Selected).Bold(true).Width(width)

	nameW := width - 46
	if nameW < 12 {
		nameW = 12
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		e := a.snap.Entries[i]
		line := fmt.Sprintf("%-*s %7s %10s   P %-6s C %-6s F %-6s",
			nameW, truncStr(e.Name, nameW),
			cli.FormatGrams(e.PortionGrams),
			cli.FormatKcal(e.Calories),
			cli.FormatGrams(e.Protein),
			cli.FormatGrams(e.Carbs),
			cli.FormatGrams(e.Fat))
		if i == a.cursor {
			lines = append(lines, selStyle.Render("▸ "+line))
		} else {
			lines = append(lines, rowStyle.Render("  "+line))
		}
	}
	return strings.Join(lines, "\n")
}

// ─── Helpers ────────────────────────────────────────────────────

// openCmd restores the day from the tracker's journal.
func openCmd(ctx context.Context, tr *tracker.Tracker, day string) tea.Cmd {
	return func() tea.Msg {
		err := tr.Open(ctx, day)
		return openedMsg{snap: tr.Snapshot(), err: err}
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
