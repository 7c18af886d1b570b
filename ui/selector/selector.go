// Package selector is an interactive theme picker with a live preview.
package selector

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kastheco/lacquer/catalog"
	"github.com/kastheco/lacquer/keys"
	"github.com/kastheco/lacquer/names"
	"github.com/kastheco/lacquer/theme"
	"github.com/kastheco/lacquer/ui"
)

const (
	barWidth     = 32
	tickInterval = 50 * time.Millisecond
	listWidth    = 28
)

// LoadFunc resolves a theme by catalog id.
type LoadFunc func(id string) (*theme.Theme, error)

// tickMsg advances the reveal animation. gen drops ticks from an animation
// that was restarted since the tick was scheduled.
type tickMsg struct{ gen int }

// Model is the bubbletea model for the selector.
type Model struct {
	items    []catalog.Info
	filter   string
	filtered []int // indices into items matching filter
	selected int   // position in filtered
	load     LoadFunc
	cache    map[string]*theme.Theme

	preview  *theme.Theme
	err      error
	active   *theme.Provider // theme used for the selector's own chrome
	original *theme.Theme    // active theme when the selector opened
	reveal   *ui.SpringAnim
	gen      int

	width  int
	height int

	chosen string
	done   bool
}

// New creates a selector over items, listed dark themes first and then by
// display name. initial preselects an id when present.
func New(items []catalog.Info, load LoadFunc, initial string) *Model {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b catalog.Info) int {
		return cmp.Or(
			cmp.Compare(variantRank(a.Variant), variantRank(b.Variant)),
			cmp.Compare(a.DisplayName, b.DisplayName),
		)
	})

	m := &Model{
		items:  sorted,
		load:   load,
		cache:  make(map[string]*theme.Theme),
		active: theme.NewProvider(nil),
		reveal: ui.NewSpringAnim(barWidth),
	}
	m.recomputeFilter()
	m.original = m.active.Current()
	for i, idx := range m.filtered {
		if m.items[idx].ID == initial {
			m.selected = i
			m.loadPreview()
			if m.err == nil {
				m.original = m.preview
			}
			return m
		}
	}
	m.loadPreview()
	return m
}

func variantRank(v theme.Variant) int {
	if v == theme.VariantLight {
		return 1
	}
	return 0
}

func (m *Model) Init() tea.Cmd {
	if len(m.filtered) == 0 {
		return nil
	}
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		if msg.gen != m.gen || !m.reveal.Tick() {
			return m, nil
		}
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, m.editFilter(msg)
	}
	switch name {
	case keys.KeyUp:
		return m, m.move(-1)
	case keys.KeyDown:
		return m, m.move(1)
	case keys.KeyEnter:
		if len(m.filtered) == 0 {
			return m, nil
		}
		m.chosen = m.Selected()
		m.done = true
		return m, tea.Quit
	case keys.KeyQuit:
		m.active.Swap(m.original)
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// editFilter applies typed characters and backspace to the filter.
func (m *Model) editFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyRunes:
		m.filter += string(msg.Runes)
	case tea.KeySpace:
		m.filter += " "
	case tea.KeyBackspace:
		if m.filter == "" {
			return nil
		}
		r := []rune(m.filter)
		m.filter = string(r[:len(r)-1])
	default:
		return nil
	}
	m.recomputeFilter()
	m.loadPreview()
	return m.tick()
}

// recomputeFilter matches the filter case-insensitively against display
// names and authors, and moves the cursor to the first match.
func (m *Model) recomputeFilter() {
	query := strings.ToLower(m.filter)
	m.filtered = m.filtered[:0]
	for i, it := range m.items {
		if query == "" ||
			strings.Contains(strings.ToLower(it.DisplayName), query) ||
			strings.Contains(strings.ToLower(it.Author), query) {
			m.filtered = append(m.filtered, i)
		}
	}
	m.selected = 0
}

func (m *Model) move(delta int) tea.Cmd {
	next := m.selected + delta
	if next < 0 || next >= len(m.filtered) {
		return nil
	}
	m.selected = next
	m.loadPreview()
	return m.tick()
}

func (m *Model) loadPreview() {
	m.gen++
	m.reveal.Reset(barWidth)
	m.preview, m.err = nil, nil
	if len(m.filtered) == 0 {
		return
	}

	id := m.Selected()
	t, ok := m.cache[id]
	if !ok {
		var err error
		if t, err = m.load(id); err != nil {
			m.err = err
			return
		}
		m.cache[id] = t
	}
	m.preview = t
	m.active.Swap(t)
}

// Selected is the id under the cursor, or "" when nothing matches the
// filter.
func (m *Model) Selected() string {
	if len(m.filtered) == 0 {
		return ""
	}
	return m.items[m.filtered[m.selected]].ID
}

// Filter is the text typed so far.
func (m *Model) Filter() string {
	return m.filter
}

// Active is the theme currently previewed as the selector's chrome. After a
// cancel it is the theme that was active when the selector opened.
func (m *Model) Active() *theme.Theme {
	return m.active.Current()
}

// Chosen returns the id confirmed with enter. ok is false when the selector
// was cancelled or is still running.
func (m *Model) Chosen() (string, bool) {
	return m.chosen, m.chosen != ""
}

// Done reports whether the selector has quit.
func (m *Model) Done() bool {
	return m.done
}

func (m *Model) View() string {
	if len(m.items) == 0 {
		return "No themes found.\n"
	}
	t := m.chrome()

	title := lipgloss.NewStyle().Bold(true).Foreground(ui.Color(t.Color(names.AccentPrimary))).MarginBottom(1)
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(t), "  ", m.renderPreview())
	out := lipgloss.JoinVertical(lipgloss.Left,
		title.Render("Select a theme"),
		body,
		m.renderHelp(t),
	)
	return ui.FillBackground(out, m.height)
}

// chrome is the theme used to draw the selector itself: the last theme that
// loaded successfully, or the original theme after a cancel.
func (m *Model) chrome() *theme.Theme {
	return m.active.Current()
}

func (m *Model) renderList(t *theme.Theme) string {
	item := lipgloss.NewStyle().Padding(0, 1).Width(listWidth).Foreground(ui.Color(t.Color(names.TextSecondary)))
	selected := ui.Style(t.Style(names.StyleSelected)).Padding(0, 1).Width(listWidth)
	header := ui.TokenStyle(t, names.TextMuted).Italic(true).Padding(0, 1)

	var lines []string
	lines = append(lines, m.renderFilter(t))

	var lastVariant theme.Variant
	for i, idx := range m.filtered {
		it := m.items[idx]
		if v := variantOf(it); i == 0 || v != lastVariant {
			lines = append(lines, header.Render(sectionTitle(v)))
			lastVariant = v
		}

		label := it.DisplayName
		if !it.Builtin {
			label += " *"
		}
		if it.Variant == theme.VariantLight {
			label += " ☀"
		}
		if i == m.selected {
			lines = append(lines, selected.Render("▸ "+label))
		} else {
			lines = append(lines, item.Render("  "+label))
		}
	}
	if len(m.filtered) == 0 {
		lines = append(lines, item.Render("  no match"))
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.Color(t.Color(names.BorderUnfocused)))
	return border.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFilter(t *theme.Theme) string {
	cursor := "│"
	if m.filter != "" {
		cursor = "█"
	}
	field := lipgloss.NewStyle().
		Width(listWidth).
		Padding(0, 1).
		Background(ui.Color(ui.Raise(t, names.BgPanel, 0.15)))
	return field.Render(
		ui.TokenStyle(t, names.TextMuted).Render("Filter: ") +
			ui.TokenStyle(t, names.AccentSecondary).Render(m.filter) +
			ui.TokenStyle(t, names.AccentPrimary).Render(cursor),
	)
}

func variantOf(it catalog.Info) theme.Variant {
	if it.Variant == theme.VariantLight {
		return theme.VariantLight
	}
	return theme.VariantDark
}

func sectionTitle(v theme.Variant) string {
	if v == theme.VariantLight {
		return "Light themes"
	}
	return "Dark themes"
}

func (m *Model) renderPreview() string {
	if m.err != nil {
		return fmt.Sprintf("cannot load %s:\n%v", m.Selected(), m.err)
	}
	t := m.preview
	if t == nil {
		return fmt.Sprintf("no theme matches %q", m.filter)
	}
	var b strings.Builder

	heading := t.Name() + " (" + string(t.Meta().Variant) + ")"
	if g, ok := t.GetGradient(names.GradientPrimary); ok {
		b.WriteString(ui.GradientText(heading, g))
	} else {
		b.WriteString(ui.TokenStyle(t, names.TextPrimary).Bold(true).Render(heading))
	}
	b.WriteString("\n\n")

	var swatches []string
	for _, tok := range names.Tokens() {
		if c, ok := t.TryColor(tok); ok {
			swatches = append(swatches, ui.Swatch(tok, c))
		}
	}
	b.WriteString(wrap(swatches, 3))
	b.WriteString("\n\n")

	for _, name := range t.StyleNames() {
		b.WriteString(ui.Style(t.Style(name)).Render(name))
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	for _, name := range t.GradientNames() {
		g, _ := t.GetGradient(name)
		b.WriteString(ui.GradientBar(m.reveal.Visible(), g))
		b.WriteString(strings.Repeat(" ", barWidth-m.reveal.Visible()+1))
		b.WriteString(ui.TokenStyle(t, names.TextMuted).Render(name))
		b.WriteString("\n")
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.Color(t.Color(names.BorderFocused))).
		Padding(0, 1)
	return border.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) renderHelp(t *theme.Theme) string {
	parts := make([]string, 0, len(keys.HelpOrder))
	for _, name := range keys.HelpOrder {
		h := keys.GlobalkeyBindings[name].Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return ui.TokenStyle(t, names.TextMuted).MarginTop(1).Render(strings.Join(parts, " • "))
}

func wrap(cells []string, perRow int) string {
	var rows []string
	for i := 0; i < len(cells); i += perRow {
		end := min(i+perRow, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}
	return strings.Join(rows, "\n")
}

// Run shows the selector full screen and returns the chosen id.
func Run(ctx context.Context, items []catalog.Info, load LoadFunc, initial string) (string, bool, error) {
	m := New(items, load, initial)
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return "", false, fmt.Errorf("run selector: %w", err)
	}
	id, ok := final.(*Model).Chosen()
	return id, ok, nil
}
