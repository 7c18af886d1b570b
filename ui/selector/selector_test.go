package selector

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/lacquer/builtins"
	"github.com/kastheco/lacquer/catalog"
	"github.com/kastheco/lacquer/theme"
)

func testItems() []catalog.Info {
	return []catalog.Info{
		{ID: "field-log", DisplayName: "Field Log", Builtin: true},
		{ID: "paper", DisplayName: "Paper", Builtin: true},
		{ID: "rose-pine-moon", DisplayName: "Rosé Pine Moon", Builtin: true},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew_PreselectsInitial(t *testing.T) {
	m := New(testItems(), builtins.Load, "paper")
	assert.Equal(t, "paper", m.Selected())
	require.NotNil(t, m.preview)
	assert.Equal(t, "Paper", m.preview.Name())

	m = New(testItems(), builtins.Load, "unknown")
	assert.Equal(t, "field-log", m.Selected())
}

func TestNavigation(t *testing.T) {
	m := New(testItems(), builtins.Load, "")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "paper", m.Selected())
	m.Update(runes("j"))
	assert.Equal(t, "rose-pine-moon", m.Selected())
	m.Update(runes("j")) // stays on the last item
	assert.Equal(t, "rose-pine-moon", m.Selected())

	m.Update(runes("k"))
	assert.Equal(t, "paper", m.Selected())
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "field-log", m.Selected())
}

func TestEnterChooses(t *testing.T) {
	m := New(testItems(), builtins.Load, "")
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(t, cmd))
	assert.True(t, m.Done())

	id, ok := m.Chosen()
	assert.True(t, ok)
	assert.Equal(t, "paper", id)
}

func TestCancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := New(testItems(), builtins.Load, "")
			_, cmd := m.Update(msg)
			assert.True(t, isQuit(t, cmd))
			_, ok := m.Chosen()
			assert.False(t, ok)
		})
	}
}

func TestMoveRestartsReveal(t *testing.T) {
	m := New(testItems(), builtins.Load, "")
	gen := m.gen

	for i := 0; i < 10; i++ {
		m.Update(tickMsg{gen: m.gen})
	}
	assert.Positive(t, m.reveal.Visible())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Greater(t, m.gen, gen)
	assert.Equal(t, 0, m.reveal.Visible())

	// A tick from the previous animation is ignored.
	_, cmd := m.Update(tickMsg{gen: gen})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.reveal.Visible())
}

func TestPreviewIsCached(t *testing.T) {
	calls := 0
	load := func(id string) (*theme.Theme, error) {
		calls++
		return builtins.Load(id)
	}
	m := New(testItems(), load, "")
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, calls)
}

func TestView(t *testing.T) {
	m := New(testItems(), builtins.Load, "rose-pine-moon")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	view := m.View()

	assert.Contains(t, view, "Select a theme")
	assert.Contains(t, view, "Paper")
	assert.Contains(t, view, "text.primary")
	assert.Contains(t, view, "keyword")
	assert.Contains(t, view, "aurora")
	assert.Contains(t, view, "enter select")
}

func TestView_LoadError(t *testing.T) {
	load := func(id string) (*theme.Theme, error) { return nil, errors.New("boom") }
	m := New(testItems(), load, "")
	assert.Contains(t, m.View(), "boom")
}

func TestView_Empty(t *testing.T) {
	m := New(nil, builtins.Load, "")
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "No themes found")
	_, ok := m.Chosen()
	assert.False(t, ok)
}

func TestChromeKeepsLastGoodTheme(t *testing.T) {
	load := func(id string) (*theme.Theme, error) {
		if id == "paper" {
			return nil, errors.New("boom")
		}
		return builtins.Load(id)
	}
	m := New(testItems(), load, "")
	assert.Equal(t, "Field Log", m.chrome().Name())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Error(t, m.err)
	assert.Equal(t, "Field Log", m.chrome().Name())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "Rosé Pine Moon", m.chrome().Name())
}

func TestNew_DarkThemesFirst(t *testing.T) {
	items := []catalog.Info{
		{ID: "paper", DisplayName: "Paper", Variant: theme.VariantLight},
		{ID: "zed", DisplayName: "Zed", Variant: theme.VariantDark},
		{ID: "chalk", DisplayName: "Chalk", Variant: theme.VariantLight},
		{ID: "abyss", DisplayName: "Abyss"},
	}
	m := New(items, builtins.Load, "")

	var order []string
	for _, idx := range m.filtered {
		order = append(order, m.items[idx].ID)
	}
	assert.Equal(t, []string{"abyss", "zed", "chalk", "paper"}, order)
	assert.Equal(t, "paper", items[0].ID, "caller's slice is not reordered")
}

func TestFilter(t *testing.T) {
	items := append(testItems(), catalog.Info{ID: "mine", DisplayName: "Mine", Author: "Rosa Quill"})
	m := New(items, builtins.Load, "")
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	m.Update(runes("P"))
	assert.Equal(t, "P", m.Filter())
	assert.Equal(t, "paper", m.Selected(), "cursor resets to the first match")
	assert.Len(t, m.filtered, 2)

	m.Update(runes("a"))
	assert.Len(t, m.filtered, 1)
	assert.Equal(t, "paper", m.Selected())
	assert.Equal(t, "Paper", m.preview.Name())

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, m.Filter())
	assert.Len(t, m.filtered, len(items))
	assert.Equal(t, "field-log", m.Selected())

	// Backspace on an empty filter does nothing.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Nil(t, cmd)

	// Authors match too, case-insensitively.
	m.Update(runes("quill"))
	require.Len(t, m.filtered, 1)
	assert.Equal(t, "mine", m.Selected())
}

func TestFilter_NoMatch(t *testing.T) {
	m := New(testItems(), builtins.Load, "")
	m.Update(runes("zzz"))

	assert.Empty(t, m.Selected())
	assert.Nil(t, m.preview)
	assert.Contains(t, m.View(), `no theme matches "zzz"`)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.Done())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
}

func TestCancelRestoresOriginalTheme(t *testing.T) {
	m := New(testItems(), builtins.Load, "paper")
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "Rosé Pine Moon", m.Active().Name())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "Paper", m.Active().Name())
}

func TestView_ShowsFilterAndSections(t *testing.T) {
	items := []catalog.Info{
		{ID: "rose-pine-moon", DisplayName: "Rosé Pine Moon", Variant: theme.VariantDark, Builtin: true},
		{ID: "paper", DisplayName: "Paper", Variant: theme.VariantLight, Builtin: true},
	}
	m := New(items, builtins.Load, "")
	m.Update(runes("e"))
	view := m.View()

	assert.Contains(t, view, "Filter: ")
	assert.Contains(t, view, "Dark themes")
	assert.Contains(t, view, "Light themes")
	assert.Contains(t, view, "Paper ☀")
}
