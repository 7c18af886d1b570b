package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/lacquer/color"
	"github.com/kastheco/lacquer/gradient"
	"github.com/kastheco/lacquer/theme"
)

func TestMain(m *testing.M) {
	ForceTrueColor()
	os.Exit(m.Run())
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		if r == '\x1b' {
			inEsc = true
		}
		if !inEsc {
			b.WriteRune(r)
		}
		if inEsc && r == 'm' {
			inEsc = false
		}
	}
	return b.String()
}

func TestColor(t *testing.T) {
	assert.Equal(t, "#ff8000", string(Color(color.New(255, 128, 0))))
}

func TestStyle_MapsAttributes(t *testing.T) {
	red := color.New(255, 0, 0)
	s := Style(theme.FGStyle(red).WithBG(color.New(0, 0, 0)).Bolded().Dimmed())

	assert.Equal(t, lipgloss.Color("#ff0000"), s.GetForeground())
	assert.Equal(t, lipgloss.Color("#000000"), s.GetBackground())
	assert.True(t, s.GetBold())
	assert.True(t, s.GetFaint())
	assert.False(t, s.GetItalic())
	assert.False(t, s.GetUnderline())
}

func TestStyle_EmptyRendersPlain(t *testing.T) {
	assert.Equal(t, "plain", Style(theme.NewStyle()).Render("plain"))
}

func TestTokenStyle_FallsBack(t *testing.T) {
	s := TokenStyle(theme.Empty("x"), "missing")
	assert.Equal(t, lipgloss.Color(color.Fallback.Hex()), s.GetForeground())
}

func TestGradientText(t *testing.T) {
	g := gradient.MustNew(color.New(255, 0, 0), color.New(0, 0, 255))
	out := GradientText("ab c", g)

	assert.Equal(t, "ab c", stripANSI(out))
	assert.Contains(t, out, "38;2;255;0;0")
	assert.Contains(t, out, "38;2;0;0;255")
	assert.Equal(t, "", GradientText("", g))
}

func TestGradientBar(t *testing.T) {
	g := gradient.MustNew(color.New(0, 0, 0), color.New(255, 255, 255))
	bar := GradientBar(5, g)
	assert.Equal(t, strings.Repeat(barGlyph, 5), stripANSI(bar))
	assert.Equal(t, "", GradientBar(0, g))
}

func TestSwatch_UsesContrast(t *testing.T) {
	out := Swatch("bg", color.New(0, 0, 0))
	assert.Contains(t, stripANSI(out), "bg")
	assert.Contains(t, out, "48;2;0;0;0")
}

func TestSetColorMode(t *testing.T) {
	defer ForceTrueColor()

	require.NoError(t, SetColorMode(ColorNever))
	assert.Equal(t, "x", Style(theme.FGStyle(color.New(1, 2, 3))).Render("x"))

	require.NoError(t, SetColorMode(ColorAlways))
	assert.NotEqual(t, "x", Style(theme.FGStyle(color.New(1, 2, 3))).Render("x"))

	assert.NoError(t, SetColorMode(ColorAuto))
	assert.Error(t, SetColorMode("sometimes"))
}

func TestRaise(t *testing.T) {
	bg := color.New(100, 100, 100)
	dark := theme.NewBuilder("Dark").Token("bg.panel", bg).Build()
	light := theme.NewBuilder("Light").Variant(theme.VariantLight).Token("bg.panel", bg).Build()

	sum := func(c color.Color) int { return int(c.R) + int(c.G) + int(c.B) }
	assert.Greater(t, sum(Raise(dark, "bg.panel", 0.2)), sum(bg))
	assert.Less(t, sum(Raise(light, "bg.panel", 0.2)), sum(bg))
}
