package server

import (
	"fmt"
	"strings"

	"github.com/kastheco/lacquer/theme"
)

// GenerateCSS renders t as CSS custom properties on :root plus one class per
// style. Token names map to variables with dots replaced by dashes, so
// "text.primary" becomes --text-primary.
func GenerateCSS(t *theme.Theme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/* %s */\n:root {\n", t.Name())
	fmt.Fprintf(&b, "  color-scheme: %s;\n", t.Meta().Variant)

	for _, name := range t.PaletteNames() {
		c, _ := t.PaletteColor(name)
		fmt.Fprintf(&b, "  --palette-%s: %s;\n", cssIdent(name), c.Hex())
	}
	for _, name := range t.TokenNames() {
		fmt.Fprintf(&b, "  --%s: %s;\n", cssIdent(name), t.Color(name).Hex())
	}
	for _, name := range t.GradientNames() {
		g, _ := t.GetGradient(name)
		stops := make([]string, 0, g.Len())
		for _, c := range g.Stops() {
			stops = append(stops, c.Hex())
		}
		fmt.Fprintf(&b, "  --gradient-%s: linear-gradient(90deg, %s);\n", cssIdent(name), strings.Join(stops, ", "))
	}
	b.WriteString("}\n")

	for _, name := range t.StyleNames() {
		s := t.Style(name)
		fmt.Fprintf(&b, "\n.style-%s {\n", cssIdent(name))
		if s.FG != nil {
			fmt.Fprintf(&b, "  color: %s;\n", s.FG.Hex())
		}
		if s.BG != nil {
			fmt.Fprintf(&b, "  background-color: %s;\n", s.BG.Hex())
		}
		if s.Bold {
			b.WriteString("  font-weight: bold;\n")
		}
		if s.Italic {
			b.WriteString("  font-style: italic;\n")
		}
		if s.Underline {
			b.WriteString("  text-decoration: underline;\n")
		}
		if s.Dim {
			b.WriteString("  opacity: 0.6;\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}

// cssIdent lowercases name and replaces anything outside [a-z0-9_-] with '-'.
func cssIdent(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, name)
}
