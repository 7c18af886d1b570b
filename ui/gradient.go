package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kastheco/lacquer/gradient"
)

const barGlyph = "█"

// GradientText colors each rune of text with an evenly spaced sample of g.
// Whitespace is kept but not colored.
func GradientText(text string, g gradient.Gradient) string {
	runes := []rune(text)
	colors := g.Generate(len(runes))

	var b strings.Builder
	for i, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' {
			b.WriteRune(r)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(Color(colors[i])).Render(string(r)))
	}
	return b.String()
}

// GradientBar draws a width-cell horizontal bar sampled from g.
func GradientBar(width int, g gradient.Gradient) string {
	var b strings.Builder
	for _, c := range g.Generate(width) {
		b.WriteString(lipgloss.NewStyle().Foreground(Color(c)).Render(barGlyph))
	}
	return b.String()
}
