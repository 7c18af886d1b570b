package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kastheco/lacquer/color"
)

var swatchStyle = lipgloss.NewStyle().Padding(0, 1)

// Swatch renders label on a block of c, with a foreground picked for contrast.
func Swatch(label string, c color.Color) string {
	return swatchStyle.
		Background(Color(c)).
		Foreground(Color(c.Contrast())).
		Render(label)
}
