// Package ui renders resolved themes with lipgloss.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/kastheco/lacquer/color"
	"github.com/kastheco/lacquer/theme"
)

// ColorMode selects how much color the renderer emits.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// SetColorMode overrides lipgloss' detected color profile. ColorAuto keeps
// whatever the terminal reports.
func SetColorMode(mode ColorMode) error {
	switch mode {
	case ColorAuto, "":
	case ColorAlways:
		ForceTrueColor()
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
	return nil
}

// ForceTrueColor makes lipgloss emit 24-bit escapes regardless of the
// terminal. Tests use it to get stable output.
func ForceTrueColor() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// Color converts a resolved color to a lipgloss color.
func Color(c color.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Style converts a resolved style to a lipgloss style. Dim maps to Faint.
func Style(s theme.Style) lipgloss.Style {
	out := lipgloss.NewStyle()
	if s.FG != nil {
		out = out.Foreground(Color(*s.FG))
	}
	if s.BG != nil {
		out = out.Background(Color(*s.BG))
	}
	if s.Bold {
		out = out.Bold(true)
	}
	if s.Italic {
		out = out.Italic(true)
	}
	if s.Underline {
		out = out.Underline(true)
	}
	if s.Dim {
		out = out.Faint(true)
	}
	return out
}

// TokenStyle is a foreground-only style for a token of t.
func TokenStyle(t *theme.Theme, token string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Color(t.Color(token)))
}

// Raise shifts a token of t away from the theme's background: lighter on dark
// themes, darker on light ones. amount is in 0..1.
func Raise(t *theme.Theme, token string, amount float64) color.Color {
	c := t.Color(token)
	if t.IsLight() {
		return c.Darker(amount)
	}
	return c.Lighter(amount)
}
