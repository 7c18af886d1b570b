package theme

import "github.com/kastheco/lacquer/color"

// Style is a resolved style: optional foreground and background colors plus
// text modifiers. A nil FG or BG means "leave unset".
type Style struct {
	FG        *color.Color `toml:"fg,omitempty" yaml:"fg,omitempty" json:"fg,omitempty"`
	BG        *color.Color `toml:"bg,omitempty" yaml:"bg,omitempty" json:"bg,omitempty"`
	Modifiers `yaml:",inline"`
}

// NewStyle returns an empty style.
func NewStyle() Style {
	return Style{}
}

// FGStyle returns a style with only a foreground color.
func FGStyle(c color.Color) Style {
	return Style{FG: &c}
}

// BGStyle returns a style with only a background color.
func BGStyle(c color.Color) Style {
	return Style{BG: &c}
}

// WithFG returns a copy with the foreground set.
func (s Style) WithFG(c color.Color) Style {
	s = s.clone()
	s.FG = &c
	return s
}

// WithBG returns a copy with the background set.
func (s Style) WithBG(c color.Color) Style {
	s = s.clone()
	s.BG = &c
	return s
}

func (s Style) Bolded() Style {
	s = s.clone()
	s.Bold = true
	return s
}

func (s Style) Italicized() Style {
	s = s.clone()
	s.Italic = true
	return s
}

func (s Style) Underlined() Style {
	s = s.clone()
	s.Underline = true
	return s
}

func (s Style) Dimmed() Style {
	s = s.clone()
	s.Dim = true
	return s
}

// Merge layers other on top of s: other's colors win where set and
// modifiers are OR'd together.
func (s Style) Merge(other Style) Style {
	out := s.clone()
	if other.FG != nil {
		fg := *other.FG
		out.FG = &fg
	}
	if other.BG != nil {
		bg := *other.BG
		out.BG = &bg
	}
	out.Modifiers = s.Modifiers.Or(other.Modifiers)
	return out
}

// Equal compares colors by value rather than by pointer.
func (s Style) Equal(other Style) bool {
	return eqColorPtr(s.FG, other.FG) && eqColorPtr(s.BG, other.BG) && s.Modifiers == other.Modifiers
}

// clone detaches the color pointers so the copy shares no memory with s.
func (s Style) clone() Style {
	if s.FG != nil {
		fg := *s.FG
		s.FG = &fg
	}
	if s.BG != nil {
		bg := *s.BG
		s.BG = &bg
	}
	return s
}

func eqColorPtr(a, b *color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
