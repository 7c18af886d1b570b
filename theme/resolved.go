package theme

import (
	"maps"

	"github.com/kastheco/lacquer/color"
	"github.com/kastheco/lacquer/gradient"
)

// Resolved is the output of the resolution pipeline. Every value is concrete
// and the maps are never written after construction, so a *Resolved can be
// shared freely between goroutines.
type Resolved struct {
	palette   map[string]color.Color
	tokens    map[string]color.Color
	styles    map[string]Style
	gradients map[string]gradient.Gradient
}

// Color looks a name up in tokens, then palette, and returns color.Fallback
// when neither has it.
func (r *Resolved) Color(name string) color.Color {
	if c, ok := r.TryColor(name); ok {
		return c
	}
	return color.Fallback
}

// TryColor is the strict form of Color.
func (r *Resolved) TryColor(name string) (color.Color, bool) {
	if c, ok := r.tokens[name]; ok {
		return c, true
	}
	c, ok := r.palette[name]
	return c, ok
}

// HasToken reports whether name exists as a token or palette entry.
func (r *Resolved) HasToken(name string) bool {
	_, ok := r.TryColor(name)
	return ok
}

// PaletteColor looks name up in the palette only, ignoring any token that
// shadows it.
func (r *Resolved) PaletteColor(name string) (color.Color, bool) {
	c, ok := r.palette[name]
	return c, ok
}

func (r *Resolved) TokenNames() []string   { return sortedKeys(r.tokens) }
func (r *Resolved) PaletteNames() []string { return sortedKeys(r.palette) }

// Style returns the named style, or an empty style when it does not exist.
func (r *Resolved) Style(name string) Style {
	s, _ := r.TryStyle(name)
	return s
}

// TryStyle is the strict form of Style.
func (r *Resolved) TryStyle(name string) (Style, bool) {
	s, ok := r.styles[name]
	if !ok {
		return Style{}, false
	}
	return s.clone(), true
}

func (r *Resolved) HasStyle(name string) bool {
	_, ok := r.styles[name]
	return ok
}

func (r *Resolved) StyleNames() []string { return sortedKeys(r.styles) }

// Gradient samples the named gradient at t, or returns color.Fallback when
// the gradient does not exist.
func (r *Resolved) Gradient(name string, t float64) color.Color {
	if c, ok := r.TryGradient(name, t); ok {
		return c
	}
	return color.Fallback
}

// TryGradient is the strict form of Gradient.
func (r *Resolved) TryGradient(name string, t float64) (color.Color, bool) {
	g, ok := r.gradients[name]
	if !ok {
		return color.Color{}, false
	}
	return g.At(t), true
}

// GetGradient returns the named gradient for manual sampling.
func (r *Resolved) GetGradient(name string) (gradient.Gradient, bool) {
	g, ok := r.gradients[name]
	return g, ok
}

func (r *Resolved) HasGradient(name string) bool {
	_, ok := r.gradients[name]
	return ok
}

func (r *Resolved) GradientNames() []string { return sortedKeys(r.gradients) }

// Equal reports whether both values hold identical maps.
func (r *Resolved) Equal(other *Resolved) bool {
	if r == nil || other == nil {
		return r == other
	}
	return maps.Equal(r.palette, other.palette) &&
		maps.Equal(r.tokens, other.tokens) &&
		maps.EqualFunc(r.styles, other.styles, Style.Equal) &&
		maps.EqualFunc(r.gradients, other.gradients, gradient.Gradient.Equal)
}

// Snapshot is a plain, serializable copy of a resolved theme.
type Snapshot struct {
	Meta      Meta                     `toml:"meta" yaml:"meta" json:"meta"`
	Palette   map[string]color.Color   `toml:"palette" yaml:"palette" json:"palette"`
	Tokens    map[string]color.Color   `toml:"tokens" yaml:"tokens" json:"tokens"`
	Styles    map[string]Style         `toml:"styles" yaml:"styles" json:"styles"`
	Gradients map[string][]color.Color `toml:"gradients" yaml:"gradients" json:"gradients"`
}

// Snapshot copies every map. Mutating the result does not affect r.
func (r *Resolved) Snapshot() Snapshot {
	snap := Snapshot{
		Palette:   maps.Clone(r.palette),
		Tokens:    maps.Clone(r.tokens),
		Styles:    make(map[string]Style, len(r.styles)),
		Gradients: make(map[string][]color.Color, len(r.gradients)),
	}
	if snap.Palette == nil {
		snap.Palette = map[string]color.Color{}
	}
	if snap.Tokens == nil {
		snap.Tokens = map[string]color.Color{}
	}
	for name, s := range r.styles {
		snap.Styles[name] = s.clone()
	}
	for name, g := range r.gradients {
		snap.Gradients[name] = g.Stops()
	}
	return snap
}
