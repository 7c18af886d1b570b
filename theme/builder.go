package theme

import (
	"maps"

	"github.com/kastheco/lacquer/color"
	"github.com/kastheco/lacquer/gradient"
)

// Builder constructs a Theme programmatically, without a Spec. Every method
// returns a new Builder and leaves the receiver unchanged, so partially
// built values can be branched safely:
//
//	base := theme.NewBuilder("Base").Token("bg.base", bg)
//	dark := base.Variant(theme.VariantDark).Build()
//	light := base.Variant(theme.VariantLight).Token("bg.base", paper).Build()
type Builder struct {
	meta      Meta
	palette   map[string]color.Color
	tokens    map[string]color.Color
	styles    map[string]Style
	gradients map[string]gradient.Gradient
}

// NewBuilder starts a dark theme with the given name.
func NewBuilder(name string) Builder {
	return Builder{meta: Meta{Name: name, Variant: VariantDark}}
}

func (b Builder) Author(author string) Builder {
	b.meta.Author = author
	return b
}

func (b Builder) Variant(v Variant) Builder {
	b.meta.Variant = v
	return b
}

func (b Builder) Version(version string) Builder {
	b.meta.Version = version
	return b
}

func (b Builder) Description(desc string) Builder {
	b.meta.Description = desc
	return b
}

// Palette adds a palette color.
func (b Builder) Palette(name string, c color.Color) Builder {
	b.palette = with(b.palette, name, c)
	return b
}

// Token adds a semantic token.
func (b Builder) Token(name string, c color.Color) Builder {
	b.tokens = with(b.tokens, name, c)
	return b
}

// Style adds a composed style.
func (b Builder) Style(name string, s Style) Builder {
	b.styles = with(b.styles, name, s.clone())
	return b
}

// Gradient adds a gradient.
func (b Builder) Gradient(name string, g gradient.Gradient) Builder {
	b.gradients = with(b.gradients, name, g)
	return b
}

// Build produces the Theme. The builder's maps are never written after
// creation, so the theme can share them.
func (b Builder) Build() *Theme {
	return FromResolved(b.meta, &Resolved{
		palette:   orEmpty(b.palette),
		tokens:    orEmpty(b.tokens),
		styles:    orEmpty(b.styles),
		gradients: orEmpty(b.gradients),
	})
}

// with returns a copy of m with k set to v.
func with[V any](m map[string]V, k string, v V) map[string]V {
	out := make(map[string]V, len(m)+1)
	maps.Copy(out, m)
	out[k] = v
	return out
}

func orEmpty[V any](m map[string]V) map[string]V {
	if m == nil {
		return map[string]V{}
	}
	return m
}
