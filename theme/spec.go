// Package theme resolves a declarative theme specification into an
// immutable set of concrete colors, styles and gradients.
//
// Resolution runs in four passes:
//
//  1. palette: every value must be a literal "#rrggbb"
//  2. tokens: a hex literal, a palette name, or another token name
//  3. styles: fg/bg resolved through hex, then tokens, then palette
//  4. gradients: each stop resolved the same way as styles
//
// The first error aborts the whole resolution.
package theme

// Variant says whether a theme targets dark or light backgrounds.
type Variant string

const (
	VariantDark  Variant = "dark"
	VariantLight Variant = "light"
)

// Meta is the identity section of a theme.
type Meta struct {
	Name        string  `toml:"name" yaml:"name" json:"name"`
	Author      string  `toml:"author,omitempty" yaml:"author,omitempty" json:"author,omitempty"`
	Variant     Variant `toml:"variant,omitempty" yaml:"variant,omitempty" json:"variant,omitempty" jsonschema:"enum=dark,enum=light"`
	Version     string  `toml:"version,omitempty" yaml:"version,omitempty" json:"version,omitempty"`
	Description string  `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
}

// Modifiers are the boolean text attributes carried by a style.
type Modifiers struct {
	Bold      bool `toml:"bold,omitempty" yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic    bool `toml:"italic,omitempty" yaml:"italic,omitempty" json:"italic,omitempty"`
	Underline bool `toml:"underline,omitempty" yaml:"underline,omitempty" json:"underline,omitempty"`
	Dim       bool `toml:"dim,omitempty" yaml:"dim,omitempty" json:"dim,omitempty"`
}

// Or returns the union of both modifier sets.
func (m Modifiers) Or(other Modifiers) Modifiers {
	return Modifiers{
		Bold:      m.Bold || other.Bold,
		Italic:    m.Italic || other.Italic,
		Underline: m.Underline || other.Underline,
		Dim:       m.Dim || other.Dim,
	}
}

// StyleDef is a style as authored: optional color references plus modifiers.
type StyleDef struct {
	FG        *string `toml:"fg,omitempty" yaml:"fg,omitempty" json:"fg,omitempty"`
	BG        *string `toml:"bg,omitempty" yaml:"bg,omitempty" json:"bg,omitempty"`
	Modifiers `yaml:",inline"`
}

// Spec is the structured, unresolved form of a theme, as produced by a
// decoder. Meta is nil when the source had no meta section.
type Spec struct {
	Meta      *Meta               `toml:"meta" yaml:"meta" json:"meta"`
	Palette   map[string]string   `toml:"palette,omitempty" yaml:"palette,omitempty" json:"palette,omitempty"`
	Tokens    map[string]string   `toml:"tokens,omitempty" yaml:"tokens,omitempty" json:"tokens,omitempty"`
	Styles    map[string]StyleDef `toml:"styles,omitempty" yaml:"styles,omitempty" json:"styles,omitempty"`
	Gradients map[string][]string `toml:"gradients,omitempty" yaml:"gradients,omitempty" json:"gradients,omitempty"`
}

// Ref returns a pointer to s, for filling StyleDef.FG and StyleDef.BG.
func Ref(s string) *string {
	return &s
}
