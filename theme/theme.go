package theme

import (
	"maps"
	"strings"

	"github.com/kastheco/lacquer/color"
)

// Theme is a resolved theme together with its identity. All read access goes
// through the embedded *Resolved.
type Theme struct {
	meta Meta
	*Resolved
}

// Load validates the meta section and resolves spec into a Theme.
func Load(spec Spec) (*Theme, error) {
	if spec.Meta == nil {
		return nil, &MissingSectionError{Section: "meta"}
	}
	if strings.TrimSpace(spec.Meta.Name) == "" {
		return nil, &MissingSectionError{Section: "meta.name"}
	}

	resolved, err := Resolve(spec)
	if err != nil {
		return nil, err
	}
	return FromResolved(*spec.Meta, resolved), nil
}

// FromResolved pairs an already resolved value with its meta. A nil resolved
// yields an empty theme.
func FromResolved(meta Meta, resolved *Resolved) *Theme {
	if meta.Variant == "" {
		meta.Variant = VariantDark
	}
	if resolved == nil {
		resolved = &Resolved{}
	}
	return &Theme{meta: meta, Resolved: resolved}
}

// Empty returns a theme with no entries; every lookup falls back.
func Empty(name string) *Theme {
	return FromResolved(Meta{Name: name}, nil)
}

func (t *Theme) Meta() Meta    { return t.meta }
func (t *Theme) Name() string  { return t.meta.Name }
func (t *Theme) IsDark() bool  { return t.meta.Variant != VariantLight }
func (t *Theme) IsLight() bool { return t.meta.Variant == VariantLight }

// WithToken returns a copy of t with one extra (or replaced) token. t itself
// is left untouched.
func (t *Theme) WithToken(name string, c color.Color) *Theme {
	tokens := maps.Clone(t.tokens)
	if tokens == nil {
		tokens = make(map[string]color.Color, 1)
	}
	tokens[name] = c

	return &Theme{
		meta: t.meta,
		Resolved: &Resolved{
			palette:   t.palette,
			tokens:    tokens,
			styles:    t.styles,
			gradients: t.gradients,
		},
	}
}

// Snapshot includes the theme's meta alongside the resolved maps.
func (t *Theme) Snapshot() Snapshot {
	snap := t.Resolved.Snapshot()
	snap.Meta = t.meta
	return snap
}
