package theme

import (
	"fmt"

	"github.com/kastheco/lacquer/color"
	"github.com/kastheco/lacquer/gradient"
)

// Resolve runs the full pipeline over spec. It returns the first error
// encountered and never a partially resolved value. Meta is not consulted.
//
// A reference starting with '#' that is not a valid hex color is reported as
// *InvalidColorError wherever it appears (palette, token, style field or
// gradient stop), never as *UnresolvedTokenError.
func Resolve(spec Spec) (*Resolved, error) {
	palette, err := resolvePalette(spec.Palette)
	if err != nil {
		return nil, err
	}
	tokens, err := resolveTokens(spec.Tokens, palette)
	if err != nil {
		return nil, err
	}

	ns := namespace{tokens: tokens, palette: palette}
	styles, err := resolveStyles(spec.Styles, ns)
	if err != nil {
		return nil, err
	}
	gradients, err := resolveGradients(spec.Gradients, ns)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		palette:   palette,
		tokens:    tokens,
		styles:    styles,
		gradients: gradients,
	}, nil
}

// resolvePalette is pass 1: every value must be a literal hex color.
func resolvePalette(raw map[string]string) (map[string]color.Color, error) {
	palette := make(map[string]color.Color, len(raw))
	for _, name := range sortedKeys(raw) {
		c, err := color.Parse(raw[name])
		if err != nil {
			return nil, &InvalidColorError{Token: name, Err: err}
		}
		palette[name] = c
	}
	return palette, nil
}

// resolveStyles is pass 3.
func resolveStyles(raw map[string]StyleDef, ns namespace) (map[string]Style, error) {
	styles := make(map[string]Style, len(raw))
	for _, name := range sortedKeys(raw) {
		def := raw[name]
		s := Style{Modifiers: def.Modifiers}
		if def.FG != nil {
			c, err := ns.resolve(name+".fg", *def.FG)
			if err != nil {
				return nil, err
			}
			s.FG = &c
		}
		if def.BG != nil {
			c, err := ns.resolve(name+".bg", *def.BG)
			if err != nil {
				return nil, err
			}
			s.BG = &c
		}
		styles[name] = s
	}
	return styles, nil
}

// resolveGradients is pass 4. Stop order is preserved.
func resolveGradients(raw map[string][]string, ns namespace) (map[string]gradient.Gradient, error) {
	gradients := make(map[string]gradient.Gradient, len(raw))
	for _, name := range sortedKeys(raw) {
		refs := raw[name]
		stops := make([]color.Color, 0, len(refs))
		for i, ref := range refs {
			c, err := ns.resolve(fmt.Sprintf("%s[%d]", name, i), ref)
			if err != nil {
				return nil, err
			}
			stops = append(stops, c)
		}
		g, err := gradient.New(stops...)
		if err != nil {
			return nil, &EmptyGradientError{Gradient: name}
		}
		gradients[name] = g
	}
	return gradients, nil
}
