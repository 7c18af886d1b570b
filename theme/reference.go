package theme

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/kastheco/lacquer/color"
)

// RefKind distinguishes the two shapes a color reference can take.
type RefKind uint8

const (
	RefName RefKind = iota // a palette or token name
	RefHex                 // a literal "#rrggbb"
)

func (k RefKind) String() string {
	switch k {
	case RefName:
		return "name"
	case RefHex:
		return "hex"
	default:
		return "unknown"
	}
}

// Reference is a classified color reference: either a literal color or a name
// still to be looked up.
type Reference struct {
	kind RefKind
	hex  color.Color
	name string
}

// HexRef wraps a literal color.
func HexRef(c color.Color) Reference {
	return Reference{kind: RefHex, hex: c}
}

// NameRef wraps a palette or token name.
func NameRef(name string) Reference {
	return Reference{kind: RefName, name: name}
}

// ParseReference classifies a raw reference string. Anything starting with
// '#' after surrounding whitespace must be a valid hex color; everything else
// is a name, matched exactly as written.
func ParseReference(raw string) (Reference, error) {
	if strings.HasPrefix(strings.TrimSpace(raw), "#") {
		c, err := color.Parse(raw)
		if err != nil {
			return Reference{}, err
		}
		return HexRef(c), nil
	}
	return NameRef(raw), nil
}

// Kind reports which shape the reference has.
func (r Reference) Kind() RefKind { return r.kind }

// Hex returns the literal color for hex references.
func (r Reference) Hex() (color.Color, bool) {
	return r.hex, r.kind == RefHex
}

// Name returns the referenced name for name references.
func (r Reference) Name() (string, bool) {
	return r.name, r.kind == RefName
}

func (r Reference) String() string {
	if r.kind == RefHex {
		return r.hex.Hex()
	}
	return r.name
}

// namespace is the combined lookup used by styles and gradients once tokens
// and palette are resolved.
type namespace struct {
	tokens  map[string]color.Color
	palette map[string]color.Color
}

// lookup resolves a reference in priority order: hex literal, tokens, palette.
func (ns namespace) lookup(ref Reference) (color.Color, bool) {
	if c, ok := ref.Hex(); ok {
		return c, true
	}
	if c, ok := ns.tokens[ref.name]; ok {
		return c, true
	}
	c, ok := ns.palette[ref.name]
	return c, ok
}

// resolve classifies raw and looks it up, reporting failures against owner
// (e.g. "keyword.fg" or "aurora[2]").
func (ns namespace) resolve(owner, raw string) (color.Color, error) {
	ref, err := ParseReference(raw)
	if err != nil {
		return color.Color{}, &InvalidColorError{Token: owner, Err: err}
	}
	c, ok := ns.lookup(ref)
	if !ok {
		return color.Color{}, &UnresolvedTokenError{
			Token:      owner,
			Reference:  ref.name,
			Suggestion: suggest(ref.name, append(sortedKeys(ns.tokens), sortedKeys(ns.palette)...)),
		}
	}
	return c, nil
}

// maxSuggestDistance bounds how far a "did you mean" candidate may be.
const maxSuggestDistance = 2

// suggest returns the candidate closest to ref, or "" when nothing is within
// maxSuggestDistance edits. Ties resolve alphabetically.
func suggest(ref string, candidates []string) string {
	if ref == "" {
		return ""
	}
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best, bestDist := "", maxSuggestDistance+1
	for _, name := range sorted {
		if name == ref {
			continue
		}
		if d := levenshtein.ComputeDistance(ref, name); d < bestDist && d < len(ref) {
			best, bestDist = name, d
		}
	}
	return best
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
