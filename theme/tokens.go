package theme

import "github.com/kastheco/lacquer/color"

// visitState tracks a token's progress through the graph walk.
type visitState uint8

const (
	unvisited visitState = iota
	inProgress
	resolved
)

// tokenGraph resolves token references against the palette and each other.
// Every token has exactly one outgoing edge, so a walk from any token is a
// simple path that ends in a color, a dangling name, or a cycle.
type tokenGraph struct {
	raw     map[string]string
	palette map[string]color.Color

	state map[string]visitState
	out   map[string]color.Color
}

func newTokenGraph(raw map[string]string, palette map[string]color.Color) *tokenGraph {
	return &tokenGraph{
		raw:     raw,
		palette: palette,
		state:   make(map[string]visitState, len(raw)),
		out:     make(map[string]color.Color, len(raw)),
	}
}

// resolveAll walks every declared token in sorted order, skipping tokens
// already memoized by an earlier walk.
func (g *tokenGraph) resolveAll() (map[string]color.Color, error) {
	for _, name := range sortedKeys(g.raw) {
		if g.state[name] == resolved {
			continue
		}
		if _, err := g.resolve(name); err != nil {
			return nil, err
		}
	}
	return g.out, nil
}

// resolve follows the reference chain from start using an explicit path
// instead of recursion, then memoizes every token on the path.
func (g *tokenGraph) resolve(start string) (color.Color, error) {
	var (
		path []string
		c    color.Color
	)

	for cur := start; ; {
		if g.state[cur] == resolved {
			c = g.out[cur]
			break
		}
		if g.state[cur] == inProgress {
			chain := append(append([]string(nil), path...), cur)
			return color.Color{}, &CircularReferenceError{Token: cur, Chain: chain}
		}

		g.state[cur] = inProgress
		path = append(path, cur)

		ref, err := ParseReference(g.raw[cur])
		if err != nil {
			return color.Color{}, &InvalidColorError{Token: cur, Err: err}
		}
		if hex, ok := ref.Hex(); ok {
			c = hex
			break
		}

		name, _ := ref.Name()
		if pc, ok := g.palette[name]; ok {
			c = pc
			break
		}
		if _, ok := g.raw[name]; ok {
			cur = name
			continue
		}
		return color.Color{}, &UnresolvedTokenError{
			Token:      cur,
			Reference:  name,
			Suggestion: suggest(name, append(sortedKeys(g.raw), sortedKeys(g.palette)...)),
		}
	}

	for _, name := range path {
		g.out[name] = c
		g.state[name] = resolved
	}
	return c, nil
}

// resolveTokens is pass 2 of the pipeline.
func resolveTokens(raw map[string]string, palette map[string]color.Color) (map[string]color.Color, error) {
	return newTokenGraph(raw, palette).resolveAll()
}
