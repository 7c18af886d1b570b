// Package gradient samples colors along an ordered list of stops.
package gradient

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/kastheco/lacquer/color"
)

// ErrNoStops is returned when a gradient is built without any stops.
var ErrNoStops = errors.New("gradient must have at least one color stop")

// Gradient is an immutable, ordered sequence of one or more color stops.
// The zero value has no stops and samples to color.Fallback.
type Gradient struct {
	stops []color.Color
}

// New creates a gradient from the given stops. The slice is copied.
func New(stops ...color.Color) (Gradient, error) {
	if len(stops) == 0 {
		return Gradient{}, ErrNoStops
	}
	return Gradient{stops: append([]color.Color(nil), stops...)}, nil
}

// MustNew is like New but panics when stops is empty.
func MustNew(stops ...color.Color) Gradient {
	g, err := New(stops...)
	if err != nil {
		panic(err)
	}
	return g
}

// At samples the gradient at position t, clamped to [0, 1].
//
// With k stops there are k-1 equal-width segments; t selects a segment and
// the position inside it is linearly interpolated. At(0) is the first stop
// and At(1) the last.
func (g Gradient) At(t float64) color.Color {
	switch len(g.stops) {
	case 0:
		return color.Fallback
	case 1:
		return g.stops[0]
	}

	if math.IsNaN(t) || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	segments := len(g.stops) - 1
	scaled := t * float64(segments)
	index := int(math.Floor(scaled))
	if index > segments-1 {
		index = segments - 1
	}
	if index < 0 {
		index = 0
	}
	local := scaled - float64(index)

	return color.Lerp(g.stops[index], g.stops[index+1], local)
}

// Generate returns n evenly spaced samples. n == 1 yields the midpoint;
// for n >= 2 the first and last samples equal the first and last stops.
func (g Gradient) Generate(n int) []color.Color {
	switch {
	case n <= 0:
		return []color.Color{}
	case n == 1:
		return []color.Color{g.At(0.5)}
	}

	out := make([]color.Color, n)
	for i := range out {
		out[i] = g.At(float64(i) / float64(n-1))
	}
	return out
}

// Len reports the number of stops.
func (g Gradient) Len() int {
	return len(g.stops)
}

// Stops returns a copy of the stops.
func (g Gradient) Stops() []color.Color {
	return append([]color.Color(nil), g.stops...)
}

// Equal reports whether both gradients have identical stops.
func (g Gradient) Equal(other Gradient) bool {
	if len(g.stops) != len(other.stops) {
		return false
	}
	for i := range g.stops {
		if g.stops[i] != other.stops[i] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the gradient as its list of hex stops.
func (g Gradient) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Stops())
}
