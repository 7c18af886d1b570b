// Package color is the 8-bit RGB primitive used by every theme layer.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidLength is returned when a hex string is not exactly "#rrggbb".
	ErrInvalidLength = errors.New("invalid hex color length (expected 7, e.g. #rrggbb)")
	// ErrInvalidHex is returned when a channel is not valid hexadecimal.
	ErrInvalidHex = errors.New("invalid hex character in color")
)

// Color is an RGB color with 8-bit channels. There is no alpha channel.
type Color struct {
	R, G, B uint8
}

// Fallback is the neutral gray returned when a lookup cannot be satisfied.
var Fallback = Color{R: 128, G: 128, B: 128}

// New creates a color from RGB components.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromUint32 builds a color from a packed 0xRRGGBB value. The upper byte is ignored.
func FromUint32(packed uint32) Color {
	return Color{
		R: uint8(packed >> 16),
		G: uint8(packed >> 8),
		B: uint8(packed),
	}
}

// Parse reads a "#rrggbb" string. Surrounding whitespace is ignored and the
// hex digits are case-insensitive.
func Parse(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	if len(hex) != 7 || hex[0] != '#' {
		return Color{}, fmt.Errorf("%w: got %d characters in %q", ErrInvalidLength, len(hex), hex)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// package-level literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#rrggbb" with lowercase digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Uint32 packs the color as 0xRRGGBB.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA implements image/color.Color with full opacity.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// MarshalText encodes the color as "#rrggbb".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a "#rrggbb" string.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Lerp linearly interpolates between a and b. t is clamped to [0, 1] and each
// channel is rounded independently.
func Lerp(a, b Color, t float64) Color {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x)*(1-t) + float64(y)*t))
	}
	return Color{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
	}
}

// Lerp is shorthand for Lerp(c, other, t).
func (c Color) Lerp(other Color, t float64) Color {
	return Lerp(c, other, t)
}

// clamp01 clamps t to [0, 1]; NaN maps to 0.
func clamp01(t float64) float64 {
	switch {
	case math.IsNaN(t), t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
