package color

import (
	stdcolor "image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
)

// FromStd converts any image/color.Color into a Color, dropping alpha.
// Out-of-gamut values are clamped.
func FromStd(c stdcolor.Color) Color {
	if c == nil {
		return Fallback
	}
	if own, ok := c.(Color); ok {
		return own
	}
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Distance is the perceptual CIEDE2000 distance between two colors.
func Distance(a, b Color) float64 {
	return a.colorful().DistanceCIEDE2000(b.colorful())
}

// Lighter returns the color lightened by percent (0..1).
func (c Color) Lighter(percent float64) Color {
	return FromStd(gamut.Lighter(c, percent))
}

// Darker returns the color darkened by percent (0..1).
func (c Color) Darker(percent float64) Color {
	return FromStd(gamut.Darker(c, percent))
}

// Contrast returns a color that stays readable on top of c.
func (c Color) Contrast() Color {
	return FromStd(gamut.Contrast(c))
}
