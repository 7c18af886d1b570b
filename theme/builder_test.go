package theme

import (
	"testing"

	"github.com/kastheco/lacquer/color"
	"github.com/kastheco/lacquer/gradient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	accent := color.New(225, 53, 255)
	bg := color.New(18, 18, 24)

	th := NewBuilder("My Theme").
		Author("someone").
		Version("1.0").
		Description("hand built").
		Palette("purple_500", accent).
		Token("accent.primary", accent).
		Token("bg.base", bg).
		Style("keyword", FGStyle(accent).Bolded()).
		Gradient("primary", gradient.MustNew(accent, bg)).
		Build()

	assert.Equal(t, "My Theme", th.Name())
	assert.Equal(t, "someone", th.Meta().Author)
	assert.Equal(t, "1.0", th.Meta().Version)
	assert.Equal(t, "hand built", th.Meta().Description)
	assert.True(t, th.IsDark())
	assert.Equal(t, accent, th.Color("accent.primary"))
	assert.Equal(t, accent, th.Color("purple_500"))
	assert.Equal(t, accent, *th.Style("keyword").FG)
	assert.True(t, th.Style("keyword").Bold)
	assert.Equal(t, bg, th.Gradient("primary", 1))
}

func TestBuilder_IsFunctional(t *testing.T) {
	base := NewBuilder("Base").Token("bg.base", color.New(0, 0, 0))
	dark := base.Variant(VariantDark)
	light := base.Variant(VariantLight).Token("bg.base", color.New(255, 255, 255))

	baseTheme := base.Build()
	darkTheme := dark.Build()
	lightTheme := light.Build()

	assert.Equal(t, color.New(0, 0, 0), baseTheme.Color("bg.base"))
	assert.Equal(t, color.New(0, 0, 0), darkTheme.Color("bg.base"))
	assert.Equal(t, color.New(255, 255, 255), lightTheme.Color("bg.base"))
	assert.True(t, darkTheme.IsDark())
	assert.True(t, lightTheme.IsLight())

	// Extending after Build must not leak into the built theme.
	_ = base.Token("late", color.New(1, 1, 1))
	assert.False(t, baseTheme.HasToken("late"))
}

func TestBuilder_StyleIsCopied(t *testing.T) {
	s := FGStyle(color.New(1, 1, 1))
	th := NewBuilder("x").Style("s", s).Build()
	*s.FG = color.New(9, 9, 9)
	assert.Equal(t, color.New(1, 1, 1), *th.Style("s").FG)
}

func TestBuilder_EmptyBuild(t *testing.T) {
	th := NewBuilder("Empty").Build()
	require.NotNil(t, th)
	assert.Empty(t, th.TokenNames())
	assert.Equal(t, color.Fallback, th.Color("anything"))
}
