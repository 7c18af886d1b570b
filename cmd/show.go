package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kastheco/lacquer/theme"
	"github.com/kastheco/lacquer/ui"
)

const showBarWidth = 32

// NewShowCmd returns the `lacquer show` command. It renders swatches, styles
// and gradients for a theme id or file.
func NewShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show [ID|FILE]",
		Short: "preview a theme in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			t, err := opts.loadTheme(cmd.Context(), arg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTheme(t))
			return nil
		},
	}
}

func renderTheme(t *theme.Theme) string {
	var b strings.Builder
	meta := t.Meta()
	fmt.Fprintf(&b, "%s (%s)", meta.Name, meta.Variant)
	if meta.Author != "" {
		fmt.Fprintf(&b, " by %s", meta.Author)
	}
	b.WriteString("\n")

	section := func(title string) {
		fmt.Fprintf(&b, "\n%s\n", title)
	}

	section("palette")
	for _, name := range t.PaletteNames() {
		c := t.Color(name)
		fmt.Fprintf(&b, "  %s %-20s %s\n", ui.Swatch("  ", c), name, c.Hex())
	}

	section("tokens")
	for _, name := range t.TokenNames() {
		c := t.Color(name)
		fmt.Fprintf(&b, "  %s %-20s %s\n", ui.Swatch("  ", c), name, c.Hex())
	}

	section("styles")
	for _, name := range t.StyleNames() {
		fmt.Fprintf(&b, "  %s\n", ui.Style(t.Style(name)).Render(name))
	}

	section("gradients")
	for _, name := range t.GradientNames() {
		g, _ := t.GetGradient(name)
		fmt.Fprintf(&b, "  %s %s\n", ui.GradientBar(showBarWidth, g), name)
	}
	return b.String()
}
