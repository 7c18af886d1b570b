package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kastheco/lacquer/ui"
)

// NewGradientCmd returns the `lacquer gradient` command.
func NewGradientCmd(opts *globalOptions) *cobra.Command {
	var (
		n    int
		text string
	)

	cmd := &cobra.Command{
		Use:   "gradient ID|FILE GRADIENT",
		Short: "sample a theme gradient",
		Long:  "Print n evenly spaced colors from a gradient, or color TEXT with it when --text is set.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.loadTheme(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			g, ok := t.GetGradient(args[1])
			if !ok {
				return fmt.Errorf("gradient %q not defined in %s", args[1], t.Name())
			}

			out := cmd.OutOrStdout()
			if text != "" {
				fmt.Fprintln(out, ui.GradientText(text, g))
				return nil
			}
			if n < 1 {
				return fmt.Errorf("-n must be at least 1")
			}
			for _, c := range g.Generate(n) {
				fmt.Fprintln(out, c.Hex())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "samples", "n", 10, "number of colors to sample")
	cmd.Flags().StringVar(&text, "text", "", "text to color with the gradient")
	return cmd
}
