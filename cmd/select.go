package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kastheco/lacquer/log"
	"github.com/kastheco/lacquer/ui/selector"
)

// NewSelectCmd returns the `lacquer select` command. It opens the
// interactive picker and saves the choice to settings.
func NewSelectCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "select",
		Short: "pick a theme interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, s, err := opts.catalog()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			scan, err := cat.Scan(ctx)
			if err != nil {
				return err
			}

			id, ok, err := selector.Run(ctx, scan.Infos(), scan.Load, s.Theme())
			if err != nil {
				return err
			}
			if !ok {
				log.For("select").Debug("selection cancelled")
				return nil
			}

			s.SetTheme(id)
			if err := s.Save(); err != nil {
				return fmt.Errorf("save selection: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "selected %s\n", id)
			return nil
		},
	}
}
