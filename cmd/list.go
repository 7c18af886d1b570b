package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCmd returns the `lacquer list` command.
func NewListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list builtin and user themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, s, err := opts.catalog()
			if err != nil {
				return err
			}
			infos, err := cat.List(cmd.Context())
			if err != nil {
				return err
			}

			current := s.Theme()
			out := cmd.OutOrStdout()
			for _, info := range infos {
				marker := " "
				if info.ID == current {
					marker = "*"
				}
				source := "builtin"
				if !info.Builtin {
					source = info.Path
				}
				fmt.Fprintf(out, "%s %-18s %-20s %-6s %s\n", marker, info.ID, info.DisplayName, info.Variant, source)
			}
			return nil
		},
	}
}
