package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kastheco/lacquer/internal/check"
	"github.com/kastheco/lacquer/theme"
)

// NewCheckCmd returns the `lacquer check` command. It exits non-zero when
// any theme fails to resolve or misses a standard name.
func NewCheckCmd(opts *globalOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "check [ID|FILE...]",
		Short: "verify themes resolve and define every standard name",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := args
			if all {
				cat, _, err := opts.catalog()
				if err != nil {
					return err
				}
				infos, err := cat.List(cmd.Context())
				if err != nil {
					return err
				}
				for _, info := range infos {
					ids = append(ids, info.ID)
				}
			}
			if len(ids) == 0 {
				return fmt.Errorf("nothing to check: pass theme ids or files, or --all")
			}

			load := func(ctx context.Context, id string) (*theme.Theme, error) {
				return opts.loadTheme(ctx, id)
			}
			res, err := check.Audit(cmd.Context(), ids, load)
			if err != nil {
				return err
			}
			printAudit(cmd.OutOrStdout(), res)

			if ok, total := res.Summary(); ok != total {
				return fmt.Errorf("%d of %d themes failed", total-ok, total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "check every theme in the catalog")
	return cmd
}

func printAudit(w io.Writer, res *check.AuditResult) {
	for _, e := range res.Themes {
		fmt.Fprintf(w, "%-11s %s", e.Status, e.ID)
		if d := e.Detail(); d != "" {
			fmt.Fprintf(w, ": %s", d)
		}
		fmt.Fprintln(w)

		missing := append(append(append([]string(nil), e.Report.MissingTokens...), e.Report.MissingStyles...), e.Report.MissingGradients...)
		if len(missing) > 0 {
			fmt.Fprintf(w, "            %s\n", strings.Join(missing, ", "))
		}
		for _, pair := range e.LowContrast {
			fmt.Fprintf(w, "            warning: low contrast %s\n", pair)
		}
	}
	ok, total := res.Summary()
	fmt.Fprintf(w, "%d/%d ok\n", ok, total)
}
