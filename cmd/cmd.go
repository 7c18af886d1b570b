package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kastheco/lacquer/builtins"
	"github.com/kastheco/lacquer/catalog"
	"github.com/kastheco/lacquer/config"
	"github.com/kastheco/lacquer/log"
	"github.com/kastheco/lacquer/theme"
	"github.com/kastheco/lacquer/ui"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose   bool
	configDir string
	color     string
}

// NewRootCmd returns the root cobra command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "lacquer",
		Short:         "lacquer - resolve, preview and serve terminal color themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(cmd.ErrOrStderr(), opts.verbose)
			return ui.SetColorMode(ui.ColorMode(opts.color))
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "config directory (default: user config dir/lacquer)")
	root.PersistentFlags().StringVar(&opts.color, "color", string(ui.ColorAuto), "color output: auto, always or never")

	root.AddCommand(NewResolveCmd())
	root.AddCommand(NewListCmd(opts))
	root.AddCommand(NewShowCmd(opts))
	root.AddCommand(NewGradientCmd(opts))
	root.AddCommand(NewCheckCmd(opts))
	root.AddCommand(NewSelectCmd(opts))
	root.AddCommand(NewServeCmd(opts))
	root.AddCommand(NewSchemaCmd())
	return root
}

// settings loads settings from the config dir.
func (o *globalOptions) settings() (*config.Settings, error) {
	dir := o.configDir
	if dir == "" {
		var err error
		if dir, err = config.DefaultDir(); err != nil {
			return nil, err
		}
	}
	s := config.NewSettings(dir)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// catalog builds a catalog over the config dir's themes folder and any extra
// directories from settings.
func (o *globalOptions) catalog() (*catalog.Catalog, *config.Settings, error) {
	s, err := o.settings()
	if err != nil {
		return nil, nil, err
	}
	return catalog.New(config.ThemeDirs(s.Dir(), s.ThemeDirs()...)...), s, nil
}

// loadTheme resolves arg as a theme file when it names one on disk, and as a
// catalog id otherwise. An empty arg means the selected theme, or the
// default builtin when none was selected.
func (o *globalOptions) loadTheme(ctx context.Context, arg string) (*theme.Theme, error) {
	if isThemePath(arg) {
		return config.LoadFile(arg)
	}
	cat, s, err := o.catalog()
	if err != nil {
		return nil, err
	}
	if arg == "" {
		arg = s.Theme()
	}
	if arg == "" {
		arg = builtins.DefaultID
	}
	return cat.Load(ctx, arg)
}

func isThemePath(arg string) bool {
	if _, err := config.FormatFromPath(arg); err != nil {
		return false
	}
	if filepath.Base(arg) != arg {
		return true
	}
	_, err := os.Stat(arg)
	return err == nil
}
