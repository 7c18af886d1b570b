package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kastheco/lacquer/config"
	"github.com/kastheco/lacquer/theme"
)

// NewResolveCmd returns the `lacquer resolve` command. It prints a fully
// resolved theme file in the requested encoding.
func NewResolveCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "resolve a theme file and print every concrete color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := config.LoadFile(args[0])
			if err != nil {
				return err
			}
			out, err := encodeSnapshot(t.Snapshot(), format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml or toml")
	return cmd
}

func encodeSnapshot(snap theme.Snapshot, format string) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(out, '\n'), nil
	case "yaml":
		out, err := yaml.Marshal(snap)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return out, nil
	case "toml":
		out, err := toml.Marshal(snap)
		if err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want json, yaml or toml)", format)
	}
}
