// Package builtins ships the themes compiled into the binary.
package builtins

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/kastheco/lacquer/config"
	"github.com/kastheco/lacquer/theme"
)

//go:embed themes/*.toml
var themeFS embed.FS

// DefaultID is the builtin used when nothing else was selected.
const DefaultID = "rose-pine-moon"

// aliasDefault resolves to DefaultID in Load.
const aliasDefault = "default"

// Names lists the builtin theme ids in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(themeFS, "themes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}

// Has reports whether id names a builtin theme.
func Has(id string) bool {
	if id == aliasDefault {
		return true
	}
	_, err := fs.Stat(themeFS, file(id))
	return err == nil
}

// Load resolves the builtin theme id. "default" is accepted as an alias.
func Load(id string) (*theme.Theme, error) {
	if id == aliasDefault {
		id = DefaultID
	}
	data, err := themeFS.ReadFile(file(id))
	if err != nil {
		return nil, &theme.NotFoundError{Name: id}
	}
	t, err := config.Parse(data, config.FormatTOML, file(id))
	if err != nil {
		return nil, fmt.Errorf("load builtin %s: %w", id, err)
	}
	return t, nil
}

// Default returns the default builtin. It panics if the embedded file is
// broken, which the package tests rule out.
func Default() *theme.Theme {
	t, err := Load(DefaultID)
	if err != nil {
		panic(err)
	}
	return t
}

func file(id string) string {
	return path.Join("themes", id+".toml")
}
