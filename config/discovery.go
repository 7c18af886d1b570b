package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kastheco/lacquer/log"
	"github.com/kastheco/lacquer/theme"
)

// maxParallelLoads bounds how many theme files are decoded at once.
const maxParallelLoads = 8

// Discovered is a theme file found on disk and successfully resolved.
type Discovered struct {
	ID    string // file name without extension
	Path  string
	Theme *theme.Theme
}

// ThemeDirs returns the directories scanned for user themes: the themes
// directory under base followed by extra. An empty base means DefaultDir.
func ThemeDirs(base string, extra ...string) []string {
	if base == "" {
		base, _ = DefaultDir()
	}
	var dirs []string
	if base != "" {
		dirs = append(dirs, filepath.Join(base, "themes"))
	}
	for _, d := range extra {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Discover scans dirs for theme files and resolves them in parallel.
// Missing directories are skipped; files that fail to load are logged and
// skipped. The result keeps the order of dirs, then file name.
func Discover(ctx context.Context, dirs []string) ([]Discovered, error) {
	logger := log.For("discovery")

	var paths []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !os.IsNotExist(err) {
				logger.Warn("skipping theme dir", "dir", dir, "err", err)
			}
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !isThemeFile(e.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}

	slots := make([]*Discovered, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := LoadFile(path)
			if err != nil {
				logger.Warn("skipping invalid theme", "path", path, "err", err)
				return nil
			}
			logger.Debug("discovered theme", "path", path, "name", t.Name())
			slots[i] = &Discovered{ID: themeID(path), Path: path, Theme: t}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	found := make([]Discovered, 0, len(slots))
	for _, d := range slots {
		if d != nil {
			found = append(found, *d)
		}
	}
	return found, nil
}

func isThemeFile(name string) bool {
	_, err := FormatFromPath(name)
	return err == nil
}

func themeID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
