// Package catalog merges builtin themes with themes discovered on disk.
package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/kastheco/lacquer/builtins"
	"github.com/kastheco/lacquer/config"
	"github.com/kastheco/lacquer/log"
	"github.com/kastheco/lacquer/theme"
)

// Info describes one selectable theme.
type Info struct {
	ID          string        `json:"id"`
	DisplayName string        `json:"display_name"`
	Variant     theme.Variant `json:"variant"`
	Author      string        `json:"author,omitempty"`
	Description string        `json:"description,omitempty"`
	Builtin     bool          `json:"builtin"`
	Path        string        `json:"path,omitempty"`
}

func infoFor(id string, t *theme.Theme, path string) Info {
	meta := t.Meta()
	return Info{
		ID:          id,
		DisplayName: meta.Name,
		Variant:     meta.Variant,
		Author:      meta.Author,
		Description: meta.Description,
		Builtin:     path == "",
		Path:        path,
	}
}

// Catalog lists and loads themes. User themes in dirs shadow builtins with
// the same id. List and Load rescan dirs on every call; use Scan to reuse
// one discovery pass.
type Catalog struct {
	dirs []string
}

// New creates a catalog over the given discovery directories.
func New(dirs ...string) *Catalog {
	return &Catalog{dirs: append([]string(nil), dirs...)}
}

// Dirs returns the directories scanned for user themes.
func (c *Catalog) Dirs() []string {
	return append([]string(nil), c.dirs...)
}

// List returns every available theme: builtins first, then user themes,
// each group sorted by id.
func (c *Catalog) List(ctx context.Context) ([]Info, error) {
	scan, err := c.Scan(ctx)
	if err != nil {
		return nil, err
	}
	return scan.Infos(), nil
}

// Load resolves a theme by id, preferring user themes over builtins.
func (c *Catalog) Load(ctx context.Context, id string) (*theme.Theme, error) {
	scan, err := c.Scan(ctx)
	if err != nil {
		return nil, err
	}
	return scan.Load(id)
}

// Scan discovers user themes once. The result does not see files added
// after it was taken, so long-lived callers such as the selector can look
// themes up repeatedly without rereading the directories.
func (c *Catalog) Scan(ctx context.Context) (*Scan, error) {
	found, err := config.Discover(ctx, c.dirs)
	if err != nil {
		return nil, fmt.Errorf("discover themes: %w", err)
	}
	user := userThemes(found)

	var infos []Info
	for _, id := range builtins.Names() {
		if _, shadowed := user[id]; shadowed {
			continue
		}
		t, err := builtins.Load(id)
		if err != nil {
			return nil, err
		}
		infos = append(infos, infoFor(id, t, ""))
	}

	ids := make([]string, 0, len(user))
	for id := range user {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		d := user[id]
		infos = append(infos, infoFor(id, d.Theme, d.Path))
	}
	return &Scan{infos: infos, user: user}, nil
}

// Scan is a point-in-time view of a catalog.
type Scan struct {
	infos []Info
	user  map[string]config.Discovered
}

// Infos lists the scanned themes in catalog order.
func (s *Scan) Infos() []Info {
	return append([]Info(nil), s.infos...)
}

// Load returns a scanned user theme or a builtin.
func (s *Scan) Load(id string) (*theme.Theme, error) {
	if d, ok := s.user[id]; ok {
		return d.Theme, nil
	}
	if builtins.Has(id) {
		return builtins.Load(id)
	}
	return nil, &theme.NotFoundError{Name: id}
}

// userThemes indexes discovered files by id. When two directories hold the
// same id the later directory wins.
func userThemes(found []config.Discovered) map[string]config.Discovered {
	byID := make(map[string]config.Discovered, len(found))
	for _, d := range found {
		if prev, ok := byID[d.ID]; ok {
			log.For("catalog").Debug("theme shadowed", "id", d.ID, "kept", d.Path, "dropped", prev.Path)
		}
		byID[d.ID] = d
	}
	return byID
}
