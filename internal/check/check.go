package check

import (
	"context"
	"fmt"

	"github.com/kastheco/lacquer/color"
	"github.com/kastheco/lacquer/names"
	"github.com/kastheco/lacquer/theme"
)

// ThemeStatus represents the audit state of a single theme.
type ThemeStatus int

const (
	StatusOK         ThemeStatus = iota // resolves and defines every standard name
	StatusIncomplete                    // resolves but misses standard names
	StatusInvalid                       // fails to load or resolve
)

func (s ThemeStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusIncomplete:
		return "incomplete"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// minTextContrast is the smallest CIEDE2000 distance allowed between a text
// token and the background it sits on.
const minTextContrast = 20.0

// contrastPairs are (foreground, background) tokens checked for legibility.
var contrastPairs = [][2]string{
	{names.TextPrimary, names.BgBase},
	{names.TextPrimary, names.BgPanel},
	{names.TextSecondary, names.BgBase},
}

// ThemeEntry is one theme's audit result.
type ThemeEntry struct {
	ID     string
	Name   string // display name, empty when the theme failed to load
	Status ThemeStatus
	Report names.Report
	Err    error

	// LowContrast lists "fg on bg" pairs closer than minTextContrast.
	// Warnings only; they do not change Status.
	LowContrast []string
}

// Detail is a one-line explanation of a non-ok status.
func (e ThemeEntry) Detail() string {
	switch e.Status {
	case StatusInvalid:
		return e.Err.Error()
	case StatusIncomplete:
		return fmt.Sprintf("missing %d tokens, %d styles, %d gradients",
			len(e.Report.MissingTokens), len(e.Report.MissingStyles), len(e.Report.MissingGradients))
	default:
		return ""
	}
}

// AuditResult is the complete output of lacquer check.
type AuditResult struct {
	Themes []ThemeEntry
}

// Summary returns (ok, total) counts.
func (r *AuditResult) Summary() (int, int) {
	ok := 0
	for _, e := range r.Themes {
		if e.Status == StatusOK {
			ok++
		}
	}
	return ok, len(r.Themes)
}

// Loader resolves a theme by id.
type Loader func(ctx context.Context, id string) (*theme.Theme, error)

// Audit loads every id and checks it against the standard name contract.
// Load failures are recorded, not returned; only a cancelled ctx aborts.
func Audit(ctx context.Context, ids []string, load Loader) (*AuditResult, error) {
	result := &AuditResult{Themes: make([]ThemeEntry, 0, len(ids))}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Themes = append(result.Themes, auditOne(ctx, id, load))
	}
	return result, nil
}

func auditOne(ctx context.Context, id string, load Loader) ThemeEntry {
	t, err := load(ctx, id)
	if err != nil {
		return ThemeEntry{ID: id, Status: StatusInvalid, Err: err}
	}
	entry := ThemeEntry{
		ID:          id,
		Name:        t.Name(),
		Report:      names.Check(t),
		LowContrast: lowContrast(t),
	}
	if !entry.Report.OK() {
		entry.Status = StatusIncomplete
	}
	return entry
}

// lowContrast reports the contrast pairs of t whose colors are too close.
// Pairs with a token that t does not define are skipped.
func lowContrast(t *theme.Theme) []string {
	var out []string
	for _, pair := range contrastPairs {
		fg, ok := t.TryColor(pair[0])
		if !ok {
			continue
		}
		bg, ok := t.TryColor(pair[1])
		if !ok {
			continue
		}
		if color.Distance(fg, bg) < minTextContrast {
			out = append(out, pair[0]+" on "+pair[1])
		}
	}
	return out
}
