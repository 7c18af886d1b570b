// Package names holds the standard token, style and gradient names that every
// builtin theme defines. Applications can use these instead of raw strings.
package names

import "github.com/kastheco/lacquer/theme"

// Semantic color tokens.
const (
	TextPrimary   = "text.primary"
	TextSecondary = "text.secondary"
	TextMuted     = "text.muted"
	TextDim       = "text.dim"

	BgBase      = "bg.base"
	BgPanel     = "bg.panel"
	BgHighlight = "bg.highlight"
	BgSelection = "bg.selection"

	AccentPrimary   = "accent.primary"
	AccentSecondary = "accent.secondary"
	AccentTertiary  = "accent.tertiary"

	Success = "success"
	Error   = "error"
	Warning = "warning"
	Info    = "info"

	BorderFocused   = "border.focused"
	BorderUnfocused = "border.unfocused"

	DiffAdded   = "diff.added"
	DiffRemoved = "diff.removed"

	CodeKeyword = "code.keyword"
	CodeString  = "code.string"
	CodeComment = "code.comment"
)

// Composed styles.
const (
	StyleKeyword         = "keyword"
	StyleSelected        = "selected"
	StyleFocusedBorder   = "focused_border"
	StyleUnfocusedBorder = "unfocused_border"
	StyleSuccess         = "success_style"
	StyleError           = "error_style"
	StyleWarning         = "warning_style"
	StyleInfo            = "info_style"
	StyleDimmed          = "dimmed"
	StyleInlineCode      = "inline_code"
	StyleDiffAdded       = "diff_added"
	StyleDiffRemoved     = "diff_removed"
)

// Gradients.
const (
	GradientPrimary = "primary"
	GradientWarm    = "warm"
	GradientAurora  = "aurora"
)

// Tokens lists every required token name.
func Tokens() []string {
	return []string{
		TextPrimary, TextSecondary, TextMuted, TextDim,
		BgBase, BgPanel, BgHighlight, BgSelection,
		AccentPrimary, AccentSecondary, AccentTertiary,
		Success, Error, Warning, Info,
		BorderFocused, BorderUnfocused,
		DiffAdded, DiffRemoved,
		CodeKeyword, CodeString, CodeComment,
	}
}

// Styles lists every required style name.
func Styles() []string {
	return []string{
		StyleKeyword, StyleSelected, StyleFocusedBorder, StyleUnfocusedBorder,
		StyleSuccess, StyleError, StyleWarning, StyleInfo,
		StyleDimmed, StyleInlineCode, StyleDiffAdded, StyleDiffRemoved,
	}
}

// Gradients lists every required gradient name.
func Gradients() []string {
	return []string{GradientPrimary, GradientWarm, GradientAurora}
}

// Report lists the standard names a theme does not define.
type Report struct {
	MissingTokens    []string
	MissingStyles    []string
	MissingGradients []string
}

// OK is true when nothing is missing.
func (r Report) OK() bool {
	return len(r.MissingTokens) == 0 && len(r.MissingStyles) == 0 && len(r.MissingGradients) == 0
}

// Check compares t against the standard contract. Palette entries do not
// satisfy a token requirement; only declared tokens count.
func Check(t *theme.Theme) Report {
	var r Report
	declared := make(map[string]bool)
	for _, name := range t.TokenNames() {
		declared[name] = true
	}
	for _, name := range Tokens() {
		if !declared[name] {
			r.MissingTokens = append(r.MissingTokens, name)
		}
	}
	for _, name := range Styles() {
		if !t.HasStyle(name) {
			r.MissingStyles = append(r.MissingStyles, name)
		}
	}
	for _, name := range Gradients() {
		if !t.HasGradient(name) {
			r.MissingGradients = append(r.MissingGradients, name)
		}
	}
	return r
}
