package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrInvalidColor      = errors.New("invalid color")
	ErrCircularReference = errors.New("circular token reference")
	ErrUnresolvedToken   = errors.New("unresolved token")
	ErrEmptyGradient     = errors.New("gradient must have at least one color stop")
	ErrMissingSection    = errors.New("missing required section")
	ErrThemeNotFound     = errors.New("theme not found")
)

// InvalidColorError reports a malformed hex literal. Token names the palette
// entry, token, or style/gradient location that held it.
type InvalidColorError struct {
	Token string
	Err   error
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color for token %q: %v", e.Token, e.Err)
}

func (e *InvalidColorError) Unwrap() error        { return e.Err }
func (e *InvalidColorError) Is(target error) bool { return target == ErrInvalidColor }

// CircularReferenceError reports a token cycle. Chain lists the names in
// traversal order and repeats Token at the end to close the loop.
type CircularReferenceError struct {
	Token string
	Chain []string
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("circular token reference %q: %s", e.Token, strings.Join(e.Chain, " → "))
}

func (e *CircularReferenceError) Is(target error) bool { return target == ErrCircularReference }

// UnresolvedTokenError reports a reference that names nothing. Suggestion is
// the closest declared name, if one is near enough to be a likely typo.
type UnresolvedTokenError struct {
	Token      string
	Reference  string
	Suggestion string
}

func (e *UnresolvedTokenError) Error() string {
	msg := fmt.Sprintf("unresolved token %q references %q", e.Token, e.Reference)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *UnresolvedTokenError) Is(target error) bool { return target == ErrUnresolvedToken }

// EmptyGradientError reports a gradient with no stops.
type EmptyGradientError struct {
	Gradient string
}

func (e *EmptyGradientError) Error() string {
	return fmt.Sprintf("gradient %q must have at least one color stop", e.Gradient)
}

func (e *EmptyGradientError) Is(target error) bool { return target == ErrEmptyGradient }

// MissingSectionError reports a structurally required part of the input that
// is absent, e.g. "meta" or "meta.name".
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("missing required section: %s", e.Section)
}

func (e *MissingSectionError) Is(target error) bool { return target == ErrMissingSection }

// NotFoundError is returned by theme catalogs for unknown ids.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("theme not found: %s", e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrThemeNotFound }
