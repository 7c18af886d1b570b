package theme

import "sync/atomic"

// Provider holds the caller's currently active theme. Each theme is an
// immutable snapshot; switching themes swaps the pointer atomically, so
// readers never observe a half-updated theme and never need a lock.
type Provider struct {
	current atomic.Pointer[Theme]
}

// NewProvider returns a provider serving initial. A nil initial theme is
// replaced with an empty theme named "Fallback".
func NewProvider(initial *Theme) *Provider {
	if initial == nil {
		initial = Empty("Fallback")
	}
	p := &Provider{}
	p.current.Store(initial)
	return p
}

// Current returns the active theme.
func (p *Provider) Current() *Theme {
	return p.current.Load()
}

// Swap installs t and returns the previously active theme. A nil t is ignored
// and the current theme is returned unchanged.
func (p *Provider) Swap(t *Theme) *Theme {
	if t == nil {
		return p.current.Load()
	}
	return p.current.Swap(t)
}
