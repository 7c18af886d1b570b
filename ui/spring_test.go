package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpringAnim(t *testing.T) {
	s := NewSpringAnim(24.0)
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Visible())
	assert.False(t, s.Settled())
}

func TestSpringAnim_ConvergesToTarget(t *testing.T) {
	s := NewSpringAnim(24.0)

	for i := 0; i < 200; i++ {
		if s.Settled() {
			break
		}
		s.Tick()
	}

	assert.True(t, s.Settled(), "spring should settle within 200 ticks")
	assert.Equal(t, 24, s.Visible())
}

func TestSpringAnim_VisibleClamped(t *testing.T) {
	s := NewSpringAnim(6.0)

	// Overshoot must never leak past the target.
	for i := 0; i < 60; i++ {
		v := s.Visible()
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 6)
		s.Tick()
	}
}

func TestSpringAnim_TickReturnsFalseWhenSettled(t *testing.T) {
	s := NewSpringAnim(6.0)
	assert.True(t, s.Tick(), "should return true while animating")

	for i := 0; i < 200; i++ {
		if !s.Tick() {
			break
		}
	}
	assert.False(t, s.Tick(), "should return false after settling")
}

func TestSpringAnim_Reset(t *testing.T) {
	s := NewSpringAnim(6.0)
	for i := 0; i < 200 && s.Tick(); i++ {
	}
	require.True(t, s.Settled())

	s.Reset(10)
	assert.False(t, s.Settled())
	assert.Equal(t, 0, s.Visible())
}
