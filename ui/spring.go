package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringAnim drives a spring-physics animation from 0 to a target value.
// The selector uses it to unfold gradient bars when the preview changes.
type SpringAnim struct {
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	settled bool
}

// NewSpringAnim creates a spring animation targeting the given value.
// Ticks are expected every 50ms.
func NewSpringAnim(target float64) *SpringAnim {
	return &SpringAnim{
		spring: harmonica.NewSpring(harmonica.FPS(20), 4.0, 0.8),
		target: target,
	}
}

// Reset restarts the animation from zero towards target.
func (s *SpringAnim) Reset(target float64) {
	s.pos, s.vel = 0, 0
	s.target = target
	s.settled = false
}

// Tick advances the spring by one frame. Returns true while still animating.
func (s *SpringAnim) Tick() bool {
	if s.settled {
		return false
	}

	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.01 && math.Abs(s.vel) < 0.01 {
		s.pos = s.target
		s.vel = 0
		s.settled = true
	}
	return !s.settled
}

// Visible returns the current value rounded and clamped to [0, target].
func (s *SpringAnim) Visible() int {
	v := int(math.Round(s.pos))
	if v < 0 {
		return 0
	}
	if maxV := int(s.target); v > maxV {
		return maxV
	}
	return v
}

// Settled returns true once the spring has come to rest at the target.
func (s *SpringAnim) Settled() bool {
	return s.settled
}
