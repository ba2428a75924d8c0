// SPDX-License-Identifier: Unlicense OR MIT

// Package scroll implements a horizontal scroll offset with instant and
// animated positioning.
package scroll

import (
	"math"
	"time"

	"github.com/slidingmenu/slidingmenu/internal/bounds"
)

// DefaultDuration is the length of a smooth scroll when Animator.Duration
// is zero.
const DefaultDuration = 250 * time.Millisecond

// Animator tracks a scroll offset in [0, Max]. Smooth scrolls are
// driven by calls to Tick with the frame time.
type Animator struct {
	// Max is the largest offset.
	Max int
	// Duration of a smooth scroll.
	Duration time.Duration
	// OnChange is called after every change of the offset.
	OnChange func(offset int)

	x      int
	from   int
	to     int
	t0     time.Time
	active bool
}

// ScrollX returns the current offset.
func (a *Animator) ScrollX() int {
	return a.x
}

// ScrollTo moves to x immediately, stopping any animation.
func (a *Animator) ScrollTo(x int) {
	a.active = false
	a.set(bounds.Clamp(x, 0, a.Max))
}

// SmoothScrollTo starts an animation from the current offset to x. The
// animation starts at the next call to Tick.
func (a *Animator) SmoothScrollTo(x int) {
	x = bounds.Clamp(x, 0, a.Max)
	if x == a.x {
		a.active = false
		return
	}
	a.from, a.to = a.x, x
	a.t0 = time.Time{}
	a.active = true
}

// Active reports whether an animation is in progress.
func (a *Animator) Active() bool {
	return a.active
}

// Target returns the offset the scroller is settling at.
func (a *Animator) Target() int {
	if a.active {
		return a.to
	}
	return a.x
}

// Tick advances the animation to now and reports whether it needs
// more frames.
func (a *Animator) Tick(now time.Time) bool {
	if !a.active {
		return false
	}
	if a.t0.IsZero() {
		a.t0 = now
		return true
	}
	duration := a.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	f := float32(now.Sub(a.t0).Seconds() / duration.Seconds())
	if f >= 1 {
		a.active = false
		a.set(a.to)
		return false
	}
	if f < 0 {
		f = 0
	}
	delta := float32(a.to-a.from) * easeOutCubic(f)
	a.set(a.from + int(math.Round(float64(delta))))
	return true
}

func (a *Animator) set(x int) {
	if x == a.x {
		return
	}
	a.x = x
	if a.OnChange != nil {
		a.OnChange(x)
	}
}

// easeOutCubic starts fast and decelerates into the target.
func easeOutCubic(t float32) float32 {
	t = 1 - t
	return 1 - t*t*t
}
