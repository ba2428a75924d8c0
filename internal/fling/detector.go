// SPDX-License-Identifier: Unlicense OR MIT

// Package fling recognizes horizontal fling gestures.
package fling

import (
	"gioui.org/unit"

	"github.com/slidingmenu/slidingmenu/drawer"
)

const (
	// DefaultMinVelocity is the slowest release that counts as a fling,
	// in dp per second.
	DefaultMinVelocity = unit.Dp(50)
	// DefaultMaxVelocity caps reported fling velocities, in dp per
	// second.
	DefaultMaxVelocity = unit.Dp(8000)
	// DefaultSlop is the travel below which a sequence is a tap.
	DefaultSlop = unit.Dp(8)
)

// Detector classifies touch sequences as horizontal flings. It
// implements drawer.Recognizer.
type Detector struct {
	// MinVelocity and MaxVelocity are in pixels per second.
	MinVelocity float32
	MaxVelocity float32
	// Slop is in pixels.
	Slop float32

	tracker Tracker
	downX   float32
	moved   bool
	active  bool
}

// NewDetector returns a detector with velocity and slop thresholds
// converted to pixels by m.
func NewDetector(m unit.Metric, minVelocity, maxVelocity unit.Dp) *Detector {
	if minVelocity <= 0 {
		minVelocity = DefaultMinVelocity
	}
	if maxVelocity <= 0 {
		maxVelocity = DefaultMaxVelocity
	}
	return &Detector{
		MinVelocity: float32(m.Dp(minVelocity)),
		MaxVelocity: float32(m.Dp(maxVelocity)),
		Slop:        float32(m.Dp(DefaultSlop)),
	}
}

// Fling implements drawer.Recognizer.
func (d *Detector) Fling(t drawer.Touch) (float32, bool) {
	switch t.Kind {
	case drawer.TouchDown:
		d.tracker.Reset()
		d.tracker.Sample(t.Time, t.X)
		d.downX = t.X
		d.moved = false
		d.active = true
	case drawer.TouchMove:
		if !d.active {
			break
		}
		d.tracker.Sample(t.Time, t.X)
		if dx := t.X - d.downX; dx > d.Slop || -dx > d.Slop {
			d.moved = true
		}
	case drawer.TouchUp:
		if !d.active {
			break
		}
		d.active = false
		d.tracker.Sample(t.Time, t.X)
		if dx := t.X - d.downX; dx > d.Slop || -dx > d.Slop {
			d.moved = true
		}
		if !d.moved {
			break
		}
		v := d.tracker.Velocity()
		if v < d.MinVelocity && -v < d.MinVelocity {
			break
		}
		if limit := d.MaxVelocity; limit > 0 {
			if v > limit {
				v = limit
			} else if v < -limit {
				v = -limit
			}
		}
		return v, true
	case drawer.TouchCancel:
		d.active = false
	}
	return 0, false
}
