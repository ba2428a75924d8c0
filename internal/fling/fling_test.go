// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"testing"
	"time"

	"gioui.org/unit"

	"github.com/slidingmenu/slidingmenu/drawer"
)

func TestTrackerConstantVelocity(t *testing.T) {
	var tr Tracker
	// 2000 px/s, sampled every 8ms.
	for i := 0; i < 30; i++ {
		at := time.Duration(i) * 8 * time.Millisecond
		tr.Sample(at, 2*float32(at.Milliseconds()))
	}
	if got := tr.Velocity(); math.Abs(float64(got-2000)) > 1 {
		t.Errorf("velocity: got %v, want 2000", got)
	}
}

func TestTrackerIgnoresStaleSamples(t *testing.T) {
	var tr Tracker
	// A fast movement followed by a long pause and a slow one.
	tr.Sample(0, 0)
	tr.Sample(10*time.Millisecond, 100)
	tr.Sample(500*time.Millisecond, 100)
	tr.Sample(550*time.Millisecond, 105)
	if got := tr.Velocity(); math.Abs(float64(got-100)) > 1 {
		t.Errorf("velocity: got %v, want 100", got)
	}
}

func TestTrackerNeedsTwoSamples(t *testing.T) {
	var tr Tracker
	if got := tr.Velocity(); got != 0 {
		t.Errorf("empty tracker velocity %v", got)
	}
	tr.Sample(0, 10)
	if got := tr.Velocity(); got != 0 {
		t.Errorf("single sample velocity %v", got)
	}
}

func swipe(d *Detector, from, to float32, dur time.Duration) (float32, bool) {
	const steps = 10
	d.Fling(drawer.Touch{Kind: drawer.TouchDown, X: from})
	for i := 1; i < steps; i++ {
		f := float32(i) / steps
		d.Fling(drawer.Touch{
			Kind: drawer.TouchMove,
			X:    from + (to-from)*f,
			Time: time.Duration(float32(dur) * f),
		})
	}
	return d.Fling(drawer.Touch{Kind: drawer.TouchUp, X: to, Time: dur})
}

func TestDetector(t *testing.T) {
	m := unit.Metric{PxPerDp: 2, PxPerSp: 2}
	for _, tc := range []struct {
		name     string
		from, to float32
		dur      time.Duration
		fling    bool
		positive bool
	}{
		{name: "fast right", from: 10, to: 210, dur: 80 * time.Millisecond, fling: true, positive: true},
		{name: "fast left", from: 300, to: 100, dur: 80 * time.Millisecond, fling: true},
		{name: "slow drag", from: 10, to: 60, dur: 2 * time.Second},
		{name: "tap", from: 10, to: 12, dur: 10 * time.Millisecond},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDetector(m, 0, 0)
			v, ok := swipe(d, tc.from, tc.to, tc.dur)
			if ok != tc.fling {
				t.Fatalf("fling: got %v (velocity %v), want %v", ok, v, tc.fling)
			}
			if ok && (v > 0) != tc.positive {
				t.Errorf("velocity sign: got %v", v)
			}
		})
	}
}

func TestDetectorCapsVelocity(t *testing.T) {
	d := NewDetector(unit.Metric{PxPerDp: 1, PxPerSp: 1}, 50, 1000)
	v, ok := swipe(d, 0, 400, 20*time.Millisecond)
	if !ok || v != 1000 {
		t.Errorf("got velocity %v fling %v, want 1000 true", v, ok)
	}
}

func TestDetectorCancel(t *testing.T) {
	d := NewDetector(unit.Metric{PxPerDp: 1, PxPerSp: 1}, 0, 0)
	d.Fling(drawer.Touch{Kind: drawer.TouchDown, X: 0})
	d.Fling(drawer.Touch{Kind: drawer.TouchMove, X: 100, Time: 10 * time.Millisecond})
	d.Fling(drawer.Touch{Kind: drawer.TouchCancel})
	if _, ok := d.Fling(drawer.Touch{Kind: drawer.TouchUp, X: 200, Time: 20 * time.Millisecond}); ok {
		t.Error("release after cancel reported a fling")
	}
}
