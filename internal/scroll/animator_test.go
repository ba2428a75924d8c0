// SPDX-License-Identifier: Unlicense OR MIT

package scroll

import (
	"testing"
	"time"
)

func TestScrollToImmediate(t *testing.T) {
	var changes []int
	a := &Animator{Max: 300, OnChange: func(x int) { changes = append(changes, x) }}
	a.ScrollTo(300)
	a.ScrollTo(300)
	a.ScrollTo(900)
	a.ScrollTo(-5)
	if got := a.ScrollX(); got != 0 {
		t.Errorf("offset: got %d, want 0", got)
	}
	want := []int{300, 0}
	if len(changes) != len(want) {
		t.Fatalf("changes: got %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("changes: got %v, want %v", changes, want)
		}
	}
}

func TestSmoothScrollConverges(t *testing.T) {
	var last int
	calls := 0
	a := &Animator{Max: 300, Duration: 200 * time.Millisecond}
	a.ScrollTo(300)
	a.OnChange = func(x int) {
		if x > last && calls > 0 {
			t.Errorf("offset moved backwards: %d after %d", x, last)
		}
		last = x
		calls++
	}
	a.SmoothScrollTo(0)
	if !a.Active() || a.Target() != 0 {
		t.Fatal("animation not started")
	}
	start := time.Unix(100, 0)
	now := start
	for i := 0; a.Tick(now); i++ {
		if i > 100 {
			t.Fatal("animation did not finish")
		}
		now = now.Add(16 * time.Millisecond)
	}
	if a.ScrollX() != 0 {
		t.Errorf("settled at %d, want 0", a.ScrollX())
	}
	if calls < 5 {
		t.Errorf("only %d offset changes during the animation", calls)
	}
	if d := now.Sub(start); d < 200*time.Millisecond || d > 250*time.Millisecond {
		t.Errorf("animation took %v", d)
	}
}

func TestSmoothScrollRetarget(t *testing.T) {
	a := &Animator{Max: 300}
	a.ScrollTo(300)
	a.SmoothScrollTo(0)
	now := time.Unix(0, 0)
	a.Tick(now)
	now = now.Add(50 * time.Millisecond)
	a.Tick(now)
	mid := a.ScrollX()
	if mid <= 0 || mid >= 300 {
		t.Fatalf("offset %d not mid-flight", mid)
	}
	a.SmoothScrollTo(300)
	if a.Target() != 300 {
		t.Fatalf("target: got %d, want 300", a.Target())
	}
	for a.Tick(now) {
		now = now.Add(10 * time.Millisecond)
	}
	if a.ScrollX() != 300 {
		t.Errorf("settled at %d, want 300", a.ScrollX())
	}
}

func TestScrollToStopsAnimation(t *testing.T) {
	a := &Animator{Max: 300}
	a.SmoothScrollTo(300)
	a.ScrollTo(120)
	if a.Active() {
		t.Error("ScrollTo did not stop the animation")
	}
	if a.Tick(time.Unix(0, 0)) {
		t.Error("Tick requested frames without an animation")
	}
	if a.ScrollX() != 120 {
		t.Errorf("offset: got %d, want 120", a.ScrollX())
	}
}

func TestSmoothScrollToCurrentIsNoop(t *testing.T) {
	a := &Animator{Max: 300}
	a.ScrollTo(300)
	a.SmoothScrollTo(300)
	if a.Active() {
		t.Error("animation started towards the current offset")
	}
}
