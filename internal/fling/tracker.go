// SPDX-License-Identifier: Unlicense OR MIT

package fling

import "time"

const (
	// historySize is the number of samples kept for estimation.
	historySize = 20
	// horizon is the age beyond which samples are ignored.
	horizon = 100 * time.Millisecond
)

type sample struct {
	t time.Duration
	v float32
}

// Tracker estimates the velocity of a pointer along one axis from
// timestamped position samples.
type Tracker struct {
	samples [historySize]sample
	// idx is the slot of the next sample.
	idx int
	n   int
}

// Reset discards all samples.
func (tr *Tracker) Reset() {
	*tr = Tracker{}
}

// Sample records the position v at time t. Samples must be added in
// time order.
func (tr *Tracker) Sample(t time.Duration, v float32) {
	tr.samples[tr.idx] = sample{t: t, v: v}
	tr.idx = (tr.idx + 1) % historySize
	if tr.n < historySize {
		tr.n++
	}
}

// Velocity returns the slope of the least squares line through the
// recent samples, in units per second.
func (tr *Tracker) Velocity() float32 {
	if tr.n < 2 {
		return 0
	}
	last := tr.samples[(tr.idx+historySize-1)%historySize]
	var n, sx, sy, sxx, sxy float64
	for i := 0; i < tr.n; i++ {
		s := tr.samples[(tr.idx+historySize-1-i)%historySize]
		age := last.t - s.t
		if age > horizon || age < 0 {
			break
		}
		x := -age.Seconds()
		y := float64(s.v)
		n++
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}
	if n < 2 {
		return 0
	}
	denom := n*sxx - sx*sx
	if denom < 1e-12 {
		return 0
	}
	return float32((n*sxy - sx*sy) / denom)
}
