// SPDX-License-Identifier: Unlicense OR MIT

// Package bounds restricts values to ranges.
package bounds

import "golang.org/x/exp/constraints"

// Clamp returns v limited to [lo, hi].
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
