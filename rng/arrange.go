// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rng

import "math"

// Arrange produces the strictly increasing array lower, lower+step,
// lower+2*step, ... within the range. If includeEnd is true and the last
// generated sample is further than tol from the upper bound, the upper
// bound is appended. An empty range (including one with Hi below Lo)
// yields an empty array; a single-point range yields [point] if
// includeEnd, else an empty array.
func (r Range) Arrange(step float64, includeEnd bool, tol float64) []float64 {
	if r.IsEmpty() || r.Lo.Kind == None || r.Hi.Kind == None {
		return nil
	}
	lo, hi := r.Lo.Value, r.Hi.Value
	if lo == hi {
		if includeEnd {
			return []float64{lo}
		}
		return nil
	}
	if step <= 0 {
		return nil
	}
	dir := 1.0
	if hi < lo {
		dir = -1.0
	}
	length := math.Abs(hi - lo)
	n := int(math.Floor(length/step + 1e-12))
	out := make([]float64, 0, n+2)
	for k := 0; k <= n; k++ {
		x := lo + dir*step*float64(k)
		out = append(out, x)
	}
	if includeEnd {
		if len(out) == 0 || math.Abs(out[len(out)-1]-hi) > tol {
			out = append(out, hi)
		}
	}
	return out
}
