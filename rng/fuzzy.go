// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng implements tolerance-based real-number comparisons and
// interval (range) arithmetic. Every geometric predicate that compares
// two doubles anywhere in this module is expected to go through the
// Fuzzy* helpers here rather than a raw ==/< comparison.
package rng

import "math"

// FuzzyEquals reports whether a and b differ by no more than tol.
func FuzzyEquals(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// FuzzyLessOrEqual reports whether a <= b, allowing a to exceed b by up
// to tol (i.e. treats a and b within tol as equal).
func FuzzyLessOrEqual(a, b, tol float64) bool {
	return a <= b || FuzzyEquals(a, b, tol)
}

// FuzzyGreaterOrEqual reports whether a >= b within tol.
func FuzzyGreaterOrEqual(a, b, tol float64) bool {
	return a >= b || FuzzyEquals(a, b, tol)
}
