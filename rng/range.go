// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rng

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// BoundKind is the kind of a Range endpoint.
type BoundKind int

const (
	// Open means the bound value itself is excluded.
	Open BoundKind = iota
	// BoundClosed means the bound value itself is included.
	BoundClosed
	// None means the bound is unbounded (±infinity).
	None
)

// Bound is one endpoint of a Range.
type Bound struct {
	Kind  BoundKind
	Value float64 // ignored when Kind == None
}

// Range is an interval with independently typed lower and upper bounds.
// Empty ranges (Lo above Hi, or a half-open point range) are permitted.
type Range struct {
	Lo Bound
	Hi Bound
}

// Closed builds a Range that is closed on both ends: [lo, hi].
func Closed(lo, hi float64) Range {
	return Range{Bound{BoundClosed, lo}, Bound{BoundClosed, hi}}
}

// LeftOpen builds a Range open at the lower end: (lo, hi].
func LeftOpen(lo, hi float64) Range {
	return Range{Bound{Open, lo}, Bound{BoundClosed, hi}}
}

// RightOpen builds a Range open at the upper end: [lo, hi).
func RightOpen(lo, hi float64) Range {
	return Range{Bound{BoundClosed, lo}, Bound{Open, hi}}
}

// OpenRange builds a Range open on both ends: (lo, hi).
func OpenRange(lo, hi float64) Range {
	return Range{Bound{Open, lo}, Bound{Open, hi}}
}

// Unbounded returns (-inf, +inf).
func Unbounded() Range {
	return Range{Bound{Kind: None}, Bound{Kind: None}}
}

// IsEmpty reports whether the range contains no point at all. A range
// with both bounds at the same value is empty unless both are BoundClosed.
func (r Range) IsEmpty() bool {
	if r.Lo.Kind == None || r.Hi.Kind == None {
		return false
	}
	if r.Lo.Value > r.Hi.Value {
		return true
	}
	if r.Lo.Value == r.Hi.Value {
		return !(r.Lo.Kind == BoundClosed && r.Hi.Kind == BoundClosed)
	}
	return false
}

// Length returns Hi-Lo, or +Inf if unbounded on either side, or 0 if empty.
func (r Range) Length() float64 {
	if r.IsEmpty() {
		return 0
	}
	if r.Lo.Kind == None || r.Hi.Kind == None {
		return math.Inf(1)
	}
	return r.Hi.Value - r.Lo.Value
}

// Contains reports whether x lies within the range, honouring open/closed
// bound semantics exactly (no tolerance).
func (r Range) Contains(x float64) bool {
	if r.IsEmpty() {
		return false
	}
	if r.Lo.Kind != None {
		if r.Lo.Kind == Open && x <= r.Lo.Value {
			return false
		}
		if r.Lo.Kind == BoundClosed && x < r.Lo.Value {
			return false
		}
	}
	if r.Hi.Kind != None {
		if r.Hi.Kind == Open && x >= r.Hi.Value {
			return false
		}
		if r.Hi.Kind == BoundClosed && x > r.Hi.Value {
			return false
		}
	}
	return true
}

// FuzzyContains reports whether x lies within the range once the range
// has been widened by tol on each bounded side. This is the primitive
// that lets composite-curve member selection succeed at exact segment
// boundaries despite accumulated floating-point error.
func (r Range) FuzzyContains(x, tol float64) bool {
	if r.IsEmpty() {
		return false
	}
	if r.Lo.Kind != None && x < r.Lo.Value-tol {
		return false
	}
	if r.Hi.Kind != None && x > r.Hi.Value+tol {
		return false
	}
	return true
}

// ContainsResult is the Result-carrying form of FuzzyContains, letting a
// caller propagate an OutOfDomain failure instead of branching on a bool.
func (r Range) ContainsResult(x, tol float64) error {
	if r.FuzzyContains(x, tol) {
		return nil
	}
	return chk.Err("value %v is out of range [%v, %v] (tol=%v)", x, r.Lo.Value, r.Hi.Value, tol)
}

// IsConnected reports whether r and o share at least one point or touch
// exactly at a shared bound that is closed on at least one side.
func (r Range) IsConnected(o Range) bool {
	return !r.Intersection(o).IsEmpty() || touches(r, o) || touches(o, r)
}

func touches(a, b Range) bool {
	if a.Hi.Kind == None || b.Lo.Kind == None {
		return false
	}
	return a.Hi.Value == b.Lo.Value && (a.Hi.Kind == BoundClosed || b.Lo.Kind == BoundClosed)
}

// Encloses reports whether every point of o is also a point of r.
func (r Range) Encloses(o Range) bool {
	if o.IsEmpty() {
		return true
	}
	if r.Lo.Kind != None {
		if o.Lo.Kind == None {
			return false
		}
		if o.Lo.Value < r.Lo.Value {
			return false
		}
		if o.Lo.Value == r.Lo.Value && o.Lo.Kind == Open && r.Lo.Kind == BoundClosed {
			// o excludes the shared point; r includes it -> still enclosed
		}
		if o.Lo.Value == r.Lo.Value && r.Lo.Kind == Open && o.Lo.Kind == BoundClosed {
			return false
		}
	}
	if r.Hi.Kind != None {
		if o.Hi.Kind == None {
			return false
		}
		if o.Hi.Value > r.Hi.Value {
			return false
		}
		if o.Hi.Value == r.Hi.Value && r.Hi.Kind == Open && o.Hi.Kind == BoundClosed {
			return false
		}
	}
	return true
}

// FuzzyEncloses is Encloses with both bounds of r widened by tol.
func (r Range) FuzzyEncloses(o Range, tol float64) bool {
	return r.Widen(tol).Encloses(o)
}

// Intersection returns the (possibly empty) overlap of r and o.
func (r Range) Intersection(o Range) Range {
	lo := maxBound(r.Lo, o.Lo, true)
	hi := maxBound(r.Hi, o.Hi, false)
	out := Range{lo, hi}
	if out.IsEmpty() {
		return Range{Bound{BoundClosed, 0}, Bound{Open, 0}}
	}
	return out
}

func maxBound(a, b Bound, lower bool) Bound {
	if a.Kind == None {
		return b
	}
	if b.Kind == None {
		return a
	}
	if lower {
		if a.Value > b.Value {
			return a
		}
		if b.Value > a.Value {
			return b
		}
		if a.Kind == Open || b.Kind == Open {
			return Bound{Open, a.Value}
		}
		return a
	}
	if a.Value < b.Value {
		return a
	}
	if b.Value < a.Value {
		return b
	}
	if a.Kind == Open || b.Kind == Open {
		return Bound{Open, a.Value}
	}
	return a
}

// Span returns the smallest range enclosing both r and o.
func (r Range) Span(o Range) Range {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	lo := minBound(r.Lo, o.Lo)
	hi := maxSpanBound(r.Hi, o.Hi)
	return Range{lo, hi}
}

func minBound(a, b Bound) Bound {
	if a.Kind == None || b.Kind == None {
		return Bound{Kind: None}
	}
	if a.Value < b.Value {
		return a
	}
	if b.Value < a.Value {
		return b
	}
	if a.Kind == BoundClosed || b.Kind == BoundClosed {
		return Bound{BoundClosed, a.Value}
	}
	return a
}

func maxSpanBound(a, b Bound) Bound {
	if a.Kind == None || b.Kind == None {
		return Bound{Kind: None}
	}
	if a.Value > b.Value {
		return a
	}
	if b.Value > a.Value {
		return b
	}
	if a.Kind == BoundClosed || b.Kind == BoundClosed {
		return Bound{BoundClosed, a.Value}
	}
	return a
}

// Shift translates both bounds by delta.
func (r Range) Shift(delta float64) Range {
	o := r
	if o.Lo.Kind != None {
		o.Lo.Value += delta
	}
	if o.Hi.Kind != None {
		o.Hi.Value += delta
	}
	return o
}

// Widen expands a bounded side outward by tol (inward if tol is negative).
func (r Range) Widen(tol float64) Range {
	o := r
	if o.Lo.Kind != None {
		o.Lo.Value -= tol
	}
	if o.Hi.Kind != None {
		o.Hi.Value += tol
	}
	return o
}
