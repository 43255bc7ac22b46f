// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rng

import "sort"

// RangeSet is a disjoint union of Ranges, kept sorted and normalised
// (touching or overlapping members are merged) after every mutation.
type RangeSet struct {
	ranges []Range
}

// NewRangeSet builds a normalised RangeSet from the given ranges.
func NewRangeSet(ranges ...Range) *RangeSet {
	s := &RangeSet{}
	for _, r := range ranges {
		s.union1(r)
	}
	return s
}

// Ranges returns the normalised, sorted member ranges (read-only view).
func (s *RangeSet) Ranges() []Range {
	return s.ranges
}

// Union adds o's ranges into the set, merging overlaps.
func (s *RangeSet) Union(o *RangeSet) {
	for _, r := range o.ranges {
		s.union1(r)
	}
}

func (s *RangeSet) union1(r Range) {
	if r.IsEmpty() {
		return
	}
	merged := []Range{r}
	kept := s.ranges[:0:0]
	for _, e := range s.ranges {
		if e.IsConnected(r) || !e.Intersection(r).IsEmpty() {
			merged[0] = merged[0].Span(e)
		} else {
			kept = append(kept, e)
		}
	}
	kept = append(kept, merged[0])
	sort.Slice(kept, func(i, j int) bool {
		return lowerValue(kept[i]) < lowerValue(kept[j])
	})
	s.ranges = kept
}

func lowerValue(r Range) float64 {
	if r.Lo.Kind == None {
		return negInf
	}
	return r.Lo.Value
}

const negInf = -1e300 // effectively -infinity for ordering purposes only

// Intersection returns a new RangeSet containing the overlap of s and o.
func (s *RangeSet) Intersection(o *RangeSet) *RangeSet {
	out := &RangeSet{}
	for _, a := range s.ranges {
		for _, b := range o.ranges {
			i := a.Intersection(b)
			if !i.IsEmpty() {
				out.union1(i)
			}
		}
	}
	return out
}

// Difference returns s minus every range in o.
func (s *RangeSet) Difference(o *RangeSet) *RangeSet {
	remaining := append([]Range{}, s.ranges...)
	for _, b := range o.ranges {
		var next []Range
		for _, a := range remaining {
			next = append(next, subtract(a, b)...)
		}
		remaining = next
	}
	out := &RangeSet{}
	for _, r := range remaining {
		out.union1(r)
	}
	return out
}

func subtract(a, b Range) []Range {
	i := a.Intersection(b)
	if i.IsEmpty() {
		return []Range{a}
	}
	var out []Range
	// left remainder: a.Lo .. i.Lo
	if i.Lo.Kind != None || a.Lo.Kind != None {
		left := Range{Lo: a.Lo, Hi: flipBound(i.Lo)}
		if !left.IsEmpty() {
			out = append(out, left)
		}
	}
	// right remainder: i.Hi .. a.Hi
	if i.Hi.Kind != None || a.Hi.Kind != None {
		right := Range{Lo: flipBound(i.Hi), Hi: a.Hi}
		if !right.IsEmpty() {
			out = append(out, right)
		}
	}
	return out
}

func flipBound(b Bound) Bound {
	switch b.Kind {
	case Open:
		return Bound{BoundClosed, b.Value}
	case BoundClosed:
		return Bound{Open, b.Value}
	}
	return b
}

// Contains reports whether x is in any member range.
func (s *RangeSet) Contains(x float64) bool {
	for _, r := range s.ranges {
		if r.Contains(x) {
			return true
		}
	}
	return false
}
