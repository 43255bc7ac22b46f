// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"sort"

	"github.com/cpmech/roadspace/geom"
	"github.com/cpmech/roadspace/heal"
	"github.com/cpmech/roadspace/rng"
	"github.com/cpmech/roadspace/xform"
)

// CompositeMember is one segment of a Composite2D together with its
// absolute start offset along the composite's own domain.
type CompositeMember struct {
	Curve Curve2D
	Start float64
}

// Composite2D stitches an ordered list of member curves end to end
// (§4.2), dispatching PoseLocal(s) to whichever member's domain (shifted
// by its absolute Start) fuzzily contains s.
type Composite2D struct {
	Base2D
	members []CompositeMember
}

// NewComposite2D validates contiguity between consecutive members and
// builds the stitched curve. Gaps and overlaps up to tol are accepted
// silently (they are within the ambient tolerance). Overlaps strictly
// between tol and 2*tol are healed by shrinking the earlier member's
// domain upper bound to meet the next member's start, and recorded as a
// WARNING heal.Issue (§9 open question: resolved in favour of healing
// small overlaps rather than rejecting the whole composite). Anything
// larger — a real gap, or an overlap of 2*tol or more — is a structural
// error the caller must reject, since shrinking would silently discard
// a non-negligible portion of a member's geometry.
func NewComposite2D(members []CompositeMember, tol float64, affines xform.AffineSequence2D, location string) (Composite2D, []heal.Issue, error) {
	var issues []heal.Issue
	if len(members) == 0 {
		return Composite2D{}, nil, errDegenerate("composite curve must have at least one member")
	}
	sorted := append([]CompositeMember{}, members...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	for i := 0; i < len(sorted)-1; i++ {
		cur := &sorted[i]
		next := sorted[i+1]
		curEnd := cur.Start + cur.Curve.Length()
		nextStart := next.Start
		overlap := curEnd - nextStart
		switch {
		case overlap < -tol:
			return Composite2D{}, issues, errDegenerate("composite members leave a gap of more than tol; not contiguous")
		case overlap <= tol:
			// gap or negligible overlap within tolerance: fine as-is.
		case overlap < 2*tol:
			shrinkBy := overlap
			cur.Curve = shrinkDomain(cur.Curve, shrinkBy)
			issues = append(issues, heal.Issue{
				Code:     "composite.seam.overlap",
				Severity: heal.Warning,
				Location: location,
				Message:  "adjacent members overlap by more than tol; earlier member's domain shrunk to stitch exactly",
				WasFixed: true,
			})
		default:
			return Composite2D{}, issues, errDegenerate("composite members overlap by more than 2*tol; cannot be healed")
		}
	}

	total := sorted[len(sorted)-1].Start + sorted[len(sorted)-1].Curve.Length()
	c := Composite2D{
		Base2D:  Base2D{D: rng.Closed(0, total), Tol: tol, AffineSeq: affines},
		members: sorted,
	}
	return c, issues, nil
}

// shrinkDomain returns a curve identical to c but with its local domain's
// upper bound reduced by delta. Every concrete Curve2D variant in this
// package is a value type embedding Base2D, so this is implemented per
// dynamic type rather than via a generic domain setter on the interface.
func shrinkDomain(c Curve2D, delta float64) Curve2D {
	switch v := c.(type) {
	case Line:
		v.D = shrinkRange(v.D, delta)
		return v
	case Arc:
		v.D = shrinkRange(v.D, delta)
		return v
	case Spiral:
		v.D = shrinkRange(v.D, delta)
		return v
	case CubicPoly:
		v.D = shrinkRange(v.D, delta)
		return v
	case ParamCubic:
		v.D = shrinkRange(v.D, delta)
		return v
	}
	return c
}

func shrinkRange(d rng.Range, delta float64) rng.Range {
	d.Hi.Value -= delta
	return d
}

// select_ returns the member whose shifted domain fuzzily contains s,
// preferring the later member at a shared boundary (consistent with
// member domains being right-open except for the final member, per
// §4.3 step 1).
func (c Composite2D) select_(s float64) (CompositeMember, float64, error) {
	n := len(c.members)
	idx := sort.Search(n, func(i int) bool {
		m := c.members[i]
		return s < m.Start+m.Curve.Length()-c.Tol
	})
	if idx < n {
		m := c.members[idx]
		local := s - m.Start
		if m.Curve.Domain().FuzzyContains(local, c.Tol) {
			return m, local, nil
		}
	}
	for i := n - 1; i >= 0; i-- {
		m := c.members[i]
		local := s - m.Start
		if m.Curve.Domain().FuzzyContains(local, c.Tol) {
			return m, local, nil
		}
	}
	return CompositeMember{}, 0, errOutOfDomain(s, c.D)
}

func (c Composite2D) PoseLocal(s float64) (geom.Pose2D, error) {
	if !c.D.FuzzyContains(s, c.Tol) {
		return geom.Pose2D{}, errOutOfDomain(s, c.D)
	}
	m, local, err := c.select_(s)
	if err != nil {
		return geom.Pose2D{}, err
	}
	// Each member carries its own affine placing it at its plan-view
	// anchor (x, y, heading); PoseGlobal resolves that placement, which
	// becomes this composite's local frame. The composite's own Affines
	// (typically identity) chain on top of that in PoseGlobal2D.
	p, err := m.Curve.PoseGlobal(local)
	if err != nil {
		return geom.Pose2D{}, errUpstream(err.Error())
	}
	return p, nil
}

func (c Composite2D) PoseGlobal(s float64) (geom.Pose2D, error) {
	return PoseGlobal2D(c, s)
}

// Members returns the stitched members in ascending-start order.
func (c Composite2D) Members() []CompositeMember { return c.members }
