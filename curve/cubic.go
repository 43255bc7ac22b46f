// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"

	"github.com/cpmech/roadspace/geom"
	"github.com/cpmech/roadspace/numfn"
	"github.com/cpmech/roadspace/rng"
	"github.com/cpmech/roadspace/xform"
)

// CubicPoly is the "explicit" cubic variant: y(x) = a+bx+cx^2+dx^3, with
// the curve parameter s treated directly as the local x-coordinate (the
// teacher's convention for low-curvature poly3 geometry: arc length is
// approximated by the x-extent, acceptable because poly3 plan-view
// entries are only ever used for gently-curving blends in the source
// formats this kernel targets).
type CubicPoly struct {
	Base2D
	Poly numfn.Polynomial
}

// NewCubicPoly builds an explicit cubic segment of the given x-extent
// (length).
func NewCubicPoly(a, b, c, d, length, tol float64, affines xform.AffineSequence2D) (CubicPoly, error) {
	if length <= tol {
		return CubicPoly{}, errDegenerate("cubic segment length must exceed tolerance")
	}
	poly := numfn.Polynomial{D: rng.Closed(0, length), A: a, B: b, C: c, Dc: d}
	if !poly.IsFinite() {
		return CubicPoly{}, errDegenerate("cubic coefficients must be finite")
	}
	return CubicPoly{Base2D{D: rng.Closed(0, length), Tol: tol, AffineSeq: affines}, poly}, nil
}

func (cp CubicPoly) PoseLocal(s float64) (geom.Pose2D, error) {
	if !cp.D.FuzzyContains(s, cp.Tol) {
		return geom.Pose2D{}, errOutOfDomain(s, cp.D)
	}
	y, err := cp.Poly.ValueFuzzy(s, cp.Tol)
	if err != nil {
		return geom.Pose2D{}, errUpstream(err.Error())
	}
	slope, err := cp.Poly.Slope(clampInto(cp.D, s))
	if err != nil {
		return geom.Pose2D{}, errUpstream(err.Error())
	}
	return geom.Pose2D{Position: geom.Vector2D{X: s, Y: y}, Heading: math.Atan(slope)}, nil
}

func (cp CubicPoly) PoseGlobal(s float64) (geom.Pose2D, error) {
	return PoseGlobal2D(cp, s)
}

func clampInto(d rng.Range, x float64) float64 {
	if d.Lo.Kind != rng.None && x < d.Lo.Value {
		return d.Lo.Value
	}
	if d.Hi.Kind != rng.None && x > d.Hi.Value {
		return d.Hi.Value
	}
	return x
}

// ParamCubic is the "parametric" cubic variant: both coordinates are
// independent cubics in a local parameter p in [0,1], scaled by Length
// to an arc-length-ish curve parameter s = p*Length (the common
// "parampoly3" convention, normalized-parameter range).
type ParamCubic struct {
	Base2D
	U, V numfn.Polynomial // both defined over p in [0,1]
}

func NewParamCubic(uCoef, vCoef [4]float64, length, tol float64, affines xform.AffineSequence2D) (ParamCubic, error) {
	if length <= tol {
		return ParamCubic{}, errDegenerate("param-cubic segment length must exceed tolerance")
	}
	u := numfn.Polynomial{D: rng.Closed(0, 1), A: uCoef[0], B: uCoef[1], C: uCoef[2], Dc: uCoef[3]}
	v := numfn.Polynomial{D: rng.Closed(0, 1), A: vCoef[0], B: vCoef[1], C: vCoef[2], Dc: vCoef[3]}
	if !u.IsFinite() || !v.IsFinite() {
		return ParamCubic{}, errDegenerate("param-cubic coefficients must be finite")
	}
	return ParamCubic{Base2D{D: rng.Closed(0, length), Tol: tol, AffineSeq: affines}, u, v}, nil
}

func (pc ParamCubic) toParam(s float64) float64 {
	if pc.Length() == 0 {
		return 0
	}
	return clampInto(rng.Closed(0, 1), s/pc.Length())
}

func (pc ParamCubic) PoseLocal(s float64) (geom.Pose2D, error) {
	if !pc.D.FuzzyContains(s, pc.Tol) {
		return geom.Pose2D{}, errOutOfDomain(s, pc.D)
	}
	p := pc.toParam(s)
	x, err := pc.U.ValueFuzzy(p, 1e-9)
	if err != nil {
		return geom.Pose2D{}, errUpstream(err.Error())
	}
	y, err := pc.V.ValueFuzzy(p, 1e-9)
	if err != nil {
		return geom.Pose2D{}, errUpstream(err.Error())
	}
	dudp, _ := pc.U.Slope(p)
	dvdp, _ := pc.V.Slope(p)
	heading := math.Atan2(dvdp, dudp)
	return geom.Pose2D{Position: geom.Vector2D{X: x, Y: y}, Heading: heading}, nil
}

func (pc ParamCubic) PoseGlobal(s float64) (geom.Pose2D, error) {
	return PoseGlobal2D(pc, s)
}
