// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"

	"github.com/cpmech/roadspace/geom"
	"github.com/cpmech/roadspace/rng"
	"github.com/cpmech/roadspace/xform"
)

// Arc is a circular segment of constant signed curvature Curvature != 0,
// starting at the origin with tangent along +x.
type Arc struct {
	Base2D
	Curvature float64 // 1/m, signed; positive curves left
}

// NewArc builds an arc; length and curvature must both be non-zero
// (curvature==0 is GeometryDegenerate — a straight Line should be used
// instead, consistent with invariant 1 and §7's GeometryDegenerate kind).
func NewArc(curvature, length, tol float64, affines xform.AffineSequence2D) (Arc, error) {
	if curvature == 0 {
		return Arc{}, errDegenerate("arc curvature must be non-zero; use Line for straight segments")
	}
	if length <= tol {
		return Arc{}, errDegenerate("arc length must exceed tolerance")
	}
	return Arc{Base2D{D: rng.Closed(0, length), Tol: tol, AffineSeq: affines}, curvature}, nil
}

func (a Arc) radius() float64 { return 1 / math.Abs(a.Curvature) }
func (a Arc) sign() float64 {
	if a.Curvature < 0 {
		return -1
	}
	return 1
}

// Centre returns the arc's centre of curvature in its local frame.
func (a Arc) Centre() geom.Vector2D {
	return geom.Vector2D{X: 0, Y: a.sign() * a.radius()}
}

func (a Arc) PoseLocal(s float64) (geom.Pose2D, error) {
	if !a.D.FuzzyContains(s, a.Tol) {
		return geom.Pose2D{}, errOutOfDomain(s, a.D)
	}
	r := a.radius()
	sgn := a.sign()
	phi := a.Curvature * s
	startAngle := -sgn * math.Pi / 2
	theta := startAngle + phi
	c := a.Centre()
	pos := geom.Vector2D{
		X: c.X + r*math.Cos(theta),
		Y: c.Y + r*math.Sin(theta),
	}
	return geom.Pose2D{Position: pos, Heading: phi}, nil
}

func (a Arc) PoseGlobal(s float64) (geom.Pose2D, error) {
	return PoseGlobal2D(a, s)
}
