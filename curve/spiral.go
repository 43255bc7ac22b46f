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

// Spiral is an Euler (clothoid) segment whose curvature is linear in s:
// kappa(s) = StartCurvature + CurvatureSlope*s. It is evaluated as a
// re-based unit spiral (curvature c'*sigma) per §4.2.
type Spiral struct {
	Base2D
	StartCurvature float64 // kappa(0)
	CurvatureSlope float64 // c', rad/m^2, non-zero

	sigma0       float64 // StartCurvature / CurvatureSlope
	offsetPos    geom.Vector2D
	offsetHeading float64
}

// NewSpiral builds a spiral segment from a curvature function that must
// be linear with lower domain endpoint 0 (§4.2): kappa(s) =
// curvatureFn.Intercept + curvatureFn.Gradient*s.
func NewSpiral(curvatureFn numfn.Linear, length, tol float64, affines xform.AffineSequence2D) (Spiral, error) {
	if curvatureFn.D.Lo.Kind == rng.None || curvatureFn.D.Lo.Value != 0 {
		return Spiral{}, errDegenerate("spiral curvature function must have lower domain 0")
	}
	if curvatureFn.Gradient == 0 {
		return Spiral{}, errDegenerate("spiral curvature slope c' must be non-zero")
	}
	if length <= tol {
		return Spiral{}, errDegenerate("spiral length must exceed tolerance")
	}
	s := Spiral{
		Base2D:         Base2D{D: rng.Closed(0, length), Tol: tol, AffineSeq: affines},
		StartCurvature: curvatureFn.Intercept,
		CurvatureSlope: curvatureFn.Gradient,
	}
	s.sigma0 = s.StartCurvature / s.CurvatureSlope
	s.offsetPos, s.offsetHeading = s.unitPose(s.sigma0)
	return s, nil
}

// unitPose evaluates the unit spiral (kappa(sigma) = c'*sigma) at sigma.
func (s Spiral) unitPose(sigma float64) (geom.Vector2D, float64) {
	x, y := fresnelXY(s.CurvatureSlope, sigma)
	heading := s.CurvatureSlope * sigma * sigma / 2
	return geom.Vector2D{X: x, Y: y}, heading
}

func (s Spiral) PoseLocal(sLocal float64) (geom.Pose2D, error) {
	if !s.D.FuzzyContains(sLocal, s.Tol) {
		return geom.Pose2D{}, errOutOfDomain(sLocal, s.D)
	}
	sigma := s.sigma0 + sLocal
	pos, heading := s.unitPose(sigma)
	rel := pos.Sub(s.offsetPos)
	cosA, sinA := math.Cos(-s.offsetHeading), math.Sin(-s.offsetHeading)
	local := geom.Vector2D{
		X: cosA*rel.X - sinA*rel.Y,
		Y: sinA*rel.X + cosA*rel.Y,
	}
	return geom.Pose2D{Position: local, Heading: heading - s.offsetHeading}, nil
}

func (s Spiral) PoseGlobal(sLocal float64) (geom.Pose2D, error) {
	return PoseGlobal2D(s, sLocal)
}

// CurvatureAt returns kappa(s) = StartCurvature + CurvatureSlope*s.
func (s Spiral) CurvatureAt(sLocal float64) float64 {
	return s.StartCurvature + s.CurvatureSlope*sLocal
}
