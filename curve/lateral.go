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

// LateralTranslated adaptor wraps a base curve and offsets every pose by
// t(s) along the base curve's local left-hand normal, per §3/§4.2's
// lane-reference-curve construction: a lane boundary or lane centre is
// never itself a stored curve, only a lateral translation of the road's
// reference curve by an offset function evaluated in road-station.
// Heading is unchanged by the translation (the normal offset does not
// rotate the tangent direction).
type LateralTranslated struct {
	Base   Curve2D
	Offset func(s float64) (float64, error)
}

func (l LateralTranslated) Domain() rng.Range                 { return l.Base.Domain() }
func (l LateralTranslated) Tolerance() float64                { return l.Base.Tolerance() }
func (l LateralTranslated) Length() float64                   { return l.Base.Length() }
func (l LateralTranslated) Affines() xform.AffineSequence2D     { return l.Base.Affines() }

func (l LateralTranslated) PoseLocal(s float64) (geom.Pose2D, error) {
	base, err := l.Base.PoseLocal(s)
	if err != nil {
		return geom.Pose2D{}, err
	}
	t, err := l.Offset(s)
	if err != nil {
		return geom.Pose2D{}, errUpstream(err.Error())
	}
	tangent := geom.Vector2D{X: math.Cos(base.Heading), Y: math.Sin(base.Heading)}
	normal := tangent.Perp()
	pos := base.Position.Add(normal.Scale(t))
	return geom.Pose2D{Position: pos, Heading: base.Heading}, nil
}

func (l LateralTranslated) PoseGlobal(s float64) (geom.Pose2D, error) {
	base, err := l.Base.PoseGlobal(s)
	if err != nil {
		return geom.Pose2D{}, err
	}
	t, err := l.Offset(s)
	if err != nil {
		return geom.Pose2D{}, errUpstream(err.Error())
	}
	tangent := geom.Vector2D{X: math.Cos(base.Heading), Y: math.Sin(base.Heading)}
	normal := tangent.Perp()
	pos := base.Position.Add(normal.Scale(t))
	return geom.Pose2D{Position: pos, Heading: base.Heading}, nil
}
