// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"github.com/cpmech/roadspace/geom"
	"github.com/cpmech/roadspace/rng"
	"github.com/cpmech/roadspace/xform"
)

// Line is a straight segment of the given length, starting at the
// origin with tangent along +x (moved into place by Base2D.AffineSeq).
type Line struct {
	Base2D
}

// NewLine builds a line of the given length over [0, length], closed at
// the upper end unless rightOpen is set (used by the road-space builder
// to make every plan-view member but the last right-open, §4.3 step 1).
func NewLine(length, tol float64, rightOpen bool, affines xform.AffineSequence2D) Line {
	d := rng.Closed(0, length)
	if rightOpen {
		d = rng.RightOpen(0, length)
	}
	return Line{Base2D{D: d, Tol: tol, AffineSeq: affines}}
}

func (l Line) PoseLocal(s float64) (geom.Pose2D, error) {
	if !l.D.FuzzyContains(s, l.Tol) {
		return geom.Pose2D{}, errOutOfDomain(s, l.D)
	}
	return geom.Pose2D{Position: geom.Vector2D{X: s, Y: 0}, Heading: 0}, nil
}

func (l Line) PoseGlobal(s float64) (geom.Pose2D, error) {
	return PoseGlobal2D(l, s)
}
