// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"github.com/cpmech/roadspace/geom"
	"github.com/cpmech/roadspace/rng"
	"github.com/cpmech/roadspace/xform"
)

// Sectioned adaptor re-parameterises a sub-interval [Start, Start+Len] of
// a base curve so that it runs from 0 to Len, used when a lane section
// needs its own local station while sharing the road's reference curve
// (§4.3).
type Sectioned struct {
	Base  Curve2D
	Start float64
	Len   float64
}

// NewSectioned builds a Sectioned adaptor over base's domain
// [start, start+length].
func NewSectioned(base Curve2D, start, length float64) Sectioned {
	return Sectioned{Base: base, Start: start, Len: length}
}

func (s Sectioned) Domain() rng.Range             { return rng.Closed(0, s.Len) }
func (s Sectioned) Tolerance() float64            { return s.Base.Tolerance() }
func (s Sectioned) Length() float64               { return s.Len }
func (s Sectioned) Affines() xform.AffineSequence2D { return s.Base.Affines() }

func (s Sectioned) PoseLocal(sLocal float64) (geom.Pose2D, error) {
	if !s.Domain().FuzzyContains(sLocal, s.Tolerance()) {
		return geom.Pose2D{}, errOutOfDomain(sLocal, s.Domain())
	}
	return s.Base.PoseLocal(s.Start + sLocal)
}

func (s Sectioned) PoseGlobal(sLocal float64) (geom.Pose2D, error) {
	if !s.Domain().FuzzyContains(sLocal, s.Tolerance()) {
		return geom.Pose2D{}, errOutOfDomain(sLocal, s.Domain())
	}
	return s.Base.PoseGlobal(s.Start + sLocal)
}
