// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"

	"github.com/cpmech/roadspace/geom"
	"github.com/cpmech/roadspace/numfn"
	"github.com/cpmech/roadspace/rng"
)

// Planar3D lifts a Curve2D reference curve into 3-D by adding an
// elevation function h(s) and a super-elevation (cross-slope) function
// r(s), both evaluated in the planar curve's own station (§3: pose
// heading becomes (heading(s), pitch=atan(h'(s)), roll=r(s))).
// SuperElevation is optional; a nil value yields zero roll everywhere.
type Planar3D struct {
	Plane          Curve2D
	Elevation      numfn.Function
	SuperElevation numfn.Function
}

func (c Planar3D) Domain() rng.Range  { return c.Plane.Domain() }
func (c Planar3D) Tolerance() float64 { return c.Plane.Tolerance() }
func (c Planar3D) Length() float64    { return c.Plane.Length() }

func (c Planar3D) poseAt(s float64, global bool) (geom.Pose3D, error) {
	var p2 geom.Pose2D
	var err error
	if global {
		p2, err = c.Plane.PoseGlobal(s)
	} else {
		p2, err = c.Plane.PoseLocal(s)
	}
	if err != nil {
		return geom.Pose3D{}, err
	}
	tol := c.Tolerance()
	elev, err := c.Elevation.ValueFuzzy(s, tol)
	if err != nil {
		return geom.Pose3D{}, errUpstream(err.Error())
	}
	slope, err := c.Elevation.Slope(s)
	if err != nil {
		// slope is only used for pitch; fall back to zero pitch rather
		// than failing the whole pose when only the derivative is
		// unavailable at a domain edge.
		slope = 0
	}
	pitch := math.Atan(slope)
	var roll float64
	if c.SuperElevation != nil {
		roll, err = c.SuperElevation.ValueFuzzy(s, tol)
		if err != nil {
			// same fallback as pitch: a roll sample failure at a domain
			// edge degrades to flat rather than failing the whole pose.
			roll = 0
		}
	}
	return p2.To3D(elev, pitch, roll), nil
}

func (c Planar3D) PoseLocal(s float64) (geom.Pose3D, error)  { return c.poseAt(s, false) }
func (c Planar3D) PoseGlobal(s float64) (geom.Pose3D, error) { return c.poseAt(s, true) }
