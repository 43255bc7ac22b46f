// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/roadspace/xform"
)

// Shape is the tagged-sum contract every concrete solid/surface
// primitive satisfies: it can render itself as a set of local polygons
// (before any affine placement) and accept a Visitor for type-directed
// dispatch without a deep inheritance hierarchy (design note §9).
type Shape interface {
	// PolygonsLocal returns the shape's faces in its own local frame.
	PolygonsLocal() []Polygon3D
	Accept(v Visitor)
}

// Visitor dispatches on the concrete Shape variant. Road-object placement
// (C6) uses this to classify a geometry descriptor into cuboid / rectangle
// / cylinder / circle / outline (§4.4) without type switches scattered
// through the codebase.
type Visitor interface {
	VisitRectangle(Rectangle)
	VisitCircle(Circle)
	VisitCylinder(Cylinder)
	VisitCuboid(Cuboid)
	VisitSweep(Sweep)
	VisitOutline(Outline)
}

// Rectangle is an axis-aligned rectangle in the local XY plane, centred
// at the origin.
type Rectangle struct {
	Length, Width float64
}

func (r Rectangle) Accept(v Visitor) { v.VisitRectangle(r) }

func (r Rectangle) PolygonsLocal() []Polygon3D {
	hl, hw := r.Length/2, r.Width/2
	return []Polygon3D{{Vertices: []Vector3D{
		{-hl, -hw, 0}, {hl, -hw, 0}, {hl, hw, 0}, {-hl, hw, 0},
	}}}
}

// Circle is discretised into CircleSlices (>=3) equal sectors around the
// local origin in the XY plane.
type Circle struct {
	Radius       float64
	CircleSlices int
}

func (c Circle) Accept(v Visitor) { v.VisitCircle(c) }

func (c Circle) PolygonsLocal() []Polygon3D {
	n := c.CircleSlices
	if n < 3 {
		n = 3
	}
	verts := make([]Vector3D, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		verts[i] = Vector3D{c.Radius * math.Cos(theta), c.Radius * math.Sin(theta), 0}
	}
	return []Polygon3D{{Vertices: verts}}
}

// Cylinder is a Circle swept along Z over [0, Height], discretised into
// top/bottom caps plus CircleSlices side quads.
type Cylinder struct {
	Radius       float64
	Height       float64
	CircleSlices int
}

func (c Cylinder) Accept(v Visitor) { v.VisitCylinder(c) }

func (c Cylinder) PolygonsLocal() []Polygon3D {
	n := c.CircleSlices
	if n < 3 {
		n = 3
	}
	bottom := Circle{c.Radius, n}.PolygonsLocal()[0]
	top := bottom.Transform(xform.Translation3D(xform.Vec{0, 0, c.Height}))
	polys := []Polygon3D{bottom.Reversed(), top}
	bv, tv := bottom.Vertices, top.Vertices
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		polys = append(polys, Quad(bv[i], bv[j], tv[j], tv[i]))
	}
	return polys
}

// Cuboid is an axis-aligned box centred at the local origin, the
// classification target for a road object with length+width+height (§4.4).
type Cuboid struct {
	Length, Width, Height float64
}

func (c Cuboid) Accept(v Visitor) { v.VisitCuboid(c) }

func (c Cuboid) PolygonsLocal() []Polygon3D {
	hl, hw, hh := c.Length/2, c.Width/2, c.Height/2
	v := func(x, y, z float64) Vector3D { return Vector3D{x, y, z} }
	bottom := []Vector3D{v(-hl, -hw, -hh), v(hl, -hw, -hh), v(hl, hw, -hh), v(-hl, hw, -hh)}
	top := []Vector3D{v(-hl, -hw, hh), v(hl, -hw, hh), v(hl, hw, hh), v(-hl, hw, hh)}
	polys := []Polygon3D{
		{Vertices: bottom}.Reversed(),
		{Vertices: top},
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		polys = append(polys, Quad(bottom[i], bottom[j], top[j], top[i]))
	}
	return polys
}

// Sweep is a profile (a closed 2-D polyline, e.g. a barrier cross
// section) extruded along a sequence of 3-D frames (one per sample of a
// §4.4 repeat element); each consecutive pair of frames contributes one
// ring of side quads, connected exactly like the discretiser's lateral
// filler quads (§4.5).
type Sweep struct {
	ProfileLocal []Vector2D  // closed cross-section in the profile's own (u, v) plane
	Frames       []Pose3D    // frame at each longitudinal sample
	ScaleU       []float64   // per-frame profile scale along u (e.g. width taper)
	ScaleV       []float64   // per-frame profile scale along v (e.g. height taper)
}

func (s Sweep) Accept(v Visitor) { v.VisitSweep(s) }

func (s Sweep) PolygonsLocal() []Polygon3D {
	if len(s.Frames) < 2 || len(s.ProfileLocal) < 3 {
		return nil
	}
	rings := make([][]Vector3D, len(s.Frames))
	for k, frame := range s.Frames {
		su, sv := 1.0, 1.0
		if k < len(s.ScaleU) {
			su = s.ScaleU[k]
		}
		if k < len(s.ScaleV) {
			sv = s.ScaleV[k]
		}
		ring := make([]Vector3D, len(s.ProfileLocal))
		aff := frame.Affine()
		for i, uv := range s.ProfileLocal {
			local := Vector3D{uv.X * su, uv.Y * sv, 0}
			ring[i] = Vector3DFromVec(aff.TransformPoint(local.ToVec()))
		}
		rings[k] = ring
	}
	var polys []Polygon3D
	n := len(s.ProfileLocal)
	for k := 0; k < len(rings)-1; k++ {
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			polys = append(polys, Quad(rings[k][i], rings[k][j], rings[k+1][j], rings[k+1][i]))
		}
	}
	return polys
}

// Outline is a road object expressed directly as a closed polyhedron
// (road-corner or local-corner outline, §4.4) rather than a parametric
// primitive; it carries one or more rings (e.g. a building footprint with
// a flat roof contributes a bottom and a top ring).
type Outline struct {
	Rings []Polygon3D
}

func (o Outline) Accept(v Visitor) { v.VisitOutline(o) }

func (o Outline) PolygonsLocal() []Polygon3D { return o.Rings }
