// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"

	"github.com/cpmech/roadspace/xform"
)

// Polygon3D is an ordered list of vertices forming a planar (in the
// valid case) closed ring, traversed so its normal follows the
// right-hand rule.
type Polygon3D struct {
	Vertices []Vector3D
}

// Validate checks invariant 7: no consecutive duplicate vertices (within
// tol), a span dimension of at least 2 (not collinear/coincident), and
// coplanarity within tol.
func (p Polygon3D) Validate(tol float64) error {
	n := len(p.Vertices)
	if n < 3 {
		return fmt.Errorf("polygon needs at least 3 vertices, got %d", n)
	}
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		if a.FuzzyEquals(b, tol) {
			return fmt.Errorf("polygon has consecutive duplicate vertices at index %d", i)
		}
	}
	pts := make([]xform.Vec, n)
	for i, v := range p.Vertices {
		pts[i] = v.ToVec()
	}
	if xform.SpanDimension(pts, tol) < 2 {
		return fmt.Errorf("polygon vertices are collinear (span dimension < 2)")
	}
	if !p.isCoplanar(tol) {
		return fmt.Errorf("polygon vertices are not coplanar within tolerance %v", tol)
	}
	return nil
}

// isCoplanar checks that every vertex lies within tol of the plane
// defined by the first three non-collinear vertices.
func (p Polygon3D) isCoplanar(tol float64) bool {
	n := len(p.Vertices)
	if n <= 3 {
		return true
	}
	normal, origin, ok := p.plane()
	if !ok {
		return false
	}
	for _, v := range p.Vertices {
		d := v.Sub(origin).Dot(normal)
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}

func (p Polygon3D) plane() (normal, origin Vector3D, ok bool) {
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		a, b, c := p.Vertices[i], p.Vertices[(i+1)%n], p.Vertices[(i+2)%n]
		nrm := b.Sub(a).Cross(c.Sub(a))
		if nrm.Norm() > 1e-12 {
			return nrm.Scale(1 / nrm.Norm()), a, true
		}
	}
	return Vector3D{}, Vector3D{}, false
}

// Normal returns the outward unit normal, assuming right-hand traversal.
func (p Polygon3D) Normal() Vector3D {
	n, _, ok := p.plane()
	if !ok {
		return Vector3D{}
	}
	return n
}

// Transform applies an affine transform to every vertex.
func (p Polygon3D) Transform(a xform.Affine3D) Polygon3D {
	out := make([]Vector3D, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = Vector3DFromVec(a.TransformPoint(v.ToVec()))
	}
	return Polygon3D{Vertices: out}
}

// Reversed returns the polygon with vertex order reversed (flips the
// normal), used when a filler quad must be stitched with a consistent
// outward orientation against its neighbour.
func (p Polygon3D) Reversed() Polygon3D {
	n := len(p.Vertices)
	out := make([]Vector3D, n)
	for i, v := range p.Vertices {
		out[n-1-i] = v
	}
	return Polygon3D{Vertices: out}
}

// Quad builds a 4-vertex polygon from two boundary samples (inner/outer)
// at two successive parameter values, in the winding order used by the
// discretiser (C7): inner_k, outer_k, outer_{k+1}, inner_{k+1}.
func Quad(innerK, outerK, outerK1, innerK1 Vector3D) Polygon3D {
	return Polygon3D{Vertices: []Vector3D{innerK, outerK, outerK1, innerK1}}
}

// Triangulate splits the polygon into a fan of triangles from vertex 0
// (used by the discretiser when an emitter wants a strict triangle mesh
// instead of 4-vertex polygons).
func (p Polygon3D) Triangulate() []Polygon3D {
	n := len(p.Vertices)
	if n < 3 {
		return nil
	}
	out := make([]Polygon3D, 0, n-2)
	for i := 1; i < n-1; i++ {
		out = append(out, Polygon3D{Vertices: []Vector3D{p.Vertices[0], p.Vertices[i], p.Vertices[i+1]}})
	}
	return out
}
