// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_polygon01(tst *testing.T) {

	chk.PrintTitle("polygon validation: planar quad ok, collinear rejected")

	quad := Polygon3D{Vertices: []Vector3D{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}}
	if err := quad.Validate(1e-9); err != nil {
		tst.Errorf("a square should validate: %v", err)
	}

	degenerate := Polygon3D{Vertices: []Vector3D{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}}
	if err := degenerate.Validate(1e-9); err == nil {
		tst.Errorf("collinear vertices should fail validation")
	}

	dup := Polygon3D{Vertices: []Vector3D{{0, 0, 0}, {0, 0, 0}, {1, 1, 0}, {0, 1, 0}}}
	if err := dup.Validate(1e-9); err == nil {
		tst.Errorf("consecutive duplicate vertices should fail validation")
	}
}

func Test_rotation01(tst *testing.T) {

	chk.PrintTitle("rotation matrix heading-only matches 2D rotation")

	r := NewRotation3D(math.Pi/2, 0, 0)
	m := r.Matrix()
	if math.Abs(m[0][0]) > 1e-9 || math.Abs(m[1][0]-1) > 1e-9 {
		tst.Errorf("heading-only rotation matrix unexpected: %v", m)
	}
}

func Test_cuboid01(tst *testing.T) {

	chk.PrintTitle("cuboid has 6 faces")

	c := Cuboid{Length: 2, Width: 1, Height: 1}
	faces := c.PolygonsLocal()
	if len(faces) != 6 {
		tst.Errorf("expected 6 faces for a cuboid, got %d", len(faces))
	}
}

func Test_circle01(tst *testing.T) {

	chk.PrintTitle("circle discretisation honours circleSlices")

	c := Circle{Radius: 1, CircleSlices: 12}
	poly := c.PolygonsLocal()[0]
	if len(poly.Vertices) != 12 {
		tst.Errorf("expected 12 vertices, got %d", len(poly.Vertices))
	}
}
