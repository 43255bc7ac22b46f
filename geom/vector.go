// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the Euclidean geometry layer (component C3):
// 2-D/3-D points, Tait-Bryan rotations, poses, polygons and the basic
// solid shapes (rectangle, circle, cylinder, parametric sweep) that a
// road object (C6) can be classified into.
package geom

import (
	"math"

	"github.com/cpmech/roadspace/xform"
)

// Vector2D is a point/direction in the plane.
type Vector2D struct {
	X, Y float64
}

// Vector3D is a point/direction in space.
type Vector3D struct {
	X, Y, Z float64
}

func (v Vector2D) Add(o Vector2D) Vector2D { return Vector2D{v.X + o.X, v.Y + o.Y} }
func (v Vector2D) Sub(o Vector2D) Vector2D { return Vector2D{v.X - o.X, v.Y - o.Y} }
func (v Vector2D) Scale(k float64) Vector2D { return Vector2D{v.X * k, v.Y * k} }
func (v Vector2D) Norm() float64            { return math.Hypot(v.X, v.Y) }

// Perp returns the left-hand perpendicular of v (rotated +90deg).
func (v Vector2D) Perp() Vector2D { return Vector2D{-v.Y, v.X} }

func (v Vector2D) ToVec() xform.Vec { return xform.Vec{v.X, v.Y} }

func Vector2DFromVec(x xform.Vec) Vector2D { return Vector2D{x[0], x[1]} }

func (v Vector3D) Add(o Vector3D) Vector3D  { return Vector3D{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3D) Sub(o Vector3D) Vector3D  { return Vector3D{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3D) Scale(k float64) Vector3D { return Vector3D{v.X * k, v.Y * k, v.Z * k} }
func (v Vector3D) Norm() float64            { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vector3D) Dot(o Vector3D) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3D) ToVec() xform.Vec { return xform.Vec{v.X, v.Y, v.Z} }

func Vector3DFromVec(x xform.Vec) Vector3D { return Vector3D{x[0], x[1], x[2]} }

// DistanceTo returns the Euclidean distance between v and o.
func (v Vector3D) DistanceTo(o Vector3D) float64 { return v.Sub(o).Norm() }

// FuzzyEquals reports whether v and o coincide within tol.
func (v Vector3D) FuzzyEquals(o Vector3D, tol float64) bool {
	return v.DistanceTo(o) <= tol
}
