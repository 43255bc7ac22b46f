// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import "math"

// Affine2D is the 2-D analogue of Affine3D: x' = Linear*x + Translation,
// Linear a 2x2 matrix (rotation composed with scale).
type Affine2D struct {
	Linear      Mat // 2x2
	Translation Vec // length 2
}

// IdentityAffine2D returns the identity affine transform.
func IdentityAffine2D() Affine2D {
	return Affine2D{Linear: Identity(2), Translation: make(Vec, 2)}
}

// RotationMatrix2D builds the 2x2 rotation matrix for a heading angle
// (radians, counter-clockwise from +x).
func RotationMatrix2D(heading float64) Mat {
	c, s := math.Cos(heading), math.Sin(heading)
	m := Alloc2x2()
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// FromPose2D builds an affine transform that rotates by heading then
// translates to (x,y) — the standard "anchor" transform used to place a
// plan-view curve segment (always built starting at the origin, tangent
// along +x) at its recorded (x, y, heading) anchor.
func FromPose2D(x, y, heading float64) Affine2D {
	return Affine2D{Linear: RotationMatrix2D(heading), Translation: Vec{x, y}}
}

func (a Affine2D) TransformPoint(p Vec) Vec {
	y := MulVec(a.Linear, p)
	y[0] += a.Translation[0]
	y[1] += a.Translation[1]
	return y
}

func (a Affine2D) TransformVector(v Vec) Vec {
	return MulVec(a.Linear, v)
}

// Heading returns the rotation angle encoded by Linear, assuming no
// shear (scale may differ per axis but must be positive).
func (a Affine2D) Heading() float64 {
	return math.Atan2(a.Linear[1][0], a.Linear[0][0])
}

// Append composes a followed by b (b ∘ a).
func (a Affine2D) Append(b Affine2D) Affine2D {
	linear := Mul(b.Linear, a.Linear)
	t := MulVec(b.Linear, a.Translation)
	t[0] += b.Translation[0]
	t[1] += b.Translation[1]
	return Affine2D{Linear: linear, Translation: t}
}

// To3D lifts a 2-D affine transform into 3-D (z untouched).
func (a Affine2D) To3D() Affine3D {
	m := Alloc3x3()
	m[0][0], m[0][1] = a.Linear[0][0], a.Linear[0][1]
	m[1][0], m[1][1] = a.Linear[1][0], a.Linear[1][1]
	m[2][2] = 1
	return Affine3D{Linear: m, Translation: Vec{a.Translation[0], a.Translation[1], 0}}
}

// AffineSequence2D is the planar analogue of AffineSequence: an ordered
// list of 2-D affines resolved by left-to-right composition, used by the
// curve package to place a plan-view segment (always built at the local
// origin, tangent along +x) at its recorded anchor.
type AffineSequence2D []Affine2D

// Resolve composes the sequence into one Affine2D; an empty sequence
// resolves to the identity.
func (seq AffineSequence2D) Resolve() Affine2D {
	out := IdentityAffine2D()
	for _, a := range seq {
		out = out.Append(a)
	}
	return out
}
