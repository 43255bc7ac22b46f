// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import "math"

// Affine3D is translation + linear part (rotation composed with scale),
// applied as x' = Linear*x + Translation. The linear part is stored as a
// plain 3x3 matrix rather than separate rotation/scale factors so that
// composition is a single matrix multiply; RotationMatrix()/Scale() below
// decompose it back out when a caller needs the factors individually.
type Affine3D struct {
	Linear      Mat // 3x3
	Translation Vec // length 3
}

// IdentityAffine3D returns the identity affine transform.
func IdentityAffine3D() Affine3D {
	return Affine3D{Linear: Identity(3), Translation: make(Vec, 3)}
}

// Translation3D builds a pure-translation affine transform.
func Translation3D(t Vec) Affine3D {
	return Affine3D{Linear: Identity(3), Translation: append(Vec{}, t...)}
}

// Scale3D builds a pure-scale affine transform.
func Scale3D(sx, sy, sz float64) Affine3D {
	m := Alloc3x3()
	m[0][0], m[1][1], m[2][2] = sx, sy, sz
	return Affine3D{Linear: m, Translation: make(Vec, 3)}
}

// RotationFromMatrix builds a pure-rotation affine transform from a
// caller-supplied 3x3 rotation matrix (geom.Rotation3D.Matrix()).
func RotationFromMatrix(r Mat) Affine3D {
	return Affine3D{Linear: Clone(r), Translation: make(Vec, 3)}
}

// FromPose builds an affine transform that rotates by r then translates
// by t: x' = r*x + t. This is the standard "pose" transform used to take
// a curve's local frame (origin, tangent along +x) to its placement in
// the parent frame.
func FromPose(t Vec, r Mat) Affine3D {
	return Affine3D{Linear: Clone(r), Translation: append(Vec{}, t...)}
}

// TransformPoint applies the affine transform to a length-3 point.
func (a Affine3D) TransformPoint(p Vec) Vec {
	y := MulVec(a.Linear, p)
	for i := range y {
		y[i] += a.Translation[i]
	}
	return y
}

// TransformVector applies only the linear part (no translation) — use
// for direction/tangent vectors.
func (a Affine3D) TransformVector(v Vec) Vec {
	return MulVec(a.Linear, v)
}

// TransformPolygon applies TransformPoint to every vertex, returning a
// new slice (the input is not mutated).
func (a Affine3D) TransformPolygon(pts []Vec) []Vec {
	out := make([]Vec, len(pts))
	for i, p := range pts {
		out[i] = a.TransformPoint(p)
	}
	return out
}

// Append composes a followed by b: applying the result to a point is
// equivalent to first applying a, then applying b (b ∘ a).
func (a Affine3D) Append(b Affine3D) Affine3D {
	linear := Mul(b.Linear, a.Linear)
	t := MulVec(b.Linear, a.Translation)
	for i := range t {
		t[i] += b.Translation[i]
	}
	return Affine3D{Linear: linear, Translation: t}
}

// Inverse returns the affine transform that undoes a: if a maps x to
// Linear*x+Translation, the inverse maps y to Linear^-1*(y-Translation).
func (a Affine3D) Inverse() (Affine3D, error) {
	inv, err := Inverse(a.Linear, 1e-14)
	if err != nil {
		return Affine3D{}, err
	}
	t := make(Vec, 3)
	for i := range t {
		t[i] = -a.Translation[i]
	}
	return Affine3D{Linear: inv, Translation: MulVec(inv, t)}, nil
}

// Scale extracts the per-axis scale factors (column norms of Linear).
func (a Affine3D) Scale() Vec {
	s := make(Vec, 3)
	for j := 0; j < 3; j++ {
		sum := 0.0
		for i := 0; i < 3; i++ {
			sum += a.Linear[i][j] * a.Linear[i][j]
		}
		s[j] = math.Sqrt(sum)
	}
	return s
}

// RotationMatrix extracts the pure-rotation part by normalising each
// column of Linear to unit length (valid when Linear carries no shear).
func (a Affine3D) RotationMatrix() Mat {
	s := a.Scale()
	r := Alloc3x3()
	for j := 0; j < 3; j++ {
		scale := s[j]
		if scale == 0 {
			scale = 1
		}
		for i := 0; i < 3; i++ {
			r[i][j] = a.Linear[i][j] / scale
		}
	}
	return r
}

// AffineSequence resolves an ordered list of affines into a single
// transform via left-to-right composition; an empty sequence resolves to
// the identity.
type AffineSequence []Affine3D

// Resolve composes the sequence into one Affine3D (local -> global).
func (seq AffineSequence) Resolve() Affine3D {
	out := IdentityAffine3D()
	for _, a := range seq {
		out = out.Append(a)
	}
	return out
}
