// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/roadspace/xform"

// Pose3D is a position plus orientation, the unit the curve kernel (C4)
// evaluates at every arc-length parameter.
type Pose3D struct {
	Position Vector3D
	Rotation Rotation3D
}

// Affine returns the affine transform taking the local frame at this
// pose's origin (tangent along +x) into the parent frame.
func (p Pose3D) Affine() xform.Affine3D {
	return xform.FromPose(p.Position.ToVec(), p.Rotation.Matrix())
}

// Advance composes this pose with a local delta pose expressed relative
// to it (used by object placement: reference-pose ∘ translation ∘
// rotation, §4.4 — global = P ∘ T ∘ R, i.e. delta applied first in its
// own local frame, then carried into the parent frame by p). Affine3D's
// Append(a, b) resolves to "apply a first, then b", so p ∘ delta is
// delta.Affine().Append(p.Affine()), not the other way around; the
// composed rotation is recovered from the resulting matrix rather than
// by summing angles, since heading/pitch/roll are not additive in
// general.
func (p Pose3D) Advance(delta Pose3D) Pose3D {
	a := delta.Affine().Append(p.Affine())
	return Pose3D{
		Position: Vector3DFromVec(a.Translation),
		Rotation: RotationFromMatrix(a.Linear),
	}
}

// Pose2D is the planar analogue of Pose3D (position + heading only).
type Pose2D struct {
	Position Vector2D
	Heading  float64
}

func (p Pose2D) Affine() xform.Affine2D {
	return xform.FromPose2D(p.Position.X, p.Position.Y, p.Heading)
}

// To3D lifts a Pose2D to Pose3D at a given elevation, pitch and roll.
func (p Pose2D) To3D(elevation, pitch, roll float64) Pose3D {
	return Pose3D{
		Position: Vector3D{p.Position.X, p.Position.Y, elevation},
		Rotation: NewRotation3D(p.Heading, pitch, roll),
	}
}
