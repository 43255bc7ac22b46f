// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/roadspace/xform"
)

// Rotation3D stores a normalised Tait-Bryan rotation in Z-Y'-X'' order
// (heading about Z, then pitch about the rotated Y', then roll about the
// twice-rotated X''), matching the heading/pitch/roll convention used
// throughout the road-space builder (curve tangent heading, grade pitch,
// super-elevation roll).
type Rotation3D struct {
	Heading float64 // yaw, radians
	Pitch   float64 // radians
	Roll    float64 // radians
}

// NewRotation3D normalises the three angles into (-pi, pi].
func NewRotation3D(heading, pitch, roll float64) Rotation3D {
	return Rotation3D{normalizeAngle(heading), normalizeAngle(pitch), normalizeAngle(roll)}
}

func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Matrix returns the 3x3 rotation matrix R = Rz(heading)*Ry(pitch)*Rx(roll).
func (r Rotation3D) Matrix() xform.Mat {
	ch, sh := math.Cos(r.Heading), math.Sin(r.Heading)
	cp, sp := math.Cos(r.Pitch), math.Sin(r.Pitch)
	cr, sr := math.Cos(r.Roll), math.Sin(r.Roll)

	rz := xform.Alloc3x3()
	rz[0][0], rz[0][1] = ch, -sh
	rz[1][0], rz[1][1] = sh, ch
	rz[2][2] = 1

	ry := xform.Alloc3x3()
	ry[0][0], ry[0][2] = cp, sp
	ry[1][1] = 1
	ry[2][0], ry[2][2] = -sp, cp

	rx := xform.Alloc3x3()
	rx[0][0] = 1
	rx[1][1], rx[1][2] = cr, -sr
	rx[2][1], rx[2][2] = sr, cr

	return xform.Mul(xform.Mul(rz, ry), rx)
}

// Compose applies o after r (r first, then o) for the heading-only case:
// adding the two headings is exact when pitch and roll are both zero.
// It must not be used to compose general (hdg, pitch,
// roll) rotations — RotationFromMatrix does that correctly, via the
// matrices themselves rather than summing angles.
func (r Rotation3D) Compose(o Rotation3D) Rotation3D {
	return NewRotation3D(r.Heading+o.Heading, r.Pitch+o.Pitch, r.Roll+o.Roll)
}

// RotationFromMatrix extracts the Z-Y'-X'' Tait-Bryan angles (heading,
// pitch, roll) from a rotation matrix of the same form produced by
// Matrix(). Used to recover the composed orientation of two general
// poses after their matrices (not their angles) have been multiplied
// together, since heading/pitch/roll do not add componentwise except in
// the heading-only special case handled by Compose.
func RotationFromMatrix(m xform.Mat) Rotation3D {
	clamp := func(v float64) float64 {
		if v < -1 {
			return -1
		}
		if v > 1 {
			return 1
		}
		return v
	}
	pitch := math.Asin(clamp(-m[2][0]))
	var heading, roll float64
	if math.Abs(m[2][0]) < 1-1e-9 {
		heading = math.Atan2(m[1][0], m[0][0])
		roll = math.Atan2(m[2][1], m[2][2])
	} else {
		// Gimbal lock (pitch = ±pi/2): heading and roll share one degree of
		// freedom; the whole remaining rotation is folded into heading.
		heading = math.Atan2(-m[0][1], m[1][1])
		roll = 0
	}
	return NewRotation3D(heading, pitch, roll)
}
