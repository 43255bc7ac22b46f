// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve implements the curve kernel (component C4): abstract
// 2-D/3-D curves with a domain and tolerance, concrete segment variants
// (line, arc, Euler spiral, cubic), and adaptors (composite, laterally
// translated, sectioned) that wrap a base curve rather than inheriting
// from it (design note §9).
package curve

import (
	"fmt"

	"github.com/cpmech/roadspace/geom"
	"github.com/cpmech/roadspace/rng"
	"github.com/cpmech/roadspace/xform"
)

// ErrorKind classifies a curve evaluation failure. No exception is ever
// thrown from the kernel (§4.2 failure semantics) — every evaluator
// returns (value, error) with error unwrapping to *Error when non-nil.
type ErrorKind int

const (
	OutOfDomain ErrorKind = iota
	GeometryDegenerate
	UpstreamEvaluationFailed
)

func (k ErrorKind) String() string {
	switch k {
	case OutOfDomain:
		return "OutOfDomain"
	case GeometryDegenerate:
		return "GeometryDegenerate"
	case UpstreamEvaluationFailed:
		return "UpstreamEvaluationFailed"
	}
	return "Unknown"
}

// Error is the typed error returned by curve evaluators.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func errOutOfDomain(s float64, d rng.Range) *Error {
	return &Error{OutOfDomain, fmt.Sprintf("s=%v is outside the curve domain [%v,%v]", s, d.Lo.Value, d.Hi.Value)}
}

func errDegenerate(msg string) *Error {
	return &Error{GeometryDegenerate, msg}
}

func errUpstream(msg string) *Error {
	return &Error{UpstreamEvaluationFailed, msg}
}

// Curve2D is the contract every planar curve segment and adaptor
// satisfies: domain, tolerance, length, local and global pose, and the
// affine sequence. The segment types embed Base2D for Domain/Tolerance/
// Length/Affines; PoseGlobal2D, PointLocal2D/PointGlobal2D and
// RotationLocal2D/RotationGlobal2D are package functions derived from
// PoseLocal/PoseGlobal.
type Curve2D interface {
	Domain() rng.Range
	Tolerance() float64
	Length() float64
	PoseLocal(s float64) (geom.Pose2D, error)
	PoseGlobal(s float64) (geom.Pose2D, error)
	Affines() xform.AffineSequence2D
}

// Base2D supplies Domain/Tolerance/Length/Affines to a concrete curve
// that embeds it; PoseLocal and PoseGlobal are methods of the embedding
// type.
type Base2D struct {
	D         rng.Range
	Tol       float64
	AffineSeq xform.AffineSequence2D
}

func (b Base2D) Domain() rng.Range                 { return b.D }
func (b Base2D) Tolerance() float64                { return b.Tol }
func (b Base2D) Length() float64                   { return b.D.Length() }
func (b Base2D) Affines() xform.AffineSequence2D   { return b.AffineSeq }

// PoseGlobal2D resolves the local pose via c.PoseLocal then applies the
// affine sequence c.Affines().
func PoseGlobal2D(c Curve2D, s float64) (geom.Pose2D, error) {
	local, err := c.PoseLocal(s)
	if err != nil {
		return geom.Pose2D{}, err
	}
	a := c.Affines().Resolve()
	p := a.TransformPoint(local.Position.ToVec())
	heading := local.Heading + a.Heading()
	return geom.Pose2D{Position: geom.Vector2DFromVec(p), Heading: heading}, nil
}

// PointLocal2D/PointGlobal2D/RotationLocal2D/RotationGlobal2D are the
// thin derived accessors named explicitly in §3's curve contract.
func PointLocal2D(c Curve2D, s float64) (geom.Vector2D, error) {
	p, err := c.PoseLocal(s)
	return p.Position, err
}

func PointGlobal2D(c Curve2D, s float64) (geom.Vector2D, error) {
	p, err := c.PoseGlobal(s)
	return p.Position, err
}

func RotationLocal2D(c Curve2D, s float64) (float64, error) {
	p, err := c.PoseLocal(s)
	return p.Heading, err
}

func RotationGlobal2D(c Curve2D, s float64) (float64, error) {
	p, err := c.PoseGlobal(s)
	return p.Heading, err
}

// Curve3D wraps a planar Curve2D with an elevation function h(s); in
// Planar3D the pose rotation is (heading(s), pitch=atan(h'(s)), roll)
// with roll taken from the super-elevation function.
type Curve3D interface {
	Domain() rng.Range
	Tolerance() float64
	Length() float64
	PoseLocal(s float64) (geom.Pose3D, error)
	PoseGlobal(s float64) (geom.Pose3D, error)
}
