// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/roadspace/numfn"
	"github.com/cpmech/roadspace/rng"
	"github.com/cpmech/roadspace/xform"
)

func Test_line01(tst *testing.T) {

	chk.PrintTitle("line: endpoints and length")

	l := NewLine(10, 1e-7, false, nil)
	p0, err := l.PoseLocal(0)
	if err != nil {
		tst.Errorf("pose at 0 failed: %v", err)
	}
	if p0.Position.X != 0 || p0.Position.Y != 0 {
		tst.Errorf("line should start at origin, got %v", p0.Position)
	}
	p1, err := l.PoseLocal(10)
	if err != nil {
		tst.Errorf("pose at length failed: %v", err)
	}
	if math.Abs(p1.Position.X-10) > 1e-9 {
		tst.Errorf("line endpoint wrong: %v", p1.Position)
	}
	if l.Length() != 10 {
		tst.Errorf("length identity violated: got %v", l.Length())
	}
}

func Test_arc01(tst *testing.T) {

	chk.PrintTitle("arc: quarter circle radius 10")

	length := 10 * math.Pi / 2
	a, err := NewArc(1.0/10, length, 1e-7, nil)
	if err != nil {
		tst.Fatalf("NewArc failed: %v", err)
	}
	p, err := a.PoseLocal(length)
	if err != nil {
		tst.Fatalf("pose failed: %v", err)
	}
	if math.Abs(p.Position.X-10) > 1e-6 || math.Abs(p.Position.Y-10) > 1e-6 {
		tst.Errorf("arc endpoint wrong, want (10,10), got %v", p.Position)
	}
	if math.Abs(p.Heading-math.Pi/2) > 1e-9 {
		tst.Errorf("arc end heading wrong, want pi/2, got %v", p.Heading)
	}
}

func Test_composite_stitch01(tst *testing.T) {

	chk.PrintTitle("composite: line then arc stitch end to end (round trip continuity + endpoint stitching)")

	line := NewLine(10, 1e-7, true, nil)
	arcLen := 10 * math.Pi / 2
	arcAffines := xform.AffineSequence2D{xform.FromPose2D(10, 0, 0)}
	arc, err := NewArc(1.0/10, arcLen, 1e-7, arcAffines)
	if err != nil {
		tst.Fatalf("NewArc failed: %v", err)
	}

	members := []CompositeMember{
		{Curve: line, Start: 0},
		{Curve: arc, Start: 10},
	}
	comp, issues, err := NewComposite2D(members, 1e-7, nil, "road#1")
	if err != nil {
		tst.Fatalf("NewComposite2D failed: %v", err)
	}
	if len(issues) != 0 {
		tst.Errorf("expected no healing issues for an exactly-contiguous stitch, got %v", issues)
	}
	if math.Abs(comp.Length()-(10+arcLen)) > 1e-9 {
		tst.Errorf("composite length identity violated: got %v", comp.Length())
	}

	seam, err := comp.PoseLocal(10)
	if err != nil {
		tst.Fatalf("pose at seam failed: %v", err)
	}
	if math.Abs(seam.Position.X-10) > 1e-6 || math.Abs(seam.Position.Y) > 1e-6 {
		tst.Errorf("composite seam position wrong, want (10,0), got %v", seam.Position)
	}

	endS := 10 + arcLen
	end, err := comp.PoseLocal(endS)
	if err != nil {
		tst.Fatalf("pose at end failed: %v", err)
	}
	if math.Abs(end.Position.X-20) > 1e-6 || math.Abs(end.Position.Y-10) > 1e-6 {
		tst.Errorf("composite end position wrong, want (20,10), got %v", end.Position)
	}
}

func Test_composite_overlap_heal01(tst *testing.T) {

	chk.PrintTitle("composite: small overlap between tol and 2*tol is healed with a WARNING issue")

	tol := 1e-3
	line := NewLine(10, tol, true, nil)
	arc, err := NewArc(1.0/10, 5, tol, nil)
	if err != nil {
		tst.Fatalf("NewArc failed: %v", err)
	}
	overlap := 1.5 * tol
	members := []CompositeMember{
		{Curve: line, Start: 0},
		{Curve: arc, Start: 10 - overlap},
	}
	_, issues, err := NewComposite2D(members, tol, nil, "road#2")
	if err != nil {
		tst.Fatalf("expected healing, got hard error: %v", err)
	}
	if len(issues) != 1 || issues[0].Severity.String() != "WARNING" {
		tst.Errorf("expected exactly one WARNING issue, got %v", issues)
	}
}

func Test_composite_overlap_reject01(tst *testing.T) {

	chk.PrintTitle("composite: overlap >= 2*tol is rejected as a structural error")

	tol := 1e-3
	line := NewLine(10, tol, true, nil)
	arc, err := NewArc(1.0/10, 5, tol, nil)
	if err != nil {
		tst.Fatalf("NewArc failed: %v", err)
	}
	members := []CompositeMember{
		{Curve: line, Start: 0},
		{Curve: arc, Start: 10 - 3*tol},
	}
	_, _, err = NewComposite2D(members, tol, nil, "road#3")
	if err == nil {
		tst.Errorf("expected a structural error for a large overlap")
	}
}

func Test_lateral01(tst *testing.T) {

	chk.PrintTitle("lateral translation: straight line offset left by constant t")

	line := NewLine(10, 1e-7, false, nil)
	lat := LateralTranslated{Base: line, Offset: func(s float64) (float64, error) { return 2, nil }}
	p, err := lat.PoseLocal(5)
	if err != nil {
		tst.Fatalf("pose failed: %v", err)
	}
	if math.Abs(p.Position.X-5) > 1e-9 || math.Abs(p.Position.Y-2) > 1e-9 {
		tst.Errorf("lateral offset wrong, want (5,2), got %v", p.Position)
	}
}

func Test_sectioned01(tst *testing.T) {

	chk.PrintTitle("sectioned: sub-interval re-parameterised to start at 0")

	line := NewLine(20, 1e-7, false, nil)
	sec := NewSectioned(line, 10, 5)
	if sec.Length() != 5 {
		tst.Errorf("sectioned length wrong: %v", sec.Length())
	}
	p, err := sec.PoseLocal(0)
	if err != nil {
		tst.Fatalf("pose failed: %v", err)
	}
	if math.Abs(p.Position.X-10) > 1e-9 {
		tst.Errorf("sectioned start should map to base s=10, got %v", p.Position)
	}
}

func Test_planar3d01(tst *testing.T) {

	chk.PrintTitle("planar3d: flat line with linear elevation produces constant pitch")

	line := NewLine(10, 1e-7, false, nil)
	lin := numfn.LinearOfInclusiveInterceptAndPoint(0, 10, 1)
	c3 := Planar3D{Plane: line, Elevation: lin}
	p, err := c3.PoseLocal(5)
	if err != nil {
		tst.Fatalf("pose failed: %v", err)
	}
	if math.Abs(p.Position.Z-0.5) > 1e-9 {
		tst.Errorf("elevation wrong, want 0.5, got %v", p.Position.Z)
	}
	wantPitch := math.Atan(0.1)
	if math.Abs(p.Rotation.Pitch-wantPitch) > 1e-9 {
		tst.Errorf("pitch wrong, want %v, got %v", wantPitch, p.Rotation.Pitch)
	}
}

func Test_planar3d_superelevation01(tst *testing.T) {

	chk.PrintTitle("planar3d: a constant super-elevation function is carried through as roll, not dropped to zero")

	line := NewLine(10, 1e-7, false, nil)
	flat := numfn.Constant{D: rng.Closed(0, 10), C: 0}
	roll := numfn.Constant{D: rng.Closed(0, 10), C: 0.05}
	c3 := Planar3D{Plane: line, Elevation: flat, SuperElevation: roll}
	p, err := c3.PoseLocal(5)
	if err != nil {
		tst.Fatalf("pose failed: %v", err)
	}
	if math.Abs(p.Rotation.Roll-0.05) > 1e-9 {
		tst.Errorf("roll wrong, want 0.05, got %v", p.Rotation.Roll)
	}

	flatC3 := Planar3D{Plane: line, Elevation: flat}
	pFlat, err := flatC3.PoseLocal(5)
	if err != nil {
		tst.Fatalf("pose failed: %v", err)
	}
	if pFlat.Rotation.Roll != 0 {
		tst.Errorf("expected zero roll when SuperElevation is nil, got %v", pFlat.Rotation.Roll)
	}
}
