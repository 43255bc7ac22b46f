// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package road

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/roadspace/rmodel"
)

func Test_build_line_constant_width01(tst *testing.T) {

	chk.PrintTitle("road: a straight line road with one constant-width lane samples a parallel outer boundary")

	raw := rmodel.RoadRaw{
		ID: "r1", Length: 20,
		PlanView: []rmodel.PlanViewEntry{{S: 0, Length: 20, Shape: rmodel.ShapeLine}},
		LaneSections: []rmodel.LaneSectionRaw{
			{
				S: 0,
				Right: []rmodel.LaneRaw{
					{ID: -1, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 3.5}}},
				},
			},
		},
	}
	b := Builder{Config: rmodel.Config{Tolerance: 1e-7}}
	r, list, err := b.Build(raw)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	if len(list.Items()) != 0 {
		tst.Errorf("expected no issues, got %v", list.Items())
	}
	if len(r.Sections) != 1 {
		tst.Fatalf("expected exactly one lane section, got %d", len(r.Sections))
	}
	lane := r.Sections[0].Right[0]

	for _, s := range []float64{0, 5, 10, 19.999999} {
		innerP, err := lane.Inner.PoseLocal(s)
		if err != nil {
			tst.Fatalf("inner.PoseLocal(%v): %v", s, err)
		}
		outerP, err := lane.Outer.PoseLocal(s)
		if err != nil {
			tst.Fatalf("outer.PoseLocal(%v): %v", s, err)
		}
		dx := outerP.Position.X - innerP.Position.X
		dy := outerP.Position.Y - innerP.Position.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if math.Abs(dist-3.5) > 1e-6 {
			tst.Errorf("at s=%v expected inner/outer separation of 3.5, got %v", s, dist)
		}
	}
}

func Test_build_header_offset_z01(tst *testing.T) {

	chk.PrintTitle("road: the header's z offset shifts every road's elevation before any evaluation")

	raw := rmodel.RoadRaw{
		ID: "r1", Length: 20,
		PlanView: []rmodel.PlanViewEntry{{S: 0, Length: 20, Shape: rmodel.ShapeLine}},
		LaneSections: []rmodel.LaneSectionRaw{
			{S: 0, Right: []rmodel.LaneRaw{{ID: -1, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 3.5}}}}},
		},
	}
	b := Builder{Config: rmodel.Config{Tolerance: 1e-7}, Header: rmodel.Header{OffsetZ: 5}}
	r, _, err := b.Build(raw)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	p, err := r.Reference.PoseLocal(10)
	if err != nil {
		tst.Fatalf("Reference.PoseLocal: %v", err)
	}
	if math.Abs(p.Position.Z-5) > 1e-9 {
		tst.Errorf("expected the reference curve's elevation to include the header's z offset of 5, got %v", p.Position.Z)
	}
	lane := r.Sections[0].Right[0]
	lp, err := lane.Outer.PoseLocal(10)
	if err != nil {
		tst.Fatalf("lane.Outer.PoseLocal: %v", err)
	}
	if math.Abs(lp.Position.Z-5) > 1e-9 {
		tst.Errorf("expected a lane's elevation to include the header's z offset of 5, got %v", lp.Position.Z)
	}
}

func Test_build_superelevation_roll01(tst *testing.T) {

	chk.PrintTitle("road: a road's super-elevation table drives the reference and lane boundary curves' roll")

	raw := rmodel.RoadRaw{
		ID: "r1", Length: 20,
		PlanView:       []rmodel.PlanViewEntry{{S: 0, Length: 20, Shape: rmodel.ShapeLine}},
		SuperElevation: []rmodel.CubicEntry{{S: 0, A: 0.06}},
		LaneSections: []rmodel.LaneSectionRaw{
			{S: 0, Right: []rmodel.LaneRaw{{ID: -1, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 3.5}}}}},
		},
	}
	b := Builder{Config: rmodel.Config{Tolerance: 1e-7}}
	r, _, err := b.Build(raw)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	p, err := r.Reference.PoseLocal(10)
	if err != nil {
		tst.Fatalf("Reference.PoseLocal: %v", err)
	}
	if math.Abs(p.Rotation.Roll-0.06) > 1e-9 {
		tst.Errorf("expected the reference curve's roll to match the super-elevation table, got %v", p.Rotation.Roll)
	}
	lane := r.Sections[0].Right[0]
	lp, err := lane.Outer.PoseLocal(10)
	if err != nil {
		tst.Fatalf("lane.Outer.PoseLocal: %v", err)
	}
	if math.Abs(lp.Rotation.Roll-0.06) > 1e-9 {
		tst.Errorf("expected a lane boundary's roll to match the super-elevation table, got %v", lp.Rotation.Roll)
	}
}

func Test_build_width_table_gap_at_start01(tst *testing.T) {

	chk.PrintTitle("road: a lane's width table starting after the section's own origin still evaluates at s'=0, held flat to the first entry's value")

	raw := rmodel.RoadRaw{
		ID: "r1", Length: 20,
		PlanView: []rmodel.PlanViewEntry{{S: 0, Length: 20, Shape: rmodel.ShapeLine}},
		LaneSections: []rmodel.LaneSectionRaw{
			{S: 0, Right: []rmodel.LaneRaw{{ID: -1, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 5, A: 3.5}}}}},
		},
	}
	b := Builder{Config: rmodel.Config{Tolerance: 1e-7}}
	r, _, err := b.Build(raw)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	lane := r.Sections[0].Right[0]
	innerP, err := lane.Inner.PoseLocal(0)
	if err != nil {
		tst.Fatalf("inner.PoseLocal(0): %v", err)
	}
	outerP, err := lane.Outer.PoseLocal(0)
	if err != nil {
		tst.Fatalf("outer.PoseLocal(0): %v", err)
	}
	dx, dy := outerP.Position.X-innerP.Position.X, outerP.Position.Y-innerP.Position.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if math.Abs(dist-3.5) > 1e-6 {
		tst.Errorf("expected the pre-table gap to hold the first entry's width of 3.5, got %v", dist)
	}
}

func Test_build_no_usable_lanesection01(tst *testing.T) {

	chk.PrintTitle("road: a road with no lane sections fails to build with invariant 4's fatal issue")

	raw := rmodel.RoadRaw{
		ID: "r1", Length: 20,
		PlanView: []rmodel.PlanViewEntry{{S: 0, Length: 20, Shape: rmodel.ShapeLine}},
	}
	b := Builder{Config: rmodel.Config{Tolerance: 1e-7}}
	_, list, err := b.Build(raw)
	if err == nil {
		tst.Fatalf("expected Build to fail when no lane section survives")
	}
	if !list.IsFatal() {
		tst.Errorf("expected a fatal issue recorded against the road, got %v", list.Items())
	}
}

func Test_laneoffset_monotonic_outward01(tst *testing.T) {

	chk.PrintTitle("road: successive lanes on a side accumulate strictly outward from the lane-reference curve")

	raw := rmodel.RoadRaw{
		ID: "r1", Length: 20,
		PlanView: []rmodel.PlanViewEntry{{S: 0, Length: 20, Shape: rmodel.ShapeLine}},
		LaneSections: []rmodel.LaneSectionRaw{
			{
				S: 0,
				Right: []rmodel.LaneRaw{
					{ID: -1, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 3}}},
					{ID: -2, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 2.5}}},
				},
				Left: []rmodel.LaneRaw{
					{ID: 1, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 3}}},
				},
			},
		},
	}
	b := Builder{Config: rmodel.Config{Tolerance: 1e-7}}
	r, _, err := b.Build(raw)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	sec := r.Sections[0]

	refP, err := sec.Center.Inner.PoseLocal(10)
	if err != nil {
		tst.Fatalf("center.PoseLocal: %v", err)
	}
	lane1InnerP, _ := sec.Right[0].Inner.PoseLocal(10)
	lane1OuterP, _ := sec.Right[0].Outer.PoseLocal(10)
	lane2InnerP, _ := sec.Right[1].Inner.PoseLocal(10)
	lane2OuterP, _ := sec.Right[1].Outer.PoseLocal(10)

	dist := func(a, b [2]float64) float64 {
		return math.Sqrt((a[0]-b[0])*(a[0]-b[0]) + (a[1]-b[1])*(a[1]-b[1]))
	}

	refXY := [2]float64{refP.Position.X, refP.Position.Y}
	l1innerXY := [2]float64{lane1InnerP.Position.X, lane1InnerP.Position.Y}
	l1outerXY := [2]float64{lane1OuterP.Position.X, lane1OuterP.Position.Y}
	l2innerXY := [2]float64{lane2InnerP.Position.X, lane2InnerP.Position.Y}
	l2outerXY := [2]float64{lane2OuterP.Position.X, lane2OuterP.Position.Y}

	if dist(refXY, l1innerXY) > 1e-6 {
		tst.Errorf("expected lane -1's inner boundary to coincide with the lane-reference curve, got distance %v", dist(refXY, l1innerXY))
	}
	if math.Abs(dist(refXY, l1outerXY)-3) > 1e-6 {
		tst.Errorf("expected lane -1's outer boundary at 3m from the reference, got %v", dist(refXY, l1outerXY))
	}
	if dist(refXY, l2innerXY) < dist(refXY, l1innerXY) {
		tst.Errorf("expected lane -2's inner boundary farther from the reference than lane -1's")
	}
	if math.Abs(dist(refXY, l2outerXY)-5.5) > 1e-6 {
		tst.Errorf("expected lane -2's outer boundary at 5.5m (3+2.5) from the reference, got %v", dist(refXY, l2outerXY))
	}
}
