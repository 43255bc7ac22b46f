// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discretize

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/roadspace/ids"
	"github.com/cpmech/roadspace/rmodel"
	"github.com/cpmech/roadspace/road"
	"github.com/cpmech/roadspace/topology"
)

func buildRoad(tst *testing.T, raw rmodel.RoadRaw) road.Road {
	tst.Helper()
	b := road.Builder{Config: rmodel.Config{Tolerance: 1e-7}}
	r, _, err := b.Build(raw)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	return r
}

func Test_lateralfillers_seam_discontinuity01(tst *testing.T) {

	chk.PrintTitle("discretize: a height-offset discontinuity between adjacent lanes produces a lateral filler")

	raw := rmodel.RoadRaw{
		ID: "r1", Length: 20,
		PlanView: []rmodel.PlanViewEntry{{S: 0, Length: 20, Shape: rmodel.ShapeLine}},
		LaneSections: []rmodel.LaneSectionRaw{
			{
				S: 0,
				Right: []rmodel.LaneRaw{
					{ID: -1, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 3}},
						HeightOffsets: []rmodel.HeightOffsetEntry{{SOffset: 0, Inner: 0, Outer: 0.5}}},
					{ID: -2, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 3}}},
				},
			},
		},
	}
	r := buildRoad(tst, raw)
	sp := Sampler{Step: 5, Tol: 1e-7}
	quads, list := sp.LateralFillers(r.Sections[0])
	if len(list.Items()) != 0 {
		tst.Errorf("expected no issues, got %v", list.Items())
	}
	if len(quads) == 0 {
		tst.Errorf("expected at least one lateral filler quad at the discontinuous seam")
	}
}

func Test_lateralfillers_no_discontinuity01(tst *testing.T) {

	chk.PrintTitle("discretize: adjacent lanes with matching boundaries produce no lateral filler")

	raw := rmodel.RoadRaw{
		ID: "r1", Length: 20,
		PlanView: []rmodel.PlanViewEntry{{S: 0, Length: 20, Shape: rmodel.ShapeLine}},
		LaneSections: []rmodel.LaneSectionRaw{
			{
				S: 0,
				Right: []rmodel.LaneRaw{
					{ID: -1, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 3}}},
					{ID: -2, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 3}}},
				},
			},
		},
	}
	r := buildRoad(tst, raw)
	sp := Sampler{Step: 5, Tol: 1e-7}
	quads, _ := sp.LateralFillers(r.Sections[0])
	if len(quads) != 0 {
		tst.Errorf("expected no lateral filler when lane boundaries coincide, got %d quads", len(quads))
	}
}

func Test_longitudinalfillers_junction01(tst *testing.T) {

	chk.PrintTitle("discretize: a junction-crossed successor edge produces one longitudinal filler quad")

	rawIn := rmodel.RoadRaw{
		ID: "in", Length: 20,
		PlanView: []rmodel.PlanViewEntry{{S: 0, Length: 20, Shape: rmodel.ShapeLine}},
		LaneSections: []rmodel.LaneSectionRaw{
			{S: 0, Right: []rmodel.LaneRaw{{ID: -1, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 3}}}}},
		},
	}
	rawOut := rmodel.RoadRaw{
		ID: "out", Length: 20,
		PlanView: []rmodel.PlanViewEntry{{S: 0, Length: 20, Shape: rmodel.ShapeLine, X: 20}},
		LaneSections: []rmodel.LaneSectionRaw{
			{S: 0, Right: []rmodel.LaneRaw{{ID: -1, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 3}}}}},
		},
	}
	model := rmodel.Model{
		Roads: []rmodel.RoadRaw{rawIn, rawOut},
		Junctions: []rmodel.JunctionRaw{
			{ID: "j1", Connections: []rmodel.ConnectionRaw{
				{IncomingRoadID: "in", ConnectingRoadID: "out", ContactPoint: rmodel.ContactStart,
					LaneLinks: []rmodel.ConnectionLaneLink{{From: -1, To: -1}}},
			}},
		},
	}
	topo := topology.Build(model)
	roads := map[ids.RoadspaceID]road.Road{
		"in":  buildRoad(tst, rawIn),
		"out": buildRoad(tst, rawOut),
	}
	quads, list := LongitudinalFillers(roads, model, topo)
	if len(list.Items()) != 0 {
		tst.Errorf("expected no issues, got %v", list.Items())
	}
	if len(quads) != 1 {
		tst.Errorf("expected exactly one longitudinal filler quad, got %d", len(quads))
	}
}

func Test_longitudinalfillers_junction_contactend01(tst *testing.T) {

	chk.PrintTitle("discretize: a contactPoint=end junction connection stitches to the connecting road's far end, not its last section's local start")

	rawIn := rmodel.RoadRaw{
		ID: "in", Length: 20,
		PlanView: []rmodel.PlanViewEntry{{S: 0, Length: 20, Shape: rmodel.ShapeLine}},
		LaneSections: []rmodel.LaneSectionRaw{
			{S: 0, Right: []rmodel.LaneRaw{{ID: -1, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 3}}}}},
		},
	}
	rawOut := rmodel.RoadRaw{
		ID: "out", Length: 20,
		PlanView: []rmodel.PlanViewEntry{{S: 0, Length: 20, Shape: rmodel.ShapeLine, X: 20}},
		LaneSections: []rmodel.LaneSectionRaw{
			{S: 0, Right: []rmodel.LaneRaw{{ID: -1, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 3}}}}},
			{S: 10, Right: []rmodel.LaneRaw{{ID: -1, Type: "driving", Widths: []rmodel.WidthEntry{{SOffset: 0, A: 3}}}}},
		},
	}
	model := rmodel.Model{
		Roads: []rmodel.RoadRaw{rawIn, rawOut},
		Junctions: []rmodel.JunctionRaw{
			{ID: "j1", Connections: []rmodel.ConnectionRaw{
				{IncomingRoadID: "in", ConnectingRoadID: "out", ContactPoint: rmodel.ContactEnd,
					LaneLinks: []rmodel.ConnectionLaneLink{{From: -1, To: -1}}},
			}},
		},
	}
	topo := topology.Build(model)
	outRoad := buildRoad(tst, rawOut)
	roads := map[ids.RoadspaceID]road.Road{
		"in":  buildRoad(tst, rawIn),
		"out": outRoad,
	}
	quads, list := LongitudinalFillers(roads, model, topo)
	if len(list.Items()) != 0 {
		tst.Errorf("expected no issues, got %v", list.Items())
	}
	if len(quads) != 1 {
		tst.Fatalf("expected exactly one longitudinal filler quad, got %d", len(quads))
	}

	lastSection := outRoad.Sections[len(outRoad.Sections)-1]
	lane := lastSection.Right[0]
	hi := lane.Outer.Domain().Hi.Value
	wantInner, err := lane.Inner.PoseGlobal(hi)
	if err != nil {
		tst.Fatalf("Inner.PoseGlobal(hi): %v", err)
	}
	wantOuter, err := lane.Outer.PoseGlobal(hi)
	if err != nil {
		tst.Fatalf("Outer.PoseGlobal(hi): %v", err)
	}

	q := quads[0]
	gotInner := q.Vertices[3]
	gotOuter := q.Vertices[2]
	if gotInner.DistanceTo(wantInner.Position) > 1e-6 {
		tst.Errorf("expected the filler to stitch to the connecting road's far-end inner boundary, want %v, got %v", wantInner.Position, gotInner)
	}
	if gotOuter.DistanceTo(wantOuter.Position) > 1e-6 {
		tst.Errorf("expected the filler to stitch to the connecting road's far-end outer boundary, want %v, got %v", wantOuter.Position, gotOuter)
	}
}
