// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heal

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/roadspace/rmodel"
)

func Test_healroad_length_mismatch01(tst *testing.T) {

	chk.PrintTitle("HealRoad: road.length is reconciled against the summed plan-view length")

	raw := rmodel.RoadRaw{
		ID:     "r1",
		Length: 5, // wrong on purpose
		PlanView: []rmodel.PlanViewEntry{
			{S: 0, Length: 10, Shape: rmodel.ShapeLine},
		},
		LaneSections: []rmodel.LaneSectionRaw{
			{S: 0, Right: []rmodel.LaneRaw{{ID: -1, Type: "driving"}}},
		},
	}
	healed, list := HealRoad(raw, 1e-7)
	if healed.Length != 10 {
		tst.Errorf("expected reconciled length 10, got %v", healed.Length)
	}
	found := false
	for _, i := range list.Items() {
		if i.Code == "road.length.mismatch" {
			found = true
		}
	}
	if !found {
		tst.Errorf("expected a road.length.mismatch issue")
	}
}

func Test_healroad_sort_dedupe01(tst *testing.T) {

	chk.PrintTitle("HealRoad: out-of-order, duplicate-keyed elevation entries are sorted and deduped")

	raw := rmodel.RoadRaw{
		ID:     "r2",
		Length: 10,
		PlanView: []rmodel.PlanViewEntry{
			{S: 0, Length: 10, Shape: rmodel.ShapeLine},
		},
		Elevation: []rmodel.CubicEntry{
			{S: 5, A: 2},
			{S: 0, A: 1},
			{S: 5, A: 99}, // duplicate key, should be dropped (first kept)
		},
		LaneSections: []rmodel.LaneSectionRaw{
			{S: 0, Right: []rmodel.LaneRaw{{ID: -1, Type: "driving"}}},
		},
	}
	healed, _ := HealRoad(raw, 1e-7)
	if len(healed.Elevation) != 2 {
		tst.Fatalf("expected 2 elevation entries after dedup, got %d", len(healed.Elevation))
	}
	if healed.Elevation[0].S != 0 || healed.Elevation[1].S != 5 {
		tst.Errorf("expected sorted [0,5], got %v", healed.Elevation)
	}
	if healed.Elevation[1].A != 2 {
		tst.Errorf("expected first-occurrence entry retained (A=2), got %v", healed.Elevation[1].A)
	}
}

func Test_healroad_laneoffset_drops_shape01(tst *testing.T) {

	chk.PrintTitle("HealRoad: lane-offset present together with a shape profile drops the shape entries")

	raw := rmodel.RoadRaw{
		ID:           "r3",
		Length:       10,
		PlanView:     []rmodel.PlanViewEntry{{S: 0, Length: 10, Shape: rmodel.ShapeLine}},
		LaneOffsets:  []rmodel.CubicEntry{{S: 0, A: 1}},
		ShapeEntries: []rmodel.ShapeEntry{{S: 0, T: 0, A: 1}},
		LaneSections: []rmodel.LaneSectionRaw{
			{S: 0, Right: []rmodel.LaneRaw{{ID: -1, Type: "driving"}}},
		},
	}
	healed, list := HealRoad(raw, 1e-7)
	if len(healed.ShapeEntries) != 0 {
		tst.Errorf("expected shape entries dropped, got %v", healed.ShapeEntries)
	}
	found := false
	for _, i := range list.Items() {
		if i.Code == "road.shape.droppedForLaneOffset" {
			found = true
		}
	}
	if !found {
		tst.Errorf("expected a road.shape.droppedForLaneOffset issue")
	}
}

func Test_healroad_lane_idgap01(tst *testing.T) {

	chk.PrintTitle("HealRoad: a lane id gap breaking contiguity-from-1 is dropped with a WARNING")

	raw := rmodel.RoadRaw{
		ID:       "r4",
		Length:   10,
		PlanView: []rmodel.PlanViewEntry{{S: 0, Length: 10, Shape: rmodel.ShapeLine}},
		LaneSections: []rmodel.LaneSectionRaw{
			{S: 0, Right: []rmodel.LaneRaw{{ID: -1, Type: "driving"}, {ID: -3, Type: "driving"}}},
		},
	}
	healed, list := HealRoad(raw, 1e-7)
	if len(healed.LaneSections[0].Right) != 1 {
		tst.Fatalf("expected the gapped lane dropped, got %v", healed.LaneSections[0].Right)
	}
	found := false
	for _, i := range list.Items() {
		if i.Code == "road.lane.idGap" {
			found = true
		}
	}
	if !found {
		tst.Errorf("expected a road.lane.idGap issue")
	}
}

func Test_healroad_idempotent01(tst *testing.T) {

	chk.PrintTitle("HealRoad: healing an already-healed road produces no further issues")

	raw := rmodel.RoadRaw{
		ID:       "r5",
		Length:   10,
		PlanView: []rmodel.PlanViewEntry{{S: 0, Length: 10, Shape: rmodel.ShapeLine}},
		LaneSections: []rmodel.LaneSectionRaw{
			{S: 0, Right: []rmodel.LaneRaw{{ID: -1, Type: "driving"}}},
		},
	}
	once, _ := HealRoad(raw, 1e-7)
	twice, list := HealRoad(once, 1e-7)
	if len(list.Items()) != 0 {
		tst.Errorf("expected no issues re-healing an already-healed road, got %v", list.Items())
	}
	if twice.Length != once.Length {
		tst.Errorf("expected stable length across re-healing")
	}
}
