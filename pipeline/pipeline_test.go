// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/roadspace/rmodel"
)

func straightRoad(id string) rmodel.RoadRaw {
	return rmodel.RoadRaw{
		ID:       id,
		Length:   20,
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
}

func Test_run_single_road01(tst *testing.T) {

	chk.PrintTitle("pipeline: a single straight road with one lane produces one artifact.Road and no fatal issues")

	model := rmodel.Model{Roads: []rmodel.RoadRaw{straightRoad("r1")}}
	dataset, code := Run(context.Background(), model, rmodel.Config{})
	if code != ExitOK {
		tst.Fatalf("expected ExitOK, got %d (issues: %v)", code, dataset.Issues.Items())
	}
	if len(dataset.Roads) != 1 {
		tst.Fatalf("expected exactly one road in the dataset, got %d", len(dataset.Roads))
	}
	if len(dataset.Roads[0].Surfaces) == 0 {
		tst.Errorf("expected at least one lane surface mesh")
	}
}

func Test_run_invalid_config01(tst *testing.T) {

	chk.PrintTitle("pipeline: an invalid configuration fails fast with ExitInvalidConfig and no roads processed")

	model := rmodel.Model{Roads: []rmodel.RoadRaw{straightRoad("r1")}}
	dataset, code := Run(context.Background(), model, rmodel.Config{DiscretizationStepSize: -1})
	if code != ExitInvalidConfig {
		tst.Errorf("expected ExitInvalidConfig, got %d", code)
	}
	if len(dataset.Roads) != 0 {
		tst.Errorf("expected no roads to be built for an invalid configuration")
	}
	if !dataset.Issues.IsFatal() {
		tst.Errorf("expected the configuration error to be recorded as a FATAL issue")
	}
}

func Test_run_junction_longitudinal_filler01(tst *testing.T) {

	chk.PrintTitle("pipeline: two roads joined by a junction connection get a longitudinal filler attributed to the incoming road")

	in := straightRoad("in")
	in.LaneSections[0].Right[0].Successors = []rmodel.LaneLinkRaw{{LaneID: -1, OtherRoadID: "out"}}
	out := straightRoad("out")

	model := rmodel.Model{
		Roads: []rmodel.RoadRaw{in, out},
		Junctions: []rmodel.JunctionRaw{
			{
				ID: "j1",
				Connections: []rmodel.ConnectionRaw{
					{IncomingRoadID: "in", ConnectingRoadID: "out", ContactPoint: rmodel.ContactStart,
						LaneLinks: []rmodel.ConnectionLaneLink{{From: -1, To: -1}}},
				},
			},
		},
	}
	dataset, code := Run(context.Background(), model, rmodel.Config{})
	if code != ExitOK {
		tst.Fatalf("expected ExitOK, got %d (issues: %v)", code, dataset.Issues.Items())
	}
	var foundLongitudinal bool
	for _, r := range dataset.Roads {
		if r.RoadID != "in" {
			continue
		}
		for _, f := range r.Fillers {
			if f.Kind == "longitudinal" {
				foundLongitudinal = true
			}
		}
	}
	if !foundLongitudinal {
		tst.Errorf("expected a longitudinal filler recorded against the incoming road")
	}
}

func Test_run_fatal_road_is_isolated01(tst *testing.T) {

	chk.PrintTitle("pipeline: one road with no usable plan-view entries is dropped with a FATAL issue, without aborting the rest of the run")

	bad := rmodel.RoadRaw{ID: "bad", Length: 0}
	good := straightRoad("good")

	model := rmodel.Model{Roads: []rmodel.RoadRaw{bad, good}}
	dataset, code := Run(context.Background(), model, rmodel.Config{})
	if code != ExitFatalIssues {
		tst.Errorf("expected ExitFatalIssues, got %d", code)
	}
	if len(dataset.Roads) != 1 || dataset.Roads[0].RoadID != "good" {
		tst.Fatalf("expected only the good road to survive, got %v", dataset.Roads)
	}
}
