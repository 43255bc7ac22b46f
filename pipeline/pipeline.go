// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline orchestrates the full evaluation chain (§5): heal,
// build, place objects, resolve topology, discretise and synthesise
// fillers, and assemble the outbound artifact.Dataset, run in parallel
// across roads and sequentially within a road.
package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/cpmech/roadspace/artifact"
	"github.com/cpmech/roadspace/discretize"
	"github.com/cpmech/roadspace/heal"
	"github.com/cpmech/roadspace/ids"
	"github.com/cpmech/roadspace/rmodel"
	"github.com/cpmech/roadspace/road"
	"github.com/cpmech/roadspace/roadobj"
	"github.com/cpmech/roadspace/topology"
)

// Exit codes (§7): 0 success (no fatal issue anywhere), 1 at least one
// road's issue list is fatal, 2 the configuration itself is invalid.
const (
	ExitOK            = 0
	ExitFatalIssues   = 1
	ExitInvalidConfig = 2
)

// roadJob is one unit of work handed to the worker pool: the raw road
// plus the slot its result belongs in, so results can be written back
// without any ordering guarantee from the pool itself (§5: "global
// output order is not specified when parallel").
type roadJob struct {
	index int
	raw   rmodel.RoadRaw
}

type indexedOutcome struct {
	index   int
	outcome roadOutcome
}

// Run evaluates model under config and returns the assembled dataset
// together with the process exit code its caller should use (§7). A
// road whose Build step fails outright is recorded as a FATAL issue
// against that road and simply omitted from Dataset.Roads; it never
// aborts the rest of the run. An object that cannot be placed is
// recorded as a WARNING and dropped; its road is kept.
//
// Roads are distributed over a fixed pool of config.Workers goroutines
// (default 1, deterministic), each pulling jobs off a channel and
// pushing results to an output channel — the teacher's goroutine +
// buffered channel rendezvous pattern, generalised to a reusable pool.
// ctx is checked once per road (cooperative cancellation, §5): a road
// still queued when ctx is cancelled is skipped and recorded as
// cancelled rather than built.
func Run(ctx context.Context, model rmodel.Model, config rmodel.Config) (artifact.Dataset, int) {
	config.SetDefault()
	if err := config.Validate(); err != nil {
		list := &heal.List{}
		list.Add(heal.Issue{Code: "config.invalid", Severity: heal.Fatal, Location: "<config>", Message: err.Error()})
		return artifact.Dataset{Issues: list}, ExitInvalidConfig
	}

	// Healing runs once, up front, and sequentially (it is cheap compared
	// to build/discretise and its output must be stable before topology
	// is resolved): topology.Build keys every LaneSectionID off the same
	// post-heal lane-section order road.Builder uses, since heal.HealRoad
	// can reorder or drop lane sections (§4.3/§4.9 step ordering: heal ->
	// build -> topology).
	healedRoads := make([]rmodel.RoadRaw, len(model.Roads))
	healIssuesByRoad := make([]*heal.List, len(model.Roads))
	for i, raw := range model.Roads {
		healed, healIssues := heal.HealRoad(raw, config.Tolerance)
		healedRoads[i] = healed
		healIssuesByRoad[i] = healIssues
	}
	healedModel := rmodel.Model{Header: model.Header, Roads: healedRoads, Junctions: model.Junctions}

	topo := topology.Build(healedModel)
	builder := road.Builder{Config: config, Header: model.Header}
	sampler := discretize.Sampler{Step: config.DiscretizationStepSize, Tol: config.Tolerance}

	jobs := make(chan roadJob, len(healedRoads))
	results := make(chan indexedOutcome, len(healedRoads))
	for i, healed := range healedRoads {
		jobs <- roadJob{index: i, raw: healed}
	}
	close(jobs)

	for w := 0; w < config.Workers; w++ {
		go func() {
			for job := range jobs {
				roadID := ids.RoadspaceID(job.raw.ID)
				select {
				case <-ctx.Done():
					list := &heal.List{}
					list.Add(heal.Issue{Code: "pipeline.road.cancelled", Severity: heal.Fatal,
						Location: string(roadID), Message: ctx.Err().Error()})
					results <- indexedOutcome{job.index, roadOutcome{id: roadID, issues: list}}
				default:
					results <- indexedOutcome{job.index, buildOneRoad(job.raw, builder, config, sampler)}
				}
			}
		}()
	}

	outcomes := make([]roadOutcome, len(healedRoads))
	for range healedRoads {
		r := <-results
		outcomes[r.index] = r.outcome
	}

	built := map[ids.RoadspaceID]road.Road{}
	for _, o := range outcomes {
		if o.ok {
			built[o.id] = o.built
		}
	}

	longFillers, longIssues := discretize.LongitudinalFillersByRoad(built, healedModel, topo)

	dataset := artifact.Dataset{Issues: &heal.List{}}
	dataset.Issues.Merge(longIssues)
	for i := range outcomes {
		o := &outcomes[i]
		dataset.Issues.Merge(healIssuesByRoad[i])
		dataset.Issues.Merge(o.issues)
		if !o.ok {
			continue
		}
		if quads, has := longFillers[o.id]; has && len(quads) > 0 {
			o.art.Fillers = append(o.art.Fillers, artifact.Filler{Kind: "longitudinal", Location: string(o.id), Mesh: quads})
		}
		dataset.Roads = append(dataset.Roads, o.art)
	}
	sort.Slice(dataset.Roads, func(i, j int) bool { return dataset.Roads[i].RoadID < dataset.Roads[j].RoadID })

	code := ExitOK
	if dataset.Issues.IsFatal() {
		code = ExitFatalIssues
	}
	return dataset, code
}

// roadOutcome is buildOneRoad's per-road result, carried back to Run
// over the outcomes slice (one slot per road, indexed so goroutines
// never contend on a shared append).
type roadOutcome struct {
	id     ids.RoadspaceID
	built  road.Road
	placed []roadobj.Placed
	art    artifact.Road
	issues *heal.List
	ok     bool
}

// buildOneRoad runs the sequential per-road chain (§5): build -> place
// objects/signals -> discretise, on a road already healed by Run (heal
// runs once up front, ahead of topology resolution). Every step's issues
// accumulate into the returned list regardless of whether a later step
// fails.
func buildOneRoad(healed rmodel.RoadRaw, builder road.Builder, config rmodel.Config, sampler discretize.Sampler) roadOutcome {
	list := &heal.List{}
	roadID := ids.RoadspaceID(healed.ID)

	built, buildIssues, err := builder.Build(healed)
	list.Merge(buildIssues)
	if err != nil {
		list.Add(heal.Issue{Code: "pipeline.road.build.failed", Severity: heal.Fatal, Location: string(roadID), Message: err.Error()})
		return roadOutcome{id: roadID, issues: list}
	}

	placer := roadobj.Placer{Reference: built.Reference, Tolerance: config.Tolerance, SweepStep: config.SweepDiscretizationStepSize}
	var placed []roadobj.Placed
	for _, objRaw := range append(append([]rmodel.ObjectRaw{}, built.Objects...), built.Signals...) {
		var obj roadobj.Placed
		var placeIssues *heal.List
		var placeErr error
		if objRaw.OutlineIsRoadCorners {
			obj, placeIssues, placeErr = placer.PlaceRoadCornerOutline(roadID, objRaw)
		} else {
			obj, placeIssues, placeErr = placer.Place(roadID, objRaw)
		}
		list.Merge(placeIssues)
		if placeErr != nil {
			list.Add(heal.Issue{Code: "pipeline.object.place.failed", Severity: heal.Warning,
				Location: fmt.Sprintf("%s/object[%s]", roadID, objRaw.ID), Message: placeErr.Error()})
			continue
		}
		if obj.Shape != nil {
			placed = append(placed, obj)
		}
	}

	art, discIssues := artifact.BuildRoad(built, placed, sampler)
	list.Merge(discIssues)

	return roadOutcome{id: roadID, built: built, placed: placed, art: art, issues: list, ok: true}
}
