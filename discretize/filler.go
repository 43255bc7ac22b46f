// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discretize

import (
	"fmt"

	"github.com/cpmech/roadspace/geom"
	"github.com/cpmech/roadspace/heal"
	"github.com/cpmech/roadspace/ids"
	"github.com/cpmech/roadspace/rmodel"
	"github.com/cpmech/roadspace/road"
	"github.com/cpmech/roadspace/topology"
)

// LateralFillers builds one thin vertical strip per pair of laterally
// adjacent lanes (same side, ascending |id|) of a section whose
// boundaries do not coincide — a height-offset discontinuity at the
// shared seam (§4.5 "lateral filler surfaces").
func (sp Sampler) LateralFillers(section road.LaneSection) ([]geom.Polygon3D, *heal.List) {
	list := &heal.List{}
	var out []geom.Polygon3D
	out = append(out, sp.fillSide(section.Left, "left", section.ID, list)...)
	out = append(out, sp.fillSide(section.Right, "right", section.ID, list)...)
	return out, list
}

func (sp Sampler) fillSide(lanes []road.Lane, side string, secID ids.LaneSectionID, list *heal.List) []geom.Polygon3D {
	var out []geom.Polygon3D
	for i := 0; i+1 < len(lanes); i++ {
		a, b := lanes[i], lanes[i+1]
		loc := fmt.Sprintf("%s/%s-seam[%d-%d]", secID, side, a.Number, b.Number)
		samples := a.Outer.Domain().Arrange(sp.Step, true, sp.Tol)
		var quads []geom.Polygon3D
		for k := 0; k+1 < len(samples); k++ {
			s0, s1 := samples[k], samples[k+1]
			p0a, e0a := a.Outer.PoseGlobal(s0)
			p0b, e0b := b.Inner.PoseGlobal(s0)
			p1a, e1a := a.Outer.PoseGlobal(s1)
			p1b, e1b := b.Inner.PoseGlobal(s1)
			if e0a != nil || e0b != nil || e1a != nil || e1b != nil {
				list.Add(heal.Issue{Code: "discretize.lateral.sample.failed", Severity: heal.Warning,
					Location: fmt.Sprintf("%s@%v", loc, s0), Message: "boundary evaluation failed"})
				continue
			}
			if p0a.Position.FuzzyEquals(p0b.Position, sp.Tol) && p1a.Position.FuzzyEquals(p1b.Position, sp.Tol) {
				continue // no seam discontinuity at this sample pair
			}
			quads = append(quads, geom.Quad(p0a.Position, p0b.Position, p1b.Position, p1a.Position))
		}
		out = append(out, quads...)
	}
	return out
}

// LongitudinalFillers builds the connecting quad between a lane and
// each of its successors from the topology resolver (§4.5 "longitudinal
// filler surfaces"): intra-road between adjacent sections, or in the
// global frame across a junction.
func LongitudinalFillers(roads map[ids.RoadspaceID]road.Road, model rmodel.Model, topo topology.Resolver) ([]geom.Polygon3D, *heal.List) {
	byRoad, list := LongitudinalFillersByRoad(roads, model, topo)
	var out []geom.Polygon3D
	for _, quads := range byRoad {
		out = append(out, quads...)
	}
	return out, list
}

// LongitudinalFillersByRoad is LongitudinalFillers, grouping each quad
// under the road of the lane it originates from so a pipeline can fold
// the result back into that road's own artefact set.
func LongitudinalFillersByRoad(roads map[ids.RoadspaceID]road.Road, model rmodel.Model, topo topology.Resolver) (map[ids.RoadspaceID][]geom.Polygon3D, *heal.List) {
	list := &heal.List{}
	out := map[ids.RoadspaceID][]geom.Polygon3D{}
	for _, r := range roads {
		for _, section := range r.Sections {
			for _, lane := range allRoadLanes(section) {
				laneID := lane.ID
				for _, succID := range topo.Successors(laneID) {
					succLane, ok := findLane(roads, succID)
					if !ok {
						list.Add(heal.Issue{Code: "discretize.longitudinal.missing", Severity: heal.Warning,
							Location: laneID.String(), Message: fmt.Sprintf("successor lane %s not found", succID)})
						continue
					}
					quad, err := longitudinalQuad(lane, succLane, topo.SuccessorAttachesAtEnd(laneID, succID))
					if err != nil {
						list.Add(heal.Issue{Code: "discretize.longitudinal.sample.failed", Severity: heal.Warning,
							Location: laneID.String(), Message: err.Error()})
						continue
					}
					out[laneID.Section.Road] = append(out[laneID.Section.Road], quad)
				}
			}
		}
	}
	return out, list
}

// longitudinalQuad connects a's end boundary to b's attachment boundary
// (§4.5: successor lanes always stitch a's end to b's own point of
// attachment, both already expressed in the global frame regardless of
// whether they belong to the same road or are joined across a
// junction). bAtEnd is true only for a junction connection whose
// contactPoint is "end": b's own section was chosen as its *last*
// section by the topology resolver, so the physical seam is at that
// section's far end (Hi), not its start (Lo) — every other case (same
// road, direct road-to-road, or a junction contactPoint of "start")
// attaches at b's section start.
func longitudinalQuad(a, b road.Lane, bAtEnd bool) (geom.Polygon3D, error) {
	aEnd := a.Outer.Domain().Hi.Value
	bAttach := b.Outer.Domain().Lo.Value
	if bAtEnd {
		bAttach = b.Outer.Domain().Hi.Value
	}

	aOuterEnd, err := a.Outer.PoseGlobal(aEnd)
	if err != nil {
		return geom.Polygon3D{}, err
	}
	aInnerEnd, err := a.Inner.PoseGlobal(aEnd)
	if err != nil {
		return geom.Polygon3D{}, err
	}
	bInnerAttach, err := b.Inner.PoseGlobal(bAttach)
	if err != nil {
		return geom.Polygon3D{}, err
	}
	bOuterAttach, err := b.Outer.PoseGlobal(bAttach)
	if err != nil {
		return geom.Polygon3D{}, err
	}
	return geom.Quad(aInnerEnd.Position, aOuterEnd.Position, bOuterAttach.Position, bInnerAttach.Position), nil
}

func allRoadLanes(section road.LaneSection) []road.Lane {
	out := make([]road.Lane, 0, len(section.Left)+len(section.Right))
	out = append(out, section.Left...)
	out = append(out, section.Right...)
	return out
}

func findLane(roads map[ids.RoadspaceID]road.Road, id ids.LaneID) (road.Lane, bool) {
	r, ok := roads[id.Section.Road]
	if !ok {
		return road.Lane{}, false
	}
	if id.Section.Index < 0 || id.Section.Index >= len(r.Sections) {
		return road.Lane{}, false
	}
	section := r.Sections[id.Section.Index]
	for _, lane := range allRoadLanes(section) {
		if lane.Number == id.Number {
			return lane, true
		}
	}
	if id.Number == 0 {
		return section.Center, true
	}
	return road.Lane{}, false
}
