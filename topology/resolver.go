// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topology implements the topology resolver (component C8): a
// directed multigraph of lane-to-lane "is a successor of" edges, built
// from intra-road lane links and junction connections, queried in O(1)
// once built.
package topology

import (
	"github.com/cpmech/roadspace/ids"
	"github.com/cpmech/roadspace/rmodel"
)

// edgeKey identifies one directed successor edge, used to look up the
// junction contact-point metadata that isn't otherwise recoverable from
// the two LaneIDs alone.
type edgeKey struct {
	From, To ids.LaneID
}

// Resolver answers successor/predecessor queries over the lane graph of
// one healed model. Cycles are permitted (ring roads, §4.6).
type Resolver struct {
	successors   map[ids.LaneID][]ids.LaneID
	predecessors map[ids.LaneID][]ids.LaneID
	// contactEnd marks successor edges synthesised from a junction
	// connection whose contactPoint is "end": the target lane attaches to
	// the junction at its own section's far end, not its start (§4.5),
	// which a filler builder needs to know to stitch the right boundary.
	contactEnd map[edgeKey]bool
}

// Build constructs the lane graph for a healed model (§4.6): edges from
// each lane's own Successors/Predecessors links (resolved to the
// adjacent section within the same road, or to the far road's boundary
// section when OtherRoadID names another road directly), plus edges
// synthesised from every junction's connections.
func Build(model rmodel.Model) Resolver {
	r := Resolver{
		successors:   map[ids.LaneID][]ids.LaneID{},
		predecessors: map[ids.LaneID][]ids.LaneID{},
		contactEnd:   map[edgeKey]bool{},
	}
	roads := map[string]rmodel.RoadRaw{}
	for _, road := range model.Roads {
		roads[road.ID] = road
	}

	for _, road := range model.Roads {
		roadID := ids.RoadspaceID(road.ID)
		n := len(road.LaneSections)
		for secIdx, section := range road.LaneSections {
			secID := ids.NewLaneSectionID(roadID, secIdx)
			for _, lane := range allLanes(section) {
				laneID := ids.NewLaneID(secID, lane.ID)
				for _, link := range lane.Successors {
					r.addEdge(laneID, resolveLink(link, roadID, secIdx, n, true, roads), true)
				}
				for _, link := range lane.Predecessors {
					r.addEdge(laneID, resolveLink(link, roadID, secIdx, n, false, roads), false)
				}
			}
		}
	}

	for _, junction := range model.Junctions {
		for _, conn := range junction.Connections {
			incoming, ok := roads[conn.IncomingRoadID]
			if !ok || len(incoming.LaneSections) == 0 {
				continue
			}
			connecting, ok := roads[conn.ConnectingRoadID]
			if !ok || len(connecting.LaneSections) == 0 {
				continue
			}
			// The incoming road is assumed to approach the junction at its
			// own last section (the common "driving forward into the
			// junction" case); the connecting road's contact section is
			// named explicitly by the connection's contactPoint.
			fromSecIdx := len(incoming.LaneSections) - 1
			fromSecID := ids.NewLaneSectionID(ids.RoadspaceID(incoming.ID), fromSecIdx)
			toSecIdx := 0
			if conn.ContactPoint == rmodel.ContactEnd {
				toSecIdx = len(connecting.LaneSections) - 1
			}
			toSecID := ids.NewLaneSectionID(ids.RoadspaceID(connecting.ID), toSecIdx)

			for _, link := range conn.LaneLinks {
				from := ids.NewLaneID(fromSecID, link.From)
				to := ids.NewLaneID(toSecID, link.To)
				r.successors[from] = append(r.successors[from], to)
				r.predecessors[to] = append(r.predecessors[to], from)
				if conn.ContactPoint == rmodel.ContactEnd {
					r.contactEnd[edgeKey{From: from, To: to}] = true
				}
			}
		}
	}

	return r
}

// resolveLink turns one raw lane link into the LaneID it names: same
// road -> the neighbouring section (forward: secIdx+1, backward:
// secIdx-1); another road named directly (no junction) -> the far
// road's first section for a successor link, last section for a
// predecessor link, per §4.5's road-to-road stitching convention.
func resolveLink(link rmodel.LaneLinkRaw, roadID ids.RoadspaceID, secIdx, sectionCount int, forward bool, roads map[string]rmodel.RoadRaw) ids.LaneID {
	if link.OtherRoadID == "" {
		target := secIdx + 1
		if !forward {
			target = secIdx - 1
		}
		if target < 0 {
			target = 0
		}
		if target >= sectionCount {
			target = sectionCount - 1
		}
		return ids.NewLaneID(ids.NewLaneSectionID(roadID, target), link.LaneID)
	}
	otherID := ids.RoadspaceID(link.OtherRoadID)
	other := roads[link.OtherRoadID]
	secCount := len(other.LaneSections)
	target := 0
	if forward {
		target = 0 // successor enters the other road at its start
	} else if secCount > 0 {
		target = secCount - 1 // predecessor comes from the other road's end
	}
	return ids.NewLaneID(ids.NewLaneSectionID(otherID, target), link.LaneID)
}

func (r Resolver) addEdge(from, to ids.LaneID, forward bool) {
	if forward {
		r.successors[from] = append(r.successors[from], to)
		r.predecessors[to] = append(r.predecessors[to], from)
	} else {
		r.predecessors[from] = append(r.predecessors[from], to)
		r.successors[to] = append(r.successors[to], from)
	}
}

func allLanes(section rmodel.LaneSectionRaw) []rmodel.LaneRaw {
	out := make([]rmodel.LaneRaw, 0, len(section.Left)+len(section.Right)+1)
	out = append(out, section.Left...)
	out = append(out, section.Right...)
	return out
}

// Successors returns the set of lanes that are a successor of id (§4.6
// query surface); the returned slice must not be mutated by the caller.
func (r Resolver) Successors(id ids.LaneID) []ids.LaneID { return r.successors[id] }

// Predecessors returns the set of lanes that are a predecessor of id.
func (r Resolver) Predecessors(id ids.LaneID) []ids.LaneID { return r.predecessors[id] }

// SuccessorAttachesAtEnd reports whether the successor edge from -> to
// was synthesised from a junction connection with contactPoint "end":
// the target lane must be stitched at its own section's far end rather
// than its start (§4.5).
func (r Resolver) SuccessorAttachesAtEnd(from, to ids.LaneID) bool {
	return r.contactEnd[edgeKey{From: from, To: to}]
}
