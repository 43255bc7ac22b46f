// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cpmech/roadspace/rmodel"
)

// HealRoad applies the C9 normalisation rules to one raw road, returning
// a healed copy (the input is never mutated) together with the issues
// recorded along the way. Running HealRoad twice on its own output
// produces the same road and no further issues (§8 property 8).
func HealRoad(raw rmodel.RoadRaw, tol float64) (rmodel.RoadRaw, *List) {
	list := &List{}
	loc := raw.ID
	if strings.TrimSpace(loc) == "" {
		loc = "<road>"
	}

	healed := raw
	healed.JunctionID = NormalizeString(raw.JunctionID, "-1", "road.junctionId", loc, list)

	healed.PlanView = healPlanView(raw.PlanView, loc, list)
	sumLen := 0.0
	for _, e := range healed.PlanView {
		sumLen += e.Length
	}
	if !fuzzyEquals(raw.Length, sumLen, tol) {
		list.Add(Issue{Code: "road.length.mismatch", Severity: Info, Location: loc,
			Message: fmt.Sprintf("road.length %v disagrees with summed plan-view length %v; set to the sum", raw.Length, sumLen),
			WasFixed: true})
		healed.Length = sumLen
	}

	healed.Elevation = SortAndDedupe(raw.Elevation, func(e rmodel.CubicEntry) float64 { return e.S }, "road.elevation.sort", loc, list)
	healed.SuperElevation = SortAndDedupe(raw.SuperElevation, func(e rmodel.CubicEntry) float64 { return e.S }, "road.superelevation.sort", loc, list)
	healed.LaneOffsets = SortAndDedupe(raw.LaneOffsets, func(e rmodel.CubicEntry) float64 { return e.S }, "road.laneoffset.sort", loc, list)

	if len(healed.LaneOffsets) > 0 && len(raw.ShapeEntries) > 0 {
		list.Add(Issue{Code: "road.shape.droppedForLaneOffset", Severity: Warning, Location: loc,
			Message: "lane-offset present together with a shape profile; shape entries dropped", WasFixed: true})
		healed.ShapeEntries = nil
	}

	healed.LaneSections = healLaneSections(raw.LaneSections, loc, list)

	return healed, list
}

func fuzzyEquals(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func healPlanView(entries []rmodel.PlanViewEntry, loc string, list *List) []rmodel.PlanViewEntry {
	sorted := SortAndDedupe(entries, func(e rmodel.PlanViewEntry) float64 { return e.S }, "road.planview.sort", loc, list)
	out := make([]rmodel.PlanViewEntry, 0, len(sorted))
	for i, e := range sorted {
		e.Length = NormalizePositive(e.Length, tolDefault, fmt.Sprintf("road.planview[%d].length", i), loc, list)
		e.Shape = rmodel.PlanShape(NormalizeString(string(e.Shape), string(rmodel.ShapeLine), fmt.Sprintf("road.planview[%d].shape", i), loc, list))
		out = append(out, e)
	}
	return out
}

// tolDefault is used where healing runs ahead of knowing the dataset's
// configured tolerance (plan-view length healing happens before Config
// is threaded through); 0 is the conservative choice — it rejects only
// genuinely non-finite or non-positive lengths, leaving sub-configured-
// tolerance rejection to the road builder (C5), which does know the
// real tolerance.
const tolDefault = 0

func healLaneSections(sections []rmodel.LaneSectionRaw, loc string, list *List) []rmodel.LaneSectionRaw {
	sorted := SortAndDedupe(sections, func(s rmodel.LaneSectionRaw) float64 { return s.S }, "road.lanesections.sort", loc, list)
	out := make([]rmodel.LaneSectionRaw, 0, len(sorted))
	for i, s := range sorted {
		s.Left = healLaneContiguity(s.Left, loc, i, "left", list)
		s.Right = healLaneContiguity(s.Right, loc, i, "right", list)
		out = append(out, s)
	}
	return out
}

// healLaneContiguity sorts a side's lanes by |id| and drops any lane
// whose id breaks the contiguous-range-from-1 requirement (invariant 5),
// recording a WARNING for every drop.
func healLaneContiguity(lanes []rmodel.LaneRaw, loc string, sectionIdx int, side string, list *List) []rmodel.LaneRaw {
	sorted := append([]rmodel.LaneRaw{}, lanes...)
	sort.SliceStable(sorted, func(i, j int) bool { return abs(sorted[i].ID) < abs(sorted[j].ID) })
	out := make([]rmodel.LaneRaw, 0, len(sorted))
	want := 1
	for _, l := range sorted {
		if abs(l.ID) != want {
			list.Add(Issue{Code: "road.lane.idGap", Severity: Warning,
				Location: fmt.Sprintf("%s/lanesection[%d]/%s", loc, sectionIdx, side),
				Message:  fmt.Sprintf("lane id %d breaks the contiguous range starting at %d; dropped", l.ID, want)})
			continue
		}
		out = append(out, l)
		want++
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
