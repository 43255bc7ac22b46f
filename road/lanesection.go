// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package road

import (
	"fmt"
	"math"
	"sort"

	"github.com/cpmech/roadspace/curve"
	"github.com/cpmech/roadspace/heal"
	"github.com/cpmech/roadspace/ids"
	"github.com/cpmech/roadspace/numfn"
	"github.com/cpmech/roadspace/rmodel"
	"github.com/cpmech/roadspace/rng"
)

// buildLaneSections evaluates every lane section of a road (§4.3 step 5):
// sub-tolerance sections are dropped with a warning; sections are kept in
// ascending-start order and assumed already de-duplicated by C9.
func (b Builder) buildLaneSections(raw rmodel.RoadRaw, roadID ids.RoadspaceID, laneRef2D curve.Curve2D, elevFn, superElevFn numfn.Function, roadLength, tol float64) ([]LaneSection, *heal.List) {
	list := &heal.List{}
	raws := append([]rmodel.LaneSectionRaw{}, raw.LaneSections...)
	sort.SliceStable(raws, func(i, j int) bool { return raws[i].S < raws[j].S })

	var out []LaneSection
	for idx, ls := range raws {
		start := ls.S
		length := roadLength - start
		if idx+1 < len(raws) {
			length = raws[idx+1].S - start
		}
		secID := ids.NewLaneSectionID(roadID, idx)
		if length <= tol {
			list.Add(heal.Issue{
				Code: "road.lanesection.subtolerance", Severity: heal.Warning,
				Location: secID.String(), Message: "lane section length does not exceed tolerance; dropped",
			})
			continue
		}
		sectioned2D := curve.NewSectioned(laneRef2D, start, length)
		sectionedElev := numfn.Sectioned{Base: elevFn, Start: start, Length: length}
		sectionedSuperElev := numfn.Sectioned{Base: superElevFn, Start: start, Length: length}

		center := Lane{
			ID:     ids.NewLaneID(secID, 0),
			Number: 0,
			Type:   ls.Center.Type,
			Width:  numfn.Constant{D: rng.Closed(0, length), C: 0},
			Inner:  curve.Planar3D{Plane: sectioned2D, Elevation: sectionedElev, SuperElevation: sectionedSuperElev},
			Outer:  curve.Planar3D{Plane: sectioned2D, Elevation: sectionedElev, SuperElevation: sectionedSuperElev},
		}

		right := sortedByMagnitude(ls.Right)
		left := sortedByMagnitude(ls.Left)

		rightLanes, rightIssues := b.buildSide(right, secID, sectioned2D, sectionedElev, sectionedSuperElev, length, tol, -1)
		leftLanes, leftIssues := b.buildSide(left, secID, sectioned2D, sectionedElev, sectionedSuperElev, length, tol, 1)
		list.Merge(rightIssues)
		list.Merge(leftIssues)

		out = append(out, LaneSection{
			ID: secID, Start: start, Length: length,
			Center: center, Left: leftLanes, Right: rightLanes,
		})
	}
	if len(out) == 0 {
		list.Add(heal.Issue{Code: "road.lanesection.none", Severity: heal.Fatal, Location: string(roadID), Message: "road has no usable lane section (invariant 4)"})
	}
	return out, list
}

func sortedByMagnitude(lanes []rmodel.LaneRaw) []rmodel.LaneRaw {
	out := append([]rmodel.LaneRaw{}, lanes...)
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(float64(out[i].ID)) < math.Abs(float64(out[j].ID))
	})
	return out
}

// buildSide evaluates one side (left or right) of a lane section,
// accumulating inner/outer lateral offsets from the innermost lane
// outward (invariant 6).
func (b Builder) buildSide(lanes []rmodel.LaneRaw, secID ids.LaneSectionID, sectioned2D curve.Curve2D, sectionedElev, sectionedSuperElev numfn.Function, length, tol float64, sign float64) ([]Lane, *heal.List) {
	list := &heal.List{}
	var out []Lane
	cumulative := numfn.Function(numfn.Constant{D: rng.Closed(0, length), C: 0})

	for _, raw := range lanes {
		widthFn := buildLocalCubicPiecewise(raw.Widths, length, tol, func(e rmodel.WidthEntry) (float64, float64, float64, float64, float64) {
			return e.SOffset, e.A, e.B, e.C, e.D
		})
		var outerFn numfn.Function
		if len(raw.Widths) == 0 && len(raw.Border) > 0 {
			outerFn = buildLocalCubicPiecewise(raw.Border, length, tol, func(e rmodel.WidthEntry) (float64, float64, float64, float64, float64) {
				return e.SOffset, e.A, e.B, e.C, e.D
			})
		} else {
			signedWidth := numfn.Function(scaledFn{base: widthFn, scale: sign})
			sum, err := numfn.NewStacked([]numfn.Function{cumulative, signedWidth}, numfn.Sum)
			if err != nil {
				list.Add(heal.Issue{Code: "road.lane.width.inconsistent", Severity: heal.Warning,
					Location: fmt.Sprintf("%s/lane[%d]", secID, raw.ID), Message: err.Error()})
				continue
			}
			outerFn = sum
		}
		innerFn := cumulative

		innerHeight := buildHeightOffsetPiecewise(raw.HeightOffsets, length, tol, true)
		outerHeight := buildHeightOffsetPiecewise(raw.HeightOffsets, length, tol, false)

		innerElev, err1 := numfn.NewStacked([]numfn.Function{sectionedElev, innerHeight}, numfn.Sum)
		outerElev, err2 := numfn.NewStacked([]numfn.Function{sectionedElev, outerHeight}, numfn.Sum)
		if err1 != nil || err2 != nil {
			list.Add(heal.Issue{Code: "road.lane.height.inconsistent", Severity: heal.Warning,
				Location: fmt.Sprintf("%s/lane[%d]", secID, raw.ID), Message: "height-offset domain inconsistent with section"})
			continue
		}

		innerCurve2D := curve.LateralTranslated{Base: sectioned2D, Offset: fuzzyEval(innerFn, tol)}
		outerCurve2D := curve.LateralTranslated{Base: sectioned2D, Offset: fuzzyEval(outerFn, tol)}

		lane := Lane{
			ID:        ids.NewLaneID(secID, raw.ID),
			Number:    raw.ID,
			Type:      raw.Type,
			Width:     widthFn,
			Inner:     curve.Planar3D{Plane: innerCurve2D, Elevation: innerElev, SuperElevation: sectionedSuperElev},
			Outer:     curve.Planar3D{Plane: outerCurve2D, Elevation: outerElev, SuperElevation: sectionedSuperElev},
			Material:  raw.Material,
			Access:    raw.Access,
			RoadMarks: raw.RoadMarks,
		}
		out = append(out, lane)
		cumulative = outerFn
	}
	return out, list
}

func fuzzyEval(f numfn.Function, tol float64) func(float64) (float64, error) {
	return func(s float64) (float64, error) { return f.ValueFuzzy(s, tol) }
}

// scaledFn multiplies Base's value by a constant scale; used to apply the
// lane-side sign to a raw (always non-negative) width function.
type scaledFn struct {
	base  numfn.Function
	scale float64
}

func (f scaledFn) Domain() rng.Range { return f.base.Domain() }
func (f scaledFn) Value(x float64) (float64, error) {
	v, err := f.base.Value(x)
	return v * f.scale, err
}
func (f scaledFn) Slope(x float64) (float64, error) {
	v, err := f.base.Slope(x)
	return v * f.scale, err
}
func (f scaledFn) ValueFuzzy(x, tol float64) (float64, error) {
	v, err := f.base.ValueFuzzy(x, tol)
	return v * f.scale, err
}

// buildLocalCubicPiecewise is like buildCubicPiecewise but keyed by a
// generic accessor, used for both width and border entry lists (both
// rmodel.WidthEntry-shaped, both already local to the section start).
func buildLocalCubicPiecewise[T any](entries []T, length, tol float64, access func(T) (float64, float64, float64, float64, float64)) numfn.Function {
	if len(entries) == 0 {
		return numfn.Constant{D: rng.Closed(0, length), C: 0}
	}
	type kv struct {
		s          float64
		a, b, c, d float64
	}
	items := make([]kv, len(entries))
	for i, e := range entries {
		s, a, b, c, d := access(e)
		items[i] = kv{s, a, b, c, d}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].s < items[j].s })
	members := make([]numfn.Function, 0, len(items)+1)
	if items[0].s > tol {
		// The first entry does not start at the section's own origin;
		// hold its value flat backwards rather than leaving [0, items[0].s)
		// undefined, which would otherwise fail every sample the
		// discretiser takes at a lane section's own start.
		members = append(members, numfn.Constant{D: rng.Closed(0, items[0].s), C: items[0].a})
	}
	for i, it := range items {
		hi := length
		if i+1 < len(items) {
			hi = items[i+1].s
		}
		if hi <= it.s {
			continue
		}
		members = append(members, numfn.Polynomial{D: rng.Closed(it.s, hi), A: it.a, B: it.b, C: it.c, Dc: it.d})
	}
	if len(members) == 0 {
		return numfn.Constant{D: rng.Closed(0, length), C: 0}
	}
	return numfn.NewPiecewise(members)
}

// buildHeightOffsetPiecewise linearly interpolates a lane's inner or
// outer height-offset table between consecutive entries, holding the
// last value flat to the section end; an empty table is 0 everywhere
// (§4.3 tie-break: an out-of-domain height-offset evaluation is healed
// to 0 with a warning, handled by ValueFuzzy's clamp-to-nearest-endpoint
// behaviour combined with this flat extension).
func buildHeightOffsetPiecewise(entries []rmodel.HeightOffsetEntry, length, tol float64, inner bool) numfn.Function {
	if len(entries) == 0 {
		return numfn.Constant{D: rng.Closed(0, length), C: 0}
	}
	sorted := append([]rmodel.HeightOffsetEntry{}, entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SOffset < sorted[j].SOffset })
	value := func(e rmodel.HeightOffsetEntry) float64 {
		if inner {
			return e.Inner
		}
		return e.Outer
	}
	members := make([]numfn.Function, 0, len(sorted)+1)
	if sorted[0].SOffset > tol {
		members = append(members, numfn.Constant{D: rng.Closed(0, sorted[0].SOffset), C: value(sorted[0])})
	}
	for i, e := range sorted {
		v := value(e)
		if i+1 < len(sorted) {
			next := sorted[i+1]
			nv := value(next)
			if next.SOffset <= e.SOffset {
				continue
			}
			gradient := (nv - v) / (next.SOffset - e.SOffset)
			intercept := v - gradient*e.SOffset
			members = append(members, numfn.Linear{D: rng.Closed(e.SOffset, next.SOffset), Intercept: intercept, Gradient: gradient})
		} else {
			members = append(members, numfn.Constant{D: rng.Closed(e.SOffset, length), C: v})
		}
	}
	if len(members) == 0 {
		return numfn.Constant{D: rng.Closed(0, length), C: 0}
	}
	return numfn.NewPiecewise(members)
}
