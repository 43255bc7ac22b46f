// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package road implements the road-space builder (component C5): it
// assembles a healed rmodel.RoadRaw into an evaluable Road whose
// reference curve, lane-reference curve and per-lane-section boundary
// curves are all curve.Curve3D values ready for discretisation (C7).
package road

import (
	"fmt"
	"sort"

	"github.com/cpmech/roadspace/curve"
	"github.com/cpmech/roadspace/heal"
	"github.com/cpmech/roadspace/ids"
	"github.com/cpmech/roadspace/numfn"
	"github.com/cpmech/roadspace/rmodel"
	"github.com/cpmech/roadspace/rng"
	"github.com/cpmech/roadspace/xform"
)

// Lane is one evaluated lane of a lane section: its boundary curves are
// already 3-D, curve-relative to the lane section's own local s'.
type Lane struct {
	ID       ids.LaneID
	Number   int
	Type     string
	Width    numfn.Function
	Inner    curve.Curve3D
	Outer    curve.Curve3D
	Material string
	Access   string
	RoadMarks []rmodel.RoadMarkRaw
}

// LaneSection is one evaluated lane section of a Road.
type LaneSection struct {
	ID     ids.LaneSectionID
	Start  float64
	Length float64
	Center Lane
	Left   []Lane // ascending |id| = 1, 2, ...
	Right  []Lane // ascending |id| = 1, 2, ...
}

// Road is the built, evaluable road (C5's output).
type Road struct {
	ID            ids.RoadspaceID
	Length        float64
	JunctionID    string
	Reference     curve.Curve3D
	LaneReference curve.Curve3D
	LaneOffset    numfn.Function
	Sections      []LaneSection
	Objects       []rmodel.ObjectRaw
	Signals       []rmodel.ObjectRaw
}

// Builder builds Road values from healed raw roads, sharing the dataset
// configuration and header pre-transform across every road it builds.
type Builder struct {
	Config rmodel.Config
	Header rmodel.Header
}

// headerAffine returns the dataset-wide pre-transform derived from the
// model header's planar offset (§6), applied on top of every road's own
// plan-view placement. The header's z offset is not a planar affine; it
// is folded into every road's elevation function instead, by
// applyElevationOffset below.
func (b Builder) headerAffine() xform.AffineSequence2D {
	if b.Header.OffsetX == 0 && b.Header.OffsetY == 0 && b.Header.OffsetHdg == 0 {
		return nil
	}
	return xform.AffineSequence2D{xform.FromPose2D(b.Header.OffsetX, b.Header.OffsetY, b.Header.OffsetHdg)}
}

// applyElevationOffset folds the header's z offset into a road's
// elevation function (§6: "offset applied before any evaluation"), the
// same requirement headerAffine already satisfies for x/y/heading.
func (b Builder) applyElevationOffset(elevFn numfn.Function, length float64) numfn.Function {
	if b.Header.OffsetZ == 0 {
		return elevFn
	}
	offset := numfn.Constant{D: rng.Closed(0, length), C: b.Header.OffsetZ}
	stacked, err := numfn.NewStacked([]numfn.Function{elevFn, offset}, numfn.Sum)
	if err != nil {
		return elevFn
	}
	return stacked
}

// Build assembles one Road from a healed raw road (§4.3). It never
// returns a nil *heal.List; the caller merges it into the per-road
// diagnostics regardless of whether err is also non-nil (err is reserved
// for failures severe enough that no Road could be produced at all).
func (b Builder) Build(raw rmodel.RoadRaw) (Road, *heal.List, error) {
	list := &heal.List{}
	tol := b.Config.Tolerance
	roadID := ids.RoadspaceID(raw.ID)

	plan2D, planIssues, err := b.buildPlanView(raw, roadID, tol)
	list.Merge(listOf(planIssues))
	if err != nil {
		return Road{}, list, fmt.Errorf("road %s: %w", raw.ID, err)
	}

	length := plan2D.Length()
	if length <= tol {
		return Road{}, list, fmt.Errorf("road %s: plan-view length %v does not exceed tolerance", raw.ID, length)
	}

	elevFn := b.applyElevationOffset(buildCubicPiecewise(raw.Elevation, length, tol), length)
	laneOffsetFn := buildCubicPiecewise(raw.LaneOffsets, length, tol)
	superElevFn := buildCubicPiecewise(raw.SuperElevation, length, tol)

	reference3D := curve.Planar3D{Plane: plan2D, Elevation: elevFn, SuperElevation: superElevFn}

	laneRef2D := curve.LateralTranslated{
		Base:   plan2D,
		Offset: func(s float64) (float64, error) { return laneOffsetFn.ValueFuzzy(s, tol) },
	}
	laneReference3D := curve.Planar3D{Plane: laneRef2D, Elevation: elevFn, SuperElevation: superElevFn}

	sections, secIssues := b.buildLaneSections(raw, roadID, laneRef2D, elevFn, superElevFn, length, tol)
	list.Merge(secIssues)
	if len(sections) == 0 {
		return Road{}, list, fmt.Errorf("road %s: no usable lane section", raw.ID)
	}

	road := Road{
		ID:            roadID,
		Length:        length,
		JunctionID:    raw.JunctionID,
		Reference:     reference3D,
		LaneReference: laneReference3D,
		LaneOffset:    laneOffsetFn,
		Sections:      sections,
		Objects:       raw.Objects,
		Signals:       raw.Signals,
	}
	return road, list, nil
}

// buildPlanView assembles the 2-D reference composite curve from the
// plan-view entry list (§4.3 step 1).
func (b Builder) buildPlanView(raw rmodel.RoadRaw, roadID ids.RoadspaceID, tol float64) (curve.Composite2D, []heal.Issue, error) {
	entries := append([]rmodel.PlanViewEntry{}, raw.PlanView...)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].S < entries[j].S })

	var members []curve.CompositeMember
	var issues []heal.Issue
	for i, e := range entries {
		if e.Length <= tol {
			issues = append(issues, heal.Issue{
				Code: "road.planview.subtolerance", Severity: heal.Warning,
				Location: fmt.Sprintf("%s/planview[%d]", roadID, i),
				Message:  "plan-view entry length does not exceed tolerance; dropped",
			})
			continue
		}
		rightOpen := i != len(entries)-1
		affines := xform.AffineSequence2D{xform.FromPose2D(e.X, e.Y, e.Heading)}
		affines = append(affines, b.headerAffine()...)
		seg, err := planViewSegment(e, tol, rightOpen, affines)
		if err != nil {
			issues = append(issues, heal.Issue{
				Code: "road.planview.degenerate", Severity: heal.Warning,
				Location: fmt.Sprintf("%s/planview[%d]", roadID, i),
				Message:  "plan-view entry rejected: " + err.Error(),
			})
			continue
		}
		members = append(members, curve.CompositeMember{Curve: seg, Start: e.S})
	}
	if len(members) == 0 {
		return curve.Composite2D{}, issues, fmt.Errorf("no usable plan-view entries")
	}
	comp, healIssues, err := curve.NewComposite2D(members, tol, nil, string(roadID))
	issues = append(issues, healIssues...)
	if err != nil {
		return curve.Composite2D{}, issues, err
	}
	return comp, issues, nil
}

func planViewSegment(e rmodel.PlanViewEntry, tol float64, rightOpen bool, affines xform.AffineSequence2D) (curve.Curve2D, error) {
	switch e.Shape {
	case rmodel.ShapeLine, "":
		return curve.NewLine(e.Length, tol, rightOpen, affines), nil
	case rmodel.ShapeArc:
		return curve.NewArc(e.Curvature, e.Length, tol, affines)
	case rmodel.ShapeSpiral:
		lin := numfn.Linear{
			D:         rng.Closed(0, e.Length),
			Intercept: e.CurvatureStart,
			Gradient:  (e.CurvatureEnd - e.CurvatureStart) / e.Length,
		}
		return curve.NewSpiral(lin, e.Length, tol, affines)
	case rmodel.ShapePoly3:
		return curve.NewCubicPoly(e.A, e.B, e.C, e.D, e.Length, tol, affines)
	case rmodel.ShapeParamPoly3:
		uc, vc := [4]float64{e.UA, e.UB, e.UC, e.UD}, [4]float64{e.VA, e.VB, e.VC, e.VD}
		if !e.Normalized {
			uc, vc = denormalizeParamPoly3(uc, vc, e.Length)
		}
		return curve.NewParamCubic(uc, vc, e.Length, tol, affines)
	default:
		return nil, fmt.Errorf("unknown plan-view shape %q", e.Shape)
	}
}

// denormalizeParamPoly3 rescales coefficients given for p in [0, length]
// into the equivalent coefficients for the normalized parameter
// q = p/length (curve.ParamCubic's own convention).
func denormalizeParamPoly3(u, v [4]float64, length float64) ([4]float64, [4]float64) {
	var uo, vo [4]float64
	l := 1.0
	for i := 0; i < 4; i++ {
		uo[i] = u[i] * l
		vo[i] = v[i] * l
		l *= length
	}
	return uo, vo
}

// buildCubicPiecewise converts a healed, s-sorted list of cubic entries
// into a numfn.Piecewise covering [first entry's s, length], with the
// last interval extended to length (§4.3 step 2); positions before the
// first entry's s lie outside its domain. An empty list yields a
// constant 0.
func buildCubicPiecewise(entries []rmodel.CubicEntry, length, tol float64) numfn.Function {
	if len(entries) == 0 {
		return numfn.Constant{D: rng.Closed(0, length), C: 0}
	}
	sorted := append([]rmodel.CubicEntry{}, entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].S < sorted[j].S })
	members := make([]numfn.Function, 0, len(sorted))
	for i, e := range sorted {
		hi := length
		if i+1 < len(sorted) {
			hi = sorted[i+1].S
		}
		if hi <= e.S {
			continue
		}
		members = append(members, numfn.Polynomial{D: rng.Closed(e.S, hi), A: e.A, B: e.B, C: e.C, Dc: e.D})
	}
	if len(members) == 0 {
		return numfn.Constant{D: rng.Closed(0, length), C: 0}
	}
	return numfn.NewPiecewise(members)
}

func listOf(issues []heal.Issue) *heal.List {
	l := &heal.List{}
	for _, i := range issues {
		l.Add(i)
	}
	return l
}

