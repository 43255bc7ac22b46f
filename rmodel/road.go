// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rmodel

// PlanShape names a plan-view geometry kind.
type PlanShape string

const (
	ShapeLine       PlanShape = "line"
	ShapeSpiral     PlanShape = "spiral"
	ShapeArc        PlanShape = "arc"
	ShapePoly3      PlanShape = "poly3"
	ShapeParamPoly3 PlanShape = "parampoly3"
)

// PlanViewEntry is one member of a road's plan-view (reference-curve)
// geometry list: an absolute start s, an (x, y, heading) anchor, a
// length, and shape-specific coefficients.
type PlanViewEntry struct {
	S       float64
	X, Y    float64
	Heading float64
	Length  float64
	Shape   PlanShape

	// arc
	Curvature float64

	// spiral
	CurvatureStart float64
	CurvatureEnd   float64

	// poly3 (explicit y(x) = A+Bx+Cx^2+Dx^3)
	A, B, C, D float64

	// parampoly3 (u(p), v(p) independent cubics, p in [0,1] unless
	// Normalized is false, in which case p ranges over [0, Length])
	UA, UB, UC, UD float64
	VA, VB, VC, VD float64
	Normalized     bool
}

// CubicEntry is one entry of a piecewise-cubic attribute table keyed by
// absolute start s (elevation, super-elevation, lane-offset).
type CubicEntry struct {
	S          float64
	A, B, C, D float64
}

// ShapeEntry is one entry of the lateral shape table (cubic in t at a
// given absolute s) — carried through for completeness per §4.3 inputs
// but not evaluated by the core's planar-reference-curve builder (§1
// Non-goals: "supporting non-planar reference curves").
type ShapeEntry struct {
	S          float64
	T          float64
	A, B, C, D float64
}

// WidthEntry is one entry of a lane's width(s') or border(s') table,
// keyed by an offset relative to the owning lane section's start.
type WidthEntry struct {
	SOffset    float64
	A, B, C, D float64
}

// HeightOffsetEntry is one entry of a lane's inner/outer height-offset
// table.
type HeightOffsetEntry struct {
	SOffset float64
	Inner   float64
	Outer   float64
}

// RoadMarkRaw is one road-mark entry along a lane.
type RoadMarkRaw struct {
	SOffset float64
	Type    string
	Weight  string
	Color   string
	Width   float64
}

// LaneLinkRaw names a successor/predecessor lane by id, possibly in
// another road (§4.6).
type LaneLinkRaw struct {
	LaneID        int
	OtherRoadID   string // empty means same road
}

// LaneRaw is one lane of a lane section.
type LaneRaw struct {
	ID             int
	Type           string
	Widths         []WidthEntry
	Border         []WidthEntry // alternative absolute-offset description
	HeightOffsets  []HeightOffsetEntry
	RoadMarks      []RoadMarkRaw
	Material       string
	Speed          []CubicEntry
	Access         string
	Successors     []LaneLinkRaw
	Predecessors   []LaneLinkRaw
}

// LaneSectionRaw is one lane section of a road.
type LaneSectionRaw struct {
	S      float64
	Center LaneRaw
	Left   []LaneRaw // ordered ascending by |id|, ids +1,+2,...
	Right  []LaneRaw // ordered ascending by |id|, ids -1,-2,...
}

// RoadRaw is one road of the raw model.
type RoadRaw struct {
	ID             string
	Length         float64
	JunctionID     string // "-1" (or empty) means not part of a junction
	PlanView       []PlanViewEntry
	Elevation      []CubicEntry
	SuperElevation []CubicEntry
	ShapeEntries   []ShapeEntry
	LaneOffsets    []CubicEntry
	LaneSections   []LaneSectionRaw
	Objects        []ObjectRaw
	Signals        []ObjectRaw
}
