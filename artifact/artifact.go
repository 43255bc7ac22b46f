// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package artifact defines the outbound discretised-geometry contract
// (§6): the plain value trees an external emitter consumes, each
// carrying its originating identifier and an accumulated attribute list.
package artifact

import (
	"github.com/cpmech/roadspace/geom"
	"github.com/cpmech/roadspace/heal"
)

// Attribute is one generically-typed (key, value) pair attached to an
// artifact, the GML-emitter-facing analogue of a lane/object's typed
// fields (material, type, road-mark, ...).
type Attribute struct {
	Key   string
	Value string
}

// LaneSurface is the discretised mesh for one lane's driveable surface.
type LaneSurface struct {
	LaneID     string // ids.LaneID.String()
	Mesh       []geom.Polygon3D
	Attributes []Attribute
}

// LaneBoundary is one discretised lane boundary polyline (inner, outer or
// centre).
type LaneBoundary struct {
	LaneID     string
	Side       string // "inner", "outer", or "centre"
	Polyline   []geom.Vector3D
	Attributes []Attribute
}

// Filler is a discretised filler mesh, either lateral (within a section)
// or longitudinal (between successive sections or across a junction).
type Filler struct {
	Kind       string // "lateral" or "longitudinal"
	Location   string // identifier path of the seam this filler bridges
	Mesh       []geom.Polygon3D
	Attributes []Attribute
}

// PlacedObject is the discretised geometry for one road object or
// signal.
type PlacedObject struct {
	ObjectID   string
	Mesh       []geom.Polygon3D
	Attributes []Attribute
}

// Road is the complete set of artefacts produced for one road.
type Road struct {
	RoadID     string
	Surfaces   []LaneSurface
	Boundaries []LaneBoundary
	Fillers    []Filler
	Objects    []PlacedObject
}

// Dataset is the complete outbound payload for a model run: one Road
// entry per successfully built road, plus the aggregated issue list
// (§6: "the emitter also receives the aggregated issue list").
type Dataset struct {
	Roads  []Road
	Issues *heal.List
}
