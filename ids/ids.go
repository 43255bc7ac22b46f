// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ids defines the hierarchical, opaque identifiers the pipeline
// assigns to every roadspace entity: a road id, a lane-section id scoped
// to its road, and a lane id scoped to its lane section. Each is a plain
// comparable value (usable as a map key) whose String form also serves
// as a stable heal.Issue location path.
package ids

import "fmt"

// RoadspaceID identifies a road within a model, taken directly from the
// raw model's road id (§6).
type RoadspaceID string

func (r RoadspaceID) String() string { return string(r) }

// LaneSectionID identifies one lane section of a road by its ordinal
// position (0-based, ascending by s) within that road.
type LaneSectionID struct {
	Road  RoadspaceID
	Index int
}

func NewLaneSectionID(road RoadspaceID, index int) LaneSectionID {
	return LaneSectionID{Road: road, Index: index}
}

func (l LaneSectionID) String() string {
	return fmt.Sprintf("%s/lanesection[%d]", l.Road, l.Index)
}

// LaneID identifies one lane by its signed lane number within a lane
// section (negative = right, positive = left, 0 = centre, per §3/§4.3).
type LaneID struct {
	Section LaneSectionID
	Number  int
}

func NewLaneID(section LaneSectionID, number int) LaneID {
	return LaneID{Section: section, Number: number}
}

func (l LaneID) String() string {
	return fmt.Sprintf("%s/lane[%d]", l.Section, l.Number)
}

// RoadObjectID identifies one placed road object or signal within a road,
// by its raw-model id (§4.4, §6).
type RoadObjectID struct {
	Road RoadspaceID
	Raw  string
}

func NewRoadObjectID(road RoadspaceID, raw string) RoadObjectID {
	return RoadObjectID{Road: road, Raw: raw}
}

func (o RoadObjectID) String() string {
	return fmt.Sprintf("%s/object[%s]", o.Road, o.Raw)
}

// JunctionID identifies a junction within a model.
type JunctionID string

func (j JunctionID) String() string { return string(j) }
