// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package artifact

import (
	"github.com/cpmech/roadspace/discretize"
	"github.com/cpmech/roadspace/geom"
	"github.com/cpmech/roadspace/heal"
	"github.com/cpmech/roadspace/road"
	"github.com/cpmech/roadspace/roadobj"
)

// BuildRoad discretises one already-built Road into its outbound
// artefacts (§6): a lane surface mesh and boundary polylines per lane,
// lateral filler meshes per section, and a mesh per placed object.
// Longitudinal fillers are computed separately (they need the topology
// graph across every road) and are merged in by the caller.
func BuildRoad(r road.Road, objects []roadobj.Placed, sampler discretize.Sampler) (Road, *heal.List) {
	list := &heal.List{}
	out := Road{RoadID: string(r.ID)}

	for _, section := range r.Sections {
		for _, lane := range allLanes(section) {
			loc := lane.ID.String()
			surf, issues := sampler.SampleSurface(lane.Inner, lane.Outer, loc)
			list.Merge(issues)
			out.Surfaces = append(out.Surfaces, LaneSurface{
				LaneID: loc, Mesh: surf.Quads,
				Attributes: []Attribute{{Key: "type", Value: lane.Type}, {Key: "material", Value: lane.Material}},
			})

			inner, issuesIn := sampler.SampleCurve(lane.Inner, loc+"/inner")
			list.Merge(issuesIn)
			outer, issuesOut := sampler.SampleCurve(lane.Outer, loc+"/outer")
			list.Merge(issuesOut)
			out.Boundaries = append(out.Boundaries,
				LaneBoundary{LaneID: loc, Side: "inner", Polyline: inner},
				LaneBoundary{LaneID: loc, Side: "outer", Polyline: outer},
			)
		}
		if len(section.Left) == 0 && len(section.Right) == 0 {
			continue
		}
		centre, issuesC := sampler.SampleCurve(section.Center.Outer, section.ID.String()+"/centre")
		list.Merge(issuesC)
		out.Boundaries = append(out.Boundaries, LaneBoundary{LaneID: section.Center.ID.String(), Side: "centre", Polyline: centre})

		lateral, lateralIssues := sampler.LateralFillers(section)
		list.Merge(lateralIssues)
		if len(lateral) > 0 {
			out.Fillers = append(out.Fillers, Filler{Kind: "lateral", Location: section.ID.String(), Mesh: lateral})
		}
	}

	for _, obj := range objects {
		mesh := placedMesh(obj)
		out.Objects = append(out.Objects, PlacedObject{
			ObjectID: obj.ID.String(), Mesh: mesh,
			Attributes: []Attribute{{Key: "type", Value: obj.Raw.Type}},
		})
	}

	return out, list
}

// placedMesh instantiates a placed object's local-frame shape at every
// one of its resolved frames, producing one combined mesh; a swept
// object (len(Frames) > 1 with a Sweep shape) is already one continuous
// surface and contributes its polygons once.
func placedMesh(obj roadobj.Placed) []geom.Polygon3D {
	if _, isSweep := obj.Shape.(geom.Sweep); isSweep {
		return obj.Shape.PolygonsLocal()
	}
	local := obj.Shape.PolygonsLocal()
	var out []geom.Polygon3D
	for _, frame := range obj.Frames {
		aff := frame.Affine()
		for _, poly := range local {
			out = append(out, poly.Transform(aff))
		}
	}
	return out
}

func allLanes(section road.LaneSection) []road.Lane {
	out := make([]road.Lane, 0, len(section.Left)+len(section.Right))
	out = append(out, section.Left...)
	out = append(out, section.Right...)
	return out
}
