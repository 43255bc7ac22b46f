// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roadobj implements road-object placement (component C6):
// classifying a raw object's geometry descriptor into a concrete
// geom.Shape and placing it at its curve-relative anchor, including the
// repeat-element sweep/discrete-instance expansion.
package roadobj

import (
	"fmt"
	"math"

	"github.com/cpmech/roadspace/curve"
	"github.com/cpmech/roadspace/geom"
	"github.com/cpmech/roadspace/heal"
	"github.com/cpmech/roadspace/ids"
	"github.com/cpmech/roadspace/rmodel"
)

// Placed is one fully resolved road object or signal: its footprint
// shape in its own local frame, and the global pose(s) at which that
// shape must be instantiated.
type Placed struct {
	ID     ids.RoadObjectID
	Raw    rmodel.ObjectRaw
	Shape  geom.Shape
	Frames []geom.Pose3D // one frame (discrete placement) or many (sweep/repeat)
}

// Placer places road objects and signals against a built reference
// curve (§4.4).
type Placer struct {
	Reference curve.Curve3D
	Tolerance float64
	// SweepStep is the longitudinal sampling step used to discretise a
	// continuous (step == 0) repeat sweep (§4.5's sweepDiscretizationStepSize).
	SweepStep float64
}

// Place resolves one raw object into its placed form. A repeat element
// (if present) expands into multiple frames; otherwise Place returns a
// single frame at (s, t, zOffset).
func (p Placer) Place(roadID ids.RoadspaceID, raw rmodel.ObjectRaw) (Placed, *heal.List, error) {
	list := &heal.List{}
	id := ids.NewRoadObjectID(roadID, raw.ID)

	shape, err := classify(raw, p.Tolerance)
	if err != nil {
		return Placed{}, list, fmt.Errorf("object %s: %w", id, err)
	}

	if raw.Repeat == nil {
		frame, err := p.frameAt(raw.S, raw.T, raw.ZOffset, raw.Hdg, raw.Pitch, raw.Roll, raw.PerpendicularToRoad)
		if err != nil {
			list.Add(heal.Issue{Code: "roadobj.place.failed", Severity: heal.Warning, Location: id.String(), Message: err.Error()})
			return Placed{}, list, nil
		}
		return Placed{ID: id, Raw: raw, Shape: shape, Frames: []geom.Pose3D{frame}}, list, nil
	}

	rep := raw.Repeat
	if rep.Length <= p.Tolerance {
		list.Add(heal.Issue{Code: "roadobj.repeat.subtolerance", Severity: heal.Warning, Location: id.String(),
			Message: "repeat.length does not exceed tolerance; object dropped"})
		return Placed{}, list, nil
	}

	// step == 0 means a continuous sweep (§4.4): one Sweep shape extruded
	// through every sampled frame, rather than a discrete instance of the
	// static shape at each frame. Either way the frames are sampled at
	// the same step (the repeat's own, or p.SweepStep as the continuous
	// default).
	continuous := rep.Step <= 0
	step := rep.Step
	if step <= 0 {
		step = p.SweepStep
	}
	samples := arrangeLinear(rep.S, rep.S+rep.Length, step, p.Tolerance)

	var frames []geom.Pose3D
	for _, s := range samples {
		frac := (s - rep.S) / rep.Length
		t := lerp(rep.TStart, rep.TEnd, frac) + raw.T
		z := lerp(rep.ZOffsetStart, rep.ZOffsetEnd, frac) + raw.ZOffset
		frame, err := p.frameAt(s, t, z, raw.Hdg, raw.Pitch, raw.Roll, raw.PerpendicularToRoad)
		if err != nil {
			list.Add(heal.Issue{Code: "roadobj.repeat.sample.failed", Severity: heal.Warning,
				Location: fmt.Sprintf("%s@%v", id, s), Message: err.Error()})
			continue
		}
		frames = append(frames, frame)
	}
	if len(frames) == 0 {
		return Placed{}, list, nil
	}
	if continuous {
		return Placed{ID: id, Raw: raw, Shape: BuildSweepShape(raw, frames), Frames: frames}, list, nil
	}
	return Placed{ID: id, Raw: raw, Shape: shape, Frames: frames}, list, nil
}

// frameAt evaluates the road reference pose at s and applies the
// reference-line-relative translation/rotation per §4.4's P ∘ T ∘ R.
func (p Placer) frameAt(s, t, zOffset, hdg, pitch, roll float64, perpendicular bool) (geom.Pose3D, error) {
	ref, err := p.Reference.PoseGlobal(s)
	if err != nil {
		return geom.Pose3D{}, err
	}
	if perpendicular {
		// Open Question (§9): hdg is ignored when perpendicularToRoad is
		// set, since the two attributes conflict and the source ecosystem's
		// tie-break behaviour is unclear (§9 open question, resolved here
		// in favour of the explicit flag).
		hdg = 0
	}
	local := geom.Pose3D{
		Position: geom.Vector3D{X: 0, Y: t, Z: zOffset},
		Rotation: geom.NewRotation3D(hdg, pitch, roll),
	}
	return ref.Advance(local), nil
}

// classify applies §4.4's ordered geometry-classification rules: cuboid,
// then rectangle, then cylinder, then circle, and only then outline.
func classify(raw rmodel.ObjectRaw, tol float64) (geom.Shape, error) {
	switch {
	case raw.Length > tol && raw.Width > tol && raw.Height > tol:
		return geom.Cuboid{Length: raw.Length, Width: raw.Width, Height: raw.Height}, nil
	case raw.Length > tol && raw.Width > tol:
		return geom.Rectangle{Length: raw.Length, Width: raw.Width}, nil
	case raw.Radius > tol && raw.Height > tol:
		return geom.Cylinder{Radius: raw.Radius, Height: raw.Height, CircleSlices: 12}, nil
	case raw.Radius > tol:
		return geom.Circle{Radius: raw.Radius, CircleSlices: 12}, nil
	case len(raw.Outline) > 0:
		return outlineShape(raw, tol)
	default:
		return nil, fmt.Errorf("no geometry descriptor present (need length+width[+height], radius[+height], or an outline)")
	}
}

// outlineShape builds an Outline from local-corner vertices; road-corner
// outlines are resolved against the reference curve by
// Placer.PlaceRoadCornerOutline instead, since they need the
// reference pose at each corner's own s — unlike the other primitives,
// which are placed wholesale at a single frame.
func outlineShape(raw rmodel.ObjectRaw, tol float64) (geom.Shape, error) {
	if raw.OutlineIsRoadCorners {
		// Road-corner outlines are resolved per-corner against the
		// reference curve (each corner carries its own s), so they cannot
		// be expressed as a single local-frame Shape;
		// Placer.PlaceRoadCornerOutline handles them directly. classify is only reached for local-corner
		// outlines here.
		return nil, fmt.Errorf("road-corner outlines must be placed via Placer.PlaceRoadCornerOutline")
	}
	ring := make([]geom.Vector3D, len(raw.Outline))
	for i, c := range raw.Outline {
		ring[i] = geom.Vector3D{X: c.U, Y: c.V, Z: c.Z}
	}
	rings := []geom.Polygon3D{{Vertices: ring}}
	if err := rings[0].Validate(tol); err != nil {
		return nil, fmt.Errorf("outline invalid: %w", err)
	}
	return geom.Outline{Rings: rings}, nil
}

// PlaceRoadCornerOutline places an object whose outline corners are
// given relative to the road reference line (u=s, v=t, z=zOffset, §4.4),
// resolving each corner against the reference curve independently
// rather than through a single local frame.
func (p Placer) PlaceRoadCornerOutline(roadID ids.RoadspaceID, raw rmodel.ObjectRaw) (Placed, *heal.List, error) {
	list := &heal.List{}
	id := ids.NewRoadObjectID(roadID, raw.ID)
	if !raw.OutlineIsRoadCorners {
		return Placed{}, list, fmt.Errorf("object %s: not a road-corner outline", id)
	}
	bottom := make([]geom.Vector3D, 0, len(raw.Outline))
	var top []geom.Vector3D
	hasTop := false
	for _, c := range raw.Outline {
		ref, err := p.Reference.PoseGlobal(c.U)
		if err != nil {
			list.Add(heal.Issue{Code: "roadobj.outline.corner.failed", Severity: heal.Warning,
				Location: id.String(), Message: err.Error()})
			continue
		}
		local := geom.Pose3D{Position: geom.Vector3D{X: 0, Y: c.V, Z: c.Z}}
		p3 := ref.Advance(local).Position
		bottom = append(bottom, p3)
		if c.Height > 0 {
			hasTop = true
			top = append(top, geom.Vector3D{X: p3.X, Y: p3.Y, Z: p3.Z + c.Height})
		}
	}
	if len(bottom) < 3 {
		return Placed{}, list, fmt.Errorf("object %s: fewer than 3 usable outline corners", id)
	}
	rings := []geom.Polygon3D{{Vertices: bottom}}
	if hasTop && len(top) == len(bottom) {
		rings = append(rings, geom.Polygon3D{Vertices: top})
	}
	for _, r := range rings {
		if err := r.Validate(p.Tolerance); err != nil {
			list.Add(heal.Issue{Code: "roadobj.outline.invalid", Severity: heal.Warning, Location: id.String(), Message: err.Error()})
			return Placed{}, list, nil
		}
	}
	return Placed{ID: id, Raw: raw, Shape: geom.Outline{Rings: rings}, Frames: []geom.Pose3D{{}}}, list, nil
}

func lerp(a, b, frac float64) float64 { return a + (b-a)*frac }

func arrangeLinear(lo, hi, step, tol float64) []float64 {
	if step <= 0 || hi <= lo {
		return nil
	}
	n := int(math.Floor((hi-lo)/step + 1e-12))
	out := make([]float64, 0, n+2)
	for k := 0; k <= n; k++ {
		out = append(out, lo+step*float64(k))
	}
	if len(out) == 0 || math.Abs(out[len(out)-1]-hi) > tol {
		out = append(out, hi)
	}
	return out
}

// BuildSweepShape turns a continuous (step == 0) repeat object into a
// single geom.Sweep extruded through every sampled frame (§4.4): a unit
// cross-section profile (rectangular for a width/height object, circular
// for a radius object, matching classify's own primitive choice) scaled
// per frame from the repeat's start/end taper.
func BuildSweepShape(raw rmodel.ObjectRaw, frames []geom.Pose3D) geom.Shape {
	rep := raw.Repeat
	u0, u1, v0, v1 := rep.WidthStart, rep.WidthEnd, rep.HeightStart, rep.HeightEnd
	if raw.Radius > 0 {
		u0, u1, v0, v1 = rep.RadiusStart, rep.RadiusEnd, rep.RadiusStart, rep.RadiusEnd
	}
	scaleU := make([]float64, len(frames))
	scaleV := make([]float64, len(frames))
	for i := range frames {
		frac := 0.0
		if len(frames) > 1 {
			frac = float64(i) / float64(len(frames)-1)
		}
		u := lerp(u0, u1, frac)
		v := lerp(v0, v1, frac)
		if u <= 0 {
			u = 1
		}
		if v <= 0 {
			v = 1
		}
		scaleU[i] = u
		scaleV[i] = v
	}
	return geom.Sweep{ProfileLocal: sweepProfile(raw), Frames: frames, ScaleU: scaleU, ScaleV: scaleV}
}

// sweepProfile returns the unit (unscaled by BuildSweepShape's per-frame
// taper) local cross-section for a continuous sweep: a circle for a
// radius object, a rectangle based at v=0 (ground) otherwise.
func sweepProfile(raw rmodel.ObjectRaw) []geom.Vector2D {
	if raw.Radius > 0 {
		const n = 12
		profile := make([]geom.Vector2D, n)
		for i := 0; i < n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			profile[i] = geom.Vector2D{X: math.Cos(theta), Y: math.Sin(theta)}
		}
		return profile
	}
	return []geom.Vector2D{{X: -0.5, Y: 0}, {X: 0.5, Y: 0}, {X: 0.5, Y: 1}, {X: -0.5, Y: 1}}
}
