// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package discretize implements the discretiser/filler engine
// (component C7): sampling curves and parametric-bounded surfaces into
// polylines/polygon meshes, and synthesising lateral and longitudinal
// filler surfaces using the topology resolver's successor edges.
package discretize

import (
	"fmt"

	"github.com/cpmech/roadspace/curve"
	"github.com/cpmech/roadspace/geom"
	"github.com/cpmech/roadspace/heal"
)

// Sampler drives every C7 sampling operation at a single configured
// step size.
type Sampler struct {
	Step float64
	Tol  float64
}

// SampleCurve produces a polyline of global points along c at Step,
// always including the domain's upper endpoint (§4.5 step 1).
func (sp Sampler) SampleCurve(c curve.Curve3D, location string) ([]geom.Vector3D, *heal.List) {
	list := &heal.List{}
	samples := c.Domain().Arrange(sp.Step, true, sp.Tol)
	out := make([]geom.Vector3D, 0, len(samples))
	for _, s := range samples {
		p, err := c.PoseGlobal(s)
		if err != nil {
			list.Add(heal.Issue{Code: "discretize.curve.sample.failed", Severity: heal.Warning,
				Location: fmt.Sprintf("%s@%v", location, s), Message: err.Error()})
			continue
		}
		out = append(out, p.Position)
	}
	return out, list
}

// Surface is the discretised mesh of one parametric-bounded surface
// (§4.5 step 1-3): a quad strip between an inner and an outer boundary
// curve, sampled at matching parameters.
type Surface struct {
	Samples []float64
	Quads   []geom.Polygon3D
}

// SampleSurface builds the quad strip between inner and outer boundary
// curves covering the same domain, skipping (and warning on) any sample
// where either boundary fails to evaluate (§4.5 step 4).
func (sp Sampler) SampleSurface(inner, outer curve.Curve3D, location string) (Surface, *heal.List) {
	list := &heal.List{}
	domain := inner.Domain()
	samples := domain.Arrange(sp.Step, true, sp.Tol)

	type point struct {
		ok      bool
		in, out geom.Vector3D
	}
	points := make([]point, len(samples))
	for i, s := range samples {
		ip, errIn := inner.PoseGlobal(s)
		op, errOut := outer.PoseGlobal(s)
		if errIn != nil || errOut != nil {
			reason := ""
			if errIn != nil {
				reason = errIn.Error()
			} else {
				reason = errOut.Error()
			}
			list.Add(heal.Issue{Code: "discretize.surface.sample.failed", Severity: heal.Warning,
				Location: fmt.Sprintf("%s@%v", location, s), Message: reason})
			continue
		}
		points[i] = point{ok: true, in: ip.Position, out: op.Position}
	}

	var quads []geom.Polygon3D
	for k := 0; k < len(points)-1; k++ {
		a, b := points[k], points[k+1]
		if !a.ok || !b.ok {
			continue
		}
		quads = append(quads, geom.Quad(a.in, a.out, b.out, b.in))
	}
	return Surface{Samples: samples, Quads: quads}, list
}
