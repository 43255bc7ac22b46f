// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discretize

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/roadspace/curve"
	"github.com/cpmech/roadspace/numfn"
	"github.com/cpmech/roadspace/rng"
)

func flatLine(length float64) curve.Curve3D {
	line := curve.NewLine(length, 1e-7, false, nil)
	return curve.Planar3D{Plane: line, Elevation: numfn.Constant{D: rng.Closed(0, length), C: 0}}
}

func Test_samplecurve_endpoints01(tst *testing.T) {

	chk.PrintTitle("discretize: SampleCurve always includes the domain's upper endpoint")

	sp := Sampler{Step: 3, Tol: 1e-7}
	pts, list := sp.SampleCurve(flatLine(10), "r1")
	if len(list.Items()) != 0 {
		tst.Errorf("expected no issues, got %v", list.Items())
	}
	if len(pts) < 2 {
		tst.Fatalf("expected at least two samples, got %d", len(pts))
	}
	last := pts[len(pts)-1]
	if last.X < 10-1e-6 {
		tst.Errorf("expected the last sample to reach the domain end at x=10, got %v", last.X)
	}
}

func Test_samplesurface_quadcount01(tst *testing.T) {

	chk.PrintTitle("discretize: SampleSurface produces one quad per consecutive sample pair")

	sp := Sampler{Step: 5, Tol: 1e-7}
	surf, list := sp.SampleSurface(flatLine(10), flatLine(10), "r1/lane[-1]")
	if len(list.Items()) != 0 {
		tst.Errorf("expected no issues, got %v", list.Items())
	}
	if len(surf.Quads) != len(surf.Samples)-1 {
		tst.Errorf("expected %d quads for %d samples, got %d", len(surf.Samples)-1, len(surf.Samples), len(surf.Quads))
	}
}
