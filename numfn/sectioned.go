// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfn

import "github.com/cpmech/roadspace/rng"

// Sectioned re-parameterises a sub-interval [Start, Start+Length] of a
// Base function to start at 0, mirroring curve.Sectioned but for plain
// univariate functions (used when a lane's width/height-offset function
// is expressed relative to its own lane-section start but the base
// attribute table stores it at the road's absolute s).
type Sectioned struct {
	Base   Function
	Start  float64
	Length float64
}

func (f Sectioned) Domain() rng.Range { return rng.Closed(0, f.Length) }

func (f Sectioned) Value(sPrime float64) (float64, error) {
	if !f.Domain().FuzzyContains(sPrime, 0) {
		return 0, errOutOfDomain(sPrime, f.Domain())
	}
	return f.Base.Value(f.Start + sPrime)
}

func (f Sectioned) Slope(sPrime float64) (float64, error) {
	if !f.Domain().FuzzyContains(sPrime, 0) {
		return 0, errOutOfDomain(sPrime, f.Domain())
	}
	return f.Base.Slope(f.Start + sPrime)
}

func (f Sectioned) ValueFuzzy(sPrime, tol float64) (float64, error) {
	sc, err := clampToDomain(f.Domain(), sPrime, tol)
	if err != nil {
		return 0, err
	}
	return f.Base.ValueFuzzy(f.Start+sc, tol)
}
