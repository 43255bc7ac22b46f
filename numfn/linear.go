// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfn

import "github.com/cpmech/roadspace/rng"

// Linear is f(x) = Intercept + Slope*x over its domain.
type Linear struct {
	D         rng.Range
	Intercept float64
	Gradient  float64
}

// LinearOfInclusiveInterceptAndPoint builds f with f(0)=a and f(L)=b,
// i.e. slope = (b-a)/L, over the closed domain [0, L].
func LinearOfInclusiveInterceptAndPoint(a, length, b float64) Linear {
	slope := 0.0
	if length != 0 {
		slope = (b - a) / length
	}
	return Linear{D: rng.Closed(0, length), Intercept: a, Gradient: slope}
}

func (f Linear) Domain() rng.Range { return f.D }

func (f Linear) eval(x float64) float64 {
	return f.Intercept + f.Gradient*x
}

func (f Linear) Value(x float64) (float64, error) {
	if !f.D.FuzzyContains(x, 0) {
		return 0, errOutOfDomain(x, f.D)
	}
	v := f.eval(x)
	if err := checkFinite(v); err != nil {
		return 0, err
	}
	return v, nil
}

func (f Linear) Slope(x float64) (float64, error) {
	if !f.D.FuzzyContains(x, 0) {
		return 0, errOutOfDomain(x, f.D)
	}
	return f.Gradient, nil
}

func (f Linear) ValueFuzzy(x, tol float64) (float64, error) {
	xc, err := clampToDomain(f.D, x, tol)
	if err != nil {
		return 0, err
	}
	v := f.eval(xc)
	if err := checkFinite(v); err != nil {
		return 0, err
	}
	return v, nil
}
