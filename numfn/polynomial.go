// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfn

import "github.com/cpmech/roadspace/rng"

// Polynomial is a cubic (or lower-degree, via zero high coefficients)
// polynomial f(x) = A + B*x + C*x^2 + D*x^3, with x measured from the
// domain's lower bound (the convention used throughout the road-space
// builder: elevation/super-elevation/width entries are all "local s"
// polynomials anchored at their own interval's start).
type Polynomial struct {
	D          rng.Range
	A, B, C, Dc float64
}

func (f Polynomial) Domain() rng.Range { return f.D }

// horner evaluates the polynomial at the local coordinate u = x - D.Lo.
func (f Polynomial) horner(u float64) float64 {
	return f.A + u*(f.B+u*(f.C+u*f.Dc))
}

func (f Polynomial) hornerSlope(u float64) float64 {
	return f.B + u*(2*f.C+u*3*f.Dc)
}

func (f Polynomial) localCoord(x float64) float64 {
	if f.D.Lo.Kind == rng.None {
		return x
	}
	return x - f.D.Lo.Value
}

func (f Polynomial) Value(x float64) (float64, error) {
	if !f.D.FuzzyContains(x, 0) {
		return 0, errOutOfDomain(x, f.D)
	}
	v := f.horner(f.localCoord(x))
	if err := checkFinite(v); err != nil {
		return 0, err
	}
	return v, nil
}

func (f Polynomial) Slope(x float64) (float64, error) {
	if !f.D.FuzzyContains(x, 0) {
		return 0, errOutOfDomain(x, f.D)
	}
	v := f.hornerSlope(f.localCoord(x))
	if err := checkFinite(v); err != nil {
		return 0, err
	}
	return v, nil
}

func (f Polynomial) ValueFuzzy(x, tol float64) (float64, error) {
	xc, err := clampToDomain(f.D, x, tol)
	if err != nil {
		return 0, err
	}
	v := f.horner(f.localCoord(xc))
	if err := checkFinite(v); err != nil {
		return 0, err
	}
	return v, nil
}

// IsFinite reports whether all four coefficients are finite, per
// invariant 1 (non-finite coefficients cause the element to be rejected
// by the healing pass before it reaches the kernel).
func (f Polynomial) IsFinite() bool {
	for _, c := range []float64{f.A, f.B, f.C, f.Dc} {
		if c != c || c > 1e300 || c < -1e300 { // NaN or overflow guard
			return false
		}
	}
	return true
}
