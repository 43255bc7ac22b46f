// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfn

import "github.com/cpmech/roadspace/rng"

// Constant is f(x) = C over its domain.
type Constant struct {
	D rng.Range
	C float64
}

func (f Constant) Domain() rng.Range { return f.D }

func (f Constant) Value(x float64) (float64, error) {
	if !f.D.FuzzyContains(x, 0) {
		return 0, errOutOfDomain(x, f.D)
	}
	return f.C, nil
}

func (f Constant) Slope(x float64) (float64, error) {
	if !f.D.FuzzyContains(x, 0) {
		return 0, errOutOfDomain(x, f.D)
	}
	return 0, nil
}

func (f Constant) ValueFuzzy(x, tol float64) (float64, error) {
	if _, err := clampToDomain(f.D, x, tol); err != nil {
		return 0, err
	}
	return f.C, nil
}
