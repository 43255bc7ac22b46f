// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfn

import "github.com/cpmech/roadspace/rng"

// Combinator combines the co-domain values of two or more stacked
// functions evaluated at the same x into a single value.
type Combinator func(values []float64) float64

// Sum combines by addition.
func Sum(values []float64) float64 {
	s := 0.0
	for _, v := range values {
		s += v
	}
	return s
}

// WeightedSum returns a Combinator that forms sum(w[i]*values[i]).
func WeightedSum(weights []float64) Combinator {
	return func(values []float64) float64 {
		s := 0.0
		for i, v := range values {
			if i < len(weights) {
				s += weights[i] * v
			}
		}
		return s
	}
}

// Product combines by multiplication.
func Product(values []float64) float64 {
	p := 1.0
	for _, v := range values {
		p *= v
	}
	return p
}

// Stacked applies Combine to the element-wise values of Operands. All
// operands must share a common sub-domain; Stacked's own domain is the
// intersection of the operands' domains (InconsistentDomain if empty).
type Stacked struct {
	Operands []Function
	Combine  Combinator
	d        rng.Range
	dValid   bool
}

// NewStacked builds a Stacked function, computing and caching the
// intersection domain up front.
func NewStacked(operands []Function, combine Combinator) (Stacked, error) {
	if len(operands) == 0 {
		return Stacked{}, errInconsistent("stacked function requires at least one operand")
	}
	d := operands[0].Domain()
	for _, o := range operands[1:] {
		d = d.Intersection(o.Domain())
	}
	if d.IsEmpty() {
		return Stacked{}, errInconsistent("stacked function operands share no common sub-domain")
	}
	return Stacked{Operands: operands, Combine: combine, d: d, dValid: true}, nil
}

func (f Stacked) Domain() rng.Range { return f.d }

func (f Stacked) values(x float64, fuzzy bool, tol float64) ([]float64, error) {
	out := make([]float64, len(f.Operands))
	for i, o := range f.Operands {
		var v float64
		var err error
		if fuzzy {
			v, err = o.ValueFuzzy(x, tol)
		} else {
			v, err = o.Value(x)
		}
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (f Stacked) Value(x float64) (float64, error) {
	if !f.d.FuzzyContains(x, 0) {
		return 0, errOutOfDomain(x, f.d)
	}
	vs, err := f.values(x, false, 0)
	if err != nil {
		return 0, err
	}
	return f.Combine(vs), nil
}

func (f Stacked) Slope(x float64) (float64, error) {
	// derivative of a sum/weighted-sum is the combination of slopes;
	// product's derivative is not generally expressible this way, so
	// Stacked.Slope is only exact for Sum/WeightedSum combinators, which
	// is the only use made of it by the road-space builder (C5).
	if !f.d.FuzzyContains(x, 0) {
		return 0, errOutOfDomain(x, f.d)
	}
	out := make([]float64, len(f.Operands))
	for i, o := range f.Operands {
		v, err := o.Slope(x)
		if err != nil {
			return 0, err
		}
		out[i] = v
	}
	return f.Combine(out), nil
}

func (f Stacked) ValueFuzzy(x, tol float64) (float64, error) {
	if !f.d.FuzzyContains(x, tol) {
		return 0, errOutOfDomain(x, f.d)
	}
	vs, err := f.values(x, true, tol)
	if err != nil {
		return 0, err
	}
	return f.Combine(vs), nil
}
