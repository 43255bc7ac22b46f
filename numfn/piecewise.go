// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfn

import "github.com/cpmech/roadspace/rng"

// Piecewise concatenates sub-functions over contiguous sub-domains. The
// overall domain is the span of all members; select dispatches by fuzzy
// membership, preferring the first member whose domain fuzzily contains
// x (so adjacent members sharing a boundary resolve deterministically).
type Piecewise struct {
	Members []Function
	D       rng.Range
}

// NewPiecewise builds a Piecewise from members assumed already sorted by
// domain lower bound; it does not re-sort (the caller, typically the
// C9 healing pass, is responsible for presenting a sorted list).
func NewPiecewise(members []Function) Piecewise {
	p := Piecewise{Members: members}
	for _, m := range members {
		p.D = p.D.Span(m.Domain())
	}
	return p
}

func (f Piecewise) Domain() rng.Range { return f.D }

func (f Piecewise) selectAt(x, tol float64) (Function, error) {
	for _, m := range f.Members {
		if m.Domain().FuzzyContains(x, tol) {
			return m, nil
		}
	}
	return nil, errOutOfDomain(x, f.D)
}

func (f Piecewise) Value(x float64) (float64, error) {
	m, err := f.selectAt(x, 0)
	if err != nil {
		return 0, err
	}
	return m.Value(x)
}

func (f Piecewise) Slope(x float64) (float64, error) {
	m, err := f.selectAt(x, 0)
	if err != nil {
		return 0, err
	}
	return m.Slope(x)
}

func (f Piecewise) ValueFuzzy(x, tol float64) (float64, error) {
	m, err := f.selectAt(x, tol)
	if err != nil {
		return 0, err
	}
	return m.ValueFuzzy(x, tol)
}
