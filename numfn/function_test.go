// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfn

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/roadspace/rng"
)

func Test_linear01(tst *testing.T) {

	chk.PrintTitle("linear function by intercept and point")

	f := LinearOfInclusiveInterceptAndPoint(1, 4, 9)
	v, err := f.Value(0)
	if err != nil || v != 1 {
		tst.Errorf("f(0) should be 1, got %v (err=%v)", v, err)
	}
	v, err = f.Value(4)
	if err != nil || v != 9 {
		tst.Errorf("f(4) should be 9, got %v (err=%v)", v, err)
	}
	if _, err := f.Value(4.5); err == nil {
		tst.Errorf("f(4.5) should fail: out of domain")
	}
	if _, err := f.ValueFuzzy(4.0000001, 1e-4); err != nil {
		tst.Errorf("fuzzy value just past the bound should succeed")
	}
}

func Test_polynomial01(tst *testing.T) {

	chk.PrintTitle("cubic polynomial horner evaluation")

	p := Polynomial{D: rng.Closed(10, 20), A: 1, B: 2, C: 0, Dc: 0}
	v, err := p.Value(10)
	if err != nil || v != 1 {
		tst.Errorf("p(10) should be 1 (local u=0), got %v", v)
	}
	v, err = p.Value(12)
	if err != nil || v != 5 {
		tst.Errorf("p(12) should be 1+2*2=5, got %v", v)
	}
}

func Test_piecewise01(tst *testing.T) {

	chk.PrintTitle("piecewise concatenation")

	a := Constant{D: rng.RightOpen(0, 5), C: 1}
	b := Constant{D: rng.Closed(5, 10), C: 2}
	pw := NewPiecewise([]Function{a, b})

	if v, err := pw.Value(2); err != nil || v != 1 {
		tst.Errorf("expected 1 in first segment, got %v", v)
	}
	if v, err := pw.Value(7); err != nil || v != 2 {
		tst.Errorf("expected 2 in second segment, got %v", v)
	}
}

func Test_stacked01(tst *testing.T) {

	chk.PrintTitle("stacked sum")

	a := Constant{D: rng.Closed(0, 10), C: 3}
	b := Constant{D: rng.Closed(2, 8), C: 4}
	st, err := NewStacked([]Function{a, b}, Sum)
	if err != nil {
		tst.Errorf("unexpected error building stacked function: %v", err)
	}
	if v, err := st.Value(5); err != nil || v != 7 {
		tst.Errorf("expected 3+4=7, got %v", v)
	}
	if _, err := st.Value(1); err == nil {
		tst.Errorf("x=1 is outside the intersected domain and should fail")
	}
}
