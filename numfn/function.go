// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numfn implements univariate functions f: R -> R defined over a
// rng.Range domain, with fuzzy (tolerance-widened) domain membership.
package numfn

import (
	"fmt"
	"math"

	"github.com/cpmech/roadspace/rng"
)

// FailureKind classifies why a Function evaluation failed.
type FailureKind int

const (
	// OutOfDomain means x (even fuzzily) is not in the function's domain.
	OutOfDomain FailureKind = iota
	// NonFinite means the evaluator produced NaN or +-Inf.
	NonFinite
	// InconsistentDomain means a composite (stacked/piecewise) function
	// was built from operands whose domains don't line up as required.
	InconsistentDomain
)

func (k FailureKind) String() string {
	switch k {
	case OutOfDomain:
		return "OutOfDomain"
	case NonFinite:
		return "NonFinite"
	case InconsistentDomain:
		return "InconsistentDomain"
	}
	return "Unknown"
}

// Error is the typed error returned by Function evaluators.
type Error struct {
	Kind    FailureKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func errOutOfDomain(x float64, d rng.Range) *Error {
	return &Error{OutOfDomain, fmt.Sprintf("x=%v is outside the function's domain [%v,%v]", x, d.Lo.Value, d.Hi.Value)}
}

func errNonFinite(x float64) *Error {
	return &Error{NonFinite, fmt.Sprintf("function evaluation at x=%v produced a non-finite value", x)}
}

func errInconsistent(msg string) *Error {
	return &Error{InconsistentDomain, msg}
}

// Function is the contract every univariate function variant satisfies.
type Function interface {
	// Domain returns the range over which the function is defined.
	Domain() rng.Range
	// Value evaluates f(x), failing with OutOfDomain if x is not
	// (even fuzzily, with the function's own zero tolerance) in Domain().
	Value(x float64) (float64, error)
	// Slope evaluates f'(x) (the derivative), same domain rules as Value.
	Slope(x float64) (float64, error)
	// ValueFuzzy is like Value but accepts x within tol of the domain,
	// clamping to the nearest domain endpoint before evaluating.
	ValueFuzzy(x, tol float64) (float64, error)
}

// clampToDomain returns x clamped into d if x is fuzzily (within tol) in
// d but not exactly so; returns an error if x is not even fuzzily in d.
func clampToDomain(d rng.Range, x, tol float64) (float64, error) {
	if !d.FuzzyContains(x, tol) {
		return 0, errOutOfDomain(x, d)
	}
	if d.Lo.Kind != rng.None && x < d.Lo.Value {
		return d.Lo.Value, nil
	}
	if d.Hi.Kind != rng.None && x > d.Hi.Value {
		return d.Hi.Value, nil
	}
	return x, nil
}

func checkFinite(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return errNonFinite(x)
	}
	return nil
}
