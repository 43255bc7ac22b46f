// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xform implements the linear-algebra and affine-transform layer
// (component C2): dense matrix/vector helpers built on gosl/la, 2-D and
// 3-D affine transforms, and an AffineSequence resolver.
package xform

import (
	"github.com/cpmech/gosl/la"
)

// Mat is a dense row-major matrix, same representation gofem's shp
// package uses for DxdR/DRdx/G (la.MatAlloc-backed [][]float64).
type Mat = [][]float64

// Vec is a dense vector.
type Vec = []float64

// Alloc2x2 allocates a zeroed 2x2 matrix.
func Alloc2x2() Mat { return la.MatAlloc(2, 2) }

// Alloc3x3 allocates a zeroed 3x3 matrix.
func Alloc3x3() Mat { return la.MatAlloc(3, 3) }

// Alloc4x4 allocates a zeroed 4x4 matrix.
func Alloc4x4() Mat { return la.MatAlloc(4, 4) }

// Identity returns the n x n identity matrix.
func Identity(n int) Mat {
	m := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// Clone deep-copies a matrix.
func Clone(m Mat) Mat { return la.MatClone(m) }

// Mul computes c = a*b for square matrices of the same size (thin wrapper
// around la.MatMul with alpha=1, allocating the result).
func Mul(a, b Mat) Mat {
	n := len(a)
	c := la.MatAlloc(n, n)
	la.MatMul(c, 1, a, b)
	return c
}

// MulVec computes y = M*x for an n x n matrix and length-n vector.
func MulVec(m Mat, x Vec) Vec {
	n := len(m)
	y := make(Vec, n)
	for i := 0; i < n; i++ {
		s := 0.0
		for j := 0; j < n; j++ {
			s += m[i][j] * x[j]
		}
		y[i] = s
	}
	return y
}

// Inverse inverts a square matrix using gosl/la's Gauss-Jordan MatInv,
// returning an error if the determinant falls below minDet.
func Inverse(m Mat, minDet float64) (Mat, error) {
	n := len(m)
	inv := la.MatAlloc(n, n)
	_, err := la.MatInv(inv, m, minDet)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// Transpose returns the transpose of m.
func Transpose(m Mat) Mat {
	rows, cols := len(m), len(m[0])
	t := la.MatAlloc(cols, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}
