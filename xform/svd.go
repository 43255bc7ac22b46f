// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import "math"

// SingularValues computes the singular values of an m x n matrix (m >=
// n) via one-sided Jacobi SVD on A^T*A, ported in the teacher's numeric
// idiom (allocate with Alloc*, iterate in place) rather than calling out
// to a packaged SVD routine — gosl/la exposes dense solves/inversions but
// no SVD, so this is a from-scratch numeric kernel grounded on the same
// dense-matrix representation used throughout the teacher's shp package.
func SingularValues(a Mat) []float64 {
	m := len(a)
	if m == 0 {
		return nil
	}
	n := len(a[0])

	// work on a column-major copy so Jacobi rotations act on columns
	cols := make([]Vec, n)
	for j := 0; j < n; j++ {
		cols[j] = make(Vec, m)
		for i := 0; i < m; i++ {
			cols[j][i] = a[i][j]
		}
	}

	const maxSweeps = 60
	for sweep := 0; sweep < maxSweeps; sweep++ {
		offDiag := 0.0
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				alpha, beta, gamma := dot(cols[p], cols[p]), dot(cols[q], cols[q]), dot(cols[p], cols[q])
				offDiag += gamma * gamma
				if math.Abs(gamma) < 1e-300 {
					continue
				}
				zeta := (beta - alpha) / (2 * gamma)
				t := sign(zeta) / (math.Abs(zeta) + math.Sqrt(1+zeta*zeta))
				if zeta == 0 {
					t = 1
				}
				c := 1 / math.Sqrt(1+t*t)
				s := c * t
				for i := 0; i < m; i++ {
					cp, cq := cols[p][i], cols[q][i]
					cols[p][i] = c*cp - s*cq
					cols[q][i] = s*cp + c*cq
				}
			}
		}
		if offDiag < 1e-30 {
			break
		}
	}

	out := make([]float64, n)
	for j := 0; j < n; j++ {
		out[j] = math.Sqrt(dot(cols[j], cols[j]))
	}
	return out
}

func dot(a, b Vec) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// SpanDimension returns the number of singular values of the centred
// point matrix strictly greater than tol: 0 for a single coincident
// point, 1 for collinear points, 2 for a planar but non-degenerate set,
// 3 for a genuinely 3-D spread.
func SpanDimension(points []Vec, tol float64) int {
	if len(points) == 0 {
		return 0
	}
	dim := len(points[0])
	centroid := make(Vec, dim)
	for _, p := range points {
		for i := 0; i < dim; i++ {
			centroid[i] += p[i]
		}
	}
	for i := range centroid {
		centroid[i] /= float64(len(points))
	}
	a := make(Mat, len(points))
	for k, p := range points {
		a[k] = make(Vec, dim)
		for i := 0; i < dim; i++ {
			a[k][i] = p[i] - centroid[i]
		}
	}
	svs := SingularValues(a)
	count := 0
	for _, sv := range svs {
		if sv > tol {
			count++
		}
	}
	return count
}
