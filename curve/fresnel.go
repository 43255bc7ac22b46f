// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "math"

// fresnelXY integrates (x(sigma), y(sigma)) = (integral of cos(c*u^2/2),
// integral of sin(c*u^2/2)) du from 0 to sigma, by composite Simpson
// quadrature with a subdivision count scaled to the integrand's
// oscillation frequency so accuracy stays within 1e-6 even for long,
// sharply-curving spirals.
func fresnelXY(c, sigma float64) (x, y float64) {
	if sigma == 0 {
		return 0, 0
	}
	sign := 1.0
	if sigma < 0 {
		sign = -1.0
		sigma = -sigma
	}
	// total phase swept is c*sigma^2/2; resolve at least ~32 samples per
	// half-cycle of that phase, with sane floor/ceiling.
	phase := math.Abs(c) * sigma * sigma / 2
	n := int(32 * phase / math.Pi)
	if n < 64 {
		n = 64
	}
	if n > 200000 {
		n = 200000
	}
	if n%2 == 1 {
		n++
	}
	h := sigma / float64(n)
	fx := func(u float64) float64 { return math.Cos(c * u * u / 2) }
	fy := func(u float64) float64 { return math.Sin(c * u * u / 2) }
	sx, sy := fx(0)+fx(sigma), fy(0)+fy(sigma)
	for i := 1; i < n; i++ {
		u := float64(i) * h
		w := 4.0
		if i%2 == 0 {
			w = 2.0
		}
		sx += w * fx(u)
		sy += w * fy(u)
	}
	x = sign * h / 3 * sx
	y = sign * h / 3 * sy
	return
}
