// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import "math"

import "github.com/camforge/tpkernel/geom"

// smallestNonNegRoot solves a*d^2 + b*d + c == 0 for the smallest root that
// is >= -geom.Epsilon, clamping a tiny negative root to zero to absorb
// rounding. Returns ok == false when both roots are rejected or the
// quadratic has no real root.
func smallestNonNegRoot(a, b, c float64) (float64, bool) {
	if geom.AlmostZero(a) {
		if geom.AlmostZero(b) {
			if c <= 0 {
				return 0, true
			}
			return 0, false
		}
		d := -c / b
		return clampNonNeg(d)
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	d1 := (-b - sq) / (2 * a)
	d2 := (-b + sq) / (2 * a)
	if d1 > d2 {
		d1, d2 = d2, d1
	}
	if d, ok := clampNonNeg(d1); ok {
		return d, true
	}
	return clampNonNeg(d2)
}

func clampNonNeg(d float64) (float64, bool) {
	if d < -geom.Epsilon {
		return 0, false
	}
	if d < 0 {
		d = 0
	}
	return d, true
}

// sweepPointToRadius finds the smallest d >= 0 at which a point starting at
// (px, py) relative to a fixed target and moving with velocity (dx, dy)
// reaches distance radius from the target, i.e. |(px+d*dx, py+d*dy)| ==
// radius. Used by every 2D horizontal-sweep sub-routine (circle/cylinder vs
// point/line, horizontal branch).
func sweepPointToRadius(px, py, dx, dy, radiusSq float64) (float64, bool) {
	a := dx*dx + dy*dy
	b := 2 * (px*dx + py*dy)
	c := px*px + py*py - radiusSq
	return smallestNonNegRoot(a, b, c)
}
