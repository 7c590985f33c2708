// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Epsilon is the project-wide tolerance used wherever the kernel would
// otherwise compare floating-point values for exact equality (coplanarity,
// containment, degenerate-length checks). A single shared constant keeps the
// broad-phase and narrow-phase tests consistent with each other; see
// kernelconfig for overriding it at runtime.
var Epsilon = 1e-9

// Infinity is the sentinel distance returned by every geometric sub-routine
// and cutter intersect when no contact exists.
var Infinity = math.Inf(1)

// AlmostZero reports whether v is within Epsilon of zero.
func AlmostZero(v float64) bool {
	return math.Abs(v) <= Epsilon
}

// AlmostEqual reports whether a and b are within Epsilon of each other.
func AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}
