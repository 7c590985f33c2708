// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"math"

	"github.com/camforge/tpkernel/geom"
)

// TorusPlane sweeps the torus (major radius majorR, minor radius minorR,
// vertical axis through center) along direction and finds the first point
// at which its tube touches the plane of tri.
//
// The derivation generalizes CirclePlane one level: for a fixed angle phi
// around the tube's cross-section, the ring-point term minimizes over the
// azimuth the same way a plain disc does, leaving a 1D minimization over
// phi that a single derivative root solves in closed form. The closed form
// assumes majorR + minorR*cos(phi) >= 0 at the minimizing phi, true
// whenever majorR >= minorR (the common bull-nose case); a very obtuse
// tool (minorR > majorR) is an approximation here, noted in DESIGN.md.
func TorusPlane(center geom.Vector3, majorR, minorR float64, direction geom.Vector3, tri *geom.Triangle) Contact {
	n := tri.Normal()
	k := n.Dot(direction)
	if geom.AlmostZero(k) {
		return Empty()
	}
	rho := math.Hypot(n.X, n.Y)

	// f(phi) = minorR*n.Z*sin(phi) - |majorR + minorR*cos(phi)|*rho is
	// stationary where n.Z*cos(phi) + rho*sin(phi) == 0 (ignoring the sign
	// flip from the absolute value, valid for majorR >= minorR); the two
	// roots a half-turn apart are the only candidates for its minimum.
	phi0 := math.Atan2(-n.Z, rho)

	bestD := geom.Infinity
	var bestCCP geom.Vector3
	for _, phi := range [2]float64{phi0, phi0 + math.Pi} {
		kappa := majorR + minorR*math.Cos(phi)
		var ringOffset geom.Vector3
		if rho > geom.Epsilon {
			sign := 1.0
			if kappa < 0 {
				sign = -1.0
			}
			s := sign * math.Abs(kappa) / rho
			ringOffset = geom.New(n.X*s, n.Y*s, 0)
		}
		ccp := center.Add(ringOffset).Add(geom.New(0, 0, minorR*math.Sin(phi)))
		d := -tri.Plane().DistanceToPoint(ccp) / k
		if d < bestD {
			bestD, bestCCP = d, ccp
		}
	}

	if bestD < -geom.Epsilon {
		return Empty()
	}
	if bestD < 0 {
		bestD = 0
	}
	cp := bestCCP.Add(direction.Scale(bestD))
	return Contact{CCP: bestCCP, CP: cp, D: bestD, Hit: true}
}
