// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"math"

	"github.com/camforge/tpkernel/geom"
)

// TorusPoint sweeps the torus of major radius majorR and minor radius
// minorR, centered at center with its axis vertical, along direction, and
// finds the first contact with the stationary point. direction is expected
// to be purely vertical (drop) or purely horizontal (push); this is called
// directly for vertex contact and repeatedly, at bracketing offsets, by
// package cutter's edge search.
//
// The torus implicit surface, relative to its own (possibly swept) center,
// is (rho - majorR)^2 + z^2 == minorR^2 where rho is the horizontal
// distance to the axis. majorR == 0 degenerates to a sphere of radius
// minorR, handled by the same formula without a special case.
func TorusPoint(center geom.Vector3, majorR, minorR, majorRSq, minorRSq float64, direction, point geom.Vector3) Contact {
	if !geom.AlmostZero(direction.Z) {
		return torusPointVertical(center, majorR, minorR, minorRSq, direction, point)
	}
	return torusPointHorizontal(center, majorR, minorR, minorRSq, direction, point)
}

// torusPointVertical handles a vertical sweep: the torus's horizontal
// position is fixed, so rho (point's horizontal distance to the axis) is
// constant, and the equation reduces to a single quadratic in the swept
// height.
func torusPointVertical(center geom.Vector3, majorR, minorR, minorRSq float64, direction, point geom.Vector3) Contact {
	rho := math.Hypot(point.X-center.X, point.Y-center.Y)
	rem := minorRSq - sq(rho-majorR)
	if rem < 0 {
		return Empty()
	}
	h := math.Sqrt(rem)
	dz := direction.Z

	z0 := point.Z - center.Z
	cands := [2]float64{(z0 - h) / dz, (z0 + h) / dz}
	best := geom.Infinity
	found := false
	for _, d := range cands {
		if d < -geom.Epsilon {
			continue
		}
		if d < 0 {
			d = 0
		}
		if d < best {
			best, found = d, true
		}
	}
	if !found {
		return Empty()
	}
	ccp := point.Sub(direction.Scale(best))
	return Contact{CCP: ccp, CP: point, D: best, Hit: true}
}

// torusPointHorizontal handles a horizontal (push) sweep: the torus's
// height is fixed, so point's vertical offset from center.Z is constant,
// constraining rho to one of (at most) two target radii; each is then a
// plain moving-circle-vs-point problem in the XY plane.
func torusPointHorizontal(center geom.Vector3, majorR, minorR, minorRSq float64, direction, point geom.Vector3) Contact {
	pz := point.Z - center.Z
	rem := minorRSq - pz*pz
	if rem < 0 {
		return Empty()
	}
	h := math.Sqrt(rem)

	best := geom.Infinity
	found := false
	for _, target := range [2]float64{majorR - h, majorR + h} {
		if target < 0 {
			continue
		}
		d, ok := sweepPointToRadius(center.X-point.X, center.Y-point.Y, direction.X, direction.Y, target*target)
		if ok && d < best {
			best, found = d, true
		}
	}
	if !found {
		return Empty()
	}
	ccp := point.Sub(direction.Scale(best))
	return Contact{CCP: ccp, CP: point, D: best, Hit: true}
}
