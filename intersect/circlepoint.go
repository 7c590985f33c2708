// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import "github.com/camforge/tpkernel/geom"

// CirclePoint sweeps the horizontal disc (radius, radiusSq precomputed)
// centered at center along direction and finds the first contact with the
// stationary point. direction is expected to be either purely vertical
// (drop) or purely horizontal (push); mixed sweeps are not produced by
// package cutter and are not supported here.
//
// For a vertical sweep the disc's horizontal footprint never moves, so
// contact happens exactly when the disc's height passes through point's
// height, provided point then lies within radius of the (fixed) footprint
// center. For a horizontal sweep the disc's height never changes, so
// contact requires point to already share the disc's height, after which
// it is a plain moving-circle-vs-point problem in the XY plane.
func CirclePoint(center geom.Vector3, radius, radiusSq float64, direction, point geom.Vector3) Contact {
	if !geom.AlmostZero(direction.Z) {
		d := (point.Z - center.Z) / direction.Z
		if d < -geom.Epsilon {
			return Empty()
		}
		if d < 0 {
			d = 0
		}
		cx := center.X + d*direction.X
		cy := center.Y + d*direction.Y
		distSq := sq(point.X-cx) + sq(point.Y-cy)
		if distSq > radiusSq {
			return Empty()
		}
		ccp := point.Sub(direction.Scale(d))
		return Contact{CCP: ccp, CP: point, D: d, Hit: true}
	}

	if !geom.AlmostEqual(point.Z, center.Z) {
		return Empty()
	}
	d, ok := sweepPointToRadius(center.X-point.X, center.Y-point.Y, direction.X, direction.Y, radiusSq)
	if !ok {
		return Empty()
	}
	ccp := point.Sub(direction.Scale(d))
	return Contact{CCP: ccp, CP: point, D: d, Hit: true}
}

func sq(v float64) float64 { return v * v }
