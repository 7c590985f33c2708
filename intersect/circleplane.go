// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"math"

	"github.com/camforge/tpkernel/geom"
)

// CirclePlane sweeps the horizontal disc of the given radius, centered at
// center, along direction, and finds the first point at which its rim
// touches the plane of tri. The contract matches the cylindrical cutter's
// "bottom disc vs. a triangle's supporting plane" test: the caller is
// responsible for rejecting a contact that lands outside the triangle
// (PointInside) or for preferring the edge/vertex tests when it doesn't.
//
// The disc point that reaches the plane first is the rim point displaced
// along the plane normal's horizontal component, on whichever side lies
// nearest the plane along the sweep (for a drop onto a tilted plane, the
// uphill side) -- the same closed form used for a sphere swept against a
// tilted plane, specialized to a disc that never tilts.
func CirclePlane(center geom.Vector3, radius float64, direction geom.Vector3, tri *geom.Triangle) Contact {
	n := tri.Normal()
	k := n.Dot(direction)
	if geom.AlmostZero(k) {
		return Empty()
	}

	rho := math.Hypot(n.X, n.Y)
	var offset geom.Vector3
	if rho > geom.Epsilon {
		sign := 1.0
		if k < 0 {
			sign = -1.0
		}
		s := sign * radius / rho
		offset = geom.New(n.X*s, n.Y*s, 0)
	}

	ccp := center.Add(offset)
	d := -tri.Plane().DistanceToPoint(ccp) / k
	if d < -geom.Epsilon {
		return Empty()
	}
	if d < 0 {
		d = 0
	}
	cp := ccp.Add(direction.Scale(d))
	return Contact{CCP: ccp, CP: cp, D: d, Hit: true}
}
