// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import "github.com/camforge/tpkernel/geom"

// CylinderPoint sweeps the side surface of the infinite vertical cylinder
// (radius, radiusSq precomputed) through center along direction and finds
// the first contact with the stationary point. Unlike CirclePlane and its
// relatives, the cylinder is unbounded in Z, so only the horizontal
// distance to the axis matters; callers reject contacts that land below
// the disc/torus ring plane (ccp.Z < center.Z) themselves, since that bound
// isn't part of the implicit surface.
func CylinderPoint(center geom.Vector3, radius, radiusSq float64, direction, point geom.Vector3) Contact {
	d, ok := sweepPointToRadius(center.X-point.X, center.Y-point.Y, direction.X, direction.Y, radiusSq)
	if !ok {
		return Empty()
	}
	ccp := point.Sub(direction.Scale(d))
	return Contact{CCP: ccp, CP: point, D: d, Hit: true}
}
