// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"math"

	"github.com/camforge/tpkernel/geom"
)

// CylinderLine sweeps the side surface of the infinite vertical cylinder
// through center along direction (expected horizontal, as in a push sweep)
// and finds the first contact with the infinite line through edge. Because
// the cylinder is unbounded in Z, this reduces to a 2D problem: the moving
// axis center against the edge's XY projection.
func CylinderLine(center geom.Vector3, radius, radiusSq float64, direction geom.Vector3, edge geom.Edge) Contact {
	if edge.Degenerate() {
		return Empty()
	}

	ex, ey := edge.Dir.X, edge.Dir.Y
	lineLenXY := math.Hypot(ex, ey)
	if lineLenXY < geom.Epsilon {
		// Edge is (nearly) vertical in XY: treat it as a single point at
		// edge.P1's horizontal position.
		d, ok := sweepPointToRadius(center.X-edge.P1.X, center.Y-edge.P1.Y, direction.X, direction.Y, radiusSq)
		if !ok {
			return Empty()
		}
		ccp := edge.P1.Sub(direction.Scale(d))
		return Contact{CCP: ccp, CP: edge.P1, D: d, Hit: true}
	}

	nx, ny := -ey/lineLenXY, ex/lineLenXY
	s0 := nx*(center.X-edge.P1.X) + ny*(center.Y-edge.P1.Y)
	slope := nx*direction.X + ny*direction.Y

	var d float64
	found := false
	if geom.AlmostZero(slope) {
		if math.Abs(s0) <= radius {
			d, found = 0, true
		}
	} else {
		d1 := (radius - s0) / slope
		d2 := (-radius - s0) / slope
		if d1 > d2 {
			d1, d2 = d2, d1
		}
		if v, ok := clampNonNeg(d1); ok {
			d, found = v, true
		} else if v, ok := clampNonNeg(d2); ok {
			d, found = v, true
		}
	}
	if !found {
		return Empty()
	}

	cx := center.X + d*direction.X
	cy := center.Y + d*direction.Y
	t := ((cx-edge.P1.X)*ex + (cy-edge.P1.Y)*ey) / (lineLenXY * lineLenXY)
	cp := edge.P1.Add(edge.Dir.Scale(t))
	ccp := cp.Sub(direction.Scale(d))
	return Contact{CCP: ccp, CP: cp, D: d, Hit: true}
}
