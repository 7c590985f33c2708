// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"math"

	"github.com/camforge/tpkernel/geom"
)

// CircleLine sweeps the horizontal disc along direction and finds the first
// contact with the infinite line through edge. The caller (package cutter)
// is responsible for rejecting a contact whose parameter along edge falls
// outside [0, edge.Len].
//
// As with CirclePoint, direction is expected to be purely vertical or purely
// horizontal.
func CircleLine(center geom.Vector3, radius, radiusSq float64, direction geom.Vector3, edge geom.Edge) Contact {
	if edge.Degenerate() {
		return Empty()
	}
	if !geom.AlmostZero(direction.Z) {
		return circleLineVertical(center, radius, radiusSq, direction, edge)
	}
	return circleLineHorizontal(center, radius, radiusSq, direction, edge)
}

// circleLineVertical handles a vertical sweep: the disc's footprint is
// fixed, so the set of line parameters within radius of it doesn't depend
// on the sweep distance. The first contact is whichever end of that
// parameter range reaches the disc's height soonest.
func circleLineVertical(center geom.Vector3, radius, radiusSq float64, direction geom.Vector3, edge geom.Edge) Contact {
	dx, dy := edge.Dir.X, edge.Dir.Y
	a := dx*dx + dy*dy
	if geom.AlmostZero(a) {
		// Edge runs parallel to the sweep axis: its footprint is a single
		// point, and any contact along it is already covered by the
		// circle-vertex tests at its two endpoints.
		return Empty()
	}
	px := edge.P1.X - center.X
	py := edge.P1.Y - center.Y
	b := 2 * (dx*px + dy*py)
	c := px*px + py*py - radiusSq
	disc := b*b - 4*a*c
	if disc < 0 {
		return Empty()
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	tLo, tHi := t1, t2
	if tLo > tHi {
		tLo, tHi = tHi, tLo
	}

	dz := direction.Z
	slope := edge.Dir.Z / dz
	tBest := tHi
	if slope > 0 {
		tBest = tLo
	}

	height := edge.P1.Z + tBest*edge.Dir.Z
	d := (height - center.Z) / dz
	if d < -geom.Epsilon {
		return Empty()
	}
	if d < 0 {
		d = 0
	}
	cp := edge.P1.Add(edge.Dir.Scale(tBest))
	ccp := cp.Sub(direction.Scale(d))
	return Contact{CCP: ccp, CP: cp, D: d, Hit: true}
}

// circleLineHorizontal handles a horizontal (push) sweep: the disc's height
// never changes, so the edge must already share it somewhere.
func circleLineHorizontal(center geom.Vector3, radius, radiusSq float64, direction geom.Vector3, edge geom.Edge) Contact {
	if geom.AlmostZero(edge.Dir.Z) {
		if !geom.AlmostEqual(edge.P1.Z, center.Z) {
			return Empty()
		}
		return sweepDiscToInfiniteLine(center, direction, edge, radius, radiusSq)
	}

	t0 := (center.Z - edge.P1.Z) / edge.Dir.Z
	point := edge.P1.Add(edge.Dir.Scale(t0))
	d, ok := sweepPointToRadius(center.X-point.X, center.Y-point.Y, direction.X, direction.Y, radiusSq)
	if !ok {
		return Empty()
	}
	ccp := point.Sub(direction.Scale(d))
	return Contact{CCP: ccp, CP: point, D: d, Hit: true}
}

// sweepDiscToInfiniteLine solves for the first d >= 0 at which the disc
// center, moving along direction, comes within radius of the 2D line
// (edge.P1, edge.Dir) -- used when the whole edge already shares the disc's
// height.
func sweepDiscToInfiniteLine(center geom.Vector3, direction geom.Vector3, edge geom.Edge, radius, radiusSq float64) Contact {
	nx, ny := -edge.Dir.Y, edge.Dir.X
	norm := math.Hypot(nx, ny)
	if norm < geom.Epsilon {
		return Empty()
	}
	nx, ny = nx/norm, ny/norm

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
	t := (cx-edge.P1.X)*edge.Dir.X + (cy-edge.P1.Y)*edge.Dir.Y
	cp := edge.P1.Add(edge.Dir.Scale(t))
	cp.Z = center.Z
	ccp := cp.Sub(direction.Scale(d))
	return Contact{CCP: ccp, CP: cp, D: d, Hit: true}
}
