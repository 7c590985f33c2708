// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Triangle is an immutable triangle with precomputed plane, edges, centroid,
// bounding-circle radius and axis-aligned bounding box, matching the
// attributes spec section 3 requires every Triangle implementation to
// expose. All fields are read-only after NewTriangle returns; a Triangle may
// be shared across goroutines (spec section 5).
type Triangle struct {
	P1, P2, P3 Vector3
	E1, E2, E3 Edge

	plane    Plane
	centroid Vector3
	radius   float64
	radiusSq float64
	bounds   Box3
}

// NewTriangle builds a Triangle from three vertices. The plane normal is
// (p2-p1) x (p3-p1), normalized — this orientation convention is fixed once
// here and every caller (cutter dispatch, broad-phase) relies on it.
func NewTriangle(p1, p2, p3 Vector3) *Triangle {
	t := &Triangle{
		P1: p1, P2: p2, P3: p3,
		E1: NewEdge(p1, p2),
		E2: NewEdge(p2, p3),
		E3: NewEdge(p3, p1),
	}
	t.plane = PlaneFromPoints(p1, p2, p3)
	t.centroid = p1.Add(p2).Add(p3).Scale(1.0 / 3.0)
	t.radiusSq = maxF(
		t.centroid.DistanceToSquared(p1),
		t.centroid.DistanceToSquared(p2),
		t.centroid.DistanceToSquared(p3),
	)
	t.radius = math.Sqrt(t.radiusSq)
	t.bounds = BoxFromPoints(p1, p2, p3)
	return t
}

func maxF(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// Plane returns the triangle's supporting plane.
func (t *Triangle) Plane() Plane { return t.plane }

// Normal returns the triangle's unit normal.
func (t *Triangle) Normal() Vector3 { return t.plane.Normal }

// Centroid returns the triangle's centroid (average of its three vertices).
func (t *Triangle) Centroid() Vector3 { return t.centroid }

// Radius returns the radius of the bounding circle centered at Centroid, in
// the plane containing the triangle's vertices (but measured in 3D, not
// projected) — the same quantity spec section 4.6's broad-phase formula
// calls triangle.radius.
func (t *Triangle) Radius() float64 { return t.radius }

// RadiusSq returns Radius() squared, precomputed to avoid a sqrt on the
// broad-phase rejection hot path.
func (t *Triangle) RadiusSq() float64 { return t.radiusSq }

// Bounds returns the triangle's axis-aligned bounding box.
func (t *Triangle) Bounds() Box3 { return t.bounds }

// PointInside reports whether p — assumed to already lie on the triangle's
// plane — falls within or on the triangle, using a tolerance-aware
// barycentric containment test. A point is accepted when each of its
// barycentric coordinates is at least -1e-7, so points on an edge, or
// outside it by no more than that tolerance, count as inside; points
// farther outside are rejected. This matches the "within or on the
// triangle" contract of spec section 4.2.
func (t *Triangle) PointInside(p Vector3) bool {
	v0 := t.P3.Sub(t.P1)
	v1 := t.P2.Sub(t.P1)
	v2 := p.Sub(t.P1)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if AlmostZero(denom) {
		// Degenerate (zero-area) triangle: no point is "inside".
		return false
	}

	invDenom := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	const tol = 1e-7
	return u >= -tol && v >= -tol && (u+v) <= 1+tol
}
