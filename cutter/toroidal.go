// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cutter

import (
	"fmt"
	"math"

	"github.com/camforge/tpkernel/geom"
	"github.com/camforge/tpkernel/intersect"
	"github.com/camforge/tpkernel/kernellog"
)

// ToroidalCutter is a bull-nose (or, with minorRadius == radius, ball-nose)
// end mill: a torus fillet of major/minor radius, a flat top disc at the
// ring's major radius, and an outer cylindrical shaft above it (spec
// section 3).
type ToroidalCutter struct {
	base

	minorRadius float64
	majorRadius float64

	distanceMajorRadius   float64
	distanceMinorRadius   float64
	distanceMajorRadiusSq float64
	distanceMinorRadiusSq float64
}

// NewToroidal constructs a toroidal cutter. minorRadius must satisfy
// 0 < minorRadius <= radius; majorRadius is derived as radius - minorRadius.
func NewToroidal(radius, minorRadius, height float64, location geom.Vector3) (*ToroidalCutter, error) {
	b, err := newBase(radius, height, location)
	if err != nil {
		return nil, err
	}
	if minorRadius <= 0 || minorRadius > radius {
		return nil, fmt.Errorf("%w: minor_radius must satisfy 0 < minor_radius <= radius, got %v (radius %v)", ErrInvalidShape, minorRadius, radius)
	}
	t := &ToroidalCutter{base: b, minorRadius: minorRadius, majorRadius: radius - minorRadius}
	t.recomputeDistances()
	return t, nil
}

// recomputeDistances re-derives the distance_major/minor_radius fields
// after requiredDistance changes. An offset surface grows the tube radius
// by the offset but leaves the ring center distance unchanged, so
// distanceMajorRadius stays equal to the nominal majorRadius while
// distanceMinorRadius absorbs the inflation; distanceRadius (from base)
// always equals their sum. Order matches the source: base's
// setRequiredDistance runs first, then this (spec SUPPLEMENTED FEATURES).
func (t *ToroidalCutter) recomputeDistances() {
	t.distanceMinorRadius = t.minorRadius + t.requiredDistance
	t.distanceMajorRadius = t.majorRadius
	t.distanceMajorRadiusSq = t.distanceMajorRadius * t.distanceMajorRadius
	t.distanceMinorRadiusSq = t.distanceMinorRadius * t.distanceMinorRadius
}

// Center returns the center of the torus ring: location offset up by the
// current (inflated) minor radius (spec section 3).
func (t *ToroidalCutter) Center() geom.Vector3 {
	return geom.New(t.location.X, t.location.Y, t.location.Z+t.distanceMinorRadius)
}

// MoveTo updates location; Center() derives from it on demand.
func (t *ToroidalCutter) MoveTo(location geom.Vector3) {
	t.location = location
}

// SetRequiredDistance inflates the tube radius; negative values are
// ignored, and the derived major/minor distances are only recomputed when
// the update is accepted (spec SUPPLEMENTED FEATURES).
func (t *ToroidalCutter) SetRequiredDistance(v float64) {
	t.setRequiredDistance(v)
	if v >= 0 {
		t.recomputeDistances()
	}
}

// ShapeKey identifies a toroidal cutter by its nominal radius, major and
// minor radii (spec section 4.8).
func (t *ToroidalCutter) ShapeKey() ShapeKey {
	return ShapeKey{Kind: "toroidal", Radius: t.radius, Major: t.majorRadius, Minor: t.minorRadius}
}

// intersectTorusEdge implements spec section 4.5's bracket-and-refine
// search: there is no closed form for torus-vs-line, so the edge is
// sampled at the scale+1 evenly spaced parameters m = i/scale (both ends
// included), the best sample is kept, and a second pass refines within a
// window of +/-1/scale around it using scale2 uniform substeps (scale2+1
// samples).
func (t *ToroidalCutter) intersectTorusEdge(center, direction geom.Vector3, e geom.Edge) intersect.Contact {
	if e.Degenerate() {
		return intersect.Empty()
	}

	scale := int(math.Ceil(e.Len / t.distanceMinorRadius * 2))
	if scale < 3 {
		scale = 3
	}

	best := intersect.Empty()
	bestM := 0.0
	for i := 0; i <= scale; i++ {
		m := float64(i) / float64(scale)
		ct := intersect.TorusPoint(center, t.distanceMajorRadius, t.distanceMinorRadius, t.distanceMajorRadiusSq, t.distanceMinorRadiusSq, direction, e.Point(m))
		if ct.Hit && ct.D < best.D {
			best, bestM = ct, m
		}
	}

	const scale2 = 10
	window := 1 / float64(scale)
	lo, hi := bestM-window, bestM+window
	if lo < 0 {
		lo = 0
	}
	if hi > 1 {
		hi = 1
	}
	for i := 0; i <= scale2; i++ {
		m := lo + (hi-lo)*float64(i)/float64(scale2)
		ct := intersect.TorusPoint(center, t.distanceMajorRadius, t.distanceMinorRadius, t.distanceMajorRadiusSq, t.distanceMinorRadiusSq, direction, e.Point(m))
		if ct.Hit && ct.D < best.D {
			best = ct
		}
	}

	if best.Hit {
		kernellog.Debugf("cutter: torus-edge search scale=%d best m=%.4f d=%.6g", scale, bestM, best.D)
	}
	return best
}

// Intersect implements spec section 4.5's dispatch: the fillet against the
// triangle's plane, edges and vertices; the top disc against the same
// three, centered at location rather than the ring center; and (only when
// the sweep has a lateral component) the outer shaft against vertices and
// edges, rejecting any contact below the ring's central plane.
func (t *ToroidalCutter) Intersect(direction geom.Vector3, tri *geom.Triangle) (geom.Vector3, float64, bool) {
	center := t.Center()
	best := intersect.Empty()

	if ct := intersect.TorusPlane(center, t.distanceMajorRadius, t.distanceMinorRadius, direction, tri); ct.Hit && tri.PointInside(ct.CP) {
		best = better(best, ct)
	}
	for _, e := range [3]geom.Edge{tri.E1, tri.E2, tri.E3} {
		if ct := t.intersectTorusEdge(center, direction, e); ct.Hit {
			best = better(best, ct)
		}
	}
	for _, v := range [3]geom.Vector3{tri.P1, tri.P2, tri.P3} {
		if ct := intersect.TorusPoint(center, t.distanceMajorRadius, t.distanceMinorRadius, t.distanceMajorRadiusSq, t.distanceMinorRadiusSq, direction, v); ct.Hit {
			best = better(best, ct)
		}
	}

	if t.distanceMajorRadius > geom.Epsilon {
		if ct := intersect.CirclePlane(t.location, t.distanceMajorRadius, direction, tri); ct.Hit && tri.PointInside(ct.CP) {
			best = better(best, ct)
		}
		for _, e := range [3]geom.Edge{tri.E1, tri.E2, tri.E3} {
			if ct := intersect.CircleLine(t.location, t.distanceMajorRadius, t.distanceMajorRadiusSq, direction, e); ct.Hit && edgeInRange(ct.CP, e) {
				best = better(best, ct)
			}
		}
		for _, v := range [3]geom.Vector3{tri.P1, tri.P2, tri.P3} {
			if ct := intersect.CirclePoint(t.location, t.distanceMajorRadius, t.distanceMajorRadiusSq, direction, v); ct.Hit {
				best = better(best, ct)
			}
		}
	}

	if !geom.AlmostZero(direction.X) || !geom.AlmostZero(direction.Y) {
		for _, v := range [3]geom.Vector3{tri.P1, tri.P2, tri.P3} {
			if ct := intersect.CylinderPoint(center, t.distanceRadius, t.distanceRadiusSq, direction, v); ct.Hit && ct.CCP.Z >= center.Z-geom.Epsilon {
				best = better(best, ct)
			}
		}
		for _, e := range [3]geom.Edge{tri.E1, tri.E2, tri.E3} {
			if ct := intersect.CylinderLine(center, t.distanceRadius, t.distanceRadiusSq, direction, e); ct.Hit && ct.CCP.Z >= center.Z-geom.Epsilon && edgeInRange(ct.CP, e) {
				best = better(best, ct)
			}
		}
	}

	return toContact(t.location, best)
}

// Drop implements spec section 4.6.
func (t *ToroidalCutter) Drop(tri *geom.Triangle) (geom.Vector3, bool) {
	return drop(t, tri)
}

// Push implements spec section 4.7.
func (t *ToroidalCutter) Push(dx, dy float64, tri *geom.Triangle) (geom.Vector3, bool) {
	return push(t, dx, dy, tri)
}
