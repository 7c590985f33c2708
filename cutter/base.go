// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cutter

import (
	"fmt"

	"github.com/camforge/tpkernel/geom"
	"github.com/camforge/tpkernel/intersect"
	"github.com/camforge/tpkernel/kernellog"
)

// base holds the fields every cutter variant shares: identity, reference
// location, nominal shape, and the required-distance inflation with its
// derived squared radius. Variant fields (minor radius, derived torus
// quantities) live in the concrete struct that embeds base, per spec
// section 9's re-architecture note.
type base struct {
	id               uint64
	location         geom.Vector3
	radius           float64
	height           float64
	requiredDistance float64
	distanceRadius   float64
	distanceRadiusSq float64
}

func newBase(radius, height float64, location geom.Vector3) (base, error) {
	if radius <= 0 {
		return base{}, fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidShape, radius)
	}
	if height <= 0 {
		return base{}, fmt.Errorf("%w: height must be positive, got %v", ErrInvalidShape, height)
	}
	b := base{id: nextID(), location: location, radius: radius, height: height}
	b.setRequiredDistance(0)
	return b, nil
}

// setRequiredDistance updates requiredDistance and the derived distance
// radius atomically; negative values are silently ignored, matching the
// source's compatibility behavior (spec section 4.3).
func (b *base) setRequiredDistance(v float64) {
	if v < 0 {
		return
	}
	b.requiredDistance = v
	b.distanceRadius = b.radius + v
	b.distanceRadiusSq = b.distanceRadius * b.distanceRadius
}

func (b *base) ID() uint64                 { return b.id }
func (b *base) Location() geom.Vector3     { return b.location }
func (b *base) Radius() float64            { return b.radius }
func (b *base) Height() float64            { return b.height }
func (b *base) RequiredDistance() float64  { return b.requiredDistance }
func (b *base) DistanceRadius() float64    { return b.distanceRadius }
func (b *base) DistanceRadiusSq() float64  { return b.distanceRadiusSq }

// better returns whichever of a, b has the smaller (earlier) D, treating a
// non-hit as losing to anything.
func better(a, b intersect.Contact) intersect.Contact {
	if !b.Hit {
		return a
	}
	if !a.Hit || b.D < a.D {
		return b
	}
	return a
}

// toContact converts the winning sub-routine Contact into the cutter
// reference point's position at the moment of contact: cl = cp + (location
// - ccp). Since every sub-routine defines cp == ccp + d*direction, this is
// algebraically identical to location + d*direction, but the literal form
// mirrors the source's cl.add(location.sub(ccp)) computation.
func toContact(location geom.Vector3, best intersect.Contact) (geom.Vector3, float64, bool) {
	if !best.Hit {
		kernellog.Debugf("cutter: no contact (d=inf)")
		return geom.Zero, geom.Infinity, false
	}
	cl := best.CP.Add(location.Sub(best.CCP))
	return cl, best.D, true
}

// edgeInRange reports whether cp, known to lie on the infinite line through
// edge, falls within the edge's parametric range [0, edge.Len].
func edgeInRange(cp geom.Vector3, edge geom.Edge) bool {
	m := cp.Sub(edge.P1).Dot(edge.Dir)
	return m >= -geom.Epsilon && m <= edge.Len+geom.Epsilon
}

// intersector is the minimal surface drop/push need; both CylindricalCutter
// and ToroidalCutter satisfy it.
type intersector interface {
	Location() geom.Vector3
	DistanceRadius() float64
	DistanceRadiusSq() float64
	Intersect(direction geom.Vector3, tri *geom.Triangle) (geom.Vector3, float64, bool)
}

// dropSweep is the vertical sweep direction convention fixed by spec
// section 4.6.
var dropSweep = geom.New(0, 0, -1)

// drop implements spec section 4.6: two broad-phase rejections, then a
// vertical intersect.
func drop(c intersector, tri *geom.Triangle) (geom.Vector3, bool) {
	loc := c.Location()
	dr := c.DistanceRadius()
	bounds := tri.Bounds()
	if loc.X-dr > bounds.Max.X || loc.X+dr < bounds.Min.X {
		return geom.Zero, false
	}
	if loc.Y-dr > bounds.Max.Y || loc.Y+dr < bounds.Min.Y {
		return geom.Zero, false
	}

	cx := tri.Centroid().X - loc.X
	cy := tri.Centroid().Y - loc.Y
	sumSq := c.DistanceRadiusSq() + 2*dr*tri.Radius() + tri.RadiusSq()
	if cx*cx+cy*cy > sumSq {
		kernellog.Debugf("cutter: bounding-circle rejection at (%v, %v)", loc.X, loc.Y)
		return geom.Zero, false
	}

	cl, _, ok := c.Intersect(dropSweep, tri)
	return cl, ok
}

// push implements spec section 4.7: a perpendicular-distance broad-phase
// rejection, then a horizontal intersect. dx, dy are expected to form a
// unit direction, matching the source's un-normalized rejection formula.
func push(c intersector, dx, dy float64, tri *geom.Triangle) (geom.Vector3, bool) {
	loc := c.Location()
	dr := c.DistanceRadius()
	cx := tri.Centroid().X - loc.X
	cy := tri.Centroid().Y - loc.Y
	perp := cx*dy - cy*dx
	if perp < 0 {
		perp = -perp
	}
	if perp > dr+tri.Radius() {
		return geom.Zero, false
	}

	cl, _, ok := c.Intersect(geom.New(dx, dy, 0), tri)
	return cl, ok
}
