// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cutter

import (
	"github.com/camforge/tpkernel/geom"
	"github.com/camforge/tpkernel/intersect"
)

// CylindricalCutter is a flat end mill: tool axis +Z, bottom face a disc of
// radius distanceRadius centered at Center().
type CylindricalCutter struct {
	base
}

// NewCylindrical constructs a cylindrical cutter of the given nominal
// radius and flute height, positioned at location.
func NewCylindrical(radius, height float64, location geom.Vector3) (*CylindricalCutter, error) {
	b, err := newBase(radius, height, location)
	if err != nil {
		return nil, err
	}
	return &CylindricalCutter{base: b}, nil
}

// Center returns the center of the bottom disc: location offset down by
// the current required-distance inflation (spec section 3).
func (c *CylindricalCutter) Center() geom.Vector3 {
	return geom.New(c.location.X, c.location.Y, c.location.Z-c.requiredDistance)
}

// MoveTo updates location; Center() derives from it on demand so there is
// no stale derived state to re-synchronize.
func (c *CylindricalCutter) MoveTo(location geom.Vector3) {
	c.location = location
}

// SetRequiredDistance inflates the disc radius; negative values are
// ignored (spec section 4.3).
func (c *CylindricalCutter) SetRequiredDistance(v float64) {
	c.setRequiredDistance(v)
}

// ShapeKey identifies a cylindrical cutter by its nominal radius alone
// (spec section 4.8).
func (c *CylindricalCutter) ShapeKey() ShapeKey {
	return ShapeKey{Kind: "cylindrical", Radius: c.radius}
}

// Intersect implements spec section 4.4's dispatch: the bottom disc
// against the triangle's plane, edges and vertices, then (only when the
// sweep has a lateral component) the side cylinder against vertices and
// edges, keeping the minimum d throughout.
func (c *CylindricalCutter) Intersect(direction geom.Vector3, tri *geom.Triangle) (geom.Vector3, float64, bool) {
	center := c.Center()
	dr, drSq := c.distanceRadius, c.distanceRadiusSq
	verticalOnly := geom.AlmostZero(direction.X) && geom.AlmostZero(direction.Y)
	best := intersect.Empty()

	if ct := intersect.CirclePlane(center, dr, direction, tri); ct.Hit && tri.PointInside(ct.CP) {
		best = better(best, ct)
		if verticalOnly {
			return toContact(c.location, best)
		}
	}

	for _, e := range [3]geom.Edge{tri.E1, tri.E2, tri.E3} {
		if ct := intersect.CircleLine(center, dr, drSq, direction, e); ct.Hit && edgeInRange(ct.CP, e) {
			best = better(best, ct)
		}
	}
	for _, v := range [3]geom.Vector3{tri.P1, tri.P2, tri.P3} {
		if ct := intersect.CirclePoint(center, dr, drSq, direction, v); ct.Hit {
			best = better(best, ct)
		}
	}

	if verticalOnly {
		return toContact(c.location, best)
	}

	for _, v := range [3]geom.Vector3{tri.P1, tri.P2, tri.P3} {
		if ct := intersect.CylinderPoint(center, dr, drSq, direction, v); ct.Hit && ct.CCP.Z >= center.Z-geom.Epsilon {
			best = better(best, ct)
		}
	}
	for _, e := range [3]geom.Edge{tri.E1, tri.E2, tri.E3} {
		if ct := intersect.CylinderLine(center, dr, drSq, direction, e); ct.Hit && ct.CCP.Z >= center.Z-geom.Epsilon && edgeInRange(ct.CP, e) {
			best = better(best, ct)
		}
	}

	return toContact(c.location, best)
}

// Drop implements spec section 4.6.
func (c *CylindricalCutter) Drop(tri *geom.Triangle) (geom.Vector3, bool) {
	return drop(c, tri)
}

// Push implements spec section 4.7.
func (c *CylindricalCutter) Push(dx, dy float64, tri *geom.Triangle) (geom.Vector3, bool) {
	return push(c, dx, dy, tri)
}
