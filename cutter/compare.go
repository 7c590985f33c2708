// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cutter

import (
	"fmt"

	"github.com/camforge/tpkernel/geom"
)

// Cutter is the capability every variant implements: position and shape
// mutation, the sweep test, and the two broad-phase entry points (spec
// section 4.3).
type Cutter interface {
	ID() uint64
	Location() geom.Vector3
	MoveTo(location geom.Vector3)
	RequiredDistance() float64
	SetRequiredDistance(v float64)
	DistanceRadius() float64
	Intersect(direction geom.Vector3, tri *geom.Triangle) (geom.Vector3, float64, bool)
	Drop(tri *geom.Triangle) (geom.Vector3, bool)
	Push(dx, dy float64, tri *geom.Triangle) (geom.Vector3, bool)
	ShapeKey() ShapeKey
}

// ShapeKey identifies a cutter's shape independent of its location, the
// basis for spec section 4.8's by-shape comparison: a cylindrical cutter's
// key is (Kind, Radius); a toroidal cutter's is (Kind, Radius, Major,
// Minor).
type ShapeKey struct {
	Kind         string
	Radius       float64
	Major, Minor float64
}

// String returns a canonical textual form of the key. Less does not use
// it: cutters of different Kind are ordered by the Kind name itself.
func (k ShapeKey) String() string {
	switch k.Kind {
	case "cylindrical":
		return fmt.Sprintf("cylindrical(%v)", k.Radius)
	case "toroidal":
		return fmt.Sprintf("toroidal(%v,%v,%v)", k.Radius, k.Major, k.Minor)
	default:
		return fmt.Sprintf("%s(%v,%v,%v)", k.Kind, k.Radius, k.Major, k.Minor)
	}
}

// Equal reports whether a and b have the same shape, ignoring location.
func Equal(a, b Cutter) bool {
	return a.ShapeKey() == b.ShapeKey()
}

// Less orders cutters for deduplication: first by Kind name, then by the
// shape tuple.
func Less(a, b Cutter) bool {
	ka, kb := a.ShapeKey(), b.ShapeKey()
	if ka.Kind != kb.Kind {
		return ka.Kind < kb.Kind
	}
	if ka.Radius != kb.Radius {
		return ka.Radius < kb.Radius
	}
	if ka.Major != kb.Major {
		return ka.Major < kb.Major
	}
	return ka.Minor < kb.Minor
}
