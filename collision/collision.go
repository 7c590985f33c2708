// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collision implements spec section 6's get_shape(engine) hook:
// building a broad-phase collision proxy for a cutter, independent of the
// kernel's own geom vector type, the way an external physics/collision
// engine is independent of the exact-contact math it's coarsely
// approximating. The Proxy/Handle shape is grounded in
// akmonengine-feather's ShapeInterface (ComputeAABB/GetAABB/Support); this
// package keeps only the subset a broad-phase engine actually needs.
//
// A toroidal cutter's proxy is its enclosing cylinder (radius = nominal
// radius, height = flute height) -- a documented approximation, broad-phase
// only, per spec section 6.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/camforge/tpkernel/geom"
)

// Transform is the position a Proxy is evaluated at. Cutters in this
// kernel never rotate (spec section 3: a rigid body of revolution around
// +Z, axis fixed), so Transform carries only a translation.
type Transform struct {
	Position mgl64.Vec3
}

// AABB is an axis-aligned bounding box in the broad-phase engine's own
// vector space.
type AABB struct {
	Min, Max mgl64.Vec3
}

// Proxy is a broad-phase collision shape: it can recompute its bounds at a
// transform and answer support-point queries (the primitive GJK/SAT-style
// engines build on), mirroring the subset of
// akmonengine-feather/actor.ShapeInterface a purely kinematic cutter
// bounding proxy needs.
type Proxy interface {
	ComputeAABB(t Transform)
	AABB() AABB
	Support(direction mgl64.Vec3) mgl64.Vec3
}

// Cylinder is a vertical capped cylinder: radius and half-height about its
// own center. Both CylindricalCutter and (as an enclosing approximation)
// ToroidalCutter use it.
type Cylinder struct {
	Radius     float64
	HalfHeight float64

	aabb AABB
}

// ComputeAABB recomputes the bounding box at transform.
func (c *Cylinder) ComputeAABB(t Transform) {
	r, h := c.Radius, c.HalfHeight
	c.aabb = AABB{
		Min: mgl64.Vec3{t.Position.X() - r, t.Position.Y() - r, t.Position.Z() - h},
		Max: mgl64.Vec3{t.Position.X() + r, t.Position.Y() + r, t.Position.Z() + h},
	}
}

// AABB returns the bounds computed by the last ComputeAABB call.
func (c *Cylinder) AABB() AABB { return c.aabb }

// Support returns the point on the cylinder surface farthest along
// direction, in the cylinder's own local frame (not yet translated by a
// Transform) -- the standard GJK support-mapping contract.
func (c *Cylinder) Support(direction mgl64.Vec3) mgl64.Vec3 {
	horiz := math.Hypot(direction.X(), direction.Y())
	var x, y float64
	if horiz > geom.Epsilon {
		x = direction.X() / horiz * c.Radius
		y = direction.Y() / horiz * c.Radius
	}
	z := c.HalfHeight
	if direction.Z() < 0 {
		z = -c.HalfHeight
	}
	return mgl64.Vec3{x, y, z}
}

// Handle bundles a Proxy with the position-setter the broad-phase engine
// uses to keep it in sync after move_to -- spec section 9's re-architecture
// of get_shape: a caller-owned handle returned fresh on each call, instead
// of a closure pair cached on the cutter.
type Handle struct {
	Engine string
	Proxy  Proxy

	transform Transform
}

// SetPosition moves the proxy and recomputes its bounds, the "set_position"
// half of the original (geom, set_position) pair spec section 6 describes.
func (h *Handle) SetPosition(location geom.Vector3) {
	h.transform = Transform{Position: mgl64.Vec3{location.X, location.Y, location.Z}}
	h.Proxy.ComputeAABB(h.transform)
}

// NewCylindricalHandle builds the broad-phase handle for a cylindrical
// cutter of the given radius and height, for the named engine, positioned
// at location.
func NewCylindricalHandle(engine string, radius, height float64, location geom.Vector3) *Handle {
	h := &Handle{Engine: engine, Proxy: &Cylinder{Radius: radius, HalfHeight: height / 2}}
	h.SetPosition(location)
	return h
}

// NewToroidalHandle builds the broad-phase handle for a toroidal cutter,
// approximated by its enclosing cylinder (radius = nominal radius),
// for the named engine, positioned at location.
func NewToroidalHandle(engine string, radius, height float64, location geom.Vector3) *Handle {
	return NewCylindricalHandle(engine, radius, height, location)
}
