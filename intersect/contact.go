// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intersect implements the closed-form geometric sub-routines
// described in spec section 4.1: sweeping a circle along a direction
// against a stationary plane, point, or line; an infinite cylinder
// side-surface against a point or line; and a torus surface against a
// plane or point. There is no torus-vs-line routine here: package cutter
// searches an edge for torus contact with repeated TorusPoint calls. Every
// routine is a pure function of its inputs, returns a value
// type, and degrades to Empty() rather than NaN on degenerate input.
package intersect

import "github.com/camforge/tpkernel/geom"

// Contact is the (ccp, cp, d) triple every sub-routine returns: CCP is the
// point on the moving primitive's *current* (unswept) surface that makes
// first contact; CP is the corresponding point on the stationary target,
// which by construction equals CCP translated by D along the sweep
// direction; D is the sweep distance. Hit is false for the empty sentinel.
type Contact struct {
	CCP geom.Vector3
	CP  geom.Vector3
	D   float64
	Hit bool
}

// Empty returns the no-contact sentinel, with D == geom.Infinity as spec
// section 4.1 requires.
func Empty() Contact {
	return Contact{D: geom.Infinity}
}
