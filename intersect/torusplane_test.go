// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camforge/tpkernel/geom"
)

// Dropping a bull-nose torus straight onto a horizontal plane below it
// must contact at the bottom of the tube, directly under the ring center,
// at a distance equal to the full vertical gap minus the tube radius.
func TestTorusPlaneFlatDrop(t *testing.T) {
	tri := flatPlane(0)
	center := geom.New(0, 0, 10)
	ct := TorusPlane(center, 3, 1, geom.New(0, 0, -1), tri)

	assert.True(t, ct.Hit)
	assert.InDelta(t, 9, ct.D, 1e-9)
	// ccp sits on the torus's current (unswept) surface, one tube radius
	// below the ring center; cp is the corresponding point on the plane.
	assert.InDelta(t, 9, ct.CCP.Z, 1e-9)
	assert.InDelta(t, 0, ct.CP.Z, 1e-9)
}

func TestTorusPlaneParallelSweepMisses(t *testing.T) {
	tri := flatPlane(0)
	center := geom.New(0, 0, 10)
	ct := TorusPlane(center, 3, 1, geom.New(1, 0, 0), tri)
	assert.False(t, ct.Hit)
}
