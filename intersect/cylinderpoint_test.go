// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camforge/tpkernel/geom"
)

// The infinite cylinder's contact never depends on height: a point far
// above or below the axis center still registers contact at the same d.
func TestCylinderPointIndependentOfHeight(t *testing.T) {
	low := CylinderPoint(geom.New(0, 0, 0), 2, 4, geom.New(1, 0, 0), geom.New(5, 0, -100))
	high := CylinderPoint(geom.New(0, 0, 0), 2, 4, geom.New(1, 0, 0), geom.New(5, 0, 100))

	assert.True(t, low.Hit)
	assert.True(t, high.Hit)
	assert.InDelta(t, low.D, high.D, 1e-9)
	assert.InDelta(t, 3, low.D, 1e-9)
}

func TestCylinderPointMissesWhenNeverClose(t *testing.T) {
	ct := CylinderPoint(geom.New(0, 0, 0), 1, 1, geom.New(0, 1, 0), geom.New(5, 0, 0))
	assert.False(t, ct.Hit)
}
