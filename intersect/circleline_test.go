// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camforge/tpkernel/geom"
)

func TestCircleLineVerticalDrop(t *testing.T) {
	center := geom.New(0, 0, 5)
	edge := geom.NewEdge(geom.New(-10, 1, 0), geom.New(10, 1, 0))
	ct := CircleLine(center, 2, 4, geom.New(0, 0, -1), edge)

	assert.True(t, ct.Hit)
	// The line already passes through the disc's footprint (distance 1 <
	// radius 2), so contact happens the instant the disc's height reaches
	// the line's height: d equals the full vertical drop.
	assert.InDelta(t, 5, ct.D, 1e-9)
}

func TestCircleLineVerticalDropMissesWhenTooFar(t *testing.T) {
	center := geom.New(0, 0, 5)
	edge := geom.NewEdge(geom.New(-10, 10, 0), geom.New(10, 10, 0))
	ct := CircleLine(center, 2, 4, geom.New(0, 0, -1), edge)
	assert.False(t, ct.Hit)
}

func TestCircleLineDegenerateEdgeMisses(t *testing.T) {
	center := geom.New(0, 0, 5)
	edge := geom.NewEdge(geom.New(1, 1, 0), geom.New(1, 1, 0))
	ct := CircleLine(center, 2, 4, geom.New(0, 0, -1), edge)
	assert.False(t, ct.Hit)
}

func TestCircleLineHorizontalSharedHeight(t *testing.T) {
	center := geom.New(0, 0, 0)
	edge := geom.NewEdge(geom.New(-10, 5, 0), geom.New(10, 5, 0))
	ct := CircleLine(center, 2, 4, geom.New(0, 1, 0), edge)

	assert.True(t, ct.Hit)
	assert.InDelta(t, 3, ct.D, 1e-9)
}

func TestCircleLineHorizontalDifferentHeightMisses(t *testing.T) {
	center := geom.New(0, 0, 0)
	edge := geom.NewEdge(geom.New(-10, 5, 3), geom.New(10, 5, 3))
	ct := CircleLine(center, 2, 4, geom.New(0, 1, 0), edge)
	assert.False(t, ct.Hit)
}
