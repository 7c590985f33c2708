// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cutter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camforge/tpkernel/geom"
)

// Ball-on-vertex: a ball-nose cutter (minorRadius == radius, majorRadius
// == 0) dropped directly over a vertex of the floor triangle comes to rest
// with its tip at the vertex's height, its ball center one ball radius
// above the vertex.
func TestToroidalCutterBallOnVertex(t *testing.T) {
	c, err := NewToroidal(2, 2, 10, geom.New(0, 20, 30))
	require.NoError(t, err)

	tri := flatFloor(0)
	cl, ok := c.Drop(tri)
	require.True(t, ok)
	assert.InDelta(t, 0, cl.X, 1e-6)
	assert.InDelta(t, 20, cl.Y, 1e-6)
	assert.InDelta(t, 0, cl.Z, 1e-5)
}

// Flat drop of a bull-nose cutter: dropped onto the floor away from any
// edge or vertex, it lands flush with the tube's bottom touching the plane.
func TestToroidalCutterFlatDrop(t *testing.T) {
	c, err := NewToroidal(3, 1, 10, geom.New(0, 0, 30))
	require.NoError(t, err)

	tri := flatFloor(0)
	cl, ok := c.Drop(tri)
	require.True(t, ok)
	assert.InDelta(t, 0, cl.Z, 1e-6)
}

func TestToroidalCutterNoContactOffToTheSide(t *testing.T) {
	c, err := NewToroidal(3, 1, 10, geom.New(500, 500, 30))
	require.NoError(t, err)

	tri := flatFloor(0)
	_, ok := c.Drop(tri)
	assert.False(t, ok)
}

func TestNewToroidalRejectsInvalidMinorRadius(t *testing.T) {
	_, err := NewToroidal(2, 0, 10, geom.Zero)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = NewToroidal(2, 3, 10, geom.Zero)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestToroidalCutterRecomputeDistancesOnInflation(t *testing.T) {
	c, err := NewToroidal(5, 2, 10, geom.Zero)
	require.NoError(t, err)

	assert.InDelta(t, 3, c.majorRadius, 1e-12)
	assert.InDelta(t, 2, c.distanceMinorRadius, 1e-12)

	c.SetRequiredDistance(1)
	// Major radius (ring center distance) is unchanged by inflation; the
	// minor (tube) radius absorbs it entirely.
	assert.InDelta(t, 3, c.distanceMajorRadius, 1e-12)
	assert.InDelta(t, 3, c.distanceMinorRadius, 1e-12)
	assert.InDelta(t, c.distanceMajorRadius+c.distanceMinorRadius, c.distanceRadius, 1e-12)
}

func TestToroidalCutterShapeKeyDistinguishesMajorMinor(t *testing.T) {
	a, _ := NewToroidal(3, 1, 10, geom.Zero)   // major 2, minor 1
	b, _ := NewToroidal(3, 0.5, 10, geom.Zero) // major 2.5, minor 0.5
	assert.False(t, Equal(a, b))
	assert.True(t, Less(a, b))
}
