// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func flatTriangle() *Triangle {
	return NewTriangle(New(0, 0, 0), New(4, 0, 0), New(0, 4, 0))
}

func TestTriangleNormalAndPlane(t *testing.T) {
	tri := flatTriangle()
	assert.True(t, tri.Normal().AlmostEquals(New(0, 0, 1), 1e-9))
	assert.InDelta(t, 0, tri.Plane().DistanceToPoint(New(1, 1, 0)), 1e-9)
	assert.InDelta(t, 2, tri.Plane().DistanceToPoint(New(1, 1, 2)), 1e-9)
}

func TestTriangleCentroidAndRadius(t *testing.T) {
	tri := flatTriangle()
	centroid := tri.Centroid()
	assert.True(t, centroid.AlmostEquals(New(4.0/3, 4.0/3, 0), 1e-9))
	// Radius must cover every vertex from the centroid.
	for _, p := range []Vector3{tri.P1, tri.P2, tri.P3} {
		assert.LessOrEqual(t, centroid.DistanceTo(p), tri.Radius()+1e-9)
	}
}

func TestTriangleBounds(t *testing.T) {
	tri := flatTriangle()
	b := tri.Bounds()
	assert.Equal(t, New(0, 0, 0), b.Min)
	assert.Equal(t, New(4, 4, 0), b.Max)
}

func TestTrianglePointInside(t *testing.T) {
	tri := flatTriangle()
	assert.True(t, tri.PointInside(New(1, 1, 0)))
	assert.True(t, tri.PointInside(New(0, 0, 0)))  // vertex
	assert.True(t, tri.PointInside(New(2, 0, 0)))  // on edge
	assert.False(t, tri.PointInside(New(3, 3, 0))) // outside, beyond hypotenuse
	assert.False(t, tri.PointInside(New(-1, 1, 0)))
}

func TestTriangleEdges(t *testing.T) {
	tri := flatTriangle()
	assert.Equal(t, tri.P1, tri.E1.P1)
	assert.Equal(t, tri.P2, tri.E1.P2)
	assert.InDelta(t, 4, tri.E1.Len, 1e-9)
}

func TestTriangleDegeneratePointInside(t *testing.T) {
	tri := NewTriangle(New(0, 0, 0), New(1, 0, 0), New(2, 0, 0))
	assert.False(t, tri.PointInside(New(1, 0, 0)))
}
