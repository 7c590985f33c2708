// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3Arithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -1, 2)

	assert.Equal(t, New(5, 1, 5), a.Add(b))
	assert.Equal(t, New(-3, 3, 1), a.Sub(b))
	assert.Equal(t, New(2, 4, 6), a.Scale(2))
	assert.Equal(t, New(-1, -2, -3), a.Negate())
	assert.InDelta(t, 6, a.Dot(b), 1e-12)
}

func TestVector3Cross(t *testing.T) {
	x := New(1, 0, 0)
	y := New(0, 1, 0)
	assert.Equal(t, New(0, 0, 1), x.Cross(y))
}

func TestVector3NormalizeZeroIsZero(t *testing.T) {
	assert.Equal(t, Zero, Zero.Normalize())
}

func TestVector3NormalizeUnitLength(t *testing.T) {
	v := New(3, 4, 0).Normalize()
	assert.InDelta(t, 1, v.Length(), 1e-12)
	assert.True(t, v.AlmostEquals(New(0.6, 0.8, 0), 1e-12))
}

func TestVector3DistanceTo(t *testing.T) {
	a := New(0, 0, 0)
	b := New(3, 4, 0)
	assert.InDelta(t, 5, a.DistanceTo(b), 1e-12)
	assert.InDelta(t, 25, a.DistanceToSquared(b), 1e-12)
}

func TestVector3Lerp(t *testing.T) {
	a := New(0, 0, 0)
	b := New(10, 0, 0)
	assert.Equal(t, New(5, 0, 0), a.Lerp(b, 0.5))
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
}

func TestVector3MinMax(t *testing.T) {
	a := New(1, 5, -3)
	b := New(4, 2, -1)
	assert.Equal(t, New(1, 2, -3), a.Min(b))
	assert.Equal(t, New(4, 5, -1), a.Max(b))
}
