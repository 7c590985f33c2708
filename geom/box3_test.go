// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxFromPoints(t *testing.T) {
	b := BoxFromPoints(New(1, 2, 3), New(-1, 5, 0), New(4, 0, 2))
	assert.Equal(t, New(-1, 0, 0), b.Min)
	assert.Equal(t, New(4, 5, 3), b.Max)
}

func TestBoxContainsPoint(t *testing.T) {
	b := NewBox3(New(0, 0, 0), New(1, 1, 1))
	assert.True(t, b.ContainsPoint(New(0.5, 0.5, 0.5)))
	assert.True(t, b.ContainsPoint(New(0, 0, 0)))
	assert.False(t, b.ContainsPoint(New(1.1, 0, 0)))
}

func TestBoxIntersectsXY(t *testing.T) {
	a := NewBox3(New(0, 0, 0), New(1, 1, 1))
	b := NewBox3(New(0.5, 0.5, 100), New(2, 2, 200))
	assert.True(t, a.IntersectsXY(b))

	c := NewBox3(New(5, 5, 0), New(6, 6, 1))
	assert.False(t, a.IntersectsXY(c))
}

func TestBoxUnion(t *testing.T) {
	a := NewBox3(New(0, 0, 0), New(1, 1, 1))
	b := NewBox3(New(-1, -1, -1), New(0.5, 0.5, 0.5))
	u := a.Union(b)
	assert.Equal(t, New(-1, -1, -1), u.Min)
	assert.Equal(t, New(1, 1, 1), u.Max)
}

func TestBoxExpandByScalar(t *testing.T) {
	b := NewBox3(New(0, 0, 0), New(1, 1, 1)).ExpandByScalar(2)
	assert.Equal(t, New(-2, -2, -2), b.Min)
	assert.Equal(t, New(3, 3, 3), b.Max)
}
