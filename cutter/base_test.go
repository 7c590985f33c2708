// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cutter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camforge/tpkernel/geom"
	"github.com/camforge/tpkernel/intersect"
)

func TestBetterPrefersSmallerD(t *testing.T) {
	near := intersect.Contact{D: 1, Hit: true}
	far := intersect.Contact{D: 5, Hit: true}
	assert.Equal(t, near, better(near, far))
	assert.Equal(t, near, better(far, near))
}

func TestBetterMissAlwaysLoses(t *testing.T) {
	hit := intersect.Contact{D: 1, Hit: true}
	miss := intersect.Empty()
	assert.Equal(t, hit, better(miss, hit))
	assert.Equal(t, hit, better(hit, miss))
}

func TestToContactMiss(t *testing.T) {
	cl, d, ok := toContact(geom.New(1, 2, 3), intersect.Empty())
	assert.False(t, ok)
	assert.Equal(t, geom.Zero, cl)
	assert.Equal(t, geom.Infinity, d)
}

func TestEdgeInRangeBounds(t *testing.T) {
	e := geom.NewEdge(geom.New(0, 0, 0), geom.New(10, 0, 0))
	assert.True(t, edgeInRange(geom.New(5, 0, 0), e))
	assert.True(t, edgeInRange(geom.New(0, 0, 0), e))
	assert.True(t, edgeInRange(geom.New(10, 0, 0), e))
	assert.False(t, edgeInRange(geom.New(11, 0, 0), e))
	assert.False(t, edgeInRange(geom.New(-1, 0, 0), e))
}

func TestSetRequiredDistanceIgnoresNegative(t *testing.T) {
	c, _ := NewCylindrical(2, 10, geom.Zero)
	c.SetRequiredDistance(3)
	assert.InDelta(t, 3, c.RequiredDistance(), 1e-12)

	c.SetRequiredDistance(-1)
	assert.InDelta(t, 3, c.RequiredDistance(), 1e-12)
}
