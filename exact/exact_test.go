// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmeticIsExact(t *testing.T) {
	a := FromInt64(1)
	third := a.Quo(FromInt64(3))
	sum := third.Add(third).Add(third)
	assert.Equal(t, 0, sum.Cmp(FromInt64(1)))
	assert.Equal(t, "1", sum.String())
}

func TestIsZero(t *testing.T) {
	assert.True(t, Zero.IsZero())
	assert.True(t, FromInt64(1).Sub(FromInt64(1)).IsZero())
	assert.False(t, FromInt64(1).IsZero())
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, FromInt64(1).Cmp(FromInt64(2)))
	assert.Equal(t, 1, FromInt64(2).Cmp(FromInt64(1)))
	assert.Equal(t, 0, FromInt64(2).Cmp(FromInt64(2)))
}

func TestFloat64RoundTrips(t *testing.T) {
	s := FromFloat64(0.5)
	assert.InDelta(t, 0.5, s.Float64(), 1e-15)
}

func TestNeg(t *testing.T) {
	s := FromInt64(5).Neg()
	assert.Equal(t, 0, s.Cmp(FromInt64(-5)))
}

func TestMul(t *testing.T) {
	s := FromInt64(6).Mul(FromInt64(7))
	assert.Equal(t, 0, s.Cmp(FromInt64(42)))
}
