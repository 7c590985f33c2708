// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exact provides an arbitrary-precision rational scalar for
// regression tests that need bit-for-bit reproducible results
// independent of floating-point rounding (spec section 5: "Arbitrary-
// precision mode trades throughput for reproducibility and is useful for
// regression tests"). Production code in package intersect and cutter uses
// float64 throughout, and no package or test outside this one imports
// exact; nothing in the retrieval pack offers a third-party
// arbitrary-precision rational type, so this is the one package built
// directly on the standard library (math/big) rather than a pack
// dependency.
package exact

import "math/big"

// Scalar is an exact rational number.
type Scalar struct {
	r *big.Rat
}

// Zero is the exact value 0.
var Zero = Scalar{r: new(big.Rat)}

// FromInt64 returns the exact value n.
func FromInt64(n int64) Scalar {
	return Scalar{r: new(big.Rat).SetInt64(n)}
}

// FromFloat64 returns the exact rational equal to f; f must be finite.
func FromFloat64(f float64) Scalar {
	r := new(big.Rat)
	r.SetFloat64(f)
	return Scalar{r: r}
}

func (s Scalar) rat() *big.Rat {
	if s.r == nil {
		return new(big.Rat)
	}
	return s.r
}

// Add returns s + other.
func (s Scalar) Add(other Scalar) Scalar {
	return Scalar{r: new(big.Rat).Add(s.rat(), other.rat())}
}

// Sub returns s - other.
func (s Scalar) Sub(other Scalar) Scalar {
	return Scalar{r: new(big.Rat).Sub(s.rat(), other.rat())}
}

// Mul returns s * other.
func (s Scalar) Mul(other Scalar) Scalar {
	return Scalar{r: new(big.Rat).Mul(s.rat(), other.rat())}
}

// Quo returns s / other; other must be non-zero.
func (s Scalar) Quo(other Scalar) Scalar {
	return Scalar{r: new(big.Rat).Quo(s.rat(), other.rat())}
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	return Scalar{r: new(big.Rat).Neg(s.rat())}
}

// Cmp returns -1, 0 or +1 as s is less than, equal to, or greater than
// other.
func (s Scalar) Cmp(other Scalar) int {
	return s.rat().Cmp(other.rat())
}

// IsZero reports whether s is exactly zero.
func (s Scalar) IsZero() bool {
	return s.rat().Sign() == 0
}

// Float64 returns the nearest float64 to s, for comparison against the
// kernel's float64-backed production path in regression tests.
func (s Scalar) Float64() float64 {
	f, _ := s.rat().Float64()
	return f
}

// String returns s in "num/den" form, or as just "num" when the
// denominator is 1.
func (s Scalar) String() string {
	return s.rat().RatString()
}
