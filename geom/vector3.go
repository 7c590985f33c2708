// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the 3D point/vector, plane, box, edge and
// triangle primitives shared by the intersection kernel. Unlike a graphics
// engine's math library, values here are immutable: every operation returns
// a new Vector3 rather than mutating the receiver, so the same Triangle or
// Edge can be shared safely across concurrent intersect calls (see
// package cutter).
package geom

import "math"

// Vector3 is a 3D point or vector with X, Y and Z components.
type Vector3 struct {
	X, Y, Z float64
}

// Vec3 is an alias used where a value reads more naturally as a point.
type Vec3 = Vector3

// Zero is the origin / zero vector.
var Zero = Vector3{}

// New returns a new Vector3 with the given components.
func New(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and other.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v x other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSq returns the squared length of v; cheaper than Length when only
// used for comparison.
func (v Vector3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// DistanceToSquared returns the squared distance between v and other.
func (v Vector3) DistanceToSquared(other Vector3) float64 {
	return v.Sub(other).LengthSq()
}

// DistanceTo returns the distance between v and other.
func (v Vector3) DistanceTo(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Normalize returns v scaled to unit length. A zero-length vector normalizes
// to the zero vector rather than producing NaN or an error; callers that
// need to distinguish the degenerate case check Length() == 0 first, the
// same convention the kernel uses for "no contact" sentinels throughout.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return Zero
	}
	return v.Scale(1 / l)
}

// Lerp returns the point alpha of the way from v to other.
func (v Vector3) Lerp(other Vector3, alpha float64) Vector3 {
	return v.Add(other.Sub(v).Scale(alpha))
}

// Equals returns whether v and other have identical components.
func (v Vector3) Equals(other Vector3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// AlmostEquals returns whether v and other are equal within tolerance on
// every component.
func (v Vector3) AlmostEquals(other Vector3, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance &&
		math.Abs(v.Y-other.Y) <= tolerance &&
		math.Abs(v.Z-other.Z) <= tolerance
}

// Min returns the component-wise minimum of v and other.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{math.Min(v.X, other.X), math.Min(v.Y, other.Y), math.Min(v.Z, other.Z)}
}

// Max returns the component-wise maximum of v and other.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{math.Max(v.X, other.X), math.Max(v.Y, other.Y), math.Max(v.Z, other.Z)}
}
