// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Box3 is an axis-aligned bounding box, used throughout the kernel for
// broad-phase rejection (spec section 4.6) and as the leaf bounds fed to
// package triindex's R-tree.
type Box3 struct {
	Min, Max Vector3
}

// NewBox3 returns the box with the given min and max corners.
func NewBox3(min, max Vector3) Box3 {
	return Box3{Min: min, Max: max}
}

// BoxFromPoints returns the smallest Box3 containing all of points.
func BoxFromPoints(points ...Vector3) Box3 {
	if len(points) == 0 {
		return Box3{}
	}
	b := Box3{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// ContainsPoint reports whether p lies within or on the box.
func (b Box3) ContainsPoint(p Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectsXY reports whether the XY projections of b and other overlap;
// this is the exact test spec section 4.6 performs for drop's first
// broad-phase rejection.
func (b Box3) IntersectsXY(other Box3) bool {
	if b.Min.X > other.Max.X || b.Max.X < other.Min.X {
		return false
	}
	if b.Min.Y > other.Max.Y || b.Max.Y < other.Min.Y {
		return false
	}
	return true
}

// Center returns the box's center point.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// ExpandByScalar returns a new box expanded by s on every side.
func (b Box3) ExpandByScalar(s float64) Box3 {
	d := Vector3{s, s, s}
	return Box3{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// Union returns the smallest box containing both b and other.
func (b Box3) Union(other Box3) Box3 {
	return Box3{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}
