// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Edge is a directed line segment between two triangle vertices, with a
// precomputed unit direction and length so that intersect.CircleLine and
// friends never recompute them. A degenerate (zero-length) edge is stored
// with Dir == Zero and Len == 0 rather than rejected at construction — the
// geometric sub-routines treat that as "no contact" instead of failing, per
// spec section 7.
type Edge struct {
	P1, P2 Vector3
	Dir    Vector3
	Len    float64
}

// NewEdge returns the edge from p1 to p2.
func NewEdge(p1, p2 Vector3) Edge {
	delta := p2.Sub(p1)
	length := delta.Length()
	dir := delta.Normalize()
	return Edge{P1: p1, P2: p2, Dir: dir, Len: length}
}

// Point returns the point on the edge at parameter m in [0, 1], i.e.
// P1 + Dir*Len*m.
func (e Edge) Point(m float64) Vector3 {
	return e.P1.Add(e.Dir.Scale(e.Len * m))
}

// Degenerate reports whether the edge has zero length.
func (e Edge) Degenerate() bool {
	return e.Len == 0
}
