// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package triindex accelerates "which triangles are near this cutter"
// queries with an R-tree over triangle bounding boxes, the supporting role
// PyCAM's original TriangleKdtree/Model played for its cutter strategies
// (not retained in original_source/, since only Cutters/ was kept). Use of
// this package is additive: drop/push in package cutter work against a
// bare []*geom.Triangle with no index at all.
package triindex

import (
	"github.com/dhconnelly/rtreego"

	"github.com/camforge/tpkernel/geom"
)

const (
	minBranch = 25
	maxBranch = 50
)

// leaf adapts a *geom.Triangle to rtreego.Spatial.
type leaf struct {
	tri  *geom.Triangle
	rect *rtreego.Rect
}

func (l *leaf) Bounds() *rtreego.Rect { return l.rect }

func newLeaf(tri *geom.Triangle) (*leaf, error) {
	b := tri.Bounds()
	lengths := []float64{
		sizeOrEpsilon(b.Max.X - b.Min.X),
		sizeOrEpsilon(b.Max.Y - b.Min.Y),
		sizeOrEpsilon(b.Max.Z - b.Min.Z),
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.Min.X, b.Min.Y, b.Min.Z}, lengths)
	if err != nil {
		return nil, err
	}
	return &leaf{tri: tri, rect: rect}, nil
}

// rtreego rejects a zero-length side, which an axis-aligned triangle
// produces whenever it's degenerate in one dimension.
func sizeOrEpsilon(v float64) float64 {
	if v < geom.Epsilon {
		return geom.Epsilon
	}
	return v
}

// Index is a read-only spatial index over a fixed triangle set, built once
// and queried many times (spec section 5: triangles and triangle indices
// are immutable after construction).
type Index struct {
	tree *rtreego.Rtree
}

// New builds an Index over tris. Triangles with a degenerate (zero-volume)
// bounding box are still indexed; sizeOrEpsilon keeps rtreego from
// rejecting them.
func New(tris []*geom.Triangle) (*Index, error) {
	tree := rtreego.NewTree(3, minBranch, maxBranch)
	for _, tri := range tris {
		l, err := newLeaf(tri)
		if err != nil {
			return nil, err
		}
		tree.Insert(l)
	}
	return &Index{tree: tree}, nil
}

// Query returns every indexed triangle whose bounding box intersects
// bounds. The caller still runs the exact broad-phase and intersect tests
// from package cutter on the returned candidates; Query only narrows the
// search.
func (idx *Index) Query(bounds geom.Box3) ([]*geom.Triangle, error) {
	lengths := []float64{
		sizeOrEpsilon(bounds.Max.X - bounds.Min.X),
		sizeOrEpsilon(bounds.Max.Y - bounds.Min.Y),
		sizeOrEpsilon(bounds.Max.Z - bounds.Min.Z),
	}
	rect, err := rtreego.NewRect(rtreego.Point{bounds.Min.X, bounds.Min.Y, bounds.Min.Z}, lengths)
	if err != nil {
		return nil, err
	}
	hits := idx.tree.SearchIntersect(rect)
	out := make([]*geom.Triangle, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*leaf).tri)
	}
	return out, nil
}

// Len returns the number of triangles indexed.
func (idx *Index) Len() int {
	return idx.tree.Size()
}
