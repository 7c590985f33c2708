// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cutter implements the Cutter capability (spec section 4.3) and its
// two concrete variants, CylindricalCutter and ToroidalCutter, along with
// the drop/push broad-phase façade (section 4.6/4.7). Geometric degeneracy
// never surfaces here as an error -- only construction and
// capability-dispatch failures do (section 7).
package cutter

import "errors"

// ErrInvalidShape is returned when a cutter is constructed with a
// geometrically invalid shape (non-positive radius or height, or a
// toroidal minor radius outside (0, radius]).
var ErrInvalidShape = errors.New("cutter: invalid shape")

// ErrNotImplemented is returned by a capability a variant does not support.
var ErrNotImplemented = errors.New("cutter: not implemented")
