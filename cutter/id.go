// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cutter

import "sync/atomic"

var idCounter uint64

// nextID returns a new process-wide, monotonically increasing cutter id.
// The source used a class-level counter mutated on every construction;
// here it's a single atomic counter shared by every variant, safe to call
// concurrently from multiple worker goroutines each constructing their own
// cutter (spec section 5).
func nextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}
