// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernellog is a small leveled logger, in the shape of
// g3n-engine's util/logger, reserved for optional diagnostic tracing of
// the torus-edge bracket/refine search, broad-phase rejection decisions
// and no-contact results. It is never on the hot per-triangle path by default: level
// gating makes a call at a disabled level a single atomic load plus a
// branch.
package kernellog

import (
	"fmt"
	"os"
	"sync/atomic"
)

// Level filters which messages reach the writer.
type Level int32

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < DEBUG || l > ERROR {
		return "UNKNOWN"
	}
	return levelNames[l]
}

var current int32 = int32(WARN)

// SetLevel changes the global minimum level that is actually written.
// Diagnostics are off (WARN, the default) unless a caller opts in, since
// per spec section 4.5 the torus-edge search runs once per edge per
// intersect call and tracing it unconditionally would dominate the cost
// of the computation it's meant to explain.
func SetLevel(l Level) {
	atomic.StoreInt32(&current, int32(l))
}

func enabled(l Level) bool {
	return int32(l) >= atomic.LoadInt32(&current)
}

func logf(l Level, format string, args ...any) {
	if !enabled(l) {
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] "+format+"\n", append([]any{l.String()}, args...)...)
}

// Debugf logs a diagnostic message at DEBUG level.
func Debugf(format string, args ...any) { logf(DEBUG, format, args...) }

// Infof logs a message at INFO level.
func Infof(format string, args ...any) { logf(INFO, format, args...) }

// Warnf logs a message at WARN level.
func Warnf(format string, args ...any) { logf(WARN, format, args...) }

// Errorf logs a message at ERROR level.
func Errorf(format string, args ...any) { logf(ERROR, format, args...) }
