// Copyright 2024 The TPKernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernelconfig loads the kernel's numeric policy from a YAML
// document -- epsilon, the torus-edge bracket/refine parameters of spec
// section 4.5, and which scalar backend regression tests should exercise
// -- so strategy code and test harnesses share one tuning file. Only the
// epsilon is installed into the kernel (see Apply); the other fields are
// carried for callers to read. g3n-engine uses the same library (gopkg.in/
// yaml.v2) to declaratively load GUI panel trees; here it's put to the
// adjacent use of loading tuning data instead.
package kernelconfig

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/camforge/tpkernel/geom"
)

// Policy is the numeric policy every strategy and regression test should
// draw its tolerances and search parameters from, rather than hard-coding
// them at each call site.
type Policy struct {
	// Epsilon overrides geom.Epsilon when positive (see Apply).
	Epsilon float64 `yaml:"epsilon"`
	// EdgeSearchMinScale is the floor for the torus-edge bracket search's
	// sample count (spec section 4.5's "scale = max(3, ...)"). Apply does
	// not install it: package cutter's search uses its own compiled-in
	// floor of 3.
	EdgeSearchMinScale int `yaml:"edge_search_min_scale"`
	// EdgeSearchRefineSteps is the torus-edge refinement pass's substep
	// count (spec section 4.5's scale2, default 10). Apply does not install
	// it: package cutter's search uses its own compiled-in 10.
	EdgeSearchRefineSteps int `yaml:"edge_search_refine_steps"`
	// ScalarBackend selects which scalar regression tests should run
	// against: "float64" (default) or "exact" (package exact's
	// math/big.Rat-backed scalar).
	ScalarBackend string `yaml:"scalar_backend"`
}

// Default returns the policy the kernel uses when no configuration file is
// loaded: geom's compiled-in epsilon, spec section 4.5's defaults, and the
// float64 backend.
func Default() Policy {
	return Policy{
		Epsilon:               geom.Epsilon,
		EdgeSearchMinScale:    3,
		EdgeSearchRefineSteps: 10,
		ScalarBackend:         "float64",
	}
}

// Load reads and parses a Policy from the YAML document at path, filling
// in Default() for any field left zero.
func Load(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, err
	}
	return Parse(data)
}

// Parse parses a Policy from a YAML document, filling in Default() for any
// field left zero.
func Parse(data []byte) (Policy, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, err
	}
	if p.EdgeSearchMinScale == 0 {
		p.EdgeSearchMinScale = 3
	}
	if p.EdgeSearchRefineSteps == 0 {
		p.EdgeSearchRefineSteps = 10
	}
	if p.ScalarBackend == "" {
		p.ScalarBackend = "float64"
	}
	return p, nil
}

// Apply installs p.Epsilon as the package-wide geom.Epsilon, if positive.
// Strategy code and test harnesses call this once at startup; it is not
// safe to call concurrently with intersect calls already in flight, since
// geom.Epsilon is read without synchronization on the hot path.
func Apply(p Policy) {
	if p.Epsilon > 0 {
		geom.Epsilon = p.Epsilon
	}
}
