// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package randvar provides generators of values drawn from random (or not so
// random) distributions, used to produce insertion workloads.
package randvar

import (
	"math/rand/v2"
	"strings"

	"github.com/cockroachdb/errors"
)

// Static is a generator of values from a fixed distribution. Generators are
// not safe for concurrent use.
type Static interface {
	Uint64() uint64
}

// NewRand creates a new random number generator with the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(0, seed))
}

// New returns a generator for the named distribution over [1, max]. Known
// names are "uniform", "zipf" and "sequential".
func New(name string, rng *rand.Rand, max uint64) (Static, error) {
	switch strings.ToLower(name) {
	case "uniform":
		return NewUniform(rng, 1, max), nil
	case "zipf":
		return NewZipf(rng, 1, max, defaultTheta)
	case "sequential":
		return NewSequential(1), nil
	default:
		return nil, errors.Errorf("unknown distribution %q", name)
	}
}

// Uniform generates values drawn uniformly from [min, max].
type Uniform struct {
	rng      *rand.Rand
	min, max uint64
}

// NewUniform constructs a new Uniform generator.
func NewUniform(rng *rand.Rand, min, max uint64) *Uniform {
	return &Uniform{rng: rng, min: min, max: max}
}

// Uint64 implements Static.
func (g *Uniform) Uint64() uint64 {
	return g.rng.Uint64N(g.max-g.min+1) + g.min
}

// Sequential generates consecutive values. Inserting them into a search tree
// produces the worst-case (list-shaped) tree.
type Sequential struct {
	next uint64
}

// NewSequential constructs a new Sequential generator starting at start.
func NewSequential(start uint64) *Sequential {
	return &Sequential{next: start}
}

// Uint64 implements Static.
func (g *Sequential) Uint64() uint64 {
	v := g.next
	g.next++
	return v
}
