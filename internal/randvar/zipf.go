// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package randvar

import (
	"math"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
)

// defaultTheta is the YCSB skew.
const defaultTheta = 0.99

// Zipf generates values from a Zipf distribution over [min, max], following
// "Quickly Generating Billion-Record Synthetic Databases" (Gray et al., SIGMOD
// 1994). Small values are the most frequent, so a tree built from a Zipf
// stream holds long runs of duplicates.
type Zipf struct {
	rng   *rand.Rand
	min   uint64
	max   uint64
	theta float64
	alpha float64
	zetaN float64
	eta   float64
}

// NewZipf constructs a new Zipf generator. theta must be non-negative and
// different from 1.
func NewZipf(rng *rand.Rand, min, max uint64, theta float64) (*Zipf, error) {
	if min > max {
		return nil, errors.Errorf("min %d > max %d", min, max)
	}
	if theta < 0.0 || theta == 1.0 {
		return nil, errors.Errorf("theta must be non-negative and != 1; got %f", theta)
	}
	z := &Zipf{
		rng:   rng,
		min:   min,
		max:   max,
		theta: theta,
		alpha: 1.0 / (1.0 - theta),
	}
	zeta2 := zeta(2, theta)
	z.zetaN = zeta(max+1-min, theta)
	z.eta = (1 - math.Pow(2.0/float64(max+1-min), 1.0-theta)) / (1.0 - zeta2/z.zetaN)
	return z, nil
}

// zeta computes (1/1)^theta + (1/2)^theta + ... + (1/n)^theta.
func zeta(n uint64, theta float64) float64 {
	var sum float64
	for i := uint64(1); i <= n; i++ {
		sum += 1.0 / math.Pow(float64(i), theta)
	}
	return sum
}

// Uint64 implements Static.
func (z *Zipf) Uint64() uint64 {
	u := z.rng.Float64()
	uz := u * z.zetaN
	switch {
	case uz < 1.0:
		return z.min
	case uz < 1.0+math.Pow(0.5, z.theta):
		return z.min + 1
	default:
		spread := float64(z.max + 1 - z.min)
		return z.min + uint64(int64(spread*math.Pow(z.eta*u-z.eta+1.0, z.alpha)))
	}
}
