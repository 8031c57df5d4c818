// Copyright 2025 Plexus ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset re-exports the synthetic 2-D dataset generators used by
// the demo CLI and examples.
package dataset

import (
	"golang.org/x/exp/rand"

	"github.com/plexus-ml/plexus/internal/dataset"
)

// Radius is the half-width of the data domain.
const Radius = dataset.Radius

// Example is a single 2-D training sample.
type Example = dataset.Example

// Generator produces n examples with the given noise level.
type Generator = dataset.Generator

// Classification generators (Label is +1 or -1).
var (
	Circle   Generator = dataset.Circle
	XOR      Generator = dataset.XOR
	TwoGauss Generator = dataset.TwoGauss
	Spiral   Generator = dataset.Spiral
)

// Regression generators (Label is in [-1, 1]).
var (
	Plane    Generator = dataset.Plane
	Gaussian Generator = dataset.Gaussian
)

// ByName returns the generator registered under name.
func ByName(name string) (Generator, error) {
	return dataset.ByName(name)
}

// Shuffle permutes examples in place.
func Shuffle(examples []Example, rng *rand.Rand) {
	dataset.Shuffle(examples, rng)
}
