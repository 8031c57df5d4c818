// Copyright 2025 Plexus ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fns re-exports the scalar function tables: activations, cost
// functions and weight regularizers. Each table is an immutable
// value+derivative pair shared by reference across the whole network.
package fns

import (
	"github.com/plexus-ml/plexus/internal/fns"
)

// Activation is a scalar activation function with its derivative.
type Activation = fns.Activation

// Cost is a scalar cost function with its derivative.
type Cost = fns.Cost

// Regularizer is a weight penalty with its derivative.
type Regularizer = fns.Regularizer

// Activations
var (
	Linear  = fns.Linear
	Sigmoid = fns.Sigmoid
	Tanh    = fns.Tanh
	ReLU    = fns.ReLU
)

// Cost functions
var (
	SquaredError = fns.SquaredError
	CrossEntropy = fns.CrossEntropy
)

// Regularizers
var (
	L1 = fns.L1
	L2 = fns.L2
)

// ActivationByName returns the built-in activation registered under name.
func ActivationByName(name string) (Activation, error) {
	return fns.ActivationByName(name)
}

// CostByName returns the built-in cost function registered under name.
func CostByName(name string) (Cost, error) {
	return fns.CostByName(name)
}

// RegularizerByName returns the built-in regularizer registered under
// name; "none" or the empty string resolve to nil (no penalty).
func RegularizerByName(name string) (Regularizer, error) {
	return fns.RegularizerByName(name)
}
