// Copyright 2025 Plexus ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim re-exports the optimizers that consume the graph engine's
// gradient accumulators.
package optim

import (
	"github.com/plexus-ml/plexus/internal/optim"
)

// Optimizer applies accumulated gradients to a network.
type Optimizer = optim.Optimizer

// SGD is mini-batch gradient descent with an optional weight penalty.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{
//	    LR:                 0.03,
//	    RegularizationRate: 0.001,
//	})
//	sgd.Step(net)
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}
