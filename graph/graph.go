// Copyright 2025 Plexus ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/plexus-ml/plexus/internal/graph"
)

// Network is a layered scalar computation graph.
type Network = graph.Network

// Node is a single scalar computation unit.
type Node = graph.Node

// Link is a weighted directed edge between nodes in adjacent layers.
type Link = graph.Link

// Config describes the shape and initialization of a network.
type Config = graph.Config

// Initializer draws initial values for weights.
type Initializer = graph.Initializer

// New builds a fully-wired layered network from cfg.
//
// Example:
//
//	net, err := graph.New(graph.Config{
//	    Shape:            []int{2, 4, 1},
//	    HiddenActivation: fns.Tanh,
//	    OutputActivation: fns.Linear,
//	    InputIDs:         []string{"x", "y"},
//	})
func New(cfg Config) (*Network, error) {
	return graph.New(cfg)
}

// Initializers

// Uniform draws initial weights from U(min, max).
func Uniform(min, max float64) Initializer {
	return graph.Uniform(min, max)
}

// Normal draws initial weights from N(mu, sigma).
func Normal(mu, sigma float64) Initializer {
	return graph.Normal(mu, sigma)
}

// Zero initializes every weight to 0.
var Zero Initializer = graph.Zero
