// Copyright 2025 Plexus ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides the scalar computation-graph neural network
// engine.
//
// # Overview
//
// A Network is an explicit graph of scalar nodes: every node carries its
// own bias, activation and gradient accumulators, and every link carries
// its own weight and gradient accumulator. The engine is built for
// interactive visualization and education, where per-node and per-link
// state must stay inspectable, not for batched throughput.
//
// # Basic Usage
//
//	import (
//	    "github.com/plexus-ml/plexus/fns"
//	    "github.com/plexus-ml/plexus/graph"
//	    "github.com/plexus-ml/plexus/optim"
//	)
//
//	net, err := graph.New(graph.Config{
//	    Shape:            []int{2, 4, 2, 1},
//	    HiddenActivation: fns.Tanh,
//	    OutputActivation: fns.Linear,
//	    InputIDs:         []string{"x", "y"},
//	})
//
// # Training Step
//
// Forward, Backward and the optimizer Step are strictly sequential phases:
// Backward reads node state written by Forward, and Step consumes the
// accumulators written by Backward.
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.03})
//	for _, ex := range batch {
//	    out, _ := net.Forward([]float64{ex.X, ex.Y})
//	    net.Backward(ex.Label, fns.SquaredError)
//	}
//	sgd.Step(net)
//
// # Inspection
//
// Renderers and other read-only consumers walk the graph with ForEachNode:
//
//	net.ForEachNode(false, func(n *graph.Node) {
//	    draw(n.ID, n.Output, n.Bias)
//	})
//
// A Network is not safe for concurrent use; parallel training requires
// independent instances.
package graph
