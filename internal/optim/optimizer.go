// Package optim implements parameter updates for the graph engine.
//
// Optimizers consume the gradient accumulators filled by Backward calls:
// a Step averages each accumulator over the number of accumulated passes,
// applies the update, and resets the accumulator so the next mini-batch
// starts clean.
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.03})
//	for _, ex := range batch {
//	    net.Forward(ex.Inputs)
//	    net.Backward(ex.Target, fns.SquaredError)
//	}
//	sgd.Step(net)
package optim

import "github.com/plexus-ml/plexus/internal/graph"

// Optimizer applies accumulated gradients to a network's weights and
// biases.
type Optimizer interface {
	// Step applies one update using the accumulated derivatives and
	// resets every touched accumulator. Nodes and links with zero
	// accumulated passes are left untouched, so calling Step without a
	// preceding Backward is a no-op.
	Step(net *graph.Network)
}
