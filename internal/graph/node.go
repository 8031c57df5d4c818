// Package graph implements the scalar computation-graph engine: a layered
// network of scalar nodes connected by weighted links, with forward
// evaluation and reverse-mode gradient propagation.
//
// The engine operates on one input vector per call. Gradients accumulate
// across Backward calls and are consumed (averaged and applied) by an
// optimizer step, which also resets the accumulators. The required call
// ordering is:
//
//	out, err := net.Forward(inputs)
//	net.Backward(target, cost)   // repeat per example in the mini-batch
//	sgd.Step(net)                // once per mini-batch
//
// Backward reads the TotalInput/Output values written by Forward, and an
// optimizer step reads the accumulators written by Backward; the phases
// must never overlap on the same Network. A Network has a single logical
// owner and is not safe for concurrent use.
package graph

import "github.com/plexus-ml/plexus/internal/fns"

// Node is a single scalar computation unit: a bias, an activation function
// and the links connecting it to the adjacent layers.
//
// TotalInput and Output are valid only after a forward pass. OutputDer and
// InputDer are per-pass quantities rewritten by every Backward call;
// AccInputDer and NumAccumulatedDers carry the running gradient sum across
// Backward calls until an optimizer step consumes them.
type Node struct {
	// ID is a stable identifier, unique within the network. Input-layer
	// IDs come from the caller; all other nodes are numbered sequentially
	// by the builder.
	ID string

	// Bias of the node. Updated only by an optimizer step.
	Bias float64

	// Activation applied to TotalInput. Never applied on input-layer
	// nodes, whose Output is set directly from the input vector.
	Activation fns.Activation

	// InputLinks are the links feeding this node, in source-layer order.
	// OutputLinks are the links this node feeds, in destination-layer
	// order. Both are non-owning graph references.
	InputLinks  []*Link
	OutputLinks []*Link

	// TotalInput is bias + sum(weight * source output) over InputLinks.
	TotalInput float64

	// Output is Activation(TotalInput), or the raw input value on the
	// input layer.
	Output float64

	// OutputDer is dError/dOutput for the most recent backward pass.
	OutputDer float64

	// InputDer is dError/dTotalInput for the most recent backward pass.
	// It equals the error derivative with respect to the bias.
	InputDer float64

	// AccInputDer is the sum of InputDer across accumulated passes.
	AccInputDer float64

	// NumAccumulatedDers counts the backward passes accumulated since the
	// last optimizer step.
	NumAccumulatedDers int
}

// recomputeOutput refreshes TotalInput and Output from the incoming links.
// All source nodes must already hold their current Output.
func (n *Node) recomputeOutput() float64 {
	total := n.Bias
	for _, l := range n.InputLinks {
		total += l.Weight * l.Source.Output
	}
	n.TotalInput = total
	n.Output = n.Activation.Output(total)
	return n.Output
}
