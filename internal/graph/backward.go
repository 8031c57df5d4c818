package graph

import "github.com/plexus-ml/plexus/internal/fns"

// Backward computes error derivatives for every node and link with respect
// to cost(output, target), accumulates them into the running sums and
// increments each accumulation counter by 1.
//
// The network must hold the TotalInput/Output values of a prior Forward
// call. The sweep runs from the output layer down to the first hidden
// layer; input nodes have no bias or incoming weights to differentiate.
//
// For each layer the order is: InputDer for every node, then ErrorDer for
// every incoming link, then the previous layer's OutputDer. A node's
// OutputDer is recomputed from scratch on every pass (it is not an
// accumulator): the total derivative with respect to a node's output is
// the sum over its consumers of weight times that consumer's InputDer,
// which was just written in the current sweep step.
func (n *Network) Backward(target float64, cost fns.Cost) {
	output := n.OutputNode()
	output.OutputDer = cost.Der(output.Output, target)

	for layerIdx := len(n.Layers) - 1; layerIdx >= 1; layerIdx-- {
		layer := n.Layers[layerIdx]

		for _, node := range layer {
			node.InputDer = node.OutputDer * node.Activation.Der(node.TotalInput)
			node.AccInputDer += node.InputDer
			node.NumAccumulatedDers++
		}

		for _, node := range layer {
			for _, link := range node.InputLinks {
				link.ErrorDer = node.InputDer * link.Source.Output
				link.AccErrorDer += link.ErrorDer
				link.NumAccumulatedDers++
			}
		}

		if layerIdx == 1 {
			break
		}
		for _, node := range n.Layers[layerIdx-1] {
			node.OutputDer = 0
			for _, link := range node.OutputLinks {
				node.OutputDer += link.Weight * link.Dest.InputDer
			}
		}
	}
}
