package graph

import "fmt"

// Forward evaluates the network on one input vector and returns the output
// of the single output node.
//
// Input-layer outputs are set directly from inputs with no activation
// applied; each subsequent layer is then recomputed in order, since a
// layer's totals depend on every previous layer's outputs.
//
// Returns an error, with no node state modified, if the input length does
// not match the input layer's size. Numeric ranges are not validated.
func (n *Network) Forward(inputs []float64) (float64, error) {
	inputLayer := n.Layers[0]
	if len(inputs) != len(inputLayer) {
		return 0, fmt.Errorf("graph: %d inputs for input layer of size %d",
			len(inputs), len(inputLayer))
	}

	for i, node := range inputLayer {
		node.Output = inputs[i]
	}
	for _, layer := range n.Layers[1:] {
		for _, node := range layer {
			node.recomputeOutput()
		}
	}
	return n.OutputNode().Output, nil
}
