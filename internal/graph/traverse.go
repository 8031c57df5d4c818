package graph

// ForEachNode visits every node in layer order, then intra-layer order,
// optionally skipping the input layer. Visitors are expected to be
// read-only; mutating node state mid-phase breaks the forward/backward
// ordering contract.
func (n *Network) ForEachNode(ignoreInputs bool, fn func(*Node)) {
	start := 0
	if ignoreInputs {
		start = 1
	}
	for _, layer := range n.Layers[start:] {
		for _, node := range layer {
			fn(node)
		}
	}
}

// OutputNode returns the single node of the last layer. The scalar
// Forward/Backward drivers assume exactly one output node; networks built
// with a wider last layer can still use the per-node bookkeeping directly.
func (n *Network) OutputNode() *Node {
	last := n.Layers[len(n.Layers)-1]
	return last[0]
}
