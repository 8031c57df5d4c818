package graph

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/exp/rand"

	"github.com/plexus-ml/plexus/internal/fns"
)

// defaultBias is the starting bias for every node unless zero
// initialization is requested.
const defaultBias = 0.1

// Network is an ordered sequence of layers, each an ordered sequence of
// nodes. Layer 0 is the input layer; its nodes have no incoming links and
// their outputs are set directly by Forward. The Network owns every node;
// links are shared, non-owning cross-references between adjacent layers.
type Network struct {
	Layers [][]*Node
}

// Config describes the shape and initialization of a network.
type Config struct {
	// Shape lists the node count of each layer, input layer first.
	// Must have at least one layer of positive size.
	Shape []int

	// HiddenActivation is assigned to every non-output node.
	// OutputActivation is assigned to the nodes of the last layer and may
	// differ from the hidden activation.
	HiddenActivation fns.Activation
	OutputActivation fns.Activation

	// Regularizer is attached to every link. Nil means no weight penalty
	// anywhere.
	Regularizer fns.Regularizer

	// InputIDs names the input-layer nodes, in order. Its length must
	// equal Shape[0].
	InputIDs []string

	// InitZero initializes all weights and biases to 0 instead of their
	// random and defaultBias values.
	InitZero bool

	// Rand is the source used for weight initialization. Nil selects a
	// time-seeded source.
	Rand *rand.Rand

	// WeightInit draws initial link weights. Nil selects U(-0.5, 0.5).
	// Ignored when InitZero is set.
	WeightInit Initializer
}

// New builds a fully-wired layered network: every node in layer i is
// linked to every node in layer i+1, links created in source-layer order.
// Non-input nodes are numbered by a single global counter starting at 1.
func New(cfg Config) (*Network, error) {
	if len(cfg.Shape) == 0 {
		return nil, fmt.Errorf("graph: shape must list at least one layer")
	}
	for i, size := range cfg.Shape {
		if size <= 0 {
			return nil, fmt.Errorf("graph: layer %d has non-positive size %d", i, size)
		}
	}
	if len(cfg.InputIDs) != cfg.Shape[0] {
		return nil, fmt.Errorf("graph: %d input ids for input layer of size %d",
			len(cfg.InputIDs), cfg.Shape[0])
	}
	if len(cfg.Shape) > 1 {
		if cfg.HiddenActivation == nil {
			return nil, fmt.Errorf("graph: hidden activation must not be nil")
		}
		if cfg.OutputActivation == nil {
			return nil, fmt.Errorf("graph: output activation must not be nil")
		}
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	weightInit := cfg.WeightInit
	if weightInit == nil {
		weightInit = Uniform(-0.5, 0.5)
	}
	if cfg.InitZero {
		weightInit = Zero
	}

	net := &Network{Layers: make([][]*Node, len(cfg.Shape))}
	nextID := 1
	for layerIdx, size := range cfg.Shape {
		isInput := layerIdx == 0
		isOutput := layerIdx == len(cfg.Shape)-1

		activation := cfg.HiddenActivation
		if isOutput {
			activation = cfg.OutputActivation
		}

		layer := make([]*Node, 0, size)
		for i := 0; i < size; i++ {
			var id string
			if isInput {
				id = cfg.InputIDs[i]
			} else {
				id = strconv.Itoa(nextID)
				nextID++
			}

			node := &Node{ID: id, Activation: activation, Bias: defaultBias}
			if cfg.InitZero {
				node.Bias = 0
			}

			if !isInput {
				for _, source := range net.Layers[layerIdx-1] {
					link := newLink(source, node, weightInit(rng), cfg.Regularizer)
					source.OutputLinks = append(source.OutputLinks, link)
					node.InputLinks = append(node.InputLinks, link)
				}
			}
			layer = append(layer, node)
		}
		net.Layers[layerIdx] = layer
	}
	return net, nil
}
