package optim

import "github.com/plexus-ml/plexus/internal/graph"

// SGD is plain mini-batch gradient descent over the graph's accumulated
// derivatives, with an optional regularization penalty per link.
//
// Update rules, with k the number of accumulated passes:
//
//	bias   -= lr * accInputDer / k
//	weight -= (lr / k) * (accErrorDer + regRate * regularizer.Der(weight))
//
// The regularization penalty uses the current weight value and is applied
// once per update, not averaged across the batch.
type SGD struct {
	lr      float64
	regRate float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR                 float64 // Learning rate (default: 0.01)
	RegularizationRate float64 // Scale of the per-link weight penalty
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR, regRate: config.RegularizationRate}
}

// Step applies one averaged gradient-descent update to every non-input
// node and its incoming links, then resets their accumulators.
func (s *SGD) Step(net *graph.Network) {
	net.ForEachNode(true, func(node *graph.Node) {
		if node.NumAccumulatedDers > 0 {
			node.Bias -= s.lr * node.AccInputDer / float64(node.NumAccumulatedDers)
			node.AccInputDer = 0
			node.NumAccumulatedDers = 0
		}
		for _, link := range node.InputLinks {
			if link.NumAccumulatedDers == 0 {
				continue
			}
			regulDer := 0.0
			if link.Regularizer != nil {
				regulDer = link.Regularizer.Der(link.Weight)
			}
			link.Weight -= (s.lr / float64(link.NumAccumulatedDers)) *
				(link.AccErrorDer + s.regRate*regulDer)
			link.AccErrorDer = 0
			link.NumAccumulatedDers = 0
		}
	})
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 { return s.lr }

// SetLR updates the learning rate. Useful for schedules driven by the
// training loop.
func (s *SGD) SetLR(lr float64) { s.lr = lr }
