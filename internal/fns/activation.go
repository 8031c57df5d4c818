// Package fns provides the scalar function tables the graph engine
// dispatches on: activation functions, cost functions, and weight
// regularizers.
//
// Every table is an immutable value+derivative pair, shared by reference
// across the whole network and never mutated. Implementations are exposed
// as package-level singletons:
//
//	node.Activation = fns.Tanh
//	loss := fns.SquaredError.Cost(output, target)
//
// Name lookups (ActivationByName, CostByName, RegularizerByName) exist for
// configuration files; code should use the singletons directly.
package fns

import "math"

// Activation is a scalar activation function together with its derivative.
//
// Der takes the pre-activation value (the node's total input), not the
// activated output.
type Activation interface {
	// Output computes the activation at x.
	Output(x float64) float64

	// Der computes the derivative of the activation at x.
	Der(x float64) float64

	// String returns the registry name of the activation.
	String() string
}

// Built-in activations.
var (
	// Linear is the identity activation: f(x) = x.
	Linear Activation = linear{}

	// Sigmoid is the logistic activation: f(x) = 1 / (1 + exp(-x)).
	Sigmoid Activation = sigmoid{}

	// Tanh is the hyperbolic tangent activation.
	Tanh Activation = tanhFn{}

	// ReLU is the rectified linear activation: f(x) = max(0, x).
	// Its derivative is 0 for x <= 0 and 1 otherwise.
	ReLU Activation = relu{}
)

type linear struct{}

func (linear) Output(x float64) float64 { return x }
func (linear) Der(float64) float64      { return 1 }
func (linear) String() string           { return "linear" }

type sigmoid struct{}

func (sigmoid) Output(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func (s sigmoid) Der(x float64) float64 {
	out := s.Output(x)
	return out * (1 - out)
}

func (sigmoid) String() string { return "sigmoid" }

type tanhFn struct{}

func (tanhFn) Output(x float64) float64 { return math.Tanh(x) }

func (tanhFn) Der(x float64) float64 {
	out := math.Tanh(x)
	return 1 - out*out
}

func (tanhFn) String() string { return "tanh" }

type relu struct{}

func (relu) Output(x float64) float64 { return math.Max(0, x) }

func (relu) Der(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 1
}

func (relu) String() string { return "relu" }
