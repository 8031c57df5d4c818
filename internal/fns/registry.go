package fns

import "fmt"

// Registries mapping configuration names to the built-in singletons.
// Lookups are case-sensitive and match the String() of each table.

var activations = map[string]Activation{
	Linear.String():  Linear,
	Sigmoid.String(): Sigmoid,
	Tanh.String():    Tanh,
	ReLU.String():    ReLU,
}

var costs = map[string]Cost{
	SquaredError.String(): SquaredError,
	CrossEntropy.String(): CrossEntropy,
}

var regularizers = map[string]Regularizer{
	L1.String(): L1,
	L2.String(): L2,
}

// ActivationByName returns the built-in activation registered under name.
func ActivationByName(name string) (Activation, error) {
	a, ok := activations[name]
	if !ok {
		return nil, fmt.Errorf("fns: unknown activation %q", name)
	}
	return a, nil
}

// CostByName returns the built-in cost function registered under name.
func CostByName(name string) (Cost, error) {
	c, ok := costs[name]
	if !ok {
		return nil, fmt.Errorf("fns: unknown cost function %q", name)
	}
	return c, nil
}

// RegularizerByName returns the built-in regularizer registered under name.
// The name "none" (or the empty string) resolves to a nil Regularizer,
// meaning no weight penalty.
func RegularizerByName(name string) (Regularizer, error) {
	if name == "" || name == "none" {
		return nil, nil
	}
	r, ok := regularizers[name]
	if !ok {
		return nil, fmt.Errorf("fns: unknown regularizer %q", name)
	}
	return r, nil
}
