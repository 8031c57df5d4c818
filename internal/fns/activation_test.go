package fns

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinear(t *testing.T) {
	for _, x := range []float64{-3, -0.5, 0, 0.5, 3} {
		assert.Equal(t, x, Linear.Output(x))
		assert.Equal(t, 1.0, Linear.Der(x))
	}
}

func TestSigmoid(t *testing.T) {
	tests := []struct {
		x, output float64
	}{
		{0, 0.5},
		{2, 1 / (1 + math.Exp(-2))},
		{-2, 1 / (1 + math.Exp(2))},
	}
	for _, tt := range tests {
		out := Sigmoid.Output(tt.x)
		assert.InDelta(t, tt.output, out, 1e-12, "sigmoid(%g)", tt.x)
		// Derivative identity: s * (1 - s).
		assert.InDelta(t, out*(1-out), Sigmoid.Der(tt.x), 1e-12)
	}
}

func TestTanh(t *testing.T) {
	for _, x := range []float64{-2, -0.3, 0, 0.3, 2} {
		out := Tanh.Output(x)
		assert.InDelta(t, math.Tanh(x), out, 1e-12)
		assert.InDelta(t, 1-out*out, Tanh.Der(x), 1e-12)
	}
}

func TestReLU(t *testing.T) {
	tests := []struct {
		x, output, der float64
	}{
		{-2, 0, 0},
		{0, 0, 0}, // derivative is 0 at x == 0
		{0.5, 0.5, 1},
		{3, 3, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.output, ReLU.Output(tt.x), "relu(%g)", tt.x)
		assert.Equal(t, tt.der, ReLU.Der(tt.x), "relu'(%g)", tt.x)
	}
}

// Every activation derivative should match a centered finite difference of
// its own output, away from kinks.
func TestActivationDerivativesMatchFiniteDifference(t *testing.T) {
	const eps = 1e-6
	for _, act := range []Activation{Linear, Sigmoid, Tanh, ReLU} {
		for _, x := range []float64{-1.7, -0.4, 0.9, 2.3} {
			numeric := (act.Output(x+eps) - act.Output(x-eps)) / (2 * eps)
			assert.InDelta(t, numeric, act.Der(x), 1e-6, "%s'(%g)", act, x)
		}
	}
}
