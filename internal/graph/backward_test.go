package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plexus-ml/plexus/internal/fns"
)

func TestBackwardChain(t *testing.T) {
	net := chainNetwork(t)
	_, err := net.Forward([]float64{3, 0})
	require.NoError(t, err)

	net.Backward(5, fns.SquaredError)

	output := net.OutputNode()
	assert.Equal(t, -2.0, output.OutputDer) // 3 - 5
	assert.Equal(t, -2.0, output.InputDer)  // linear activation
	assert.Equal(t, -6.0, output.InputLinks[0].ErrorDer, "hidden0 -> output")
	assert.Equal(t, 0.0, output.InputLinks[1].ErrorDer, "hidden1 -> output")

	// hidden0 receives its derivative through the unit weight.
	hidden0 := net.Layers[1][0]
	assert.Equal(t, -2.0, hidden0.OutputDer)
	assert.Equal(t, -2.0, hidden0.InputDer)
	assert.Equal(t, -6.0, hidden0.InputLinks[0].ErrorDer, "x0 -> hidden0")

	// hidden1 is cut off from the output (zero weight).
	hidden1 := net.Layers[1][1]
	assert.Equal(t, 0.0, hidden1.OutputDer)
	assert.Equal(t, 0.0, hidden1.InputDer)
}

func TestBackwardSkipsInputLayer(t *testing.T) {
	net := chainNetwork(t)
	_, err := net.Forward([]float64{3, 0})
	require.NoError(t, err)
	net.Backward(5, fns.SquaredError)

	for _, node := range net.Layers[0] {
		assert.Zero(t, node.NumAccumulatedDers, "input node %s", node.ID)
		assert.Zero(t, node.AccInputDer)
	}
}

func TestBackwardAccumulation(t *testing.T) {
	net := chainNetwork(t)
	_, err := net.Forward([]float64{3, 0})
	require.NoError(t, err)

	const k = 4
	for i := 0; i < k; i++ {
		net.Backward(5, fns.SquaredError)
	}

	hidden0 := net.Layers[1][0]
	assert.Equal(t, k, hidden0.NumAccumulatedDers)
	assert.Equal(t, float64(k)*hidden0.InputDer, hidden0.AccInputDer)

	link := hidden0.InputLinks[0]
	assert.Equal(t, k, link.NumAccumulatedDers)
	assert.Equal(t, float64(k)*link.ErrorDer, link.AccErrorDer)

	// OutputDer is a per-pass quantity, recomputed rather than
	// accumulated: k identical passes leave it where one pass did.
	assert.Equal(t, -2.0, hidden0.OutputDer)
}

func TestBackwardMixedTargetsAccumulate(t *testing.T) {
	net := chainNetwork(t)

	// Two passes with different targets: accumulators hold the sum of the
	// two per-pass derivatives.
	_, err := net.Forward([]float64{3, 0})
	require.NoError(t, err)
	net.Backward(5, fns.SquaredError) // outputDer -2
	firstErrorDer := net.OutputNode().InputLinks[0].ErrorDer

	_, err = net.Forward([]float64{1, 0})
	require.NoError(t, err)
	net.Backward(0, fns.SquaredError) // outputDer 1
	secondErrorDer := net.OutputNode().InputLinks[0].ErrorDer

	link := net.OutputNode().InputLinks[0]
	assert.Equal(t, -6.0, firstErrorDer)
	assert.Equal(t, 1.0, secondErrorDer)
	assert.Equal(t, firstErrorDer+secondErrorDer, link.AccErrorDer)
	assert.Equal(t, 2, link.NumAccumulatedDers)
}

// A hidden node feeding several consumers sums weight * consumer InputDer
// over its outgoing links.
func TestBackwardFanOut(t *testing.T) {
	net, err := New(Config{
		Shape:            []int{1, 1, 2, 1},
		HiddenActivation: fns.Linear,
		OutputActivation: fns.Linear,
		InputIDs:         []string{"x"},
		InitZero:         true,
	})
	require.NoError(t, err)

	hidden := net.Layers[1][0]
	hidden.InputLinks[0].Weight = 1
	mid0, mid1 := net.Layers[2][0], net.Layers[2][1]
	mid0.InputLinks[0].Weight = 2
	mid1.InputLinks[0].Weight = -3
	output := net.OutputNode()
	output.InputLinks[0].Weight = 1
	output.InputLinks[1].Weight = 1

	_, err = net.Forward([]float64{1})
	require.NoError(t, err)
	// output = 2*1 + (-3)*1 = -1; target 0 gives outputDer -1.
	net.Backward(0, fns.SquaredError)

	assert.Equal(t, -1.0, output.InputDer)
	assert.Equal(t, -1.0, mid0.OutputDer)
	assert.Equal(t, -1.0, mid1.OutputDer)
	// hidden collects 2*(-1) + (-3)*(-1) = 1.
	assert.Equal(t, 1.0, hidden.OutputDer)
	assert.Equal(t, 1.0, hidden.InputDer)
}
