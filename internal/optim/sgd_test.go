package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/plexus-ml/plexus/internal/fns"
	"github.com/plexus-ml/plexus/internal/graph"
)

// zeroRegularizer has a derivative of 0 everywhere; updates through it
// must match updates with no regularizer at all.
type zeroRegularizer struct{}

func (zeroRegularizer) Output(float64) float64 { return 0 }
func (zeroRegularizer) Der(float64) float64    { return 0 }
func (zeroRegularizer) String() string         { return "zero" }

func newSmallNet(t *testing.T, reg fns.Regularizer) *graph.Network {
	t.Helper()
	net, err := graph.New(graph.Config{
		Shape:            []int{1, 1},
		HiddenActivation: fns.Linear,
		OutputActivation: fns.Linear,
		Regularizer:      reg,
		InputIDs:         []string{"x"},
		InitZero:         true,
	})
	require.NoError(t, err)
	return net
}

func TestNewSGDDefaults(t *testing.T) {
	assert.Equal(t, 0.01, NewSGD(SGDConfig{}).LR())
	assert.Equal(t, 0.5, NewSGD(SGDConfig{LR: 0.5}).LR())
}

func TestStepAveragesAccumulatedDerivatives(t *testing.T) {
	net := newSmallNet(t, nil)
	output := net.OutputNode()
	link := output.InputLinks[0]

	output.Bias = 1
	output.AccInputDer = 3
	output.NumAccumulatedDers = 3
	link.Weight = 2
	link.AccErrorDer = 6
	link.NumAccumulatedDers = 3

	NewSGD(SGDConfig{LR: 0.1}).Step(net)

	assert.InDelta(t, 1-0.1*(3.0/3), output.Bias, 1e-12)
	assert.InDelta(t, 2-(0.1/3)*6, link.Weight, 1e-12)
}

func TestStepResetsAccumulators(t *testing.T) {
	net := newSmallNet(t, nil)
	_, err := net.Forward([]float64{1})
	require.NoError(t, err)
	net.Backward(1, fns.SquaredError)
	net.Backward(1, fns.SquaredError)

	NewSGD(SGDConfig{LR: 0.1}).Step(net)

	net.ForEachNode(true, func(n *graph.Node) {
		assert.Zero(t, n.AccInputDer)
		assert.Zero(t, n.NumAccumulatedDers)
		for _, link := range n.InputLinks {
			assert.Zero(t, link.AccErrorDer)
			assert.Zero(t, link.NumAccumulatedDers)
		}
	})
}

func TestStepSkipsUntouchedEntities(t *testing.T) {
	net := newSmallNet(t, nil)
	output := net.OutputNode()
	output.Bias = 0.3
	output.InputLinks[0].Weight = 0.7

	// No backward pass has run: Step must not divide by the zero count or
	// move any parameter.
	NewSGD(SGDConfig{LR: 0.1}).Step(net)

	assert.Equal(t, 0.3, output.Bias)
	assert.Equal(t, 0.7, output.InputLinks[0].Weight)
}

func TestStepAppliesRegularization(t *testing.T) {
	net := newSmallNet(t, fns.L2)
	link := net.OutputNode().InputLinks[0]
	link.Weight = 2
	link.AccErrorDer = 0
	link.NumAccumulatedDers = 1
	net.OutputNode().NumAccumulatedDers = 1

	NewSGD(SGDConfig{LR: 0.1, RegularizationRate: 0.5}).Step(net)

	// weight -= lr * regRate * w = 0.1 * 0.5 * 2
	assert.InDelta(t, 2-0.1*0.5*2, link.Weight, 1e-12)
}

func TestRegularizationOffEquivalence(t *testing.T) {
	run := func(reg fns.Regularizer) float64 {
		net := newSmallNet(t, reg)
		net.OutputNode().InputLinks[0].Weight = 1.5
		_, err := net.Forward([]float64{2})
		require.NoError(t, err)
		net.Backward(0, fns.SquaredError)
		NewSGD(SGDConfig{LR: 0.1, RegularizationRate: 0.5}).Step(net)
		return net.OutputNode().InputLinks[0].Weight
	}

	assert.Equal(t, run(nil), run(zeroRegularizer{}))
}

// End-to-end: the engine must learn the sign-product (XOR-like) task,
// which no linear model can fit.
func TestTrainingLearnsXOR(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	net, err := graph.New(graph.Config{
		Shape:            []int{2, 8, 1},
		HiddenActivation: fns.Tanh,
		OutputActivation: fns.Linear,
		InputIDs:         []string{"x", "y"},
		Rand:             rng,
	})
	require.NoError(t, err)

	examples := []struct{ x, y, label float64 }{
		{1, 1, 1},
		{-1, -1, 1},
		{1, -1, -1},
		{-1, 1, -1},
	}

	sgd := NewSGD(SGDConfig{LR: 0.1})
	meanLoss := func() float64 {
		var sum float64
		for _, ex := range examples {
			out, err := net.Forward([]float64{ex.x, ex.y})
			require.NoError(t, err)
			sum += fns.SquaredError.Cost(out, ex.label)
		}
		return sum / float64(len(examples))
	}

	initial := meanLoss()
	for i := 0; i < 5000; i++ {
		for _, ex := range examples {
			_, err := net.Forward([]float64{ex.x, ex.y})
			require.NoError(t, err)
			net.Backward(ex.label, fns.SquaredError)
		}
		sgd.Step(net)
	}

	final := meanLoss()
	assert.Less(t, final, initial)
	assert.Less(t, final, 0.05)
}
