package fns

import "math"

// Regularizer is a weight penalty term together with its derivative.
//
// A nil Regularizer on a link means no penalty is applied to that weight.
type Regularizer interface {
	// Output computes the penalty for a weight value.
	Output(w float64) float64

	// Der computes d(penalty)/d(weight).
	Der(w float64) float64

	// String returns the registry name of the regularizer.
	String() string
}

// Built-in regularizers.
var (
	// L1 penalizes |w|. Its derivative is sign(w), with sign(0) = +1.
	L1 Regularizer = l1{}

	// L2 penalizes 0.5 * w^2. Its derivative is w.
	L2 Regularizer = l2{}
)

type l1 struct{}

func (l1) Output(w float64) float64 { return math.Abs(w) }

func (l1) Der(w float64) float64 {
	if w < 0 {
		return -1
	}
	return 1
}

func (l1) String() string { return "l1" }

type l2 struct{}

func (l2) Output(w float64) float64 { return 0.5 * w * w }
func (l2) Der(w float64) float64    { return w }
func (l2) String() string           { return "l2" }
