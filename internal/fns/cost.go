package fns

import "math"

// Cost is a scalar cost (loss) function together with its derivative with
// respect to the predicted output.
type Cost interface {
	// Cost computes the loss for a single prediction.
	Cost(output, target float64) float64

	// Der computes d(cost)/d(output).
	Der(output, target float64) float64

	// String returns the registry name of the cost function.
	String() string
}

// Built-in cost functions.
var (
	// SquaredError is the half squared error: 0.5 * (output - target)^2.
	SquaredError Cost = squaredError{}

	// CrossEntropy is -target * log(output) with explicit saturation guards
	// at output == 0, so training keeps progressing instead of producing
	// NaN or Inf.
	CrossEntropy Cost = crossEntropy{}
)

type squaredError struct{}

func (squaredError) Cost(output, target float64) float64 {
	d := output - target
	return 0.5 * d * d
}

func (squaredError) Der(output, target float64) float64 { return output - target }
func (squaredError) String() string                     { return "squared" }

type crossEntropy struct{}

// Cost saturates at output == 0: log(0) is replaced by the fixed penalty
// 9 * target. A zero target contributes no cost regardless of the output.
func (crossEntropy) Cost(output, target float64) float64 {
	switch {
	case target == 0:
		return 0
	case output == 0:
		return 9 * target
	default:
		return -target * math.Log(output)
	}
}

// Der saturates at output == 0: the -target/output pole is replaced by
// -1e9 * target.
func (crossEntropy) Der(output, target float64) float64 {
	if output == 0 {
		return -1e9 * target
	}
	return -target / output
}

func (crossEntropy) String() string { return "cross-entropy" }
