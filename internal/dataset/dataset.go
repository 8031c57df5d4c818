// Package dataset generates the synthetic 2-D datasets used by the demo
// CLI and examples.
//
// Classification generators label points +1/-1; regression generators
// produce labels in [-1, 1]. All points live in the square
// [-Radius, Radius]^2. The noise parameter (typically in [0, 0.5])
// perturbs the point used for labeling, so higher noise yields more
// mislabeled-looking samples near the decision boundary.
package dataset

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Radius is the half-width of the data domain.
const Radius = 5.0

// Example is a single 2-D training sample.
type Example struct {
	X, Y  float64
	Label float64
}

// Generator produces n examples with the given noise level from rng.
type Generator func(n int, noise float64, rng *rand.Rand) []Example

var generators = map[string]Generator{
	"circle":    Circle,
	"xor":       XOR,
	"gauss":     TwoGauss,
	"spiral":    Spiral,
	"plane":     Plane,
	"reg-gauss": Gaussian,
}

// ByName returns the generator registered under name.
func ByName(name string) (Generator, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("dataset: unknown dataset %q", name)
	}
	return g, nil
}

// Shuffle permutes examples in place.
func Shuffle(examples []Example, rng *rand.Rand) {
	rng.Shuffle(len(examples), func(i, j int) {
		examples[i], examples[j] = examples[j], examples[i]
	})
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: rng}.Rand()
}

// Circle labels points inside radius/2 as +1 and points in the outer ring
// (0.7..1.0 of the radius) as -1. Half the samples land in each region.
func Circle(n int, noise float64, rng *rand.Rand) []Example {
	label := func(x, y float64) float64 {
		if math.Hypot(x, y) < Radius*0.5 {
			return 1
		}
		return -1
	}

	out := make([]Example, 0, n)
	ring := func(count int, rMin, rMax float64) {
		for i := 0; i < count; i++ {
			r := uniform(rng, rMin, rMax)
			angle := uniform(rng, 0, 2*math.Pi)
			x := r * math.Sin(angle)
			y := r * math.Cos(angle)
			noiseX := uniform(rng, -Radius, Radius) * noise
			noiseY := uniform(rng, -Radius, Radius) * noise
			out = append(out, Example{X: x, Y: y, Label: label(x+noiseX, y+noiseY)})
		}
	}
	ring(n/2, 0, Radius*0.5)
	ring(n-n/2, Radius*0.7, Radius)
	return out
}

// XOR labels the first and third quadrants +1 and the others -1, with a
// small padding pushing points away from the axes.
func XOR(n int, noise float64, rng *rand.Rand) []Example {
	const padding = 0.3
	pad := func(v float64) float64 {
		if v > 0 {
			return v + padding
		}
		return v - padding
	}

	out := make([]Example, 0, n)
	for i := 0; i < n; i++ {
		x := pad(uniform(rng, -Radius, Radius))
		y := pad(uniform(rng, -Radius, Radius))
		noiseX := uniform(rng, -Radius, Radius) * noise
		noiseY := uniform(rng, -Radius, Radius) * noise
		label := -1.0
		if (x+noiseX)*(y+noiseY) >= 0 {
			label = 1
		}
		out = append(out, Example{X: x, Y: y, Label: label})
	}
	return out
}

// TwoGauss draws half the samples from a gaussian centered at (2, 2)
// labeled +1 and half from (-2, -2) labeled -1. Noise widens the clusters:
// the variance scales linearly from 0.5 at noise 0 to 4 at noise 0.5.
func TwoGauss(n int, noise float64, rng *rand.Rand) []Example {
	variance := 0.5 + 7*noise
	norm := distuv.Normal{Mu: 0, Sigma: math.Sqrt(variance), Src: rng}

	out := make([]Example, 0, n)
	cluster := func(count int, cx, cy, label float64) {
		for i := 0; i < count; i++ {
			out = append(out, Example{
				X:     cx + norm.Rand(),
				Y:     cy + norm.Rand(),
				Label: label,
			})
		}
	}
	cluster(n/2, 2, 2, 1)
	cluster(n-n/2, -2, -2, -1)
	return out
}

// Spiral interleaves two archimedean spiral arms, one per label.
func Spiral(n int, noise float64, rng *rand.Rand) []Example {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	out := make([]Example, 0, n)
	arm := func(count int, delta, label float64) {
		for i := 0; i < count; i++ {
			r := float64(i) / float64(count) * Radius
			t := 1.75*float64(i)/float64(count)*2*math.Pi + delta
			out = append(out, Example{
				X:     r*math.Sin(t) + norm.Rand()*noise,
				Y:     r*math.Cos(t) + norm.Rand()*noise,
				Label: label,
			})
		}
	}
	arm(n/2, 0, 1)
	arm(n-n/2, math.Pi, -1)
	return out
}

// Plane is a regression dataset whose label is the plane (x+y)/(2*Radius),
// scaled into [-1, 1].
func Plane(n int, noise float64, rng *rand.Rand) []Example {
	out := make([]Example, 0, n)
	for i := 0; i < n; i++ {
		x := uniform(rng, -Radius, Radius)
		y := uniform(rng, -Radius, Radius)
		noiseX := uniform(rng, -Radius, Radius) * noise
		noiseY := uniform(rng, -Radius, Radius) * noise
		out = append(out, Example{X: x, Y: y, Label: (x + noiseX + y + noiseY) / (2 * Radius)})
	}
	return out
}

// gaussCenters are the fixed bumps of the Gaussian regression surface.
var gaussCenters = []struct {
	x, y, sign float64
}{
	{-4, 2.5, 1},
	{0, 2.5, -1},
	{4, 2.5, 1},
	{-4, -2.5, -1},
	{0, -2.5, 1},
	{4, -2.5, -1},
}

// Gaussian is a regression dataset: each fixed center contributes its sign
// scaled by distance (full weight at the center, fading to zero at
// distance 2), and contributions sum into the label.
func Gaussian(n int, noise float64, rng *rand.Rand) []Example {
	label := func(x, y float64) float64 {
		var sum float64
		for _, c := range gaussCenters {
			d := math.Hypot(x-c.x, y-c.y)
			sum += c.sign * math.Max(0, 1-d/2)
		}
		return sum
	}

	out := make([]Example, 0, n)
	for i := 0; i < n; i++ {
		x := uniform(rng, -Radius, Radius)
		y := uniform(rng, -Radius, Radius)
		noiseX := uniform(rng, -Radius, Radius) * noise
		noiseY := uniform(rng, -Radius, Radius) * noise
		out = append(out, Example{X: x, Y: y, Label: label(x+noiseX, y+noiseY)})
	}
	return out
}
