package graph

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Initializer draws a fresh value for a weight or bias from the given
// random source.
type Initializer func(rng *rand.Rand) float64

// Uniform returns an initializer drawing from U(min, max).
func Uniform(min, max float64) Initializer {
	return func(rng *rand.Rand) float64 {
		return distuv.Uniform{Min: min, Max: max, Src: rng}.Rand()
	}
}

// Normal returns an initializer drawing from N(mu, sigma).
func Normal(mu, sigma float64) Initializer {
	return func(rng *rand.Rand) float64 {
		return distuv.Normal{Mu: mu, Sigma: sigma, Src: rng}.Rand()
	}
}

// Zero initializes every value to 0.
func Zero(*rand.Rand) float64 { return 0 }
