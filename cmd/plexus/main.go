// Package main provides the Plexus CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/exp/rand"

	"github.com/plexus-ml/plexus/dataset"
	"github.com/plexus-ml/plexus/fns"
	"github.com/plexus-ml/plexus/graph"
	"github.com/plexus-ml/plexus/internal/config"
	"github.com/plexus-ml/plexus/optim"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Plexus %s\n", version)
			return
		case "train":
			if len(os.Args) < 3 {
				log.Fatal("usage: plexus train <config.yaml>")
			}
			if err := train(os.Args[2]); err != nil {
				log.Fatal(err)
			}
			return
		}
	}

	fmt.Println("Plexus - Scalar Computation-Graph Neural Networks")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version              Show version")
	fmt.Println("  train <config.yaml>  Train a network from an experiment file")
}

// train runs the experiment described by the YAML file at path: build the
// network, generate the dataset and run mini-batch SGD, printing the mean
// training loss per epoch.
func train(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	hidden, err := fns.ActivationByName(cfg.Network.Activation)
	if err != nil {
		return err
	}
	output, err := fns.ActivationByName(cfg.Network.OutputActivation)
	if err != nil {
		return err
	}
	reg, err := fns.RegularizerByName(cfg.Network.Regularizer)
	if err != nil {
		return err
	}
	generate, err := dataset.ByName(cfg.Data.Dataset)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Training.Seed))
	examples := generate(cfg.Data.Samples, cfg.Data.Noise, rng)

	net, err := graph.New(graph.Config{
		Shape:            cfg.Network.Shape,
		HiddenActivation: hidden,
		OutputActivation: output,
		Regularizer:      reg,
		InputIDs:         []string{"x", "y"},
		InitZero:         cfg.Network.InitZero,
		Rand:             rng,
	})
	if err != nil {
		return err
	}

	sgd := optim.NewSGD(optim.SGDConfig{
		LR:                 cfg.Training.LearningRate,
		RegularizationRate: cfg.Training.RegularizationRate,
	})

	fmt.Printf("training %v on %s (%d samples, noise %g)\n",
		cfg.Network.Shape, cfg.Data.Dataset, len(examples), cfg.Data.Noise)

	for epoch := 1; epoch <= cfg.Training.Epochs; epoch++ {
		dataset.Shuffle(examples, rng)

		var lossSum float64
		for i, ex := range examples {
			out, err := net.Forward([]float64{ex.X, ex.Y})
			if err != nil {
				return err
			}
			lossSum += fns.SquaredError.Cost(out, ex.Label)
			net.Backward(ex.Label, fns.SquaredError)

			if (i+1)%cfg.Training.BatchSize == 0 {
				sgd.Step(net)
			}
		}
		// Flush the final partial batch; a Step with empty accumulators
		// is a no-op.
		sgd.Step(net)

		fmt.Printf("epoch %3d  loss %.5f\n", epoch, lossSum/float64(len(examples)))
	}
	return nil
}
