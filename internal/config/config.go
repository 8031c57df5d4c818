// Package config loads and validates the YAML experiment configuration
// consumed by the plexus CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plexus-ml/plexus/internal/dataset"
	"github.com/plexus-ml/plexus/internal/fns"
)

// Config is a full training experiment: network shape, hyperparameters
// and dataset.
type Config struct {
	Network  NetworkConfig  `yaml:"network"`
	Training TrainingConfig `yaml:"training"`
	Data     DataConfig     `yaml:"data"`
}

// NetworkConfig describes the network to build.
type NetworkConfig struct {
	Shape            []int  `yaml:"shape"`
	Activation       string `yaml:"activation"`
	OutputActivation string `yaml:"output_activation"`
	Regularizer      string `yaml:"regularizer"`
	InitZero         bool   `yaml:"init_zero"`
}

// TrainingConfig holds the hyperparameters of the training loop.
type TrainingConfig struct {
	LearningRate       float64 `yaml:"learning_rate"`
	RegularizationRate float64 `yaml:"regularization_rate"`
	BatchSize          int     `yaml:"batch_size"`
	Epochs             int     `yaml:"epochs"`
	Seed               uint64  `yaml:"seed"`
}

// DataConfig selects and sizes the synthetic dataset.
type DataConfig struct {
	Dataset string  `yaml:"dataset"`
	Samples int     `yaml:"samples"`
	Noise   float64 `yaml:"noise"`
}

// Default returns a config with the standard playground settings: a
// [2,4,2,1] tanh network with a linear output head trained on the circle
// dataset.
func Default() *Config {
	return &Config{
		Network: NetworkConfig{
			Shape:            []int{2, 4, 2, 1},
			Activation:       fns.Tanh.String(),
			OutputActivation: fns.Linear.String(),
			Regularizer:      "none",
		},
		Training: TrainingConfig{
			LearningRate: 0.03,
			BatchSize:    10,
			Epochs:       50,
			Seed:         1,
		},
		Data: DataConfig{
			Dataset: "circle",
			Samples: 200,
			Noise:   0.1,
		},
	}
}

// Load reads a YAML experiment file. Fields absent from the file keep
// their Default values; the result is validated before being returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field, including the registry names, and returns
// the first problem found.
func (c *Config) Validate() error {
	if len(c.Network.Shape) < 2 {
		return fmt.Errorf("config: network.shape must have at least 2 layers, got %v", c.Network.Shape)
	}
	for i, size := range c.Network.Shape {
		if size <= 0 {
			return fmt.Errorf("config: network.shape[%d] must be > 0, got %d", i, size)
		}
	}
	if c.Network.Shape[0] != 2 {
		return fmt.Errorf("config: the 2-D datasets require an input layer of size 2, got %d", c.Network.Shape[0])
	}
	if c.Network.Shape[len(c.Network.Shape)-1] != 1 {
		return fmt.Errorf("config: the scalar driver requires an output layer of size 1, got %d",
			c.Network.Shape[len(c.Network.Shape)-1])
	}
	if _, err := fns.ActivationByName(c.Network.Activation); err != nil {
		return fmt.Errorf("config: network.activation: %w", err)
	}
	if _, err := fns.ActivationByName(c.Network.OutputActivation); err != nil {
		return fmt.Errorf("config: network.output_activation: %w", err)
	}
	if _, err := fns.RegularizerByName(c.Network.Regularizer); err != nil {
		return fmt.Errorf("config: network.regularizer: %w", err)
	}

	if c.Training.LearningRate <= 0 {
		return fmt.Errorf("config: training.learning_rate must be > 0, got %g", c.Training.LearningRate)
	}
	if c.Training.RegularizationRate < 0 {
		return fmt.Errorf("config: training.regularization_rate must be >= 0, got %g", c.Training.RegularizationRate)
	}
	if c.Training.BatchSize <= 0 {
		return fmt.Errorf("config: training.batch_size must be > 0, got %d", c.Training.BatchSize)
	}
	if c.Training.Epochs <= 0 {
		return fmt.Errorf("config: training.epochs must be > 0, got %d", c.Training.Epochs)
	}

	if _, err := dataset.ByName(c.Data.Dataset); err != nil {
		return fmt.Errorf("config: data.dataset: %w", err)
	}
	if c.Data.Samples <= 0 {
		return fmt.Errorf("config: data.samples must be > 0, got %d", c.Data.Samples)
	}
	if c.Data.Noise < 0 {
		return fmt.Errorf("config: data.noise must be >= 0, got %g", c.Data.Noise)
	}
	return nil
}
