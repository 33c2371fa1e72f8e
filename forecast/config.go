// SPDX-License-Identifier: MIT

package forecast

import (
	"fmt"

	"github.com/katalvlaran/hydroml/nn"
	"github.com/sirupsen/logrus"
)

// Config holds the construction-time settings of an LSTMPredictor.
//
//   - WindowSize:   values per model input.
//   - HiddenSize:   width of the first hidden layer; the second has HiddenSize/2 (at least 1).
//   - TargetOffset: steps past the window end the training target is taken from.
//   - Seed:         weight-init and shuffle seed (0 ⇒ fixed default).
//   - Logger:       nil ⇒ logrus standard logger.
//   - LogEvery:     epochs between verbose progress lines (0 ⇒ nn.DefaultLogEvery).
type Config struct {
	WindowSize   int
	HiddenSize   int
	LearningRate float64
	Activation   nn.Activation
	BatchSize    int
	TargetOffset int
	Seed         int64
	Logger       *logrus.Logger
	LogEvery     int
}

// DefaultConfig returns a 10-value window, 32/16 ReLU hidden layers,
// learning rate 0.01, 8-row batches and one-step-ahead targets.
func DefaultConfig() Config {
	return Config{
		WindowSize:   10,
		HiddenSize:   32,
		LearningRate: 0.01,
		Activation:   nn.ReLU,
		BatchSize:    8,
		TargetOffset: 1,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.WindowSize < 1:
		return fmt.Errorf("window size %d: %w", c.WindowSize, ErrInvalidConfig)
	case c.HiddenSize < 1:
		return fmt.Errorf("hidden size %d: %w", c.HiddenSize, ErrInvalidConfig)
	case !(c.LearningRate > 0):
		return fmt.Errorf("learning rate %g: %w", c.LearningRate, ErrInvalidConfig)
	case !c.Activation.Valid():
		return fmt.Errorf("activation %v: %w", c.Activation, ErrInvalidConfig)
	case c.BatchSize < 1:
		return fmt.Errorf("batch size %d: %w", c.BatchSize, ErrInvalidConfig)
	case c.TargetOffset < 1:
		return fmt.Errorf("target offset %d: %w", c.TargetOffset, ErrInvalidConfig)
	case c.LogEvery < 0:
		return fmt.Errorf("log interval %d: %w", c.LogEvery, ErrInvalidConfig)
	}

	return nil
}

// networkOptions translates the config into nn options.
func (c Config) networkOptions() []nn.Option {
	opts := []nn.Option{nn.WithSeed(c.Seed)}
	if c.Logger != nil {
		opts = append(opts, nn.WithLogger(c.Logger))
	}
	if c.LogEvery > 0 {
		opts = append(opts, nn.WithLogEvery(c.LogEvery))
	}

	return opts
}

// FitOptions controls one Fit call.
type FitOptions struct {
	Epochs          int
	ValidationSplit float64
	UseFeatures     bool
	Verbose         bool
}

// DefaultFitOptions returns 100 epochs, no hold-out, raw windows, quiet.
func DefaultFitOptions() FitOptions {
	return FitOptions{Epochs: nn.DefaultEpochs}
}
