// SPDX-License-Identifier: MIT
// Package nn: sentinel error set.
// Shape disagreements between a batch and a layer are not redeclared here:
// they surface as matrix.ErrDimensionMismatch from the kernels.

package nn

import "errors"

var (
	// ErrTooFewLayers is returned by New when fewer than two widths are given.
	ErrTooFewLayers = errors.New("nn: at least two layer widths are required")

	// ErrInvalidWidth is returned by New when a layer width is not positive.
	ErrInvalidWidth = errors.New("nn: layer widths must be > 0")

	// ErrInvalidLearningRate is returned by New for a non-positive or non-finite rate.
	ErrInvalidLearningRate = errors.New("nn: learning rate must be a positive finite number")

	// ErrUnknownActivation is returned for an activation outside the closed set.
	ErrUnknownActivation = errors.New("nn: unknown activation")

	// ErrInvalidEpochs is returned by Train for a negative epoch count.
	ErrInvalidEpochs = errors.New("nn: epochs must be >= 0")

	// ErrInvalidBatchSize is returned by Train for a batch size < 1.
	ErrInvalidBatchSize = errors.New("nn: batch size must be >= 1")

	// ErrInvalidValidationSplit is returned by Train for a split outside [0, 1).
	ErrInvalidValidationSplit = errors.New("nn: validation split must be in [0, 1)")

	// ErrNoTrainingRows is returned by Train when the validation hold-out leaves no rows.
	ErrNoTrainingRows = errors.New("nn: no rows left for training")

	// ErrGradientShape is returned by Update when gradients do not match the arena.
	ErrGradientShape = errors.New("nn: gradients do not match layers")
)
