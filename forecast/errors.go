// SPDX-License-Identifier: MIT

package forecast

import "errors"

var (
	// ErrNotFitted is returned by Predict and Evaluate before Fit.
	ErrNotFitted = errors.New("forecast: predictor not fitted")

	// ErrSeriesTooShort is returned when a series yields no window, or when
	// Predict receives fewer recent values than the window size.
	ErrSeriesTooShort = errors.New("forecast: series too short for the window")

	// ErrInvalidConfig is returned by NewLSTMPredictor for out-of-range settings.
	ErrInvalidConfig = errors.New("forecast: invalid configuration")

	// ErrInvalidSteps is returned by Predict for a negative step count.
	ErrInvalidSteps = errors.New("forecast: steps must be >= 0")

	// ErrEmptySequence is returned by WarpDistance and metric computation
	// when an input sequence is empty.
	ErrEmptySequence = errors.New("forecast: empty sequence")
)
