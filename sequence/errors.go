// SPDX-License-Identifier: MIT

package sequence

import "errors"

var (
	// ErrNotFitted is returned when transform statistics are requested before a fitting Normalize.
	ErrNotFitted = errors.New("sequence: normalization statistics not fitted")

	// ErrInvalidWindow is returned for a window size < 1.
	ErrInvalidWindow = errors.New("sequence: window size must be >= 1")

	// ErrInvalidTargetOffset is returned for a target offset < 1.
	ErrInvalidTargetOffset = errors.New("sequence: target offset must be >= 1")

	// ErrEmptySeries is returned when fitting statistics on an empty series.
	ErrEmptySeries = errors.New("sequence: empty series")

	// ErrRaggedWindows is returned by AddFeatures when rows differ in width.
	ErrRaggedWindows = errors.New("sequence: windows have different widths")
)
