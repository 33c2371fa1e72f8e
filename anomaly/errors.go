// SPDX-License-Identifier: MIT

package anomaly

import "errors"

var (
	// ErrNotFitted is returned by scoring calls before Fit.
	ErrNotFitted = errors.New("anomaly: detector not fitted")

	// ErrInvalidContamination is returned for a contamination outside (0, 1).
	ErrInvalidContamination = errors.New("anomaly: contamination must be in (0, 1)")

	// ErrEncodingWidth is returned when the encoding width is outside [1, input width].
	ErrEncodingWidth = errors.New("anomaly: encoding width must be in [1, input width]")

	// ErrTooFewRows is returned when Fit receives fewer than two rows.
	ErrTooFewRows = errors.New("anomaly: at least two rows are required")

	// ErrInvalidPercentile is returned by Percentile for q outside [0, 100] or no values.
	ErrInvalidPercentile = errors.New("anomaly: percentile needs values and q in [0, 100]")

	// ErrInvalidConfig is returned for out-of-range detector settings.
	ErrInvalidConfig = errors.New("anomaly: invalid configuration")
)
