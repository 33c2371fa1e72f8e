// SPDX-License-Identifier: MIT

package sequence

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FeatureCount is the number of engineered columns AddFeatures appends.
const FeatureCount = 5

// AddFeatures appends, to a copy of every window, in this order: mean,
// population standard deviation, maximum, minimum and the least-squares slope
// of the window against its positions 0..w-1. Output rows have width w+5.
// A window of one value has slope 0.
func AddFeatures(windows [][]float64) ([][]float64, error) {
	out := make([][]float64, len(windows))
	if len(windows) == 0 {
		return out, nil
	}

	w := len(windows[0])
	if w == 0 {
		return nil, fmt.Errorf("AddFeatures: %w", ErrInvalidWindow)
	}
	idx := make([]float64, w)
	for i := range idx {
		idx[i] = float64(i)
	}

	for r, row := range windows {
		if len(row) != w {
			return nil, fmt.Errorf("AddFeatures: row %d has %d values, want %d: %w", r, len(row), w, ErrRaggedWindows)
		}
		mean, std := stat.PopMeanStdDev(row, nil)
		slope := 0.0
		if w > 1 {
			_, slope = stat.LinearRegression(idx, row, nil, false)
		}

		ext := make([]float64, w, w+FeatureCount)
		copy(ext, row)
		out[r] = append(ext, mean, std, floats.Max(row), floats.Min(row), slope)
	}

	return out, nil
}
