// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydroml/matrix"
)

// Blobs returns a rows×cols matrix of N(offset, amplitude²) features and a
// label per row (true = injected outlier).
//
// With WithOutliers(fraction, shift), round(fraction·rows) rows chosen by a
// seeded permutation are replaced by offset + amplitude·(±shift + N(0,1)) on
// every feature, the sign drawn per feature. Those rows sit far outside the
// bulk of the distribution, so detectors can be checked against the labels.
func Blobs(rows, cols int, opts ...Option) (*matrix.Dense, []bool, error) {
	if rows < 1 || cols < 1 {
		return nil, nil, fmt.Errorf("Blobs(%d,%d): %w", rows, cols, ErrInvalidLength)
	}
	cfg := newConfig(opts...)

	x, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, nil, fmt.Errorf("Blobs: %w", err)
	}
	labels := make([]bool, rows)
	for _, r := range cfg.rng.Perm(rows)[:int(math.Round(cfg.outlierFrac*float64(rows)))] {
		labels[r] = true
	}

	var shift float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			shift = 0
			if labels[i] {
				shift = cfg.outlierShift
				if cfg.rng.Intn(2) == 0 {
					shift = -shift
				}
			}
			if err = x.Set(i, j, cfg.offset+cfg.amplitude*(shift+cfg.rng.NormFloat64())); err != nil {
				return nil, nil, fmt.Errorf("Blobs: %w", err)
			}
		}
	}

	return x, labels, nil
}
