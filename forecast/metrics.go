// SPDX-License-Identifier: MIT

package forecast

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydroml/matrix"
	"gonum.org/v1/gonum/stat"
)

// mapeEpsilon keeps the percentage error finite when a true value is zero.
const mapeEpsilon = 1e-8

// Metrics summarises one-step-ahead accuracy in the units of the series.
type Metrics struct {
	MSE  float64 `json:"mse"`
	RMSE float64 `json:"rmse"`
	MAE  float64 `json:"mae"`
	MAPE float64 `json:"mape"` // percent
	// DTW is the warp distance between the predicted and the true sequence.
	DTW float64 `json:"dtw"`
}

// String renders the metrics on one line.
func (m Metrics) String() string {
	return fmt.Sprintf("MSE=%.6g RMSE=%.6g MAE=%.6g MAPE=%.4g%% DTW=%.6g", m.MSE, m.RMSE, m.MAE, m.MAPE, m.DTW)
}

// computeMetrics compares predictions with truth.
// band limits the warp alignment (0 ⇒ unconstrained).
//
// Errors:
//   - ErrEmptySequence when truth is empty.
//   - matrix.ErrDimensionMismatch when the lengths differ.
func computeMetrics(truth, pred []float64, band int) (Metrics, error) {
	n := len(truth)
	if n == 0 {
		return Metrics{}, fmt.Errorf("computeMetrics: %w", ErrEmptySequence)
	}
	if len(pred) != n {
		return Metrics{}, fmt.Errorf("computeMetrics: %d predictions for %d values: %w", len(pred), n, matrix.ErrDimensionMismatch)
	}
	sq := make([]float64, n)
	abs := make([]float64, n)
	pct := make([]float64, n)
	var d float64
	for i := range truth {
		d = truth[i] - pred[i]
		sq[i] = d * d
		abs[i] = math.Abs(d)
		pct[i] = math.Abs(d) / (math.Abs(truth[i]) + mapeEpsilon)
	}
	mse := stat.Mean(sq, nil)
	warp, err := WarpDistance(truth, pred, band)
	if err != nil {
		return Metrics{}, fmt.Errorf("computeMetrics: %w", err)
	}

	return Metrics{
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		MAE:  stat.Mean(abs, nil),
		MAPE: stat.Mean(pct, nil) * 100,
		DTW:  warp,
	}, nil
}
