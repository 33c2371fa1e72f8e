// SPDX-License-Identifier: MIT

package anomaly

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hydroml/matrix"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// stdFloor keeps z-scoring finite on constant features.
const stdFloor = 1e-8

// DistanceConfig configures an IsolationForestDetector.
type DistanceConfig struct {
	Contamination float64
	Logger        *logrus.Logger // nil ⇒ logrus standard logger
}

// DefaultDistanceConfig returns contamination 0.1.
func DefaultDistanceConfig() DistanceConfig {
	return DistanceConfig{Contamination: DefaultContamination}
}

// IsolationForestDetector is a parametric mean/covariance distance detector.
type IsolationForestDetector struct {
	contamination float64
	log           *logrus.Logger

	mean, std []float64
	cov, inv  *matrix.Dense // inv == nil ⇒ Euclidean fallback
	threshold float64
	fitted    bool
}

// NewIsolationForestDetector validates cfg and returns an unfitted detector.
func NewIsolationForestDetector(cfg DistanceConfig) (*IsolationForestDetector, error) {
	if !validContamination(cfg.Contamination) {
		return nil, fmt.Errorf("NewIsolationForestDetector(%g): %w", cfg.Contamination, ErrInvalidContamination)
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &IsolationForestDetector{contamination: cfg.Contamination, log: log}, nil
}

// Fit learns the feature means, floored population deviations and sample
// covariance of x, scores every training row and fixes the threshold.
// A singular covariance is not an error: the detector switches to Euclidean
// distance on z-scored rows and logs the switch at debug level.
func (d *IsolationForestDetector) Fit(x *matrix.Dense) error {
	if err := matrix.ValidateNotNil(x); err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	if x.Rows() < 2 {
		return fmt.Errorf("Fit: %d rows: %w", x.Rows(), ErrTooFewRows)
	}

	mean, std, err := matrix.ColumnStdDevs(x)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	for j, s := range std {
		std[j] = math.Max(s, stdFloor)
	}
	cov, _, err := matrix.Covariance(x)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	inv, err := matrix.Inverse(cov)
	switch {
	case errors.Is(err, matrix.ErrSingular):
		d.log.WithField("features", x.Cols()).Debug("covariance is singular, using euclidean distance on z-scores")
		inv = nil
	case err != nil:
		return fmt.Errorf("Fit: %w", err)
	}

	d.mean, d.std, d.cov, d.inv = mean, std, cov, inv
	d.fitted = true

	scores, err := d.DecisionFunction(x)
	if err != nil {
		d.fitted = false
		return fmt.Errorf("Fit: %w", err)
	}
	if d.threshold, err = thresholdFor(scores, d.contamination); err != nil {
		d.fitted = false
		return fmt.Errorf("Fit: %w", err)
	}

	return nil
}

// DecisionFunction returns one distance per row of x; larger is more anomalous.
//
// Errors:
//   - ErrNotFitted; matrix.ErrDimensionMismatch when x has a different feature count.
func (d *IsolationForestDetector) DecisionFunction(x matrix.Matrix) ([]float64, error) {
	if !d.fitted {
		return nil, fmt.Errorf("DecisionFunction: %w", ErrNotFitted)
	}
	centered, err := matrix.SubRowVector(x, d.mean)
	if err != nil {
		return nil, fmt.Errorf("DecisionFunction: %w", err)
	}

	if d.inv == nil {
		if centered, err = matrix.DivRowVector(centered, d.std); err != nil {
			return nil, fmt.Errorf("DecisionFunction: %w", err)
		}
	}

	rows := centered.ToRows()
	out := make([]float64, len(rows))
	var weighted []float64
	for i, row := range rows {
		if d.inv == nil {
			out[i] = floats.Norm(row, 2)
			continue
		}
		// (x-μ)ᵀ Σ⁻¹ (x-μ); rounding can push a near-zero form slightly negative.
		if weighted, err = matrix.MatVec(d.inv, row); err != nil {
			return nil, fmt.Errorf("DecisionFunction: %w", err)
		}
		out[i] = math.Sqrt(math.Max(floats.Dot(weighted, row), 0))
	}

	return out, nil
}

// Predict labels rows Normal (+1) when their distance is at or below the
// fitted threshold and Anomalous (-1) otherwise.
func (d *IsolationForestDetector) Predict(x matrix.Matrix) ([]int, error) {
	scores, err := d.DecisionFunction(x)
	if err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}

	return label(scores, d.threshold), nil
}

// Threshold returns the fitted distance threshold (0 before Fit).
func (d *IsolationForestDetector) Threshold() float64 { return d.threshold }

// Euclidean reports whether the fitted detector fell back to z-scored Euclidean distance.
func (d *IsolationForestDetector) Euclidean() bool { return d.fitted && d.inv == nil }

// Mean returns a copy of the fitted feature means.
func (d *IsolationForestDetector) Mean() []float64 { return append([]float64(nil), d.mean...) }

// StdDev returns a copy of the fitted (floored) feature deviations.
func (d *IsolationForestDetector) StdDev() []float64 { return append([]float64(nil), d.std...) }

// Covariance returns a copy of the fitted sample covariance, or nil before Fit.
func (d *IsolationForestDetector) Covariance() *matrix.Dense {
	if d.cov == nil {
		return nil
	}

	return d.cov.Clone().(*matrix.Dense)
}
