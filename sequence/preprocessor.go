// SPDX-License-Identifier: MIT
// Package sequence turns a one-dimensional series into normalized,
// fixed-width (window, target) pairs for supervised training.
//
// Normalization state (mean, std) is set by exactly one fitting call and then
// reused for every transform and inverse transform; it is never recomputed
// implicitly.
package sequence

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// stdEpsilon is added to the fitted standard deviation so a constant series
// never divides by zero.
const stdEpsilon = 1e-8

// Preprocessor owns the window width and the fitted normalization statistics.
type Preprocessor struct {
	windowSize int
	mean, std  float64
	fitted     bool
}

// NewPreprocessor returns a Preprocessor producing windows of windowSize values.
func NewPreprocessor(windowSize int) (*Preprocessor, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("NewPreprocessor(%d): %w", windowSize, ErrInvalidWindow)
	}

	return &Preprocessor{windowSize: windowSize}, nil
}

// WindowSize returns the configured window width.
func (p *Preprocessor) WindowSize() int { return p.windowSize }

// Stats returns the fitted mean and standard deviation (std includes the epsilon).
func (p *Preprocessor) Stats() (mean, std float64, err error) {
	if !p.fitted {
		return 0, 0, ErrNotFitted
	}

	return p.mean, p.std, nil
}

// Normalize z-scores series. With fit=true it first stores the population mean
// and standard deviation (+1e-8) of series; with fit=false it reuses the stored
// statistics and fails with ErrNotFitted when none exist.
// The input slice is never modified.
func (p *Preprocessor) Normalize(series []float64, fit bool) ([]float64, error) {
	if fit {
		if len(series) == 0 {
			return nil, fmt.Errorf("Normalize: %w", ErrEmptySeries)
		}
		mean, std := stat.PopMeanStdDev(series, nil)
		if math.IsNaN(std) { // rounding on a near-constant series
			std = 0
		}
		p.mean, p.std, p.fitted = mean, std+stdEpsilon, true
	} else if !p.fitted {
		return nil, fmt.Errorf("Normalize: %w", ErrNotFitted)
	}

	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = (v - p.mean) / p.std
	}

	return out, nil
}

// Denormalize is the exact inverse of Normalize: value*std + mean.
func (p *Preprocessor) Denormalize(values []float64) ([]float64, error) {
	if !p.fitted {
		return nil, fmt.Errorf("Denormalize: %w", ErrNotFitted)
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v*p.std + p.mean
	}

	return out, nil
}

// CreateSequences slides the window across series and pairs each window with
// the value targetOffset steps after its last element:
//
//	inputs[i]  = series[i : i+w]
//	targets[i] = series[i+w+targetOffset-1]
//
// There are len(series)-w-targetOffset+1 pairs. A series too short for a single
// pair yields empty (non-nil) results, not an error.
func (p *Preprocessor) CreateSequences(series []float64, targetOffset int) ([][]float64, []float64, error) {
	if targetOffset < 1 {
		return nil, nil, fmt.Errorf("CreateSequences(offset=%d): %w", targetOffset, ErrInvalidTargetOffset)
	}

	w := p.windowSize
	count := len(series) - w - targetOffset + 1
	if count <= 0 {
		return [][]float64{}, []float64{}, nil
	}

	inputs := make([][]float64, count)
	targets := make([]float64, count)
	for i := 0; i < count; i++ {
		window := make([]float64, w)
		copy(window, series[i:i+w])
		inputs[i] = window
		targets[i] = series[i+w+targetOffset-1]
	}

	return inputs, targets, nil
}
