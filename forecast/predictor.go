// SPDX-License-Identifier: MIT
// Package forecast provides a sliding-window feed-forward forecaster.
//
// LSTMPredictor keeps its historical name but is not recurrent: every step
// sees only the last WindowSize values. Multi-step forecasts feed each
// prediction back into the window, so long horizons drift by construction.
package forecast

import (
	"fmt"

	"github.com/katalvlaran/hydroml/matrix"
	"github.com/katalvlaran/hydroml/nn"
	"github.com/katalvlaran/hydroml/sequence"
	"github.com/sirupsen/logrus"
)

// LSTMPredictor fits one nn.Network on normalized windows of a series.
type LSTMPredictor struct {
	cfg  Config
	prep *sequence.Preprocessor
	net  *nn.Network
	log  *logrus.Logger
}

// NewLSTMPredictor validates cfg and returns an unfitted predictor.
func NewLSTMPredictor(cfg Config) (*LSTMPredictor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewLSTMPredictor: %w", err)
	}
	prep, err := sequence.NewPreprocessor(cfg.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("NewLSTMPredictor: %w", err)
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &LSTMPredictor{cfg: cfg, prep: prep, log: log}, nil
}

// Config returns the construction settings.
func (p *LSTMPredictor) Config() Config { return p.cfg }

// Network returns the trained network, or nil before Fit.
func (p *LSTMPredictor) Network() *nn.Network { return p.net }

// Fit normalizes series (fitting the statistics), builds windowed pairs,
// optionally appends the engineered features, and trains a fresh network
// [inputWidth, HiddenSize, HiddenSize/2, 1]. It returns the loss history.
//
// Errors:
//   - ErrSeriesTooShort when the series yields no window.
//   - nn training errors (batch size, validation split) wrapped as-is.
func (p *LSTMPredictor) Fit(series []float64, opts FitOptions) ([]float64, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("Fit: %w", ErrSeriesTooShort)
	}
	norm, err := p.prep.Normalize(series, true)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	x, y, err := p.pairs(norm, opts.UseFeatures)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	second := p.cfg.HiddenSize / 2
	if second < 1 {
		second = 1
	}
	net, err := nn.New([]int{x.Cols(), p.cfg.HiddenSize, second, 1},
		p.cfg.Activation, p.cfg.LearningRate, p.cfg.networkOptions()...)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	p.log.WithFields(logrus.Fields{
		"pairs":    x.Rows(),
		"inputs":   x.Cols(),
		"features": opts.UseFeatures,
		"epochs":   opts.Epochs,
	}).Debug("fitting forecaster")

	hist, err := net.Train(x, y, nn.TrainOptions{
		Epochs:          opts.Epochs,
		BatchSize:       p.cfg.BatchSize,
		ValidationSplit: opts.ValidationSplit,
		Verbose:         opts.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	p.net = net

	return hist, nil
}

// Predict forecasts steps values after recent (at least WindowSize values,
// in series units). Each prediction is appended to the running window and
// feeds the following step. useFeatures must match the Fit call; otherwise
// the network reports matrix.ErrDimensionMismatch.
func (p *LSTMPredictor) Predict(recent []float64, steps int, useFeatures bool) ([]float64, error) {
	if p.net == nil {
		return nil, fmt.Errorf("Predict: %w", ErrNotFitted)
	}
	if steps < 0 {
		return nil, fmt.Errorf("Predict(steps=%d): %w", steps, ErrInvalidSteps)
	}
	w := p.cfg.WindowSize
	if len(recent) < w {
		return nil, fmt.Errorf("Predict: %d recent values, window %d: %w", len(recent), w, ErrSeriesTooShort)
	}

	buf, err := p.prep.Normalize(recent, false)
	if err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}

	preds := make([]float64, 0, steps)
	var (
		row  [][]float64
		in   *matrix.Dense
		out  *matrix.Dense
		next float64
	)
	for s := 0; s < steps; s++ {
		window := append([]float64(nil), buf[len(buf)-w:]...)
		row = [][]float64{window}
		if useFeatures {
			if row, err = sequence.AddFeatures(row); err != nil {
				return nil, fmt.Errorf("Predict: %w", err)
			}
		}
		if in, err = matrix.NewDenseFrom(row); err != nil {
			return nil, fmt.Errorf("Predict: %w", err)
		}
		if out, err = p.net.Predict(in); err != nil {
			return nil, fmt.Errorf("Predict: %w", err)
		}
		if next, err = out.At(0, 0); err != nil {
			return nil, fmt.Errorf("Predict: %w", err)
		}
		buf = append(buf, next)
		preds = append(preds, next)
	}

	return p.prep.Denormalize(preds)
}

// Evaluate windows series with the fitted statistics, predicts one step ahead
// for every window and compares against the true targets in series units.
func (p *LSTMPredictor) Evaluate(series []float64, useFeatures bool) (Metrics, error) {
	if p.net == nil {
		return Metrics{}, fmt.Errorf("Evaluate: %w", ErrNotFitted)
	}
	norm, err := p.prep.Normalize(series, false)
	if err != nil {
		return Metrics{}, fmt.Errorf("Evaluate: %w", err)
	}
	x, y, err := p.pairs(norm, useFeatures)
	if err != nil {
		return Metrics{}, fmt.Errorf("Evaluate: %w", err)
	}
	out, err := p.net.Predict(x)
	if err != nil {
		return Metrics{}, fmt.Errorf("Evaluate: %w", err)
	}

	predNorm, err := out.Col(0)
	if err != nil {
		return Metrics{}, fmt.Errorf("Evaluate: %w", err)
	}
	trueNorm, err := y.Col(0)
	if err != nil {
		return Metrics{}, fmt.Errorf("Evaluate: %w", err)
	}
	pred, err := p.prep.Denormalize(predNorm)
	if err != nil {
		return Metrics{}, fmt.Errorf("Evaluate: %w", err)
	}
	truth, err := p.prep.Denormalize(trueNorm)
	if err != nil {
		return Metrics{}, fmt.Errorf("Evaluate: %w", err)
	}

	m, err := computeMetrics(truth, pred, p.cfg.WindowSize)
	if err != nil {
		return Metrics{}, fmt.Errorf("Evaluate: %w", err)
	}

	return m, nil
}

// pairs builds the (inputs, targets) matrices for a normalized series.
func (p *LSTMPredictor) pairs(norm []float64, useFeatures bool) (*matrix.Dense, *matrix.Dense, error) {
	windows, targets, err := p.prep.CreateSequences(norm, p.cfg.TargetOffset)
	if err != nil {
		return nil, nil, err
	}
	if len(windows) == 0 {
		return nil, nil, fmt.Errorf("%d values, window %d, offset %d: %w",
			len(norm), p.cfg.WindowSize, p.cfg.TargetOffset, ErrSeriesTooShort)
	}
	if useFeatures {
		if windows, err = sequence.AddFeatures(windows); err != nil {
			return nil, nil, err
		}
	}
	x, err := matrix.NewDenseFrom(windows)
	if err != nil {
		return nil, nil, err
	}
	y, err := matrix.NewColumn(targets)
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}
