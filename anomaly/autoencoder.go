// SPDX-License-Identifier: MIT

package anomaly

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hydroml/matrix"
	"github.com/katalvlaran/hydroml/nn"
	"github.com/sirupsen/logrus"
)

// Stream ids for DeriveRand: encoder and decoder draw independent weights.
const (
	encoderStream uint64 = 1
	decoderStream uint64 = 2
)

// AutoencoderConfig configures an AutoencoderDetector.
//
//   - EncodingDim: bottleneck width, in [1, input width].
//   - HiddenDims:  encoder hidden widths; the decoder mirrors them in reverse.
//   - Seed:        parent seed for both networks (0 ⇒ fixed default).
type AutoencoderConfig struct {
	EncodingDim   int
	HiddenDims    []int
	Activation    nn.Activation
	LearningRate  float64
	Contamination float64
	Seed          int64
	Logger        *logrus.Logger
	LogEvery      int
}

// DefaultAutoencoderConfig returns a 2-wide bottleneck behind 16/8 ReLU layers.
func DefaultAutoencoderConfig() AutoencoderConfig {
	return AutoencoderConfig{
		EncodingDim:   2,
		HiddenDims:    []int{16, 8},
		Activation:    nn.ReLU,
		LearningRate:  0.01,
		Contamination: DefaultContamination,
	}
}

// Validate checks the settings that do not depend on the data.
func (c AutoencoderConfig) Validate() error {
	switch {
	case c.EncodingDim < 1:
		return fmt.Errorf("encoding dim %d: %w", c.EncodingDim, ErrEncodingWidth)
	case !validContamination(c.Contamination):
		return fmt.Errorf("contamination %g: %w", c.Contamination, ErrInvalidContamination)
	case !(c.LearningRate > 0):
		return fmt.Errorf("learning rate %g: %w", c.LearningRate, ErrInvalidConfig)
	case !c.Activation.Valid():
		return fmt.Errorf("activation %v: %w", c.Activation, ErrInvalidConfig)
	case c.LogEvery < 0:
		return fmt.Errorf("log interval %d: %w", c.LogEvery, ErrInvalidConfig)
	}
	for _, h := range c.HiddenDims {
		if h < 1 {
			return fmt.Errorf("hidden width %d: %w", h, ErrInvalidConfig)
		}
	}

	return nil
}

// AutoencoderFitOptions controls one Fit call. Each training stage runs
// max(1, Epochs/2) epochs, so Epochs of 0 or 1 still trains one epoch per
// stage (two in total) and an odd budget drops its last epoch.
type AutoencoderFitOptions struct {
	Epochs    int
	BatchSize int
	Verbose   bool
}

// DefaultAutoencoderFitOptions returns 100 epochs in 32-row batches.
func DefaultAutoencoderFitOptions() AutoencoderFitOptions {
	return AutoencoderFitOptions{Epochs: nn.DefaultEpochs, BatchSize: nn.DefaultBatchSize}
}

// AutoencoderDetector scores rows by reconstruction error.
type AutoencoderDetector struct {
	cfg AutoencoderConfig
	log *logrus.Logger

	encoder, decoder *nn.Network
	threshold        float64
}

// NewAutoencoderDetector validates cfg and returns an unfitted detector.
func NewAutoencoderDetector(cfg AutoencoderConfig) (*AutoencoderDetector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewAutoencoderDetector: %w", err)
	}
	cfg.HiddenDims = append([]int(nil), cfg.HiddenDims...)
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &AutoencoderDetector{cfg: cfg, log: log}, nil
}

// Fit trains the encoder and decoder in two disjoint stages and fixes the threshold.
// MAIN DESCRIPTION:
//   - Stage 1: the encoder [w, hidden..., k] is trained to output the leading k
//     columns of its own raw input (an identity-style pretraining target).
//   - Stage 2: the frozen encoder encodes x once; the decoder
//     [k, reversed hidden..., w] is trained to map those encodings back to x.
//   - The threshold is the (1-contamination)·100-th percentile of the training
//     reconstruction errors.
//
// The stages never share a loss; the encoder is not tuned for reconstruction.
//
// Errors:
//   - ErrTooFewRows, ErrEncodingWidth (k > w), nn training errors.
func (a *AutoencoderDetector) Fit(x *matrix.Dense, opts AutoencoderFitOptions) error {
	if err := matrix.ValidateNotNil(x); err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	if x.Rows() < 2 {
		return fmt.Errorf("Fit: %d rows: %w", x.Rows(), ErrTooFewRows)
	}
	width, k := x.Cols(), a.cfg.EncodingDim
	if k > width {
		return fmt.Errorf("Fit: encoding %d > input %d: %w", k, width, ErrEncodingWidth)
	}

	base := nn.NewRand(a.cfg.Seed)
	encSizes := append(append([]int{width}, a.cfg.HiddenDims...), k)
	decSizes := make([]int, 0, len(encSizes))
	for i := len(encSizes) - 1; i >= 0; i-- {
		decSizes = append(decSizes, encSizes[i])
	}

	encoder, err := nn.New(encSizes, a.cfg.Activation, a.cfg.LearningRate, a.networkOptions(base, encoderStream)...)
	if err != nil {
		return fmt.Errorf("Fit: encoder: %w", err)
	}
	decoder, err := nn.New(decSizes, a.cfg.Activation, a.cfg.LearningRate, a.networkOptions(base, decoderStream)...)
	if err != nil {
		return fmt.Errorf("Fit: decoder: %w", err)
	}

	stage := nn.TrainOptions{Epochs: opts.Epochs / 2, BatchSize: opts.BatchSize, Verbose: opts.Verbose}
	if stage.Epochs < 1 {
		stage.Epochs = 1
	}

	// Stage 1: encoder against the leading k raw columns.
	target, err := x.Induced(seq(x.Rows()), seq(k))
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	a.log.WithFields(logrus.Fields{"stage": "encoder", "sizes": encSizes, "epochs": stage.Epochs}).Debug("training autoencoder stage")
	if _, err = encoder.Train(x, target, stage); err != nil {
		return fmt.Errorf("Fit: encoder: %w", err)
	}

	// Stage 2: decoder from the frozen encodings back to x.
	codes, err := encoder.Predict(x)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	a.log.WithFields(logrus.Fields{"stage": "decoder", "sizes": decSizes, "epochs": stage.Epochs}).Debug("training autoencoder stage")
	if _, err = decoder.Train(codes, x, stage); err != nil {
		return fmt.Errorf("Fit: decoder: %w", err)
	}

	a.encoder, a.decoder = encoder, decoder
	scores, err := a.DecisionFunction(x)
	if err != nil {
		a.encoder, a.decoder = nil, nil
		return fmt.Errorf("Fit: %w", err)
	}
	if a.threshold, err = thresholdFor(scores, a.cfg.Contamination); err != nil {
		a.encoder, a.decoder = nil, nil
		return fmt.Errorf("Fit: %w", err)
	}

	return nil
}

// networkOptions gives each network its own stream derived from base.
func (a *AutoencoderDetector) networkOptions(base *rand.Rand, stream uint64) []nn.Option {
	opts := []nn.Option{nn.WithRand(nn.DeriveRand(base, stream)), nn.WithLogger(a.log)}
	if a.cfg.LogEvery > 0 {
		opts = append(opts, nn.WithLogEvery(a.cfg.LogEvery))
	}

	return opts
}

// Encode runs the encoder only.
func (a *AutoencoderDetector) Encode(x matrix.Matrix) (*matrix.Dense, error) {
	if a.encoder == nil {
		return nil, fmt.Errorf("Encode: %w", ErrNotFitted)
	}
	codes, err := a.encoder.Predict(x)
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}

	return codes, nil
}

// Reconstruct runs the encoder then the decoder.
func (a *AutoencoderDetector) Reconstruct(x matrix.Matrix) (*matrix.Dense, error) {
	codes, err := a.Encode(x)
	if err != nil {
		return nil, fmt.Errorf("Reconstruct: %w", err)
	}
	out, err := a.decoder.Predict(codes)
	if err != nil {
		return nil, fmt.Errorf("Reconstruct: %w", err)
	}

	return out, nil
}

// DecisionFunction returns the per-row mean squared reconstruction error.
func (a *AutoencoderDetector) DecisionFunction(x matrix.Matrix) ([]float64, error) {
	recon, err := a.Reconstruct(x)
	if err != nil {
		return nil, fmt.Errorf("DecisionFunction: %w", err)
	}
	diff, err := matrix.Sub(recon, x)
	if err != nil {
		return nil, fmt.Errorf("DecisionFunction: %w", err)
	}
	sq, err := matrix.Hadamard(diff, diff)
	if err != nil {
		return nil, fmt.Errorf("DecisionFunction: %w", err)
	}
	scores, err := matrix.RowMeans(sq)
	if err != nil {
		return nil, fmt.Errorf("DecisionFunction: %w", err)
	}

	return scores, nil
}

// Predict labels rows Normal (+1) at or below the threshold, Anomalous (-1) above.
func (a *AutoencoderDetector) Predict(x matrix.Matrix) ([]int, error) {
	scores, err := a.DecisionFunction(x)
	if err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}

	return label(scores, a.threshold), nil
}

// Threshold returns the fitted reconstruction-error threshold (0 before Fit).
func (a *AutoencoderDetector) Threshold() float64 { return a.threshold }

// Encoder returns the trained encoder, or nil before Fit.
func (a *AutoencoderDetector) Encoder() *nn.Network { return a.encoder }

// Decoder returns the trained decoder, or nil before Fit.
func (a *AutoencoderDetector) Decoder() *nn.Network { return a.decoder }

// seq returns 0..n-1.
func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}
