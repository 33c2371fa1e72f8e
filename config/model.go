// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/hydroml/anomaly"
	"github.com/katalvlaran/hydroml/forecast"
	"github.com/katalvlaran/hydroml/nn"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Model is the YAML model document.
type Model struct {
	// Seed seeds every model built from the document (0 ⇒ fixed default).
	Seed        int64            `yaml:"seed"`
	Forecast    ForecastModel    `yaml:"forecast"`
	Distance    DistanceModel    `yaml:"distance"`
	Autoencoder AutoencoderModel `yaml:"autoencoder"`
}

// ForecastModel configures the windowed forecaster and its training run.
type ForecastModel struct {
	WindowSize      int     `yaml:"window_size"`
	HiddenSize      int     `yaml:"hidden_size"`
	LearningRate    float64 `yaml:"learning_rate"`
	Activation      string  `yaml:"activation"`
	BatchSize       int     `yaml:"batch_size"`
	TargetOffset    int     `yaml:"target_offset"`
	Epochs          int     `yaml:"epochs"`
	ValidationSplit float64 `yaml:"validation_split"`
	UseFeatures     bool    `yaml:"use_features"`
	LogEvery        int     `yaml:"log_every"`
}

// DistanceModel configures the mean/covariance distance detector.
type DistanceModel struct {
	Contamination float64 `yaml:"contamination"`
}

// AutoencoderModel configures the autoencoder detector and its training run.
type AutoencoderModel struct {
	EncodingDim   int     `yaml:"encoding_dim"`
	HiddenDims    []int   `yaml:"hidden_dims,flow"`
	Activation    string  `yaml:"activation"`
	LearningRate  float64 `yaml:"learning_rate"`
	Contamination float64 `yaml:"contamination"`
	Epochs        int     `yaml:"epochs"`
	BatchSize     int     `yaml:"batch_size"`
	LogEvery      int     `yaml:"log_every"`
}

// Default returns the document equivalent to the library defaults.
func Default() *Model {
	fc, fo := forecast.DefaultConfig(), forecast.DefaultFitOptions()
	ac, ao := anomaly.DefaultAutoencoderConfig(), anomaly.DefaultAutoencoderFitOptions()

	return &Model{
		Forecast: ForecastModel{
			WindowSize:   fc.WindowSize,
			HiddenSize:   fc.HiddenSize,
			LearningRate: fc.LearningRate,
			Activation:   fc.Activation.String(),
			BatchSize:    fc.BatchSize,
			TargetOffset: fc.TargetOffset,
			Epochs:       fo.Epochs,
		},
		Distance: DistanceModel{Contamination: anomaly.DefaultContamination},
		Autoencoder: AutoencoderModel{
			EncodingDim:   ac.EncodingDim,
			HiddenDims:    ac.HiddenDims,
			Activation:    ac.Activation.String(),
			LearningRate:  ac.LearningRate,
			Contamination: ac.Contamination,
			Epochs:        ao.Epochs,
			BatchSize:     ao.BatchSize,
		},
	}
}

// Load reads and parses the document at path.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	m, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return m, nil
}

// Parse decodes raw over Default() and validates the result.
// An empty document yields the defaults.
func Parse(raw []byte) (*Model, error) {
	m := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Parse: %w: %w", ErrInvalidConfig, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return m, nil
}

// Marshal encodes m as YAML.
func (m *Model) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}

	return buf.Bytes(), nil
}

// Validate checks every section by building its library config.
// The returned error wraps ErrInvalidConfig and the library sentinel.
func (m *Model) Validate() error {
	if _, _, err := m.ForecastConfig(nil); err != nil {
		return err
	}
	if _, err := m.DistanceConfig(nil); err != nil {
		return err
	}
	if _, _, err := m.AutoencoderConfig(nil); err != nil {
		return err
	}

	return nil
}

// ForecastConfig returns the forecaster settings of the document.
func (m *Model) ForecastConfig(log *logrus.Logger) (forecast.Config, forecast.FitOptions, error) {
	s := m.Forecast
	act, err := nn.ParseActivation(s.Activation)
	if err != nil {
		return forecast.Config{}, forecast.FitOptions{}, invalid("forecast", err)
	}
	cfg := forecast.Config{
		WindowSize:   s.WindowSize,
		HiddenSize:   s.HiddenSize,
		LearningRate: s.LearningRate,
		Activation:   act,
		BatchSize:    s.BatchSize,
		TargetOffset: s.TargetOffset,
		Seed:         m.Seed,
		Logger:       log,
		LogEvery:     s.LogEvery,
	}
	if err = cfg.Validate(); err != nil {
		return forecast.Config{}, forecast.FitOptions{}, invalid("forecast", err)
	}
	opts := forecast.FitOptions{Epochs: s.Epochs, ValidationSplit: s.ValidationSplit, UseFeatures: s.UseFeatures}
	if err = checkRun(s.Epochs, cfg.BatchSize, s.ValidationSplit); err != nil {
		return forecast.Config{}, forecast.FitOptions{}, invalid("forecast", err)
	}

	return cfg, opts, nil
}

// DistanceConfig returns the distance-detector settings of the document.
func (m *Model) DistanceConfig(log *logrus.Logger) (anomaly.DistanceConfig, error) {
	c := m.Distance.Contamination
	if !(c > 0 && c < 1) {
		return anomaly.DistanceConfig{}, invalid("distance", fmt.Errorf("contamination %g: %w", c, anomaly.ErrInvalidContamination))
	}

	return anomaly.DistanceConfig{Contamination: c, Logger: log}, nil
}

// AutoencoderConfig returns the autoencoder settings of the document.
func (m *Model) AutoencoderConfig(log *logrus.Logger) (anomaly.AutoencoderConfig, anomaly.AutoencoderFitOptions, error) {
	s := m.Autoencoder
	act, err := nn.ParseActivation(s.Activation)
	if err != nil {
		return anomaly.AutoencoderConfig{}, anomaly.AutoencoderFitOptions{}, invalid("autoencoder", err)
	}
	cfg := anomaly.AutoencoderConfig{
		EncodingDim:   s.EncodingDim,
		HiddenDims:    append([]int(nil), s.HiddenDims...),
		Activation:    act,
		LearningRate:  s.LearningRate,
		Contamination: s.Contamination,
		Seed:          m.Seed,
		Logger:        log,
		LogEvery:      s.LogEvery,
	}
	if err = cfg.Validate(); err != nil {
		return anomaly.AutoencoderConfig{}, anomaly.AutoencoderFitOptions{}, invalid("autoencoder", err)
	}
	if err = checkRun(s.Epochs, s.BatchSize, 0); err != nil {
		return anomaly.AutoencoderConfig{}, anomaly.AutoencoderFitOptions{}, invalid("autoencoder", err)
	}

	return cfg, anomaly.AutoencoderFitOptions{Epochs: s.Epochs, BatchSize: s.BatchSize}, nil
}

// checkRun validates the training-run fields shared by both trained models.
func checkRun(epochs, batch int, split float64) error {
	if epochs < 1 {
		return fmt.Errorf("epochs %d: %w", epochs, nn.ErrInvalidEpochs)
	}

	return nn.TrainOptions{Epochs: epochs, BatchSize: batch, ValidationSplit: split}.Validate()
}

func invalid(section string, err error) error {
	return fmt.Errorf("%s: %w: %w", section, ErrInvalidConfig, err)
}
