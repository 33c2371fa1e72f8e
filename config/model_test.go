// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/hydroml/anomaly"
	"github.com/katalvlaran/hydroml/config"
	"github.com/katalvlaran/hydroml/forecast"
	"github.com/katalvlaran/hydroml/nn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesLibraries(t *testing.T) {
	m := config.Default()
	require.NoError(t, m.Validate())

	fc, fo, err := m.ForecastConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, forecast.DefaultConfig(), fc)
	assert.Equal(t, forecast.DefaultFitOptions(), fo)

	dc, err := m.DistanceConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, anomaly.DefaultDistanceConfig(), dc)

	ac, ao, err := m.AutoencoderConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, anomaly.DefaultAutoencoderConfig(), ac)
	assert.Equal(t, anomaly.DefaultAutoencoderFitOptions(), ao)
}

func TestParseOverlaysDefaults(t *testing.T) {
	m, err := config.Parse([]byte(`
seed: 7
forecast:
  window_size: 5
  activation: Tanh
  validation_split: 0.2
  use_features: true
autoencoder:
  hidden_dims: [6]
  encoding_dim: 3
`))
	require.NoError(t, err)

	log := logrus.New()
	fc, fo, err := m.ForecastConfig(log)
	require.NoError(t, err)
	assert.Equal(t, 5, fc.WindowSize)
	assert.Equal(t, 32, fc.HiddenSize)
	assert.Equal(t, nn.Tanh, fc.Activation)
	assert.Equal(t, int64(7), fc.Seed)
	assert.Same(t, log, fc.Logger)
	assert.Equal(t, 0.2, fo.ValidationSplit)
	assert.True(t, fo.UseFeatures)

	ac, _, err := m.AutoencoderConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{6}, ac.HiddenDims)
	assert.Equal(t, 3, ac.EncodingDim)
	assert.Equal(t, int64(7), ac.Seed)
}

func TestParseEmptyIsDefault(t *testing.T) {
	m, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), m)
}

func TestParseRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":        "forecast:\n  windows: 3\n",
		"bad yaml":           "forecast: [",
		"activation":         "forecast:\n  activation: softmax\n",
		"window":             "forecast:\n  window_size: 0\n",
		"split":              "forecast:\n  validation_split: 1\n",
		"epochs":             "autoencoder:\n  epochs: 0\n",
		"contamination":      "distance:\n  contamination: 1.5\n",
		"encoding dim":       "autoencoder:\n  encoding_dim: 0\n",
		"autoencoder hidden": "autoencoder:\n  hidden_dims: [4, -1]\n",
	} {
		_, err := config.Parse([]byte(doc))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}

	_, err := config.Parse([]byte("distance:\n  contamination: 0\n"))
	assert.ErrorIs(t, err, anomaly.ErrInvalidContamination)
	_, err = config.Parse([]byte("forecast:\n  activation: softmax\n"))
	assert.ErrorIs(t, err, nn.ErrUnknownActivation)
}

func TestLoadAndMarshal(t *testing.T) {
	m := config.Default()
	m.Seed = 3
	m.Autoencoder.HiddenDims = []int{12, 6}
	raw, err := m.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(raw), "hidden_dims: [12, 6]")

	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
