// SPDX-License-Identifier: MIT

package anomaly_test

import (
	"testing"

	"github.com/katalvlaran/hydroml/anomaly"
	"github.com/katalvlaran/hydroml/matrix"
	"github.com/katalvlaran/hydroml/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fitAutoencoder(t *testing.T, x *matrix.Dense, seed int64, epochs int) *anomaly.AutoencoderDetector {
	t.Helper()
	cfg := anomaly.DefaultAutoencoderConfig()
	cfg.Seed = seed
	det, err := anomaly.NewAutoencoderDetector(cfg)
	require.NoError(t, err)
	require.NoError(t, det.Fit(x, anomaly.AutoencoderFitOptions{Epochs: epochs, BatchSize: 16}))

	return det
}

func TestAutoencoderReconstructsTrainingRows(t *testing.T) {
	x, _, err := synth.Blobs(200, 4, synth.WithSeed(6))
	require.NoError(t, err)
	det := fitAutoencoder(t, x, 3, 40)

	assert.Equal(t, []int{4, 16, 8, 2}, det.Encoder().Sizes())
	assert.Equal(t, []int{2, 8, 16, 4}, det.Decoder().Sizes())
	assert.Len(t, det.Encoder().LossHistory(), 20)
	assert.Len(t, det.Decoder().LossHistory(), 20)

	recon, err := det.Reconstruct(x)
	require.NoError(t, err)
	assert.Equal(t, 200, recon.Rows())
	assert.Equal(t, 4, recon.Cols())

	codes, err := det.Encode(x)
	require.NoError(t, err)
	assert.Equal(t, 2, codes.Cols())

	scores, err := det.DecisionFunction(x)
	require.NoError(t, err)
	var below int
	for _, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0)
		if s <= det.Threshold() {
			below++
		}
	}
	assert.Greater(t, below, 100)

	labels, err := det.Predict(x)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, float64(countAnomalous(labels))/200, 0.02)
}

func TestAutoencoderIsReproducible(t *testing.T) {
	x, _, err := synth.Blobs(60, 3, synth.WithSeed(1))
	require.NoError(t, err)
	a := fitAutoencoder(t, x, 9, 6)
	b := fitAutoencoder(t, x, 9, 6)
	assert.Equal(t, a.Threshold(), b.Threshold())
	assert.Equal(t, a.Decoder().LossHistory(), b.Decoder().LossHistory())
}

func TestAutoencoderMinimumStage(t *testing.T) {
	x, _, err := synth.Blobs(30, 3, synth.WithSeed(1))
	require.NoError(t, err)
	for _, epochs := range []int{0, 1, 3} {
		det := fitAutoencoder(t, x, 1, epochs)
		assert.Len(t, det.Encoder().LossHistory(), 1, "epochs %d", epochs)
		assert.Len(t, det.Decoder().LossHistory(), 1, "epochs %d", epochs)
	}
}

func TestAutoencoderErrors(t *testing.T) {
	cfg := anomaly.DefaultAutoencoderConfig()
	cfg.EncodingDim = 0
	_, err := anomaly.NewAutoencoderDetector(cfg)
	require.ErrorIs(t, err, anomaly.ErrEncodingWidth)

	cfg = anomaly.DefaultAutoencoderConfig()
	cfg.Contamination = 1.5
	_, err = anomaly.NewAutoencoderDetector(cfg)
	require.ErrorIs(t, err, anomaly.ErrInvalidContamination)

	cfg = anomaly.DefaultAutoencoderConfig()
	cfg.HiddenDims = []int{4, 0}
	_, err = anomaly.NewAutoencoderDetector(cfg)
	require.ErrorIs(t, err, anomaly.ErrInvalidConfig)

	cfg = anomaly.DefaultAutoencoderConfig()
	cfg.EncodingDim = 5
	det, err := anomaly.NewAutoencoderDetector(cfg)
	require.NoError(t, err)

	x, _, err := synth.Blobs(10, 4, synth.WithSeed(1))
	require.NoError(t, err)
	_, err = det.Predict(x)
	require.ErrorIs(t, err, anomaly.ErrNotFitted)
	_, err = det.Reconstruct(x)
	require.ErrorIs(t, err, anomaly.ErrNotFitted)
	require.ErrorIs(t, det.Fit(x, anomaly.DefaultAutoencoderFitOptions()), anomaly.ErrEncodingWidth)

	one, err := matrix.NewDenseFrom([][]float64{{1, 2, 3, 4, 5}})
	require.NoError(t, err)
	require.ErrorIs(t, det.Fit(one, anomaly.DefaultAutoencoderFitOptions()), anomaly.ErrTooFewRows)
}
