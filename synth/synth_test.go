// SPDX-License-Identifier: MIT

package synth_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hydroml/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrend(t *testing.T) {
	s, err := synth.Trend(100, 1)
	require.NoError(t, err)
	require.Len(t, s, 100)
	assert.Equal(t, 0.0, s[0])
	assert.Equal(t, 99.0, s[99])

	shifted, err := synth.Trend(3, -2, synth.WithOffset(10))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 8, 6}, shifted)

	_, err = synth.Trend(0, 1)
	require.ErrorIs(t, err, synth.ErrInvalidLength)
}

func TestNoiseIsSeeded(t *testing.T) {
	a, err := synth.Trend(50, 0.5, synth.WithNoise(1), synth.WithSeed(3))
	require.NoError(t, err)
	b, err := synth.Trend(50, 0.5, synth.WithNoise(1), synth.WithSeed(3))
	require.NoError(t, err)
	c, err := synth.Trend(50, 0.5, synth.WithNoise(1), synth.WithSeed(4))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestPulse(t *testing.T) {
	// Default: period 8, duty 0.5, amplitude 1.
	p, err := synth.Pulse(16)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0}, p)

	tri, err := synth.Pulse(5, synth.WithTriangular(), synth.WithFrequency(0.25), synth.WithAmplitude(2))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 2, 1, 0}, tri, 1e-12)

	_, err = synth.Pulse(-1)
	require.ErrorIs(t, err, synth.ErrInvalidLength)
}

func TestChirp(t *testing.T) {
	c, err := synth.Chirp(200, synth.WithAmplitude(3))
	require.NoError(t, err)
	require.Len(t, c, 200)
	for _, v := range c {
		assert.LessOrEqual(t, math.Abs(v), 3.0+1e-12)
	}

	single, err := synth.Chirp(1, synth.WithSweep(0.25, 0.5))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, single[0], 1e-12) // θ₀ = 2π·0.25
}

func TestBlobs(t *testing.T) {
	x, labels, err := synth.Blobs(200, 3, synth.WithSeed(5), synth.WithOutliers(0.05, 8))
	require.NoError(t, err)
	require.Equal(t, 200, x.Rows())
	require.Equal(t, 3, x.Cols())

	var outliers int
	for i, out := range labels {
		row, err := x.Row(i)
		require.NoError(t, err)
		if out {
			outliers++
			for _, v := range row {
				assert.Greater(t, math.Abs(v), 3.0)
			}
		}
	}
	assert.Equal(t, 10, outliers)

	again, labels2, err := synth.Blobs(200, 3, synth.WithSeed(5), synth.WithOutliers(0.05, 8))
	require.NoError(t, err)
	assert.Equal(t, x.ToRows(), again.ToRows())
	assert.Equal(t, labels, labels2)

	_, _, err = synth.Blobs(0, 3)
	require.ErrorIs(t, err, synth.ErrInvalidLength)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { synth.WithRand(nil) })
	require.Panics(t, func() { synth.WithAmplitude(0) })
	require.Panics(t, func() { synth.WithNoise(-1) })
	require.Panics(t, func() { synth.WithDuty(2) })
	require.Panics(t, func() { synth.WithOutliers(1, 1) })
	require.Panics(t, func() { synth.WithSweep(0, 1) })
}
