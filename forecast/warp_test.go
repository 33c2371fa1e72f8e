// SPDX-License-Identifier: MIT

package forecast_test

import (
	"testing"

	"github.com/katalvlaran/hydroml/forecast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarpDistance(t *testing.T) {
	d, err := forecast.WarpDistance([]float64{1, 2, 3}, []float64{1, 2, 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	// A repeated sample is absorbed by the alignment.
	d, err = forecast.WarpDistance([]float64{0, 1, 2}, []float64{0, 0, 1, 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	d, err = forecast.WarpDistance([]float64{1, 2, 3}, []float64{2, 3, 4}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, 1e-12)

	// A one-cell band still admits the best alignment.
	d, err = forecast.WarpDistance([]float64{1, 2, 3}, []float64{2, 3, 4}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, 1e-12)
}

func TestWarpDistanceBandWidening(t *testing.T) {
	d, err := forecast.WarpDistance([]float64{5}, []float64{5, 5, 5, 5}, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestWarpDistanceEmpty(t *testing.T) {
	_, err := forecast.WarpDistance(nil, []float64{1}, 0)
	require.ErrorIs(t, err, forecast.ErrEmptySequence)
}
