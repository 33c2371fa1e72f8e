// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hydroml/matrix"
	"github.com/stretchr/testify/require"
)

func TestRowVectorBroadcasts(t *testing.T) {
	x := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	add, err := matrix.AddRowVector(x, []float64{10, 20})
	require.NoError(t, err)
	requireClose(t, [][]float64{{11, 22}, {13, 24}}, add, 0)

	sub, err := matrix.SubRowVector(hide{x}, []float64{1, 2})
	require.NoError(t, err)
	requireClose(t, [][]float64{{0, 0}, {2, 2}}, sub, 0)

	div, err := matrix.DivRowVector(x, []float64{2, 4})
	require.NoError(t, err)
	requireClose(t, [][]float64{{0.5, 0.5}, {1.5, 1}}, div, 0)

	_, err = matrix.AddRowVector(x, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMapDoesNotMutate(t *testing.T) {
	x := mustDense(t, [][]float64{{-1, 2}})
	y, err := matrix.Map(x, func(v float64) float64 { return math.Max(0, v) })
	require.NoError(t, err)
	requireClose(t, [][]float64{{0, 2}}, y, 0)
	requireClose(t, [][]float64{{-1, 2}}, x, 0)

	// Intermediate results may leave the finite range without aborting.
	inf, err := matrix.Map(hide{x}, func(v float64) float64 { return v * math.Inf(1) })
	require.NoError(t, err)
	v, err := inf.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

func TestMapPair(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}})
	b := mustDense(t, [][]float64{{3, 4}})
	out, err := matrix.MapPair(a, hide{b}, func(x, y float64) float64 { return x*10 + y })
	require.NoError(t, err)
	requireClose(t, [][]float64{{13, 24}}, out, 0)

	_, err = matrix.MapPair(a, mustDense(t, [][]float64{{1}}), func(x, y float64) float64 { return x })
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
