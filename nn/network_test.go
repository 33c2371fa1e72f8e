// SPDX-License-Identifier: MIT

package nn_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hydroml/matrix"
	"github.com/katalvlaran/hydroml/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomDense(t *testing.T, rng *rand.Rand, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

func TestNewValidation(t *testing.T) {
	_, err := nn.New([]int{3}, nn.ReLU, 0.1)
	require.ErrorIs(t, err, nn.ErrTooFewLayers)

	_, err = nn.New([]int{3, 0, 1}, nn.ReLU, 0.1)
	require.ErrorIs(t, err, nn.ErrInvalidWidth)

	_, err = nn.New([]int{3, 1}, nn.ReLU, 0)
	require.ErrorIs(t, err, nn.ErrInvalidLearningRate)

	_, err = nn.New([]int{3, 1}, nn.Activation(42), 0.1)
	require.ErrorIs(t, err, nn.ErrUnknownActivation)
}

func TestForwardShapes(t *testing.T) {
	net, err := nn.New([]int{3, 5, 4, 2}, nn.Tanh, 0.01, nn.WithSeed(3))
	require.NoError(t, err)

	x := randomDense(t, rand.New(rand.NewSource(1)), 6, 3)
	acts, pre, err := net.Forward(x)
	require.NoError(t, err)
	require.Len(t, acts, 4)
	require.Len(t, pre, 3)
	assert.Equal(t, 6, acts[3].Rows())
	assert.Equal(t, 2, acts[3].Cols())
	// Linear head: the final activation equals its pre-activation.
	assert.Equal(t, pre[2].ToRows(), acts[3].ToRows())
	assert.Equal(t, x.ToRows(), acts[0].ToRows())
}

func TestForwardShapeMismatch(t *testing.T) {
	net, err := nn.New([]int{3, 2, 1}, nn.ReLU, 0.01)
	require.NoError(t, err)

	x := randomDense(t, rand.New(rand.NewSource(1)), 4, 2)
	_, err = net.Predict(x)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestPredictIsPure(t *testing.T) {
	net, err := nn.New([]int{4, 8, 1}, nn.Sigmoid, 0.01, nn.WithSeed(9))
	require.NoError(t, err)
	x := randomDense(t, rand.New(rand.NewSource(2)), 5, 4)

	before := net.Layers()
	p1, err := net.Predict(x)
	require.NoError(t, err)
	p2, err := net.Predict(x)
	require.NoError(t, err)
	require.Equal(t, p1.ToRows(), p2.ToRows())

	after := net.Layers()
	for i := range before {
		require.Equal(t, before[i].Weights.ToRows(), after[i].Weights.ToRows())
		require.Equal(t, before[i].Bias, after[i].Bias)
	}
}

func TestInitialisation(t *testing.T) {
	a, err := nn.New([]int{50, 40, 1}, nn.ReLU, 0.01, nn.WithSeed(21))
	require.NoError(t, err)
	b, err := nn.New([]int{50, 40, 1}, nn.ReLU, 0.01, nn.WithRand(nn.NewRand(21)))
	require.NoError(t, err)
	c, err := nn.New([]int{50, 40, 1}, nn.ReLU, 0.01, nn.WithSeed(22))
	require.NoError(t, err)

	la, lb, lc := a.Layers(), b.Layers(), c.Layers()
	require.Equal(t, la[0].Weights.ToRows(), lb[0].Weights.ToRows())
	require.NotEqual(t, la[0].Weights.ToRows(), lc[0].Weights.ToRows())

	// Zero biases and He-scaled spread: var ≈ 2/fanIn = 0.04.
	require.Equal(t, make([]float64, 40), la[0].Bias)
	var sum, sq float64
	for _, row := range la[0].Weights.ToRows() {
		for _, v := range row {
			sum += v
			sq += v * v
		}
	}
	cnt := float64(50 * 40)
	variance := sq/cnt - (sum/cnt)*(sum/cnt)
	assert.InDelta(t, 0.04, variance, 0.01)

	// Layers hands out copies.
	require.NoError(t, la[0].Weights.Set(0, 0, 123))
	la[0].Bias[0] = 5
	fresh := a.Layers()
	w, _ := fresh[0].Weights.At(0, 0)
	assert.NotEqual(t, 123.0, w)
	assert.Equal(t, 0.0, fresh[0].Bias[0])
}

func TestParseActivation(t *testing.T) {
	for name, want := range map[string]nn.Activation{
		"relu": nn.ReLU, "Sigmoid": nn.Sigmoid, " tanh ": nn.Tanh, "linear": nn.Identity,
	} {
		got, err := nn.ParseActivation(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := nn.ParseActivation("softmax")
	require.ErrorIs(t, err, nn.ErrUnknownActivation)
	assert.Equal(t, "sigmoid", nn.Sigmoid.String())
	assert.Equal(t, "Activation(9)", nn.Activation(9).String())
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { nn.WithRand(nil) })
	require.Panics(t, func() { nn.WithLogger(nil) })
	require.Panics(t, func() { nn.WithLogEvery(0) })
}

func TestUpdateRejectsForeignGradients(t *testing.T) {
	net, err := nn.New([]int{2, 1}, nn.Identity, 0.1)
	require.NoError(t, err)
	require.ErrorIs(t, net.Update(nil), nn.ErrGradientShape)

	w, err := matrix.NewDense(3, 1)
	require.NoError(t, err)
	err = net.Update([]nn.Gradient{{Weights: w, Bias: []float64{0}}})
	require.ErrorIs(t, err, nn.ErrGradientShape)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
