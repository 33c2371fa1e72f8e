// SPDX-License-Identifier: MIT
// Package nn - the layer arena, forward pass and backpropagation.
//
// Shapes (n = batch rows):
//   - acts[0] is the input (n × sizes[0]); acts[i+1] = f(pre[i]) (n × sizes[i+1]).
//   - pre[i] = acts[i]·W_i + b_i; the last boundary is linear, so acts[L] == pre[L-1].
//
// Complexity quicksheet:
//   - Forward/Backward: O(n · Σ sizes[i]·sizes[i+1]) time, O(n · Σ sizes[i]) space.

package nn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/hydroml/matrix"
	"github.com/sirupsen/logrus"
)

const (
	opNew      = "New"
	opForward  = "Forward"
	opBackward = "Backward"
	opUpdate   = "Update"
	opPredict  = "Predict"
	opLoss     = "Loss"
)

// nnErrorf wraps err with an operation tag, preserving the sentinel via %w.
func nnErrorf(tag string, err error) error {
	return fmt.Errorf("nn.%s: %w", tag, err)
}

// Layer is one boundary of the arena: Weights is fanIn × fanOut, Bias has fanOut entries.
type Layer struct {
	Weights *matrix.Dense
	Bias    []float64
}

// Gradient mirrors Layer with the mean-squared-error gradients of one batch.
type Gradient struct {
	Weights *matrix.Dense
	Bias    []float64
}

// Network is a dense feed-forward regressor.
type Network struct {
	sizes      []int
	activation Activation
	rate       float64
	layers     []Layer

	rng      *rand.Rand
	log      *logrus.Logger
	logEvery int

	history []float64
}

// New builds a network with the given layer widths.
// MAIN DESCRIPTION:
//   - len(sizes)-1 boundaries; boundary i maps sizes[i] → sizes[i+1].
//   - Weights drawn He-style, N(0,1)·√(2/fanIn); biases start at zero.
//
// Errors:
//   - ErrTooFewLayers (len(sizes) < 2), ErrInvalidWidth, ErrInvalidLearningRate,
//     ErrUnknownActivation.
//
// Complexity:
//   - Time O(Σ sizes[i]·sizes[i+1]), Space the same.
func New(sizes []int, act Activation, learningRate float64, opts ...Option) (*Network, error) {
	if len(sizes) < 2 {
		return nil, nnErrorf(opNew, ErrTooFewLayers)
	}
	for _, s := range sizes {
		if s <= 0 {
			return nil, nnErrorf(opNew, ErrInvalidWidth)
		}
	}
	if !(learningRate > 0) || math.IsInf(learningRate, 0) {
		return nil, nnErrorf(opNew, ErrInvalidLearningRate)
	}
	if !act.Valid() {
		return nil, nnErrorf(opNew, ErrUnknownActivation)
	}

	cfg := newNetworkConfig(opts)
	n := &Network{
		sizes:      append([]int(nil), sizes...),
		activation: act,
		rate:       learningRate,
		layers:     make([]Layer, len(sizes)-1),
		rng:        cfg.rng,
		log:        cfg.logger,
		logEvery:   cfg.logEvery,
	}

	var scale float64
	he := func(_, _ int, _ float64) float64 { return n.rng.NormFloat64() * scale }
	for i := range n.layers {
		fanIn, fanOut := sizes[i], sizes[i+1]
		w, err := matrix.NewZeros(fanIn, fanOut)
		if err != nil {
			return nil, nnErrorf(opNew, err)
		}
		// Row-major draws keep a seeded arena reproducible.
		scale = math.Sqrt(2.0 / float64(fanIn))
		if err = w.Apply(he); err != nil {
			return nil, nnErrorf(opNew, err)
		}
		n.layers[i] = Layer{Weights: w, Bias: make([]float64, fanOut)}
	}

	return n, nil
}

// Sizes returns a copy of the layer widths.
func (n *Network) Sizes() []int { return append([]int(nil), n.sizes...) }

// Activation returns the hidden-layer activation.
func (n *Network) Activation() Activation { return n.activation }

// LearningRate returns the gradient-descent step size.
func (n *Network) LearningRate() float64 { return n.rate }

// Layers returns deep copies of every boundary; mutating them does not affect n.
func (n *Network) Layers() []Layer {
	out := make([]Layer, len(n.layers))
	for i, l := range n.layers {
		out[i] = Layer{
			Weights: l.Weights.Clone().(*matrix.Dense),
			Bias:    append([]float64(nil), l.Bias...),
		}
	}

	return out
}

// LossHistory returns a copy of the per-epoch training losses of the last Train call.
func (n *Network) LossHistory() []float64 { return append([]float64(nil), n.history...) }

// Forward evaluates every boundary in order and returns all activations
// (acts[0] is a copy of x) and all pre-activations. Both lists feed Backward.
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrDimensionMismatch when x.Cols() != Sizes()[0].
func (n *Network) Forward(x matrix.Matrix) (acts, pre []*matrix.Dense, err error) {
	if err = matrix.ValidateNotNil(x); err != nil {
		return nil, nil, nnErrorf(opForward, err)
	}
	in, ok := x.Clone().(*matrix.Dense)
	if !ok {
		if in, err = toDense(x); err != nil {
			return nil, nil, nnErrorf(opForward, err)
		}
	}

	last := len(n.layers) - 1
	acts = make([]*matrix.Dense, 0, len(n.layers)+1)
	pre = make([]*matrix.Dense, 0, len(n.layers))
	acts = append(acts, in)

	var lin, out *matrix.Dense
	for i, l := range n.layers {
		if lin, err = matrix.Mul(acts[i], l.Weights); err != nil {
			return nil, nil, nnErrorf(opForward, fmt.Errorf("layer %d: %w", i, err))
		}
		if lin, err = matrix.AddRowVector(lin, l.Bias); err != nil {
			return nil, nil, nnErrorf(opForward, fmt.Errorf("layer %d: %w", i, err))
		}
		pre = append(pre, lin)
		if i == last {
			// Regression head: no activation.
			acts = append(acts, lin)
			break
		}
		if out, err = matrix.Map(lin, n.activation.apply); err != nil {
			return nil, nil, nnErrorf(opForward, err)
		}
		acts = append(acts, out)
	}

	return acts, pre, nil
}

// Backward computes the mean-squared-error gradients of every boundary.
// MAIN DESCRIPTION:
//   - delta = acts[L] - y.
//   - For i = L-1..0: dW_i = acts[i]ᵀ·delta / n, db_i = column mean of delta;
//     then delta = (delta·W_iᵀ) ⊙ f'(pre[i-1]) for the earlier boundary.
//
// Errors:
//   - matrix.ErrDimensionMismatch when y does not match the output shape
//     or acts/pre are not the lists Forward produced for this network.
func (n *Network) Backward(y matrix.Matrix, acts, pre []*matrix.Dense) ([]Gradient, error) {
	L := len(n.layers)
	if len(acts) != L+1 || len(pre) != L {
		return nil, nnErrorf(opBackward, matrix.ErrDimensionMismatch)
	}
	rows := acts[0].Rows()
	if rows == 0 {
		return nil, nnErrorf(opBackward, ErrNoTrainingRows)
	}
	invN := 1.0 / float64(rows)

	delta, err := matrix.Sub(acts[L], y)
	if err != nil {
		return nil, nnErrorf(opBackward, err)
	}

	grads := make([]Gradient, L)
	var at, wt, dw, back, deriv *matrix.Dense
	var db []float64
	for i := L - 1; i >= 0; i-- {
		if at, err = matrix.Transpose(acts[i]); err != nil {
			return nil, nnErrorf(opBackward, err)
		}
		if dw, err = matrix.Mul(at, delta); err != nil {
			return nil, nnErrorf(opBackward, err)
		}
		if dw, err = matrix.Scale(dw, invN); err != nil {
			return nil, nnErrorf(opBackward, err)
		}
		if db, err = matrix.ColumnMeans(delta); err != nil {
			return nil, nnErrorf(opBackward, err)
		}
		grads[i] = Gradient{Weights: dw, Bias: db}

		if i == 0 {
			break
		}
		if wt, err = matrix.Transpose(n.layers[i].Weights); err != nil {
			return nil, nnErrorf(opBackward, err)
		}
		if back, err = matrix.Mul(delta, wt); err != nil {
			return nil, nnErrorf(opBackward, err)
		}
		if deriv, err = matrix.MapPair(pre[i-1], acts[i], n.activation.derivative); err != nil {
			return nil, nnErrorf(opBackward, err)
		}
		if delta, err = matrix.Hadamard(back, deriv); err != nil {
			return nil, nnErrorf(opBackward, err)
		}
	}

	return grads, nil
}

// Update applies param -= rate·grad to every boundary in place.
//
// Errors:
//   - ErrGradientShape when grads do not mirror the arena.
func (n *Network) Update(grads []Gradient) error {
	if len(grads) != len(n.layers) {
		return nnErrorf(opUpdate, ErrGradientShape)
	}
	for i := range n.layers {
		if len(grads[i].Bias) != len(n.layers[i].Bias) {
			return nnErrorf(opUpdate, ErrGradientShape)
		}
		if err := n.layers[i].Weights.AddScaled(-n.rate, grads[i].Weights); err != nil {
			return nnErrorf(opUpdate, fmt.Errorf("%w: %w", ErrGradientShape, err))
		}
		for j, g := range grads[i].Bias {
			n.layers[i].Bias[j] -= n.rate * g
		}
	}

	return nil
}

// Predict returns only the final activation (rows × Sizes()[last]).
// It reads weights and never mutates them.
func (n *Network) Predict(x matrix.Matrix) (*matrix.Dense, error) {
	acts, _, err := n.Forward(x)
	if err != nil {
		return nil, nnErrorf(opPredict, err)
	}

	return acts[len(acts)-1], nil
}

// Loss returns the mean-squared error of Predict(x) against y without training.
func (n *Network) Loss(x, y matrix.Matrix) (float64, error) {
	yHat, err := n.Predict(x)
	if err != nil {
		return 0, nnErrorf(opLoss, err)
	}
	loss, err := matrix.MeanSquared(yHat, y)
	if err != nil {
		return 0, nnErrorf(opLoss, err)
	}

	return loss, nil
}

// toDense copies any Matrix into a *Dense.
func toDense(m matrix.Matrix) (*matrix.Dense, error) {
	out, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
