// SPDX-License-Identifier: MIT
// Package nn - the mini-batch gradient-descent loop.

package nn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydroml/matrix"
	"github.com/sirupsen/logrus"
)

const opTrain = "Train"

// Defaults for TrainOptions.
const (
	DefaultEpochs    = 100
	DefaultBatchSize = 32
)

// TrainOptions controls one Train call.
//   - Epochs: full passes over the training rows (0 is a no-op call).
//   - BatchSize: rows per gradient step; the last batch of an epoch may be smaller.
//   - ValidationSplit: fraction in [0,1) of rows held out from the END of the data.
//     Held-out rows never train; their loss is only reported in verbose logs.
//   - Verbose: emit Info progress lines every WithLogEvery epochs.
type TrainOptions struct {
	Epochs          int
	BatchSize       int
	ValidationSplit float64
	Verbose         bool
}

// DefaultTrainOptions returns 100 epochs of 32-row batches, no hold-out, quiet.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		Epochs:    DefaultEpochs,
		BatchSize: DefaultBatchSize,
	}
}

// Validate checks the option ranges.
func (o TrainOptions) Validate() error {
	if o.Epochs < 0 {
		return ErrInvalidEpochs
	}
	if o.BatchSize < 1 {
		return ErrInvalidBatchSize
	}
	if math.IsNaN(o.ValidationSplit) || o.ValidationSplit < 0 || o.ValidationSplit >= 1 {
		return ErrInvalidValidationSplit
	}

	return nil
}

// Train fits the network to (x, y) and returns the per-epoch loss history of this call.
// MAIN DESCRIPTION:
//   - The trailing ⌊rows·ValidationSplit⌋ rows are held out once, before the first epoch.
//   - Every epoch shuffles the remaining rows with one permutation shared by x and y,
//     walks consecutive batches, and applies param -= rate·grad after each batch.
//   - The epoch loss is the mean of the batch losses measured before each update.
//   - No early stopping: the epoch count alone decides the duration.
//
// Behavior highlights:
//   - The history is reset at the start of every call.
//
// Errors:
//   - ErrInvalidEpochs, ErrInvalidBatchSize, ErrInvalidValidationSplit, ErrNoTrainingRows.
//   - matrix.ErrDimensionMismatch when x.Rows() != y.Rows(), x.Cols() differs from the
//     input width, or y.Cols() differs from the output width.
//
// Complexity:
//   - Time O(Epochs · rows · Σ sizes[i]·sizes[i+1]).
func (n *Network) Train(x, y *matrix.Dense, opts TrainOptions) ([]float64, error) {
	if err := opts.Validate(); err != nil {
		return nil, nnErrorf(opTrain, err)
	}
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, nnErrorf(opTrain, err)
	}
	if err := matrix.ValidateNotNil(y); err != nil {
		return nil, nnErrorf(opTrain, err)
	}
	if x.Rows() != y.Rows() {
		return nil, nnErrorf(opTrain, fmt.Errorf("rows %d vs %d: %w", x.Rows(), y.Rows(), matrix.ErrDimensionMismatch))
	}

	total := x.Rows()
	nVal := int(float64(total) * opts.ValidationSplit)
	nTrain := total - nVal
	if nTrain < 1 {
		return nil, nnErrorf(opTrain, ErrNoTrainingRows)
	}

	xTrain, err := x.RowRange(0, nTrain)
	if err != nil {
		return nil, nnErrorf(opTrain, err)
	}
	yTrain, err := y.RowRange(0, nTrain)
	if err != nil {
		return nil, nnErrorf(opTrain, err)
	}
	var xVal, yVal *matrix.Dense
	if nVal > 0 {
		if xVal, err = x.RowRange(nTrain, total); err != nil {
			return nil, nnErrorf(opTrain, err)
		}
		if yVal, err = y.RowRange(nTrain, total); err != nil {
			return nil, nnErrorf(opTrain, err)
		}
	}

	xCols := identityPerm(x.Cols())
	yCols := identityPerm(y.Cols())
	perm := identityPerm(nTrain)
	n.history = make([]float64, 0, opts.Epochs)

	var (
		start, end, batches int
		sum, loss           float64
		xb, yb              *matrix.Dense
		acts, pre           []*matrix.Dense
		grads               []Gradient
	)
	for epoch := 0; epoch < opts.Epochs; epoch++ {
		shuffleIntsInPlace(perm, n.rng)
		sum, batches = 0, 0
		for start = 0; start < nTrain; start += opts.BatchSize {
			end = start + opts.BatchSize
			if end > nTrain {
				end = nTrain
			}
			if xb, err = xTrain.Induced(perm[start:end], xCols); err != nil {
				return nil, nnErrorf(opTrain, err)
			}
			if yb, err = yTrain.Induced(perm[start:end], yCols); err != nil {
				return nil, nnErrorf(opTrain, err)
			}
			if acts, pre, err = n.Forward(xb); err != nil {
				return nil, nnErrorf(opTrain, err)
			}
			if loss, err = matrix.MeanSquared(acts[len(acts)-1], yb); err != nil {
				return nil, nnErrorf(opTrain, err)
			}
			if grads, err = n.Backward(yb, acts, pre); err != nil {
				return nil, nnErrorf(opTrain, err)
			}
			if err = n.Update(grads); err != nil {
				return nil, nnErrorf(opTrain, err)
			}
			sum += loss
			batches++
		}
		loss = sum / float64(batches)
		n.history = append(n.history, loss)

		if epoch%n.logEvery == 0 {
			n.logProgress(opts.Verbose, epoch, loss, xVal, yVal)
		}
	}

	return n.LossHistory(), nil
}

// logProgress emits one structured progress line. Verbose runs log at Info,
// quiet runs at Debug. The validation loss is only computed when a hold-out exists
// and the line would actually be written.
func (n *Network) logProgress(verbose bool, epoch int, loss float64, xVal, yVal *matrix.Dense) {
	level := logrus.DebugLevel
	if verbose {
		level = logrus.InfoLevel
	}
	if !n.log.IsLevelEnabled(level) {
		return
	}

	fields := logrus.Fields{"epoch": epoch, "loss": loss}
	if xVal != nil {
		if valLoss, err := n.Loss(xVal, yVal); err == nil {
			fields["val_loss"] = valLoss
		} else {
			fields["val_error"] = err.Error()
		}
	}
	n.log.WithFields(fields).Log(level, "training progress")
}
