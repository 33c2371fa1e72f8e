// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common constructors.
//   - Each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - ColumnSums backs ColumnMeans (bias gradients); MeanSquared is the training loss.

package matrix

const (
	opColumnSums  = "ColumnSums"
	opMeanSquared = "MeanSquared"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ColumnSums returns Σ_i X[i,j] for every column j.
// Complexity: O(r*c).
func ColumnSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnSums, err)
	}
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, c)
	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				sums[j] += d.data[base+j]
			}
		}

		return sums, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opColumnSums, err)
			}
			sums[j] += v
		}
	}

	return sums, nil
}

// MeanSquared returns the mean of (a[i,j]-b[i,j])² over all elements (the MSE).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidDimensions (zero elements).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MeanSquared(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMeanSquared, err)
	}
	r, c := a.Rows(), a.Cols()
	if r*c == 0 {
		return 0, matrixErrorf(opMeanSquared, ErrInvalidDimensions)
	}

	var sum, d float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				d = da.data[idx] - db.data[idx]
				sum += d * d
			}

			return sum / float64(r*c), nil
		}
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return 0, matrixErrorf(opMeanSquared, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, matrixErrorf(opMeanSquared, err)
			}
			d = av - bv
			sum += d * d
		}
	}

	return sum / float64(r*c), nil
}
