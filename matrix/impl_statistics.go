// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide common column statistics (means, deviations, covariance) and row
//     reductions as deterministic compositions over canonical kernels.
//   - Keep tight loops centralized where it improves reuse and consistency.
//
// Exposed API:
//   - ColumnMeans(X)   -> means            // per-column arithmetic mean
//   - ColumnStdDevs(X) -> (means, stds)    // per-column population standard deviation
//   - CenterColumns(X) -> (Xc, means)      // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)     // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - RowMeans(X)      -> means            // per-row arithmetic mean
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At and operate on row-major flat buffers.

package matrix

import "math"

const (
	opColumnMeans   = "ColumnMeans"
	opColumnStdDevs = "ColumnStdDevs"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opRowMeans      = "RowMeans"
)

// ColumnMeans returns Σ_i X[i,j] / r for every column j.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidDimensions for a matrix with no rows.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r := X.Rows()
	if r == 0 {
		return nil, matrixErrorf(opColumnMeans, ErrInvalidDimensions)
	}

	means, err := ColumnSums(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	invR := 1.0 / float64(r)
	for j := range means {
		means[j] *= invR
	}

	return means, nil
}

// ColumnStdDevs returns the column means and population standard deviations
// sqrt(Σ_i (X[i,j]-mean_j)² / r). A constant column has deviation 0; scaling
// code is responsible for flooring it.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (no rows).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnStdDevs(X Matrix) (means, stds []float64, err error) {
	if means, err = ColumnMeans(X); err != nil {
		return nil, nil, matrixErrorf(opColumnStdDevs, err)
	}
	r, c := X.Rows(), X.Cols()
	stds = make([]float64, c)

	var i, j int
	var v, dv float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opColumnStdDevs, err)
			}
			dv = v - means[j]
			stds[j] += dv * dv
		}
	}
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(stds[j] / float64(r))
	}

	return means, stds, nil
}

// CenterColumns subtracts the per-column mean from every element.
// Returns the centered copy and the means (reuse them to un-center later).
// Complexity: O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	xc, err := SubRowVector(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return xc, means, nil
}

// Covariance computes the sample covariance matrix of the columns of X.
// Implementation:
//   - Stage 1: center columns (Xc = X - 1·meansᵀ).
//   - Stage 2: Cov = (Xcᵀ Xc) / (r-1).
//
// Behavior highlights:
//   - Symmetric c×c output; diagonal holds the sample variances.
//   - Requires at least two rows: one observation carries no spread.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (r < 2).
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
func Covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrInvalidDimensions)
	}

	xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	xt, err := Transpose(xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	gram, err := Mul(xt, xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Scale(gram, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}

// RowMeans returns Σ_j X[i,j] / c for every row i.
// The autoencoder reduces squared reconstruction residuals to one error per row with it.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (no columns).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		return nil, matrixErrorf(opRowMeans, ErrInvalidDimensions)
	}

	means := make([]float64, r)
	var i, j int
	var s, v float64
	var err error
	for i = 0; i < r; i++ {
		s = ZeroSum
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowMeans, err)
			}
			s += v
		}
		means[i] = s / float64(c)
	}

	return means, nil
}
