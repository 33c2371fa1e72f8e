// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide element-wise and broadcast kernels used by the network engine
//     (bias add, activation maps) and by feature scaling (column centering, z-scoring).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock the flat-slice fast path.
//   - Keep broadcast arrays (means/scales/bias) precomputed and reused across calls.

package matrix

const (
	opAddRowVector = "AddRowVector"
	opSubRowVector = "SubRowVector"
	opDivRowVector = "DivRowVector"
	opMap          = "Map"
	opMapPair      = "MapPair"
)

// ewBroadcastCols computes out[i,j] = f(X[i,j], vec[j]) for a row-broadcast vector.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcastCols(X Matrix, vec []float64, f func(x, v float64) float64, opTag string) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(vec, c); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	var i, j, base int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c // cache the base offset for row i
			for j = 0; j < c; j++ {
				out.data[base+j] = f(d.data[base+j], vec[j])
			}
		}

		return out, nil
	}

	// Generic fallback via At (still deterministic).
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			out.data[i*c+j] = f(v, vec[j])
		}
	}

	return out, nil
}

// AddRowVector returns X + 1·vᵀ: v is added to every row of X.
// This is the bias step of a dense layer (linear = act·W + b).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(v) != X.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func AddRowVector(X Matrix, v []float64) (*Dense, error) {
	return ewBroadcastCols(X, v, func(x, b float64) float64 { return x + b }, opAddRowVector)
}

// SubRowVector returns X with v subtracted from every row (column centering).
// Complexity: O(r*c).
func SubRowVector(X Matrix, v []float64) (*Dense, error) {
	return ewBroadcastCols(X, v, func(x, m float64) float64 { return x - m }, opSubRowVector)
}

// DivRowVector returns X with every row divided element-wise by v.
// Callers guarantee v has no zero entries (scalers floor their deviations).
// Complexity: O(r*c).
func DivRowVector(X Matrix, v []float64) (*Dense, error) {
	return ewBroadcastCols(X, v, func(x, s float64) float64 { return x / s }, opDivRowVector)
}

// Map returns a fresh matrix with out[i,j] = f(X[i,j]).
//
// Behavior highlights:
//   - Unlike Dense.Apply it never mutates X and never applies the NaN/Inf policy:
//     activations run on intermediate results where divergence must surface
//     through the loss rather than abort a forward pass.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Map(X Matrix, f func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMap, err)
	}

	if d, ok := X.(*Dense); ok {
		for idx, v := range d.data {
			out.data[idx] = f(v)
		}

		return out, nil
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opMap, err)
			}
			out.data[i*c+j] = f(v)
		}
	}

	return out, nil
}

// MapPair returns a fresh matrix with out[i,j] = f(a[i,j], b[i,j]).
// Like Map it applies no NaN/Inf policy; activation derivatives that need
// both the pre-activation and the activation are computed with it.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MapPair(a, b Matrix, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opMapPair, err)
	}
	r, c := a.Rows(), a.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMapPair, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range out.data {
				out.data[idx] = f(da.data[idx], db.data[idx])
			}

			return out, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opMapPair, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opMapPair, err)
			}
			out.data[i*c+j] = f(av, bv)
		}
	}

	return out, nil
}
