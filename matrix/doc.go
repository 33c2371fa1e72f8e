// Package matrix provides the dense, row-major numeric core of hydroml.
//
// The matrix package provides:
//
//   - Dense, a flat row-major float64 matrix with safe At/Set accessors and
//     copy-based row gathering (Induced, RowRange) for mini-batching.
//   - Linear-algebra kernels (Sub, Mul, Transpose, Scale, Hadamard,
//     MatVec, Inverse) that allocate fresh results and never mutate operands.
//   - Broadcast helpers (AddRowVector, SubRowVector, DivRowVector, Map) used
//     by network layers and feature scaling.
//   - Column statistics (ColumnMeans, ColumnStdDevs, Covariance) for the
//     distance-based detector.
//
// Every failure is reported through a package sentinel (ErrDimensionMismatch,
// ErrSingular, ...) wrapped with the operation name; match with errors.Is.
package matrix
