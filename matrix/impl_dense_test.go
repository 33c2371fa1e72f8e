// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hydroml/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetRejectsNaN checks the default numeric policy on writes.
func TestSetRejectsNaN(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

// TestNewDenseFrom covers copy semantics and the ragged/empty guards.
func TestNewDenseFrom(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewDenseFrom(src)
	require.NoError(t, err)
	src[0][0] = 99 // the matrix owns its buffer
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
	_, err = matrix.NewDenseFrom([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestRowColAccessors checks Row, Col and ToRows copies.
func TestRowColAccessors(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToRows())
}

// TestInducedAndRowRange verifies mini-batch gathering and validation splits.
func TestInducedAndRowRange(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	sub, err := m.Induced([]int{2, 0, 2}, []int{0, 1})
	require.NoError(t, err)
	requireClose(t, [][]float64{{5, 6}, {1, 2}, {5, 6}}, sub, 0)

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	empty, err := m.Induced(nil, []int{0})
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())

	tail, err := m.RowRange(1, 3)
	require.NoError(t, err)
	requireClose(t, [][]float64{{3, 4}, {5, 6}}, tail, 0)
	_, err = m.RowRange(2, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestApplyAndAddScaled checks the in-place mutators.
func TestApplyAndAddScaled(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return v * 2 }))
	requireClose(t, [][]float64{{2, 4}, {6, 8}}, m, 0)

	require.ErrorIs(t, m.Apply(func(_, _ int, _ float64) float64 { return math.Inf(-1) }), matrix.ErrNaNInf)

	w := mustDense(t, [][]float64{{1, 1}, {1, 1}})
	g := mustDense(t, [][]float64{{10, 20}, {30, 40}})
	require.NoError(t, w.AddScaled(-0.1, g))
	requireClose(t, [][]float64{{0, -1}, {-2, -3}}, w, epsTight)

	bad := mustDense(t, [][]float64{{1}})
	require.ErrorIs(t, w.AddScaled(1, bad), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, w.AddScaled(1, nil), matrix.ErrNilMatrix)
}

// TestString renders one bracketed line per row.
func TestString(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
