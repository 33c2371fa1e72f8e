// SPDX-License-Identifier: MIT

package dataset_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/hydroml/dataset"
	"github.com/katalvlaran/hydroml/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDetectsHeader(t *testing.T) {
	tbl, err := dataset.Read(strings.NewReader("# sensor dump\nflow, pressure\n1.5,2\n3,-4e1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"flow", "pressure"}, tbl.Header)
	assert.Equal(t, [][]float64{{1.5, 2}, {3, -40}}, tbl.Rows)

	j, err := tbl.Index("Pressure")
	require.NoError(t, err)
	col, err := tbl.Column(j)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, -40}, col)

	_, err = tbl.Index("temp")
	require.ErrorIs(t, err, dataset.ErrColumn)
	_, err = tbl.Column(2)
	require.ErrorIs(t, err, dataset.ErrColumn)
}

func TestReadWithoutHeader(t *testing.T) {
	tbl, err := dataset.Read(strings.NewReader("1\n2\n3\n"))
	require.NoError(t, err)
	assert.Nil(t, tbl.Header)

	m, err := tbl.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 1, m.Cols())
}

func TestReadErrors(t *testing.T) {
	_, err := dataset.Read(strings.NewReader(""))
	require.ErrorIs(t, err, dataset.ErrEmpty)
	_, err = dataset.Read(strings.NewReader("a,b\n"))
	require.ErrorIs(t, err, dataset.ErrEmpty)
	_, err = dataset.Read(strings.NewReader("1,2\n3,x\n"))
	require.ErrorIs(t, err, dataset.ErrColumn)
	_, err = dataset.Read(strings.NewReader("1,2\n3\n"))
	require.ErrorIs(t, err, csv.ErrFieldCount)

	for _, field := range []string{"NaN", "inf", "-Inf", "1e400"} {
		_, err = dataset.Read(strings.NewReader("value\n1\n" + field + "\n"))
		require.ErrorIs(t, err, dataset.ErrColumn, field)
	}
}

func TestReadSeriesRejectsNonFinite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")
	require.NoError(t, os.WriteFile(path, []byte("value\n1\n2\nNaN\n"), 0o600))
	_, err := dataset.ReadSeries(path, 0)
	require.ErrorIs(t, err, dataset.ErrColumn)
}

func TestWriteThenReadFiles(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	require.NoError(t, dataset.WriteSeries(&buf, "value", []float64{0.25, 1, -3}))
	assert.Equal(t, "value\n0.25\n1\n-3\n", buf.String())
	seriesPath := filepath.Join(dir, "series.csv")
	require.NoError(t, os.WriteFile(seriesPath, buf.Bytes(), 0o600))

	series, err := dataset.ReadSeries(seriesPath, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 1, -3}, series)
	_, err = dataset.ReadSeries(seriesPath, 1)
	require.ErrorIs(t, err, dataset.ErrColumn)

	x, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, dataset.WriteMatrix(&buf, nil, x))
	assert.Equal(t, "1,2\n3,4\n", buf.String())
	require.ErrorIs(t, dataset.WriteMatrix(&buf, []string{"only"}, x), dataset.ErrColumn)

	matrixPath := filepath.Join(dir, "matrix.csv")
	require.NoError(t, os.WriteFile(matrixPath, buf.Bytes(), 0o600))
	back, err := dataset.ReadMatrix(matrixPath)
	require.NoError(t, err)
	assert.Equal(t, x.ToRows(), back.ToRows())

	_, err = dataset.ReadMatrix(filepath.Join(dir, "absent.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
