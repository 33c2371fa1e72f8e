// SPDX-License-Identifier: MIT

// Package dataset reads and writes the CSV files consumed by the hydroml CLI.
//
// A file is a comma-separated table of numbers. The first record is treated
// as a header when any of its fields fails to parse as a number. Lines
// starting with '#' are comments. Every record must have the same number of
// fields.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hydroml/matrix"
)

// Table is a parsed numeric CSV.
type Table struct {
	Header []string // nil when the file has no header row
	Rows   [][]float64
}

// Read parses a numeric CSV from r.
//
// Errors:
//   - ErrEmpty when no data record remains after the header.
//   - ErrColumn (with line and column) for a non-numeric or non-finite field.
//   - the csv package's errors for malformed or ragged records.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("Read: %w", ErrEmpty)
	}

	t := &Table{}
	if !numeric(records[0]) {
		t.Header = records[0]
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("Read: %w", ErrEmpty)
	}

	t.Rows = make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, field := range rec {
			if row[j], err = parse(field); err != nil {
				return nil, fmt.Errorf("Read: record %d column %d (%q): %w", i+1, j, field, ErrColumn)
			}
		}
		t.Rows[i] = row
	}

	return t, nil
}

// Column returns the values of column j.
func (t *Table) Column(j int) ([]float64, error) {
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("Column: %w", ErrEmpty)
	}
	if j < 0 || j >= len(t.Rows[0]) {
		return nil, fmt.Errorf("Column(%d) of %d: %w", j, len(t.Rows[0]), ErrColumn)
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[j]
	}

	return out, nil
}

// Index returns the position of a header name, or ErrColumn.
func (t *Table) Index(name string) (int, error) {
	for j, h := range t.Header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return j, nil
		}
	}

	return -1, fmt.Errorf("Index(%q): %w", name, ErrColumn)
}

// Matrix returns the rows as a Dense matrix.
func (t *Table) Matrix() (*matrix.Dense, error) {
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("Matrix: %w", ErrEmpty)
	}
	m, err := matrix.NewDenseFrom(t.Rows)
	if err != nil {
		return nil, fmt.Errorf("Matrix: %w", err)
	}

	return m, nil
}

// ReadSeries reads column j of the CSV at path.
func ReadSeries(path string, j int) ([]float64, error) {
	t, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadSeries: %w", err)
	}
	series, err := t.Column(j)
	if err != nil {
		return nil, fmt.Errorf("ReadSeries(%s): %w", path, err)
	}

	return series, nil
}

// ReadMatrix reads every column of the CSV at path.
func ReadMatrix(path string) (*matrix.Dense, error) {
	t, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %w", err)
	}
	m, err := t.Matrix()
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix(%s): %w", path, err)
	}

	return m, nil
}

// WriteSeries writes values as a one-column CSV under header (skipped when empty).
func WriteSeries(w io.Writer, header string, values []float64) error {
	rows := make([][]float64, len(values))
	for i, v := range values {
		rows[i] = []float64{v}
	}
	var h []string
	if header != "" {
		h = []string{header}
	}

	return write(w, h, rows)
}

// WriteMatrix writes the rows of x as CSV under header (skipped when nil).
func WriteMatrix(w io.Writer, header []string, x *matrix.Dense) error {
	if err := matrix.ValidateNotNil(x); err != nil {
		return fmt.Errorf("WriteMatrix: %w", err)
	}
	if header != nil && len(header) != x.Cols() {
		return fmt.Errorf("WriteMatrix: %d names for %d columns: %w", len(header), x.Cols(), ErrColumn)
	}
	rows := make([][]float64, x.Rows())
	var err error
	for i := range rows {
		if rows[i], err = x.Row(i); err != nil {
			return fmt.Errorf("WriteMatrix: %w", err)
		}
	}

	return write(w, header, rows)
}

func write(w io.Writer, header []string, rows [][]float64) error {
	cw := csv.NewWriter(w)
	if header != nil {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	var rec []string
	for _, row := range rows {
		rec = rec[:0]
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func readFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

func numeric(rec []string) bool {
	for _, field := range rec {
		if _, err := parse(field); err != nil {
			return false
		}
	}

	return true
}

// parse accepts finite numbers only; ParseFloat alone would let NaN and Inf through.
func parse(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrColumn
	}

	return v, nil
}
