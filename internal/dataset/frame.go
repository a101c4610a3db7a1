package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Frame is a column-named table of float64 values, the shape score and
// feature files arrive in. Rows are index-aligned across columns and with any
// parallel label vector the caller supplies.
type Frame struct {
	names []string
	cols  map[string][]float64
	rows  int
}

func NewFrame(names []string, rows int) *Frame {
	f := &Frame{
		names: append([]string(nil), names...),
		cols:  make(map[string][]float64, len(names)),
		rows:  rows,
	}
	for _, n := range names {
		f.cols[n] = make([]float64, rows)
	}
	return f
}

// ReadCSV builds a frame from CSV data. The first row names the columns and
// every cell must parse as a float.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)

	headers, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	f := &Frame{
		names: headers,
		cols:  make(map[string][]float64, len(headers)),
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		for i, h := range headers {
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return nil, fmt.Errorf("parse column %q row %d: %w", h, f.rows+1, err)
			}
			f.cols[h] = append(f.cols[h], v)
		}
		f.rows++
	}

	return f, nil
}

func (f *Frame) Rows() int {
	return f.rows
}

func (f *Frame) Names() []string {
	return f.names
}

// Column returns the values of a named column in row order. The returned
// slice is the frame's backing storage; callers must treat it as read-only.
func (f *Frame) Column(name string) ([]float64, error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("frame has no column %q", name)
	}
	return col, nil
}

// SetColumn replaces or adds a column. The values must match the frame's row
// count.
func (f *Frame) SetColumn(name string, values []float64) error {
	if len(values) != f.rows {
		return fmt.Errorf("column %q has %d values, frame has %d rows", name, len(values), f.rows)
	}
	if _, ok := f.cols[name]; !ok {
		f.names = append(f.names, name)
	}
	f.cols[name] = values
	return nil
}

// CheckBoundaries verifies that per-query document counts partition a vector
// of length n exactly. The numeric core does not run this check itself; a
// mismatch there surfaces as a slice-bounds panic.
func CheckBoundaries(queryDocCounts []int, n int) error {
	sum := 0
	for i, c := range queryDocCounts {
		if c <= 0 {
			return fmt.Errorf("query %d has non-positive doc count %d", i, c)
		}
		sum += c
	}
	if sum != n {
		return fmt.Errorf("query doc counts sum to %d, vectors have length %d", sum, n)
	}
	return nil
}
