// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxDenseAt   = "At"
	ctxDenseSet  = "Set"
	ctxDenseRow  = "Row"
	ctxDenseFrom = "NewDenseFrom"
)

// Dense is a crisp rows×cols table stored row-major (offset i*cols + j).
// It backs IFS weight rows, one row per criterion. Set rejects NaN and ±Inf
// unless the table was built WithNoValidateNaNInf.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

var _ fmt.Stringer = (*Dense)(nil)

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense allocates a zero rows×cols table.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols are not positive.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(DefaultValidateNaNInf, opts...)

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: o.validateNaNInf}, nil
}

// NewDenseFrom copies rectangular input; every value goes through Set.
//
// Errors:
//   - ErrInvalidDimensions for empty input.
//   - ErrRagged when rows differ in length.
//   - ErrNaNInf for non-finite values under the default policy.
func NewDenseFrom(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxDenseFrom, ErrInvalidDimensions)
	}
	d, err := NewDense(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != d.c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxDenseFrom, i, len(row), d.c, ErrRagged)
		}
		for j, v := range row {
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.r }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.c }

// Shape returns (Rows, Cols).
func (d *Dense) Shape() (rows, cols int) { return d.r, d.c }

func (d *Dense) inRange(row, col int) bool {
	return row >= 0 && row < d.r && col >= 0 && col < d.c
}

// At returns the value at (row, col) or ErrOutOfRange.
func (d *Dense) At(row, col int) (float64, error) {
	if !d.inRange(row, col) {
		return 0, denseErrorf(ctxDenseAt, row, col, ErrOutOfRange)
	}

	return d.data[row*d.c+col], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bad indices.
//   - ErrNaNInf for non-finite v when the policy is on.
func (d *Dense) Set(row, col int, v float64) error {
	if !d.inRange(row, col) {
		return denseErrorf(ctxDenseSet, row, col, ErrOutOfRange)
	}
	if d.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxDenseSet, row, col, ErrNaNInf)
	}
	d.data[row*d.c+col] = v

	return nil
}

// Row returns a copy of row i.
func (d *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.r {
		return nil, denseErrorf(ctxDenseRow, i, 0, ErrOutOfRange)
	}

	return append([]float64(nil), d.data[i*d.c:(i+1)*d.c]...), nil
}

// Clone returns a deep copy with the same numeric policy.
func (d *Dense) Clone() *Dense {
	cp := *d
	cp.data = append([]float64(nil), d.data...)

	return &cp
}

// String renders one bracketed line per row.
func (d *Dense) String() string {
	var b strings.Builder
	for i := 0; i < d.r; i++ {
		vals := make([]string, d.c)
		for j := range vals {
			vals[j] = fmt.Sprintf("%g", d.data[i*d.c+j])
		}
		b.WriteString("[" + strings.Join(vals, ", ") + "]\n")
	}

	return b.String()
}
