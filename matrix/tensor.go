// SPDX-License-Identifier: MIT

// Package matrix - Tensor: alternatives × criteria × components.
//
// Purpose:
//   - Hold an IFS decision matrix in one flat row-major buffer
//     (offset = (i*cols + j)*comps + k).
//   - Bridge raw float storage and ifs.Value through Cell/SetCell/Grid.
//
// Complexity quicksheet:
//   - NewTensor: O(r*c*k); At/Set/Cell: O(1); Clone/ToSlices: O(r*c*k).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ifdm/ifs"
)

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxApply   = "Apply"
	ctxCell    = "Cell"
	ctxSetCell = "SetCell"
	ctxColumn  = "Column"
)

// MaxComponents is the largest supported component count (μ, ν, π).
const MaxComponents = 3

// tensorErrorf wraps an error with a uniform Tensor context and coordinates.
func tensorErrorf(method string, i, j, k int, err error) error {
	return fmt.Errorf("Tensor.%s(%d,%d,%d): %w", method, i, j, k, err)
}

// Tensor is a dense alternatives × criteria × components array.
//   - r: alternatives (rows), c: criteria (columns), k: components per cell.
//   - k == 1 holds crisp values, k == 2 holds (μ, ν), k == 3 holds (μ, ν, π).
type Tensor struct {
	r, c, k        int
	data           []float64
	validateNaNInf bool
}

// NewTensor allocates a zero-filled rows×cols×comps tensor.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols are not positive.
//   - ErrComponents when comps is outside 1..3.
func NewTensor(rows, cols, comps int, opts ...Option) (*Tensor, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if comps < 1 || comps > MaxComponents {
		return nil, fmt.Errorf("NewTensor: comps=%d: %w", comps, ErrComponents)
	}
	o := gatherOptions(DefaultTensorValidateNaNInf, opts...)

	return &Tensor{
		r:              rows,
		c:              cols,
		k:              comps,
		data:           make([]float64, rows*cols*comps),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// TensorFrom copies nested [alternative][criterion][component] input.
// Implementation:
//   - Stage 1: take the shape from cells[0][0]; reject empty input.
//   - Stage 2: check every row and cell against that shape (ErrRagged).
//   - Stage 3: copy values in row-major order.
func TensorFrom(cells [][][]float64, opts ...Option) (*Tensor, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("TensorFrom: %w", ErrInvalidDimensions)
	}
	t, err := NewTensor(len(cells), len(cells[0]), len(cells[0][0]), opts...)
	if err != nil {
		return nil, fmt.Errorf("TensorFrom: %w", err)
	}

	var i, j, k int
	for i = 0; i < t.r; i++ {
		if len(cells[i]) != t.c {
			return nil, fmt.Errorf("TensorFrom: row %d has %d cells, want %d: %w",
				i, len(cells[i]), t.c, ErrRagged)
		}
		for j = 0; j < t.c; j++ {
			if len(cells[i][j]) != t.k {
				return nil, fmt.Errorf("TensorFrom: cell (%d,%d) has %d components, want %d: %w",
					i, j, len(cells[i][j]), t.k, ErrRagged)
			}
			for k = 0; k < t.k; k++ {
				if err = t.Set(i, j, k, cells[i][j][k]); err != nil {
					return nil, fmt.Errorf("TensorFrom: %w", err)
				}
			}
		}
	}

	return t, nil
}

// TensorFromValues builds a tensor from IFS values keeping the first comps
// components of each (μ, ν[, π]).
func TensorFromValues(grid [][]ifs.Value, comps int, opts ...Option) (*Tensor, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("TensorFromValues: %w", ErrInvalidDimensions)
	}
	t, err := NewTensor(len(grid), len(grid[0]), comps, opts...)
	if err != nil {
		return nil, fmt.Errorf("TensorFromValues: %w", err)
	}
	for i := range grid {
		if len(grid[i]) != t.c {
			return nil, fmt.Errorf("TensorFromValues: row %d: %w", i, ErrRagged)
		}
		for j, v := range grid[i] {
			if err = t.SetCell(i, j, v); err != nil {
				return nil, fmt.Errorf("TensorFromValues: %w", err)
			}
		}
	}

	return t, nil
}

// Rows returns the number of alternatives.
func (t *Tensor) Rows() int { return t.r }

// Cols returns the number of criteria.
func (t *Tensor) Cols() int { return t.c }

// Comps returns the number of components per cell.
func (t *Tensor) Comps() int { return t.k }

// Shape returns (rows, cols, comps).
func (t *Tensor) Shape() (rows, cols, comps int) { return t.r, t.c, t.k }

// offset computes the flat offset or returns ErrOutOfRange.
func (t *Tensor) offset(i, j, k int) (int, error) {
	if i < 0 || i >= t.r || j < 0 || j >= t.c || k < 0 || k >= t.k {
		return 0, ErrOutOfRange
	}

	return (i*t.c+j)*t.k + k, nil
}

// at reads without bounds checks; callers iterate inside the shape.
func (t *Tensor) at(i, j, k int) float64 { return t.data[(i*t.c+j)*t.k+k] }

// set writes without bounds or policy checks.
func (t *Tensor) set(i, j, k int, v float64) { t.data[(i*t.c+j)*t.k+k] = v }

// At returns component k of cell (i, j).
func (t *Tensor) At(i, j, k int) (float64, error) {
	off, err := t.offset(i, j, k)
	if err != nil {
		return 0, tensorErrorf(ctxAt, i, j, k, err)
	}

	return t.data[off], nil
}

// Set stores v as component k of cell (i, j).
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf when the policy is on and v is not finite.
func (t *Tensor) Set(i, j, k int, v float64) error {
	off, err := t.offset(i, j, k)
	if err != nil {
		return tensorErrorf(ctxSet, i, j, k, err)
	}
	if t.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return tensorErrorf(ctxSet, i, j, k, ErrNaNInf)
	}
	t.data[off] = v

	return nil
}

// Cell returns cell (i, j) as an IFS value.
// Two components derive π = 1-μ-ν; three components keep the stored π.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrComponents on a crisp tensor.
func (t *Tensor) Cell(i, j int) (ifs.Value, error) {
	if t.k < 2 {
		return ifs.Value{}, tensorErrorf(ctxCell, i, j, 0, ErrComponents)
	}
	if _, err := t.offset(i, j, 0); err != nil {
		return ifs.Value{}, tensorErrorf(ctxCell, i, j, 0, err)
	}

	return t.cell(i, j), nil
}

// cell is the unchecked form of Cell for k >= 2.
func (t *Tensor) cell(i, j int) ifs.Value {
	base := (i*t.c + j) * t.k
	if t.k == 3 {
		return ifs.NewWithPi(t.data[base], t.data[base+1], t.data[base+2])
	}

	return ifs.New(t.data[base], t.data[base+1])
}

// SetCell writes the first Comps() components of v into cell (i, j).
func (t *Tensor) SetCell(i, j int, v ifs.Value) error {
	if _, err := t.offset(i, j, 0); err != nil {
		return tensorErrorf(ctxSetCell, i, j, 0, err)
	}
	comps := v.Components()
	for k := 0; k < t.k; k++ {
		if t.validateNaNInf && (math.IsNaN(comps[k]) || math.IsInf(comps[k], 0)) {
			return tensorErrorf(ctxSetCell, i, j, k, ErrNaNInf)
		}
		t.set(i, j, k, comps[k])
	}

	return nil
}

// Grid returns every cell as an IFS value, [alternative][criterion].
//
// Errors:
//   - ErrComponents on a crisp tensor.
func (t *Tensor) Grid() ([][]ifs.Value, error) {
	if t.k < 2 {
		return nil, fmt.Errorf("Tensor.Grid: comps=%d: %w", t.k, ErrComponents)
	}
	out := make([][]ifs.Value, t.r)
	for i := 0; i < t.r; i++ {
		out[i] = make([]ifs.Value, t.c)
		for j := 0; j < t.c; j++ {
			out[i][j] = t.cell(i, j)
		}
	}

	return out, nil
}

// Column returns component k of criterion j for every alternative.
func (t *Tensor) Column(j, k int) ([]float64, error) {
	if _, err := t.offset(0, j, k); err != nil {
		return nil, tensorErrorf(ctxColumn, 0, j, k, err)
	}
	out := make([]float64, t.r)
	for i := 0; i < t.r; i++ {
		out[i] = t.at(i, j, k)
	}

	return out, nil
}

// ToSlices returns a nested copy [alternative][criterion][component].
func (t *Tensor) ToSlices() [][][]float64 {
	out := make([][][]float64, t.r)
	for i := 0; i < t.r; i++ {
		out[i] = make([][]float64, t.c)
		for j := 0; j < t.c; j++ {
			base := (i*t.c + j) * t.k
			out[i][j] = append([]float64(nil), t.data[base:base+t.k]...)
		}
	}

	return out
}

// Clone returns a deep copy with the same numeric policy.
func (t *Tensor) Clone() *Tensor {
	cp := make([]float64, len(t.data))
	copy(cp, t.data)

	return &Tensor{r: t.r, c: t.c, k: t.k, data: cp, validateNaNInf: t.validateNaNInf}
}

// Apply replaces each element with f(i,j,k,v) in-place, in row-major order.
// Early error aborts; elements written before the error remain updated.
func (t *Tensor) Apply(f func(i, j, k int, v float64) float64) error {
	var i, j, k int
	var nv float64
	for i = 0; i < t.r; i++ {
		for j = 0; j < t.c; j++ {
			for k = 0; k < t.k; k++ {
				nv = f(i, j, k, t.at(i, j, k))
				if t.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
					return tensorErrorf(ctxApply, i, j, k, ErrNaNInf)
				}
				t.set(i, j, k, nv)
			}
		}
	}

	return nil
}

// String renders one line per alternative, cells as (μ, ν[, π]).
func (t *Tensor) String() string {
	var b []byte
	for i := 0; i < t.r; i++ {
		b = append(b, '[')
		for j := 0; j < t.c; j++ {
			b = append(b, '(')
			for k := 0; k < t.k; k++ {
				b = append(b, fmt.Sprintf("%g", t.at(i, j, k))...)
				if k+1 < t.k {
					b = append(b, ", "...)
				}
			}
			b = append(b, ')')
			if j+1 < t.c {
				b = append(b, ", "...)
			}
		}
		b = append(b, "]\n"...)
	}

	return string(b)
}
