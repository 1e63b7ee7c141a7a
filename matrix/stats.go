// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column and block reductions over one component plane of a Tensor.
//   - Normalizations and ranking methods share these instead of re-looping.

package matrix

import (
	"fmt"
	"math"
)

const (
	opColumnMax = "ColumnMax"
	opColumnMin = "ColumnMin"
	opBlockMax  = "BlockMax"
	opBlockMin  = "BlockMin"
)

// matrixErrorf wraps an error with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkComp validates the component index against the tensor.
func (t *Tensor) checkComp(k int) error {
	if k < 0 || k >= t.k {
		return ErrOutOfRange
	}

	return nil
}

// columnReduce folds component k of every column with pick.
func (t *Tensor) columnReduce(op string, k int, pick func(a, b float64) float64) ([]float64, error) {
	if err := t.checkComp(k); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out := make([]float64, t.c)
	var i, j int
	for j = 0; j < t.c; j++ {
		out[j] = t.at(0, j, k)
		for i = 1; i < t.r; i++ {
			out[j] = pick(out[j], t.at(i, j, k))
		}
	}

	return out, nil
}

// ColumnMax returns the per-criterion maximum of component k.
// Complexity: O(r*c).
func (t *Tensor) ColumnMax(k int) ([]float64, error) {
	return t.columnReduce(opColumnMax, k, math.Max)
}

// ColumnMin returns the per-criterion minimum of component k.
func (t *Tensor) ColumnMin(k int) ([]float64, error) {
	return t.columnReduce(opColumnMin, k, math.Min)
}

// blockReduce folds component k over every row of the listed columns.
func (t *Tensor) blockReduce(op string, cols []int, k int, pick func(a, b float64) float64) (float64, error) {
	if len(cols) == 0 {
		return 0, matrixErrorf(op, ErrEmpty)
	}
	if err := t.checkComp(k); err != nil {
		return 0, matrixErrorf(op, err)
	}
	for _, j := range cols {
		if j < 0 || j >= t.c {
			return 0, matrixErrorf(op, ErrOutOfRange)
		}
	}
	acc := t.at(0, cols[0], k)
	for _, j := range cols {
		for i := 0; i < t.r; i++ {
			acc = pick(acc, t.at(i, j, k))
		}
	}

	return acc, nil
}

// BlockMax returns the maximum of component k over all rows of the given columns.
//
// Errors:
//   - ErrEmpty when cols is empty; ErrOutOfRange on a bad column or component.
func (t *Tensor) BlockMax(cols []int, k int) (float64, error) {
	return t.blockReduce(opBlockMax, cols, k, math.Max)
}

// BlockMin returns the minimum of component k over all rows of the given columns.
func (t *Tensor) BlockMin(cols []int, k int) (float64, error) {
	return t.blockReduce(opBlockMin, cols, k, math.Min)
}
