// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so callers can grep logs.
// Context is attached with fmt.Errorf("ctx: %w", ErrX); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set/Cell) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrComponents indicates a component count outside 1..3, or an IFS read
	// from a crisp (single-component) tensor.
	ErrComponents = errors.New("matrix: invalid number of components")

	// ErrRagged indicates nested input whose rows or cells differ in length.
	ErrRagged = errors.New("matrix: ragged input")

	// ErrEmpty indicates an empty input where at least one element is required.
	ErrEmpty = errors.New("matrix: empty input")
)
