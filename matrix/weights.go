// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ifdm/ifs"
)

// Weights is a criterion weight vector in one of two forms:
//   - crisp: one float per criterion (rank-1);
//   - fuzzy: one IFS row (μ, ν) or (μ, ν, π) per criterion, stored as an n×2|3 Dense (rank-2).
//
// The zero value is an empty crisp vector.
type Weights struct {
	crisp []float64
	fuzzy *Dense
}

// CrispWeights copies w into a crisp weight vector.
//
// Errors:
//   - ErrEmpty when w is empty.
func CrispWeights(w []float64) (Weights, error) {
	if len(w) == 0 {
		return Weights{}, fmt.Errorf("CrispWeights: %w", ErrEmpty)
	}

	return Weights{crisp: append([]float64(nil), w...)}, nil
}

// FuzzyWeights copies IFS weight rows, one per criterion.
//
// Errors:
//   - ErrEmpty when rows is empty.
//   - ErrComponents when rows have fewer than 2 or more than 3 values.
//   - ErrRagged when rows differ in length.
//   - ErrNaNInf for non-finite values.
func FuzzyWeights(rows [][]float64) (Weights, error) {
	if len(rows) == 0 {
		return Weights{}, fmt.Errorf("FuzzyWeights: %w", ErrEmpty)
	}
	if n := len(rows[0]); n < 2 || n > MaxComponents {
		return Weights{}, fmt.Errorf("FuzzyWeights: row length %d: %w", n, ErrComponents)
	}
	d, err := NewDenseFrom(rows)
	if err != nil {
		return Weights{}, fmt.Errorf("FuzzyWeights: %w", err)
	}

	return Weights{fuzzy: d}, nil
}

// IsCrisp reports whether the weights are rank-1.
func (w Weights) IsCrisp() bool { return w.fuzzy == nil }

// Len returns the number of criteria covered.
func (w Weights) Len() int {
	if w.fuzzy != nil {
		return w.fuzzy.Rows()
	}

	return len(w.crisp)
}

// Comps returns the fuzzy row width (2 or 3), or 1 for crisp weights.
func (w Weights) Comps() int {
	if w.fuzzy != nil {
		return w.fuzzy.Cols()
	}

	return 1
}

// Pair returns the (μ-weight, ν-weight) pair of criterion j.
// Crisp weights broadcast to (w, w). j must be in range.
func (w Weights) Pair(j int) (mu, nu float64) {
	if w.fuzzy == nil {
		return w.crisp[j], w.crisp[j]
	}
	base := j * w.fuzzy.c

	return w.fuzzy.data[base], w.fuzzy.data[base+1]
}

// Value returns criterion j's weight as an IFS value.
// Crisp weights read as New(w, w); two-column rows derive π.
func (w Weights) Value(j int) ifs.Value {
	if w.fuzzy == nil {
		return ifs.New(w.crisp[j], w.crisp[j])
	}
	base := j * w.fuzzy.c
	if w.fuzzy.c == 3 {
		return ifs.NewWithPi(w.fuzzy.data[base], w.fuzzy.data[base+1], w.fuzzy.data[base+2])
	}

	return ifs.New(w.fuzzy.data[base], w.fuzzy.data[base+1])
}

// Crisp returns a copy of the crisp vector, or nil for fuzzy weights.
func (w Weights) Crisp() []float64 {
	if w.fuzzy != nil {
		return nil
	}

	return append([]float64(nil), w.crisp...)
}

// Rows returns a copy of the fuzzy rows, or nil for crisp weights.
func (w Weights) Rows() [][]float64 {
	if w.fuzzy == nil {
		return nil
	}
	out := make([][]float64, w.fuzzy.Rows())
	for j := range out {
		out[j], _ = w.fuzzy.Row(j)
	}

	return out
}

// Sum returns the total of crisp weights (0 for fuzzy weights).
func (w Weights) Sum() float64 {
	var s float64
	for _, v := range w.crisp {
		s += v
	}

	return s
}

// Reduce returns crisp weights unchanged (copied) and maps each fuzzy
// row to a scalar with f, usually a score function.
func (w Weights) Reduce(f func(ifs.Value) float64) []float64 {
	if w.fuzzy == nil {
		return w.Crisp()
	}
	out := make([]float64, w.Len())
	for j := range out {
		out[j] = f(w.Value(j))
	}

	return out
}
