// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
)

const (
	methodRandomIFSMatrix    = "RandomIFSMatrix"
	methodRandomWeights      = "RandomWeights"
	methodRandomFuzzyWeights = "RandomFuzzyWeights"
	methodRandomTypes        = "RandomTypes"

	minDimension = 1
)

// RandomIFSMatrix returns an m×n tensor of independently sampled IFS cells.
// Cells are drawn row by row, left to right, so a fixed seed fixes the matrix.
//
// Complexity: O(m·n) expected draws (acceptance rate 1/2).
func RandomIFSMatrix(m, n int, opts ...Option) (*matrix.Tensor, error) {
	if m < minDimension || n < minDimension {
		return nil, fmt.Errorf("%s: m=%d n=%d: %w", methodRandomIFSMatrix, m, n, ErrTooFew)
	}
	cfg := newBuilderConfig(opts...)

	t, err := matrix.NewTensor(m, n, cfg.comps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomIFSMatrix, err)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if err = t.SetCell(i, j, cfg.sample()); err != nil {
				return nil, fmt.Errorf("%s: %w", methodRandomIFSMatrix, err)
			}
		}
	}

	return t, nil
}

// RandomWeights returns n crisp weights drawn from U(0,1] and rescaled to sum to 1.
func RandomWeights(n int, opts ...Option) (matrix.Weights, error) {
	if n < minDimension {
		return matrix.Weights{}, fmt.Errorf("%s: n=%d: %w", methodRandomWeights, n, ErrTooFew)
	}
	cfg := newBuilderConfig(opts...)

	w := make([]float64, n)
	var sum float64
	for j := range w {
		w[j] = 1 - cfg.rng.Float64() // (0,1]: the sum is never zero
		sum += w[j]
	}
	for j := range w {
		w[j] /= sum
	}

	return matrix.CrispWeights(w)
}

// RandomFuzzyWeights returns one sampled IFS weight per criterion.
func RandomFuzzyWeights(n int, opts ...Option) (matrix.Weights, error) {
	if n < minDimension {
		return matrix.Weights{}, fmt.Errorf("%s: n=%d: %w", methodRandomFuzzyWeights, n, ErrTooFew)
	}
	cfg := newBuilderConfig(opts...)

	rows := make([][]float64, n)
	for j := range rows {
		c := cfg.sample().Components()
		rows[j] = append([]float64(nil), c[:cfg.comps]...)
	}

	return matrix.FuzzyWeights(rows)
}

// RandomTypes returns n criterion markers. For n ≥ 2 at least one Profit and
// one Cost are present, so the result satisfies mixed-type checks.
func RandomTypes(n int, opts ...Option) ([]int, error) {
	if n < minDimension {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomTypes, n, ErrTooFew)
	}
	cfg := newBuilderConfig(opts...)

	types := make([]int, n)
	for j := range types {
		types[j] = matrix.Profit
		if cfg.rng.Intn(2) == 0 {
			types[j] = matrix.Cost
		}
	}
	if n >= 2 {
		// Force one of each kind at two distinct random positions.
		p := cfg.rng.Perm(n)
		types[p[0]], types[p[1]] = matrix.Profit, matrix.Cost
	}

	return types, nil
}

// sample draws (μ, ν) until μ+ν ≤ 1.
func (c builderConfig) sample() ifs.Value {
	for {
		mu, nu := c.rng.Float64(), c.rng.Float64()
		if mu+nu <= 1 {
			return ifs.New(mu, nu)
		}
	}
}
