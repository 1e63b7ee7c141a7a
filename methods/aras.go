// SPDX-License-Identifier: MIT

package methods

import (
	"math"

	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/normalization"
	"github.com/katalvlaran/ifdm/score"
)

// ARAS is the Additive Ratio Assessment method.
type ARAS struct{ base }

// NewARAS defaults: swap normalization, wan_dong_1 score.
func NewARAS(opts ...Option) *ARAS {
	return &ARAS{newBase("aras", true, Options{
		Normalization: normalizer(normalization.Swap),
		Score:         score.WanDong1,
	}, opts)}
}

// Evaluate returns each alternative's score sum relative to the ideal row.
func (a *ARAS) Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return a.run(m, w, types, a.compute)
}

func (a *ARAS) compute(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	cells, err := m.Grid()
	if err != nil {
		return nil, err
	}

	// Stage 1: prepend the ideal row, picked by μ per criterion type.
	ideal := make([]ifs.Value, m.Cols())
	for j := range ideal {
		hi, lo := columnArgs(cells, j)
		if types[j] == matrix.Profit {
			ideal[j] = cells[hi][j]
		} else {
			ideal[j] = cells[lo][j]
		}
	}
	ext, err := matrix.TensorFromValues(append([][]ifs.Value{ideal}, cells...), m.Comps())
	if err != nil {
		return nil, err
	}

	// Stage 2: normalize and weight, then sum scores per row.
	nm, err := a.opts.normalize(ext, types)
	if err != nil {
		return nil, err
	}
	ncells, err := nm.Grid()
	if err != nil {
		return nil, err
	}
	wp := weightPairs(w)
	sums := make([]float64, len(ncells))
	for i, row := range ncells {
		for j, c := range row {
			v := ifs.New(1-math.Pow(1-c.Mu, wp[j][0]), math.Pow(c.Nu, wp[j][1]))
			sums[i] += a.opts.Score.Fn(v)
		}
	}

	// Stage 3: utility degree against the ideal.
	q := make([]float64, m.Rows())
	for i := range q {
		q[i] = sums[i+1] / sums[0]
	}

	return q, nil
}
