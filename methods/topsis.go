// SPDX-License-Identifier: MIT

package methods

import (
	"github.com/katalvlaran/ifdm/distance"
	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/validator"
)

// TOPSIS is the Technique for Order Preference by Similarity to Ideal Solution.
type TOPSIS struct{ base }

// NewTOPSIS defaults: no normalization, normalized_euclidean distance.
func NewTOPSIS(opts ...Option) *TOPSIS {
	return &TOPSIS{newBase("topsis", true, Options{Distance: distance.NormalizedEuclidean}, opts,
		validator.RequireMixedTypes())}
}

// Evaluate returns the relative closeness d⁻/(d⁺+d⁻).
func (t *TOPSIS) Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return t.run(m, w, types, t.compute)
}

func (t *TOPSIS) compute(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	nm, err := t.opts.normalize(m, types)
	if err != nil {
		return nil, err
	}
	cells, err := nm.Grid()
	if err != nil {
		return nil, err
	}
	wp := weightPairs(w)

	wm := make([][]ifs.Value, len(cells))
	for i, row := range cells {
		wm[i] = make([]ifs.Value, len(row))
		for j, v := range row {
			wm[i][j] = ifs.New(v.Mu*wp[j][0], v.Nu+wp[j][1]-v.Nu*wp[j][1])
		}
	}

	// Ideal solutions are whole cells picked by μ.
	pos := make([]ifs.Value, nm.Cols())
	neg := make([]ifs.Value, nm.Cols())
	for j := range pos {
		hi, lo := columnArgs(wm, j)
		if types[j] == matrix.Profit {
			pos[j], neg[j] = wm[hi][j], wm[lo][j]
		} else {
			pos[j], neg[j] = wm[lo][j], wm[hi][j]
		}
	}

	out := make([]float64, len(wm))
	var dPlus, dMinus float64
	for i, row := range wm {
		dPlus = distance.Sum(t.opts.Distance, row, pos)
		dMinus = distance.Sum(t.opts.Distance, row, neg)
		out[i] = dMinus / (dPlus + dMinus)
	}

	return out, nil
}
