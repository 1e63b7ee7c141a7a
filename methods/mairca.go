// SPDX-License-Identifier: MIT

package methods

import (
	"math"

	"github.com/katalvlaran/ifdm/distance"
	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/normalization"
	"github.com/katalvlaran/ifdm/score"
)

// MAIRCA is the Multi-Attributive Ideal-Real Comparative Analysis method.
type MAIRCA struct{ base }

// NewMAIRCA defaults: minmax normalization, normalized_euclidean distance, liu_wang score.
func NewMAIRCA(opts ...Option) *MAIRCA {
	return &MAIRCA{newBase("mairca", true, Options{
		Normalization: normalizer(normalization.MinMax),
		Distance:      distance.NormalizedEuclidean,
		Score:         score.LiuWang,
	}, opts)}
}

// Evaluate returns the total gap between theoretical and real ratings.
func (a *MAIRCA) Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return a.run(m, w, types, a.compute)
}

var (
	fullMembership    = ifs.NewWithPi(1, 0, 0)
	fullNonMembership = ifs.NewWithPi(0, 1, 0)
)

// compute normalizes in one of two places: min-max rescales the closeness
// coefficients, every other normalization is applied to the distance table.
func (a *MAIRCA) compute(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	cells, err := m.Grid()
	if err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	dm := a.opts.Distance

	// Stage 1: distances to (1,0,0) and (0,1,0).
	table, err := matrix.NewTensor(rows, cols, 2)
	if err != nil {
		return nil, err
	}
	for i, row := range cells {
		for j, v := range row {
			_ = table.Set(i, j, 0, distance.Scale(dm, dm.Fn(v, fullMembership), cols))
			_ = table.Set(i, j, 1, distance.Scale(dm, dm.Fn(v, fullNonMembership), cols))
		}
	}
	minmax := a.opts.Normalization != nil && a.opts.Normalization.Kind == normalization.KindMinMax
	if !minmax {
		if table, err = a.opts.normalize(table, types); err != nil {
			return nil, err
		}
	}

	// Stage 2: closeness coefficients d⁻/(d⁻+d⁺).
	cw, err := matrix.NewTensor(rows, cols, 1)
	if err != nil {
		return nil, err
	}
	var dPlus, dMinus float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dPlus, _ = table.At(i, j, 0)
			dMinus, _ = table.At(i, j, 1)
			_ = cw.Set(i, j, 0, dMinus/(dMinus+dPlus))
		}
	}
	if minmax {
		if cw, err = a.opts.Normalization.Apply(cw, types); err != nil {
			return nil, err
		}
	}

	// Stage 3: theoretical ratings from the best weighted column entry.
	ws := a.opts.scalarWeights(w)
	theory := make([]float64, cols)
	var v float64
	for j := range theory {
		theory[j] = math.Inf(-1)
		for i := 0; i < rows; i++ {
			v, _ = cw.At(i, j, 0)
			theory[j] = math.Max(theory[j], v*ws[j]/float64(rows))
		}
	}

	// Stage 4: gap = theoretical - real, summed per alternative.
	out := make([]float64, rows)
	for i := range out {
		for j := 0; j < cols; j++ {
			v, _ = cw.At(i, j, 0)
			out[i] += theory[j] - v*theory[j]
		}
	}

	return out, nil
}
