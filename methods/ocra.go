// SPDX-License-Identifier: MIT

package methods

import (
	"math"

	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/score"
	"github.com/katalvlaran/ifdm/validator"
)

// OCRA is the Operational Competitiveness Rating method.
type OCRA struct{ base }

// NewOCRA defaults: chen_1 score. Weights must be crisp.
func NewOCRA(opts ...Option) *OCRA {
	return &OCRA{newBase("ocra", true, Options{Score: score.Chen1}, opts, validator.RequireCrispWeights())}
}

// Evaluate returns the overall preference rating, shifted to start at 0.
func (o *OCRA) Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return o.run(m, w, types, o.compute)
}

// compute scores cells directly; there is no normalization step.
// The profit rating subtracts min/(max-min) from the raw score, so after
// the shift to zero it equals the weighted score sum up to a constant.
func (o *OCRA) compute(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	cells, err := m.Grid()
	if err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	ws := w.Crisp()

	s := make([][]float64, rows)
	for i, row := range cells {
		s[i] = make([]float64, cols)
		for j, v := range row {
			s[i][j] = o.opts.Score.Fn(v)
		}
	}

	// Stage 1: linear ratings per block.
	p := make([]float64, rows)
	q := make([]float64, rows)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := range col {
			col[i] = s[i][j]
		}
		lo, hi := minMax(col)
		for i, v := range col {
			if types[j] == matrix.Profit {
				p[i] += ws[j] * (v - lo/(hi-lo))
			} else {
				q[i] += ws[j] * (hi - v) / (hi - lo)
			}
		}
	}

	// Stage 2: shift both ratings and their sum to start at 0.
	shift(p)
	shift(q)
	out := make([]float64, rows)
	for i := range out {
		out[i] = p[i] + q[i]
	}
	shift(out)

	return out, nil
}

// shift subtracts the minimum of x from every element.
func shift(x []float64) {
	lo := math.Inf(1)
	for _, v := range x {
		lo = math.Min(lo, v)
	}
	for i := range x {
		x[i] -= lo
	}
}
