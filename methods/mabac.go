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

// MABAC is the Multi-Attributive Border Approximation area Comparison method.
type MABAC struct{ base }

// NewMABAC defaults: swap normalization, luo distance, liu_wang score, p 2.25, g 0.88.
func NewMABAC(opts ...Option) *MABAC {
	return &MABAC{newBase("mabac", true, Options{
		Normalization: normalizer(normalization.Swap),
		Distance:      distance.Luo,
		Score:         score.LiuWang,
	}, opts)}
}

// Evaluate returns the summed signed distances from the border approximation area.
func (b *MABAC) Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return b.run(m, w, types, b.compute)
}

func (b *MABAC) compute(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	nm, err := b.opts.normalize(m, types)
	if err != nil {
		return nil, err
	}
	cells, err := nm.Grid()
	if err != nil {
		return nil, err
	}
	rows, cols := nm.Rows(), nm.Cols()
	wp := weightPairs(w)

	// Stage 1: IF weighted geometric matrix (μ^wμ, 1-(1-ν)^wν).
	wm := make([][]ifs.Value, rows)
	for i, row := range cells {
		wm[i] = make([]ifs.Value, cols)
		for j, v := range row {
			wm[i][j] = ifs.New(math.Pow(v.Mu, wp[j][0]), 1-math.Pow(1-v.Nu, wp[j][1]))
		}
	}

	// Stage 2: border approximation area; its hesitancy is stored as 0.
	border := make([]ifs.Value, cols)
	for j := range border {
		pm, pn := 1.0, 1.0
		for i := 0; i < rows; i++ {
			pm *= wm[i][j].Mu
			pn *= 1 - wm[i][j].Nu
		}
		border[j] = ifs.NewWithPi(math.Pow(pm, 1/float64(rows)), 1-math.Pow(pn, 1/float64(rows)), 0)
	}

	// Stage 3: signed distance per cell.
	f := b.opts.Score.Fn
	out := make([]float64, rows)
	var d float64
	for i, row := range wm {
		for j, v := range row {
			d = math.Pow(distance.Scale(b.opts.Distance, b.opts.Distance.Fn(v, border[j]), cols), b.opts.G)
			if f(v) > f(border[j]) {
				out[i] += d
			} else {
				out[i] -= b.opts.P * d
			}
		}
	}

	return out, nil
}
