// SPDX-License-Identifier: MIT

package methods

import (
	"math"

	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/normalization"
	"github.com/katalvlaran/ifdm/score"
)

// EDAS is the Evaluation based on Distance from Average Solution method.
type EDAS struct{ base }

// NewEDAS defaults: swap normalization, liu_wang score.
func NewEDAS(opts ...Option) *EDAS {
	return &EDAS{newBase("edas", true, Options{
		Normalization: normalizer(normalization.Swap),
		Score:         score.LiuWang,
	}, opts)}
}

// Evaluate returns the mean of the normalized positive distance and the
// complement of the normalized negative distance.
func (e *EDAS) Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return e.run(m, w, types, e.compute)
}

func (e *EDAS) compute(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	nm, err := e.opts.normalize(m, types)
	if err != nil {
		return nil, err
	}
	cells, err := nm.Grid()
	if err != nil {
		return nil, err
	}
	rows, cols := nm.Rows(), nm.Cols()
	f := e.opts.Score.Fn

	// Stage 1: geometric average solution scores.
	avg := make([]float64, cols)
	for j := range avg {
		pm, pn := 1.0, 1.0
		for i := 0; i < rows; i++ {
			pm *= 1 - cells[i][j].Mu
			pn *= cells[i][j].Nu
		}
		avg[j] = f(ifs.New(1-math.Pow(pm, 1/float64(rows)), math.Pow(pn, 1/float64(rows))))
	}

	// Stage 2: weighted positive and negative distances from average.
	ws := e.opts.scalarWeights(w)
	sp := make([]float64, rows)
	sn := make([]float64, rows)
	var s float64
	for i, row := range cells {
		for j, v := range row {
			s = f(v)
			sp[i] += ws[j] * math.Max(0, s-avg[j]) / avg[j]
			sn[i] += ws[j] * math.Max(0, avg[j]-s) / avg[j]
		}
	}

	// Stage 3: normalize; an all-zero vector stays zero.
	_, maxP := minMax(sp)
	_, maxN := minMax(sn)
	out := make([]float64, rows)
	var nsp, nsn float64
	for i := range out {
		nsp, nsn = 0, 0
		if maxP != 0 {
			nsp = sp[i] / maxP
		}
		if maxN != 0 {
			nsn = 1 - sn[i]/maxN
		}
		out[i] = (nsp + nsn) / 2
	}

	return out, nil
}
