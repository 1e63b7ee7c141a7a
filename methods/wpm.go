// SPDX-License-Identifier: MIT

package methods

import (
	"math"

	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/score"
)

// WPM is the Weighted Product Model.
type WPM struct{ base }

// NewWPM defaults: no normalization, chen_1 score.
func NewWPM(opts ...Option) *WPM {
	return &WPM{newBase("wpm", true, Options{Score: score.Chen1}, opts)}
}

// Evaluate scores the per-alternative product of (μ^wμ, 1-(1-ν)^wν).
func (p *WPM) Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return p.run(m, w, types, p.compute)
}

func (p *WPM) compute(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return weightedModel(p.opts, m, w, types, true)
}

// weightedModel scores one aggregate per alternative. The product form folds
// (μ^wμ, 1-(1-ν)^wν) by multiplication (WPM); the sum form folds
// (1-(1-μ)^wμ, ν^wν) by addition (WSM).
func weightedModel(o Options, m *matrix.Tensor, w matrix.Weights, types []int, product bool) ([]float64, error) {
	nm, err := o.normalize(m, types)
	if err != nil {
		return nil, err
	}
	cells, err := nm.Grid()
	if err != nil {
		return nil, err
	}
	wp := weightPairs(w)

	out := make([]float64, len(cells))
	var mu, nu float64
	for i, row := range cells {
		if product {
			mu, nu = 1, 1
		} else {
			mu, nu = 0, 0
		}
		for j, c := range row {
			if product {
				mu *= math.Pow(c.Mu, wp[j][0])
				nu *= 1 - math.Pow(1-c.Nu, wp[j][1])
			} else {
				mu += 1 - math.Pow(1-c.Mu, wp[j][0])
				nu += math.Pow(c.Nu, wp[j][1])
			}
		}
		out[i] = o.Score.Fn(ifs.New(mu, nu))
	}

	return out, nil
}
