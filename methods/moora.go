// SPDX-License-Identifier: MIT

package methods

import (
	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/score"
	"github.com/katalvlaran/ifdm/validator"
)

// MOORA is the Multi-Objective Optimization on the basis of Ratio Analysis method.
type MOORA struct{ base }

// NewMOORA defaults: no normalization, zhang_xu_2 score.
func NewMOORA(opts ...Option) *MOORA {
	return &MOORA{newBase("moora", true, Options{Score: score.ZhangXu2}, opts, validator.RequireMixedTypes())}
}

// Evaluate returns the profit block score minus the cost block score.
func (o *MOORA) Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return o.run(m, w, types, o.compute)
}

func (o *MOORA) compute(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	nm, err := o.opts.normalize(m, types)
	if err != nil {
		return nil, err
	}
	cells, err := nm.Grid()
	if err != nil {
		return nil, err
	}
	profit, cost := matrix.SplitTypes(types)
	wp := weightPairs(w)
	f := o.opts.Score.Fn

	out := make([]float64, len(cells))
	for i, row := range cells {
		out[i] = f(blockSum(row, wp, profit)) - f(blockSum(row, wp, cost))
	}

	return out, nil
}

// blockSum weights the cells of cols with (μ·wμ, ν+wν-ν·wν) and folds them
// with the algebraic sum μ = a+b-ab, ν = a·b. cols must not be empty.
func blockSum(row []ifs.Value, wp [][2]float64, cols []int) ifs.Value {
	var mu, nu, a, b float64
	for k, j := range cols {
		a = row[j].Mu * wp[j][0]
		b = row[j].Nu + wp[j][1] - row[j].Nu*wp[j][1]
		if k == 0 {
			mu, nu = a, b
			continue
		}
		mu = mu + a - mu*a
		nu *= b
	}

	return ifs.New(mu, nu)
}
