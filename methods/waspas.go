// SPDX-License-Identifier: MIT

package methods

import (
	"math"

	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/score"
)

// WASPAS is the Weighted Aggregated Sum Product Assessment method.
type WASPAS struct{ base }

// NewWASPAS defaults: no normalization, chen_1 score, v 0.5.
func NewWASPAS(opts ...Option) *WASPAS {
	return &WASPAS{newBase("waspas", true, Options{Score: score.Chen1}, opts)}
}

// Evaluate returns v·Q1 + (1-v)·Q2 where Q1 scores the IF weighted average
// and Q2 the IF weighted geometric aggregate, both mapped to [0, 1].
func (a *WASPAS) Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return a.run(m, w, types, a.compute)
}

func (a *WASPAS) compute(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	nm, err := a.opts.normalize(m, types)
	if err != nil {
		return nil, err
	}
	cells, err := nm.Grid()
	if err != nil {
		return nil, err
	}
	wp := weightPairs(w)
	f := a.opts.Score.Fn
	v := a.opts.V

	out := make([]float64, len(cells))
	for i, row := range cells {
		sumMu, sumNu, prodMu, prodNu := 1.0, 1.0, 1.0, 1.0
		for j, c := range row {
			sumMu *= math.Pow(1-c.Mu, wp[j][0])
			sumNu *= math.Pow(c.Nu, wp[j][1])
			prodMu *= math.Pow(c.Mu, wp[j][0])
			prodNu *= math.Pow(1-c.Nu, wp[j][1])
		}
		q1 := (f(ifs.New(1-sumMu, sumNu)) + 1) / 2
		q2 := (f(ifs.New(prodMu, 1-prodNu)) + 1) / 2
		out[i] = v*q1 + (1-v)*q2
	}

	return out, nil
}
