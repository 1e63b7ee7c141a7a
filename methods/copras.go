// SPDX-License-Identifier: MIT

package methods

import (
	"math"

	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/score"
)

// COPRAS is the Complex Proportional Assessment method.
type COPRAS struct{ base }

// NewCOPRAS defaults: no normalization, thakur score.
func NewCOPRAS(opts ...Option) *COPRAS {
	return &COPRAS{newBase("copras", true, Options{Score: score.Thakur}, opts)}
}

// Evaluate returns relative significances scaled so the best alternative is 1.
func (c *COPRAS) Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return c.run(m, w, types, c.compute)
}

// compute treats a missing cost (or profit) block as a zero mean.
func (c *COPRAS) compute(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	nm, err := c.opts.normalize(m, types)
	if err != nil {
		return nil, err
	}
	cells, err := nm.Grid()
	if err != nil {
		return nil, err
	}
	profit, cost := matrix.SplitTypes(types)
	wp := weightPairs(w)

	sp := make([]float64, len(cells))
	sr := make([]float64, len(cells))
	var s float64
	for i, row := range cells {
		for j, v := range row {
			mu := math.Sqrt(1 - math.Pow(1-v.Mu*v.Mu, wp[j][0]))
			nu := math.Sqrt(math.Pow(v.Nu*v.Nu, wp[j][1]))
			s = c.opts.Score.Fn(ifs.New(mu, nu))
			if types[j] == matrix.Profit {
				sp[i] += s
			} else {
				sr[i] += s
			}
		}
		if len(profit) > 0 {
			sp[i] /= float64(len(profit))
		}
		if len(cost) > 0 {
			sr[i] /= float64(len(cost))
		}
	}

	var num, den float64
	for _, v := range sr {
		num += math.Exp(v)
		den += 1 / math.Exp(v)
	}
	n := num / den

	q := make([]float64, len(cells))
	best := math.Inf(-1)
	for i := range q {
		q[i] = sp[i] + n/math.Exp(sr[i])
		best = math.Max(best, q[i])
	}
	for i := range q {
		q[i] /= best
	}

	return q, nil
}
