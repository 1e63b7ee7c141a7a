// SPDX-License-Identifier: MIT

package methods

import (
	"math"

	"github.com/katalvlaran/ifdm/distance"
	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/normalization"
	"github.com/katalvlaran/ifdm/validator"
)

// CODAS is the Combinative Distance-based Assessment method.
type CODAS struct{ base }

// NewCODAS defaults: swap normalization, euclidean and hamming distances, tau 0.05.
func NewCODAS(opts ...Option) *CODAS {
	return &CODAS{newBase("codas", true, Options{
		Normalization: normalizer(normalization.Swap),
		Distance:      distance.Euclidean,
		Distance2:     distance.Hamming,
	}, opts, validator.RequireMixedTypes())}
}

// Evaluate returns the row sums of the relative assessment matrix.
func (c *CODAS) Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return c.run(m, w, types, c.compute)
}

func (c *CODAS) compute(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	nm, err := c.opts.normalize(m, types)
	if err != nil {
		return nil, err
	}
	cells, err := nm.Grid()
	if err != nil {
		return nil, err
	}

	// Stage 1: IF-weighted matrix (μ·wμ, ν+wν-ν·wν).
	wp := weightPairs(w)
	wm := make([][]ifs.Value, len(cells))
	for i, row := range cells {
		wm[i] = make([]ifs.Value, len(row))
		for j, v := range row {
			wm[i][j] = ifs.New(v.Mu*wp[j][0], v.Nu+wp[j][1]-v.Nu*wp[j][1])
		}
	}

	// Stage 2: negative ideal per criterion.
	neg := make([]ifs.Value, m.Cols())
	for j := range neg {
		mu, nu := wm[0][j].Mu, wm[0][j].Nu
		for i := 1; i < len(wm); i++ {
			if types[j] == matrix.Profit {
				mu, nu = math.Min(mu, wm[i][j].Mu), math.Max(nu, wm[i][j].Nu)
			} else {
				mu, nu = math.Max(mu, wm[i][j].Mu), math.Min(nu, wm[i][j].Nu)
			}
		}
		neg[j] = ifs.New(mu, nu)
	}

	// Stage 3: distances from the negative ideal.
	d1 := make([]float64, len(wm))
	d2 := make([]float64, len(wm))
	for i, row := range wm {
		d1[i] = distance.Sum(c.opts.Distance, row, neg)
		d2[i] = distance.Sum(c.opts.Distance2, row, neg)
	}

	// Stage 4: relative assessment, gated by tau.
	as := make([]float64, len(wm))
	var diff float64
	for i := range wm {
		for k := range wm {
			diff = d1[i] - d1[k]
			as[i] += diff
			if math.Abs(diff) >= c.opts.Tau {
				as[i] += d2[i] - d2[k]
			}
		}
	}

	return as, nil
}
