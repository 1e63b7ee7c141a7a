// SPDX-License-Identifier: MIT

package methods

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ifdm/distance"
	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/validator"
)

// VIKOR is the VIseKriterijumska Optimizacija I Kompromisno Resenje method.
// Lower values are better for all three of its indices.
type VIKOR struct {
	base
	last VIKORResult
}

// VIKORResult holds group utility S, individual regret R and compromise Q.
type VIKORResult struct {
	S, R, Q []float64
}

// NewVIKOR defaults: no normalization, hamming distance, v 0.5. Weights must be crisp.
func NewVIKOR(opts ...Option) *VIKOR {
	return &VIKOR{base: newBase("vikor", false, Options{Distance: distance.Hamming}, opts,
		validator.RequireCrispWeights())}
}

// Evaluate returns the compromise index Q.
func (v *VIKOR) Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	res, err := v.Compromise(m, w, types)
	if err != nil {
		return nil, err
	}

	return res.Q, nil
}

// Compromise returns S, R and Q; Rank and RankAll use the cached result.
func (v *VIKOR) Compromise(m *matrix.Tensor, w matrix.Weights, types []int) (VIKORResult, error) {
	var res VIKORResult
	_, err := v.run(m, w, types, func(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
		var err error
		res, err = v.compute(m, w, types)
		return res.Q, err
	})
	if err != nil {
		return VIKORResult{}, err
	}
	v.last = res

	return VIKORResult{
		S: append([]float64(nil), res.S...),
		R: append([]float64(nil), res.R...),
		Q: append([]float64(nil), res.Q...),
	}, nil
}

// RankAll ranks S, R and Q in ascending order.
func (v *VIKOR) RankAll() (s, r, q []float64, err error) {
	if v.state != stateEvaluated {
		return nil, nil, nil, fmt.Errorf("%s: %w", v.name, ErrAssessmentRequired)
	}
	if s, err = rankVector(v.name, v.last.S, false); err != nil {
		return nil, nil, nil, err
	}
	if r, err = rankVector(v.name, v.last.R, false); err != nil {
		return nil, nil, nil, err
	}
	if q, err = rankVector(v.name, v.last.Q, false); err != nil {
		return nil, nil, nil, err
	}

	return s, r, q, nil
}

func (v *VIKOR) compute(m *matrix.Tensor, w matrix.Weights, types []int) (VIKORResult, error) {
	nm, err := v.opts.normalize(m, types)
	if err != nil {
		return VIKORResult{}, err
	}
	cells, err := nm.Grid()
	if err != nil {
		return VIKORResult{}, err
	}
	rows, cols := nm.Rows(), nm.Cols()
	dm := v.opts.Distance

	// Stage 1: positive and negative ideal per criterion, by μ only.
	pis := make([]ifs.Value, cols)
	nis := make([]ifs.Value, cols)
	for j := range pis {
		hi, lo := columnArgs(cells, j)
		pis[j], nis[j] = cells[hi][j], cells[lo][j]
		if pis[j].Equal(nis[j]) {
			return VIKORResult{}, fmt.Errorf("criterion %d: %w", j, ErrDegenerateColumn)
		}
	}

	// Stage 2: weighted distance ratios give S (sum) and R (max).
	ws := w.Crisp()
	span := make([]float64, cols)
	for j := range span {
		span[j] = distance.Scale(dm, dm.Fn(pis[j], nis[j]), cols)
	}
	res := VIKORResult{S: make([]float64, rows), R: make([]float64, rows), Q: make([]float64, rows)}
	var term float64
	for i, row := range cells {
		res.R[i] = math.Inf(-1)
		for j, c := range row {
			term = ws[j] * distance.Scale(dm, dm.Fn(pis[j], c), cols) / span[j]
			res.S[i] += term
			res.R[i] = math.Max(res.R[i], term)
		}
	}

	// Stage 3: compromise index; undefined ratios become 0.
	sLo, sHi := minMax(res.S)
	rLo, rHi := minMax(res.R)
	for i := range res.Q {
		res.Q[i] = v.opts.V*(res.S[i]-sLo)/(sHi-sLo) + (1-v.opts.V)*(res.R[i]-rLo)/(rHi-rLo)
	}
	nanToZero(res.S)
	nanToZero(res.R)
	nanToZero(res.Q)

	return res, nil
}

func nanToZero(x []float64) {
	for i, v := range x {
		if math.IsNaN(v) {
			x[i] = 0
		}
	}
}
