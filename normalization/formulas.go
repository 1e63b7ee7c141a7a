// SPDX-License-Identifier: MIT

package normalization

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ifdm/matrix"
)

// planeStats returns per-column max and min for every component plane, [k][j].
func planeStats(m *matrix.Tensor) (mx, mn [][]float64, err error) {
	k := m.Comps()
	mx, mn = make([][]float64, k), make([][]float64, k)
	for c := 0; c < k; c++ {
		if mx[c], err = m.ColumnMax(c); err != nil {
			return nil, nil, err
		}
		if mn[c], err = m.ColumnMin(c); err != nil {
			return nil, nil, err
		}
	}

	return mx, mn, nil
}

// minMax scales every column and component to [0,1]; cost columns are reversed.
// Stage 1: collect column extremes. Stage 2: reject zero ranges. Stage 3: rescale.
func minMax(m *matrix.Tensor, types []int) (*matrix.Tensor, error) {
	mx, mn, err := planeStats(m)
	if err != nil {
		return nil, fmt.Errorf("minmax: %w", err)
	}
	for k := range mx {
		for j, t := range types {
			if t != matrix.Profit && t != matrix.Cost {
				continue
			}
			if mx[k][j]-mn[k][j] == 0 {
				return nil, fmt.Errorf("minmax: column %d component %d: %w", j, k, ErrZeroRange)
			}
		}
	}

	out := m.Clone()
	err = out.Apply(func(_, j, k int, v float64) float64 {
		switch types[j] {
		case matrix.Profit:
			return (v - mn[k][j]) / (mx[k][j] - mn[k][j])
		case matrix.Cost:
			return (mx[k][j] - v) / (mx[k][j] - mn[k][j])
		default:
			return 0
		}
	})
	if err != nil {
		return nil, fmt.Errorf("minmax: %w", err)
	}

	return out, nil
}

// swap exchanges μ and ν in cost columns; π is kept.
func swap(m *matrix.Tensor, types []int) (*matrix.Tensor, error) {
	out := m.Clone()
	if m.Comps() < 2 {
		return out, nil
	}
	var mu, nu float64
	for i := 0; i < m.Rows(); i++ {
		for j, t := range types {
			if t != matrix.Cost {
				continue
			}
			mu, _ = m.At(i, j, 0)
			nu, _ = m.At(i, j, 1)
			if err := out.Set(i, j, 0, nu); err != nil {
				return nil, fmt.Errorf("swap: %w", err)
			}
			if err := out.Set(i, j, 1, mu); err != nil {
				return nil, fmt.Errorf("swap: %w", err)
			}
		}
	}

	return out, nil
}

// maxNorm divides by block-wide extremes.
//
//	profit: v / max(max μ_profit, min ν_profit)
//	cost:   min(min μ_cost, max ν_profit) / v
//
// The cost numerator reads ν from the profit block; with no profit
// columns it falls back to min μ_cost alone.
func maxNorm(m *matrix.Tensor, types []int) (*matrix.Tensor, error) {
	profit, cost := matrix.SplitTypes(types)
	nuComp := 1
	if m.Comps() < 2 {
		nuComp = 0
	}

	var pDen, cNum float64
	var err error
	if len(profit) > 0 {
		maxMu, err := m.BlockMax(profit, 0)
		if err != nil {
			return nil, fmt.Errorf("max: %w", err)
		}
		minNu, err := m.BlockMin(profit, nuComp)
		if err != nil {
			return nil, fmt.Errorf("max: %w", err)
		}
		pDen = math.Max(maxMu, minNu)
	}
	if len(cost) > 0 {
		if cNum, err = m.BlockMin(cost, 0); err != nil {
			return nil, fmt.Errorf("max: %w", err)
		}
		if len(profit) > 0 {
			maxNu, err := m.BlockMax(profit, nuComp)
			if err != nil {
				return nil, fmt.Errorf("max: %w", err)
			}
			cNum = math.Min(cNum, maxNu)
		}
	}

	out := m.Clone()
	err = out.Apply(func(_, j, _ int, v float64) float64 {
		switch types[j] {
		case matrix.Profit:
			return v / pDen
		case matrix.Cost:
			return cNum / v
		default:
			return v
		}
	})
	if err != nil {
		return nil, fmt.Errorf("max: %w", err)
	}

	return out, nil
}

// ecer divides profit columns by their maximum and inverts cost columns
// against their minimum, per component.
func ecer(m *matrix.Tensor, types []int) (*matrix.Tensor, error) {
	mx, mn, err := planeStats(m)
	if err != nil {
		return nil, fmt.Errorf("ecer: %w", err)
	}
	for k := range mx {
		for j, t := range types {
			if t == matrix.Profit && mx[k][j] == 0 {
				return nil, fmt.Errorf("ecer: column %d component %d: %w", j, k, ErrZeroMaximum)
			}
		}
	}

	out := m.Clone()
	err = out.Apply(func(_, j, k int, v float64) float64 {
		switch types[j] {
		case matrix.Profit:
			return v / mx[k][j]
		case matrix.Cost:
			return mn[k][j] / v
		default:
			return v
		}
	})
	if err != nil {
		return nil, fmt.Errorf("ecer: %w", err)
	}

	return out, nil
}

// supriya rescales μ by its column maximum and ν against its column minimum.
// A stored π is recomputed as 1-μ-ν. Criterion types are ignored.
func supriya(m *matrix.Tensor, _ []int) (*matrix.Tensor, error) {
	if m.Comps() < 2 {
		return nil, fmt.Errorf("supriya: %w", matrix.ErrComponents)
	}
	maxMu, err := m.ColumnMax(0)
	if err != nil {
		return nil, fmt.Errorf("supriya: %w", err)
	}
	minNu, err := m.ColumnMin(1)
	if err != nil {
		return nil, fmt.Errorf("supriya: %w", err)
	}

	out := m.Clone()
	var mu, nu float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			mu, _ = m.At(i, j, 0)
			nu, _ = m.At(i, j, 1)
			mu /= maxMu[j]
			nu = (nu - minNu[j]) / (1 - minNu[j])
			_ = out.Set(i, j, 0, mu)
			_ = out.Set(i, j, 1, nu)
			if m.Comps() == 3 {
				_ = out.Set(i, j, 2, 1-mu-nu)
			}
		}
	}

	return out, nil
}
