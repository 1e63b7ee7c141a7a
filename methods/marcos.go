// SPDX-License-Identifier: MIT

package methods

import (
	"math"

	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/validator"
)

// MARCOS is the Measurement of Alternatives and Ranking according to
// COmpromise Solution method. It needs no strategy options.
type MARCOS struct{ base }

// NewMARCOS builds a MARCOS method; only WithLogger has an effect.
func NewMARCOS(opts ...Option) *MARCOS {
	return &MARCOS{newBase("marcos", true, Options{}, opts, validator.RequireCrispWeights())}
}

// Evaluate returns the utility function value of every alternative.
func (c *MARCOS) Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return c.run(m, w, types, c.compute)
}

func (c *MARCOS) compute(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	cells, err := m.Grid()
	if err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()

	// Stage 1: crisp degree d⁻/(d⁻+d⁺) against (1,0,0) and (0,1,0).
	ext := make([][]float64, rows+2)
	for i, row := range cells {
		ext[i] = make([]float64, cols)
		for j, v := range row {
			plus := math.Sqrt((v.Mu-1)*(v.Mu-1) + v.Nu*v.Nu + v.Pi*v.Pi)
			minus := math.Sqrt(v.Mu*v.Mu + (v.Nu-1)*(v.Nu-1) + v.Pi*v.Pi)
			ext[i][j] = minus / (minus + plus)
		}
	}

	// Stage 2: ideal and anti-ideal rows.
	ideal, anti := make([]float64, cols), make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			col[i] = ext[i][j]
		}
		lo, hi := minMax(col)
		if types[j] == matrix.Profit {
			ideal[j], anti[j] = hi, lo
		} else {
			ideal[j], anti[j] = lo, hi
		}
	}
	ext[rows], ext[rows+1] = ideal, anti

	// Stage 3: block-wide normalization and weighted row sums.
	pMax, cMin := math.Inf(-1), math.Inf(1)
	for _, row := range ext {
		for j, v := range row {
			if types[j] == matrix.Profit {
				pMax = math.Max(pMax, v)
			} else {
				cMin = math.Min(cMin, v)
			}
		}
	}
	ws := w.Crisp()
	sums := make([]float64, rows+2)
	for i, row := range ext {
		for j, v := range row {
			if types[j] == matrix.Profit {
				sums[i] += ws[j] * v / pMax
			} else {
				sums[i] += ws[j] * cMin / v
			}
		}
	}

	// Stage 4: utility degrees and the blended utility function.
	out := make([]float64, rows)
	var kMinus, kPlus, fMinus, fPlus float64
	for i := range out {
		kMinus = sums[i] / sums[rows+1]
		kPlus = sums[i] / sums[rows]
		fMinus = kPlus / (kPlus + kMinus)
		fPlus = kMinus / (kPlus + kMinus)
		out[i] = (kPlus + kMinus) / (1 + (1-fPlus)/fPlus + (1-fMinus)/fMinus)
	}

	return out, nil
}
