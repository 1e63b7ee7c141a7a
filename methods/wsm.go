// SPDX-License-Identifier: MIT

package methods

import (
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/score"
)

// WSM is the Weighted Sum Model.
type WSM struct{ base }

// NewWSM defaults: no normalization, chen_1 score.
func NewWSM(opts ...Option) *WSM {
	return &WSM{newBase("wsm", true, Options{Score: score.Chen1}, opts)}
}

// Evaluate scores the per-alternative component sums of (1-(1-μ)^wμ, ν^wν).
// The sums are not IFS values; only the score reads them.
func (s *WSM) Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return s.run(m, w, types, s.compute)
}

func (s *WSM) compute(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error) {
	return weightedModel(s.opts, m, w, types, false)
}
