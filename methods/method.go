// SPDX-License-Identifier: MIT

package methods

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/ranking"
	"github.com/katalvlaran/ifdm/validator"
)

// Method is the two-phase contract shared by every ranking method.
type Method interface {
	// Name returns the registry name of the method.
	Name() string

	// Evaluate validates the problem, computes one preference per alternative
	// and caches it for Rank.
	Evaluate(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error)

	// Rank positions the cached preferences; position 1 is best.
	Rank() ([]float64, error)
}

// state tracks whether a preference vector is cached.
type state int

const (
	stateUnevaluated state = iota
	stateEvaluated
)

// pipeline computes raw preferences for an already validated problem.
type pipeline func(m *matrix.Tensor, w matrix.Weights, types []int) ([]float64, error)

// base holds what every method shares: configuration, validation flags and the cache.
type base struct {
	name       string
	opts       Options
	descending bool
	checks     []validator.Option

	state state
	prefs []float64
}

func newBase(name string, descending bool, defaults Options, user []Option, checks ...validator.Option) base {
	return base{
		name:       name,
		opts:       gatherOptions(defaults, user...),
		descending: descending,
		checks:     checks,
	}
}

// Name returns the registry name.
func (b *base) Name() string { return b.name }

// Options returns a copy of the effective configuration.
func (b *base) Options() Options { return b.opts }

// run validates, executes p and caches the result.
// A failed run leaves any previous result in place.
func (b *base) run(m *matrix.Tensor, w matrix.Weights, types []int, p pipeline) ([]float64, error) {
	log := b.opts.Logger
	if err := validator.Validate(m, w, types, b.checks...); err != nil {
		log.Debug("validation failed", slog.String("method", b.name), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", b.name, err)
	}

	prefs, err := p(m, w, types)
	if err != nil {
		log.Debug("evaluation failed", slog.String("method", b.name), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", b.name, err)
	}

	b.prefs = prefs
	b.state = stateEvaluated
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("evaluated",
			slog.String("method", b.name),
			slog.Int("alternatives", m.Rows()),
			slog.Int("criteria", m.Cols()),
			slog.Bool("crisp_weights", w.IsCrisp()),
			slog.Any("preferences", prefs),
		)
	}

	return append([]float64(nil), prefs...), nil
}

// Rank positions the cached preferences.
func (b *base) Rank() ([]float64, error) {
	if b.state != stateEvaluated {
		return nil, fmt.Errorf("%s: %w", b.name, ErrAssessmentRequired)
	}

	return rankVector(b.name, b.prefs, b.descending)
}

func rankVector(name string, x []float64, descending bool) ([]float64, error) {
	r, err := ranking.Rank(x, descending)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrRanking, err)
	}

	return r, nil
}

// normalize applies the configured normalization, or copies m when there is none.
func (o Options) normalize(m *matrix.Tensor, types []int) (*matrix.Tensor, error) {
	if o.Normalization == nil {
		return m.Clone(), nil
	}

	return o.Normalization.Apply(m, types)
}

// scalarWeights reduces fuzzy weights with the configured score.
func (o Options) scalarWeights(w matrix.Weights) []float64 {
	return w.Reduce(o.Score.Fn)
}

// weightPairs returns (wμ, wν) per criterion; crisp weights are duplicated.
func weightPairs(w matrix.Weights) [][2]float64 {
	out := make([][2]float64, w.Len())
	for j := range out {
		out[j][0], out[j][1] = w.Pair(j)
	}

	return out
}

// minMax returns the extremes of x.
func minMax(x []float64) (lo, hi float64) {
	lo, hi = x[0], x[0]
	for _, v := range x[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// columnArgs returns the indices of the largest and smallest μ in column j; first wins.
func columnArgs(cells [][]ifs.Value, j int) (hi, lo int) {
	for i := 1; i < len(cells); i++ {
		if cells[i][j].Mu > cells[hi][j].Mu {
			hi = i
		}
		if cells[i][j].Mu < cells[lo][j].Mu {
			lo = i
		}
	}

	return hi, lo
}
