// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrispWeights(t *testing.T) {
	t.Parallel()

	src := []float64{0.2, 0.3, 0.5}
	w, err := matrix.CrispWeights(src)
	require.NoError(t, err)
	src[0] = 9 // input is copied

	require.True(t, w.IsCrisp())
	require.Equal(t, 3, w.Len())
	require.Equal(t, 1, w.Comps())
	assert.InDelta(t, 1.0, w.Sum(), 1e-12)

	mu, nu := w.Pair(0)
	require.Equal(t, 0.2, mu)
	require.Equal(t, 0.2, nu)
	require.Nil(t, w.Rows())
	require.Equal(t, []float64{0.2, 0.3, 0.5}, w.Reduce(func(ifs.Value) float64 { return -1 }))

	_, err = matrix.CrispWeights(nil)
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

func TestFuzzyWeights(t *testing.T) {
	t.Parallel()

	w, err := matrix.FuzzyWeights([][]float64{{0.6, 0.3}, {0.4, 0.5}})
	require.NoError(t, err)
	require.False(t, w.IsCrisp())
	require.Equal(t, 2, w.Len())
	require.Equal(t, 2, w.Comps())
	require.Nil(t, w.Crisp())

	mu, nu := w.Pair(1)
	require.Equal(t, 0.4, mu)
	require.Equal(t, 0.5, nu)

	scores := w.Reduce(func(v ifs.Value) float64 { return v.Mu - v.Nu })
	assert.InDelta(t, 0.3, scores[0], 1e-12)
	assert.InDelta(t, -0.1, scores[1], 1e-12)
	require.Equal(t, [][]float64{{0.6, 0.3}, {0.4, 0.5}}, w.Rows())

	three, err := matrix.FuzzyWeights([][]float64{{0.6, 0.3, 0.05}})
	require.NoError(t, err)
	require.Equal(t, 0.05, three.Value(0).Pi)
}

func TestFuzzyWeightsErrors(t *testing.T) {
	t.Parallel()

	_, err := matrix.FuzzyWeights(nil)
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = matrix.FuzzyWeights([][]float64{{0.5}})
	require.ErrorIs(t, err, matrix.ErrComponents)
	_, err = matrix.FuzzyWeights([][]float64{{0.5, 0.2}, {0.5, 0.2, 0.3}})
	require.ErrorIs(t, err, matrix.ErrRagged)
}
